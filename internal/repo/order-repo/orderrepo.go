package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const orderColumns = `id, user_id, status, total_amount, shipping_cost, shipping_address_id, tracking_code, delivered_at, created_at`

func scanOrder(row pg.RowScanner, o *domain.Order) error {
	return row.Scan(
		&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.ShippingCost,
		&o.ShippingAddressID, &o.TrackingCode, &o.DeliveredAt, &o.CreatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
        INSERT INTO orders (user_id, status, total_amount, shipping_cost, shipping_address_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + orderColumns
	var created domain.Order
	err := scanOrder(r.db.QueryRow(ctx, query,
		order.UserID, order.Status, order.TotalAmount, order.ShippingCost, order.ShippingAddressID,
	), &created)
	if err != nil {
		zap.L().Error("can't create order", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) CreateItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	query := `
        INSERT INTO order_items (order_id, product_id, quantity, unit_price)
        VALUES ($1, $2, $3, $4)
        RETURNING id, order_id, product_id, quantity, unit_price
    `
	var created domain.OrderItem
	err := r.db.QueryRow(ctx, query, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice).
		Scan(&created.ID, &created.OrderID, &created.ProductID, &created.Quantity, &created.UnitPrice)
	if err != nil {
		zap.L().Error("can't create order item", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindByID(ctx context.Context, orderID int) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var order domain.Order
	err := scanOrder(r.db.QueryRow(ctx, query, orderID), &order)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) ItemsByOrder(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	query := `SELECT id, order_id, product_id, quantity, unit_price FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't list order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int, filters dto.OrderFiltersDTO) ([]domain.Order, int, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filters.Status != "" {
		where = append(where, "status = "+arg(filters.Status))
	}
	if filters.DateFrom != nil {
		where = append(where, "created_at >= "+arg(*filters.DateFrom))
	}
	if filters.DateTo != nil {
		where = append(where, "created_at <= "+arg(*filters.DateTo))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM orders WHERE `+cond, args...).Scan(&total); err != nil {
		zap.L().Error("can't count orders", zap.Error(err))
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + cond +
		` ORDER BY created_at DESC LIMIT ` + arg(filters.Limit) + ` OFFSET ` + arg((filters.Page-1)*filters.Limit)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list orders", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	return orders, total, nil
}

func (r *Repository) ListForAdmin(ctx context.Context, filters dto.OrderFiltersDTO, regions []string) ([]domain.OrderWithUser, int, error) {
	where := []string{"TRUE"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filters.Status != "" {
		where = append(where, "o.status = "+arg(filters.Status))
	}
	if filters.DateFrom != nil {
		where = append(where, "o.created_at >= "+arg(*filters.DateFrom))
	}
	if filters.DateTo != nil {
		where = append(where, "o.created_at <= "+arg(*filters.DateTo))
	}
	if len(regions) > 0 {
		where = append(where, "sa.region = ANY("+arg(regions)+")")
	}
	cond := strings.Join(where, " AND ")

	base := `
        FROM orders o
        JOIN users u ON u.id = o.user_id
        LEFT JOIN shipping_addresses sa ON sa.id = o.shipping_address_id
        WHERE ` + cond

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) `+base, args...).Scan(&total); err != nil {
		zap.L().Error("can't count admin orders", zap.Error(err))
		return nil, 0, err
	}

	query := `
        SELECT o.id, o.user_id, o.status, o.total_amount, o.shipping_cost, o.shipping_address_id,
               o.tracking_code, o.delivered_at, o.created_at,
               u.full_name, u.dni, u.email ` + base + `
        ORDER BY o.created_at DESC
        LIMIT ` + arg(filters.Limit) + ` OFFSET ` + arg((filters.Page-1)*filters.Limit)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list admin orders", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.OrderWithUser
	for rows.Next() {
		var o domain.OrderWithUser
		err := rows.Scan(
			&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.ShippingCost, &o.ShippingAddressID,
			&o.TrackingCode, &o.DeliveredAt, &o.CreatedAt,
			&o.FullName, &o.DNI, &o.Email,
		)
		if err != nil {
			zap.L().Error("can't scan admin order row", zap.Error(err))
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID int, status, trackingCode string, deliveredAt *time.Time) (*domain.Order, error) {
	query := `
        UPDATE orders
        SET status = $1,
            tracking_code = COALESCE(NULLIF($2, ''), tracking_code),
            delivered_at = COALESCE($3, delivered_at)
        WHERE id = $4
        RETURNING ` + orderColumns
	var updated domain.Order
	err := scanOrder(r.db.QueryRow(ctx, query, status, trackingCode, deliveredAt, orderID), &updated)
	if err != nil {
		zap.L().Error("can't update order status", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

// MarkPaid flips a pending order to paid; RowsAffected 0 means the order was
// already processed.
func (r *Repository) MarkPaid(ctx context.Context, orderID int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2 AND status = $3`,
		domain.OrderStatusPaid, orderID, domain.OrderStatusPending)
	if err != nil {
		zap.L().Error("can't mark order paid", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) CreatePayment(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (order_id, method, amount, status, reference)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, order_id, method, amount, status, reference, paid_at
    `
	var created domain.Payment
	err := r.db.QueryRow(ctx, query, p.OrderID, p.Method, p.Amount, p.Status, p.Reference).
		Scan(&created.ID, &created.OrderID, &created.Method, &created.Amount, &created.Status, &created.Reference, &created.PaidAt)
	if err != nil {
		zap.L().Error("can't create payment", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// SumQuantityForPeriod sums purchased quantity across the qualifying orders of
// one user inside [from, to).
func (r *Repository) SumQuantityForPeriod(ctx context.Context, userID int, from, to time.Time) (int, error) {
	query := `
        SELECT COALESCE(SUM(oi.quantity), 0)
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        WHERE o.user_id = $1
          AND o.status = ANY($2)
          AND o.created_at >= $3 AND o.created_at < $4
    `
	statuses := []string{domain.OrderStatusPaid, domain.OrderStatusShipped, domain.OrderStatusDelivered}
	var total int
	if err := r.db.QueryRow(ctx, query, userID, statuses, from, to).Scan(&total); err != nil {
		zap.L().Error("can't sum purchased quantity", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) SumSales(ctx context.Context, regions []string, from, to *time.Time) (float64, error) {
	where := []string{"o.status = ANY($1)"}
	args := []any{[]string{domain.OrderStatusPaid, domain.OrderStatusShipped, domain.OrderStatusDelivered}}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	join := ""
	if len(regions) > 0 {
		join = " JOIN shipping_addresses sa ON sa.id = o.shipping_address_id"
		where = append(where, "sa.region = ANY("+arg(regions)+")")
	}
	if from != nil {
		where = append(where, "o.created_at >= "+arg(*from))
	}
	if to != nil {
		where = append(where, "o.created_at < "+arg(*to))
	}

	query := `SELECT COALESCE(SUM(o.total_amount), 0) FROM orders o` + join + ` WHERE ` + strings.Join(where, " AND ")
	var total float64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		zap.L().Error("can't sum sales", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) CountSales(ctx context.Context, regions []string, from, to *time.Time) (int, error) {
	where := []string{"o.status = ANY($1)"}
	args := []any{[]string{domain.OrderStatusPaid, domain.OrderStatusShipped, domain.OrderStatusDelivered}}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	join := ""
	if len(regions) > 0 {
		join = " JOIN shipping_addresses sa ON sa.id = o.shipping_address_id"
		where = append(where, "sa.region = ANY("+arg(regions)+")")
	}
	if from != nil {
		where = append(where, "o.created_at >= "+arg(*from))
	}
	if to != nil {
		where = append(where, "o.created_at < "+arg(*to))
	}

	query := `SELECT count(*) FROM orders o` + join + ` WHERE ` + strings.Join(where, " AND ")
	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		zap.L().Error("can't count sales", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) Recent(ctx context.Context, regions []string, limit int) ([]domain.OrderWithUser, error) {
	filters := dto.OrderFiltersDTO{Page: 1, Limit: limit}
	orders, _, err := r.ListForAdmin(ctx, filters, regions)
	return orders, err
}
