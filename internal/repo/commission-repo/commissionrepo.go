package commissionrepo

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

// Create inserts a commission and reports whether a row was actually written.
// The unique key on (affiliate_id, order_item_id, type) makes a replayed
// post-payment pipeline insert nothing.
func (r *Repository) Create(ctx context.Context, c *domain.Commission) (bool, error) {
	query := `
        INSERT INTO commissions (affiliate_id, order_item_id, type, amount, percentage, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (affiliate_id, order_item_id, type) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, c.AffiliateID, c.OrderItemID, c.Type, c.Amount, c.Percentage, c.Status)
	if err != nil {
		zap.L().Error("can't create commission", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Commission, error) {
	query := `
        SELECT id, affiliate_id, order_item_id, type, amount, percentage, status, created_at, approved_at
        FROM commissions
        WHERE id = $1
    `
	var c domain.Commission
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.AffiliateID, &c.OrderItemID, &c.Type, &c.Amount,
		&c.Percentage, &c.Status, &c.CreatedAt, &c.ApprovedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find commission", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListByAffiliate(ctx context.Context, affiliateID int, filters dto.CommissionFiltersDTO) ([]domain.CommissionDetail, int, error) {
	where := []string{"c.affiliate_id = $1"}
	args := []any{affiliateID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filters.Type != "" {
		where = append(where, "c.type = "+arg(filters.Type))
	}
	if filters.Status != "" {
		where = append(where, "c.status = "+arg(filters.Status))
	}
	if from, to, ok := monthRange(filters.Month); ok {
		where = append(where, "c.created_at >= "+arg(from), "c.created_at < "+arg(to))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM commissions c WHERE `+cond, args...).Scan(&total); err != nil {
		zap.L().Error("can't count commissions", zap.Error(err))
		return nil, 0, err
	}

	query := `
        SELECT c.id, c.affiliate_id, c.order_item_id, c.type, c.amount, c.percentage, c.status, c.created_at, c.approved_at,
               oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price,
               p.name
        FROM commissions c
        JOIN order_items oi ON oi.id = c.order_item_id
        JOIN products p ON p.id = oi.product_id
        WHERE ` + cond + `
        ORDER BY c.created_at DESC
        LIMIT ` + arg(filters.Limit) + ` OFFSET ` + arg((filters.Page-1)*filters.Limit)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list commissions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var details []domain.CommissionDetail
	for rows.Next() {
		var d domain.CommissionDetail
		err := rows.Scan(
			&d.ID, &d.AffiliateID, &d.OrderItemID, &d.Type, &d.Amount,
			&d.Percentage, &d.Status, &d.CreatedAt, &d.ApprovedAt,
			&d.OrderItem.ID, &d.OrderItem.OrderID, &d.OrderItem.ProductID,
			&d.OrderItem.Quantity, &d.OrderItem.UnitPrice,
			&d.ProductName,
		)
		if err != nil {
			zap.L().Error("can't scan commission row", zap.Error(err))
			return nil, 0, err
		}
		details = append(details, d)
	}
	return details, total, nil
}

// SumByTypeStatus aggregates commission amounts grouped by type and status,
// optionally restricted to a time window.
func (r *Repository) SumByTypeStatus(ctx context.Context, affiliateID int, from, to *time.Time) ([]domain.CommissionSum, error) {
	where := []string{"affiliate_id = $1"}
	args := []any{affiliateID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if from != nil {
		where = append(where, "created_at >= "+arg(*from))
	}
	if to != nil {
		where = append(where, "created_at < "+arg(*to))
	}

	query := `
        SELECT type, status, COALESCE(SUM(amount), 0)
        FROM commissions
        WHERE ` + strings.Join(where, " AND ") + `
        GROUP BY type, status
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't aggregate commissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sums []domain.CommissionSum
	for rows.Next() {
		var s domain.CommissionSum
		if err := rows.Scan(&s.Type, &s.Status, &s.Amount); err != nil {
			zap.L().Error("can't scan commission sum row", zap.Error(err))
			return nil, err
		}
		sums = append(sums, s)
	}
	return sums, nil
}

func (r *Repository) SumReferralGenerated(ctx context.Context, affiliateID int, from, to *time.Time) (float64, error) {
	where := []string{"affiliate_id = $1", "type = $2", "status = ANY($3)"}
	args := []any{affiliateID, domain.CommissionTypeReferral, []string{domain.CommissionStatusApproved, domain.CommissionStatusPaid}}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if from != nil {
		where = append(where, "created_at >= "+arg(*from))
	}
	if to != nil {
		where = append(where, "created_at < "+arg(*to))
	}
	query := `SELECT COALESCE(SUM(amount), 0) FROM commissions WHERE ` + strings.Join(where, " AND ")
	var total float64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		zap.L().Error("can't sum referral commissions", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) Approve(ctx context.Context, id int) (*domain.Commission, error) {
	query := `
        UPDATE commissions
        SET status = $1, approved_at = now()
        WHERE id = $2
        RETURNING id, affiliate_id, order_item_id, type, amount, percentage, status, created_at, approved_at
    `
	var c domain.Commission
	err := r.db.QueryRow(ctx, query, domain.CommissionStatusApproved, id).Scan(
		&c.ID, &c.AffiliateID, &c.OrderItemID, &c.Type, &c.Amount,
		&c.Percentage, &c.Status, &c.CreatedAt, &c.ApprovedAt,
	)
	if err != nil {
		zap.L().Error("can't approve commission", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// MarkPaid moves approved commissions to paid, returning how many rows moved.
func (r *Repository) MarkPaid(ctx context.Context, ids []int) (int, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE commissions SET status = $1 WHERE id = ANY($2) AND status = $3`,
		domain.CommissionStatusPaid, ids, domain.CommissionStatusApproved)
	if err != nil {
		zap.L().Error("can't mark commissions paid", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) ListPending(ctx context.Context, regions []string, filters dto.CommissionFiltersDTO) ([]domain.CommissionDetail, int, error) {
	where := []string{"c.status = $1"}
	args := []any{domain.CommissionStatusPending}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	join := ""
	if len(regions) > 0 {
		join = " JOIN affiliates a ON a.id = c.affiliate_id"
		where = append(where, "a.region = ANY("+arg(regions)+")")
	}
	cond := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT count(*) FROM commissions c` + join + ` WHERE ` + cond
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		zap.L().Error("can't count pending commissions", zap.Error(err))
		return nil, 0, err
	}

	query := `
        SELECT c.id, c.affiliate_id, c.order_item_id, c.type, c.amount, c.percentage, c.status, c.created_at, c.approved_at,
               oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price,
               p.name
        FROM commissions c` + join + `
        JOIN order_items oi ON oi.id = c.order_item_id
        JOIN products p ON p.id = oi.product_id
        WHERE ` + cond + `
        ORDER BY c.created_at DESC
        LIMIT ` + arg(filters.Limit) + ` OFFSET ` + arg((filters.Page-1)*filters.Limit)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list pending commissions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var details []domain.CommissionDetail
	for rows.Next() {
		var d domain.CommissionDetail
		err := rows.Scan(
			&d.ID, &d.AffiliateID, &d.OrderItemID, &d.Type, &d.Amount,
			&d.Percentage, &d.Status, &d.CreatedAt, &d.ApprovedAt,
			&d.OrderItem.ID, &d.OrderItem.OrderID, &d.OrderItem.ProductID,
			&d.OrderItem.Quantity, &d.OrderItem.UnitPrice,
			&d.ProductName,
		)
		if err != nil {
			zap.L().Error("can't scan pending commission row", zap.Error(err))
			return nil, 0, err
		}
		details = append(details, d)
	}
	return details, total, nil
}

func (r *Repository) CountPending(ctx context.Context, regions []string) (int, error) {
	where := []string{"c.status = $1"}
	args := []any{domain.CommissionStatusPending}
	join := ""
	if len(regions) > 0 {
		join = " JOIN affiliates a ON a.id = c.affiliate_id"
		args = append(args, regions)
		where = append(where, fmt.Sprintf("a.region = ANY($%d)", len(args)))
	}
	query := `SELECT count(*) FROM commissions c` + join + ` WHERE ` + strings.Join(where, " AND ")
	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		zap.L().Error("can't count pending commissions", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// monthRange parses "YYYY-MM" into [start, next month start).
func monthRange(month string) (time.Time, time.Time, bool) {
	if month == "" {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, start.AddDate(0, 1, 0), true
}
