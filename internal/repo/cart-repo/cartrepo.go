package cartrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByUser(ctx context.Context, userID int) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.QueryRow(ctx, `SELECT id, user_id, updated_at FROM carts WHERE user_id = $1`, userID).
		Scan(&cart.ID, &cart.UserID, &cart.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find cart", zap.Error(err))
		return nil, err
	}
	return &cart, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.QueryRow(ctx,
		`INSERT INTO carts (user_id) VALUES ($1) RETURNING id, user_id, updated_at`, userID).
		Scan(&cart.ID, &cart.UserID, &cart.UpdatedAt)
	if err != nil {
		zap.L().Error("can't create cart", zap.Error(err))
		return nil, err
	}
	return &cart, nil
}

func (r *Repository) GetItems(ctx context.Context, cartID int) ([]domain.CartItemDetail, error) {
	query := `
        SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity,
               p.id, p.category_id, p.name, p.description, p.sku, p.public_price, p.affiliate_price,
               p.stock, p.image_url, p.is_active, p.created_at
        FROM cart_items ci
        JOIN products p ON p.id = ci.product_id
        WHERE ci.cart_id = $1
        ORDER BY ci.id
    `
	rows, err := r.db.Query(ctx, query, cartID)
	if err != nil {
		zap.L().Error("can't list cart items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItemDetail
	for rows.Next() {
		var it domain.CartItemDetail
		err := rows.Scan(
			&it.ID, &it.CartID, &it.ProductID, &it.Quantity,
			&it.Product.ID, &it.Product.CategoryID, &it.Product.Name, &it.Product.Description,
			&it.Product.SKU, &it.Product.PublicPrice, &it.Product.AffiliatePrice,
			&it.Product.Stock, &it.Product.ImageURL, &it.Product.IsActive, &it.Product.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan cart item row", zap.Error(err))
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// FindItem returns the cart item only when it belongs to the given user.
func (r *Repository) FindItem(ctx context.Context, userID, itemID int) (*domain.CartItem, error) {
	query := `
        SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity
        FROM cart_items ci
        JOIN carts c ON c.id = ci.cart_id
        WHERE ci.id = $1 AND c.user_id = $2
    `
	var item domain.CartItem
	err := r.db.QueryRow(ctx, query, itemID, userID).
		Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find cart item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) FindItemByProduct(ctx context.Context, cartID, productID int) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.QueryRow(ctx,
		`SELECT id, cart_id, product_id, quantity FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID).
		Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find cart item by product", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) AddItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	var created domain.CartItem
	err := r.db.QueryRow(ctx,
		`INSERT INTO cart_items (cart_id, product_id, quantity) VALUES ($1, $2, $3)
         RETURNING id, cart_id, product_id, quantity`,
		item.CartID, item.ProductID, item.Quantity).
		Scan(&created.ID, &created.CartID, &created.ProductID, &created.Quantity)
	if err != nil {
		zap.L().Error("can't add cart item", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) UpdateItemQuantity(ctx context.Context, itemID, quantity int) error {
	_, err := r.db.Exec(ctx, `UPDATE cart_items SET quantity = $1 WHERE id = $2`, quantity, itemID)
	if err != nil {
		zap.L().Error("can't update cart item quantity", zap.Error(err))
	}
	return err
}

func (r *Repository) DeleteItem(ctx context.Context, itemID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		zap.L().Error("can't delete cart item", zap.Error(err))
	}
	return err
}

func (r *Repository) Clear(ctx context.Context, cartID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	if err != nil {
		zap.L().Error("can't clear cart", zap.Error(err))
	}
	return err
}

func (r *Repository) Touch(ctx context.Context, cartID int) error {
	_, err := r.db.Exec(ctx, `UPDATE carts SET updated_at = now() WHERE id = $1`, cartID)
	return err
}
