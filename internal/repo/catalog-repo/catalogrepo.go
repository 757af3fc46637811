package catalogrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

const productColumns = `id, category_id, name, description, sku, public_price, affiliate_price, stock, image_url, is_active, created_at`

func scanProduct(row pg.RowScanner, p *domain.Product) error {
	return row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.SKU,
		&p.PublicPrice, &p.AffiliatePrice, &p.Stock, &p.ImageURL, &p.IsActive, &p.CreatedAt,
	)
}

func (r *Repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, is_active FROM categories WHERE is_active = TRUE ORDER BY name`)
	if err != nil {
		zap.L().Error("can't list categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.IsActive); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *Repository) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRow(ctx, `SELECT id, name, slug, is_active FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Slug, &c.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find category", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	var created domain.Category
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id, name, slug, is_active`,
		c.Name, c.Slug,
	).Scan(&created.ID, &created.Name, &created.Slug, &created.IsActive)
	if err != nil {
		zap.L().Error("can't create category", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p domain.Product
	err := scanProduct(r.db.QueryRow(ctx, query, id), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (category_id, name, description, sku, public_price, affiliate_price, stock, image_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + productColumns
	var created domain.Product
	err := scanProduct(r.db.QueryRow(ctx, query,
		p.CategoryID, p.Name, p.Description, p.SKU, p.PublicPrice, p.AffiliatePrice, p.Stock, p.ImageURL,
	), &created)
	if err != nil {
		zap.L().Error("can't create product", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `
        UPDATE products
        SET category_id = $1, name = $2, description = $3, sku = $4,
            public_price = $5, affiliate_price = $6, stock = $7, image_url = $8, is_active = $9
        WHERE id = $10
        RETURNING ` + productColumns
	var updated domain.Product
	err := scanProduct(r.db.QueryRow(ctx, query,
		p.CategoryID, p.Name, p.Description, p.SKU, p.PublicPrice, p.AffiliatePrice,
		p.Stock, p.ImageURL, p.IsActive, p.ID,
	), &updated)
	if err != nil {
		zap.L().Error("can't update product", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) ListProducts(ctx context.Context, filters dto.ProductFiltersDTO, priceField string) ([]domain.Product, int, error) {
	if priceField != "affiliate_price" {
		priceField = "public_price"
	}

	where := []string{"is_active = TRUE"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filters.Search != "" {
		p := arg("%" + filters.Search + "%")
		where = append(where, fmt.Sprintf("(name ILIKE %s OR description ILIKE %s OR sku ILIKE %s)", p, p, p))
	}
	if filters.CategoryID != 0 {
		where = append(where, "category_id = "+arg(filters.CategoryID))
	}
	if filters.MinPrice != nil {
		where = append(where, priceField+" >= "+arg(*filters.MinPrice))
	}
	if filters.MaxPrice != nil {
		where = append(where, priceField+" <= "+arg(*filters.MaxPrice))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM products WHERE `+cond, args...).Scan(&total); err != nil {
		zap.L().Error("can't count products", zap.Error(err))
		return nil, 0, err
	}

	orderBy := "created_at DESC"
	switch filters.SortBy {
	case "price":
		orderBy = priceField
	case "name":
		orderBy = "name"
	}
	if filters.SortBy != "" && strings.EqualFold(filters.SortOrder, "desc") {
		orderBy += " DESC"
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE ` + cond +
		` ORDER BY ` + orderBy +
		` LIMIT ` + arg(filters.Limit) + ` OFFSET ` + arg((filters.Page-1)*filters.Limit)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, nil
}

// DecrementStock subtracts quantity from a product's stock. It reports
// ErrInsufficientStock when the remaining stock does not cover the quantity,
// leaving the row untouched.
var ErrInsufficientStock = errors.New("insufficient stock")

func (r *Repository) DecrementStock(ctx context.Context, productID, quantity int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $1`, quantity, productID)
	if err != nil {
		zap.L().Error("can't decrement product stock", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (r *Repository) LowStockProducts(ctx context.Context, threshold, limit int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE AND stock <= $1 ORDER BY stock ASC LIMIT $2`
	rows, err := r.db.Query(ctx, query, threshold, limit)
	if err != nil {
		zap.L().Error("can't list low stock products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
