package addressrepo

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

const columns = `id, user_id, name, phone, region, city, address, reference, is_default`

func scanAddress(row pg.RowScanner, a *domain.ShippingAddress) error {
	return row.Scan(&a.ID, &a.UserID, &a.Name, &a.Phone, &a.Region, &a.City, &a.Address, &a.Reference, &a.IsDefault)
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]domain.ShippingAddress, error) {
	query := `SELECT ` + columns + ` FROM shipping_addresses WHERE user_id = $1 ORDER BY is_default DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list addresses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.ShippingAddress
	for rows.Next() {
		var a domain.ShippingAddress
		if err := scanAddress(rows, &a); err != nil {
			zap.L().Error("can't scan address row", zap.Error(err))
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, nil
}

func (r *Repository) FindByID(ctx context.Context, userID, addressID int) (*domain.ShippingAddress, error) {
	query := `SELECT ` + columns + ` FROM shipping_addresses WHERE id = $1 AND user_id = $2`
	var a domain.ShippingAddress
	err := scanAddress(r.db.QueryRow(ctx, query, addressID, userID), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find address", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Create(ctx context.Context, a *domain.ShippingAddress) (*domain.ShippingAddress, error) {
	query := `
        INSERT INTO shipping_addresses (user_id, name, phone, region, city, address, reference, is_default)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + columns
	var created domain.ShippingAddress
	err := scanAddress(r.db.QueryRow(ctx, query,
		a.UserID, a.Name, a.Phone, a.Region, a.City, a.Address, a.Reference, a.IsDefault,
	), &created)
	if err != nil {
		zap.L().Error("can't create address", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) Update(ctx context.Context, a *domain.ShippingAddress) (*domain.ShippingAddress, error) {
	query := `
        UPDATE shipping_addresses
        SET name = $1, phone = $2, region = $3, city = $4, address = $5, reference = $6, is_default = $7
        WHERE id = $8 AND user_id = $9
        RETURNING ` + columns
	var updated domain.ShippingAddress
	err := scanAddress(r.db.QueryRow(ctx, query,
		a.Name, a.Phone, a.Region, a.City, a.Address, a.Reference, a.IsDefault, a.ID, a.UserID,
	), &updated)
	if err != nil {
		zap.L().Error("can't update address", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) Delete(ctx context.Context, userID, addressID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM shipping_addresses WHERE id = $1 AND user_id = $2`, addressID, userID)
	if err != nil {
		zap.L().Error("can't delete address", zap.Error(err))
	}
	return err
}

func (r *Repository) CountByUser(ctx context.Context, userID int) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM shipping_addresses WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		zap.L().Error("can't count addresses", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) ClearDefaults(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx, `UPDATE shipping_addresses SET is_default = FALSE WHERE user_id = $1`, userID)
	if err != nil {
		zap.L().Error("can't clear default addresses", zap.Error(err))
	}
	return err
}

func (r *Repository) SetDefault(ctx context.Context, userID, addressID int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE shipping_addresses SET is_default = TRUE WHERE id = $1 AND user_id = $2`, addressID, userID)
	if err != nil {
		zap.L().Error("can't set default address", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// FirstByUser returns the oldest address of a user, used to promote a new
// default after the default address is deleted.
func (r *Repository) FirstByUser(ctx context.Context, userID int) (*domain.ShippingAddress, error) {
	query := `SELECT ` + columns + ` FROM shipping_addresses WHERE user_id = $1 ORDER BY id ASC LIMIT 1`
	var a domain.ShippingAddress
	err := scanAddress(r.db.QueryRow(ctx, query, userID), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find first address", zap.Error(err))
		return nil, err
	}
	return &a, nil
}
