package trackingrepo

import (
	"context"
	"errors"
	"time"

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

// UpsertMonthly overwrites the (affiliate, month) record with the freshly
// computed quantity and achievement flag.
func (r *Repository) UpsertMonthly(ctx context.Context, m *domain.MinMonthlyBuy) (*domain.MinMonthlyBuy, error) {
	query := `
        INSERT INTO min_monthly_buys (affiliate_id, month, quantity, achieved)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (affiliate_id, month)
        DO UPDATE SET quantity = EXCLUDED.quantity, achieved = EXCLUDED.achieved
        RETURNING id, affiliate_id, month, quantity, achieved
    `
	var saved domain.MinMonthlyBuy
	err := r.db.QueryRow(ctx, query, m.AffiliateID, m.Month, m.Quantity, m.Achieved).
		Scan(&saved.ID, &saved.AffiliateID, &saved.Month, &saved.Quantity, &saved.Achieved)
	if err != nil {
		zap.L().Error("can't upsert monthly record", zap.Error(err))
		return nil, err
	}
	return &saved, nil
}

func (r *Repository) GetMonthly(ctx context.Context, affiliateID int, month time.Time) (*domain.MinMonthlyBuy, error) {
	var m domain.MinMonthlyBuy
	err := r.db.QueryRow(ctx,
		`SELECT id, affiliate_id, month, quantity, achieved FROM min_monthly_buys WHERE affiliate_id = $1 AND month = $2`,
		affiliateID, month).
		Scan(&m.ID, &m.AffiliateID, &m.Month, &m.Quantity, &m.Achieved)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find monthly record", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) History(ctx context.Context, affiliateID, limit int) ([]domain.MinMonthlyBuy, error) {
	query := `
        SELECT id, affiliate_id, month, quantity, achieved
        FROM min_monthly_buys
        WHERE affiliate_id = $1
        ORDER BY month DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, affiliateID, limit)
	if err != nil {
		zap.L().Error("can't list monthly history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.MinMonthlyBuy
	for rows.Next() {
		var m domain.MinMonthlyBuy
		if err := rows.Scan(&m.ID, &m.AffiliateID, &m.Month, &m.Quantity, &m.Achieved); err != nil {
			zap.L().Error("can't scan monthly record row", zap.Error(err))
			return nil, err
		}
		records = append(records, m)
	}
	return records, nil
}

// TryMarkSweep claims the month for the closing sweep. It returns false when
// another instance already ran the sweep for that month.
func (r *Repository) TryMarkSweep(ctx context.Context, month time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO monthly_sweeps (month) VALUES ($1) ON CONFLICT (month) DO NOTHING`, month)
	if err != nil {
		zap.L().Error("can't mark monthly sweep", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
