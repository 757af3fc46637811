package rulesrepo

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

func (r *Repository) Get(ctx context.Context, key string) (*domain.BusinessRule, error) {
	var rule domain.BusinessRule
	err := r.db.QueryRow(ctx,
		`SELECT id, key, value, type, updated_at FROM business_rules WHERE key = $1`, key).
		Scan(&rule.ID, &rule.Key, &rule.Value, &rule.Type, &rule.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find business rule", zap.Error(err))
		return nil, err
	}
	return &rule, nil
}

func (r *Repository) GetByKeys(ctx context.Context, keys []string) ([]domain.BusinessRule, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, key, value, type, updated_at FROM business_rules WHERE key = ANY($1)`, keys)
	if err != nil {
		zap.L().Error("can't list business rules by keys", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *Repository) List(ctx context.Context) ([]domain.BusinessRule, error) {
	rows, err := r.db.Query(ctx, `SELECT id, key, value, type, updated_at FROM business_rules ORDER BY key`)
	if err != nil {
		zap.L().Error("can't list business rules", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *Repository) Upsert(ctx context.Context, key, value, ruleType string) (*domain.BusinessRule, error) {
	query := `
        INSERT INTO business_rules (key, value, type)
        VALUES ($1, $2, $3)
        ON CONFLICT (key)
        DO UPDATE SET value = EXCLUDED.value, type = EXCLUDED.type, updated_at = now()
        RETURNING id, key, value, type, updated_at
    `
	var rule domain.BusinessRule
	err := r.db.QueryRow(ctx, query, key, value, ruleType).
		Scan(&rule.ID, &rule.Key, &rule.Value, &rule.Type, &rule.UpdatedAt)
	if err != nil {
		zap.L().Error("can't upsert business rule", zap.Error(err))
		return nil, err
	}
	return &rule, nil
}

func collect(rows pgx.Rows) ([]domain.BusinessRule, error) {
	var rules []domain.BusinessRule
	for rows.Next() {
		var rule domain.BusinessRule
		if err := rows.Scan(&rule.ID, &rule.Key, &rule.Value, &rule.Type, &rule.UpdatedAt); err != nil {
			zap.L().Error("can't scan business rule row", zap.Error(err))
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
