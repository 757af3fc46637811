package rewardrepo

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

var (
	ErrRewardOutOfStock   = errors.New("reward out of stock")
	ErrInsufficientPoints = errors.New("insufficient points")
)

const rewardColumns = `id, name, description, points_required, stock, image_url, is_active`

func scanReward(row pg.RowScanner, rw *domain.Reward) error {
	return row.Scan(&rw.ID, &rw.Name, &rw.Description, &rw.PointsRequired, &rw.Stock, &rw.ImageURL, &rw.IsActive)
}

func (r *Repository) ListActive(ctx context.Context) ([]domain.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE is_active = TRUE ORDER BY points_required`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		var rw domain.Reward
		if err := scanReward(rows, &rw); err != nil {
			zap.L().Error("can't scan reward row", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, rw)
	}
	return rewards, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Reward, error) {
	var rw domain.Reward
	err := scanReward(r.db.QueryRow(ctx, `SELECT `+rewardColumns+` FROM rewards WHERE id = $1`, id), &rw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find reward", zap.Error(err))
		return nil, err
	}
	return &rw, nil
}

func (r *Repository) Create(ctx context.Context, rw *domain.Reward) (*domain.Reward, error) {
	query := `
        INSERT INTO rewards (name, description, points_required, stock, image_url)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + rewardColumns
	var created domain.Reward
	err := scanReward(r.db.QueryRow(ctx, query,
		rw.Name, rw.Description, rw.PointsRequired, rw.Stock, rw.ImageURL), &created)
	if err != nil {
		zap.L().Error("can't create reward", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) Update(ctx context.Context, rw *domain.Reward) (*domain.Reward, error) {
	query := `
        UPDATE rewards
        SET name = $1, description = $2, points_required = $3, stock = $4, image_url = $5, is_active = $6
        WHERE id = $7
        RETURNING ` + rewardColumns
	var updated domain.Reward
	err := scanReward(r.db.QueryRow(ctx, query,
		rw.Name, rw.Description, rw.PointsRequired, rw.Stock, rw.ImageURL, rw.IsActive, rw.ID), &updated)
	if err != nil {
		zap.L().Error("can't update reward", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

// DecrementStock takes one unit off the reward's stock. ErrRewardOutOfStock
// is returned when no stock remains.
func (r *Repository) DecrementStock(ctx context.Context, rewardID int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rewards SET stock = stock - 1 WHERE id = $1 AND stock > 0`, rewardID)
	if err != nil {
		zap.L().Error("can't decrement reward stock", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRewardOutOfStock
	}
	return nil
}

// IncrementPoints adds delta to the affiliate's balance; a negative delta
// spends points and fails with ErrInsufficientPoints when the balance does
// not cover it.
func (r *Repository) IncrementPoints(ctx context.Context, affiliateID, delta int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE affiliates SET points = points + $1 WHERE id = $2 AND points + $1 >= 0`, delta, affiliateID)
	if err != nil {
		zap.L().Error("can't update affiliate points", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientPoints
	}
	return nil
}

func (r *Repository) GetPoints(ctx context.Context, affiliateID int) (int, error) {
	var points int
	err := r.db.QueryRow(ctx, `SELECT points FROM affiliates WHERE id = $1`, affiliateID).Scan(&points)
	if err != nil {
		zap.L().Error("can't get affiliate points", zap.Error(err))
		return 0, err
	}
	return points, nil
}

func (r *Repository) CreateClaim(ctx context.Context, c *domain.RewardClaim) (*domain.RewardClaim, error) {
	query := `
        INSERT INTO reward_claims (affiliate_id, reward_id, points_used, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, affiliate_id, reward_id, points_used, status, claimed_at, delivered_at
    `
	var created domain.RewardClaim
	err := r.db.QueryRow(ctx, query, c.AffiliateID, c.RewardID, c.PointsUsed, c.Status).
		Scan(&created.ID, &created.AffiliateID, &created.RewardID, &created.PointsUsed,
			&created.Status, &created.ClaimedAt, &created.DeliveredAt)
	if err != nil {
		zap.L().Error("can't create reward claim", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) ListClaims(ctx context.Context, affiliateID int) ([]domain.RewardClaim, error) {
	query := `
        SELECT id, affiliate_id, reward_id, points_used, status, claimed_at, delivered_at
        FROM reward_claims
        WHERE affiliate_id = $1
        ORDER BY claimed_at DESC
    `
	rows, err := r.db.Query(ctx, query, affiliateID)
	if err != nil {
		zap.L().Error("can't list reward claims", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var claims []domain.RewardClaim
	for rows.Next() {
		var c domain.RewardClaim
		err := rows.Scan(&c.ID, &c.AffiliateID, &c.RewardID, &c.PointsUsed, &c.Status, &c.ClaimedAt, &c.DeliveredAt)
		if err != nil {
			zap.L().Error("can't scan reward claim row", zap.Error(err))
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, nil
}

func (r *Repository) SumPointsUsed(ctx context.Context, affiliateID int) (int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(points_used), 0) FROM reward_claims WHERE affiliate_id = $1`, affiliateID).
		Scan(&total)
	if err != nil {
		zap.L().Error("can't sum points used", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) ApproveClaim(ctx context.Context, claimID int) (*domain.RewardClaim, error) {
	query := `
        UPDATE reward_claims
        SET status = $1, delivered_at = now()
        WHERE id = $2 AND status = $3
        RETURNING id, affiliate_id, reward_id, points_used, status, claimed_at, delivered_at
    `
	var c domain.RewardClaim
	err := r.db.QueryRow(ctx, query, domain.ClaimStatusApproved, claimID, domain.ClaimStatusPending).
		Scan(&c.ID, &c.AffiliateID, &c.RewardID, &c.PointsUsed, &c.Status, &c.ClaimedAt, &c.DeliveredAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't approve reward claim", zap.Error(err))
		return nil, err
	}
	return &c, nil
}
