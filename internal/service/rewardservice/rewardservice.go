package rewardservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/pg"
	rewardrepo "github.com/gocardi/boost-api/internal/repo/reward-repo"
)

// PointsPerAmount: one point per full 10 currency units spent.
const PointsPerAmount = 10

var (
	ErrRewardNotFound     = errors.New("reward not found")
	ErrRewardInactive     = errors.New("reward is not active")
	ErrRewardOutOfStock   = errors.New("reward out of stock")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrClaimNotFound      = errors.New("claim not found")
	ErrInvalidReward      = errors.New("invalid reward data")
)

type Repo interface {
	ListActive(ctx context.Context) ([]domain.Reward, error)
	FindByID(ctx context.Context, id int) (*domain.Reward, error)
	Create(ctx context.Context, rw *domain.Reward) (*domain.Reward, error)
	Update(ctx context.Context, rw *domain.Reward) (*domain.Reward, error)
	DecrementStock(ctx context.Context, rewardID int) error
	IncrementPoints(ctx context.Context, affiliateID, delta int) error
	GetPoints(ctx context.Context, affiliateID int) (int, error)
	CreateClaim(ctx context.Context, c *domain.RewardClaim) (*domain.RewardClaim, error)
	ListClaims(ctx context.Context, affiliateID int) ([]domain.RewardClaim, error)
	SumPointsUsed(ctx context.Context, affiliateID int) (int, error)
	ApproveClaim(ctx context.Context, claimID int) (*domain.RewardClaim, error)
}

type NotificationService interface {
	NotifyPoints(ctx context.Context, userID, points int)
	NotifyRewardClaimed(ctx context.Context, userID int, rewardName string)
}

type Service struct {
	rewardRepo          Repo
	notificationService NotificationService
	txManager           pg.TXManager
}

func New(repo Repo, notifications NotificationService, txManager pg.TXManager) *Service {
	return &Service{rewardRepo: repo, notificationService: notifications, txManager: txManager}
}

// AddPointsForPurchase credits floor(amount/10) points and notifies when the
// purchase earned anything.
func (s *Service) AddPointsForPurchase(ctx context.Context, affiliateID int, amount float64) (int, error) {
	points := int(amount) / PointsPerAmount
	if points <= 0 {
		return 0, nil
	}
	if err := s.rewardRepo.IncrementPoints(ctx, affiliateID, points); err != nil {
		return 0, err
	}
	s.notificationService.NotifyPoints(ctx, affiliateID, points)
	zap.L().Info("points credited", zap.Int("affiliateID", affiliateID), zap.Int("points", points))
	return points, nil
}

// Claim exchanges points for a reward in one transaction: the reward must be
// active and stocked and the balance must cover it. pointsUsed snapshots the
// price at claim time.
func (s *Service) Claim(ctx context.Context, affiliateID, rewardID int) (*dto.ClaimDTO, error) {
	reward, err := s.rewardRepo.FindByID(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, ErrRewardNotFound
	}
	if !reward.IsActive {
		return nil, ErrRewardInactive
	}

	var claim *domain.RewardClaim
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.rewardRepo.DecrementStock(ctx, rewardID); err != nil {
			if errors.Is(err, rewardrepo.ErrRewardOutOfStock) {
				return ErrRewardOutOfStock
			}
			return err
		}
		if err := s.rewardRepo.IncrementPoints(ctx, affiliateID, -reward.PointsRequired); err != nil {
			if errors.Is(err, rewardrepo.ErrInsufficientPoints) {
				return ErrInsufficientPoints
			}
			return err
		}
		claim, err = s.rewardRepo.CreateClaim(ctx, &domain.RewardClaim{
			AffiliateID: affiliateID,
			RewardID:    rewardID,
			PointsUsed:  reward.PointsRequired,
			Status:      domain.ClaimStatusPending,
		})
		return err
	})
	if err != nil {
		zap.L().Error("reward claim failed",
			zap.Int("affiliateID", affiliateID), zap.Int("rewardID", rewardID), zap.Error(err))
		return nil, err
	}

	s.notificationService.NotifyRewardClaimed(ctx, affiliateID, reward.Name)
	zap.L().Info("reward claimed",
		zap.Int("affiliateID", affiliateID), zap.Int("rewardID", rewardID))
	return toClaimDTO(*claim, reward.Name), nil
}

func (s *Service) ListRewards(ctx context.Context) ([]dto.RewardDTO, error) {
	rewards, err := s.rewardRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RewardDTO, 0, len(rewards))
	for _, rw := range rewards {
		out = append(out, toRewardDTO(rw))
	}
	return out, nil
}

// GetPoints reports the balance, lifetime earned/spent totals and which
// rewards the balance currently affords.
func (s *Service) GetPoints(ctx context.Context, affiliateID int) (*dto.PointsSummaryDTO, error) {
	current, err := s.rewardRepo.GetPoints(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	spent, err := s.rewardRepo.SumPointsUsed(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	rewards, err := s.rewardRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.PointsSummaryDTO{
		CurrentPoints:    current,
		TotalEarned:      current + spent,
		TotalSpent:       spent,
		AvailableRewards: []dto.RewardDTO{},
	}
	for _, rw := range rewards {
		if rw.Stock > 0 && rw.PointsRequired <= current {
			summary.AvailableRewards = append(summary.AvailableRewards, toRewardDTO(rw))
		}
	}
	return summary, nil
}

func (s *Service) ClaimHistory(ctx context.Context, affiliateID int) ([]dto.ClaimDTO, error) {
	claims, err := s.rewardRepo.ListClaims(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClaimDTO, 0, len(claims))
	for _, c := range claims {
		name := ""
		if reward, err := s.rewardRepo.FindByID(ctx, c.RewardID); err == nil && reward != nil {
			name = reward.Name
		}
		out = append(out, *toClaimDTO(c, name))
	}
	return out, nil
}

func (s *Service) CreateReward(ctx context.Context, input dto.RewardRequestDTO) (*dto.RewardDTO, error) {
	if input.Name == "" || input.PointsRequired <= 0 || input.Stock < 0 {
		return nil, ErrInvalidReward
	}
	created, err := s.rewardRepo.Create(ctx, &domain.Reward{
		Name:           input.Name,
		Description:    input.Description,
		PointsRequired: input.PointsRequired,
		Stock:          input.Stock,
		ImageURL:       input.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	result := toRewardDTO(*created)
	return &result, nil
}

func (s *Service) UpdateReward(ctx context.Context, id int, input dto.RewardRequestDTO) (*dto.RewardDTO, error) {
	existing, err := s.rewardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrRewardNotFound
	}
	if input.Name == "" || input.PointsRequired <= 0 || input.Stock < 0 {
		return nil, ErrInvalidReward
	}
	updated, err := s.rewardRepo.Update(ctx, &domain.Reward{
		ID:             id,
		Name:           input.Name,
		Description:    input.Description,
		PointsRequired: input.PointsRequired,
		Stock:          input.Stock,
		ImageURL:       input.ImageURL,
		IsActive:       existing.IsActive,
	})
	if err != nil {
		return nil, err
	}
	result := toRewardDTO(*updated)
	return &result, nil
}

func (s *Service) ApproveClaim(ctx context.Context, claimID int) (*dto.ClaimDTO, error) {
	claim, err := s.rewardRepo.ApproveClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, ErrClaimNotFound
	}
	name := ""
	if reward, err := s.rewardRepo.FindByID(ctx, claim.RewardID); err == nil && reward != nil {
		name = reward.Name
	}
	return toClaimDTO(*claim, name), nil
}

func toRewardDTO(rw domain.Reward) dto.RewardDTO {
	return dto.RewardDTO{
		ID:             rw.ID,
		Name:           rw.Name,
		Description:    rw.Description,
		PointsRequired: rw.PointsRequired,
		Stock:          rw.Stock,
		ImageURL:       rw.ImageURL,
		IsActive:       rw.IsActive,
	}
}

func toClaimDTO(c domain.RewardClaim, rewardName string) *dto.ClaimDTO {
	return &dto.ClaimDTO{
		ID:          c.ID,
		RewardID:    c.RewardID,
		RewardName:  rewardName,
		PointsUsed:  c.PointsUsed,
		Status:      c.Status,
		ClaimedAt:   c.ClaimedAt,
		DeliveredAt: c.DeliveredAt,
	}
}
