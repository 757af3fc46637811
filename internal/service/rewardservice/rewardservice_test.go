package rewardservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/pg"
	rewardrepo "github.com/gocardi/boost-api/internal/repo/reward-repo"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockNotificationService, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	notifications := NewMockNotificationService(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(repo, notifications, txManager)
	defer ctrl.Finish()
	return service, repo, notifications, txManager
}

func TestAddPointsForPurchase(t *testing.T) {
	service, repo, notifications, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name           string
		amount         float64
		expectedPoints int
	}{
		{"Credits one point per ten spent", 155.50, 15},
		{"Rounds down", 19.99, 1},
		{"Small purchase earns nothing", 9.99, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expectedPoints > 0 {
				repo.EXPECT().IncrementPoints(ctx, 1, tt.expectedPoints).Return(nil)
				notifications.EXPECT().NotifyPoints(ctx, 1, tt.expectedPoints)
			}
			points, err := service.AddPointsForPurchase(ctx, 1, tt.amount)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPoints, points)
		})
	}
}

func TestClaim(t *testing.T) {
	service, repo, notifications, txManager := NewMock(t)
	ctx := context.Background()

	reward := &domain.Reward{
		ID: 2, Name: "Blender", PointsRequired: 50, Stock: 3, IsActive: true,
	}

	passTx := func() {
		txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
	}

	t.Run("Successful claim", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, 2).Return(reward, nil)
		passTx()
		repo.EXPECT().DecrementStock(ctx, 2).Return(nil)
		repo.EXPECT().IncrementPoints(ctx, 1, -50).Return(nil)
		repo.EXPECT().CreateClaim(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *domain.RewardClaim) (*domain.RewardClaim, error) {
			assert.Equal(t, 50, c.PointsUsed)
			assert.Equal(t, domain.ClaimStatusPending, c.Status)
			c.ID = 7
			return c, nil
		})
		notifications.EXPECT().NotifyRewardClaimed(ctx, 1, "Blender")

		claim, err := service.Claim(ctx, 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, 7, claim.ID)
		assert.Equal(t, "Blender", claim.RewardName)
	})

	t.Run("Out of stock", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, 2).Return(reward, nil)
		passTx()
		repo.EXPECT().DecrementStock(ctx, 2).Return(rewardrepo.ErrRewardOutOfStock)

		claim, err := service.Claim(ctx, 1, 2)
		assert.Nil(t, claim)
		assert.ErrorIs(t, err, ErrRewardOutOfStock)
	})

	t.Run("Insufficient points", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, 2).Return(reward, nil)
		passTx()
		repo.EXPECT().DecrementStock(ctx, 2).Return(nil)
		repo.EXPECT().IncrementPoints(ctx, 1, -50).Return(rewardrepo.ErrInsufficientPoints)

		claim, err := service.Claim(ctx, 1, 2)
		assert.Nil(t, claim)
		assert.ErrorIs(t, err, ErrInsufficientPoints)
	})

	t.Run("Inactive reward", func(t *testing.T) {
		inactive := *reward
		inactive.IsActive = false
		repo.EXPECT().FindByID(ctx, 2).Return(&inactive, nil)

		claim, err := service.Claim(ctx, 1, 2)
		assert.Nil(t, claim)
		assert.ErrorIs(t, err, ErrRewardInactive)
	})

	t.Run("Unknown reward", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, 9).Return(nil, nil)

		claim, err := service.Claim(ctx, 1, 9)
		assert.Nil(t, claim)
		assert.ErrorIs(t, err, ErrRewardNotFound)
	})
}

func TestGetPoints(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().GetPoints(ctx, 1).Return(60, nil)
	repo.EXPECT().SumPointsUsed(ctx, 1).Return(40, nil)
	repo.EXPECT().ListActive(ctx).Return([]domain.Reward{
		{ID: 1, PointsRequired: 50, Stock: 2, IsActive: true},
		{ID: 2, PointsRequired: 100, Stock: 2, IsActive: true},
		{ID: 3, PointsRequired: 10, Stock: 0, IsActive: true},
	}, nil)

	summary, err := service.GetPoints(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 60, summary.CurrentPoints)
	assert.Equal(t, 100, summary.TotalEarned)
	assert.Equal(t, 40, summary.TotalSpent)
	assert.Len(t, summary.AvailableRewards, 1)
	assert.Equal(t, 1, summary.AvailableRewards[0].ID)
}
