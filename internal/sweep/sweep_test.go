package sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockTrackingService, *MockRepo) {
	ctrl := gomock.NewController(t)
	trackingService := NewMockTrackingService(ctrl)
	sweepRepo := NewMockRepo(ctrl)
	service := New(trackingService, sweepRepo, time.Hour)
	defer ctrl.Finish()
	return service, trackingService, sweepRepo
}

func TestSweepOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 14, 9, 30, 0, 0, time.UTC)
	month := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	previousMonth := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Evaluates every active affiliate", func(t *testing.T) {
		service, tracking, repo := NewMock(t)
		repo.EXPECT().TryMarkSweep(ctx, month).Return(true, nil)
		tracking.EXPECT().ActiveAffiliateIDs(ctx).Return([]int{1, 2, 3}, nil)
		tracking.EXPECT().EvaluateAffiliate(gomock.Any(), 1, previousMonth).Return(nil)
		tracking.EXPECT().EvaluateAffiliate(gomock.Any(), 2, previousMonth).Return(nil)
		tracking.EXPECT().EvaluateAffiliate(gomock.Any(), 3, previousMonth).Return(nil)

		assert.NoError(t, service.sweepOnce(ctx, now))
	})

	t.Run("Month already swept", func(t *testing.T) {
		service, _, repo := NewMock(t)
		repo.EXPECT().TryMarkSweep(ctx, month).Return(false, nil)

		assert.NoError(t, service.sweepOnce(ctx, now))
	})

	t.Run("Evaluation failures do not stop the sweep", func(t *testing.T) {
		service, tracking, repo := NewMock(t)
		repo.EXPECT().TryMarkSweep(ctx, month).Return(true, nil)
		tracking.EXPECT().ActiveAffiliateIDs(ctx).Return([]int{1, 2}, nil)
		tracking.EXPECT().EvaluateAffiliate(gomock.Any(), 1, previousMonth).Return(errors.New("evaluation failure"))
		tracking.EXPECT().EvaluateAffiliate(gomock.Any(), 2, previousMonth).Return(nil)

		assert.NoError(t, service.sweepOnce(ctx, now))
	})

	t.Run("Marker error", func(t *testing.T) {
		service, _, repo := NewMock(t)
		repo.EXPECT().TryMarkSweep(ctx, month).Return(false, errors.New("database error"))

		assert.Error(t, service.sweepOnce(ctx, now))
	})

	t.Run("Listing error", func(t *testing.T) {
		service, tracking, repo := NewMock(t)
		repo.EXPECT().TryMarkSweep(ctx, month).Return(true, nil)
		tracking.EXPECT().ActiveAffiliateIDs(ctx).Return(nil, errors.New("database error"))

		assert.Error(t, service.sweepOnce(ctx, now))
	})
}

func TestRun(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := service.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
