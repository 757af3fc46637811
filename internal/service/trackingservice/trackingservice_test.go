package trackingservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/service/rulesservice"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockOrderRepo, *MockUserRepo, *MockRulesService, *MockNotificationService) {
	ctrl := gomock.NewController(t)
	trackingRepo := NewMockRepo(ctrl)
	orderRepo := NewMockOrderRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	rules := NewMockRulesService(ctrl)
	notifications := NewMockNotificationService(ctrl)

	service := New(trackingRepo, orderRepo, userRepo, rules, notifications)
	defer ctrl.Finish()
	return service, trackingRepo, orderRepo, userRepo, rules, notifications
}

func TestCheckMonthlyBuy(t *testing.T) {
	service, trackingRepo, orderRepo, _, rules, _ := NewMock(t)
	ctx := context.Background()

	anchor := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		quantity    int
		required    float64
		expectedMet bool
	}{
		{"Quota met", 3, 1, true},
		{"Quota missed", 0, 1, false},
		{"Exactly at quota", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo.EXPECT().SumQuantityForPeriod(ctx, 1, monthStart, monthEnd).Return(tt.quantity, nil)
			rules.EXPECT().Number(ctx, rulesservice.KeyMinMonthlyBuy, float64(rulesservice.DefaultMinMonthlyBuy)).Return(tt.required, nil)
			trackingRepo.EXPECT().UpsertMonthly(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, record *domain.MinMonthlyBuy) (*domain.MinMonthlyBuy, error) {
				assert.Equal(t, monthStart, record.Month)
				assert.Equal(t, tt.quantity, record.Quantity)
				assert.Equal(t, tt.expectedMet, record.Achieved)
				return record, nil
			})

			record, err := service.CheckMonthlyBuy(ctx, 1, anchor)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMet, record.Achieved)
		})
	}
}

func TestEvaluateAffiliate(t *testing.T) {
	service, trackingRepo, orderRepo, userRepo, rules, notifications := NewMock(t)
	ctx := context.Background()

	previousMonth := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	expectRecompute := func(quantity int) {
		orderRepo.EXPECT().SumQuantityForPeriod(ctx, 1, previousMonth, nextMonth).Return(quantity, nil)
		rules.EXPECT().Number(ctx, rulesservice.KeyMinMonthlyBuy, float64(rulesservice.DefaultMinMonthlyBuy)).Return(1.0, nil)
		trackingRepo.EXPECT().UpsertMonthly(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, record *domain.MinMonthlyBuy) (*domain.MinMonthlyBuy, error) {
			return record, nil
		})
	}

	t.Run("Compliant affiliate stays active", func(t *testing.T) {
		expectRecompute(2)
		err := service.EvaluateAffiliate(ctx, 1, previousMonth)
		assert.NoError(t, err)
	})

	t.Run("Non-compliant affiliate is deactivated", func(t *testing.T) {
		expectRecompute(0)
		userRepo.EXPECT().GetAffiliate(ctx, 1).Return(&domain.Affiliate{
			ID: 1, Status: domain.AffiliateStatusActive,
		}, nil)
		userRepo.EXPECT().UpdateAffiliateStatus(ctx, 1, domain.AffiliateStatusInactive).Return(nil)
		userRepo.EXPECT().SetActive(ctx, 1, false).Return(nil)
		notifications.EXPECT().NotifyDeactivated(ctx, 1)

		err := service.EvaluateAffiliate(ctx, 1, previousMonth)
		assert.NoError(t, err)
	})

	// Deactivation reaches the account itself: without it the affiliate
	// could still log in and would be re-listed by every later evaluation.
	t.Run("Account deactivation failure propagates", func(t *testing.T) {
		expectRecompute(0)
		userRepo.EXPECT().GetAffiliate(ctx, 1).Return(&domain.Affiliate{
			ID: 1, Status: domain.AffiliateStatusActive,
		}, nil)
		userRepo.EXPECT().UpdateAffiliateStatus(ctx, 1, domain.AffiliateStatusInactive).Return(nil)
		userRepo.EXPECT().SetActive(ctx, 1, false).Return(errors.New("database error"))

		err := service.EvaluateAffiliate(ctx, 1, previousMonth)
		assert.EqualError(t, err, "database error")
	})

	t.Run("Already inactive affiliate is untouched", func(t *testing.T) {
		expectRecompute(0)
		userRepo.EXPECT().GetAffiliate(ctx, 1).Return(&domain.Affiliate{
			ID: 1, Status: domain.AffiliateStatusInactive,
		}, nil)

		err := service.EvaluateAffiliate(ctx, 1, previousMonth)
		assert.NoError(t, err)
	})

	t.Run("Status update failure propagates", func(t *testing.T) {
		expectRecompute(0)
		userRepo.EXPECT().GetAffiliate(ctx, 1).Return(&domain.Affiliate{
			ID: 1, Status: domain.AffiliateStatusActive,
		}, nil)
		userRepo.EXPECT().UpdateAffiliateStatus(ctx, 1, domain.AffiliateStatusInactive).Return(errors.New("database error"))

		err := service.EvaluateAffiliate(ctx, 1, previousMonth)
		assert.EqualError(t, err, "database error")
	})
}

func TestHistory(t *testing.T) {
	service, trackingRepo, _, _, _, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Defaults to twelve months", func(t *testing.T) {
		trackingRepo.EXPECT().History(ctx, 1, 12).Return([]domain.MinMonthlyBuy{
			{AffiliateID: 1, Quantity: 2, Achieved: true},
		}, nil)
		records, err := service.History(ctx, 1, 0)
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.True(t, records[0].Achieved)
	})
}
