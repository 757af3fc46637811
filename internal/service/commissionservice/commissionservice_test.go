package commissionservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/service/rulesservice"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockOrderRepo, *MockUserRepo, *MockRulesService, *MockNotificationService) {
	ctrl := gomock.NewController(t)
	commissionRepo := NewMockRepo(ctrl)
	orderRepo := NewMockOrderRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	rules := NewMockRulesService(ctrl)
	notifications := NewMockNotificationService(ctrl)

	service := New(commissionRepo, orderRepo, userRepo, rules, notifications)
	defer ctrl.Finish()
	return service, commissionRepo, orderRepo, userRepo, rules, notifications
}

func TestCommissionAmount(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		quantity  int
		pct       float64
		expected  float64
	}{
		{"Whole cents", 100, 2, 20, 40},
		{"Fractional price", 33.33, 1, 10, 3.33},
		{"Rounds half up", 0.25, 1, 10, 0.03},
		{"Zero quantity", 50, 0, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, commissionAmount(tt.unitPrice, tt.quantity, tt.pct))
		})
	}
}

func TestCalculate(t *testing.T) {
	service, commissionRepo, orderRepo, userRepo, rules, notifications := NewMock(t)
	ctx := context.Background()

	sponsorID := 5
	order := &domain.Order{ID: 10, UserID: 1}
	items := []domain.OrderItem{
		{ID: 100, Quantity: 2, UnitPrice: 50},
		{ID: 101, Quantity: 1, UnitPrice: 30},
	}

	expectRules := func() {
		rules.EXPECT().Number(ctx, rulesservice.KeyDirectPercentage, float64(rulesservice.DefaultDirectPercentage)).Return(20.0, nil)
		rules.EXPECT().Number(ctx, rulesservice.KeyReferralPercentage, float64(rulesservice.DefaultReferralPercentage)).Return(10.0, nil)
	}

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Direct and referral commissions for active chain",
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(ctx, 10).Return(order, nil)
				userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Role: domain.RoleAffiliate}, nil)
				userRepo.EXPECT().GetAffiliate(ctx, 1).Return(&domain.Affiliate{ID: 1, Status: domain.AffiliateStatusActive}, nil)
				orderRepo.EXPECT().ItemsByOrder(ctx, 10).Return(items, nil)
				expectRules()

				commissionRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *domain.Commission) (bool, error) {
					assert.Equal(t, 1, c.AffiliateID)
					assert.Equal(t, domain.CommissionTypeDirect, c.Type)
					assert.Equal(t, 20.0, c.Amount)
					return true, nil
				})
				commissionRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *domain.Commission) (bool, error) {
					assert.Equal(t, 6.0, c.Amount)
					return true, nil
				})
				notifications.EXPECT().NotifyCommission(ctx, 1, 26.0)

				userRepo.EXPECT().GetReferrer(ctx, 1).Return(&domain.User{ID: sponsorID, Role: domain.RoleAffiliate}, nil)
				userRepo.EXPECT().GetAffiliate(ctx, sponsorID).Return(&domain.Affiliate{ID: sponsorID, Status: domain.AffiliateStatusActive}, nil)
				commissionRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *domain.Commission) (bool, error) {
					assert.Equal(t, sponsorID, c.AffiliateID)
					assert.Equal(t, domain.CommissionTypeReferral, c.Type)
					assert.Equal(t, 10.0, c.Amount)
					return true, nil
				})
				commissionRepo.EXPECT().Create(ctx, gomock.Any()).Return(true, nil)
				notifications.EXPECT().NotifyCommission(ctx, sponsorID, 13.0)
			},
		},
		{
			name: "Visitor purchase produces nothing",
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(ctx, 10).Return(order, nil)
				userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Role: domain.RoleVisitor}, nil)
			},
		},
		{
			name: "Inactive buyer earns no direct but active sponsor keeps referral",
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(ctx, 10).Return(order, nil)
				userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Role: domain.RoleAffiliate}, nil)
				userRepo.EXPECT().GetAffiliate(ctx, 1).Return(&domain.Affiliate{ID: 1, Status: domain.AffiliateStatusInactive}, nil)
				orderRepo.EXPECT().ItemsByOrder(ctx, 10).Return(items, nil)
				expectRules()

				userRepo.EXPECT().GetReferrer(ctx, 1).Return(&domain.User{ID: sponsorID, Role: domain.RoleAffiliate}, nil)
				userRepo.EXPECT().GetAffiliate(ctx, sponsorID).Return(&domain.Affiliate{ID: sponsorID, Status: domain.AffiliateStatusActive}, nil)
				commissionRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *domain.Commission) (bool, error) {
					assert.Equal(t, sponsorID, c.AffiliateID)
					assert.Equal(t, domain.CommissionTypeReferral, c.Type)
					return true, nil
				}).Times(2)
				notifications.EXPECT().NotifyCommission(ctx, sponsorID, 13.0)
			},
		},
		{
			name: "Buyer without affiliate profile produces nothing",
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(ctx, 10).Return(order, nil)
				userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Role: domain.RoleAffiliate}, nil)
				userRepo.EXPECT().GetAffiliate(ctx, 1).Return(nil, nil)
			},
		},
		{
			name: "Inactive sponsor earns nothing",
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(ctx, 10).Return(order, nil)
				userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Role: domain.RoleAffiliate}, nil)
				userRepo.EXPECT().GetAffiliate(ctx, 1).Return(&domain.Affiliate{ID: 1, Status: domain.AffiliateStatusActive}, nil)
				orderRepo.EXPECT().ItemsByOrder(ctx, 10).Return(items, nil)
				expectRules()
				commissionRepo.EXPECT().Create(ctx, gomock.Any()).Return(true, nil).Times(2)
				notifications.EXPECT().NotifyCommission(ctx, 1, gomock.Any())
				userRepo.EXPECT().GetReferrer(ctx, 1).Return(&domain.User{ID: sponsorID}, nil)
				userRepo.EXPECT().GetAffiliate(ctx, sponsorID).Return(&domain.Affiliate{ID: sponsorID, Status: domain.AffiliateStatusInactive}, nil)
			},
		},
		{
			name: "Recalculation is a no-op",
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(ctx, 10).Return(order, nil)
				userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Role: domain.RoleAffiliate}, nil)
				userRepo.EXPECT().GetAffiliate(ctx, 1).Return(&domain.Affiliate{ID: 1, Status: domain.AffiliateStatusActive}, nil)
				orderRepo.EXPECT().ItemsByOrder(ctx, 10).Return(items, nil)
				expectRules()
				commissionRepo.EXPECT().Create(ctx, gomock.Any()).Return(false, nil).Times(2)
				userRepo.EXPECT().GetReferrer(ctx, 1).Return(nil, nil)
			},
		},
		{
			name: "Order not found",
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(ctx, 10).Return(nil, nil)
			},
			expectedErr: errors.New("order not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Calculate(ctx, 10)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApprove(t *testing.T) {
	service, commissionRepo, _, _, _, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Approves pending commission", func(t *testing.T) {
		commissionRepo.EXPECT().FindByID(ctx, 1).Return(&domain.Commission{
			ID: 1, Status: domain.CommissionStatusPending,
		}, nil)
		commissionRepo.EXPECT().Approve(ctx, 1).Return(&domain.Commission{
			ID: 1, Status: domain.CommissionStatusApproved,
		}, nil)
		result, err := service.Approve(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.CommissionStatusApproved, result.Status)
	})

	t.Run("Rejects non-pending commission", func(t *testing.T) {
		commissionRepo.EXPECT().FindByID(ctx, 1).Return(&domain.Commission{
			ID: 1, Status: domain.CommissionStatusPaid,
		}, nil)
		result, err := service.Approve(ctx, 1)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrNotPending)
	})

	t.Run("Unknown commission", func(t *testing.T) {
		commissionRepo.EXPECT().FindByID(ctx, 2).Return(nil, nil)
		result, err := service.Approve(ctx, 2)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrCommissionNotFound)
	})
}

func TestMarkPaid(t *testing.T) {
	service, commissionRepo, _, _, _, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Marks approved commissions", func(t *testing.T) {
		commissionRepo.EXPECT().MarkPaid(ctx, []int{1, 2, 3}).Return(2, nil)
		result, err := service.MarkPaid(ctx, []int{1, 2, 3})
		assert.NoError(t, err)
		assert.Equal(t, 2, result.UpdatedCount)
	})

	t.Run("Empty id list", func(t *testing.T) {
		result, err := service.MarkPaid(ctx, nil)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrNoCommissions)
	})
}
