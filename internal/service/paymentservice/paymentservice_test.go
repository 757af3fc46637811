package paymentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/pg"
)

type mocks struct {
	orderRepo     *MockOrderRepo
	userRepo      *MockUserRepo
	commissions   *MockCommissionService
	tracking      *MockTrackingService
	rewards       *MockRewardService
	notifications *MockNotificationService
	txManager     *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		orderRepo:     NewMockOrderRepo(ctrl),
		userRepo:      NewMockUserRepo(ctrl),
		commissions:   NewMockCommissionService(ctrl),
		tracking:      NewMockTrackingService(ctrl),
		rewards:       NewMockRewardService(ctrl),
		notifications: NewMockNotificationService(ctrl),
		txManager:     pg.NewMockTXManager(ctrl),
	}
	service := New(m.orderRepo, m.userRepo, m.commissions, m.tracking, m.rewards, m.notifications, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()

	pendingOrder := func() *domain.Order {
		return &domain.Order{ID: 10, UserID: 1, Status: domain.OrderStatusPending, TotalAmount: 155.50}
	}

	t.Run("Affiliate payment runs full pipeline", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(pendingOrder(), nil)
		m.txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
		m.orderRepo.EXPECT().MarkPaid(ctx, 10).Return(true, nil)
		m.orderRepo.EXPECT().CreatePayment(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
			assert.Equal(t, 155.50, p.Amount)
			assert.Equal(t, "confirmed", p.Status)
			assert.NotEmpty(t, p.Reference)
			p.ID = 3
			return p, nil
		})
		m.userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Role: domain.RoleAffiliate}, nil)
		// Commissions first, then points, then the monthly record; the
		// confirmation notice closes the pipeline.
		gomock.InOrder(
			m.commissions.EXPECT().Calculate(ctx, 10).Return(nil),
			m.rewards.EXPECT().AddPointsForPurchase(ctx, 1, 155.50).Return(15, nil),
			m.tracking.EXPECT().CheckMonthlyBuy(ctx, 1, gomock.Any()).Return(&domain.MinMonthlyBuy{Achieved: true}, nil),
			m.notifications.EXPECT().NotifyPaymentConfirmed(ctx, 1, 10),
		)
		m.orderRepo.EXPECT().ItemsByOrder(ctx, 10).Return([]domain.OrderItem{{ID: 100, Quantity: 2, UnitPrice: 50}}, nil)

		response, err := service.Confirm(ctx, 1, dto.ConfirmPaymentRequestDTO{OrderID: 10, Method: "bank_transfer"})
		assert.NoError(t, err)
		assert.Equal(t, 3, response.Payment.ID)
		assert.Equal(t, domain.OrderStatusPaid, response.Order.Status)
	})

	t.Run("Visitor payment skips tracking and points", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(pendingOrder(), nil)
		m.txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
		m.orderRepo.EXPECT().MarkPaid(ctx, 10).Return(true, nil)
		m.orderRepo.EXPECT().CreatePayment(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
			return p, nil
		})
		m.userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Role: domain.RoleVisitor}, nil)
		m.commissions.EXPECT().Calculate(ctx, 10).Return(nil)
		m.notifications.EXPECT().NotifyPaymentConfirmed(ctx, 1, 10)
		m.orderRepo.EXPECT().ItemsByOrder(ctx, 10).Return(nil, nil)

		_, err := service.Confirm(ctx, 1, dto.ConfirmPaymentRequestDTO{OrderID: 10, Method: "cash_deposit"})
		assert.NoError(t, err)
	})

	t.Run("Pipeline failure does not undo the payment", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(pendingOrder(), nil)
		m.txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
		m.orderRepo.EXPECT().MarkPaid(ctx, 10).Return(true, nil)
		m.orderRepo.EXPECT().CreatePayment(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
			return p, nil
		})
		m.userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Role: domain.RoleAffiliate}, nil)
		m.commissions.EXPECT().Calculate(ctx, 10).Return(errors.New("commission failure"))
		m.tracking.EXPECT().CheckMonthlyBuy(ctx, 1, gomock.Any()).Return(nil, errors.New("tracking failure"))
		m.rewards.EXPECT().AddPointsForPurchase(ctx, 1, 155.50).Return(15, nil)
		m.notifications.EXPECT().NotifyPaymentConfirmed(ctx, 1, 10)
		m.orderRepo.EXPECT().ItemsByOrder(ctx, 10).Return(nil, nil)

		_, err := service.Confirm(ctx, 1, dto.ConfirmPaymentRequestDTO{OrderID: 10})
		assert.NoError(t, err)
	})

	t.Run("Order not owned", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(pendingOrder(), nil)

		response, err := service.Confirm(ctx, 2, dto.ConfirmPaymentRequestDTO{OrderID: 10})
		assert.Nil(t, response)
		assert.ErrorIs(t, err, ErrOrderNotOwned)
	})

	t.Run("Order already paid", func(t *testing.T) {
		service, m := NewMock(t)
		paid := pendingOrder()
		paid.Status = domain.OrderStatusPaid
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(paid, nil)

		response, err := service.Confirm(ctx, 1, dto.ConfirmPaymentRequestDTO{OrderID: 10})
		assert.Nil(t, response)
		assert.ErrorIs(t, err, ErrNotPending)
	})

	t.Run("Amount mismatch", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(pendingOrder(), nil)

		response, err := service.Confirm(ctx, 1, dto.ConfirmPaymentRequestDTO{OrderID: 10, Amount: 99})
		assert.Nil(t, response)
		assert.ErrorIs(t, err, ErrAmountMismatch)
	})

	t.Run("Concurrent confirmation loses the race", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(pendingOrder(), nil)
		m.txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
		m.orderRepo.EXPECT().MarkPaid(ctx, 10).Return(false, nil)

		response, err := service.Confirm(ctx, 1, dto.ConfirmPaymentRequestDTO{OrderID: 10})
		assert.Nil(t, response)
		assert.ErrorIs(t, err, ErrNotPending)
	})
}

func TestMethods(t *testing.T) {
	service, _ := NewMock(t)

	methods := service.Methods()
	assert.Len(t, methods, 3)
	assert.Equal(t, "bank_transfer", methods[0].ID)
	assert.NotEmpty(t, methods[0].BankInfo["account"])
}
