package paymentservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/pg"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderNotOwned  = errors.New("order does not belong to caller")
	ErrNotPending     = errors.New("order is not pending payment")
	ErrAmountMismatch = errors.New("payment amount does not match order total")
)

type OrderRepo interface {
	FindByID(ctx context.Context, orderID int) (*domain.Order, error)
	ItemsByOrder(ctx context.Context, orderID int) ([]domain.OrderItem, error)
	MarkPaid(ctx context.Context, orderID int) (bool, error)
	CreatePayment(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
}

type CommissionService interface {
	Calculate(ctx context.Context, orderID int) error
}

type TrackingService interface {
	CheckMonthlyBuy(ctx context.Context, affiliateID int, anchor time.Time) (*domain.MinMonthlyBuy, error)
}

type RewardService interface {
	AddPointsForPurchase(ctx context.Context, affiliateID int, amount float64) (int, error)
}

type NotificationService interface {
	NotifyPaymentConfirmed(ctx context.Context, userID, orderID int)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	orderRepo           OrderRepo
	userRepo            UserRepo
	commissionService   CommissionService
	trackingService     TrackingService
	rewardService       RewardService
	notificationService NotificationService
	txManager           pg.TXManager
}

func New(orderRepo OrderRepo, userRepo UserRepo, commissions CommissionService, tracking TrackingService, rewards RewardService, notifications NotificationService, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:           orderRepo,
		userRepo:            userRepo,
		commissionService:   commissions,
		trackingService:     tracking,
		rewardService:       rewards,
		notificationService: notifications,
		txManager:           txManager,
	}
}

// Confirm records an operator-confirmed payment and flips the order from
// pending to paid in one transaction. The post-payment pipeline runs after
// commit; its steps are best effort and never undo the payment.
func (s *Service) Confirm(ctx context.Context, userID int, input dto.ConfirmPaymentRequestDTO) (*dto.ConfirmPaymentResponseDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrOrderNotOwned
	}
	if order.Status != domain.OrderStatusPending {
		return nil, ErrNotPending
	}
	if input.Amount != 0 && input.Amount != order.TotalAmount {
		return nil, ErrAmountMismatch
	}

	reference := input.Reference
	if reference == "" {
		reference = uuid.NewString()
	}

	var payment *domain.Payment
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.orderRepo.MarkPaid(ctx, order.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotPending
		}
		payment, err = s.orderRepo.CreatePayment(ctx, &domain.Payment{
			OrderID:   order.ID,
			Method:    input.Method,
			Amount:    order.TotalAmount,
			Status:    "confirmed",
			Reference: reference,
		})
		return err
	})
	if err != nil {
		zap.L().Error("payment confirmation failed", zap.Int("orderID", order.ID), zap.Error(err))
		return nil, err
	}
	order.Status = domain.OrderStatusPaid

	s.runPostPaymentPipeline(ctx, order)

	items, err := s.orderRepo.ItemsByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	zap.L().Info("payment confirmed",
		zap.Int("orderID", order.ID), zap.String("reference", reference))
	return &dto.ConfirmPaymentResponseDTO{
		Payment: dto.PaymentDTO{
			ID:        payment.ID,
			OrderID:   payment.OrderID,
			Method:    payment.Method,
			Amount:    payment.Amount,
			Status:    payment.Status,
			Reference: payment.Reference,
			PaidAt:    payment.PaidAt,
		},
		Order: buildOrderDTO(order, items),
	}, nil
}

// postPaymentStep names one best-effort step of the pipeline; a failing step
// is logged and the remaining steps still run.
type postPaymentStep struct {
	name string
	run  func(ctx context.Context) error
}

func (s *Service) runPostPaymentPipeline(ctx context.Context, order *domain.Order) {
	buyer, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		zap.L().Error("post-payment: can't load buyer", zap.Int("orderID", order.ID), zap.Error(err))
		return
	}
	isAffiliate := buyer != nil && buyer.Role == domain.RoleAffiliate

	steps := []postPaymentStep{
		{"commissions", func(ctx context.Context) error {
			return s.commissionService.Calculate(ctx, order.ID)
		}},
		{"points", func(ctx context.Context) error {
			if !isAffiliate {
				return nil
			}
			_, err := s.rewardService.AddPointsForPurchase(ctx, order.UserID, order.TotalAmount)
			return err
		}},
		{"monthly tracking", func(ctx context.Context) error {
			if !isAffiliate {
				return nil
			}
			_, err := s.trackingService.CheckMonthlyBuy(ctx, order.UserID, time.Now())
			return err
		}},
		{"notification", func(ctx context.Context) error {
			s.notificationService.NotifyPaymentConfirmed(ctx, order.UserID, order.ID)
			return nil
		}},
	}
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			zap.L().Error("post-payment step failed",
				zap.String("step", step.name), zap.Int("orderID", order.ID), zap.Error(err))
		}
	}
}

// Methods lists the accepted manual payment channels.
func (s *Service) Methods() []dto.PaymentMethodDTO {
	return []dto.PaymentMethodDTO{
		{
			ID:           "bank_transfer",
			Name:         "Bank transfer",
			Description:  "Transfer to the company account and submit the operation number.",
			Instructions: "Use the order id as the transfer concept.",
			BankInfo: map[string]string{
				"bank":    "BCP",
				"account": "193-2456789-0-11",
				"cci":     "00219300245678901134",
			},
		},
		{
			ID:          "cash_deposit",
			Name:        "Cash deposit",
			Description: "Deposit at any branch and submit the voucher number.",
		},
		{
			ID:          "mobile_wallet",
			Name:        "Mobile wallet",
			Description: "Pay by wallet transfer and submit the operation code.",
		},
	}
}

func buildOrderDTO(order *domain.Order, items []domain.OrderItem) dto.OrderDTO {
	result := dto.OrderDTO{
		ID:           order.ID,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		ShippingCost: order.ShippingCost,
		TrackingCode: order.TrackingCode,
		CreatedAt:    order.CreatedAt,
		DeliveredAt:  order.DeliveredAt,
		Items:        make([]dto.OrderItemDTO, 0, len(items)),
	}
	for _, it := range items {
		result.Items = append(result.Items, dto.OrderItemDTO{
			ID:         it.ID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.UnitPrice * float64(it.Quantity),
			ProductID:  it.ProductID,
		})
	}
	return result
}
