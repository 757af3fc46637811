package notificationservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
)

const (
	TypePayment      = "payment_confirmed"
	TypeCommission   = "commission_earned"
	TypePoints       = "points_earned"
	TypeDeactivation = "account_deactivated"
	TypeReward       = "reward_claimed"
	TypeWelcome      = "welcome"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Repo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int, filters dto.NotificationFiltersDTO) ([]domain.Notification, int, int, error)
	MarkRead(ctx context.Context, userID, notificationID int) (bool, error)
	MarkAllRead(ctx context.Context, userID int) (int, error)
}

type Service struct {
	notificationRepo Repo
}

func New(repo Repo) *Service {
	return &Service{notificationRepo: repo}
}

func (s *Service) List(ctx context.Context, userID int, filters dto.NotificationFiltersDTO) (*dto.NotificationListDTO, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}
	notifications, total, unread, err := s.notificationRepo.ListByUser(ctx, userID, filters)
	if err != nil {
		return nil, err
	}

	list := &dto.NotificationListDTO{
		UnreadCount:   unread,
		Notifications: make([]dto.NotificationDTO, 0, len(notifications)),
		Pagination:    dto.NewPagination(filters.Page, filters.Limit, total),
	}
	for _, n := range notifications {
		list.Notifications = append(list.Notifications, dto.NotificationDTO{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.ReadFlag,
			CreatedAt: n.CreatedAt,
		})
	}
	return list, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, notificationID int) error {
	ok, err := s.notificationRepo.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int) (int, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// Notify writes a notification, logging instead of failing: in-app messages
// are best effort and never abort the operation that produced them.
func (s *Service) Notify(ctx context.Context, userID int, notificationType, title, message string) {
	_, err := s.notificationRepo.Create(ctx, &domain.Notification{
		UserID:  userID,
		Type:    notificationType,
		Title:   title,
		Message: message,
	})
	if err != nil {
		zap.L().Error("can't create notification",
			zap.Int("userID", userID), zap.String("type", notificationType), zap.Error(err))
	}
}

func (s *Service) NotifyPaymentConfirmed(ctx context.Context, userID, orderID int) {
	s.Notify(ctx, userID, TypePayment, "Payment confirmed",
		fmt.Sprintf("Your payment for order #%d was confirmed.", orderID))
}

func (s *Service) NotifyCommission(ctx context.Context, userID int, amount float64) {
	s.Notify(ctx, userID, TypeCommission, "Commission earned",
		fmt.Sprintf("You earned a commission of %.2f.", amount))
}

func (s *Service) NotifyPoints(ctx context.Context, userID, points int) {
	s.Notify(ctx, userID, TypePoints, "Points earned",
		fmt.Sprintf("You earned %d points for your purchase.", points))
}

func (s *Service) NotifyDeactivated(ctx context.Context, userID int) {
	s.Notify(ctx, userID, TypeDeactivation, "Account deactivated",
		"Your account was deactivated for not meeting the monthly purchase requirement.")
}

func (s *Service) NotifyRewardClaimed(ctx context.Context, userID int, rewardName string) {
	s.Notify(ctx, userID, TypeReward, "Reward claimed",
		fmt.Sprintf("Your claim for %q was registered.", rewardName))
}

func (s *Service) NotifyWelcome(ctx context.Context, userID int, sponsorName string) {
	s.Notify(ctx, userID, TypeWelcome, "Welcome",
		fmt.Sprintf("You were registered as an affiliate by %s.", sponsorName))
}
