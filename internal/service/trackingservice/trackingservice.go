package trackingservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/rulesservice"
)

type Repo interface {
	UpsertMonthly(ctx context.Context, m *domain.MinMonthlyBuy) (*domain.MinMonthlyBuy, error)
	GetMonthly(ctx context.Context, affiliateID int, month time.Time) (*domain.MinMonthlyBuy, error)
	History(ctx context.Context, affiliateID, limit int) ([]domain.MinMonthlyBuy, error)
}

type OrderRepo interface {
	SumQuantityForPeriod(ctx context.Context, userID int, from, to time.Time) (int, error)
}

type UserRepo interface {
	GetAffiliate(ctx context.Context, id int) (*domain.Affiliate, error)
	UpdateAffiliateStatus(ctx context.Context, id int, status string) error
	SetActive(ctx context.Context, id int, active bool) error
	ActiveAffiliateIDs(ctx context.Context) ([]int, error)
}

type RulesService interface {
	Number(ctx context.Context, key string, fallback float64) (float64, error)
}

type NotificationService interface {
	NotifyDeactivated(ctx context.Context, userID int)
}

type Service struct {
	trackingRepo        Repo
	orderRepo           OrderRepo
	userRepo            UserRepo
	rulesService        RulesService
	notificationService NotificationService
}

func New(trackingRepo Repo, orderRepo OrderRepo, userRepo UserRepo, rules RulesService, notifications NotificationService) *Service {
	return &Service{
		trackingRepo:        trackingRepo,
		orderRepo:           orderRepo,
		userRepo:            userRepo,
		rulesService:        rules,
		notificationService: notifications,
	}
}

// CheckMonthlyBuy recomputes the affiliate's purchased quantity for the month
// containing anchor and overwrites the (affiliate, month) record. Orders in
// paid, shipped or delivered state count.
func (s *Service) CheckMonthlyBuy(ctx context.Context, affiliateID int, anchor time.Time) (*domain.MinMonthlyBuy, error) {
	from := startOfMonth(anchor)
	to := from.AddDate(0, 1, 0)

	quantity, err := s.orderRepo.SumQuantityForPeriod(ctx, affiliateID, from, to)
	if err != nil {
		return nil, err
	}
	required, err := s.rulesService.Number(ctx, rulesservice.KeyMinMonthlyBuy, rulesservice.DefaultMinMonthlyBuy)
	if err != nil {
		return nil, err
	}

	record, err := s.trackingRepo.UpsertMonthly(ctx, &domain.MinMonthlyBuy{
		AffiliateID: affiliateID,
		Month:       from,
		Quantity:    quantity,
		Achieved:    quantity >= int(required),
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// CurrentStatus reports this month's progress for the affiliate panel.
func (s *Service) CurrentStatus(ctx context.Context, affiliateID int) (*dto.MonthlyStatusDTO, error) {
	now := time.Now()
	record, err := s.CheckMonthlyBuy(ctx, affiliateID, now)
	if err != nil {
		return nil, err
	}
	required, err := s.rulesService.Number(ctx, rulesservice.KeyMinMonthlyBuy, rulesservice.DefaultMinMonthlyBuy)
	if err != nil {
		return nil, err
	}

	monthEnd := startOfMonth(now).AddDate(0, 1, 0)
	status := "at_risk"
	if record.Achieved {
		status = "compliant"
	}
	return &dto.MonthlyStatusDTO{
		CurrentMonth:  record.Month,
		Quantity:      record.Quantity,
		Required:      int(required),
		Achieved:      record.Achieved,
		DaysRemaining: int(monthEnd.Sub(now).Hours() / 24),
		Status:        status,
	}, nil
}

func (s *Service) History(ctx context.Context, affiliateID, months int) ([]dto.MonthlyRecordDTO, error) {
	if months < 1 {
		months = 12
	}
	records, err := s.trackingRepo.History(ctx, affiliateID, months)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlyRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.MonthlyRecordDTO{
			Month:    r.Month,
			Quantity: r.Quantity,
			Achieved: r.Achieved,
		})
	}
	return out, nil
}

// EvaluateAffiliate closes the previous month for one affiliate: recompute
// the record and deactivate plus notify when the minimum wasn't met.
func (s *Service) EvaluateAffiliate(ctx context.Context, affiliateID int, previousMonth time.Time) error {
	record, err := s.CheckMonthlyBuy(ctx, affiliateID, previousMonth)
	if err != nil {
		return err
	}
	if record.Achieved {
		return nil
	}

	affiliate, err := s.userRepo.GetAffiliate(ctx, affiliateID)
	if err != nil {
		return err
	}
	if affiliate == nil || affiliate.Status != domain.AffiliateStatusActive {
		return nil
	}
	if err := s.userRepo.UpdateAffiliateStatus(ctx, affiliateID, domain.AffiliateStatusInactive); err != nil {
		return err
	}
	// The account itself goes inactive too: the user can no longer log in
	// and drops out of the active-affiliate listings.
	if err := s.userRepo.SetActive(ctx, affiliateID, false); err != nil {
		return err
	}
	s.notificationService.NotifyDeactivated(ctx, affiliateID)
	zap.L().Info("affiliate deactivated for non-compliance",
		zap.Int("affiliateID", affiliateID), zap.Time("month", record.Month))
	return nil
}

func (s *Service) ActiveAffiliateIDs(ctx context.Context) ([]int, error) {
	return s.userRepo.ActiveAffiliateIDs(ctx)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
