package commissionservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/rulesservice"
)

// ReferralDepth bounds how far up the sponsor chain referral commissions
// propagate. The program pays a single level.
const ReferralDepth = 1

var (
	ErrCommissionNotFound = errors.New("commission not found")
	ErrNotPending         = errors.New("commission is not pending")
	ErrNoCommissions      = errors.New("no commission ids given")
)

type Repo interface {
	Create(ctx context.Context, c *domain.Commission) (bool, error)
	FindByID(ctx context.Context, id int) (*domain.Commission, error)
	ListByAffiliate(ctx context.Context, affiliateID int, filters dto.CommissionFiltersDTO) ([]domain.CommissionDetail, int, error)
	SumByTypeStatus(ctx context.Context, affiliateID int, from, to *time.Time) ([]domain.CommissionSum, error)
	Approve(ctx context.Context, id int) (*domain.Commission, error)
	MarkPaid(ctx context.Context, ids []int) (int, error)
	ListPending(ctx context.Context, regions []string, filters dto.CommissionFiltersDTO) ([]domain.CommissionDetail, int, error)
}

type OrderRepo interface {
	FindByID(ctx context.Context, orderID int) (*domain.Order, error)
	ItemsByOrder(ctx context.Context, orderID int) ([]domain.OrderItem, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	GetAffiliate(ctx context.Context, id int) (*domain.Affiliate, error)
	GetReferrer(ctx context.Context, referredID int) (*domain.User, error)
	ListAdminRegions(ctx context.Context, adminID int) ([]string, error)
}

type RulesService interface {
	Number(ctx context.Context, key string, fallback float64) (float64, error)
}

type NotificationService interface {
	NotifyCommission(ctx context.Context, userID int, amount float64)
}

type Service struct {
	commissionRepo      Repo
	orderRepo           OrderRepo
	userRepo            UserRepo
	rulesService        RulesService
	notificationService NotificationService
}

func New(commissionRepo Repo, orderRepo OrderRepo, userRepo UserRepo, rules RulesService, notifications NotificationService) *Service {
	return &Service{
		commissionRepo:      commissionRepo,
		orderRepo:           orderRepo,
		userRepo:            userRepo,
		rulesService:        rules,
		notificationService: notifications,
	}
}

// Calculate creates the commissions a paid order produces: a direct
// commission per item when the purchaser is an active affiliate, and a
// referral commission per item for the sponsor one level up. Amounts are
// computed as unitPrice * quantity * pct / 100, rounded half-up to cents.
// The (affiliate, order item, type) unique key makes recalculation a no-op.
func (s *Service) Calculate(ctx context.Context, orderID int) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return errors.New("order not found")
	}

	buyer, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		return err
	}
	if buyer == nil || buyer.Role != domain.RoleAffiliate {
		return nil
	}
	affiliate, err := s.userRepo.GetAffiliate(ctx, buyer.ID)
	if err != nil {
		return err
	}
	if affiliate == nil {
		return nil
	}

	items, err := s.orderRepo.ItemsByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	directPct, err := s.rulesService.Number(ctx, rulesservice.KeyDirectPercentage, rulesservice.DefaultDirectPercentage)
	if err != nil {
		return err
	}
	referralPct, err := s.rulesService.Number(ctx, rulesservice.KeyReferralPercentage, rulesservice.DefaultReferralPercentage)
	if err != nil {
		return err
	}

	// Direct and referral commissions are independent: an inactive buyer
	// earns nothing themselves, but their active sponsor still gets the
	// referral cut.
	if affiliate.Status == domain.AffiliateStatusActive {
		directTotal := 0.0
		for _, item := range items {
			amount := commissionAmount(item.UnitPrice, item.Quantity, directPct)
			created, err := s.commissionRepo.Create(ctx, &domain.Commission{
				AffiliateID: affiliate.ID,
				OrderItemID: item.ID,
				Type:        domain.CommissionTypeDirect,
				Amount:      amount,
				Percentage:  directPct,
				Status:      domain.CommissionStatusPending,
			})
			if err != nil {
				return err
			}
			if created {
				directTotal += amount
			}
		}
		if directTotal > 0 {
			s.notificationService.NotifyCommission(ctx, affiliate.ID, directTotal)
		}
	} else {
		zap.L().Info("skip direct commission for inactive affiliate", zap.Int("affiliateID", buyer.ID))
	}

	sponsorTotals := map[int]float64{}
	current := affiliate.ID
	for depth := 0; depth < ReferralDepth; depth++ {
		sponsor, err := s.userRepo.GetReferrer(ctx, current)
		if err != nil {
			return err
		}
		if sponsor == nil {
			break
		}
		sponsorAffiliate, err := s.userRepo.GetAffiliate(ctx, sponsor.ID)
		if err != nil {
			return err
		}
		if sponsorAffiliate == nil || sponsorAffiliate.Status != domain.AffiliateStatusActive {
			current = sponsor.ID
			continue
		}
		for _, item := range items {
			amount := commissionAmount(item.UnitPrice, item.Quantity, referralPct)
			created, err := s.commissionRepo.Create(ctx, &domain.Commission{
				AffiliateID: sponsorAffiliate.ID,
				OrderItemID: item.ID,
				Type:        domain.CommissionTypeReferral,
				Amount:      amount,
				Percentage:  referralPct,
				Status:      domain.CommissionStatusPending,
			})
			if err != nil {
				return err
			}
			if created {
				sponsorTotals[sponsorAffiliate.ID] += amount
			}
		}
		current = sponsor.ID
	}
	for sponsorID, total := range sponsorTotals {
		if total > 0 {
			s.notificationService.NotifyCommission(ctx, sponsorID, total)
		}
	}

	zap.L().Info("commissions calculated", zap.Int("orderID", orderID))
	return nil
}

// commissionAmount computes unitPrice*quantity*pct/100 in decimal space and
// rounds half-up to two places.
func commissionAmount(unitPrice float64, quantity int, pct float64) float64 {
	amount := decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100))
	out, _ := amount.Round(2).Float64()
	return out
}

func (s *Service) GetAffiliateCommissions(ctx context.Context, affiliateID int, filters dto.CommissionFiltersDTO) (*dto.CommissionListDTO, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}
	details, total, err := s.commissionRepo.ListByAffiliate(ctx, affiliateID, filters)
	if err != nil {
		return nil, err
	}

	monthStart := startOfMonth(time.Now())
	monthSums, err := s.commissionRepo.SumByTypeStatus(ctx, affiliateID, &monthStart, nil)
	if err != nil {
		return nil, err
	}
	allSums, err := s.commissionRepo.SumByTypeStatus(ctx, affiliateID, nil, nil)
	if err != nil {
		return nil, err
	}

	list := &dto.CommissionListDTO{
		Summary: dto.CommissionSummaryDTO{
			CurrentMonth: totalsFromSums(monthSums),
			AllTime:      totalsFromSums(allSums),
		},
		Commissions: make([]dto.CommissionDTO, 0, len(details)),
		Pagination:  dto.NewPagination(filters.Page, filters.Limit, total),
	}
	for _, d := range details {
		list.Commissions = append(list.Commissions, toCommissionDTO(d))
	}
	return list, nil
}

func (s *Service) Approve(ctx context.Context, commissionID int) (*dto.CommissionDTO, error) {
	commission, err := s.commissionRepo.FindByID(ctx, commissionID)
	if err != nil {
		return nil, err
	}
	if commission == nil {
		return nil, ErrCommissionNotFound
	}
	if commission.Status != domain.CommissionStatusPending {
		return nil, ErrNotPending
	}
	approved, err := s.commissionRepo.Approve(ctx, commissionID)
	if err != nil {
		return nil, err
	}
	zap.L().Info("commission approved", zap.Int("commissionID", commissionID))
	result := toCommissionDTO(domain.CommissionDetail{Commission: *approved})
	return &result, nil
}

func (s *Service) MarkPaid(ctx context.Context, ids []int) (*dto.MarkPaidResponseDTO, error) {
	if len(ids) == 0 {
		return nil, ErrNoCommissions
	}
	updated, err := s.commissionRepo.MarkPaid(ctx, ids)
	if err != nil {
		return nil, err
	}
	zap.L().Info("commissions marked paid",
		zap.Int("requested", len(ids)), zap.Int("updated", updated))
	return &dto.MarkPaidResponseDTO{UpdatedCount: updated}, nil
}

// ListPending returns pending commissions scoped to the admin's regions;
// admin_general sees all.
func (s *Service) ListPending(ctx context.Context, adminID int, filters dto.CommissionFiltersDTO) ([]dto.CommissionDTO, *dto.PaginationDTO, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}
	regions, err := s.adminRegions(ctx, adminID)
	if err != nil {
		return nil, nil, err
	}
	details, total, err := s.commissionRepo.ListPending(ctx, regions, filters)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.CommissionDTO, 0, len(details))
	for _, d := range details {
		out = append(out, toCommissionDTO(d))
	}
	pagination := dto.NewPagination(filters.Page, filters.Limit, total)
	return out, &pagination, nil
}

func (s *Service) adminRegions(ctx context.Context, adminID int) ([]string, error) {
	admin, err := s.userRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.Role == domain.RoleAdminGeneral {
		return nil, nil
	}
	return s.userRepo.ListAdminRegions(ctx, adminID)
}

func totalsFromSums(sums []domain.CommissionSum) dto.CommissionTotalsDTO {
	var totals dto.CommissionTotalsDTO
	for _, s := range sums {
		totals.Total += s.Amount
		switch s.Type {
		case domain.CommissionTypeDirect:
			totals.Direct += s.Amount
		case domain.CommissionTypeReferral:
			totals.Referral += s.Amount
		}
		switch s.Status {
		case domain.CommissionStatusPending:
			totals.Pending += s.Amount
		case domain.CommissionStatusApproved:
			totals.Approved += s.Amount
		case domain.CommissionStatusPaid:
			totals.Paid += s.Amount
		}
	}
	return totals
}

func toCommissionDTO(d domain.CommissionDetail) dto.CommissionDTO {
	result := dto.CommissionDTO{
		ID:         d.ID,
		Type:       d.Type,
		Amount:     d.Amount,
		Percentage: d.Percentage,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
		ApprovedAt: d.ApprovedAt,
	}
	if d.OrderItem.ID != 0 {
		result.OrderItem = &dto.OrderItemDTO{
			ID:         d.OrderItem.ID,
			Quantity:   d.OrderItem.Quantity,
			UnitPrice:  d.OrderItem.UnitPrice,
			TotalPrice: d.OrderItem.UnitPrice * float64(d.OrderItem.Quantity),
			ProductID:  d.OrderItem.ProductID,
			Product:    d.ProductName,
		}
	}
	return result
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
