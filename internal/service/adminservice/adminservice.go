package adminservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
)

const lowStockThreshold = 10

var ErrUserNotFound = errors.New("user not found")

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context, filters dto.UserFiltersDTO) ([]domain.User, int, error)
	CountUsers(ctx context.Context) (int, error)
	SetActive(ctx context.Context, id int, active bool) error
	GetAffiliate(ctx context.Context, id int) (*domain.Affiliate, error)
	UpdateAffiliateStatus(ctx context.Context, id int, status string) error
	CountActiveAffiliates(ctx context.Context) (int, error)
	ListAdminRegions(ctx context.Context, adminID int) ([]string, error)
}

type OrderRepo interface {
	SumSales(ctx context.Context, regions []string, from, to *time.Time) (float64, error)
	CountSales(ctx context.Context, regions []string, from, to *time.Time) (int, error)
	Recent(ctx context.Context, regions []string, limit int) ([]domain.OrderWithUser, error)
}

type ProductRepo interface {
	LowStockProducts(ctx context.Context, threshold, limit int) ([]domain.Product, error)
}

type CommissionRepo interface {
	CountPending(ctx context.Context, regions []string) (int, error)
}

type Service struct {
	userRepo       UserRepo
	orderRepo      OrderRepo
	productRepo    ProductRepo
	commissionRepo CommissionRepo
}

func New(userRepo UserRepo, orderRepo OrderRepo, productRepo ProductRepo, commissionRepo CommissionRepo) *Service {
	return &Service{
		userRepo:       userRepo,
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		commissionRepo: commissionRepo,
	}
}

// GetDashboard assembles the admin landing page: sales KPIs, recent orders
// and products running low. Regional admins see only their regions.
func (s *Service) GetDashboard(ctx context.Context, adminID int) (*dto.DashboardDTO, error) {
	admin, err := s.userRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrUserNotFound
	}
	isGlobal := admin.Role == domain.RoleAdminGeneral
	var regions []string
	if !isGlobal {
		regions, err = s.userRepo.ListAdminRegions(ctx, adminID)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	totalSales, err := s.orderRepo.SumSales(ctx, regions, nil, nil)
	if err != nil {
		return nil, err
	}
	monthlyRevenue, err := s.orderRepo.SumSales(ctx, regions, &monthStart, nil)
	if err != nil {
		return nil, err
	}
	monthlyOrders, err := s.orderRepo.CountSales(ctx, regions, &monthStart, nil)
	if err != nil {
		return nil, err
	}
	activeAffiliates, err := s.userRepo.CountActiveAffiliates(ctx)
	if err != nil {
		return nil, err
	}
	pendingCommissions, err := s.commissionRepo.CountPending(ctx, regions)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.orderRepo.Recent(ctx, regions, 5)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.productRepo.LowStockProducts(ctx, lowStockThreshold, 5)
	if err != nil {
		return nil, err
	}

	dashboard := &dto.DashboardDTO{
		KPIs: dto.DashboardKPIsDTO{
			TotalSales:         totalSales,
			MonthlyOrders:      monthlyOrders,
			MonthlyRevenue:     monthlyRevenue,
			ActiveAffiliates:   activeAffiliates,
			PendingCommissions: pendingCommissions,
			TotalUsers:         totalUsers,
		},
		RecentOrders:     make([]dto.OrderDTO, 0, len(recent)),
		LowStockProducts: make([]dto.ProductDTO, 0, len(lowStock)),
		AdminInfo: dto.AdminInfoDTO{
			Role:     admin.Role,
			Regions:  regions,
			IsGlobal: isGlobal,
		},
	}
	for _, o := range recent {
		dashboard.RecentOrders = append(dashboard.RecentOrders, dto.OrderDTO{
			ID:           o.ID,
			Status:       o.Status,
			TotalAmount:  o.TotalAmount,
			ShippingCost: o.ShippingCost,
			TrackingCode: o.TrackingCode,
			CreatedAt:    o.CreatedAt,
			DeliveredAt:  o.DeliveredAt,
		})
	}
	for _, p := range lowStock {
		dashboard.LowStockProducts = append(dashboard.LowStockProducts, dto.ProductDTO{
			ID:             p.ID,
			Name:           p.Name,
			SKU:            p.SKU,
			Price:          p.PublicPrice,
			PublicPrice:    p.PublicPrice,
			AffiliatePrice: p.AffiliatePrice,
			Stock:          p.Stock,
			IsAvailable:    p.IsActive && p.Stock > 0,
			CreatedAt:      p.CreatedAt,
		})
	}
	return dashboard, nil
}

func (s *Service) ListUsers(ctx context.Context, filters dto.UserFiltersDTO) (*dto.UserListDTO, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}
	users, total, err := s.userRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	list := &dto.UserListDTO{
		Users:      make([]dto.UserDTO, 0, len(users)),
		Pagination: dto.NewPagination(filters.Page, filters.Limit, total),
	}
	for _, u := range users {
		userDTO := dto.UserDTO{
			ID:        u.ID,
			DNI:       u.DNI,
			FullName:  u.FullName,
			Email:     u.Email,
			Role:      u.Role,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
			LastLogin: u.LastLogin,
		}
		if u.Role == domain.RoleAffiliate {
			if affiliate, err := s.userRepo.GetAffiliate(ctx, u.ID); err == nil && affiliate != nil {
				userDTO.Affiliate = &dto.AffiliateProfileDTO{
					SponsorID: affiliate.SponsorID,
					Phone:     affiliate.Phone,
					Region:    affiliate.Region,
					City:      affiliate.City,
					Address:   affiliate.Address,
					Status:    affiliate.Status,
					Points:    affiliate.Points,
				}
			}
		}
		list.Users = append(list.Users, userDTO)
	}
	return list, nil
}

// SetUserActive toggles login access; deactivating an affiliate also marks
// the affiliate record inactive so commissions stop accruing.
func (s *Service) SetUserActive(ctx context.Context, userID int, active bool) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.SetActive(ctx, userID, active); err != nil {
		return err
	}
	if user.Role == domain.RoleAffiliate {
		status := domain.AffiliateStatusInactive
		if active {
			status = domain.AffiliateStatusActive
		}
		if err := s.userRepo.UpdateAffiliateStatus(ctx, userID, status); err != nil {
			return err
		}
	}
	zap.L().Info("user active flag changed", zap.Int("userID", userID), zap.Bool("active", active))
	return nil
}
