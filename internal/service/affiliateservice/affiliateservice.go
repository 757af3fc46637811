package affiliateservice

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/pg"
	"github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/validate"
)

var (
	ErrNotAffiliate     = errors.New("caller is not an affiliate")
	ErrReferralCap      = errors.New("referral limit reached")
	ErrDNITaken         = errors.New("dni already registered")
	ErrEmailTaken       = errors.New("email already registered")
	ErrInvalidInput     = errors.New("invalid referral data")
	ErrNotInNetwork     = errors.New("affiliate is not in your network")
	ErrInvalidStatus    = errors.New("invalid affiliate status")
	ErrAffiliateMissing = errors.New("affiliate not found")
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByDNIOrEmail(ctx context.Context, dni, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetAffiliate(ctx context.Context, id int) (*domain.Affiliate, error)
	CreateAffiliate(ctx context.Context, a *domain.Affiliate) error
	CreateReferral(ctx context.Context, referrerID, referredID int) error
	CountReferrals(ctx context.Context, sponsorID int) (int, error)
	ListNetwork(ctx context.Context, sponsorID int, filters dto.NetworkFiltersDTO) ([]domain.NetworkMember, int, error)
	UpdateAffiliateStatus(ctx context.Context, id int, status string) error
	GetReferrer(ctx context.Context, referredID int) (*domain.User, error)
}

type CommissionRepo interface {
	SumReferralGenerated(ctx context.Context, affiliateID int, from, to *time.Time) (float64, error)
}

type NotificationService interface {
	NotifyWelcome(ctx context.Context, userID int, sponsorName string)
}

type Service struct {
	userRepo            UserRepo
	commissionRepo      CommissionRepo
	notificationService NotificationService
	txManager           pg.TXManager
	hashService         auth.HashServiceInterface
}

func New(userRepo UserRepo, commissionRepo CommissionRepo, notificationService NotificationService, txManager pg.TXManager, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:            userRepo,
		commissionRepo:      commissionRepo,
		notificationService: notificationService,
		txManager:           txManager,
		hashService:         hashService,
	}
}

// GetNetwork lists the caller's direct referrals with a summary of the
// network's size and the referral commissions it generated.
func (s *Service) GetNetwork(ctx context.Context, affiliateID int, filters dto.NetworkFiltersDTO) (*dto.NetworkDTO, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}
	members, total, err := s.userRepo.ListNetwork(ctx, affiliateID, filters)
	if err != nil {
		return nil, err
	}

	network := &dto.NetworkDTO{
		Affiliates: make([]dto.NetworkMemberDTO, 0, len(members)),
		Pagination: dto.NewPagination(filters.Page, filters.Limit, total),
	}
	activeCount := 0
	for _, m := range members {
		if m.Status == domain.AffiliateStatusActive && m.UserIsActive {
			activeCount++
		}
		network.Affiliates = append(network.Affiliates, dto.NetworkMemberDTO{
			ID:         m.ID,
			FullName:   m.FullName,
			DNI:        m.DNI,
			Phone:      m.Phone,
			City:       m.City,
			Status:     m.Status,
			IsActive:   m.UserIsActive,
			ReferredAt: m.UserCreatedAt,
		})
	}

	allTime, err := s.commissionRepo.SumReferralGenerated(ctx, affiliateID, nil, nil)
	if err != nil {
		return nil, err
	}
	monthStart := startOfMonth(time.Now())
	monthly, err := s.commissionRepo.SumReferralGenerated(ctx, affiliateID, &monthStart, nil)
	if err != nil {
		return nil, err
	}
	network.Summary = dto.NetworkSummaryDTO{
		TotalAffiliates:             total,
		ActiveAffiliates:            activeCount,
		TotalCommissionsGenerated:   allTime,
		MonthlyCommissionsGenerated: monthly,
	}
	return network, nil
}

// RegisterReferral lets a sponsor enroll a new affiliate under the sponsor's
// own referral cap. The generated temporary password is returned once.
func (s *Service) RegisterReferral(ctx context.Context, sponsorID int, input dto.RegisterReferralRequestDTO) (*dto.RegisterReferralResponseDTO, error) {
	sponsor, err := s.userRepo.FindByID(ctx, sponsorID)
	if err != nil {
		return nil, err
	}
	if sponsor == nil || sponsor.Role != domain.RoleAffiliate || !sponsor.IsActive {
		return nil, ErrNotAffiliate
	}

	if !validate.IsDNI(input.DNI) || !validate.IsEmail(input.Email) ||
		strings.TrimSpace(input.FullName) == "" {
		return nil, ErrInvalidInput
	}

	count, err := s.userRepo.CountReferrals(ctx, sponsorID)
	if err != nil {
		return nil, err
	}
	if count >= sponsor.MaxReferrals {
		zap.L().Info("referral cap reached",
			zap.Int("sponsorID", sponsorID), zap.Int("count", count))
		return nil, ErrReferralCap
	}

	existing, err := s.userRepo.FindByDNIOrEmail(ctx, input.DNI, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.DNI == input.DNI {
			return nil, ErrDNITaken
		}
		return nil, ErrEmailTaken
	}

	tempPassword, err := generatePassword(10)
	if err != nil {
		return nil, err
	}
	hashedPassword, err := s.hashService.HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	var created *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err = s.userRepo.Create(ctx, &domain.User{
			DNI:          input.DNI,
			FullName:     input.FullName,
			Email:        strings.ToLower(input.Email),
			PasswordHash: hashedPassword,
			Role:         domain.RoleAffiliate,
			IsActive:     true,
			MaxReferrals: sponsor.MaxReferrals,
			CreatedBy:    &sponsor.ID,
		})
		if err != nil {
			return err
		}
		if err := s.userRepo.CreateAffiliate(ctx, &domain.Affiliate{
			ID:        created.ID,
			SponsorID: &sponsor.ID,
			Phone:     input.Phone,
			Region:    input.Region,
			City:      input.City,
			Address:   input.Address,
			Reference: input.Reference,
			Status:    domain.AffiliateStatusActive,
		}); err != nil {
			return err
		}
		return s.userRepo.CreateReferral(ctx, sponsor.ID, created.ID)
	})
	if err != nil {
		zap.L().Error("can't register referral", zap.Error(err))
		return nil, err
	}

	s.notificationService.NotifyWelcome(ctx, created.ID, sponsor.FullName)
	zap.L().Info("referral registered",
		zap.Int("sponsorID", sponsorID), zap.Int("referredID", created.ID))

	return &dto.RegisterReferralResponseDTO{
		User: dto.UserDTO{
			ID:        created.ID,
			DNI:       created.DNI,
			FullName:  created.FullName,
			Email:     created.Email,
			Role:      created.Role,
			IsActive:  created.IsActive,
			CreatedAt: created.CreatedAt,
		},
		TempPassword: tempPassword,
	}, nil
}

// ToggleStatus changes a referral's affiliate status; sponsors may only touch
// their own direct referrals.
func (s *Service) ToggleStatus(ctx context.Context, sponsorID, affiliateID int, status string) error {
	if status != domain.AffiliateStatusActive && status != domain.AffiliateStatusInactive {
		return ErrInvalidStatus
	}
	referrer, err := s.userRepo.GetReferrer(ctx, affiliateID)
	if err != nil {
		return err
	}
	if referrer == nil || referrer.ID != sponsorID {
		return ErrNotInNetwork
	}
	affiliate, err := s.userRepo.GetAffiliate(ctx, affiliateID)
	if err != nil {
		return err
	}
	if affiliate == nil {
		return ErrAffiliateMissing
	}
	return s.userRepo.UpdateAffiliateStatus(ctx, affiliateID, status)
}

const passwordCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generatePassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordCharset[n.Int64()]
	}
	return string(out), nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
