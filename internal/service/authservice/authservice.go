package authservice

import (
	"context"
	"errors"
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
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrDNITaken           = errors.New("dni already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid registration data")
	ErrSponsorNotFound    = errors.New("sponsor not found or inactive")
	ErrUserNotFound       = errors.New("user not found")
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByDNI(ctx context.Context, dni string) (*domain.User, error)
	FindByDNIOrEmail(ctx context.Context, dni, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id int) error
	GetAffiliate(ctx context.Context, id int) (*domain.Affiliate, error)
	CreateAffiliate(ctx context.Context, a *domain.Affiliate) error
	CreateReferral(ctx context.Context, referrerID, referredID int) error
}

type RulesService interface {
	GetRules(ctx context.Context) (*dto.BusinessRulesDTO, error)
}

type Service struct {
	userRepo     Repo
	rulesService RulesService
	txManager    pg.TXManager
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	tokenTTL     time.Duration
}

func New(repo Repo, rules RulesService, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:     repo,
		rulesService: rules,
		txManager:    txManager,
		hashService:  hashService,
		jwtService:   jwtService,
		tokenTTL:     tokenTTL,
	}
}

func (s *Service) Login(ctx context.Context, dni, password string) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("login rejected", zap.String("dni", dni))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		zap.L().Error("can't record last login", zap.Error(err))
	}

	expirationTime := time.Now().Add(s.tokenTTL)
	token, err := s.jwtService.GenerateJWT(user.ID, user.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return nil, err
	}

	userDTO, err := s.buildUserDTO(ctx, user)
	if err != nil {
		return nil, err
	}
	zap.L().Info("user authenticated", zap.Int("userID", user.ID), zap.String("role", user.Role))
	return &dto.AuthResponseDTO{
		User:      *userDTO,
		Token:     token,
		ExpiresIn: s.tokenTTL.String(),
	}, nil
}

// Register creates a visitor or, when a sponsor is given, an affiliate with
// its referral edge. User, affiliate and referral rows commit together.
func (s *Service) Register(ctx context.Context, input dto.RegisterRequestDTO) (*dto.UserDTO, error) {
	if !validate.IsDNI(input.DNI) || !validate.IsEmail(input.Email) ||
		strings.TrimSpace(input.FullName) == "" || len(input.Password) < 6 {
		return nil, ErrInvalidInput
	}
	role := input.Role
	if role == "" {
		role = domain.RoleVisitor
	}
	if role != domain.RoleVisitor && role != domain.RoleAffiliate {
		return nil, ErrInvalidInput
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

	var sponsor *domain.User
	if role == domain.RoleAffiliate && input.SponsorID != nil {
		sponsor, err = s.userRepo.FindByID(ctx, *input.SponsorID)
		if err != nil {
			return nil, err
		}
		if sponsor == nil || sponsor.Role != domain.RoleAffiliate || !sponsor.IsActive {
			return nil, ErrSponsorNotFound
		}
	}

	hashedPassword, err := s.hashService.HashPassword(input.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	rules, err := s.rulesService.GetRules(ctx)
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
			Role:         role,
			IsActive:     true,
			MaxReferrals: rules.MaxReferralsDefault,
		})
		if err != nil {
			return err
		}
		if role != domain.RoleAffiliate {
			return nil
		}

		affiliate := &domain.Affiliate{
			ID:        created.ID,
			Phone:     input.Phone,
			Region:    input.Region,
			City:      input.City,
			Address:   input.Address,
			Reference: input.Reference,
			Status:    domain.AffiliateStatusActive,
		}
		if sponsor != nil {
			affiliate.SponsorID = &sponsor.ID
		}
		if err := s.userRepo.CreateAffiliate(ctx, affiliate); err != nil {
			return err
		}
		if sponsor != nil {
			return s.userRepo.CreateReferral(ctx, sponsor.ID, created.ID)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't register user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user registered", zap.Int("userID", created.ID), zap.String("role", role))
	return s.buildUserDTO(ctx, created)
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.buildUserDTO(ctx, user)
}

func (s *Service) buildUserDTO(ctx context.Context, user *domain.User) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{
		ID:        user.ID,
		DNI:       user.DNI,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
	if user.Role != domain.RoleAffiliate {
		return userDTO, nil
	}
	affiliate, err := s.userRepo.GetAffiliate(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if affiliate != nil {
		userDTO.Affiliate = &dto.AffiliateProfileDTO{
			SponsorID: affiliate.SponsorID,
			Phone:     affiliate.Phone,
			Region:    affiliate.Region,
			City:      affiliate.City,
			Address:   affiliate.Address,
			Reference: affiliate.Reference,
			Status:    affiliate.Status,
			Points:    affiliate.Points,
		}
	}
	return userDTO, nil
}
