package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/pg"
	"github.com/gocardi/boost-api/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockRulesService, *pg.MockTXManager, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	rules := NewMockRulesService(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, rules, txManager, hashService, jwtService, 24*time.Hour)
	defer ctrl.Finish()
	return service, repo, rules, txManager, hashService, jwtService
}

func TestLogin(t *testing.T) {
	service, userRepo, _, _, hashService, jwtService := NewMock(t)

	activeUser := &domain.User{
		ID:           1,
		DNI:          "12345678",
		PasswordHash: "hashedpassword",
		Role:         domain.RoleVisitor,
		IsActive:     true,
	}

	tests := []struct {
		name          string
		dni           string
		password      string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:     "Successful login",
			dni:      "12345678",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByDNI(context.Background(), "12345678").Return(activeUser, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "password").Return(true)
				userRepo.EXPECT().UpdateLastLogin(context.Background(), 1).Return(nil)
				jwtService.EXPECT().GenerateJWT(1, domain.RoleVisitor, gomock.Any()).Return("token", nil)
			},
			expectedToken: "token",
			expectedError: nil,
		},
		{
			name:     "Unknown DNI",
			dni:      "00000000",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByDNI(context.Background(), "00000000").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			dni:      "12345678",
			password: "wrong",
			prepareMock: func() {
				userRepo.EXPECT().FindByDNI(context.Background(), "12345678").Return(activeUser, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "wrong").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Inactive account",
			dni:      "12345678",
			password: "password",
			prepareMock: func() {
				inactive := *activeUser
				inactive.IsActive = false
				userRepo.EXPECT().FindByDNI(context.Background(), "12345678").Return(&inactive, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "password").Return(true)
			},
			expectedError: ErrAccountInactive,
		},
		{
			name:     "Database error",
			dni:      "12345678",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByDNI(context.Background(), "12345678").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			response, err := service.Login(context.Background(), tt.dni, tt.password)
			if tt.expectedError != nil {
				assert.Nil(t, response)
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, response.Token)
				assert.Equal(t, activeUser.ID, response.User.ID)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	service, userRepo, rules, txManager, hashService, _ := NewMock(t)

	defaultRules := &dto.BusinessRulesDTO{MaxReferralsDefault: 10}
	sponsorID := 5

	tests := []struct {
		name          string
		input         dto.RegisterRequestDTO
		prepareMock   func()
		expectedRole  string
		expectedError error
	}{
		{
			name: "Visitor registration",
			input: dto.RegisterRequestDTO{
				DNI:      "12345678",
				FullName: "Test User",
				Email:    "Test@Example.com",
				Password: "password",
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByDNIOrEmail(context.Background(), "12345678", "Test@Example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedpassword", nil)
				rules.EXPECT().GetRules(context.Background()).Return(defaultRules, nil)
				txManager.EXPECT().Begin(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					assert.Equal(t, "test@example.com", user.Email)
					assert.Equal(t, 10, user.MaxReferrals)
					user.ID = 1
					return user, nil
				})
			},
			expectedRole: domain.RoleVisitor,
		},
		{
			name: "Affiliate registration with sponsor",
			input: dto.RegisterRequestDTO{
				DNI:       "87654321",
				FullName:  "Affiliate User",
				Email:     "affiliate@example.com",
				Password:  "password",
				Role:      domain.RoleAffiliate,
				SponsorID: &sponsorID,
				Region:    "Lima",
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByDNIOrEmail(context.Background(), "87654321", "affiliate@example.com").Return(nil, nil)
				userRepo.EXPECT().FindByID(context.Background(), 5).Return(&domain.User{
					ID: 5, Role: domain.RoleAffiliate, IsActive: true,
				}, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedpassword", nil)
				rules.EXPECT().GetRules(context.Background()).Return(defaultRules, nil)
				txManager.EXPECT().Begin(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 2
					return user, nil
				})
				userRepo.EXPECT().CreateAffiliate(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, a *domain.Affiliate) error {
					assert.Equal(t, 2, a.ID)
					assert.Equal(t, &sponsorID, a.SponsorID)
					return nil
				})
				userRepo.EXPECT().CreateReferral(context.Background(), 5, 2).Return(nil)
				userRepo.EXPECT().GetAffiliate(context.Background(), 2).Return(&domain.Affiliate{ID: 2, SponsorID: &sponsorID}, nil)
			},
			expectedRole: domain.RoleAffiliate,
		},
		{
			name: "DNI already taken",
			input: dto.RegisterRequestDTO{
				DNI:      "12345678",
				FullName: "Test User",
				Email:    "other@example.com",
				Password: "password",
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByDNIOrEmail(context.Background(), "12345678", "other@example.com").
					Return(&domain.User{DNI: "12345678"}, nil)
			},
			expectedError: ErrDNITaken,
		},
		{
			name: "Email already taken",
			input: dto.RegisterRequestDTO{
				DNI:      "11112222",
				FullName: "Test User",
				Email:    "taken@example.com",
				Password: "password",
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByDNIOrEmail(context.Background(), "11112222", "taken@example.com").
					Return(&domain.User{DNI: "99998888", Email: "taken@example.com"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Sponsor inactive",
			input: dto.RegisterRequestDTO{
				DNI:       "33334444",
				FullName:  "Test User",
				Email:     "new@example.com",
				Password:  "password",
				Role:      domain.RoleAffiliate,
				SponsorID: &sponsorID,
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByDNIOrEmail(context.Background(), "33334444", "new@example.com").Return(nil, nil)
				userRepo.EXPECT().FindByID(context.Background(), 5).Return(&domain.User{
					ID: 5, Role: domain.RoleAffiliate, IsActive: false,
				}, nil)
			},
			expectedError: ErrSponsorNotFound,
		},
		{
			name: "Short password",
			input: dto.RegisterRequestDTO{
				DNI:      "12345678",
				FullName: "Test User",
				Email:    "test@example.com",
				Password: "123",
			},
			prepareMock:   func() {},
			expectedError: ErrInvalidInput,
		},
		{
			name: "Admin role rejected",
			input: dto.RegisterRequestDTO{
				DNI:      "12345678",
				FullName: "Test User",
				Email:    "test@example.com",
				Password: "password",
				Role:     domain.RoleAdmin,
			},
			prepareMock:   func() {},
			expectedError: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(context.Background(), tt.input)
			if tt.expectedError != nil {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, user.Role)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	service, userRepo, _, _, _, _ := NewMock(t)

	t.Run("Profile found", func(t *testing.T) {
		userRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.User{
			ID: 1, DNI: "12345678", Role: domain.RoleVisitor,
		}, nil)
		profile, err := service.GetProfile(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "12345678", profile.DNI)
	})

	t.Run("Profile not found", func(t *testing.T) {
		userRepo.EXPECT().FindByID(context.Background(), 2).Return(nil, nil)
		profile, err := service.GetProfile(context.Background(), 2)
		assert.Nil(t, profile)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
