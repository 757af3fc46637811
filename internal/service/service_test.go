package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gocardi/boost-api/internal/config"
	"github.com/gocardi/boost-api/internal/pg"
	"github.com/gocardi/boost-api/internal/repo"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)
	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)
	cfg := &config.Config{TokenTTL: 168 * time.Hour, SweepInterval: time.Hour}

	services := New(repos, txManager, jwtService, cfg)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AffiliateService)
	assert.NotNil(t, services.AddressService)
	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.CartService)
	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.CommissionService)
	assert.NotNil(t, services.TrackingService)
	assert.NotNil(t, services.RewardService)
	assert.NotNil(t, services.NotificationService)
	assert.NotNil(t, services.AdminService)
	assert.NotNil(t, services.RulesService)
	assert.NotNil(t, services.Sweep)
}
