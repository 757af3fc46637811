package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	addressrepo "github.com/gocardi/boost-api/internal/repo/address-repo"
	cartrepo "github.com/gocardi/boost-api/internal/repo/cart-repo"
	catalogrepo "github.com/gocardi/boost-api/internal/repo/catalog-repo"
	commissionrepo "github.com/gocardi/boost-api/internal/repo/commission-repo"
	notificationrepo "github.com/gocardi/boost-api/internal/repo/notification-repo"
	orderrepo "github.com/gocardi/boost-api/internal/repo/order-repo"
	rewardrepo "github.com/gocardi/boost-api/internal/repo/reward-repo"
	rulesrepo "github.com/gocardi/boost-api/internal/repo/rules-repo"
	trackingrepo "github.com/gocardi/boost-api/internal/repo/tracking-repo"
	userrepo "github.com/gocardi/boost-api/internal/repo/user-repo"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repo := New(mockDB)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &addressrepo.Repository{}, repo.AddressRepo)
	assert.IsType(t, &catalogrepo.Repository{}, repo.CatalogRepo)
	assert.IsType(t, &cartrepo.Repository{}, repo.CartRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &commissionrepo.Repository{}, repo.CommissionRepo)
	assert.IsType(t, &trackingrepo.Repository{}, repo.TrackingRepo)
	assert.IsType(t, &rewardrepo.Repository{}, repo.RewardRepo)
	assert.IsType(t, &notificationrepo.Repository{}, repo.NotificationRepo)
	assert.IsType(t, &rulesrepo.Repository{}, repo.RulesRepo)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
