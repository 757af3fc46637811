package repo

import (
	"github.com/gocardi/boost-api/internal/pg"
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

// Repositories bundles every repository over one connection pool. Services
// narrow these concrete types through their own interfaces.
type Repositories struct {
	UserRepo         *userrepo.Repository
	AddressRepo      *addressrepo.Repository
	CatalogRepo      *catalogrepo.Repository
	CartRepo         *cartrepo.Repository
	OrderRepo        *orderrepo.Repository
	CommissionRepo   *commissionrepo.Repository
	TrackingRepo     *trackingrepo.Repository
	RewardRepo       *rewardrepo.Repository
	NotificationRepo *notificationrepo.Repository
	RulesRepo        *rulesrepo.Repository
}

func New(db pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(db),
		AddressRepo:      addressrepo.New(db),
		CatalogRepo:      catalogrepo.New(db),
		CartRepo:         cartrepo.New(db),
		OrderRepo:        orderrepo.New(db),
		CommissionRepo:   commissionrepo.New(db),
		TrackingRepo:     trackingrepo.New(db),
		RewardRepo:       rewardrepo.New(db),
		NotificationRepo: notificationrepo.New(db),
		RulesRepo:        rulesrepo.New(db),
	}
}
