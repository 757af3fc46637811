package service

import (
	"github.com/gocardi/boost-api/internal/config"
	"github.com/gocardi/boost-api/internal/handlers/addresses"
	"github.com/gocardi/boost-api/internal/handlers/admin"
	"github.com/gocardi/boost-api/internal/handlers/affiliates"
	"github.com/gocardi/boost-api/internal/handlers/auth"
	"github.com/gocardi/boost-api/internal/handlers/cart"
	"github.com/gocardi/boost-api/internal/handlers/catalog"
	"github.com/gocardi/boost-api/internal/handlers/commissions"
	"github.com/gocardi/boost-api/internal/handlers/notifications"
	"github.com/gocardi/boost-api/internal/handlers/orders"
	"github.com/gocardi/boost-api/internal/handlers/payments"
	"github.com/gocardi/boost-api/internal/handlers/rewards"
	"github.com/gocardi/boost-api/internal/handlers/rules"
	"github.com/gocardi/boost-api/internal/handlers/tracking"
	"github.com/gocardi/boost-api/internal/pg"
	"github.com/gocardi/boost-api/internal/repo"
	"github.com/gocardi/boost-api/internal/service/addressservice"
	"github.com/gocardi/boost-api/internal/service/adminservice"
	"github.com/gocardi/boost-api/internal/service/affiliateservice"
	"github.com/gocardi/boost-api/internal/service/authservice"
	"github.com/gocardi/boost-api/internal/service/cartservice"
	"github.com/gocardi/boost-api/internal/service/catalogservice"
	"github.com/gocardi/boost-api/internal/service/commissionservice"
	"github.com/gocardi/boost-api/internal/service/notificationservice"
	"github.com/gocardi/boost-api/internal/service/orderservice"
	"github.com/gocardi/boost-api/internal/service/paymentservice"
	"github.com/gocardi/boost-api/internal/service/rewardservice"
	"github.com/gocardi/boost-api/internal/service/rulesservice"
	"github.com/gocardi/boost-api/internal/service/trackingservice"
	"github.com/gocardi/boost-api/internal/sweep"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
)

type Services struct {
	AuthService         auth.Service
	AffiliateService    affiliates.Service
	AddressService      addresses.Service
	CatalogService      catalog.Service
	CartService         cart.Service
	OrderService        orders.Service
	PaymentService      payments.Service
	CommissionService   commissions.Service
	TrackingService     tracking.Service
	RewardService       rewards.Service
	NotificationService notifications.Service
	AdminService        admin.Service
	RulesService        rules.Service

	// Sweep is started by the application alongside the HTTP server.
	Sweep *sweep.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, jwtService pkgauth.JWTServiceInterface, cfg *config.Config) *Services {
	hashService := &pkgauth.HashService{}

	rulesService := rulesservice.New(repo.RulesRepo)
	notificationService := notificationservice.New(repo.NotificationRepo)

	authService := authservice.New(repo.UserRepo, rulesService, txManager, hashService, jwtService, cfg.TokenTTL)
	affiliateService := affiliateservice.New(repo.UserRepo, repo.CommissionRepo, notificationService, txManager, hashService)
	addressService := addressservice.New(repo.AddressRepo, txManager)
	catalogService := catalogservice.New(repo.CatalogRepo)
	cartService := cartservice.New(repo.CartRepo, repo.CatalogRepo)
	orderService := orderservice.New(repo.OrderRepo, repo.CartRepo, repo.CatalogRepo, repo.AddressRepo, repo.UserRepo, rulesService, txManager)
	commissionService := commissionservice.New(repo.CommissionRepo, repo.OrderRepo, repo.UserRepo, rulesService, notificationService)
	trackingService := trackingservice.New(repo.TrackingRepo, repo.OrderRepo, repo.UserRepo, rulesService, notificationService)
	rewardService := rewardservice.New(repo.RewardRepo, notificationService, txManager)
	paymentService := paymentservice.New(repo.OrderRepo, repo.UserRepo, commissionService, trackingService, rewardService, notificationService, txManager)
	adminService := adminservice.New(repo.UserRepo, repo.OrderRepo, repo.CatalogRepo, repo.CommissionRepo)

	return &Services{
		AuthService:         authService,
		AffiliateService:    affiliateService,
		AddressService:      addressService,
		CatalogService:      catalogService,
		CartService:         cartService,
		OrderService:        orderService,
		PaymentService:      paymentService,
		CommissionService:   commissionService,
		TrackingService:     trackingService,
		RewardService:       rewardService,
		NotificationService: notificationService,
		AdminService:        adminService,
		RulesService:        rulesService,

		Sweep: sweep.New(trackingService, repo.TrackingRepo, cfg.SweepInterval),
	}
}
