package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/gocardi/boost-api/docs"
	"github.com/gocardi/boost-api/internal/domain"
	addresshandlers "github.com/gocardi/boost-api/internal/handlers/addresses"
	adminhandlers "github.com/gocardi/boost-api/internal/handlers/admin"
	affiliatehandlers "github.com/gocardi/boost-api/internal/handlers/affiliates"
	authhandlers "github.com/gocardi/boost-api/internal/handlers/auth"
	carthandlers "github.com/gocardi/boost-api/internal/handlers/cart"
	cataloghandlers "github.com/gocardi/boost-api/internal/handlers/catalog"
	commissionhandlers "github.com/gocardi/boost-api/internal/handlers/commissions"
	notificationhandlers "github.com/gocardi/boost-api/internal/handlers/notifications"
	orderhandlers "github.com/gocardi/boost-api/internal/handlers/orders"
	paymenthandlers "github.com/gocardi/boost-api/internal/handlers/payments"
	rewardhandlers "github.com/gocardi/boost-api/internal/handlers/rewards"
	ruleshandlers "github.com/gocardi/boost-api/internal/handlers/rules"
	trackinghandlers "github.com/gocardi/boost-api/internal/handlers/tracking"
	"github.com/gocardi/boost-api/internal/service"
	"github.com/gocardi/boost-api/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type AffiliateHandler interface {
	GetNetwork(w http.ResponseWriter, r *http.Request)
	RegisterReferral(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
}

type AddressHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SetDefault(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	ListProducts(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	CreateCategory(w http.ResponseWriter, r *http.Request)
}

type CartHandler interface {
	GetCart(w http.ResponseWriter, r *http.Request)
	AddItem(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	RemoveItem(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Checkout(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	ListForAdmin(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Confirm(w http.ResponseWriter, r *http.Request)
	Methods(w http.ResponseWriter, r *http.Request)
}

type CommissionHandler interface {
	MyCommissions(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type TrackingHandler interface {
	CurrentStatus(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetPoints(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	ClaimHistory(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ApproveClaim(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	SetUserActive(w http.ResponseWriter, r *http.Request)
}

type RulesHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Available(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	AffiliateHandler    AffiliateHandler
	AddressHandler      AddressHandler
	CatalogHandler      CatalogHandler
	CartHandler         CartHandler
	OrderHandler        OrderHandler
	PaymentHandler      PaymentHandler
	CommissionHandler   CommissionHandler
	TrackingHandler     TrackingHandler
	RewardHandler       RewardHandler
	NotificationHandler NotificationHandler
	AdminHandler        AdminHandler
	RulesHandler        RulesHandler

	middleware *auth.Middleware
}

func New(s *service.Services, mw *auth.Middleware) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		AffiliateHandler:    affiliatehandlers.New(s.AffiliateService),
		AddressHandler:      addresshandlers.New(s.AddressService),
		CatalogHandler:      cataloghandlers.New(s.CatalogService),
		CartHandler:         carthandlers.New(s.CartService),
		OrderHandler:        orderhandlers.New(s.OrderService),
		PaymentHandler:      paymenthandlers.New(s.PaymentService),
		CommissionHandler:   commissionhandlers.New(s.CommissionService),
		TrackingHandler:     trackinghandlers.New(s.TrackingService),
		RewardHandler:       rewardhandlers.New(s.RewardService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		AdminHandler:        adminhandlers.New(s.AdminService),
		RulesHandler:        ruleshandlers.New(s.RulesService),
		middleware:          mw,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	admins := []string{domain.RoleAdmin, domain.RoleAdminGeneral}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)
		r.Post("/auth/register", h.AuthHandler.Register)

		// Public catalog.
		r.Get("/products", h.CatalogHandler.ListProducts)
		r.Get("/products/{id}", h.CatalogHandler.GetProduct)
		r.Get("/categories", h.CatalogHandler.ListCategories)

		r.Group(func(r chi.Router) {
			r.Use(h.middleware.Authenticate)

			r.Get("/auth/profile", h.AuthHandler.GetProfile)

			r.Route("/addresses", func(r chi.Router) {
				r.Get("/", h.AddressHandler.List)
				r.Post("/", h.AddressHandler.Create)
				r.Put("/{id}", h.AddressHandler.Update)
				r.Delete("/{id}", h.AddressHandler.Delete)
				r.Put("/{id}/default", h.AddressHandler.SetDefault)
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.CartHandler.GetCart)
				r.Delete("/", h.CartHandler.Clear)
				r.Post("/items", h.CartHandler.AddItem)
				r.Put("/items/{id}", h.CartHandler.UpdateItem)
				r.Delete("/items/{id}", h.CartHandler.RemoveItem)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.Checkout)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Get("/{id}", h.OrderHandler.GetOrder)
				r.With(h.middleware.RequireRoles(admins...)).
					Put("/{id}/status", h.OrderHandler.UpdateStatus)
			})

			r.Post("/payments/confirm", h.PaymentHandler.Confirm)
			r.Get("/payments/methods", h.PaymentHandler.Methods)

			r.Route("/commissions", func(r chi.Router) {
				r.With(h.middleware.RequireRoles(domain.RoleAffiliate)).
					Get("/my-commissions", h.CommissionHandler.MyCommissions)
				r.Group(func(r chi.Router) {
					r.Use(h.middleware.RequireRoles(admins...))
					r.Get("/pending", h.CommissionHandler.ListPending)
					r.Put("/{id}/approve", h.CommissionHandler.Approve)
					r.Post("/mark-paid", h.CommissionHandler.MarkPaid)
				})
			})

			r.Route("/monthly-tracking", func(r chi.Router) {
				r.Use(h.middleware.RequireRoles(domain.RoleAffiliate))
				r.Get("/current-status", h.TrackingHandler.CurrentStatus)
				r.Get("/history", h.TrackingHandler.History)
			})

			r.Route("/rewards", func(r chi.Router) {
				r.Get("/", h.RewardHandler.List)
				r.Group(func(r chi.Router) {
					r.Use(h.middleware.RequireRoles(domain.RoleAffiliate))
					r.Get("/points", h.RewardHandler.GetPoints)
					r.Post("/claim", h.RewardHandler.Claim)
					r.Get("/claims", h.RewardHandler.ClaimHistory)
				})
				r.Group(func(r chi.Router) {
					r.Use(h.middleware.RequireRoles(admins...))
					r.Post("/", h.RewardHandler.Create)
					r.Put("/{id}", h.RewardHandler.Update)
					r.Put("/claims/{id}/approve", h.RewardHandler.ApproveClaim)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.List)
				r.Put("/{id}/read", h.NotificationHandler.MarkRead)
				r.Put("/read-all", h.NotificationHandler.MarkAllRead)
			})

			r.Route("/affiliates", func(r chi.Router) {
				r.Use(h.middleware.RequireRoles(domain.RoleAffiliate))
				r.Get("/network", h.AffiliateHandler.GetNetwork)
				r.Post("/referrals", h.AffiliateHandler.RegisterReferral)
				r.Put("/{id}/status", h.AffiliateHandler.ToggleStatus)
			})

			// Admin catalog management.
			r.Group(func(r chi.Router) {
				r.Use(h.middleware.RequireRoles(admins...))
				r.Post("/products", h.CatalogHandler.CreateProduct)
				r.Put("/products/{id}", h.CatalogHandler.UpdateProduct)
				r.Post("/categories", h.CatalogHandler.CreateCategory)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.middleware.RequireRoles(admins...))
				r.Get("/dashboard", h.AdminHandler.Dashboard)
				r.Get("/orders", h.OrderHandler.ListForAdmin)
				r.Get("/users", h.AdminHandler.ListUsers)
				r.Put("/users/{id}/status", h.AdminHandler.SetUserActive)
			})

			r.Route("/config/business-rules", func(r chi.Router) {
				r.Use(h.middleware.RequireRoles(domain.RoleAdminGeneral))
				r.Get("/", h.RulesHandler.Get)
				r.Put("/", h.RulesHandler.Update)
				r.Get("/available", h.RulesHandler.Available)
			})
		})
	})

	return r
}
