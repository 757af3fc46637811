package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gocardi/boost-api/internal/domain"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
)

func newTestHandlers(ctrl *gomock.Controller, jwtService pkgauth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:         NewMockAuthHandler(ctrl),
		AffiliateHandler:    NewMockAffiliateHandler(ctrl),
		AddressHandler:      NewMockAddressHandler(ctrl),
		CatalogHandler:      NewMockCatalogHandler(ctrl),
		CartHandler:         NewMockCartHandler(ctrl),
		OrderHandler:        NewMockOrderHandler(ctrl),
		PaymentHandler:      NewMockPaymentHandler(ctrl),
		CommissionHandler:   NewMockCommissionHandler(ctrl),
		TrackingHandler:     NewMockTrackingHandler(ctrl),
		RewardHandler:       NewMockRewardHandler(ctrl),
		NotificationHandler: NewMockNotificationHandler(ctrl),
		AdminHandler:        NewMockAdminHandler(ctrl),
		RulesHandler:        NewMockRulesHandler(ctrl),
		middleware:          pkgauth.NewMiddleware(jwtService),
	}
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)
	h := newTestHandlers(ctrl, jwtService)

	h.AuthHandler.(*MockAuthHandler).EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	h.AuthHandler.(*MockAuthHandler).EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	h.CatalogHandler.(*MockCatalogHandler).EXPECT().ListProducts(gomock.Any(), gomock.Any()).AnyTimes()
	h.CatalogHandler.(*MockCatalogHandler).EXPECT().ListCategories(gomock.Any(), gomock.Any()).AnyTimes()

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/login", http.StatusOK},
		{"POST", "/api/auth/register", http.StatusOK},
		{"GET", "/api/products", http.StatusOK},
		{"GET", "/api/categories", http.StatusOK},
		{"GET", "/api/auth/profile", http.StatusUnauthorized},
		{"GET", "/api/cart", http.StatusUnauthorized},
		{"POST", "/api/orders", http.StatusUnauthorized},
		{"POST", "/api/payments/confirm", http.StatusUnauthorized},
		{"GET", "/api/rewards", http.StatusUnauthorized},
		{"GET", "/api/admin/dashboard", http.StatusUnauthorized},
		{"GET", "/api/config/business-rules", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutesRoleGating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)
	h := newTestHandlers(ctrl, jwtService)

	h.TrackingHandler.(*MockTrackingHandler).EXPECT().CurrentStatus(gomock.Any(), gomock.Any()).AnyTimes()
	h.AdminHandler.(*MockAdminHandler).EXPECT().Dashboard(gomock.Any(), gomock.Any()).AnyTimes()
	h.RulesHandler.(*MockRulesHandler).EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		name   string
		method string
		url    string
		role   string
		status int
	}{
		{"Affiliate reads tracking", "GET", "/api/monthly-tracking/current-status", domain.RoleAffiliate, http.StatusOK},
		{"Visitor cannot read tracking", "GET", "/api/monthly-tracking/current-status", domain.RoleVisitor, http.StatusForbidden},
		{"Admin opens dashboard", "GET", "/api/admin/dashboard", domain.RoleAdmin, http.StatusOK},
		{"Affiliate cannot open dashboard", "GET", "/api/admin/dashboard", domain.RoleAffiliate, http.StatusForbidden},
		{"General admin reads business rules", "GET", "/api/config/business-rules", domain.RoleAdminGeneral, http.StatusOK},
		{"Regional admin cannot read business rules", "GET", "/api/config/business-rules", domain.RoleAdmin, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService.EXPECT().ValidateToken("token").Return(&pkgauth.Claims{UserID: 1, Role: tt.role}, nil)

			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer token")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
