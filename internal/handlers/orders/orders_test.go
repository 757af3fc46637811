package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/orderservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body []byte, userID int, role string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, userID)
	ctx = context.WithValue(ctx, pkgauth.RoleKey, role)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCheckoutHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful checkout",
			body: `{"useStoredAddress":true,"addressId":2,"paymentMethod":"bank_transfer"}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), 1, "affiliate", dto.CheckoutRequestDTO{
						UseStoredAddress: true,
						AddressID:        2,
						PaymentMethod:    "bank_transfer",
					}).
					Return(&dto.OrderDTO{ID: 10, Status: "pending", TotalAmount: 155.50}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Empty cart",
			body: `{"useStoredAddress":true,"addressId":2}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), 1, "affiliate", gomock.Any()).
					Return(nil, orderservice.ErrEmptyCart)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: orderservice.ErrEmptyCart.Error(),
		},
		{
			name: "Not enough stock",
			body: `{"useStoredAddress":true,"addressId":2}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), 1, "affiliate", gomock.Any()).
					Return(nil, orderservice.ErrInsufficientStock)
			},
			expectedCode:  http.StatusConflict,
			expectedError: orderservice.ErrInsufficientStock.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/orders", []byte(tt.body), 1, "affiliate")
			rr := httptest.NewRecorder()

			handler.Checkout(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetOrdersHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		GetUserOrders(gomock.Any(), 1, dto.OrderFiltersDTO{Status: "paid", Page: 2, Limit: 10}).
		Return(&dto.OrderListDTO{Orders: []dto.OrderDTO{{ID: 10}}}, nil)

	req := authedRequest("GET", "/api/orders?status=paid&page=2&limit=10", nil, 1, "visitor")
	rr := httptest.NewRecorder()

	handler.GetOrders(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Order found", func(t *testing.T) {
		service.EXPECT().GetOrder(gomock.Any(), 1, 10).Return(&dto.OrderDTO{ID: 10}, nil)

		req := withURLParam(authedRequest("GET", "/api/orders/10", nil, 1, "visitor"), "id", "10")
		rr := httptest.NewRecorder()

		handler.GetOrder(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Order not found", func(t *testing.T) {
		service.EXPECT().GetOrder(gomock.Any(), 1, 99).Return(nil, orderservice.ErrOrderNotFound)

		req := withURLParam(authedRequest("GET", "/api/orders/99", nil, 1, "visitor"), "id", "99")
		rr := httptest.NewRecorder()

		handler.GetOrder(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid order id", func(t *testing.T) {
		req := withURLParam(authedRequest("GET", "/api/orders/abc", nil, 1, "visitor"), "id", "abc")
		rr := httptest.NewRecorder()

		handler.GetOrder(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Ships the order", func(t *testing.T) {
		service.EXPECT().
			UpdateStatus(gomock.Any(), 10, dto.UpdateOrderStatusRequestDTO{Status: "shipped", TrackingCode: "TRK-1"}).
			Return(&dto.OrderDTO{ID: 10, Status: "shipped", TrackingCode: "TRK-1"}, nil)

		body := []byte(`{"status":"shipped","trackingCode":"TRK-1"}`)
		req := withURLParam(authedRequest("PUT", "/api/orders/10/status", body, 3, "admin"), "id", "10")
		rr := httptest.NewRecorder()

		handler.UpdateStatus(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid transition", func(t *testing.T) {
		service.EXPECT().
			UpdateStatus(gomock.Any(), 10, gomock.Any()).
			Return(nil, orderservice.ErrInvalidTransition)

		body := []byte(`{"status":"pending"}`)
		req := withURLParam(authedRequest("PUT", "/api/orders/10/status", body, 3, "admin"), "id", "10")
		rr := httptest.NewRecorder()

		handler.UpdateStatus(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
