package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/paymentservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestConfirmHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Payment confirmed",
			body: `{"orderId":10,"method":"bank_transfer","amount":155.50}`,
			prepareMock: func() {
				service.EXPECT().
					Confirm(gomock.Any(), 1, dto.ConfirmPaymentRequestDTO{
						OrderID: 10,
						Method:  "bank_transfer",
						Amount:  155.50,
					}).
					Return(&dto.ConfirmPaymentResponseDTO{
						Payment: dto.PaymentDTO{ID: 3, OrderID: 10, Status: "confirmed"},
						Order:   dto.OrderDTO{ID: 10, Status: "paid"},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Order belongs to another user",
			body: `{"orderId":10}`,
			prepareMock: func() {
				service.EXPECT().
					Confirm(gomock.Any(), 1, gomock.Any()).
					Return(nil, paymentservice.ErrOrderNotOwned)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: paymentservice.ErrOrderNotOwned.Error(),
		},
		{
			name: "Order already paid",
			body: `{"orderId":10}`,
			prepareMock: func() {
				service.EXPECT().
					Confirm(gomock.Any(), 1, gomock.Any()).
					Return(nil, paymentservice.ErrNotPending)
			},
			expectedCode:  http.StatusConflict,
			expectedError: paymentservice.ErrNotPending.Error(),
		},
		{
			name: "Amount mismatch",
			body: `{"orderId":10,"amount":99}`,
			prepareMock: func() {
				service.EXPECT().
					Confirm(gomock.Any(), 1, gomock.Any()).
					Return(nil, paymentservice.ErrAmountMismatch)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: paymentservice.ErrAmountMismatch.Error(),
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

			req := httptest.NewRequest("POST", "/api/payments/confirm", bytes.NewReader([]byte(tt.body)))
			ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 1)
			rr := httptest.NewRecorder()

			handler.Confirm(rr, req.WithContext(ctx))

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

func TestMethodsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Methods().Return([]dto.PaymentMethodDTO{
		{ID: "bank_transfer", Name: "Bank transfer"},
		{ID: "cash_deposit", Name: "Cash deposit"},
	})

	req := httptest.NewRequest("GET", "/api/payments/methods", nil)
	rr := httptest.NewRecorder()

	handler.Methods(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp utils.Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
}
