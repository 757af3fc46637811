package auth

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
	"github.com/gocardi/boost-api/internal/service/authservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"dni":"12345678","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(gomock.Any(), "12345678", "password123").
					Return(&dto.AuthResponseDTO{
						User:  dto.UserDTO{ID: 1, DNI: "12345678", Role: "visitor"},
						Token: "some-jwt-token",
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"dni":"12345678","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(gomock.Any(), "12345678", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: authservice.ErrInvalidCredentials.Error(),
		},
		{
			name: "Inactive account",
			body: `{"dni":"12345678","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(gomock.Any(), "12345678", "password123").
					Return(nil, authservice.ErrAccountInactive)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: authservice.ErrAccountInactive.Error(),
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

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

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

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"dni":"12345678","fullName":"Maria Lopez","email":"maria@example.com","password":"password123","role":"visitor"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), dto.RegisterRequestDTO{
						DNI:      "12345678",
						FullName: "Maria Lopez",
						Email:    "maria@example.com",
						Password: "password123",
						Role:     "visitor",
					}).
					Return(&dto.UserDTO{ID: 1, DNI: "12345678"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "DNI already registered",
			body: `{"dni":"12345678","password":"password123","role":"visitor"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(nil, authservice.ErrDNITaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrDNITaken.Error(),
		},
		{
			name: "Unknown sponsor",
			body: `{"dni":"12345678","password":"password123","role":"affiliate","sponsorId":99}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(nil, authservice.ErrSponsorNotFound)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrSponsorNotFound.Error(),
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

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

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

func TestGetProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns the profile", func(t *testing.T) {
		service.EXPECT().GetProfile(gomock.Any(), 1).Return(&dto.UserDTO{ID: 1, DNI: "12345678"}, nil)

		req := httptest.NewRequest("GET", "/api/auth/profile", nil)
		ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 1)
		rr := httptest.NewRecorder()

		handler.GetProfile(rr, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("User not found", func(t *testing.T) {
		service.EXPECT().GetProfile(gomock.Any(), 1).Return(nil, authservice.ErrUserNotFound)

		req := httptest.NewRequest("GET", "/api/auth/profile", nil)
		ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 1)
		rr := httptest.NewRecorder()

		handler.GetProfile(rr, req.WithContext(ctx))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
