package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/authservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	Login(ctx context.Context, dni, password string) (*dto.AuthResponseDTO, error)
	Register(ctx context.Context, input dto.RegisterRequestDTO) (*dto.UserDTO, error)
	GetProfile(ctx context.Context, userID int) (*dto.UserDTO, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
//
//	@Summary		Authenticate with DNI and password
//	@Description	Returns the user profile and a JWT carrying the user's role.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Credentials"
//	@Success		200		{object}	dto.AuthResponseDTO	"Authenticated"
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		401		{object}	utils.Response		"Invalid credentials"
//	@Failure		403		{object}	utils.Response		"Account inactive"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.authService.Login(r.Context(), req.DNI, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, authservice.ErrAccountInactive):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Self-registration for visitors; affiliates additionally name an active sponsor.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		201		{object}	dto.UserDTO				"Created user"
//	@Failure		400		{object}	utils.Response			"Invalid registration data"
//	@Failure		409		{object}	utils.Response			"DNI or email already registered"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrDNITaken), errors.Is(err, authservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, authservice.ErrInvalidInput), errors.Is(err, authservice.ErrSponsorNotFound):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, user)
}

// GetProfile godoc
//
//	@Summary		Get the authenticated user's profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserDTO		"Profile"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/auth/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())

	user, err := h.authService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}
