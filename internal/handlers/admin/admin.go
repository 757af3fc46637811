package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/adminservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	GetDashboard(ctx context.Context, adminID int) (*dto.DashboardDTO, error)
	ListUsers(ctx context.Context, filters dto.UserFiltersDTO) (*dto.UserListDTO, error)
	SetUserActive(ctx context.Context, userID int, active bool) error
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Dashboard godoc
//
//	@Summary		Admin dashboard
//	@Description	Sales KPIs, recent orders and low-stock products; regional admins see their regions only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DashboardDTO	"Dashboard"
//	@Router			/api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	adminID := pkgauth.UserIDFromContext(r.Context())
	dashboard, err := h.adminService.GetDashboard(r.Context(), adminID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dashboard)
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		search	query		string	false	"Name, DNI or email fragment"
//	@Param		role	query		string	false	"Role filter"
//	@Param		active	query		bool	false	"Active filter"
//	@Success	200		{object}	dto.UserListDTO	"Users"
//	@Router		/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := dto.UserFiltersDTO{
		Search: q.Get("search"),
		Role:   q.Get("role"),
	}
	if v, err := strconv.ParseBool(q.Get("active")); err == nil {
		filters.Active = &v
	}
	filters.Page, _ = strconv.Atoi(q.Get("page"))
	filters.Limit, _ = strconv.Atoi(q.Get("limit"))

	list, err := h.adminService.ListUsers(r.Context(), filters)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// SetUserActive godoc
//
//	@Summary	Enable or disable a user account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"User id"
//	@Param		request	body		dto.SetUserActiveRequestDTO	true	"New state"
//	@Success	200		{string}	string						"Updated"
//	@Failure	404		{object}	utils.Response				"User not found"
//	@Router		/api/admin/users/{id}/status [put]
func (h *AdminHandler) SetUserActive(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req dto.SetUserActiveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.adminService.SetUserActive(r.Context(), userID, req.IsActive); err != nil {
		if errors.Is(err, adminservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "user status updated")
}
