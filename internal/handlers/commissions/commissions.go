package commissions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/commissionservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	GetAffiliateCommissions(ctx context.Context, affiliateID int, filters dto.CommissionFiltersDTO) (*dto.CommissionListDTO, error)
	Approve(ctx context.Context, commissionID int) (*dto.CommissionDTO, error)
	MarkPaid(ctx context.Context, ids []int) (*dto.MarkPaidResponseDTO, error)
	ListPending(ctx context.Context, adminID int, filters dto.CommissionFiltersDTO) ([]dto.CommissionDTO, *dto.PaginationDTO, error)
}

type CommissionHandler struct {
	commissionService Service
}

func New(commissionService Service) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService}
}

// MyCommissions godoc
//
//	@Summary	List the caller's commissions with summary
//	@Tags		Commissions
//	@Security	BearerAuth
//	@Produce	json
//	@Param		month	query		string	false	"Month filter, YYYY-MM"
//	@Param		type	query		string	false	"direct or referral"
//	@Param		status	query		string	false	"pending, approved or paid"
//	@Success	200		{object}	dto.CommissionListDTO	"Commissions"
//	@Router		/api/commissions/my-commissions [get]
func (h *CommissionHandler) MyCommissions(w http.ResponseWriter, r *http.Request) {
	affiliateID := pkgauth.UserIDFromContext(r.Context())
	list, err := h.commissionService.GetAffiliateCommissions(r.Context(), affiliateID, parseFilters(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// ListPending godoc
//
//	@Summary		List pending commissions
//	@Description	Regional admins only see commissions of affiliates in their regions.
//	@Tags			Commissions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	dto.CommissionDTO	"Pending commissions"
//	@Router			/api/commissions/pending [get]
func (h *CommissionHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	adminID := pkgauth.UserIDFromContext(r.Context())
	commissions, pagination, err := h.commissionService.ListPending(r.Context(), adminID, parseFilters(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"commissions": commissions,
		"pagination":  pagination,
	})
}

// Approve godoc
//
//	@Summary	Approve a pending commission
//	@Tags		Commissions
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int					true	"Commission id"
//	@Success	200	{object}	dto.CommissionDTO	"Approved commission"
//	@Failure	404	{object}	utils.Response		"Commission not found"
//	@Failure	409	{object}	utils.Response		"Commission is not pending"
//	@Router		/api/commissions/{id}/approve [put]
func (h *CommissionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	commissionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid commission id")
		return
	}
	commission, err := h.commissionService.Approve(r.Context(), commissionID)
	if err != nil {
		switch {
		case errors.Is(err, commissionservice.ErrCommissionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, commissionservice.ErrNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, commission)
}

// MarkPaid godoc
//
//	@Summary		Mark approved commissions as paid
//	@Description	Only approved commissions move; the response reports how many did.
//	@Tags			Commissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MarkPaidRequestDTO	true	"Commission ids"
//	@Success		200		{object}	dto.MarkPaidResponseDTO	"Updated count"
//	@Failure		400		{object}	utils.Response			"No ids given"
//	@Router			/api/commissions/mark-paid [post]
func (h *CommissionHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req dto.MarkPaidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	response, err := h.commissionService.MarkPaid(r.Context(), req.CommissionIDs)
	if err != nil {
		if errors.Is(err, commissionservice.ErrNoCommissions) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func parseFilters(r *http.Request) dto.CommissionFiltersDTO {
	q := r.URL.Query()
	filters := dto.CommissionFiltersDTO{
		Month:  q.Get("month"),
		Type:   q.Get("type"),
		Status: q.Get("status"),
		Region: q.Get("region"),
	}
	filters.Page, _ = strconv.Atoi(q.Get("page"))
	filters.Limit, _ = strconv.Atoi(q.Get("limit"))
	return filters
}
