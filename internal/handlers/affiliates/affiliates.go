package affiliates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/affiliateservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	GetNetwork(ctx context.Context, affiliateID int, filters dto.NetworkFiltersDTO) (*dto.NetworkDTO, error)
	RegisterReferral(ctx context.Context, sponsorID int, input dto.RegisterReferralRequestDTO) (*dto.RegisterReferralResponseDTO, error)
	ToggleStatus(ctx context.Context, sponsorID, affiliateID int, status string) error
}

type AffiliateHandler struct {
	affiliateService Service
}

func New(affiliateService Service) *AffiliateHandler {
	return &AffiliateHandler{affiliateService: affiliateService}
}

// GetNetwork godoc
//
//	@Summary		The caller's direct referrals
//	@Description	Includes a summary of the network's size and generated referral commissions.
//	@Tags			Affiliates
//	@Security		BearerAuth
//	@Produce		json
//	@Param			search	query		string	false	"Name or DNI fragment"
//	@Param			status	query		string	false	"active or inactive"
//	@Success		200		{object}	dto.NetworkDTO	"Network"
//	@Router			/api/affiliates/network [get]
func (h *AffiliateHandler) GetNetwork(w http.ResponseWriter, r *http.Request) {
	affiliateID := pkgauth.UserIDFromContext(r.Context())
	q := r.URL.Query()
	filters := dto.NetworkFiltersDTO{
		Search: q.Get("search"),
		Status: q.Get("status"),
	}
	filters.Page, _ = strconv.Atoi(q.Get("page"))
	filters.Limit, _ = strconv.Atoi(q.Get("limit"))

	network, err := h.affiliateService.GetNetwork(r.Context(), affiliateID, filters)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, network)
}

// RegisterReferral godoc
//
//	@Summary		Register a new affiliate under the caller
//	@Description	Bounded by the caller's referral cap. Returns a one-time temporary password.
//	@Tags			Affiliates
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterReferralRequestDTO	true	"Referral payload"
//	@Success		201		{object}	dto.RegisterReferralResponseDTO	"Created affiliate and temp password"
//	@Failure		403		{object}	utils.Response					"Referral limit reached"
//	@Failure		409		{object}	utils.Response					"DNI or email already registered"
//	@Router			/api/affiliates/referrals [post]
func (h *AffiliateHandler) RegisterReferral(w http.ResponseWriter, r *http.Request) {
	sponsorID := pkgauth.UserIDFromContext(r.Context())
	var req dto.RegisterReferralRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	response, err := h.affiliateService.RegisterReferral(r.Context(), sponsorID, req)
	if err != nil {
		switch {
		case errors.Is(err, affiliateservice.ErrReferralCap), errors.Is(err, affiliateservice.ErrNotAffiliate):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, affiliateservice.ErrDNITaken), errors.Is(err, affiliateservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, affiliateservice.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, response)
}

// ToggleStatus godoc
//
//	@Summary	Activate or deactivate a direct referral
//	@Tags		Affiliates
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Affiliate id"
//	@Param		request	body		map[string]string	true	"{\"status\": \"active|inactive\"}"
//	@Success	200		{string}	string				"Status changed"
//	@Failure	403		{object}	utils.Response		"Affiliate outside the caller's network"
//	@Router		/api/affiliates/{id}/status [put]
func (h *AffiliateHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	sponsorID := pkgauth.UserIDFromContext(r.Context())
	affiliateID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid affiliate id")
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.affiliateService.ToggleStatus(r.Context(), sponsorID, affiliateID, req.Status); err != nil {
		switch {
		case errors.Is(err, affiliateservice.ErrNotInNetwork):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, affiliateservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, affiliateservice.ErrAffiliateMissing):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "affiliate status updated")
}
