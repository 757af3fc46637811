package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/rewardservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	ListRewards(ctx context.Context) ([]dto.RewardDTO, error)
	GetPoints(ctx context.Context, affiliateID int) (*dto.PointsSummaryDTO, error)
	Claim(ctx context.Context, affiliateID, rewardID int) (*dto.ClaimDTO, error)
	ClaimHistory(ctx context.Context, affiliateID int) ([]dto.ClaimDTO, error)
	CreateReward(ctx context.Context, input dto.RewardRequestDTO) (*dto.RewardDTO, error)
	UpdateReward(ctx context.Context, id int, input dto.RewardRequestDTO) (*dto.RewardDTO, error)
	ApproveClaim(ctx context.Context, claimID int) (*dto.ClaimDTO, error)
}

type RewardHandler struct {
	rewardService Service
}

func New(rewardService Service) *RewardHandler {
	return &RewardHandler{rewardService: rewardService}
}

// List godoc
//
//	@Summary	List active rewards
//	@Tags		Rewards
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.RewardDTO	"Rewards by points required"
//	@Router		/api/rewards [get]
func (h *RewardHandler) List(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewardService.ListRewards(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rewards)
}

// GetPoints godoc
//
//	@Summary	Points balance and affordable rewards
//	@Tags		Rewards
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.PointsSummaryDTO	"Points summary"
//	@Router		/api/rewards/points [get]
func (h *RewardHandler) GetPoints(w http.ResponseWriter, r *http.Request) {
	affiliateID := pkgauth.UserIDFromContext(r.Context())
	summary, err := h.rewardService.GetPoints(r.Context(), affiliateID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// Claim godoc
//
//	@Summary		Exchange points for a reward
//	@Description	Atomic: reward stock and points balance both decrement or neither does.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ClaimRequestDTO	true	"Reward id"
//	@Success		201		{object}	dto.ClaimDTO		"Created claim"
//	@Failure		402		{object}	utils.Response		"Insufficient points"
//	@Failure		404		{object}	utils.Response		"Reward not found"
//	@Failure		409		{object}	utils.Response		"Reward inactive or out of stock"
//	@Router			/api/rewards/claim [post]
func (h *RewardHandler) Claim(w http.ResponseWriter, r *http.Request) {
	affiliateID := pkgauth.UserIDFromContext(r.Context())
	var req dto.ClaimRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	claim, err := h.rewardService.Claim(r.Context(), affiliateID, req.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrRewardNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rewardservice.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, rewardservice.ErrRewardInactive), errors.Is(err, rewardservice.ErrRewardOutOfStock):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, claim)
}

// ClaimHistory godoc
//
//	@Summary	The caller's reward claims
//	@Tags		Rewards
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.ClaimDTO	"Claims, newest first"
//	@Router		/api/rewards/claims [get]
func (h *RewardHandler) ClaimHistory(w http.ResponseWriter, r *http.Request) {
	affiliateID := pkgauth.UserIDFromContext(r.Context())
	claims, err := h.rewardService.ClaimHistory(r.Context(), affiliateID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, claims)
}

// Create godoc
//
//	@Summary	Create a reward
//	@Tags		Rewards
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RewardRequestDTO	true	"Reward payload"
//	@Success	201		{object}	dto.RewardDTO			"Created reward"
//	@Failure	400		{object}	utils.Response			"Invalid reward data"
//	@Router		/api/rewards [post]
func (h *RewardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RewardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reward, err := h.rewardService.CreateReward(r.Context(), req)
	if err != nil {
		if errors.Is(err, rewardservice.ErrInvalidReward) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, reward)
}

// Update godoc
//
//	@Summary	Update a reward
//	@Tags		Rewards
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Reward id"
//	@Param		request	body		dto.RewardRequestDTO	true	"Reward payload"
//	@Success	200		{object}	dto.RewardDTO			"Updated reward"
//	@Failure	404		{object}	utils.Response			"Reward not found"
//	@Router		/api/rewards/{id} [put]
func (h *RewardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid reward id")
		return
	}
	var req dto.RewardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reward, err := h.rewardService.UpdateReward(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrRewardNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rewardservice.ErrInvalidReward):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reward)
}

// ApproveClaim godoc
//
//	@Summary	Approve a pending claim for delivery
//	@Tags		Rewards
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int				true	"Claim id"
//	@Success	200	{object}	dto.ClaimDTO	"Approved claim"
//	@Failure	404	{object}	utils.Response	"Claim not found"
//	@Router		/api/rewards/claims/{id}/approve [put]
func (h *RewardHandler) ApproveClaim(w http.ResponseWriter, r *http.Request) {
	claimID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid claim id")
		return
	}
	claim, err := h.rewardService.ApproveClaim(r.Context(), claimID)
	if err != nil {
		if errors.Is(err, rewardservice.ErrClaimNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, claim)
}
