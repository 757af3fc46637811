package tracking

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gocardi/boost-api/internal/dto"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	CurrentStatus(ctx context.Context, affiliateID int) (*dto.MonthlyStatusDTO, error)
	History(ctx context.Context, affiliateID, months int) ([]dto.MonthlyRecordDTO, error)
}

type TrackingHandler struct {
	trackingService Service
}

func New(trackingService Service) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// CurrentStatus godoc
//
//	@Summary		This month's purchase compliance
//	@Description	Quantity bought so far, the required minimum and days left in the month.
//	@Tags			Monthly tracking
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MonthlyStatusDTO	"Current month status"
//	@Router			/api/monthly-tracking/current-status [get]
func (h *TrackingHandler) CurrentStatus(w http.ResponseWriter, r *http.Request) {
	affiliateID := pkgauth.UserIDFromContext(r.Context())
	status, err := h.trackingService.CurrentStatus(r.Context(), affiliateID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, status)
}

// History godoc
//
//	@Summary	Past months' compliance records
//	@Tags		Monthly tracking
//	@Security	BearerAuth
//	@Produce	json
//	@Param		months	query	int	false	"How many months back (default 12)"
//	@Success	200		{array}	dto.MonthlyRecordDTO	"Monthly records, newest first"
//	@Router		/api/monthly-tracking/history [get]
func (h *TrackingHandler) History(w http.ResponseWriter, r *http.Request) {
	affiliateID := pkgauth.UserIDFromContext(r.Context())
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))
	history, err := h.trackingService.History(r.Context(), affiliateID, months)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, history)
}
