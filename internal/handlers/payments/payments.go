package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/paymentservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	Confirm(ctx context.Context, userID int, input dto.ConfirmPaymentRequestDTO) (*dto.ConfirmPaymentResponseDTO, error)
	Methods() []dto.PaymentMethodDTO
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Confirm godoc
//
//	@Summary		Confirm payment of a pending order
//	@Description	Flips the order to paid and triggers commissions, points and monthly tracking.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmPaymentRequestDTO	true	"Payment payload"
//	@Success		200		{object}	dto.ConfirmPaymentResponseDTO	"Payment and updated order"
//	@Failure		403		{object}	utils.Response					"Order belongs to another user"
//	@Failure		404		{object}	utils.Response					"Order not found"
//	@Failure		409		{object}	utils.Response					"Order is not pending"
//	@Router			/api/payments/confirm [post]
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())
	var req dto.ConfirmPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	response, err := h.paymentService.Confirm(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrOrderNotOwned):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, paymentservice.ErrNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, paymentservice.ErrAmountMismatch):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Methods godoc
//
//	@Summary	List accepted payment methods
//	@Tags		Payments
//	@Produce	json
//	@Success	200	{array}	dto.PaymentMethodDTO	"Methods"
//	@Router		/api/payments/methods [get]
func (h *PaymentHandler) Methods(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.paymentService.Methods())
}
