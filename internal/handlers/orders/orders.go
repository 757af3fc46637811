package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/orderservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	Checkout(ctx context.Context, userID int, role string, input dto.CheckoutRequestDTO) (*dto.OrderDTO, error)
	GetUserOrders(ctx context.Context, userID int, filters dto.OrderFiltersDTO) (*dto.OrderListDTO, error)
	GetOrder(ctx context.Context, userID, orderID int) (*dto.OrderDTO, error)
	ListForAdmin(ctx context.Context, adminID int, filters dto.OrderFiltersDTO) (*dto.OrderListDTO, error)
	UpdateStatus(ctx context.Context, orderID int, input dto.UpdateOrderStatusRequestDTO) (*dto.OrderDTO, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Checkout godoc
//
//	@Summary		Create an order from the cart
//	@Description	One transaction: stock check and decrement, role-priced snapshot, cart clear.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckoutRequestDTO	true	"Checkout payload"
//	@Success		201		{object}	dto.OrderDTO			"Created order, pending payment"
//	@Failure		400		{object}	utils.Response			"Empty cart or missing address"
//	@Failure		409		{object}	utils.Response			"Not enough stock"
//	@Router			/api/orders [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	order, err := h.orderService.Checkout(ctx, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx), req)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrEmptyCart), errors.Is(err, orderservice.ErrAddressRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orderservice.ErrAddressNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrInsufficientStock):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrders godoc
//
//	@Summary	List the caller's orders
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"Status filter"
//	@Param		page	query		int		false	"Page"
//	@Param		limit	query		int		false	"Page size"
//	@Success	200		{object}	dto.OrderListDTO	"Orders, newest first"
//	@Router		/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())
	list, err := h.orderService.GetUserOrders(r.Context(), userID, parseOrderFilters(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetOrder godoc
//
//	@Summary	Get one of the caller's orders
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int				true	"Order id"
//	@Success	200	{object}	dto.OrderDTO	"Order"
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := h.orderService.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// ListForAdmin godoc
//
//	@Summary		List all orders
//	@Description	Regional admins see orders shipped to their regions only.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"
//	@Param			region	query		string	false	"Region filter"
//	@Success		200		{object}	dto.OrderListDTO	"Orders"
//	@Router			/api/admin/orders [get]
func (h *OrderHandler) ListForAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := pkgauth.UserIDFromContext(r.Context())
	list, err := h.orderService.ListForAdmin(r.Context(), adminID, parseOrderFilters(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// UpdateStatus godoc
//
//	@Summary		Advance an order's status
//	@Description	paid → shipped → delivered; cancellation allowed until delivery.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Order id"
//	@Param			request	body		dto.UpdateOrderStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.OrderDTO					"Updated order"
//	@Failure		404		{object}	utils.Response					"Order not found"
//	@Failure		409		{object}	utils.Response					"Invalid status transition"
//	@Router			/api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var req dto.UpdateOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	order, err := h.orderService.UpdateStatus(r.Context(), orderID, req)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

func parseOrderFilters(r *http.Request) dto.OrderFiltersDTO {
	q := r.URL.Query()
	filters := dto.OrderFiltersDTO{
		Status: q.Get("status"),
		Region: q.Get("region"),
	}
	filters.Page, _ = strconv.Atoi(q.Get("page"))
	filters.Limit, _ = strconv.Atoi(q.Get("limit"))
	if t, err := time.Parse("2006-01-02", q.Get("dateFrom")); err == nil {
		filters.DateFrom = &t
	}
	if t, err := time.Parse("2006-01-02", q.Get("dateTo")); err == nil {
		filters.DateTo = &t
	}
	return filters
}
