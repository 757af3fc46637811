package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/cartservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	GetCart(ctx context.Context, userID int, role string) (*dto.CartDTO, error)
	AddItem(ctx context.Context, userID int, role string, input dto.AddCartItemRequestDTO) (*dto.CartDTO, error)
	UpdateItem(ctx context.Context, userID int, role string, itemID, quantity int) (*dto.CartDTO, error)
	RemoveItem(ctx context.Context, userID int, role string, itemID int) (*dto.CartDTO, error)
	Clear(ctx context.Context, userID int) error
}

type CartHandler struct {
	cartService Service
}

func New(cartService Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart godoc
//
//	@Summary	Get the caller's cart
//	@Tags		Cart
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.CartDTO	"Cart with role-priced totals"
//	@Router		/api/cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cart, err := h.cartService.GetCart(ctx, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cart)
}

// AddItem godoc
//
//	@Summary		Add a product to the cart
//	@Description	Adding a product already in the cart merges quantities, bounded by stock.
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddCartItemRequestDTO	true	"Product and quantity"
//	@Success		200		{object}	dto.CartDTO					"Updated cart"
//	@Failure		404		{object}	utils.Response				"Product not found"
//	@Failure		409		{object}	utils.Response				"Not enough stock"
//	@Router			/api/cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req dto.AddCartItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cart, err := h.cartService.AddItem(ctx, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx), req)
	if err != nil {
		respondCartError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cart)
}

// UpdateItem godoc
//
//	@Summary	Change a cart item's quantity
//	@Tags		Cart
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Cart item id"
//	@Param		request	body		dto.UpdateCartItemRequestDTO	true	"New quantity"
//	@Success	200		{object}	dto.CartDTO					"Updated cart"
//	@Failure	404		{object}	utils.Response				"Cart item not found"
//	@Router		/api/cart/items/{id} [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	var req dto.UpdateCartItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cart, err := h.cartService.UpdateItem(ctx, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx), itemID, req.Quantity)
	if err != nil {
		respondCartError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cart)
}

// RemoveItem godoc
//
//	@Summary	Remove a cart item
//	@Tags		Cart
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int				true	"Cart item id"
//	@Success	200	{object}	dto.CartDTO		"Updated cart"
//	@Failure	404	{object}	utils.Response	"Cart item not found"
//	@Router		/api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	cart, err := h.cartService.RemoveItem(ctx, pkgauth.UserIDFromContext(ctx), pkgauth.RoleFromContext(ctx), itemID)
	if err != nil {
		respondCartError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cart)
}

// Clear godoc
//
//	@Summary	Empty the cart
//	@Tags		Cart
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{string}	string	"Cart cleared"
//	@Router		/api/cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cartService.Clear(r.Context(), pkgauth.UserIDFromContext(r.Context())); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "cart cleared")
}

func respondCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cartservice.ErrProductNotFound), errors.Is(err, cartservice.ErrItemNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, cartservice.ErrInvalidQuantity):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, cartservice.ErrInsufficientStock):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
