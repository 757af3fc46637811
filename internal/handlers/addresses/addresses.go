package addresses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/addressservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	List(ctx context.Context, userID int) ([]dto.AddressDTO, error)
	Create(ctx context.Context, userID int, input dto.AddressRequestDTO) (*dto.AddressDTO, error)
	Update(ctx context.Context, userID, addressID int, input dto.AddressRequestDTO) (*dto.AddressDTO, error)
	Delete(ctx context.Context, userID, addressID int) error
	SetDefault(ctx context.Context, userID, addressID int) error
}

type AddressHandler struct {
	addressService Service
}

func New(addressService Service) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// List godoc
//
//	@Summary	List the caller's shipping addresses
//	@Tags		Addresses
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.AddressDTO	"Addresses, default first"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/addresses [get]
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())
	addresses, err := h.addressService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, addresses)
}

// Create godoc
//
//	@Summary		Add a shipping address
//	@Description	The first address automatically becomes the default.
//	@Tags			Addresses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddressRequestDTO	true	"Address payload"
//	@Success		201		{object}	dto.AddressDTO			"Created address"
//	@Failure		400		{object}	utils.Response			"Invalid address data"
//	@Router			/api/addresses [post]
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())
	var req dto.AddressRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	address, err := h.addressService.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, addressservice.ErrInvalidAddress) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, address)
}

// Update godoc
//
//	@Summary	Update a shipping address
//	@Tags		Addresses
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Address id"
//	@Param		request	body		dto.AddressRequestDTO	true	"Address payload"
//	@Success	200		{object}	dto.AddressDTO			"Updated address"
//	@Failure	404		{object}	utils.Response			"Address not found"
//	@Router		/api/addresses/{id} [put]
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())
	addressID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid address id")
		return
	}
	var req dto.AddressRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	address, err := h.addressService.Update(r.Context(), userID, addressID, req)
	if err != nil {
		switch {
		case errors.Is(err, addressservice.ErrAddressNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, addressservice.ErrInvalidAddress):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, address)
}

// Delete godoc
//
//	@Summary		Delete a shipping address
//	@Description	Deleting the default promotes the oldest remaining address. The only address can't be deleted.
//	@Tags			Addresses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Address id"
//	@Success		200	{string}	string			"Deleted"
//	@Failure		404	{object}	utils.Response	"Address not found"
//	@Failure		409	{object}	utils.Response	"Last address"
//	@Router			/api/addresses/{id} [delete]
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())
	addressID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid address id")
		return
	}
	if err := h.addressService.Delete(r.Context(), userID, addressID); err != nil {
		switch {
		case errors.Is(err, addressservice.ErrAddressNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, addressservice.ErrLastAddress):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "address deleted")
}

// SetDefault godoc
//
//	@Summary	Mark an address as the default
//	@Tags		Addresses
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int				true	"Address id"
//	@Success	200	{string}	string			"Default set"
//	@Failure	404	{object}	utils.Response	"Address not found"
//	@Router		/api/addresses/{id}/default [put]
func (h *AddressHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())
	addressID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid address id")
		return
	}
	if err := h.addressService.SetDefault(r.Context(), userID, addressID); err != nil {
		if errors.Is(err, addressservice.ErrAddressNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "default address set")
}
