package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/catalogservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	ListCategories(ctx context.Context) ([]dto.CategoryDTO, error)
	CreateCategory(ctx context.Context, input dto.CategoryRequestDTO) (*dto.CategoryDTO, error)
	ListProducts(ctx context.Context, role string, filters dto.ProductFiltersDTO) (*dto.ProductListDTO, error)
	GetProduct(ctx context.Context, role string, id int) (*dto.ProductDTO, error)
	CreateProduct(ctx context.Context, input dto.ProductRequestDTO) (*dto.ProductDTO, error)
	UpdateProduct(ctx context.Context, id int, input dto.ProductRequestDTO) (*dto.ProductDTO, error)
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	Public listing with search, category and price filters. Affiliates see affiliate prices.
//	@Tags			Catalog
//	@Produce		json
//	@Param			search		query		string	false	"Name, description or SKU fragment"
//	@Param			category	query		int		false	"Category id"
//	@Param			minPrice	query		number	false	"Minimum price"
//	@Param			maxPrice	query		number	false	"Maximum price"
//	@Param			sortBy		query		string	false	"price or name"
//	@Param			page		query		int		false	"Page"
//	@Param			limit		query		int		false	"Page size"
//	@Success		200			{object}	dto.ProductListDTO	"Products"
//	@Router			/api/products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	role := pkgauth.RoleFromContext(r.Context())
	filters := parseProductFilters(r)

	list, err := h.catalogService.ListProducts(r.Context(), role, filters)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetProduct godoc
//
//	@Summary	Get one product
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path		int				true	"Product id"
//	@Success	200	{object}	dto.ProductDTO	"Product"
//	@Failure	404	{object}	utils.Response	"Product not found"
//	@Router		/api/products/{id} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	role := pkgauth.RoleFromContext(r.Context())
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	product, err := h.catalogService.GetProduct(r.Context(), role, id)
	if err != nil {
		if errors.Is(err, catalogservice.ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// CreateProduct godoc
//
//	@Summary	Create a product
//	@Tags		Catalog
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ProductRequestDTO	true	"Product payload"
//	@Success	201		{object}	dto.ProductDTO			"Created product"
//	@Failure	400		{object}	utils.Response			"Invalid product data"
//	@Router		/api/products [post]
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	product, err := h.catalogService.CreateProduct(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrInvalidProduct), errors.Is(err, catalogservice.ErrCategoryNotFound):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// UpdateProduct godoc
//
//	@Summary	Update a product
//	@Tags		Catalog
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Product id"
//	@Param		request	body		dto.ProductRequestDTO	true	"Product payload"
//	@Success	200		{object}	dto.ProductDTO			"Updated product"
//	@Failure	404		{object}	utils.Response			"Product not found"
//	@Router		/api/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req dto.ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	product, err := h.catalogService.UpdateProduct(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, catalogservice.ErrInvalidProduct), errors.Is(err, catalogservice.ErrCategoryNotFound):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// ListCategories godoc
//
//	@Summary	List active categories
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}	dto.CategoryDTO	"Categories"
//	@Router		/api/categories [get]
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

// CreateCategory godoc
//
//	@Summary	Create a category
//	@Tags		Catalog
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CategoryRequestDTO	true	"Category payload"
//	@Success	201		{object}	dto.CategoryDTO			"Created category"
//	@Failure	400		{object}	utils.Response			"Invalid category data"
//	@Router		/api/categories [post]
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	category, err := h.catalogService.CreateCategory(r.Context(), req)
	if err != nil {
		if errors.Is(err, catalogservice.ErrInvalidCategory) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, category)
}

func parseProductFilters(r *http.Request) dto.ProductFiltersDTO {
	q := r.URL.Query()
	filters := dto.ProductFiltersDTO{
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	filters.CategoryID, _ = strconv.Atoi(q.Get("category"))
	filters.Page, _ = strconv.Atoi(q.Get("page"))
	filters.Limit, _ = strconv.Atoi(q.Get("limit"))
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		filters.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		filters.MaxPrice = &v
	}
	return filters
}
