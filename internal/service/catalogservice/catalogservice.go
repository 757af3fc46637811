package catalogservice

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidProduct   = errors.New("invalid product data")
	ErrInvalidCategory  = errors.New("invalid category data")
)

type Repo interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	ListProducts(ctx context.Context, filters dto.ProductFiltersDTO, priceField string) ([]domain.Product, int, error)
}

type Service struct {
	catalogRepo Repo
}

func New(repo Repo) *Service {
	return &Service{catalogRepo: repo}
}

// priceFieldForRole picks which list price the caller sees. Affiliates get
// the affiliate price, everyone else the public one.
func priceFieldForRole(role string) string {
	if role == domain.RoleAffiliate {
		return "affiliate_price"
	}
	return "public_price"
}

func (s *Service) ListCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryDTO{ID: c.ID, Name: c.Name, Slug: c.Slug, IsActive: c.IsActive})
	}
	return out, nil
}

func (s *Service) CreateCategory(ctx context.Context, input dto.CategoryRequestDTO) (*dto.CategoryDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidCategory
	}
	slug := input.Slug
	if slug == "" {
		slug = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(input.Name), " ", "-"))
	}
	created, err := s.catalogRepo.CreateCategory(ctx, &domain.Category{Name: input.Name, Slug: slug})
	if err != nil {
		zap.L().Error("can't create category", zap.Error(err))
		return nil, err
	}
	return &dto.CategoryDTO{ID: created.ID, Name: created.Name, Slug: created.Slug, IsActive: created.IsActive}, nil
}

func (s *Service) ListProducts(ctx context.Context, role string, filters dto.ProductFiltersDTO) (*dto.ProductListDTO, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}
	products, total, err := s.catalogRepo.ListProducts(ctx, filters, priceFieldForRole(role))
	if err != nil {
		return nil, err
	}

	list := &dto.ProductListDTO{
		Products:   make([]dto.ProductDTO, 0, len(products)),
		Pagination: dto.NewPagination(filters.Page, filters.Limit, total),
	}
	for _, p := range products {
		list.Products = append(list.Products, s.toProductDTO(ctx, p, role, false))
	}
	return list, nil
}

func (s *Service) GetProduct(ctx context.Context, role string, id int) (*dto.ProductDTO, error) {
	product, err := s.catalogRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	result := s.toProductDTO(ctx, *product, role, true)
	return &result, nil
}

func (s *Service) CreateProduct(ctx context.Context, input dto.ProductRequestDTO) (*dto.ProductDTO, error) {
	if err := s.validateProduct(ctx, input); err != nil {
		return nil, err
	}
	created, err := s.catalogRepo.CreateProduct(ctx, &domain.Product{
		CategoryID:     input.CategoryID,
		Name:           input.Name,
		Description:    input.Description,
		SKU:            input.SKU,
		PublicPrice:    input.PublicPrice,
		AffiliatePrice: input.AffiliatePrice,
		Stock:          input.Stock,
		ImageURL:       input.ImageURL,
	})
	if err != nil {
		zap.L().Error("can't create product", zap.Error(err))
		return nil, err
	}
	result := s.toProductDTO(ctx, *created, domain.RoleAdmin, true)
	return &result, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int, input dto.ProductRequestDTO) (*dto.ProductDTO, error) {
	existing, err := s.catalogRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}
	if err := s.validateProduct(ctx, input); err != nil {
		return nil, err
	}
	updated, err := s.catalogRepo.UpdateProduct(ctx, &domain.Product{
		ID:             id,
		CategoryID:     input.CategoryID,
		Name:           input.Name,
		Description:    input.Description,
		SKU:            input.SKU,
		PublicPrice:    input.PublicPrice,
		AffiliatePrice: input.AffiliatePrice,
		Stock:          input.Stock,
		ImageURL:       input.ImageURL,
		IsActive:       existing.IsActive,
	})
	if err != nil {
		zap.L().Error("can't update product", zap.Error(err))
		return nil, err
	}
	result := s.toProductDTO(ctx, *updated, domain.RoleAdmin, true)
	return &result, nil
}

func (s *Service) validateProduct(ctx context.Context, input dto.ProductRequestDTO) error {
	if strings.TrimSpace(input.Name) == "" || input.SKU == "" ||
		input.PublicPrice <= 0 || input.AffiliatePrice <= 0 || input.Stock < 0 {
		return ErrInvalidProduct
	}
	category, err := s.catalogRepo.GetCategory(ctx, input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *Service) toProductDTO(ctx context.Context, p domain.Product, role string, withCategory bool) dto.ProductDTO {
	price := p.PublicPrice
	if role == domain.RoleAffiliate {
		price = p.AffiliatePrice
	}
	result := dto.ProductDTO{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		SKU:            p.SKU,
		Price:          price,
		PublicPrice:    p.PublicPrice,
		AffiliatePrice: p.AffiliatePrice,
		Stock:          p.Stock,
		ImageURL:       p.ImageURL,
		IsAvailable:    p.IsActive && p.Stock > 0,
		CreatedAt:      p.CreatedAt,
	}
	if withCategory {
		if category, err := s.catalogRepo.GetCategory(ctx, p.CategoryID); err == nil && category != nil {
			result.Category = &dto.CategoryDTO{
				ID: category.ID, Name: category.Name, Slug: category.Slug, IsActive: category.IsActive,
			}
		}
	}
	return result
}
