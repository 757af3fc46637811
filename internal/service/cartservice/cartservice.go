package cartservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrItemNotFound      = errors.New("cart item not found")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("not enough stock")
)

type CartRepo interface {
	GetByUser(ctx context.Context, userID int) (*domain.Cart, error)
	Create(ctx context.Context, userID int) (*domain.Cart, error)
	GetItems(ctx context.Context, cartID int) ([]domain.CartItemDetail, error)
	FindItem(ctx context.Context, userID, itemID int) (*domain.CartItem, error)
	FindItemByProduct(ctx context.Context, cartID, productID int) (*domain.CartItem, error)
	AddItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID, quantity int) error
	DeleteItem(ctx context.Context, itemID int) error
	Clear(ctx context.Context, cartID int) error
	Touch(ctx context.Context, cartID int) error
}

type ProductRepo interface {
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
}

type Service struct {
	cartRepo    CartRepo
	productRepo ProductRepo
}

func New(cartRepo CartRepo, productRepo ProductRepo) *Service {
	return &Service{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart returns the user's cart, creating an empty one on first access.
func (s *Service) GetCart(ctx context.Context, userID int, role string) (*dto.CartDTO, error) {
	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildCartDTO(ctx, cart, role)
}

// AddItem puts a product in the cart; adding a product already present merges
// quantities, re-checked against stock.
func (s *Service) AddItem(ctx context.Context, userID int, role string, input dto.AddCartItemRequestDTO) (*dto.CartDTO, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.FindItemByProduct(ctx, cart.ID, input.ProductID)
	if err != nil {
		return nil, err
	}
	quantity := input.Quantity
	if existing != nil {
		quantity += existing.Quantity
	}
	if quantity > product.Stock {
		return nil, ErrInsufficientStock
	}

	if existing != nil {
		err = s.cartRepo.UpdateItemQuantity(ctx, existing.ID, quantity)
	} else {
		_, err = s.cartRepo.AddItem(ctx, &domain.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Quantity:  quantity,
		})
	}
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Touch(ctx, cart.ID); err != nil {
		zap.L().Error("can't touch cart", zap.Error(err))
	}
	return s.buildCartDTO(ctx, cart, role)
}

func (s *Service) UpdateItem(ctx context.Context, userID int, role string, itemID, quantity int) (*dto.CartDTO, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	item, err := s.cartRepo.FindItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	product, err := s.productRepo.GetProduct(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || quantity > product.Stock {
		return nil, ErrInsufficientStock
	}
	if err := s.cartRepo.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		return nil, err
	}
	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildCartDTO(ctx, cart, role)
}

func (s *Service) RemoveItem(ctx context.Context, userID int, role string, itemID int) (*dto.CartDTO, error) {
	item, err := s.cartRepo.FindItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if err := s.cartRepo.DeleteItem(ctx, itemID); err != nil {
		return nil, err
	}
	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildCartDTO(ctx, cart, role)
}

func (s *Service) Clear(ctx context.Context, userID int) error {
	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	return s.cartRepo.Clear(ctx, cart.ID)
}

func (s *Service) getOrCreate(ctx context.Context, userID int) (*domain.Cart, error) {
	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	return s.cartRepo.Create(ctx, userID)
}

func (s *Service) buildCartDTO(ctx context.Context, cart *domain.Cart, role string) (*dto.CartDTO, error) {
	items, err := s.cartRepo.GetItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	result := &dto.CartDTO{
		ID:        cart.ID,
		Items:     make([]dto.CartItemDTO, 0, len(items)),
		IsEmpty:   len(items) == 0,
		UpdatedAt: cart.UpdatedAt,
	}
	for _, it := range items {
		price := it.Product.PublicPrice
		if role == domain.RoleAffiliate {
			price = it.Product.AffiliatePrice
		}
		lineTotal := price * float64(it.Quantity)
		result.Items = append(result.Items, dto.CartItemDTO{
			ID:         it.ID,
			Quantity:   it.Quantity,
			UnitPrice:  price,
			TotalPrice: lineTotal,
			Product: dto.ProductDTO{
				ID:             it.Product.ID,
				Name:           it.Product.Name,
				Description:    it.Product.Description,
				SKU:            it.Product.SKU,
				Price:          price,
				PublicPrice:    it.Product.PublicPrice,
				AffiliatePrice: it.Product.AffiliatePrice,
				Stock:          it.Product.Stock,
				ImageURL:       it.Product.ImageURL,
				IsAvailable:    it.Product.IsActive && it.Product.Stock > 0,
				CreatedAt:      it.Product.CreatedAt,
			},
		})
		result.TotalItems += it.Quantity
		result.TotalPrice += lineTotal
	}
	return result, nil
}
