package orderservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/pg"
	catalogrepo "github.com/gocardi/boost-api/internal/repo/catalog-repo"
	"github.com/gocardi/boost-api/internal/service/rulesservice"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrAddressRequired   = errors.New("shipping address required")
	ErrAddressNotFound   = errors.New("address not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Repo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	CreateItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error)
	FindByID(ctx context.Context, orderID int) (*domain.Order, error)
	ItemsByOrder(ctx context.Context, orderID int) ([]domain.OrderItem, error)
	ListByUser(ctx context.Context, userID int, filters dto.OrderFiltersDTO) ([]domain.Order, int, error)
	ListForAdmin(ctx context.Context, filters dto.OrderFiltersDTO, regions []string) ([]domain.OrderWithUser, int, error)
	UpdateStatus(ctx context.Context, orderID int, status, trackingCode string, deliveredAt *time.Time) (*domain.Order, error)
}

type CartRepo interface {
	GetByUser(ctx context.Context, userID int) (*domain.Cart, error)
	GetItems(ctx context.Context, cartID int) ([]domain.CartItemDetail, error)
	Clear(ctx context.Context, cartID int) error
}

type ProductRepo interface {
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	DecrementStock(ctx context.Context, productID, quantity int) error
}

type AddressRepo interface {
	FindByID(ctx context.Context, userID, addressID int) (*domain.ShippingAddress, error)
	Create(ctx context.Context, a *domain.ShippingAddress) (*domain.ShippingAddress, error)
	CountByUser(ctx context.Context, userID int) (int, error)
	ClearDefaults(ctx context.Context, userID int) error
}

type UserRepo interface {
	ListAdminRegions(ctx context.Context, adminID int) ([]string, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type RulesService interface {
	Number(ctx context.Context, key string, fallback float64) (float64, error)
}

type Service struct {
	orderRepo    Repo
	cartRepo     CartRepo
	productRepo  ProductRepo
	addressRepo  AddressRepo
	userRepo     UserRepo
	rulesService RulesService
	txManager    pg.TXManager
}

func New(orderRepo Repo, cartRepo CartRepo, productRepo ProductRepo, addressRepo AddressRepo, userRepo UserRepo, rules RulesService, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		addressRepo:  addressRepo,
		userRepo:     userRepo,
		rulesService: rules,
		txManager:    txManager,
	}
}

// Checkout turns the cart into an order in one transaction: stock is
// decremented per line, unit prices are snapshotted for the caller's role and
// the cart is cleared. Any stock shortage aborts the whole order.
func (s *Service) Checkout(ctx context.Context, userID int, role string, input dto.CheckoutRequestDTO) (*dto.OrderDTO, error) {
	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrEmptyCart
	}
	items, err := s.cartRepo.GetItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	shippingCost, err := s.rulesService.Number(ctx, rulesservice.KeyShippingCost, rulesservice.DefaultShippingCost)
	if err != nil {
		return nil, err
	}

	var order *domain.Order
	var orderItems []domain.OrderItem
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		addressID, err := s.resolveAddress(ctx, userID, input)
		if err != nil {
			return err
		}

		total := 0.0
		for _, it := range items {
			price := it.Product.PublicPrice
			if role == domain.RoleAffiliate {
				price = it.Product.AffiliatePrice
			}
			total += price * float64(it.Quantity)
		}

		order, err = s.orderRepo.Create(ctx, &domain.Order{
			UserID:            userID,
			Status:            domain.OrderStatusPending,
			TotalAmount:       total + shippingCost,
			ShippingCost:      shippingCost,
			ShippingAddressID: addressID,
		})
		if err != nil {
			return err
		}

		for _, it := range items {
			if err := s.productRepo.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				if errors.Is(err, catalogrepo.ErrInsufficientStock) {
					return ErrInsufficientStock
				}
				return err
			}
			price := it.Product.PublicPrice
			if role == domain.RoleAffiliate {
				price = it.Product.AffiliatePrice
			}
			item, err := s.orderRepo.CreateItem(ctx, &domain.OrderItem{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: price,
			})
			if err != nil {
				return err
			}
			orderItems = append(orderItems, *item)
		}

		return s.cartRepo.Clear(ctx, cart.ID)
	})
	if err != nil {
		zap.L().Error("checkout failed", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("order created",
		zap.Int("orderID", order.ID), zap.Int("userID", userID),
		zap.Float64("total", order.TotalAmount))
	return s.buildOrderDTO(ctx, order, orderItems)
}

// resolveAddress returns the shipping address id for a checkout: an existing
// stored address or a new one created from the request.
func (s *Service) resolveAddress(ctx context.Context, userID int, input dto.CheckoutRequestDTO) (*int, error) {
	if input.UseStoredAddress {
		address, err := s.addressRepo.FindByID(ctx, userID, input.AddressID)
		if err != nil {
			return nil, err
		}
		if address == nil {
			return nil, ErrAddressNotFound
		}
		return &address.ID, nil
	}
	if input.ShippingAddress == nil {
		return nil, ErrAddressRequired
	}

	count, err := s.addressRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	created, err := s.addressRepo.Create(ctx, &domain.ShippingAddress{
		UserID:    userID,
		Name:      input.ShippingAddress.Name,
		Phone:     input.ShippingAddress.Phone,
		Region:    input.ShippingAddress.Region,
		City:      input.ShippingAddress.City,
		Address:   input.ShippingAddress.Address,
		Reference: input.ShippingAddress.Reference,
		IsDefault: count == 0,
	})
	if err != nil {
		return nil, err
	}
	return &created.ID, nil
}

func (s *Service) GetUserOrders(ctx context.Context, userID int, filters dto.OrderFiltersDTO) (*dto.OrderListDTO, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 10
	}
	orders, total, err := s.orderRepo.ListByUser(ctx, userID, filters)
	if err != nil {
		return nil, err
	}
	list := &dto.OrderListDTO{
		Orders:     make([]dto.OrderDTO, 0, len(orders)),
		Pagination: dto.NewPagination(filters.Page, filters.Limit, total),
	}
	for i := range orders {
		items, err := s.orderRepo.ItemsByOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orderDTO, err := s.buildOrderDTO(ctx, &orders[i], items)
		if err != nil {
			return nil, err
		}
		list.Orders = append(list.Orders, *orderDTO)
	}
	return list, nil
}

// GetOrder is owner-scoped; admins go through ListForAdmin instead.
func (s *Service) GetOrder(ctx context.Context, userID, orderID int) (*dto.OrderDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	items, err := s.orderRepo.ItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.buildOrderDTO(ctx, order, items)
}

func (s *Service) ListForAdmin(ctx context.Context, adminID int, filters dto.OrderFiltersDTO) (*dto.OrderListDTO, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}
	regions, err := s.adminRegions(ctx, adminID)
	if err != nil {
		return nil, err
	}
	orders, total, err := s.orderRepo.ListForAdmin(ctx, filters, regions)
	if err != nil {
		return nil, err
	}
	list := &dto.OrderListDTO{
		Orders:     make([]dto.OrderDTO, 0, len(orders)),
		Pagination: dto.NewPagination(filters.Page, filters.Limit, total),
	}
	for i := range orders {
		items, err := s.orderRepo.ItemsByOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orderDTO, err := s.buildOrderDTO(ctx, &orders[i].Order, items)
		if err != nil {
			return nil, err
		}
		list.Orders = append(list.Orders, *orderDTO)
	}
	return list, nil
}

// statusRank orders the forward-only lifecycle; payment owns pending→paid.
var statusRank = map[string]int{
	domain.OrderStatusPending:   0,
	domain.OrderStatusPaid:      1,
	domain.OrderStatusShipped:   2,
	domain.OrderStatusDelivered: 3,
}

// UpdateStatus moves an order along paid → shipped → delivered. Cancellation
// is allowed from any non-delivered state.
func (s *Service) UpdateStatus(ctx context.Context, orderID int, input dto.UpdateOrderStatusRequestDTO) (*dto.OrderDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if input.Status == domain.OrderStatusCancelled {
		if order.Status == domain.OrderStatusDelivered {
			return nil, ErrInvalidTransition
		}
	} else {
		newRank, ok := statusRank[input.Status]
		if !ok || newRank <= statusRank[order.Status] {
			return nil, ErrInvalidTransition
		}
	}

	var deliveredAt *time.Time
	if input.Status == domain.OrderStatusDelivered {
		now := time.Now()
		deliveredAt = &now
	}
	updated, err := s.orderRepo.UpdateStatus(ctx, orderID, input.Status, input.TrackingCode, deliveredAt)
	if err != nil {
		return nil, err
	}
	items, err := s.orderRepo.ItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	zap.L().Info("order status updated",
		zap.Int("orderID", orderID), zap.String("status", input.Status))
	return s.buildOrderDTO(ctx, updated, items)
}

// adminRegions resolves the region scope; admin_general sees everything.
func (s *Service) adminRegions(ctx context.Context, adminID int) ([]string, error) {
	admin, err := s.userRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.Role == domain.RoleAdminGeneral {
		return nil, nil
	}
	return s.userRepo.ListAdminRegions(ctx, adminID)
}

func (s *Service) buildOrderDTO(ctx context.Context, order *domain.Order, items []domain.OrderItem) (*dto.OrderDTO, error) {
	result := &dto.OrderDTO{
		ID:           order.ID,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		ShippingCost: order.ShippingCost,
		TrackingCode: order.TrackingCode,
		CreatedAt:    order.CreatedAt,
		DeliveredAt:  order.DeliveredAt,
		Items:        make([]dto.OrderItemDTO, 0, len(items)),
	}
	for _, it := range items {
		itemDTO := dto.OrderItemDTO{
			ID:         it.ID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.UnitPrice * float64(it.Quantity),
			ProductID:  it.ProductID,
		}
		if product, err := s.productRepo.GetProduct(ctx, it.ProductID); err == nil && product != nil {
			itemDTO.Product = product.Name
		}
		result.Items = append(result.Items, itemDTO)
	}
	return result, nil
}
