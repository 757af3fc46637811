package orderservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/pg"
	catalogrepo "github.com/gocardi/boost-api/internal/repo/catalog-repo"
	"github.com/gocardi/boost-api/internal/service/rulesservice"
)

type mocks struct {
	orderRepo   *MockRepo
	cartRepo    *MockCartRepo
	productRepo *MockProductRepo
	addressRepo *MockAddressRepo
	userRepo    *MockUserRepo
	rules       *MockRulesService
	txManager   *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		orderRepo:   NewMockRepo(ctrl),
		cartRepo:    NewMockCartRepo(ctrl),
		productRepo: NewMockProductRepo(ctrl),
		addressRepo: NewMockAddressRepo(ctrl),
		userRepo:    NewMockUserRepo(ctrl),
		rules:       NewMockRulesService(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
	}
	service := New(m.orderRepo, m.cartRepo, m.productRepo, m.addressRepo, m.userRepo, m.rules, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	cart := &domain.Cart{ID: 3, UserID: 1}
	cartItems := []domain.CartItemDetail{
		{
			CartItem: domain.CartItem{ID: 30, CartID: 3, ProductID: 7, Quantity: 2},
			Product:  domain.Product{ID: 7, Name: "Omega shake", PublicPrice: 100, AffiliatePrice: 80},
		},
		{
			CartItem: domain.CartItem{ID: 31, CartID: 3, ProductID: 8, Quantity: 1},
			Product:  domain.Product{ID: 8, Name: "Collagen", PublicPrice: 50, AffiliatePrice: 40},
		},
	}
	address := &domain.ShippingAddress{ID: 9, UserID: 1}
	storedAddressInput := dto.CheckoutRequestDTO{UseStoredAddress: true, AddressID: 9}

	expectCartAndShipping := func(m *mocks) {
		m.cartRepo.EXPECT().GetByUser(ctx, 1).Return(cart, nil)
		m.cartRepo.EXPECT().GetItems(ctx, 3).Return(cartItems, nil)
		m.rules.EXPECT().Number(ctx, rulesservice.KeyShippingCost, float64(rulesservice.DefaultShippingCost)).Return(15.0, nil)
	}
	expectTx := func(m *mocks) {
		m.txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
	}

	t.Run("Affiliate checkout snapshots affiliate prices and clears the cart", func(t *testing.T) {
		service, m := NewMock(t)
		expectCartAndShipping(m)
		expectTx(m)
		m.addressRepo.EXPECT().FindByID(ctx, 1, 9).Return(address, nil)
		m.orderRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
			// 2*80 + 1*40 affiliate-priced lines plus shipping
			assert.Equal(t, 215.0, order.TotalAmount)
			assert.Equal(t, 15.0, order.ShippingCost)
			assert.Equal(t, domain.OrderStatusPending, order.Status)
			order.ID = 50
			return order, nil
		})
		m.productRepo.EXPECT().DecrementStock(ctx, 7, 2).Return(nil)
		m.orderRepo.EXPECT().CreateItem(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
			assert.Equal(t, 50, item.OrderID)
			assert.Equal(t, 7, item.ProductID)
			assert.Equal(t, 80.0, item.UnitPrice)
			item.ID = 500
			return item, nil
		})
		m.productRepo.EXPECT().DecrementStock(ctx, 8, 1).Return(nil)
		m.orderRepo.EXPECT().CreateItem(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
			assert.Equal(t, 40.0, item.UnitPrice)
			item.ID = 501
			return item, nil
		})
		m.cartRepo.EXPECT().Clear(ctx, 3).Return(nil)
		m.productRepo.EXPECT().GetProduct(ctx, 7).Return(&cartItems[0].Product, nil)
		m.productRepo.EXPECT().GetProduct(ctx, 8).Return(&cartItems[1].Product, nil)

		order, err := service.Checkout(ctx, 1, domain.RoleAffiliate, storedAddressInput)
		assert.NoError(t, err)
		assert.Equal(t, 50, order.ID)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, "Omega shake", order.Items[0].Product)
	})

	t.Run("Visitor checkout uses public prices", func(t *testing.T) {
		service, m := NewMock(t)
		expectCartAndShipping(m)
		expectTx(m)
		m.addressRepo.EXPECT().FindByID(ctx, 1, 9).Return(address, nil)
		m.orderRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
			assert.Equal(t, 265.0, order.TotalAmount)
			order.ID = 51
			return order, nil
		})
		m.productRepo.EXPECT().DecrementStock(ctx, 7, 2).Return(nil)
		m.orderRepo.EXPECT().CreateItem(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
			assert.Equal(t, 100.0, item.UnitPrice)
			return item, nil
		})
		m.productRepo.EXPECT().DecrementStock(ctx, 8, 1).Return(nil)
		m.orderRepo.EXPECT().CreateItem(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
			assert.Equal(t, 50.0, item.UnitPrice)
			return item, nil
		})
		m.cartRepo.EXPECT().Clear(ctx, 3).Return(nil)
		m.productRepo.EXPECT().GetProduct(ctx, 7).Return(&cartItems[0].Product, nil)
		m.productRepo.EXPECT().GetProduct(ctx, 8).Return(&cartItems[1].Product, nil)

		_, err := service.Checkout(ctx, 1, domain.RoleVisitor, storedAddressInput)
		assert.NoError(t, err)
	})

	t.Run("Stock shortage aborts the whole checkout", func(t *testing.T) {
		service, m := NewMock(t)
		expectCartAndShipping(m)
		expectTx(m)
		m.addressRepo.EXPECT().FindByID(ctx, 1, 9).Return(address, nil)
		m.orderRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
			order.ID = 52
			return order, nil
		})
		m.productRepo.EXPECT().DecrementStock(ctx, 7, 2).Return(nil)
		m.orderRepo.EXPECT().CreateItem(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
			return item, nil
		})
		m.productRepo.EXPECT().DecrementStock(ctx, 8, 1).Return(catalogrepo.ErrInsufficientStock)
		// no CreateItem for the second line, no cart clear: the
		// transaction callback fails and nothing is committed

		order, err := service.Checkout(ctx, 1, domain.RoleAffiliate, storedAddressInput)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("Empty cart", func(t *testing.T) {
		service, m := NewMock(t)
		m.cartRepo.EXPECT().GetByUser(ctx, 1).Return(cart, nil)
		m.cartRepo.EXPECT().GetItems(ctx, 3).Return(nil, nil)

		order, err := service.Checkout(ctx, 1, domain.RoleVisitor, storedAddressInput)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("Unknown stored address", func(t *testing.T) {
		service, m := NewMock(t)
		expectCartAndShipping(m)
		expectTx(m)
		m.addressRepo.EXPECT().FindByID(ctx, 1, 9).Return(nil, nil)

		order, err := service.Checkout(ctx, 1, domain.RoleVisitor, storedAddressInput)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})

	t.Run("First submitted address becomes the default", func(t *testing.T) {
		service, m := NewMock(t)
		expectCartAndShipping(m)
		expectTx(m)
		m.addressRepo.EXPECT().CountByUser(ctx, 1).Return(0, nil)
		m.addressRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, a *domain.ShippingAddress) (*domain.ShippingAddress, error) {
			assert.True(t, a.IsDefault)
			a.ID = 11
			return a, nil
		})
		m.orderRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
			assert.Equal(t, 11, *order.ShippingAddressID)
			order.ID = 53
			return order, nil
		})
		m.productRepo.EXPECT().DecrementStock(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.orderRepo.EXPECT().CreateItem(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
			return item, nil
		}).Times(2)
		m.cartRepo.EXPECT().Clear(ctx, 3).Return(nil)
		m.productRepo.EXPECT().GetProduct(ctx, gomock.Any()).Return(nil, nil).Times(2)

		_, err := service.Checkout(ctx, 1, domain.RoleVisitor, dto.CheckoutRequestDTO{
			ShippingAddress: &dto.AddressRequestDTO{
				Name: "Ana", Phone: "999888777", Region: "Lima", City: "Lima", Address: "Av. Brasil 123",
			},
		})
		assert.NoError(t, err)
	})
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner reads own order", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(&domain.Order{ID: 10, UserID: 1, Status: domain.OrderStatusPaid}, nil)
		m.orderRepo.EXPECT().ItemsByOrder(ctx, 10).Return([]domain.OrderItem{{ID: 100, ProductID: 7, Quantity: 2, UnitPrice: 80}}, nil)
		m.productRepo.EXPECT().GetProduct(ctx, 7).Return(&domain.Product{ID: 7, Name: "Omega shake"}, nil)

		order, err := service.GetOrder(ctx, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, 160.0, order.Items[0].TotalPrice)
	})

	t.Run("Foreign order reads as not found", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(&domain.Order{ID: 10, UserID: 2}, nil)

		order, err := service.GetOrder(ctx, 1, 10)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Paid order ships with tracking code", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(&domain.Order{ID: 10, Status: domain.OrderStatusPaid}, nil)
		m.orderRepo.EXPECT().UpdateStatus(ctx, 10, domain.OrderStatusShipped, "TRK-1", nil).Return(&domain.Order{ID: 10, Status: domain.OrderStatusShipped, TrackingCode: "TRK-1"}, nil)
		m.orderRepo.EXPECT().ItemsByOrder(ctx, 10).Return(nil, nil)

		order, err := service.UpdateStatus(ctx, 10, dto.UpdateOrderStatusRequestDTO{Status: domain.OrderStatusShipped, TrackingCode: "TRK-1"})
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusShipped, order.Status)
	})

	t.Run("Delivery records the timestamp", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(&domain.Order{ID: 10, Status: domain.OrderStatusShipped}, nil)
		m.orderRepo.EXPECT().UpdateStatus(ctx, 10, domain.OrderStatusDelivered, "", gomock.AssignableToTypeOf(&time.Time{})).Return(&domain.Order{ID: 10, Status: domain.OrderStatusDelivered}, nil)
		m.orderRepo.EXPECT().ItemsByOrder(ctx, 10).Return(nil, nil)

		_, err := service.UpdateStatus(ctx, 10, dto.UpdateOrderStatusRequestDTO{Status: domain.OrderStatusDelivered})
		assert.NoError(t, err)
	})

	t.Run("Backward transition rejected", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(&domain.Order{ID: 10, Status: domain.OrderStatusDelivered}, nil)

		order, err := service.UpdateStatus(ctx, 10, dto.UpdateOrderStatusRequestDTO{Status: domain.OrderStatusShipped})
		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Delivered order can't be cancelled", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(ctx, 10).Return(&domain.Order{ID: 10, Status: domain.OrderStatusDelivered}, nil)

		_, err := service.UpdateStatus(ctx, 10, dto.UpdateOrderStatusRequestDTO{Status: domain.OrderStatusCancelled})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
