package addressservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	addressRepo := NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(addressRepo, txManager)
	defer ctrl.Finish()
	return service, addressRepo, txManager
}

func expectTx(txManager *pg.MockTXManager, ctx context.Context) {
	txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	input := dto.AddressRequestDTO{
		Name: "Ana", Phone: "999888777", Region: "Lima", City: "Lima", Address: "Av. Brasil 123",
	}

	t.Run("First address becomes default", func(t *testing.T) {
		service, addressRepo, txManager := NewMock(t)
		expectTx(txManager, ctx)
		addressRepo.EXPECT().CountByUser(ctx, 1).Return(0, nil)
		addressRepo.EXPECT().ClearDefaults(ctx, 1).Return(nil)
		addressRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, a *domain.ShippingAddress) (*domain.ShippingAddress, error) {
			assert.True(t, a.IsDefault)
			a.ID = 5
			return a, nil
		})

		created, err := service.Create(ctx, 1, input)
		assert.NoError(t, err)
		assert.True(t, created.IsDefault)
	})

	t.Run("Later address keeps submitted flag", func(t *testing.T) {
		service, addressRepo, txManager := NewMock(t)
		expectTx(txManager, ctx)
		addressRepo.EXPECT().CountByUser(ctx, 1).Return(2, nil)
		addressRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, a *domain.ShippingAddress) (*domain.ShippingAddress, error) {
			assert.False(t, a.IsDefault)
			return a, nil
		})

		_, err := service.Create(ctx, 1, input)
		assert.NoError(t, err)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		service, _, _ := NewMock(t)
		created, err := service.Create(ctx, 1, dto.AddressRequestDTO{Name: "Ana"})
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Last address can't be deleted", func(t *testing.T) {
		service, addressRepo, _ := NewMock(t)
		addressRepo.EXPECT().FindByID(ctx, 1, 5).Return(&domain.ShippingAddress{ID: 5, UserID: 1, IsDefault: true}, nil)
		addressRepo.EXPECT().CountByUser(ctx, 1).Return(1, nil)

		err := service.Delete(ctx, 1, 5)
		assert.ErrorIs(t, err, ErrLastAddress)
	})

	t.Run("Deleting the default promotes the oldest remaining", func(t *testing.T) {
		service, addressRepo, txManager := NewMock(t)
		addressRepo.EXPECT().FindByID(ctx, 1, 5).Return(&domain.ShippingAddress{ID: 5, UserID: 1, IsDefault: true}, nil)
		addressRepo.EXPECT().CountByUser(ctx, 1).Return(3, nil)
		expectTx(txManager, ctx)
		addressRepo.EXPECT().Delete(ctx, 1, 5).Return(nil)
		addressRepo.EXPECT().FirstByUser(ctx, 1).Return(&domain.ShippingAddress{ID: 2, UserID: 1}, nil)
		addressRepo.EXPECT().SetDefault(ctx, 1, 2).Return(nil)

		err := service.Delete(ctx, 1, 5)
		assert.NoError(t, err)
	})

	t.Run("Deleting a non-default leaves the default alone", func(t *testing.T) {
		service, addressRepo, txManager := NewMock(t)
		addressRepo.EXPECT().FindByID(ctx, 1, 6).Return(&domain.ShippingAddress{ID: 6, UserID: 1, IsDefault: false}, nil)
		addressRepo.EXPECT().CountByUser(ctx, 1).Return(3, nil)
		expectTx(txManager, ctx)
		addressRepo.EXPECT().Delete(ctx, 1, 6).Return(nil)

		err := service.Delete(ctx, 1, 6)
		assert.NoError(t, err)
	})

	t.Run("Unknown address", func(t *testing.T) {
		service, addressRepo, _ := NewMock(t)
		addressRepo.EXPECT().FindByID(ctx, 1, 99).Return(nil, nil)

		err := service.Delete(ctx, 1, 99)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
}

func TestSetDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("Clears previous defaults before setting the new one", func(t *testing.T) {
		service, addressRepo, txManager := NewMock(t)
		addressRepo.EXPECT().FindByID(ctx, 1, 6).Return(&domain.ShippingAddress{ID: 6, UserID: 1}, nil)
		expectTx(txManager, ctx)
		gomock.InOrder(
			addressRepo.EXPECT().ClearDefaults(ctx, 1).Return(nil),
			addressRepo.EXPECT().SetDefault(ctx, 1, 6).Return(nil),
		)

		err := service.SetDefault(ctx, 1, 6)
		assert.NoError(t, err)
	})

	t.Run("Unknown address", func(t *testing.T) {
		service, addressRepo, _ := NewMock(t)
		addressRepo.EXPECT().FindByID(ctx, 1, 99).Return(nil, nil)

		err := service.SetDefault(ctx, 1, 99)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
}
