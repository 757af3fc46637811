package addressservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/pg"
)

var (
	ErrAddressNotFound = errors.New("address not found")
	ErrLastAddress     = errors.New("can't delete the only address")
	ErrInvalidAddress  = errors.New("invalid address data")
)

type Repo interface {
	ListByUser(ctx context.Context, userID int) ([]domain.ShippingAddress, error)
	FindByID(ctx context.Context, userID, addressID int) (*domain.ShippingAddress, error)
	Create(ctx context.Context, a *domain.ShippingAddress) (*domain.ShippingAddress, error)
	Update(ctx context.Context, a *domain.ShippingAddress) (*domain.ShippingAddress, error)
	Delete(ctx context.Context, userID, addressID int) error
	CountByUser(ctx context.Context, userID int) (int, error)
	ClearDefaults(ctx context.Context, userID int) error
	SetDefault(ctx context.Context, userID, addressID int) error
	FirstByUser(ctx context.Context, userID int) (*domain.ShippingAddress, error)
}

type Service struct {
	addressRepo Repo
	txManager   pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{addressRepo: repo, txManager: txManager}
}

func (s *Service) List(ctx context.Context, userID int) ([]dto.AddressDTO, error) {
	addresses, err := s.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddressDTO, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, toDTO(a))
	}
	return out, nil
}

// Create stores a new address. The user's first address becomes the default
// regardless of the submitted flag.
func (s *Service) Create(ctx context.Context, userID int, input dto.AddressRequestDTO) (*dto.AddressDTO, error) {
	if input.Name == "" || input.Phone == "" || input.Region == "" || input.City == "" || input.Address == "" {
		return nil, ErrInvalidAddress
	}

	var created *domain.ShippingAddress
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		count, err := s.addressRepo.CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		isDefault := input.IsDefault || count == 0
		if isDefault {
			if err := s.addressRepo.ClearDefaults(ctx, userID); err != nil {
				return err
			}
		}
		created, err = s.addressRepo.Create(ctx, &domain.ShippingAddress{
			UserID:    userID,
			Name:      input.Name,
			Phone:     input.Phone,
			Region:    input.Region,
			City:      input.City,
			Address:   input.Address,
			Reference: input.Reference,
			IsDefault: isDefault,
		})
		return err
	})
	if err != nil {
		zap.L().Error("can't create address", zap.Error(err))
		return nil, err
	}
	result := toDTO(*created)
	return &result, nil
}

func (s *Service) Update(ctx context.Context, userID, addressID int, input dto.AddressRequestDTO) (*dto.AddressDTO, error) {
	existing, err := s.addressRepo.FindByID(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrAddressNotFound
	}

	var updated *domain.ShippingAddress
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if input.IsDefault && !existing.IsDefault {
			if err := s.addressRepo.ClearDefaults(ctx, userID); err != nil {
				return err
			}
		}
		updated, err = s.addressRepo.Update(ctx, &domain.ShippingAddress{
			ID:        addressID,
			UserID:    userID,
			Name:      input.Name,
			Phone:     input.Phone,
			Region:    input.Region,
			City:      input.City,
			Address:   input.Address,
			Reference: input.Reference,
			IsDefault: input.IsDefault || existing.IsDefault,
		})
		return err
	})
	if err != nil {
		zap.L().Error("can't update address", zap.Error(err))
		return nil, err
	}
	result := toDTO(*updated)
	return &result, nil
}

// Delete removes an address; deleting the default promotes the oldest
// remaining address. The user's last address can't be deleted.
func (s *Service) Delete(ctx context.Context, userID, addressID int) error {
	existing, err := s.addressRepo.FindByID(ctx, userID, addressID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAddressNotFound
	}
	count, err := s.addressRepo.CountByUser(ctx, userID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastAddress
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.addressRepo.Delete(ctx, userID, addressID); err != nil {
			return err
		}
		if !existing.IsDefault {
			return nil
		}
		oldest, err := s.addressRepo.FirstByUser(ctx, userID)
		if err != nil {
			return err
		}
		if oldest == nil {
			return nil
		}
		return s.addressRepo.SetDefault(ctx, userID, oldest.ID)
	})
}

func (s *Service) SetDefault(ctx context.Context, userID, addressID int) error {
	existing, err := s.addressRepo.FindByID(ctx, userID, addressID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAddressNotFound
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.addressRepo.ClearDefaults(ctx, userID); err != nil {
			return err
		}
		return s.addressRepo.SetDefault(ctx, userID, addressID)
	})
}

func toDTO(a domain.ShippingAddress) dto.AddressDTO {
	return dto.AddressDTO{
		ID:        a.ID,
		Name:      a.Name,
		Phone:     a.Phone,
		Region:    a.Region,
		City:      a.City,
		Address:   a.Address,
		Reference: a.Reference,
		IsDefault: a.IsDefault,
	}
}
