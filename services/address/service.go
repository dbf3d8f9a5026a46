package address

import (
	"fmt"

	addressRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/address"
	"github.com/rightguydaniel/deluxconex-BE/models"

	"github.com/google/uuid"
)

// AddressService manages a user's saved addresses.
type AddressService interface {
	CreateAddress(userID string, addr models.Address) (*models.Address, error)
	UpdateAddress(userID string, addr models.Address) (*models.Address, error)
	GetAddresses(userID string) ([]models.Address, error)
	SetDefaultAddress(userID, addressID string) error
	DeleteAddress(userID, addressID string) error
}

// DefaultAddressService is the production implementation.
type DefaultAddressService struct {
	Repo addressRepo.AddressRepository
}

// CreateAddress saves a new address. The user's first address becomes the
// default automatically.
func (s *DefaultAddressService) CreateAddress(userID string, addr models.Address) (*models.Address, error) {
	if addr.Street == "" || addr.City == "" || addr.Country == "" {
		return nil, fmt.Errorf("street, city and country are required")
	}

	existing, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load addresses: %w", err)
	}

	addr.ID = uuid.New().String()
	addr.UserID = userID
	if len(existing) == 0 {
		addr.IsDefault = true
	}
	if addr.Type == "" {
		addr.Type = models.AddressShipping
	}

	if err := s.Repo.Create(&addr); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	if addr.IsDefault && len(existing) > 0 {
		if err := s.Repo.SetDefault(userID, addr.ID); err != nil {
			return nil, fmt.Errorf("failed to set default address: %w", err)
		}
	}
	return &addr, nil
}

// UpdateAddress applies changes to an owned address.
func (s *DefaultAddressService) UpdateAddress(userID string, addr models.Address) (*models.Address, error) {
	current, err := s.Repo.GetByID(addr.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load address: %w", err)
	}
	if current == nil || current.UserID != userID {
		return nil, fmt.Errorf("address with id %s not found", addr.ID)
	}

	addr.UserID = userID
	addr.IsDefault = current.IsDefault
	if err := s.Repo.Update(&addr); err != nil {
		return nil, fmt.Errorf("failed to update address: %w", err)
	}
	return &addr, nil
}

// GetAddresses lists the user's saved addresses.
func (s *DefaultAddressService) GetAddresses(userID string) ([]models.Address, error) {
	addresses, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch addresses: %w", err)
	}
	return addresses, nil
}

// SetDefaultAddress marks one address as the default shipping target.
func (s *DefaultAddressService) SetDefaultAddress(userID, addressID string) error {
	addr, err := s.Repo.GetByID(addressID)
	if err != nil {
		return fmt.Errorf("failed to load address: %w", err)
	}
	if addr == nil || addr.UserID != userID {
		return fmt.Errorf("address with id %s not found", addressID)
	}
	if err := s.Repo.SetDefault(userID, addressID); err != nil {
		return fmt.Errorf("failed to set default address: %w", err)
	}
	return nil
}

// DeleteAddress removes an owned address.
func (s *DefaultAddressService) DeleteAddress(userID, addressID string) error {
	if err := s.Repo.Delete(userID, addressID); err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}
