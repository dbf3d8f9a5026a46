package addressRepo

import "github.com/rightguydaniel/deluxconex-BE/models"

// AddressRepository defines persistence operations for saved addresses.
// Lookup methods return (nil, nil) when no matching document exists.
type AddressRepository interface {
	Create(address *models.Address) error
	Update(address *models.Address) error
	GetByID(id string) (*models.Address, error)
	GetByUserID(userID string) ([]models.Address, error)
	GetDefaultByUserID(userID string) (*models.Address, error)
	SetDefault(userID, addressID string) error
	Delete(userID, addressID string) error
}
