package orderRepo

import "github.com/rightguydaniel/deluxconex-BE/models"

// OrderRepository defines persistence operations for orders.
// GetByID returns (nil, nil) when no matching document exists.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	SetFields(id string, fields map[string]interface{}) error
}
