package cartRepo

import "github.com/rightguydaniel/deluxconex-BE/models"

// CartRepository defines persistence operations for shopping carts.
// GetByUserID returns (nil, nil) when the user has no cart yet.
type CartRepository interface {
	GetByUserID(userID string) (*models.Cart, error)
	Save(cart *models.Cart) error
	DeleteByUserID(userID string) error
}
