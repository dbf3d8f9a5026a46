package productRepo

import "github.com/rightguydaniel/deluxconex-BE/models"

// ProductRepository defines persistence operations for products.
// GetByID returns (nil, nil) when no matching document exists.
type ProductRepository interface {
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	GetByID(id string) (*models.Product, error)
	GetAll() ([]models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	Search(query string) ([]models.Product, error)
}
