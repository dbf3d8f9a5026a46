package catalog

import (
	"context"
	"fmt"

	productRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/product"
	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/services/storage"

	"github.com/google/uuid"
)

// CatalogService manages the product catalog.
type CatalogService interface {
	CreateProduct(ctx context.Context, product *models.Product, imagePaths []string) (*models.Product, error)
	UpdateProduct(product *models.Product) (*models.Product, error)
	DeleteProduct(id string) error
	GetProduct(id string) (*models.Product, error)
	ListProducts(category string) ([]models.Product, error)
	SearchProducts(query string) ([]models.Product, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo    productRepo.ProductRepository
	Storage storage.StorageService
}

// CreateProduct stores a new catalog entry, uploading any provided image
// files first so the stored record carries their public URLs.
func (s *DefaultCatalogService) CreateProduct(ctx context.Context, product *models.Product, imagePaths []string) (*models.Product, error) {
	if product.Name == "" || product.Price <= 0 {
		return nil, fmt.Errorf("product name and price are required")
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	for _, path := range imagePaths {
		url, err := s.Storage.UploadFile(ctx, path, "products")
		if err != nil {
			return nil, fmt.Errorf("failed to upload product image: %w", err)
		}
		product.Images = append(product.Images, url)
	}

	if err := s.Repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// UpdateProduct replaces an existing catalog entry.
func (s *DefaultCatalogService) UpdateProduct(product *models.Product) (*models.Product, error) {
	if product.ID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if err := s.Repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteProduct removes a catalog entry.
func (s *DefaultCatalogService) DeleteProduct(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// GetProduct fetches one catalog entry.
func (s *DefaultCatalogService) GetProduct(id string) (*models.Product, error) {
	product, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product with id %s not found", id)
	}
	return product, nil
}

// ListProducts returns the catalog, optionally filtered by category.
func (s *DefaultCatalogService) ListProducts(category string) ([]models.Product, error) {
	var (
		products []models.Product
		err      error
	)
	if category != "" {
		products, err = s.Repo.GetByCategory(category)
	} else {
		products, err = s.Repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// SearchProducts runs a text search over the catalog.
func (s *DefaultCatalogService) SearchProducts(query string) ([]models.Product, error) {
	if query == "" {
		return s.Repo.GetAll()
	}
	products, err := s.Repo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}
