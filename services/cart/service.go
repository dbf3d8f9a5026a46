package cart

import (
	"fmt"
	"time"

	cartRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/cart"
	"github.com/rightguydaniel/deluxconex-BE/models"

	"github.com/google/uuid"
)

const taxRate = 0.01

// CartService manages the per-user shopping cart.
type CartService interface {
	GetCart(userID string) (*models.Cart, error)
	AddItem(userID string, item models.CartItem) (*models.Cart, error)
	UpdateQuantity(userID, productID string, quantity int) (*models.Cart, error)
	RemoveItem(userID, productID string) (*models.Cart, error)
	ClearCart(userID string) error
}

// DefaultCartService is the production implementation.
type DefaultCartService struct {
	Repo cartRepo.CartRepository
}

// GetCart returns the user's cart, creating an empty one in memory if none
// is stored yet.
func (s *DefaultCartService) GetCart(userID string) (*models.Cart, error) {
	cart, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart == nil {
		cart = &models.Cart{
			ID:     uuid.New().String(),
			UserID: userID,
			Items:  []models.CartItem{},
		}
	}
	return cart, nil
}

// AddItem appends a configured product line, merging quantity when the same
// product is already present, then recomputes totals.
func (s *DefaultCartService) AddItem(userID string, item models.CartItem) (*models.Cart, error) {
	if item.ProductID == "" || item.Quantity <= 0 || item.ItemPrice <= 0 {
		return nil, fmt.Errorf("product, quantity and price are required")
	}
	item.TotalPrice = item.ItemPrice * float64(item.Quantity)

	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i, existing := range cart.Items {
		if existing.ProductID == item.ProductID {
			qty := existing.Quantity + item.Quantity
			cart.Items[i].Quantity = qty
			cart.Items[i].TotalPrice = existing.ItemPrice * float64(qty)
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	return s.save(cart)
}

// UpdateQuantity sets the quantity of one line. Zero removes the line.
func (s *DefaultCartService) UpdateQuantity(userID, productID string, quantity int) (*models.Cart, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if quantity == 0 {
		return s.RemoveItem(userID, productID)
	}

	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i, existing := range cart.Items {
		if existing.ProductID == productID {
			cart.Items[i].Quantity = quantity
			cart.Items[i].TotalPrice = existing.ItemPrice * float64(quantity)
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("item %s not in cart", productID)
	}

	return s.save(cart)
}

// RemoveItem drops one line from the cart.
func (s *DefaultCartService) RemoveItem(userID, productID string) (*models.Cart, error) {
	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	for _, existing := range cart.Items {
		if existing.ProductID != productID {
			items = append(items, existing)
		}
	}
	cart.Items = items

	return s.save(cart)
}

// ClearCart deletes the user's stored cart entirely.
func (s *DefaultCartService) ClearCart(userID string) error {
	if err := s.Repo.DeleteByUserID(userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *DefaultCartService) save(cart *models.Cart) (*models.Cart, error) {
	Recalculate(cart)
	cart.UpdatedAt = time.Now()
	if err := s.Repo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

// Recalculate recomputes the cart totals from its lines: subtotal is the
// sum of line totals, shipping the sum of selected delivery prices, tax a
// flat 1% of subtotal.
func Recalculate(cart *models.Cart) {
	var subtotal, shipping float64
	for _, item := range cart.Items {
		subtotal += item.TotalPrice
		if item.SelectedDelivery != nil {
			shipping += item.SelectedDelivery.Price
		}
	}
	cart.Subtotal = subtotal
	cart.Shipping = shipping
	cart.Tax = subtotal * taxRate
	cart.Total = subtotal + shipping + cart.Tax
}
