package order

import (
	"fmt"

	orderRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/order"
	"github.com/rightguydaniel/deluxconex-BE/models"
)

// OrderService exposes order history and fulfilment updates. Orders are
// created by the payment flows, never directly through this service.
type OrderService interface {
	GetOrder(id string) (*models.Order, error)
	GetUserOrders(userID string) ([]models.Order, error)
	GetAllOrders() ([]models.Order, error)
	UpdateStatus(id string, status models.OrderStatus, trackingNumber string) (*models.Order, error)
}

// DefaultOrderService is the production implementation.
type DefaultOrderService struct {
	Repo orderRepo.OrderRepository
}

// GetOrder fetches one order.
func (s *DefaultOrderService) GetOrder(id string) (*models.Order, error) {
	o, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if o == nil {
		return nil, fmt.Errorf("order with id %s not found", id)
	}
	return o, nil
}

// GetUserOrders returns the user's order history, newest first.
func (s *DefaultOrderService) GetUserOrders(userID string) ([]models.Order, error) {
	orders, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// GetAllOrders lists every order. Admin only.
func (s *DefaultOrderService) GetAllOrders() ([]models.Order, error) {
	orders, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order through fulfilment. Admin only.
func (s *DefaultOrderService) UpdateStatus(id string, status models.OrderStatus, trackingNumber string) (*models.Order, error) {
	o, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"status": status}
	if trackingNumber != "" {
		fields["trackingNumber"] = trackingNumber
	}
	if err := s.Repo.SetFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	o.Status = status
	if trackingNumber != "" {
		o.TrackingNumber = trackingNumber
	}
	return o, nil
}
