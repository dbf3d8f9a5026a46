package checkout

import (
	"context"
	"fmt"

	"github.com/rightguydaniel/deluxconex-BE/models"

	"github.com/plutov/paypal/v4"
)

// CreatePayPalOrder opens a PayPal order for the user's current cart and
// returns the approval URL the customer is redirected to.
func (s *DefaultCheckoutService) CreatePayPalOrder(ctx context.Context, userID string) (*PayPalOrderResult, error) {
	in, err := s.loadCheckoutInput(userID)
	if err != nil {
		return nil, err
	}

	units := []paypal.PurchaseUnitRequest{
		{
			Amount: &paypal.PurchaseUnitAmount{
				Currency: "USD",
				Value:    fmt.Sprintf("%.2f", in.cart.Total),
			},
			CustomID: userID,
		},
	}

	order, err := s.PayPal.CreateOrder(ctx, paypal.OrderIntentCapture, units, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create paypal order: %w", err)
	}

	result := &PayPalOrderResult{OrderID: order.ID}
	for _, link := range order.Links {
		if link.Rel == "approve" {
			result.ApproveURL = link.Href
			break
		}
	}
	return result, nil
}

// CapturePayPalOrder captures an approved PayPal order and freezes the
// cart into a paid order.
func (s *DefaultCheckoutService) CapturePayPalOrder(ctx context.Context, userID, paypalOrderID string) (*models.Order, error) {
	capture, err := s.PayPal.CaptureOrder(ctx, paypalOrderID, paypal.CaptureOrderRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to capture paypal order: %w", err)
	}
	if capture.Status != "COMPLETED" {
		return nil, fmt.Errorf("payment not completed, status is %s", capture.Status)
	}

	in, err := s.loadCheckoutInput(userID)
	if err != nil {
		return nil, err
	}

	return s.finalizeOrder(in, "paypal", "paypal", capture.ID)
}
