package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	addressRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/address"
	cartRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/cart"
	invoiceRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/invoice"
	orderRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/order"
	userRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/user"
	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/services/notification"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/google/uuid"
	"github.com/plutov/paypal/v4"
	"go.uber.org/zap"
)

var (
	// ErrEmptyCart signals a checkout attempt with no cart items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrAddressRequired signals that the user has no default shipping
	// address yet. Handlers treat this as a prompt, not a failure.
	ErrAddressRequired = errors.New("address required")
)

// StripePaymentResult is returned after creating a card payment intent.
type StripePaymentResult struct {
	ClientSecret string `json:"clientSecret"`
	PaymentRef   string `json:"paymentRef"`
}

// PayPalOrderResult is returned after creating a PayPal order.
type PayPalOrderResult struct {
	OrderID    string `json:"orderId"`
	ApproveURL string `json:"approveUrl"`
}

// CheckoutService drives the synchronous card and PayPal payment flows.
// Unlike the wire-transfer flow, these capture payment immediately, so a
// confirmed checkout clears the cart and creates the order already paid.
type CheckoutService interface {
	CreateStripePayment(ctx context.Context, userID string) (*StripePaymentResult, error)
	ConfirmStripePayment(ctx context.Context, userID, paymentIntentID string) (*models.Order, error)
	HandleStripeWebhook(ctx context.Context, payload []byte, signature string) error
	CreatePayPalOrder(ctx context.Context, userID string) (*PayPalOrderResult, error)
	CapturePayPalOrder(ctx context.Context, userID, paypalOrderID string) (*models.Order, error)
}

// DefaultCheckoutService is the production implementation.
type DefaultCheckoutService struct {
	Orders    orderRepo.OrderRepository
	Invoices  invoiceRepo.InvoiceRepository
	Users     userRepo.UserRepository
	Carts     cartRepo.CartRepository
	Addresses addressRepo.AddressRepository

	Mailer notification.Mailer
	PayPal *paypal.Client

	StripeWebhookSecret string
}

// checkoutInput is the validated cart and address a payment starts from.
type checkoutInput struct {
	cart    *models.Cart
	address *models.Address
	user    *models.User
}

func (s *DefaultCheckoutService) loadCheckoutInput(userID string) (*checkoutInput, error) {
	cart, err := s.Carts.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart.Empty() {
		return nil, ErrEmptyCart
	}

	address, err := s.Addresses.GetDefaultByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load default address: %w", err)
	}
	if address == nil {
		return nil, ErrAddressRequired
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &checkoutInput{cart: cart, address: address, user: user}, nil
}

// finalizeOrder freezes the cart into a paid order with its invoice,
// clears the cart and sends the confirmation email.
func (s *DefaultCheckoutService) finalizeOrder(in *checkoutInput, method, provider, paymentRef string) (*models.Order, error) {
	now := time.Now()
	orderID := uuid.New().String()

	order := &models.Order{
		ID:              orderID,
		UserID:          in.cart.UserID,
		Items:           models.OrderItemsFromCart(in.cart.Items),
		Subtotal:        in.cart.Subtotal,
		Shipping:        in.cart.Shipping,
		Tax:             in.cart.Tax,
		Total:           in.cart.Total,
		Status:          models.OrderProcessing,
		ShippingAddress: in.address.Snapshot(),
		PaymentMethod:   method,
		PaymentStatus:   models.PaymentPaid,
		PaymentProvider: provider,
		PaymentRef:      paymentRef,
	}
	if err := s.Orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	invoice := &models.Invoice{
		ID:            uuid.New().String(),
		OrderID:       orderID,
		UserID:        in.cart.UserID,
		InvoiceNumber: fmt.Sprintf("INV-%d", now.UnixMilli()),
		IssueDate:     now,
		DueDate:       now,
		Status:        models.InvoicePaid,
		Subtotal:      in.cart.Subtotal,
		Tax:           in.cart.Tax,
		Shipping:      in.cart.Shipping,
		Discount:      0,
		Total:         in.cart.Total,
		PaidAt:        &now,
	}
	if err := s.Invoices.Create(invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	// Payment is captured, so the cart can go.
	if err := s.Carts.DeleteByUserID(in.cart.UserID); err != nil {
		utils.GetLogger().Warn("finalizeOrder: cart cleanup failed",
			zap.String("userId", in.cart.UserID), zap.Error(err))
	}

	if in.user != nil && in.user.Email != "" {
		body := fmt.Sprintf("Hi %s, your payment of %.2f USD was received and order %s is being processed.",
			in.user.FullName, order.Total, order.ID)
		if err := s.Mailer.Send(in.user.Email, "Order confirmed", body, ""); err != nil {
			utils.GetLogger().Warn("finalizeOrder: confirmation email failed",
				zap.String("userId", in.cart.UserID), zap.Error(err))
		}
	}

	return order, nil
}
