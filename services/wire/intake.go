package wire

import (
	"context"
	"fmt"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestPayment starts the wire-transfer workflow for the user's current
// cart. It creates an Order, an Invoice and a PaymentRequest in one
// transaction. The cart is left untouched: nothing is paid yet, so
// clearing it here would lose the customer's items if the transfer never
// arrives.
func (s *DefaultWireService) RequestPayment(ctx context.Context, userID string) error {
	cart, err := s.Carts.GetByUserID(userID)
	if err != nil {
		return PersistenceError{Op: "failed to load cart", Err: err}
	}
	if cart.Empty() {
		return ErrEmptyCart
	}

	address, err := s.Addresses.GetDefaultByUserID(userID)
	if err != nil {
		return PersistenceError{Op: "failed to load default address", Err: err}
	}
	if address == nil {
		return ErrAddressRequired
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return PersistenceError{Op: "failed to load user", Err: err}
	}

	orderID := uuid.New().String()
	invoiceID := uuid.New().String()
	now := time.Now()

	order := &models.Order{
		ID:              orderID,
		UserID:          userID,
		Items:           models.OrderItemsFromCart(cart.Items),
		Subtotal:        cart.Subtotal,
		Shipping:        cart.Shipping,
		Tax:             cart.Tax,
		Total:           cart.Total,
		Status:          models.OrderPending,
		ShippingAddress: address.Snapshot(),
		PaymentMethod:   "wire",
		PaymentStatus:   models.PaymentPending,
	}

	invoice := &models.Invoice{
		ID:            invoiceID,
		OrderID:       orderID,
		UserID:        userID,
		InvoiceNumber: generateInvoiceNumber(now),
		IssueDate:     now,
		DueDate:       now.Add(30 * 24 * time.Hour),
		Status:        models.InvoiceDraft,
		Subtotal:      cart.Subtotal,
		Tax:           cart.Tax,
		Shipping:      cart.Shipping,
		Discount:      0,
		Total:         cart.Total,
		Notes:         "Wire transfer requested",
		Terms:         "Payment due within 30 days or as specified.",
	}

	request := &models.PaymentRequest{
		ID:        uuid.New().String(),
		UserID:    userID,
		OrderID:   orderID,
		InvoiceID: invoiceID,
		Status:    models.WirePending,
	}

	if err := s.Requests.CreateRequestBundle(ctx, order, invoice, request); err != nil {
		return PersistenceError{Op: "failed to create wire payment request", Err: err}
	}

	// Notification is best-effort; the transaction already committed.
	if user != nil && user.Email != "" {
		subject := "Wire transfer request received"
		html := requestReceivedEmail(s.BaseURL, displayName(user), s.AdminEmail)
		if err := s.Mailer.Send(user.Email, subject, "", html); err != nil {
			utils.GetLogger().Warn("RequestPayment: notification failed",
				zap.String("userId", userID), zap.Error(err))
		}
	}

	return nil
}

func displayName(u *models.User) string {
	if u == nil {
		return ""
	}
	if u.FullName != "" {
		return u.FullName
	}
	return u.UserName
}

func generateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d", now.UnixMilli())
}
