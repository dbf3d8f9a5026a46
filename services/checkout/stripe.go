package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/rightguydaniel/deluxconex-BE/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
)

// CreateStripePayment opens a card payment for the user's current cart and
// returns the client secret the storefront needs to collect the card.
// Nothing is persisted yet; the order is created on confirmation.
func (s *DefaultCheckoutService) CreateStripePayment(ctx context.Context, userID string) (*StripePaymentResult, error) {
	in, err := s.loadCheckoutInput(userID)
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toCents(in.cart.Total)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("userId", userID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &StripePaymentResult{
		ClientSecret: intent.ClientSecret,
		PaymentRef:   intent.ID,
	}, nil
}

// ConfirmStripePayment checks the payment intent actually succeeded, then
// freezes the cart into a paid order.
func (s *DefaultCheckoutService) ConfirmStripePayment(ctx context.Context, userID, paymentIntentID string) (*models.Order, error) {
	intent, err := paymentintent.Get(paymentIntentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment intent: %w", err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("payment not completed, status is %s", intent.Status)
	}
	if intent.Metadata["userId"] != userID {
		return nil, fmt.Errorf("payment intent does not belong to this user")
	}

	in, err := s.loadCheckoutInput(userID)
	if err != nil {
		return nil, err
	}

	return s.finalizeOrder(in, "card", "stripe", intent.ID)
}

// HandleStripeWebhook processes asynchronous payment events. It backstops
// the confirm endpoint: if the storefront never called confirm, the
// succeeded event still finalizes the order.
func (s *DefaultCheckoutService) HandleStripeWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.StripeWebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	if event.Type != "payment_intent.succeeded" {
		return nil
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return fmt.Errorf("failed to parse payment intent event: %w", err)
	}

	userID := intent.Metadata["userId"]
	if userID == "" {
		return fmt.Errorf("payment intent %s carries no userId metadata", intent.ID)
	}

	in, err := s.loadCheckoutInput(userID)
	if err != nil {
		// An empty cart means the confirm endpoint already finalized this
		// payment; the event is a duplicate.
		if errors.Is(err, ErrEmptyCart) {
			return nil
		}
		return err
	}

	_, err = s.finalizeOrder(in, "card", "stripe", intent.ID)
	return err
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
