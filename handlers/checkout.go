package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/rightguydaniel/deluxconex-BE/services/checkout"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler exposes the synchronous card and PayPal payment flows.
// All endpoints require auth.
type CheckoutHandler struct {
	Service checkout.CheckoutService
}

func NewCheckoutHandler(svc checkout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Service: svc}
}

// CreateStripePayment handles POST /checkout/stripe.
func (h *CheckoutHandler) CreateStripePayment(c *gin.Context) {
	result, err := h.Service.CreateStripePayment(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondCheckoutError(c, err, "Failed to start card payment")
		return
	}
	utils.Respond(c, http.StatusOK, "Payment started", result, "")
}

// ConfirmStripePayment handles POST /checkout/stripe/confirm.
func (h *CheckoutHandler) ConfirmStripePayment(c *gin.Context) {
	var req struct {
		PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	order, err := h.Service.ConfirmStripePayment(c.Request.Context(), currentUserID(c), req.PaymentIntentID)
	if err != nil {
		h.respondCheckoutError(c, err, "Failed to confirm card payment")
		return
	}
	utils.Respond(c, http.StatusOK, "Payment confirmed", order, "")
}

// StripeWebhook handles POST /checkout/stripe/webhook. Public; the
// Stripe-Signature header is the authentication.
func (h *CheckoutHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 65536))
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, "Failed to read webhook body", nil, err.Error())
		return
	}

	if err := h.Service.HandleStripeWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		utils.GetLogger().Error("StripeWebhook failed", zap.Error(err))
		utils.Respond(c, http.StatusBadRequest, "Webhook rejected", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Webhook processed", nil, "")
}

// CreatePayPalOrder handles POST /checkout/paypal.
func (h *CheckoutHandler) CreatePayPalOrder(c *gin.Context) {
	result, err := h.Service.CreatePayPalOrder(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondCheckoutError(c, err, "Failed to start PayPal payment")
		return
	}
	utils.Respond(c, http.StatusOK, "PayPal order created", result, "")
}

// CapturePayPalOrder handles POST /checkout/paypal/capture.
func (h *CheckoutHandler) CapturePayPalOrder(c *gin.Context) {
	var req struct {
		OrderID string `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	order, err := h.Service.CapturePayPalOrder(c.Request.Context(), currentUserID(c), req.OrderID)
	if err != nil {
		h.respondCheckoutError(c, err, "Failed to capture PayPal payment")
		return
	}
	utils.Respond(c, http.StatusOK, "Payment confirmed", order, "")
}

// CancelPayPalOrder handles POST /checkout/paypal/cancel. Nothing is
// persisted before capture, so cancelling only acknowledges; the cart is
// untouched and the customer can retry.
func (h *CheckoutHandler) CancelPayPalOrder(c *gin.Context) {
	utils.Respond(c, http.StatusOK, "Payment cancelled", nil, "")
}

func (h *CheckoutHandler) respondCheckoutError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		utils.Respond(c, http.StatusBadRequest, "Cart is empty", nil, "")
	case errors.Is(err, checkout.ErrAddressRequired):
		utils.Respond(c, http.StatusOK, "address required", nil, "")
	default:
		utils.GetLogger().Error(fallbackMsg, zap.Error(err))
		utils.Respond(c, http.StatusInternalServerError, fallbackMsg, nil, err.Error())
	}
}
