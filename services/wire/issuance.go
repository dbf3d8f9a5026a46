package wire

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"go.uber.org/zap"
)

const defaultValidityDays = 2

// ListRequests returns every wire payment request, newest first.
func (s *DefaultWireService) ListRequests() ([]models.PaymentRequest, error) {
	requests, err := s.Requests.GetAll()
	if err != nil {
		return nil, PersistenceError{Op: "failed to fetch payment requests", Err: err}
	}
	return requests, nil
}

// IssueDetails attaches bank details to a payment request and builds the
// customer-facing link. The token embeds everything the customer page
// needs, so the link stays usable even if the stored row is later
// mutated. daysValid defaults to 2 when zero or negative.
func (s *DefaultWireService) IssueDetails(ctx context.Context, requestID string, details BankDetails, daysValid int) (*IssueResult, error) {
	request, err := s.Requests.GetByID(requestID)
	if err != nil {
		return nil, PersistenceError{Op: "failed to load payment request", Err: err}
	}
	if request == nil {
		return nil, NotFoundError{Entity: "payment request", ID: requestID}
	}

	invoice, err := s.Invoices.GetByID(request.InvoiceID)
	if err != nil {
		return nil, PersistenceError{Op: "failed to load invoice", Err: err}
	}
	user, err := s.Users.GetByID(request.UserID)
	if err != nil {
		return nil, PersistenceError{Op: "failed to load user", Err: err}
	}
	if invoice == nil {
		return nil, NotFoundError{Entity: "invoice", ID: request.InvoiceID}
	}
	if user == nil {
		return nil, NotFoundError{Entity: "user", ID: request.UserID}
	}

	days := daysValid
	if days <= 0 {
		days = defaultValidityDays
	}
	expiresAt := time.Now().Add(time.Duration(days) * 24 * time.Hour)

	payload := TokenPayload{
		RequestID:     request.ID,
		InvoiceID:     invoice.ID,
		OrderID:       request.OrderID,
		UserID:        user.ID,
		AccountName:   details.AccountName,
		AccountNumber: details.AccountNumber,
		RoutingNumber: details.RoutingNumber,
		BankName:      details.BankName,
		Total:         invoice.Total,
		Currency:      "USD",
		ExpiresAt:     expiresAt.Format(time.RFC3339),
	}

	token, err := s.Codec.Encode(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment token: %w", err)
	}
	link := fmt.Sprintf("%s/payment/wire?token=%s", s.BaseURL, url.QueryEscape(token))

	if err := s.Requests.SetFields(request.ID, map[string]interface{}{
		"status":        models.WireIssued,
		"accountName":   details.AccountName,
		"accountNumber": details.AccountNumber,
		"routingNumber": details.RoutingNumber,
		"bankName":      details.BankName,
		"expiresAt":     expiresAt,
		"linkToken":     token,
	}); err != nil {
		return nil, PersistenceError{Op: "failed to update payment request", Err: err}
	}

	if user.Email != "" {
		subject := "Wire transfer payment instructions"
		html := instructionsEmail(s.BaseURL, displayName(user), link, expiresAt, s.AdminEmail)
		if err := s.Mailer.Send(user.Email, subject, "", html); err != nil {
			utils.GetLogger().Warn("IssueDetails: notification failed",
				zap.String("requestId", request.ID), zap.Error(err))
		}
	}

	return &IssueResult{Link: link, ExpiresAt: expiresAt}, nil
}

// UpdateRequestStatus records the administrative verdict on a payment
// request. The workflow itself never reaches verified, rejected or
// expired; an operator does, after checking the bank statement.
func (s *DefaultWireService) UpdateRequestStatus(requestID string, status models.WirePaymentStatus, notes string) (*models.PaymentRequest, error) {
	switch status {
	case models.WireVerified, models.WireRejected, models.WireExpired:
	default:
		return nil, fmt.Errorf("status %q cannot be set manually", status)
	}

	request, err := s.Requests.GetByID(requestID)
	if err != nil {
		return nil, PersistenceError{Op: "failed to load payment request", Err: err}
	}
	if request == nil {
		return nil, NotFoundError{Entity: "payment request", ID: requestID}
	}

	fields := map[string]interface{}{"status": status}
	if notes != "" {
		fields["notes"] = notes
	}
	if err := s.Requests.SetFields(request.ID, fields); err != nil {
		return nil, PersistenceError{Op: "failed to update payment request", Err: err}
	}

	// On verification the linked invoice and order become paid. Rejection
	// and expiry leave them untouched for a retry through a fresh link.
	if status == models.WireVerified {
		now := time.Now()
		if err := s.Invoices.SetFields(request.InvoiceID, map[string]interface{}{
			"status": models.InvoicePaid,
			"paidAt": now,
		}); err != nil {
			utils.GetLogger().Error("UpdateRequestStatus: invoice update failed",
				zap.String("invoiceId", request.InvoiceID), zap.Error(err))
		}
		if err := s.Orders.SetFields(request.OrderID, map[string]interface{}{
			"paymentStatus": models.PaymentPaid,
			"status":        models.OrderProcessing,
		}); err != nil {
			utils.GetLogger().Error("UpdateRequestStatus: order update failed",
				zap.String("orderId", request.OrderID), zap.Error(err))
		}
	}

	request.Status = status
	if notes != "" {
		request.Notes = notes
	}
	return request, nil
}
