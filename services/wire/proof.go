package wire

import (
	"context"

	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"go.uber.org/zap"
)

// SubmitProof records a customer's proof of payment. The token alone
// authorizes the call. proofFilePath may be empty: the state still moves
// to proof_submitted so a customer who paid without keeping a receipt is
// not stuck, and proofUrl keeps its previous value. Nothing here marks
// anything paid; that verdict belongs to a human.
func (s *DefaultWireService) SubmitProof(ctx context.Context, token, proofFilePath string) error {
	payload, err := s.decodeActivePayload(token)
	if err != nil {
		return err
	}

	var proofURL string
	if proofFilePath != "" {
		proofURL, err = s.Storage.UploadFile(ctx, proofFilePath, "uploads/payments")
		if err != nil {
			return PersistenceError{Op: "failed to store payment proof", Err: err}
		}
	}

	request, err := s.Requests.GetByID(payload.RequestID)
	if err != nil {
		return PersistenceError{Op: "failed to load payment request", Err: err}
	}
	if request == nil {
		return NotFoundError{Entity: "payment request", ID: payload.RequestID}
	}

	fields := map[string]interface{}{"status": models.WireProofSubmitted}
	if proofURL != "" {
		fields["proofUrl"] = proofURL
	}
	if err := s.Requests.SetFields(request.ID, fields); err != nil {
		return PersistenceError{Op: "failed to update payment request", Err: err}
	}

	// The invoice goes out and the order is pinned at pending until an
	// operator verifies the transfer. Both updates are best-effort; the
	// request row is already in proof_submitted.
	if err := s.Invoices.SetFields(payload.InvoiceID, map[string]interface{}{
		"status": models.InvoiceSent,
	}); err != nil {
		utils.GetLogger().Warn("SubmitProof: invoice update failed",
			zap.String("invoiceId", payload.InvoiceID), zap.Error(err))
	}
	if err := s.Orders.SetFields(payload.OrderID, map[string]interface{}{
		"paymentStatus": models.PaymentPending,
		"status":        models.OrderPending,
	}); err != nil {
		utils.GetLogger().Warn("SubmitProof: order update failed",
			zap.String("orderId", payload.OrderID), zap.Error(err))
	}

	user, err := s.Users.GetByID(payload.UserID)
	if err != nil {
		utils.GetLogger().Warn("SubmitProof: user lookup failed",
			zap.String("userId", payload.UserID), zap.Error(err))
	}
	if user != nil && user.Email != "" {
		subject := "Wire transfer payment proof received"
		html := proofReceivedEmail(s.BaseURL, displayName(user), s.AdminEmail)
		if err := s.Mailer.Send(user.Email, subject, "", html); err != nil {
			utils.GetLogger().Warn("SubmitProof: customer notification failed",
				zap.String("userId", payload.UserID), zap.Error(err))
		}
	}

	adminSubject := "Wire transfer payment submitted"
	adminHTML := proofSubmittedAdminEmail(payload.OrderID, payload.InvoiceID, payload.UserID, proofURL)
	if err := s.Mailer.Send(s.AdminEmail, adminSubject, "", adminHTML); err != nil {
		utils.GetLogger().Warn("SubmitProof: admin notification failed", zap.Error(err))
	}

	return nil
}
