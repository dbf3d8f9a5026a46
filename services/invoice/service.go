package invoice

import (
	"fmt"
	"time"

	invoiceRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/invoice"
	userRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/user"
	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/services/notification"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"go.uber.org/zap"
)

// InvoiceService exposes invoice history and billing status updates.
// Invoices are created by the payment flows alongside their orders.
type InvoiceService interface {
	GetInvoice(id string) (*models.Invoice, error)
	GetUserInvoices(userID string) ([]models.Invoice, error)
	GetAllInvoices() ([]models.Invoice, error)
	UpdateStatus(id string, status models.InvoiceStatus) (*models.Invoice, error)
	SendInvoice(id string) (*models.Invoice, error)
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo   invoiceRepo.InvoiceRepository
	Users  userRepo.UserRepository
	Mailer notification.Mailer
}

// GetInvoice fetches one invoice.
func (s *DefaultInvoiceService) GetInvoice(id string) (*models.Invoice, error) {
	inv, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice: %w", err)
	}
	if inv == nil {
		return nil, fmt.Errorf("invoice with id %s not found", id)
	}
	return inv, nil
}

// GetUserInvoices returns the user's invoices, most recent first.
func (s *DefaultInvoiceService) GetUserInvoices(userID string) ([]models.Invoice, error) {
	invoices, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	return invoices, nil
}

// GetAllInvoices lists every invoice. Admin only.
func (s *DefaultInvoiceService) GetAllInvoices() ([]models.Invoice, error) {
	invoices, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	return invoices, nil
}

// UpdateStatus moves an invoice through its billing lifecycle. Marking an
// invoice paid also stamps paidAt.
func (s *DefaultInvoiceService) UpdateStatus(id string, status models.InvoiceStatus) (*models.Invoice, error) {
	inv, err := s.GetInvoice(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"status": status}
	if status == models.InvoicePaid {
		now := time.Now()
		fields["paidAt"] = now
		inv.PaidAt = &now
	}
	if err := s.Repo.SetFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	inv.Status = status
	return inv, nil
}

// SendInvoice emails the invoice summary to its customer and moves it to
// sent. The email is best-effort; the status change is not.
func (s *DefaultInvoiceService) SendInvoice(id string) (*models.Invoice, error) {
	inv, err := s.GetInvoice(id)
	if err != nil {
		return nil, err
	}

	u, err := s.Users.GetByID(inv.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.Repo.SetFields(id, map[string]interface{}{"status": models.InvoiceSent}); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	inv.Status = models.InvoiceSent

	if u != nil && u.Email != "" {
		subject := fmt.Sprintf("Invoice %s from DeluxConex", inv.InvoiceNumber)
		body := fmt.Sprintf(
			"Hi %s,\n\nInvoice %s for $%.2f is due on %s.\n\nNotes: %s\n%s",
			u.FullName, inv.InvoiceNumber, inv.Total,
			inv.DueDate.Format("January 2, 2006"), inv.Notes, inv.Terms)
		if err := s.Mailer.Send(u.Email, subject, body, ""); err != nil {
			utils.GetLogger().Warn("SendInvoice: email failed",
				zap.String("invoiceId", id), zap.Error(err))
		}
	}

	return inv, nil
}
