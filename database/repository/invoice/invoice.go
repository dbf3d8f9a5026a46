package invoiceRepo

import "github.com/rightguydaniel/deluxconex-BE/models"

// InvoiceRepository defines persistence operations for invoices.
// GetByID returns (nil, nil) when no matching document exists.
type InvoiceRepository interface {
	Create(invoice *models.Invoice) error
	GetByID(id string) (*models.Invoice, error)
	GetByUserID(userID string) ([]models.Invoice, error)
	GetAll() ([]models.Invoice, error)
	SetFields(id string, fields map[string]interface{}) error
}
