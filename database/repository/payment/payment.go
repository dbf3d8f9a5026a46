package paymentRepo

import (
	"context"

	"github.com/rightguydaniel/deluxconex-BE/models"
)

// PaymentRepository defines persistence operations for wire payment requests.
// GetByID returns (nil, nil) when no matching document exists.
type PaymentRepository interface {
	Create(request *models.PaymentRequest) error
	GetByID(id string) (*models.PaymentRequest, error)
	GetAll() ([]models.PaymentRequest, error)
	SetFields(id string, fields map[string]interface{}) error

	// CreateRequestBundle persists the order, invoice and payment request
	// in a single multi-document transaction. Either all three documents
	// exist afterwards or none do.
	CreateRequestBundle(ctx context.Context, order *models.Order, invoice *models.Invoice, request *models.PaymentRequest) error
}
