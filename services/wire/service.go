package wire

import (
	"context"
	"time"

	addressRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/address"
	cartRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/cart"
	invoiceRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/invoice"
	orderRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/order"
	paymentRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/payment"
	userRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/user"
	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/services/notification"
	"github.com/rightguydaniel/deluxconex-BE/services/storage"
)

// BankDetails are the operator-supplied fields embedded in a payment link.
// Free text, not validated against any routing checksum.
type BankDetails struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	RoutingNumber string `json:"routingNumber"`
	BankName      string `json:"bankName"`
}

// IssueResult is returned to the operator after issuing payment details.
type IssueResult struct {
	Link      string    `json:"link"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// PaymentInfo is what a link holder sees. It is built entirely from the
// token payload, never from the stored row.
type PaymentInfo struct {
	AccountName   string  `json:"accountName"`
	AccountNumber string  `json:"accountNumber"`
	RoutingNumber string  `json:"routingNumber"`
	BankName      string  `json:"bankName"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
	ExpiresAt     string  `json:"expiresAt"`
	RequestID     string  `json:"requestId"`
	InvoiceID     string  `json:"invoiceId"`
	OrderID       string  `json:"orderId"`
}

// WireService drives the wire-transfer payment workflow: intake, detail
// issuance, customer retrieval, proof submission and the administrative
// verdict. State moves pending -> issued -> proof_submitted; the terminal
// verified/rejected/expired states are reachable only through
// UpdateRequestStatus.
type WireService interface {
	RequestPayment(ctx context.Context, userID string) error
	ListRequests() ([]models.PaymentRequest, error)
	IssueDetails(ctx context.Context, requestID string, details BankDetails, daysValid int) (*IssueResult, error)
	GetPaymentInfo(token string) (*PaymentInfo, error)
	SubmitProof(ctx context.Context, token, proofFilePath string) error
	UpdateRequestStatus(requestID string, status models.WirePaymentStatus, notes string) (*models.PaymentRequest, error)
}

// DefaultWireService is the production implementation.
type DefaultWireService struct {
	Requests  paymentRepo.PaymentRepository
	Orders    orderRepo.OrderRepository
	Invoices  invoiceRepo.InvoiceRepository
	Users     userRepo.UserRepository
	Carts     cartRepo.CartRepository
	Addresses addressRepo.AddressRepository

	Mailer  notification.Mailer
	Storage storage.StorageService
	Codec   *Codec

	BaseURL    string
	AdminEmail string
}
