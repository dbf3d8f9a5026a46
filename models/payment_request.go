package models

import "time"

// WirePaymentStatus is the lifecycle of a wire-transfer payment request.
// pending and issued and proof_submitted are driven by the workflow itself;
// verified, rejected and expired are set by an administrator after manual
// reconciliation.
type WirePaymentStatus string

const (
	WirePending        WirePaymentStatus = "pending"
	WireIssued         WirePaymentStatus = "issued"
	WireProofSubmitted WirePaymentStatus = "proof_submitted"
	WireVerified       WirePaymentStatus = "verified"
	WireRejected       WirePaymentStatus = "rejected"
	WireExpired        WirePaymentStatus = "expired"
)

// PaymentRequest is one wire-transfer attempt, created together with its
// order and invoice. Bank fields stay empty until an administrator issues
// payment details; LinkToken keeps the last issued token for audit.
type PaymentRequest struct {
	ID            string            `bson:"id" json:"id"`
	UserID        string            `bson:"userId" json:"userId"`
	OrderID       string            `bson:"orderId" json:"orderId"`
	InvoiceID     string            `bson:"invoiceId" json:"invoiceId"`
	Status        WirePaymentStatus `bson:"status" json:"status"`
	AccountName   string            `bson:"accountName,omitempty" json:"accountName,omitempty"`
	AccountNumber string            `bson:"accountNumber,omitempty" json:"accountNumber,omitempty"`
	RoutingNumber string            `bson:"routingNumber,omitempty" json:"routingNumber,omitempty"`
	BankName      string            `bson:"bankName,omitempty" json:"bankName,omitempty"`
	ExpiresAt     *time.Time        `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	LinkToken     string            `bson:"linkToken,omitempty" json:"linkToken,omitempty"`
	ProofURL      string            `bson:"proofUrl,omitempty" json:"proofUrl,omitempty"`
	Notes         string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time         `bson:"createdAt" json:"created_at"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updated_at"`
}
