package models

import "time"

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is the billing record for an order. It carries its own status
// lifecycle independent of the order's fulfilment state.
type Invoice struct {
	ID            string        `bson:"id" json:"id"`
	OrderID       string        `bson:"orderId" json:"orderId"`
	UserID        string        `bson:"userId" json:"userId"`
	InvoiceNumber string        `bson:"invoiceNumber" json:"invoiceNumber"`
	IssueDate     time.Time     `bson:"issueDate" json:"issueDate"`
	DueDate       time.Time     `bson:"dueDate" json:"dueDate"`
	Status        InvoiceStatus `bson:"status" json:"status"`
	Subtotal      float64       `bson:"subtotal" json:"subtotal"`
	Tax           float64       `bson:"tax" json:"tax"`
	Shipping      float64       `bson:"shipping" json:"shipping"`
	Discount      float64       `bson:"discount" json:"discount"`
	Total         float64       `bson:"total" json:"total"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Terms         string        `bson:"terms,omitempty" json:"terms,omitempty"`
	PaidAt        *time.Time    `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updated_at"`
}
