package invoiceRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/database"
	"github.com/rightguydaniel/deluxconex-BE/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo creates a new instance of InvoiceRepository using MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	return &MongoInvoiceRepo{coll: database.DB().Collection("invoices")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new invoice document.
func (r *MongoInvoiceRepo) Create(invoice *models.Invoice) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, invoice); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// GetByID retrieves an invoice by its unique ID.
func (r *MongoInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var invoice models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&invoice); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch invoice with id %s: %w", id, err)
	}
	return &invoice, nil
}

// GetByUserID retrieves the user's invoices, most recently issued first.
func (r *MongoInvoiceRepo) GetByUserID(userID string) ([]models.Invoice, error) {
	return r.find(bson.M{"userId": userID})
}

// GetAll retrieves every invoice, most recently issued first.
func (r *MongoInvoiceRepo) GetAll() ([]models.Invoice, error) {
	return r.find(bson.M{})
}

func (r *MongoInvoiceRepo) find(filter bson.M) ([]models.Invoice, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "issueDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("failed to decode invoices: %w", err)
	}
	return invoices, nil
}

// SetFields applies a partial update to an invoice document.
func (r *MongoInvoiceRepo) SetFields(id string, fields map[string]interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update invoice with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("invoice with id %s not found", id)
	}
	return nil
}
