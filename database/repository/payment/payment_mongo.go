package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/database"
	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	requestsColl *mongo.Collection
	ordersColl   *mongo.Collection
	invoicesColl *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	db := database.DB()
	repo := &MongoPaymentRepo{
		requestsColl: db.Collection("payment_requests"),
		ordersColl:   db.Collection("orders"),
		invoicesColl: db.Collection("invoices"),
	}
	repo.ensureIndexes()
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}
	if _, err := r.requestsColl.Indexes().CreateMany(ctx, indexes); err != nil {
		utils.GetLogger().Warn("Failed to create payment request indexes", zap.Error(err))
	}
}

// Create inserts a new payment request document.
func (r *MongoPaymentRepo) Create(request *models.PaymentRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	if _, err := r.requestsColl.InsertOne(ctx, request); err != nil {
		return fmt.Errorf("failed to create payment request: %w", err)
	}
	return nil
}

// GetByID retrieves a payment request by its unique ID.
func (r *MongoPaymentRepo) GetByID(id string) (*models.PaymentRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var request models.PaymentRequest
	if err := r.requestsColl.FindOne(ctx, bson.M{"id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment request with id %s: %w", id, err)
	}
	return &request, nil
}

// GetAll retrieves every payment request, newest first.
func (r *MongoPaymentRepo) GetAll() ([]models.PaymentRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.requestsColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.PaymentRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode payment requests: %w", err)
	}
	return requests, nil
}

// SetFields applies a partial update to a payment request document.
func (r *MongoPaymentRepo) SetFields(id string, fields map[string]interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	result, err := r.requestsColl.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update payment request with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("payment request with id %s not found", id)
	}
	return nil
}
