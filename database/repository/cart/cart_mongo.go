package cartRepo

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

// MongoCartRepo implements CartRepository using MongoDB.
type MongoCartRepo struct {
	coll *mongo.Collection
}

// NewMongoCartRepo creates a new instance of CartRepository using MongoDB.
func NewMongoCartRepo() CartRepository {
	coll := database.DB().Collection("carts")
	repo := &MongoCartRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// One cart per user.
func (r *MongoCartRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByUserID retrieves the user's cart.
func (r *MongoCartRepo) GetByUserID(userID string) (*models.Cart, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cart models.Cart
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// Save upserts the user's cart document.
func (r *MongoCartRepo) Save(cart *models.Cart) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cart.UpdatedAt = time.Now()
	filter := bson.M{"userId": cart.UserID}
	update := bson.M{"$set": cart}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save cart for user %s: %w", cart.UserID, err)
	}
	return nil
}

// DeleteByUserID removes the user's cart entirely.
func (r *MongoCartRepo) DeleteByUserID(userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("failed to delete cart for user %s: %w", userID, err)
	}
	return nil
}
