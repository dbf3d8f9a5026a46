package productRepo

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

// MongoProductRepo implements ProductRepository using MongoDB.
type MongoProductRepo struct {
	coll *mongo.Collection
}

// NewMongoProductRepo creates a new instance of ProductRepository using MongoDB.
func NewMongoProductRepo() ProductRepository {
	repo := &MongoProductRepo{coll: database.DB().Collection("products")}
	repo.ensureIndexes()
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProductRepo) ensureIndexes() {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "categories", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}},
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		utils.GetLogger().Warn("Failed to create product indexes", zap.Error(err))
	}
}

// Create inserts a new product document.
func (r *MongoProductRepo) Create(product *models.Product) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update replaces an existing product document.
func (r *MongoProductRepo) Update(product *models.Product) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	product.UpdatedAt = time.Now()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": product.ID}, product)
	if err != nil {
		return fmt.Errorf("failed to update product with id %s: %w", product.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("product with id %s not found", product.ID)
	}
	return nil
}

// Delete removes a product document.
func (r *MongoProductRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("product with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a product by its unique ID.
func (r *MongoProductRepo) GetByID(id string) (*models.Product, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var product models.Product
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product with id %s: %w", id, err)
	}
	return &product, nil
}

// GetAll retrieves every product in the catalog.
func (r *MongoProductRepo) GetAll() ([]models.Product, error) {
	return r.find(bson.M{})
}

// GetByCategory retrieves products tagged with the given category.
func (r *MongoProductRepo) GetByCategory(category string) ([]models.Product, error) {
	return r.find(bson.M{"categories": category})
}

// Search runs a text search over product names and descriptions.
func (r *MongoProductRepo) Search(query string) ([]models.Product, error) {
	return r.find(bson.M{"$text": bson.M{"$search": query}})
}

func (r *MongoProductRepo) find(filter bson.M) ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}
