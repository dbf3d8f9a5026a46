package addressRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/database"
	"github.com/rightguydaniel/deluxconex-BE/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAddressRepo implements AddressRepository using MongoDB.
type MongoAddressRepo struct {
	coll *mongo.Collection
}

// NewMongoAddressRepo creates a new instance of AddressRepository using MongoDB.
func NewMongoAddressRepo() AddressRepository {
	return &MongoAddressRepo{coll: database.DB().Collection("addresses")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new address document.
func (r *MongoAddressRepo) Create(address *models.Address) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	address.CreatedAt = now
	address.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, address); err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// Update modifies an existing address document.
func (r *MongoAddressRepo) Update(address *models.Address) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	address.UpdatedAt = time.Now()
	filter := bson.M{"id": address.ID, "userId": address.UserID}
	update := bson.M{"$set": address}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update address with id %s: %w", address.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("address with id %s not found", address.ID)
	}
	return nil
}

// GetByID retrieves an address by its unique ID.
func (r *MongoAddressRepo) GetByID(id string) (*models.Address, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var address models.Address
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&address); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch address with id %s: %w", id, err)
	}
	return &address, nil
}

// GetByUserID retrieves all addresses saved by a user.
func (r *MongoAddressRepo) GetByUserID(userID string) ([]models.Address, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch addresses for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, fmt.Errorf("failed to decode addresses: %w", err)
	}
	return addresses, nil
}

// GetDefaultByUserID retrieves the user's default shipping address.
func (r *MongoAddressRepo) GetDefaultByUserID(userID string) (*models.Address, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var address models.Address
	filter := bson.M{"userId": userID, "isDefault": true}
	if err := r.coll.FindOne(ctx, filter).Decode(&address); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch default address for user %s: %w", userID, err)
	}
	return &address, nil
}

// SetDefault marks one address as the default and clears the flag on the rest.
func (r *MongoAddressRepo) SetDefault(userID, addressID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.UpdateMany(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"isDefault": false, "updatedAt": time.Now()}},
	); err != nil {
		return fmt.Errorf("failed to clear default addresses for user %s: %w", userID, err)
	}

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": addressID, "userId": userID},
		bson.M{"$set": bson.M{"isDefault": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set default address %s: %w", addressID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("address with id %s not found", addressID)
	}
	return nil
}

// Delete removes an address owned by the user.
func (r *MongoAddressRepo) Delete(userID, addressID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": addressID, "userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete address with id %s: %w", addressID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("address with id %s not found", addressID)
	}
	return nil
}
