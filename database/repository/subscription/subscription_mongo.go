package subscriptionRepo

import (
	"context"
	"fmt"
	"time"

	"bookmyservice/database"
	"bookmyservice/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSubscriptionRepo implements SubscriptionRepository using MongoDB.
type MongoSubscriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubscriptionRepo creates a new instance of SubscriptionRepository using MongoDB.
func NewMongoSubscriptionRepo() SubscriptionRepository {
	repo := &MongoSubscriptionRepo{coll: database.Collection("subscriptions")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create subscription indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSubscriptionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a subscription by its unique ID, or nil when absent.
func (r *MongoSubscriptionRepo) GetByID(id string) (*models.Subscription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var sub models.Subscription
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sub); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch subscription with id %s: %w", id, err)
	}
	return &sub, nil
}

// ListByProvider retrieves all subscriptions of a provider.
func (r *MongoSubscriptionRepo) ListByProvider(providerID string) ([]models.Subscription, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"provider_id": providerID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve subscriptions for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var subs []models.Subscription
	for cursor.Next(ctx) {
		var sub models.Subscription
		if err := cursor.Decode(&sub); err != nil {
			return nil, fmt.Errorf("failed to decode subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// Create inserts a new subscription document.
func (r *MongoSubscriptionRepo) Create(sub *models.Subscription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// Update modifies an existing subscription document.
func (r *MongoSubscriptionRepo) Update(sub *models.Subscription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	sub.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": sub.ID}, bson.M{"$set": sub})
	if err != nil {
		return fmt.Errorf("failed to update subscription with id %s: %w", sub.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("subscription with id %s not found", sub.ID)
	}
	return nil
}

// Delete removes a subscription document by its ID.
func (r *MongoSubscriptionRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete subscription with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("subscription with id %s not found", id)
	}
	return nil
}
