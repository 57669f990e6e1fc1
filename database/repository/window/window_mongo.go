package windowRepo

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

// MongoWindowRepo implements WindowRepository using MongoDB.
type MongoWindowRepo struct {
	coll *mongo.Collection
}

// NewMongoWindowRepo creates a new instance of WindowRepository using MongoDB.
func NewMongoWindowRepo() WindowRepository {
	repo := &MongoWindowRepo{coll: database.Collection("availability_windows")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create window indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoWindowRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "service_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a window by its unique ID, or nil when absent.
func (r *MongoWindowRepo) GetByID(id string) (*models.AvailabilityWindow, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var w models.AvailabilityWindow
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&w); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch window with id %s: %w", id, err)
	}
	return &w, nil
}

// ListByService retrieves all windows owned by a service.
func (r *MongoWindowRepo) ListByService(serviceID string) ([]models.AvailabilityWindow, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"service_id": serviceID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve windows for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	for cursor.Next(ctx) {
		var w models.AvailabilityWindow
		if err := cursor.Decode(&w); err != nil {
			return nil, fmt.Errorf("failed to decode window: %w", err)
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// Create inserts a new window document.
func (r *MongoWindowRepo) Create(w *models.AvailabilityWindow) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, w); err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	return nil
}

// Update modifies an existing window document in place.
func (r *MongoWindowRepo) Update(w *models.AvailabilityWindow) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	w.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": w.ID}, bson.M{"$set": w})
	if err != nil {
		return fmt.Errorf("failed to update window with id %s: %w", w.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("window with id %s not found", w.ID)
	}
	return nil
}

// Delete removes a window document by its ID.
func (r *MongoWindowRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete window with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("window with id %s not found", id)
	}
	return nil
}

// DeleteByService removes all windows owned by a service.
func (r *MongoWindowRepo) DeleteByService(serviceID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"service_id": serviceID}); err != nil {
		return fmt.Errorf("failed to delete windows for service %s: %w", serviceID, err)
	}
	return nil
}
