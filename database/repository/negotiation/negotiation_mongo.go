package negotiationRepo

import (
	"context"
	"fmt"
	"time"

	"eventify/database"
	"eventify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoNegotiationRepo implements NegotiationRepository using MongoDB.
type MongoNegotiationRepo struct {
	coll *mongo.Collection
}

// NewMongoNegotiationRepo creates a new instance of NegotiationRepository using MongoDB.
func NewMongoNegotiationRepo() NegotiationRepository {
	// Use the "eventify" database and the "negotiations" collection.
	coll := database.MongoClient.Database("eventify").Collection("negotiations")
	return &MongoNegotiationRepo{coll: coll}
}

// Insert stores a new negotiation. The partial unique index over
// (event_request_id, organizer_id) restricted to non-terminal statuses turns
// a duplicate active pair into a duplicate-key error.
func (r *MongoNegotiationRepo) Insert(ctx context.Context, n *models.Negotiation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ConflictError{
				Reason: fmt.Sprintf("an active negotiation already exists for event request %s and organizer %s",
					n.EventRequestID, n.OrganizerID),
			}
		}
		return fmt.Errorf("failed to insert negotiation: %w", err)
	}
	return nil
}

func (r *MongoNegotiationRepo) GetByID(ctx context.Context, id string) (*models.Negotiation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n models.Negotiation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&n); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NotFoundError{Resource: "negotiation", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch negotiation with id %s: %w", id, err)
	}
	return &n, nil
}

func (r *MongoNegotiationRepo) GetByEventRequest(ctx context.Context, eventRequestID string) ([]models.Negotiation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"event_request_id": eventRequestID})
	if err != nil {
		return nil, fmt.Errorf("failed to list negotiations for event request %s: %w", eventRequestID, err)
	}
	defer cursor.Close(ctx)

	var negotiations []models.Negotiation
	for cursor.Next(ctx) {
		var n models.Negotiation
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode negotiation: %w", err)
		}
		negotiations = append(negotiations, n)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return negotiations, nil
}

// Update performs a compare-and-swap write: the filter matches the record
// only at the version the caller read, so a concurrent writer that got there
// first leaves MatchedCount at zero.
func (r *MongoNegotiationRepo) Update(ctx context.Context, n *models.Negotiation, expectedVersion int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": n.ID, "version": expectedVersion}
	update := bson.M{
		"$set": bson.M{
			"status":         n.Status,
			"offers":         n.Offers,
			"current_amount": n.CurrentAmount,
		},
		"$inc": bson.M{"version": 1},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update negotiation with id %s: %w", n.ID, err)
	}
	if result.MatchedCount == 0 {
		// Distinguish a lost race from a genuinely unknown id.
		count, countErr := r.coll.CountDocuments(ctx, bson.M{"id": n.ID})
		if countErr != nil {
			return fmt.Errorf("failed to verify negotiation %s after update miss: %w", n.ID, countErr)
		}
		if count == 0 {
			return models.NotFoundError{Resource: "negotiation", ID: n.ID}
		}
		return models.ConflictError{
			Reason: fmt.Sprintf("negotiation %s was modified concurrently", n.ID),
		}
	}
	n.Version = expectedVersion + 1
	return nil
}
