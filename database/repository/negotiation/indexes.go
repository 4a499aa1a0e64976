package negotiationRepo

import (
	"context"
	"fmt"
	"time"

	"eventify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates indexes for negotiation lookups and the
// one-active-negotiation-per-pair rule.
func (r *MongoNegotiationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Partial unique index: uniqueness only applies while the negotiation is
	// non-terminal, so closed negotiations stay on record for audit without
	// blocking a new round.
	activePairOpts := options.Index().
		SetUnique(true).
		SetPartialFilterExpression(bson.M{
			"status": bson.M{"$in": []string{
				models.NegotiationStarted,
				models.NegotiationUserCountered,
				models.NegotiationOrganizerCountered,
			}},
		})
	activePairIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "event_request_id", Value: 1},
			{Key: "organizer_id", Value: 1},
		},
		Options: activePairOpts,
	}

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "event_request_id", Value: 1}}},
		{Keys: bson.D{{Key: "expires_at", Value: 1}}},
		activePairIdx,
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create negotiation indexes: %w", err)
	}
	return nil
}
