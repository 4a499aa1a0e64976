package organizerRepo

import (
	"context"
	"fmt"
	"time"

	"eventify/database"
	"eventify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOrganizerRepo implements OrganizerRepository using MongoDB.
type MongoOrganizerRepo struct {
	coll *mongo.Collection
}

// NewMongoOrganizerRepo creates a new instance of OrganizerRepository using MongoDB.
func NewMongoOrganizerRepo() OrganizerRepository {
	// Use the "eventify" database and the "organizers" collection.
	coll := database.MongoClient.Database("eventify").Collection("organizers")
	return &MongoOrganizerRepo{coll: coll}
}

func (r *MongoOrganizerRepo) GetByID(id string) (*models.OrganizerProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var organizer models.OrganizerProfile
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&organizer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NotFoundError{Resource: "organizer", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch organizer with id %s: %w", id, err)
	}
	return &organizer, nil
}

func (r *MongoOrganizerRepo) GetAll() ([]models.OrganizerProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve organizers: %w", err)
	}
	defer cursor.Close(ctx)
	return decodeOrganizers(ctx, cursor)
}

// Search returns at most 50 organizers sorted by rating descending. Unlike
// the matcher, the catalog never synthesizes entries; an empty slice is a
// valid result.
func (r *MongoOrganizerRepo) Search(criteria OrganizerSearchCriteria) ([]models.OrganizerProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if criteria.EventType != "" {
		filter["expertise"] = bson.M{"$regex": criteria.EventType, "$options": "i"}
	}
	if criteria.Location != "" {
		filter["location"] = bson.M{"$regex": criteria.Location, "$options": "i"}
	}
	if criteria.MinRating > 0 {
		filter["rating"] = bson.M{"$gte": criteria.MinRating}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(50)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("organizer search query failed: %w", err)
	}
	defer cursor.Close(ctx)
	return decodeOrganizers(ctx, cursor)
}

func (r *MongoOrganizerRepo) Create(organizer *models.OrganizerProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, organizer)
	if err != nil {
		return fmt.Errorf("failed to create organizer: %w", err)
	}
	return nil
}

func (r *MongoOrganizerRepo) Update(organizer *models.OrganizerProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": organizer.ID}
	update := bson.M{"$set": organizer}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update organizer with id %s: %w", organizer.ID, err)
	}
	if result.MatchedCount == 0 {
		return models.NotFoundError{Resource: "organizer", ID: organizer.ID}
	}
	return nil
}

func (r *MongoOrganizerRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete organizer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return models.NotFoundError{Resource: "organizer", ID: id}
	}
	return nil
}

func decodeOrganizers(ctx context.Context, cursor *mongo.Cursor) ([]models.OrganizerProfile, error) {
	var organizers []models.OrganizerProfile
	for cursor.Next(ctx) {
		var o models.OrganizerProfile
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode organizer: %w", err)
		}
		organizers = append(organizers, o)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return organizers, nil
}
