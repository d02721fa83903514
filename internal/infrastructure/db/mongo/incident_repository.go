package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/project/incident-report/internal/core/domain"
)

const collectionIncidents = "incidents"

// IncidentRepository persists incidents in MongoDB. The generated public id
// is used directly as the document _id.
type IncidentRepository struct {
	coll *mongo.Collection
}

func NewIncidentRepository(db *mongo.Database) *IncidentRepository {
	return &IncidentRepository{coll: db.Collection(collectionIncidents)}
}

// Create inserts a new incident document.
func (r *IncidentRepository) Create(ctx context.Context, incident *domain.Incident) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, incident)
	return err
}

// FindAll returns every incident, newest first.
func (r *IncidentRepository) FindAll(ctx context.Context) ([]*domain.Incident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	incidents := make([]*domain.Incident, 0)
	if err := cursor.All(ctx, &incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

// FindByID retrieves an incident by its public id.
func (r *IncidentRepository) FindByID(ctx context.Context, id string) (*domain.Incident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var incident domain.Incident
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&incident); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIncidentNotFound
		}
		return nil, err
	}
	return &incident, nil
}

// UpdateStatus overwrites the status of an incident and returns the updated
// document.
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Incident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var incident domain.Incident
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&incident)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIncidentNotFound
		}
		return nil, err
	}
	return &incident, nil
}
