package visits

import (
	"context"

	"vitacare-service/internal/app/contracts"
	"vitacare-service/internal/app/models"
	"vitacare-service/internal/pkg/constvars"
	"vitacare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type VisitMongoRepository struct {
	Collection *mongo.Collection
}

func NewVisitMongoRepository(client *mongo.Client, dbName string) contracts.VisitRepository {
	return &VisitMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionVisits),
	}
}

func (r *VisitMongoRepository) FindByID(ctx context.Context, visitID primitive.ObjectID) (*models.Visit, error) {
	var visit models.Visit
	err := r.Collection.FindOne(ctx, bson.M{"_id": visitID}).Decode(&visit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &visit, nil
}

func (r *VisitMongoRepository) Insert(ctx context.Context, visit *models.Visit) (primitive.ObjectID, error) {
	result, err := r.Collection.InsertOne(ctx, visit)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// UpdateIfUpcoming replaces the visit in a single conditional write. The
// status filter is the serialization point for concurrent transitions on one
// visit: a racing caller that already closed it leaves ModifiedCount at zero
// here, so a terminal status can never be overwritten back to upcoming.
func (r *VisitMongoRepository) UpdateIfUpcoming(ctx context.Context, visit *models.Visit) (bool, error) {
	filter := bson.M{"_id": visit.ID, "status": models.VisitStatusUpcoming}
	result, err := r.Collection.ReplaceOne(ctx, filter, visit)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *VisitMongoRepository) HasServedPatient(ctx context.Context, providerID, patientID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"provider.id": providerID,
		"patient.id":  patientID,
		"status":      models.VisitStatusCompleted,
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}
