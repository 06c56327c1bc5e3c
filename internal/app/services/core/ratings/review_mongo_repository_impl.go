package ratings

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

type ReviewMongoRepository struct {
	Collection *mongo.Collection
}

func NewReviewMongoRepository(client *mongo.Client, dbName string) contracts.ReviewRepository {
	return &ReviewMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionReviews),
	}
}

func (r *ReviewMongoRepository) FindByID(ctx context.Context, reviewID primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.Collection.FindOne(ctx, bson.M{"_id": reviewID}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &review, nil
}

func (r *ReviewMongoRepository) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	result, err := r.Collection.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *ReviewMongoRepository) Update(ctx context.Context, review *models.Review) error {
	_, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": review.ID}, review)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ReviewMongoRepository) Delete(ctx context.Context, reviewID primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": reviewID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
