package accounts

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

type AccountMongoRepository struct {
	Collection *mongo.Collection
}

func NewAccountMongoRepository(client *mongo.Client, dbName string) contracts.AccountRepository {
	return &AccountMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionAccounts),
	}
}

func (r *AccountMongoRepository) FindByID(ctx context.Context, accountID primitive.ObjectID) (*models.Account, error) {
	var account models.Account
	err := r.Collection.FindOne(ctx, bson.M{"_id": accountID}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &account, nil
}

func (r *AccountMongoRepository) IsInstitutionAdmin(ctx context.Context, callerID, institutionID primitive.ObjectID) (bool, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"_id": callerID, "adminOf": institutionID})
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}

func (r *AccountMongoRepository) IsInstitutionStaff(ctx context.Context, callerID, institutionID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id": callerID,
		"$or": []bson.M{
			{"staffOf": institutionID},
			{"adminOf": institutionID},
		},
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}

func (r *AccountMongoRepository) UpdateRating(ctx context.Context, accountID primitive.ObjectID, rating float64, ratingCount int) error {
	update := bson.M{"$set": bson.M{"rating": rating, "ratingCount": ratingCount}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": accountID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
