package reminders

import (
	"context"
	"time"

	"vitacare-service/internal/app/contracts"
	"vitacare-service/internal/app/models"
	"vitacare-service/internal/pkg/constvars"
	"vitacare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(client *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func (r *NotificationMongoRepository) Insert(ctx context.Context, notification *models.ReminderNotification) (primitive.ObjectID, error) {
	result, err := r.Collection.InsertOne(ctx, notification)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *NotificationMongoRepository) DeleteSystemGeneratedAt(ctx context.Context, ownerID primitive.ObjectID, fireAt time.Time) error {
	filter := bson.M{
		"ownerId":         ownerID,
		"fireAt":          fireAt,
		"systemGenerated": true,
	}
	_, err := r.Collection.DeleteMany(ctx, filter)
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *NotificationMongoRepository) FindPendingOwners(ctx context.Context) ([]primitive.ObjectID, error) {
	raw, err := r.Collection.Distinct(ctx, "ownerId", bson.M{"delivered": false})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	ownerIDs := make([]primitive.ObjectID, 0, len(raw))
	for _, value := range raw {
		if ownerID, ok := value.(primitive.ObjectID); ok {
			ownerIDs = append(ownerIDs, ownerID)
		}
	}
	return ownerIDs, nil
}

func (r *NotificationMongoRepository) FindPendingByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.ReminderNotification, error) {
	filter := bson.M{"ownerId": ownerID, "delivered": false}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "fireAt", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var notifications []models.ReminderNotification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notifications, nil
}

func (r *NotificationMongoRepository) MarkDelivered(ctx context.Context, notificationID primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"delivered": true}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": notificationID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *NotificationMongoRepository) DeleteOlderThan(ctx context.Context, horizon time.Time) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"fireAt": bson.M{"$lt": horizon}})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
