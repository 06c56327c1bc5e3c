package slots

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

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(client *mongo.Client, dbName string) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionSlots),
	}
}

func (r *SlotMongoRepository) FindByID(ctx context.Context, slotID primitive.ObjectID) (*models.Slot, error) {
	var slot models.Slot
	err := r.Collection.FindOne(ctx, bson.M{"_id": slotID}).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) FindForProviderInRange(ctx context.Context, providerID primitive.ObjectID, from, to time.Time) ([]models.Slot, error) {
	filter := bson.M{
		"providerId": providerID,
		"start":      bson.M{"$lt": to},
		"end":        bson.M{"$gt": from},
	}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (r *SlotMongoRepository) Insert(ctx context.Context, slot *models.Slot) (primitive.ObjectID, error) {
	result, err := r.Collection.InsertOne(ctx, slot)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *SlotMongoRepository) InsertMany(ctx context.Context, slots []models.Slot) ([]primitive.ObjectID, error) {
	documents := make([]interface{}, len(slots))
	for i := range slots {
		documents[i] = slots[i]
	}
	result, err := r.Collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	slotIDs := make([]primitive.ObjectID, len(result.InsertedIDs))
	for i, insertedID := range result.InsertedIDs {
		slotIDs[i] = insertedID.(primitive.ObjectID)
	}
	return slotIDs, nil
}

func (r *SlotMongoRepository) DeleteByIDs(ctx context.Context, slotIDs []primitive.ObjectID) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": slotIDs}})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// MarkBooked flips booked from false to true in a single conditional update.
// The filter on booked makes the flip the serialization point for double
// booking: only one concurrent caller observes ModifiedCount == 1.
func (r *SlotMongoRepository) MarkBooked(ctx context.Context, slotID, visitID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": slotID, "booked": false}
	update := bson.M{"$set": bson.M{"booked": true, "visitId": visitID, "updatedAt": time.Now()}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *SlotMongoRepository) Release(ctx context.Context, slotID primitive.ObjectID) error {
	update := bson.M{
		"$set":   bson.M{"booked": false, "updatedAt": time.Now()},
		"$unset": bson.M{"visitId": ""},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": slotID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
