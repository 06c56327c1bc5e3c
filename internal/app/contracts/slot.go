package contracts

import (
	"context"
	"time"

	"vitacare-service/internal/app/models"
	"vitacare-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SlotRepository interface {
	FindByID(ctx context.Context, slotID primitive.ObjectID) (*models.Slot, error)
	// FindForProviderInRange returns the provider's slots whose interval
	// intersects [from, to), ordered by start time.
	FindForProviderInRange(ctx context.Context, providerID primitive.ObjectID, from, to time.Time) ([]models.Slot, error)
	Insert(ctx context.Context, slot *models.Slot) (primitive.ObjectID, error)
	InsertMany(ctx context.Context, slots []models.Slot) ([]primitive.ObjectID, error)
	DeleteByIDs(ctx context.Context, slotIDs []primitive.ObjectID) error
	// MarkBooked flips booked from false to true atomically; it reports
	// whether the transition happened so callers can detect double booking
	// from the same consistent read.
	MarkBooked(ctx context.Context, slotID, visitID primitive.ObjectID) (bool, error)
	Release(ctx context.Context, slotID primitive.ObjectID) error
}

type SlotUsecase interface {
	AddSlot(ctx context.Context, callerID string, request *requests.CreateSlot) (*models.Slot, error)
	AddRecurringSlots(ctx context.Context, callerID string, request *requests.CreateRecurringSlots) ([]models.Slot, error)
	RetimeSlotRange(ctx context.Context, callerID string, request *requests.RetimeSlotRange) ([]models.Slot, error)
	FindForProviderOnDay(ctx context.Context, providerID string, day time.Time) ([]models.Slot, error)
}
