package contracts

import (
	"context"
	"time"

	"vitacare-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *models.ReminderNotification) (primitive.ObjectID, error)
	// DeleteSystemGeneratedAt removes the owner's system-generated reminders
	// with the exact fire time. Used when a visit is cancelled or rescheduled.
	DeleteSystemGeneratedAt(ctx context.Context, ownerID primitive.ObjectID, fireAt time.Time) error
	FindPendingOwners(ctx context.Context) ([]primitive.ObjectID, error)
	FindPendingByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.ReminderNotification, error)
	MarkDelivered(ctx context.Context, notificationID primitive.ObjectID) error
	DeleteOlderThan(ctx context.Context, horizon time.Time) (int64, error)
}

// NotificationTransport is the outbound delivery collaborator. The core only
// decides what and when to send.
type NotificationTransport interface {
	Dispatch(ctx context.Context, ownerID primitive.ObjectID, title, content string) error
}
