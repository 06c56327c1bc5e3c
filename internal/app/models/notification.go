package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReminderNotification is a scheduled, time-triggered notification tied to an
// upcoming visit. System-generated reminders are replaced on reschedule and
// removed on cancellation; the sweep prunes anything past the retention
// horizon regardless of delivery state.
type ReminderNotification struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID         primitive.ObjectID `bson:"ownerId" json:"owner_id"`
	Title           string             `bson:"title" json:"title"`
	Content         string             `bson:"content" json:"content"`
	FireAt          time.Time          `bson:"fireAt" json:"fire_at"`
	SystemGenerated bool               `bson:"systemGenerated" json:"system_generated"`
	Delivered       bool               `bson:"delivered" json:"delivered"`
	CreatedAt       time.Time          `bson:"createdAt" json:"created_at"`
}
