package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Slot is one bookable time interval for a provider at an institution.
// Invariants: Start < End; a provider's slots on one calendar day never
// overlap; at most one non-cancelled visit references a slot.
type Slot struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProviderID      primitive.ObjectID `bson:"providerId" json:"provider_id"`
	InstitutionID   primitive.ObjectID `bson:"institutionId" json:"institution_id"`
	InstitutionName string             `bson:"institutionName,omitempty" json:"institution_name,omitempty"`
	Start           time.Time          `bson:"start" json:"start"`
	End             time.Time          `bson:"end" json:"end"`
	Booked          bool               `bson:"booked" json:"booked"`
	VisitID         primitive.ObjectID `bson:"visitId,omitempty" json:"visit_id,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updated_at"`
}
