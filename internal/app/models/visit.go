package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VisitStatus string

const (
	VisitStatusUpcoming  VisitStatus = "upcoming"
	VisitStatusCompleted VisitStatus = "completed"
	VisitStatusCancelled VisitStatus = "cancelled"
)

// Closed reports whether the status is terminal. Terminal visits never
// transition again.
func (s VisitStatus) Closed() bool {
	return s == VisitStatusCompleted || s == VisitStatusCancelled
}

type CodeType string

const (
	CodeTypePrescription CodeType = "prescription"
	CodeTypeReferral     CodeType = "referral"
)

// VisitCode is a prescription or referral token issued when a visit is
// completed. The code list is append-only at completion; individual codes may
// later be toggled inactive.
type VisitCode struct {
	Type   CodeType `bson:"type" json:"type"`
	Value  string   `bson:"value" json:"value"`
	Active bool     `bson:"active" json:"active"`
}

// PartyDigest is a denormalized snapshot of another entity's display fields.
// It is written once when the visit is created or rescheduled and is NOT kept
// in sync with later profile edits; staleness is expected.
type PartyDigest struct {
	ID   primitive.ObjectID `bson:"id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// Visit binds a patient to a slot. Visits are never physically deleted.
type Visit struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Patient     PartyDigest        `bson:"patient" json:"patient"`
	Provider    PartyDigest        `bson:"provider" json:"provider"`
	Institution PartyDigest        `bson:"institution" json:"institution"`
	SlotID      primitive.ObjectID `bson:"slotId" json:"slot_id"`
	Start       time.Time          `bson:"start" json:"start"`
	End         time.Time          `bson:"end" json:"end"`
	Status      VisitStatus        `bson:"status" json:"status"`
	Remarks     string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
	Note        string             `bson:"note,omitempty" json:"note,omitempty"`
	Codes       []VisitCode        `bson:"codes,omitempty" json:"codes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}
