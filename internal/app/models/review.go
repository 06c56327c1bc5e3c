package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewSubjectType string

const (
	ReviewSubjectProvider    ReviewSubjectType = "provider"
	ReviewSubjectInstitution ReviewSubjectType = "institution"
)

// Review records one patient's rating of a provider or institution. The
// stored value is needed again when the review is edited or removed so the
// aggregate can be rolled back exactly.
type Review struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID   primitive.ObjectID `bson:"patientId" json:"patient_id"`
	SubjectID   primitive.ObjectID `bson:"subjectId" json:"subject_id"`
	SubjectType ReviewSubjectType  `bson:"subjectType" json:"subject_type"`
	Value       float64            `bson:"value" json:"value"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}
