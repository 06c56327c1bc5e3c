package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AccountRole string

const (
	AccountRolePatient      AccountRole = "patient"
	AccountRolePractitioner AccountRole = "practitioner"
	AccountRoleInstitution  AccountRole = "institution"
)

// Account is the projection of a user/institution record the scheduling core
// needs. Account management itself lives outside this service; the rating
// fields are mutated only through the ratings aggregate.
type Account struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name          string               `bson:"name" json:"name"`
	Role          AccountRole          `bson:"role" json:"role"`
	Rating        float64              `bson:"rating" json:"rating"`
	RatingCount   int                  `bson:"ratingCount" json:"rating_count"`
	ReminderOptIn bool                 `bson:"reminderOptIn" json:"reminder_opt_in"`
	StaffOf       []primitive.ObjectID `bson:"staffOf,omitempty" json:"staff_of,omitempty"`
	AdminOf       []primitive.ObjectID `bson:"adminOf,omitempty" json:"admin_of,omitempty"`
}
