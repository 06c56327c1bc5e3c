package contracts

import (
	"context"

	"vitacare-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountRepository is the read-mostly projection of the external account
// store. Only the rating aggregate fields are written from this service.
type AccountRepository interface {
	FindByID(ctx context.Context, accountID primitive.ObjectID) (*models.Account, error)
	IsInstitutionAdmin(ctx context.Context, callerID, institutionID primitive.ObjectID) (bool, error)
	IsInstitutionStaff(ctx context.Context, callerID, institutionID primitive.ObjectID) (bool, error)
	UpdateRating(ctx context.Context, accountID primitive.ObjectID, rating float64, ratingCount int) error
}
