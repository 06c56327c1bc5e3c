package contracts

import (
	"context"

	"vitacare-service/internal/app/models"
	"vitacare-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VisitRepository interface {
	FindByID(ctx context.Context, visitID primitive.ObjectID) (*models.Visit, error)
	Insert(ctx context.Context, visit *models.Visit) (primitive.ObjectID, error)
	// UpdateIfUpcoming replaces the visit only while its stored status is
	// still upcoming; it reports whether the write happened. The conditional
	// write is what keeps terminal states final when two callers race on the
	// same visit.
	UpdateIfUpcoming(ctx context.Context, visit *models.Visit) (bool, error)
	// HasServedPatient reports whether the provider has at least one
	// completed visit with the patient.
	HasServedPatient(ctx context.Context, providerID, patientID primitive.ObjectID) (bool, error)
}

type VisitUsecase interface {
	Book(ctx context.Context, patientID string, request *requests.BookVisit) (*models.Visit, error)
	Cancel(ctx context.Context, visitID, callerID string) (*models.Visit, error)
	Reschedule(ctx context.Context, visitID, callerID string, request *requests.RescheduleVisit) (*models.Visit, error)
	Complete(ctx context.Context, visitID, callerID string, request *requests.CompleteVisit) (*models.Visit, error)
}
