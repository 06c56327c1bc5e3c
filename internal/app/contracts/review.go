package contracts

import (
	"context"

	"vitacare-service/internal/app/models"
	"vitacare-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewRepository interface {
	FindByID(ctx context.Context, reviewID primitive.ObjectID) (*models.Review, error)
	Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, reviewID primitive.ObjectID) error
}

type ReviewUsecase interface {
	Submit(ctx context.Context, callerID string, request *requests.SubmitReview) (*models.Review, error)
	Update(ctx context.Context, reviewID, callerID string, request *requests.UpdateReview) (*models.Review, error)
	Delete(ctx context.Context, reviewID, callerID string) error
}
