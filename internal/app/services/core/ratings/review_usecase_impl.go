package ratings

import (
	"context"
	"time"

	"vitacare-service/internal/app/contracts"
	"vitacare-service/internal/app/models"
	"vitacare-service/internal/app/services/core/authz"
	"vitacare-service/internal/pkg/constvars"
	"vitacare-service/internal/pkg/dto/requests"
	"vitacare-service/internal/pkg/exceptions"
	"vitacare-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ReviewUsecase struct {
	reviews  contracts.ReviewRepository
	accounts contracts.AccountRepository
	authz    *authz.Evaluator
	txn      contracts.TransactionManager
	log      *zap.Logger
}

func NewReviewUsecase(
	reviews contracts.ReviewRepository,
	accounts contracts.AccountRepository,
	authzEvaluator *authz.Evaluator,
	txn contracts.TransactionManager,
	logger *zap.Logger,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviews:  reviews,
		accounts: accounts,
		authz:    authzEvaluator,
		txn:      txn,
		log:      logger,
	}
}

// Submit records a new review and folds its value into the subject's rating
// aggregate. Provider reviews require the provider to have actually served
// the reviewing patient.
func (u *ReviewUsecase) Submit(ctx context.Context, callerID string, request *requests.SubmitReview) (*models.Review, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	subjectID, err := primitive.ObjectIDFromHex(request.SubjectID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	chain := u.authz.Start(callerID, "")
	if request.SubjectType == string(models.ReviewSubjectProvider) {
		// only patients the provider has served may rate the provider;
		// the served-relation is checked from the provider's side
		chain = chain.ServedBy(ctx, subjectID)
	}
	if err := chain.Check(); err != nil {
		return nil, err
	}

	subject, err := u.accounts.FindByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, exceptions.ErrAccountNotFound(nil)
	}

	now := time.Now()
	review := &models.Review{
		PatientID:   chain.CallerID(),
		SubjectID:   subjectID,
		SubjectType: models.ReviewSubjectType(request.SubjectType),
		Value:       request.Value,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	aggregate := Aggregate{Mean: subject.Rating, Count: subject.RatingCount}.Add(request.Value)

	err = u.txn.WithTransaction(ctx, func(txCtx context.Context) error {
		reviewID, err := u.reviews.Insert(txCtx, review)
		if err != nil {
			return err
		}
		review.ID = reviewID
		return u.accounts.UpdateRating(txCtx, subjectID, aggregate.Mean, aggregate.Count)
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("ReviewUsecase.Submit succeeded",
		zap.String(constvars.LoggingCallerIDKey, callerID),
		zap.String("subject_id", request.SubjectID),
		zap.Float64("value", request.Value),
	)
	return review, nil
}

// Update replaces the caller's previously submitted rating value.
func (u *ReviewUsecase) Update(ctx context.Context, reviewID, callerID string, request *requests.UpdateReview) (*models.Review, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	review, err := u.findOwnedReview(ctx, reviewID, callerID)
	if err != nil {
		return nil, err
	}

	subject, err := u.accounts.FindByID(ctx, review.SubjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, exceptions.ErrAccountNotFound(nil)
	}
	if subject.RatingCount == 0 {
		// editing a rating on an entity with zero ratings is undefined
		return nil, exceptions.ErrServerProcess(nil)
	}

	aggregate := Aggregate{Mean: subject.Rating, Count: subject.RatingCount}.Edit(review.Value, request.Value)
	oldValue := review.Value
	review.Value = request.Value
	review.UpdatedAt = time.Now()

	err = u.txn.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := u.reviews.Update(txCtx, review); err != nil {
			return err
		}
		return u.accounts.UpdateRating(txCtx, review.SubjectID, aggregate.Mean, aggregate.Count)
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("ReviewUsecase.Update succeeded",
		zap.String("review_id", reviewID),
		zap.Float64("old_value", oldValue),
		zap.Float64("new_value", request.Value),
	)
	return review, nil
}

// Delete withdraws the caller's review and rolls its value out of the
// subject's aggregate.
func (u *ReviewUsecase) Delete(ctx context.Context, reviewID, callerID string) error {
	review, err := u.findOwnedReview(ctx, reviewID, callerID)
	if err != nil {
		return err
	}

	subject, err := u.accounts.FindByID(ctx, review.SubjectID)
	if err != nil {
		return err
	}
	if subject == nil {
		return exceptions.ErrAccountNotFound(nil)
	}

	aggregate := Aggregate{Mean: subject.Rating, Count: subject.RatingCount}.Remove(review.Value)

	err = u.txn.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := u.reviews.Delete(txCtx, review.ID); err != nil {
			return err
		}
		return u.accounts.UpdateRating(txCtx, review.SubjectID, aggregate.Mean, aggregate.Count)
	})
	if err != nil {
		return err
	}

	u.log.Info("ReviewUsecase.Delete succeeded", zap.String("review_id", reviewID))
	return nil
}

func (u *ReviewUsecase) findOwnedReview(ctx context.Context, reviewID, callerID string) (*models.Review, error) {
	id, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	review, err := u.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, exceptions.ErrReviewNotFound(nil)
	}

	if err := u.authz.Start(callerID, "").Self(review.PatientID).Check(); err != nil {
		return nil, err
	}
	return review, nil
}
