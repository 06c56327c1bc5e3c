package ratings

import (
	"context"
	"testing"

	"vitacare-service/internal/app/models"
	"vitacare-service/internal/app/services/core/authz"
	"vitacare-service/internal/pkg/constvars"
	"vitacare-service/internal/pkg/dto/requests"
	"vitacare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memoryReviewRepository struct {
	reviews map[primitive.ObjectID]models.Review
}

func newMemoryReviewRepository() *memoryReviewRepository {
	return &memoryReviewRepository{reviews: make(map[primitive.ObjectID]models.Review)}
}

func (m *memoryReviewRepository) FindByID(ctx context.Context, reviewID primitive.ObjectID) (*models.Review, error) {
	review, ok := m.reviews[reviewID]
	if !ok {
		return nil, nil
	}
	return &review, nil
}

func (m *memoryReviewRepository) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	stored := *review
	stored.ID = primitive.NewObjectID()
	m.reviews[stored.ID] = stored
	return stored.ID, nil
}

func (m *memoryReviewRepository) Update(ctx context.Context, review *models.Review) error {
	m.reviews[review.ID] = *review
	return nil
}

func (m *memoryReviewRepository) Delete(ctx context.Context, reviewID primitive.ObjectID) error {
	delete(m.reviews, reviewID)
	return nil
}

type memoryAccountRepository struct {
	accounts map[primitive.ObjectID]models.Account
}

func newMemoryAccountRepository(accounts ...models.Account) *memoryAccountRepository {
	repo := &memoryAccountRepository{accounts: make(map[primitive.ObjectID]models.Account)}
	for _, account := range accounts {
		repo.accounts[account.ID] = account
	}
	return repo
}

func (m *memoryAccountRepository) FindByID(ctx context.Context, accountID primitive.ObjectID) (*models.Account, error) {
	account, ok := m.accounts[accountID]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (m *memoryAccountRepository) IsInstitutionAdmin(ctx context.Context, callerID, institutionID primitive.ObjectID) (bool, error) {
	return false, nil
}

func (m *memoryAccountRepository) IsInstitutionStaff(ctx context.Context, callerID, institutionID primitive.ObjectID) (bool, error) {
	return false, nil
}

func (m *memoryAccountRepository) UpdateRating(ctx context.Context, accountID primitive.ObjectID, rating float64, ratingCount int) error {
	account, ok := m.accounts[accountID]
	if !ok {
		return nil
	}
	account.Rating = rating
	account.RatingCount = ratingCount
	m.accounts[accountID] = account
	return nil
}

type stubVisitRepository struct {
	served bool
}

func (s *stubVisitRepository) FindByID(ctx context.Context, visitID primitive.ObjectID) (*models.Visit, error) {
	return nil, nil
}

func (s *stubVisitRepository) Insert(ctx context.Context, visit *models.Visit) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (s *stubVisitRepository) UpdateIfUpcoming(ctx context.Context, visit *models.Visit) (bool, error) {
	return true, nil
}

func (s *stubVisitRepository) HasServedPatient(ctx context.Context, providerID, patientID primitive.ObjectID) (bool, error) {
	return s.served, nil
}

type passthroughTxn struct{}

func (passthroughTxn) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type reviewFixture struct {
	usecase       *ReviewUsecase
	reviews       *memoryReviewRepository
	accounts      *memoryAccountRepository
	patientID     primitive.ObjectID
	providerID    primitive.ObjectID
	institutionID primitive.ObjectID
}

func newReviewFixture(served bool) *reviewFixture {
	patientID := primitive.NewObjectID()
	providerID := primitive.NewObjectID()
	institutionID := primitive.NewObjectID()

	accounts := newMemoryAccountRepository(
		models.Account{ID: patientID, Name: "Budi", Role: models.AccountRolePatient},
		models.Account{ID: providerID, Name: "Dr. Sari", Role: models.AccountRolePractitioner},
		models.Account{ID: institutionID, Name: "City Clinic", Role: models.AccountRoleInstitution},
	)
	reviews := newMemoryReviewRepository()
	evaluator := authz.NewEvaluator(accounts, &stubVisitRepository{served: served}, zap.NewNop())
	usecase := NewReviewUsecase(reviews, accounts, evaluator, passthroughTxn{}, zap.NewNop())

	return &reviewFixture{
		usecase:       usecase,
		reviews:       reviews,
		accounts:      accounts,
		patientID:     patientID,
		providerID:    providerID,
		institutionID: institutionID,
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestSubmitInstitutionReview(t *testing.T) {
	fixture := newReviewFixture(false)

	review, err := fixture.usecase.Submit(context.Background(), fixture.patientID.Hex(), &requests.SubmitReview{
		SubjectID:   fixture.institutionID.Hex(),
		SubjectType: string(models.ReviewSubjectInstitution),
		Value:       4,
	})
	require.NoError(t, err)
	assert.Equal(t, fixture.patientID, review.PatientID)

	subject, err := fixture.accounts.FindByID(context.Background(), fixture.institutionID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, subject.Rating)
	assert.Equal(t, 1, subject.RatingCount)

	_, err = fixture.usecase.Submit(context.Background(), primitive.NewObjectID().Hex(), &requests.SubmitReview{
		SubjectID:   fixture.institutionID.Hex(),
		SubjectType: string(models.ReviewSubjectInstitution),
		Value:       5,
	})
	require.NoError(t, err)

	subject, err = fixture.accounts.FindByID(context.Background(), fixture.institutionID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, subject.Rating, 1e-9)
	assert.Equal(t, 2, subject.RatingCount)
}

func TestSubmitProviderReviewRequiresServedRelation(t *testing.T) {
	t.Run("never served", func(t *testing.T) {
		fixture := newReviewFixture(false)
		_, err := fixture.usecase.Submit(context.Background(), fixture.patientID.Hex(), &requests.SubmitReview{
			SubjectID:   fixture.providerID.Hex(),
			SubjectType: string(models.ReviewSubjectProvider),
			Value:       5,
		})
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
	})

	t.Run("served", func(t *testing.T) {
		fixture := newReviewFixture(true)
		review, err := fixture.usecase.Submit(context.Background(), fixture.patientID.Hex(), &requests.SubmitReview{
			SubjectID:   fixture.providerID.Hex(),
			SubjectType: string(models.ReviewSubjectProvider),
			Value:       5,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ReviewSubjectProvider, review.SubjectType)
	})
}

func TestSubmitReviewRejectsOffScaleValue(t *testing.T) {
	fixture := newReviewFixture(false)

	_, err := fixture.usecase.Submit(context.Background(), fixture.patientID.Hex(), &requests.SubmitReview{
		SubjectID:   fixture.institutionID.Hex(),
		SubjectType: string(models.ReviewSubjectInstitution),
		Value:       4.3,
	})
	assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
}

func TestSubmitReviewUnknownSubject(t *testing.T) {
	fixture := newReviewFixture(false)

	_, err := fixture.usecase.Submit(context.Background(), fixture.patientID.Hex(), &requests.SubmitReview{
		SubjectID:   primitive.NewObjectID().Hex(),
		SubjectType: string(models.ReviewSubjectInstitution),
		Value:       3,
	})
	assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
}

func TestUpdateReview(t *testing.T) {
	fixture := newReviewFixture(false)

	review, err := fixture.usecase.Submit(context.Background(), fixture.patientID.Hex(), &requests.SubmitReview{
		SubjectID:   fixture.institutionID.Hex(),
		SubjectType: string(models.ReviewSubjectInstitution),
		Value:       4,
	})
	require.NoError(t, err)

	updated, err := fixture.usecase.Update(context.Background(), review.ID.Hex(), fixture.patientID.Hex(), &requests.UpdateReview{Value: 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, updated.Value)

	subject, err := fixture.accounts.FindByID(context.Background(), fixture.institutionID)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, subject.Rating, 1e-9)
	assert.Equal(t, 1, subject.RatingCount)
}

func TestUpdateReviewRejectsNonOwner(t *testing.T) {
	fixture := newReviewFixture(false)

	review, err := fixture.usecase.Submit(context.Background(), fixture.patientID.Hex(), &requests.SubmitReview{
		SubjectID:   fixture.institutionID.Hex(),
		SubjectType: string(models.ReviewSubjectInstitution),
		Value:       4,
	})
	require.NoError(t, err)

	_, err = fixture.usecase.Update(context.Background(), review.ID.Hex(), primitive.NewObjectID().Hex(), &requests.UpdateReview{Value: 1})
	assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
}

func TestDeleteReview(t *testing.T) {
	fixture := newReviewFixture(false)

	review, err := fixture.usecase.Submit(context.Background(), fixture.patientID.Hex(), &requests.SubmitReview{
		SubjectID:   fixture.institutionID.Hex(),
		SubjectType: string(models.ReviewSubjectInstitution),
		Value:       4,
	})
	require.NoError(t, err)

	require.NoError(t, fixture.usecase.Delete(context.Background(), review.ID.Hex(), fixture.patientID.Hex()))

	// removing the only rating resets the aggregate
	subject, err := fixture.accounts.FindByID(context.Background(), fixture.institutionID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, subject.Rating)
	assert.Equal(t, 0, subject.RatingCount)

	gone, err := fixture.reviews.FindByID(context.Background(), review.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeleteReviewNotFound(t *testing.T) {
	fixture := newReviewFixture(false)

	err := fixture.usecase.Delete(context.Background(), primitive.NewObjectID().Hex(), fixture.patientID.Hex())
	assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
}
