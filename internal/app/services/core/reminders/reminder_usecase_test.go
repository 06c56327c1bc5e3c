package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"vitacare-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memoryNotificationRepository struct {
	notifications map[primitive.ObjectID]models.ReminderNotification
}

func newMemoryNotificationRepository() *memoryNotificationRepository {
	return &memoryNotificationRepository{notifications: make(map[primitive.ObjectID]models.ReminderNotification)}
}

func (m *memoryNotificationRepository) Insert(ctx context.Context, notification *models.ReminderNotification) (primitive.ObjectID, error) {
	stored := *notification
	stored.ID = primitive.NewObjectID()
	m.notifications[stored.ID] = stored
	return stored.ID, nil
}

func (m *memoryNotificationRepository) DeleteSystemGeneratedAt(ctx context.Context, ownerID primitive.ObjectID, fireAt time.Time) error {
	for id, notification := range m.notifications {
		if notification.OwnerID == ownerID && notification.FireAt.Equal(fireAt) && notification.SystemGenerated {
			delete(m.notifications, id)
		}
	}
	return nil
}

func (m *memoryNotificationRepository) FindPendingOwners(ctx context.Context) ([]primitive.ObjectID, error) {
	seen := make(map[primitive.ObjectID]bool)
	var ownerIDs []primitive.ObjectID
	for _, notification := range m.notifications {
		if !notification.Delivered && !seen[notification.OwnerID] {
			seen[notification.OwnerID] = true
			ownerIDs = append(ownerIDs, notification.OwnerID)
		}
	}
	return ownerIDs, nil
}

func (m *memoryNotificationRepository) FindPendingByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.ReminderNotification, error) {
	var out []models.ReminderNotification
	for _, notification := range m.notifications {
		if notification.OwnerID == ownerID && !notification.Delivered {
			out = append(out, notification)
		}
	}
	return out, nil
}

func (m *memoryNotificationRepository) MarkDelivered(ctx context.Context, notificationID primitive.ObjectID) error {
	notification, ok := m.notifications[notificationID]
	if !ok {
		return nil
	}
	notification.Delivered = true
	m.notifications[notificationID] = notification
	return nil
}

func (m *memoryNotificationRepository) DeleteOlderThan(ctx context.Context, horizon time.Time) (int64, error) {
	var deleted int64
	for id, notification := range m.notifications {
		if notification.FireAt.Before(horizon) {
			delete(m.notifications, id)
			deleted++
		}
	}
	return deleted, nil
}

type recordingTransport struct {
	dispatched []primitive.ObjectID
	failFor    map[primitive.ObjectID]bool
}

func (r *recordingTransport) Dispatch(ctx context.Context, ownerID primitive.ObjectID, title, content string) error {
	if r.failFor[ownerID] {
		return errors.New("transport down")
	}
	r.dispatched = append(r.dispatched, ownerID)
	return nil
}

func newReminderFixture(transport *recordingTransport, now time.Time) (*ReminderUsecase, *memoryNotificationRepository) {
	repo := newMemoryNotificationRepository()
	usecase := NewReminderUsecase(repo, transport, zap.NewNop(), time.UTC, 9, 30, 1)
	usecase.now = func() time.Time { return now }
	return usecase, repo
}

func TestFireTime(t *testing.T) {
	usecase, _ := newReminderFixture(&recordingTransport{}, time.Now())

	visitStart := time.Date(2026, 3, 10, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), usecase.FireTime(visitStart))

	t.Run("visit earlier than the reminder hour still fires the day before", func(t *testing.T) {
		early := time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), usecase.FireTime(early))
	})
}

func TestScheduleAndRemoveVisitReminder(t *testing.T) {
	usecase, repo := newReminderFixture(&recordingTransport{}, time.Now())
	ownerID := primitive.NewObjectID()
	visitStart := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	require.NoError(t, usecase.ScheduleVisitReminder(context.Background(), ownerID, visitStart))
	require.Len(t, repo.notifications, 1)
	for _, notification := range repo.notifications {
		assert.True(t, notification.SystemGenerated)
		assert.False(t, notification.Delivered)
		assert.Equal(t, usecase.FireTime(visitStart), notification.FireAt)
	}

	// a manually created notification at the same instant must survive removal
	manualID, err := repo.Insert(context.Background(), &models.ReminderNotification{
		OwnerID: ownerID,
		Title:   "note to self",
		FireAt:  usecase.FireTime(visitStart),
	})
	require.NoError(t, err)

	require.NoError(t, usecase.RemoveVisitReminder(context.Background(), ownerID, visitStart))
	require.Len(t, repo.notifications, 1)
	_, kept := repo.notifications[manualID]
	assert.True(t, kept)
}

func TestSweepOnceDispatchesDueReminders(t *testing.T) {
	now := time.Date(2026, 3, 9, 9, 0, 30, 0, time.UTC)
	transport := &recordingTransport{}
	usecase, repo := newReminderFixture(transport, now)
	ownerID := primitive.NewObjectID()

	dueID, err := repo.Insert(context.Background(), &models.ReminderNotification{
		OwnerID: ownerID, Title: "due", FireAt: now.Add(-30 * time.Second), SystemGenerated: true,
	})
	require.NoError(t, err)
	futureID, err := repo.Insert(context.Background(), &models.ReminderNotification{
		OwnerID: ownerID, Title: "future", FireAt: now.Add(24 * time.Hour), SystemGenerated: true,
	})
	require.NoError(t, err)

	usecase.SweepOnce(context.Background())

	require.Len(t, transport.dispatched, 1)
	assert.Equal(t, ownerID, transport.dispatched[0])
	assert.True(t, repo.notifications[dueID].Delivered)
	assert.False(t, repo.notifications[futureID].Delivered)
}

func TestSweepOncePrunesPastRetention(t *testing.T) {
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	usecase, repo := newReminderFixture(&recordingTransport{}, now)
	ownerID := primitive.NewObjectID()

	staleID, err := repo.Insert(context.Background(), &models.ReminderNotification{
		OwnerID: ownerID, Title: "stale", FireAt: now.AddDate(0, 0, -31), Delivered: true,
	})
	require.NoError(t, err)
	recentID, err := repo.Insert(context.Background(), &models.ReminderNotification{
		OwnerID: ownerID, Title: "recent", FireAt: now.AddDate(0, 0, -29), Delivered: true,
	})
	require.NoError(t, err)

	usecase.SweepOnce(context.Background())

	_, staleKept := repo.notifications[staleID]
	assert.False(t, staleKept)
	_, recentKept := repo.notifications[recentID]
	assert.True(t, recentKept)
}

func TestSweepOnceIsolatesOwnerFailures(t *testing.T) {
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	brokenOwner := primitive.NewObjectID()
	healthyOwner := primitive.NewObjectID()
	transport := &recordingTransport{failFor: map[primitive.ObjectID]bool{brokenOwner: true}}
	usecase, repo := newReminderFixture(transport, now)

	_, err := repo.Insert(context.Background(), &models.ReminderNotification{
		OwnerID: brokenOwner, Title: "due", FireAt: now, SystemGenerated: true,
	})
	require.NoError(t, err)
	healthyID, err := repo.Insert(context.Background(), &models.ReminderNotification{
		OwnerID: healthyOwner, Title: "due", FireAt: now, SystemGenerated: true,
	})
	require.NoError(t, err)

	usecase.SweepOnce(context.Background())

	require.Len(t, transport.dispatched, 1)
	assert.Equal(t, healthyOwner, transport.dispatched[0])
	assert.True(t, repo.notifications[healthyID].Delivered)
}
