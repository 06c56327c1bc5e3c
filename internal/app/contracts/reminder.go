package contracts

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReminderScheduler derives reminder notifications from visits and owns the
// periodic sweep that delivers due reminders and prunes stale ones.
type ReminderScheduler interface {
	// ScheduleVisitReminder stores a pending system-generated reminder fired
	// one calendar day before the visit start at the configured local hour.
	ScheduleVisitReminder(ctx context.Context, ownerID primitive.ObjectID, visitStart time.Time) error
	// RemoveVisitReminder deletes the pending system-generated reminder that
	// was derived from the given visit start, matched by fire time.
	RemoveVisitReminder(ctx context.Context, ownerID primitive.ObjectID, visitStart time.Time) error
	// SweepOnce dispatches due reminders and prunes anything older than the
	// retention horizon. Per-owner failures are logged and skipped.
	SweepOnce(ctx context.Context)
}
