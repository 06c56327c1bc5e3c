package reminders

import (
	"context"
	"fmt"
	"time"

	"vitacare-service/internal/app/contracts"
	"vitacare-service/internal/app/models"
	"vitacare-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const reminderTitle = "Upcoming visit reminder"

// ReminderUsecase derives reminder notifications from visit start times and
// runs the periodic sweep. The fire time is always one calendar day before
// the visit, at a fixed local hour, regardless of the visit's own hour.
type ReminderUsecase struct {
	notifications contracts.NotificationRepository
	notify        contracts.NotificationTransport
	log           *zap.Logger

	location       *time.Location
	hourLocal      int
	retentionDays  int
	dispatchWindow time.Duration

	now func() time.Time
}

func NewReminderUsecase(
	notifications contracts.NotificationRepository,
	notify contracts.NotificationTransport,
	logger *zap.Logger,
	location *time.Location,
	hourLocal int,
	retentionDays int,
	dispatchWindowMinutes int,
) *ReminderUsecase {
	return &ReminderUsecase{
		notifications:  notifications,
		notify:         notify,
		log:            logger,
		location:       location,
		hourLocal:      hourLocal,
		retentionDays:  retentionDays,
		dispatchWindow: time.Duration(dispatchWindowMinutes) * time.Minute,
		now:            time.Now,
	}
}

// FireTime maps a visit start to its reminder instant: the previous calendar
// day at the configured local hour.
func (u *ReminderUsecase) FireTime(visitStart time.Time) time.Time {
	dayBefore := visitStart.In(u.location).AddDate(0, 0, -1)
	return time.Date(dayBefore.Year(), dayBefore.Month(), dayBefore.Day(), u.hourLocal, 0, 0, 0, u.location)
}

func (u *ReminderUsecase) ScheduleVisitReminder(ctx context.Context, ownerID primitive.ObjectID, visitStart time.Time) error {
	fireAt := u.FireTime(visitStart)
	notification := &models.ReminderNotification{
		OwnerID:         ownerID,
		Title:           reminderTitle,
		Content:         fmt.Sprintf("You have a visit scheduled for %s.", visitStart.In(u.location).Format(time.RFC1123)),
		FireAt:          fireAt,
		SystemGenerated: true,
		CreatedAt:       u.now(),
	}
	_, err := u.notifications.Insert(ctx, notification)
	return err
}

// RemoveVisitReminder deletes the system-generated reminder derived from the
// given visit start. Matching is by owner and exact fire time; manually
// created notifications are never touched.
func (u *ReminderUsecase) RemoveVisitReminder(ctx context.Context, ownerID primitive.ObjectID, visitStart time.Time) error {
	return u.notifications.DeleteSystemGeneratedAt(ctx, ownerID, u.FireTime(visitStart))
}

// SweepOnce dispatches every undelivered reminder whose fire time falls
// within the dispatch window around now, then prunes notifications past the
// retention horizon. A failure for one owner never blocks the others.
func (u *ReminderUsecase) SweepOnce(ctx context.Context) {
	now := u.now()
	windowFrom := now.Add(-u.dispatchWindow)
	windowTo := now.Add(u.dispatchWindow)

	ownerIDs, err := u.notifications.FindPendingOwners(ctx)
	if err != nil {
		u.log.Error("ReminderUsecase.SweepOnce failed to list pending owners", zap.Error(err))
		return
	}

	for _, ownerID := range ownerIDs {
		if err := u.sweepOwner(ctx, ownerID, windowFrom, windowTo); err != nil {
			u.log.Warn("ReminderUsecase.SweepOnce skipped owner",
				zap.String(constvars.LoggingOwnerIDKey, ownerID.Hex()),
				zap.Error(err),
			)
		}
	}

	horizon := now.AddDate(0, 0, -u.retentionDays)
	pruned, err := u.notifications.DeleteOlderThan(ctx, horizon)
	if err != nil {
		u.log.Error("ReminderUsecase.SweepOnce failed to prune old notifications", zap.Error(err))
		return
	}
	if pruned > 0 {
		u.log.Info("ReminderUsecase.SweepOnce pruned old notifications", zap.Int64("pruned_count", pruned))
	}
}

func (u *ReminderUsecase) sweepOwner(ctx context.Context, ownerID primitive.ObjectID, windowFrom, windowTo time.Time) error {
	pending, err := u.notifications.FindPendingByOwner(ctx, ownerID)
	if err != nil {
		return err
	}

	for i := range pending {
		fireAt := pending[i].FireAt
		if fireAt.Before(windowFrom) || fireAt.After(windowTo) {
			continue
		}
		if err := u.notify.Dispatch(ctx, ownerID, pending[i].Title, pending[i].Content); err != nil {
			return err
		}
		if err := u.notifications.MarkDelivered(ctx, pending[i].ID); err != nil {
			return err
		}
	}
	return nil
}
