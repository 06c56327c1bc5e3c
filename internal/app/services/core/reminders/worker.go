package reminders

import (
	"context"
	"time"

	"vitacare-service/internal/app/contracts"
	"vitacare-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	sweepLeaderLockKey = "lock:reminder-sweep"
	sweepLeaderLockTTL = 50 * time.Second
	sweepTimeout       = 45 * time.Second
)

// SweepWorker runs the reminder sweep on a cron schedule. Multiple service
// instances may run the worker; a Redis leader lock ensures only one of them
// actually sweeps per tick.
type SweepWorker struct {
	scheduler contracts.ReminderScheduler
	locker    contracts.LockerService
	log       *zap.Logger
	cronSpec  string
	cron      *cron.Cron
}

func NewSweepWorker(scheduler contracts.ReminderScheduler, locker contracts.LockerService, logger *zap.Logger, cronSpec string) *SweepWorker {
	return &SweepWorker{
		scheduler: scheduler,
		locker:    locker,
		log:       logger,
		cronSpec:  cronSpec,
	}
}

func (w *SweepWorker) Start() error {
	w.cron = cron.New()
	if _, err := w.cron.AddFunc(w.cronSpec, w.runSweep); err != nil {
		return err
	}
	w.cron.Start()
	w.log.Info("SweepWorker started", zap.String("cron_spec", w.cronSpec))
	return nil
}

// Stop halts the schedule and waits for an in-flight sweep to finish.
func (w *SweepWorker) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
	w.log.Info("SweepWorker stopped")
}

func (w *SweepWorker) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	acquired, lockValue, err := w.locker.TryLock(ctx, sweepLeaderLockKey, sweepLeaderLockTTL)
	if err != nil {
		w.log.Error("SweepWorker failed to contend for leader lock", zap.Error(err))
		return
	}
	if !acquired {
		// another instance is sweeping this tick
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, sweepLeaderLockKey, lockValue); err != nil {
			w.log.Warn("SweepWorker failed to release leader lock",
				zap.String(constvars.LoggingRedisKey, sweepLeaderLockKey),
				zap.Error(err),
			)
		}
	}()

	refreshDone := make(chan struct{})
	defer close(refreshDone)
	go w.refreshLock(ctx, lockValue, refreshDone)

	w.scheduler.SweepOnce(ctx)
}

// refreshLock keeps the leader lock alive while a long sweep is in flight.
func (w *SweepWorker) refreshLock(ctx context.Context, lockValue string, done <-chan struct{}) {
	ticker := time.NewTicker(sweepLeaderLockTTL / 3)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.locker.Refresh(ctx, sweepLeaderLockKey, lockValue, sweepLeaderLockTTL); err != nil {
				w.log.Warn("SweepWorker failed to refresh leader lock", zap.Error(err))
			}
		}
	}
}
