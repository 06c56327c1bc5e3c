package visits

import (
	"context"
	"fmt"
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

const slotLockKeyPrefix = "lock:slot:"

func slotLockKey(slotID primitive.ObjectID) string {
	return slotLockKeyPrefix + slotID.Hex()
}

const cancellationNoticeTitle = "Visit cancelled"

type VisitUsecase struct {
	visits    contracts.VisitRepository
	slots     contracts.SlotRepository
	accounts  contracts.AccountRepository
	authz     *authz.Evaluator
	locker    contracts.LockerService
	txn       contracts.TransactionManager
	reminders contracts.ReminderScheduler
	notify    contracts.NotificationTransport
	log       *zap.Logger
	lockTTL   time.Duration
}

func NewVisitUsecase(
	visits contracts.VisitRepository,
	slots contracts.SlotRepository,
	accounts contracts.AccountRepository,
	authzEvaluator *authz.Evaluator,
	locker contracts.LockerService,
	txn contracts.TransactionManager,
	reminders contracts.ReminderScheduler,
	notify contracts.NotificationTransport,
	logger *zap.Logger,
	lockTTL time.Duration,
) *VisitUsecase {
	return &VisitUsecase{
		visits:    visits,
		slots:     slots,
		accounts:  accounts,
		authz:     authzEvaluator,
		locker:    locker,
		txn:       txn,
		reminders: reminders,
		notify:    notify,
		log:       logger,
		lockTTL:   lockTTL,
	}
}

// Book creates an upcoming visit on a free slot for the calling patient. The
// slot flip, the visit insert and the reminder insert commit as one unit; the
// conditional flip inside the transaction is what defeats double booking.
func (u *VisitUsecase) Book(ctx context.Context, patientID string, request *requests.BookVisit) (*models.Visit, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	chain := u.authz.Start(patientID, "")
	if err := chain.Check(); err != nil {
		return nil, err
	}

	slotID, _ := primitive.ObjectIDFromHex(request.SlotID)
	slot, err := u.slots.FindByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}
	if slot.Booked {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	patient, err := u.accounts.FindByID(ctx, chain.CallerID())
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrAccountNotFound(nil)
	}
	provider, err := u.accounts.FindByID(ctx, slot.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrAccountNotFound(nil)
	}

	unlock, err := u.lockSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	now := time.Now()
	visit := &models.Visit{
		Patient:     models.PartyDigest{ID: patient.ID, Name: patient.Name},
		Provider:    models.PartyDigest{ID: slot.ProviderID, Name: provider.Name},
		Institution: models.PartyDigest{ID: slot.InstitutionID, Name: slot.InstitutionName},
		SlotID:      slotID,
		Start:       slot.Start,
		End:         slot.End,
		Status:      models.VisitStatusUpcoming,
		Remarks:     request.Remarks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = u.txn.WithTransaction(ctx, func(txCtx context.Context) error {
		visitID, err := u.visits.Insert(txCtx, visit)
		if err != nil {
			return err
		}
		visit.ID = visitID

		flipped, err := u.slots.MarkBooked(txCtx, slotID, visitID)
		if err != nil {
			return err
		}
		if !flipped {
			return exceptions.ErrSlotAlreadyBooked(nil)
		}

		if patient.ReminderOptIn {
			return u.reminders.ScheduleVisitReminder(txCtx, patient.ID, slot.Start)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("VisitUsecase.Book succeeded",
		zap.String(constvars.LoggingVisitIDKey, visit.ID.Hex()),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
		zap.String(constvars.LoggingCallerIDKey, patientID),
	)
	return visit, nil
}

// Cancel closes an upcoming visit and frees its slot. Allowed for the
// visit's patient or for staff of the visit's institution. The patient gets
// a best-effort cancellation notice after commit.
func (u *VisitUsecase) Cancel(ctx context.Context, visitID, callerID string) (*models.Visit, error) {
	visit, err := u.findOpenVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	err = u.authz.Start(callerID, "").
		MatchAnyOf().
		PatientOfVisit(ctx, visit.ID).
		InstitutionStaff(ctx, visit.Institution.ID).
		Check()
	if err != nil {
		return nil, err
	}

	visit.Status = models.VisitStatusCancelled
	visit.UpdatedAt = time.Now()

	err = u.txn.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := u.slots.Release(txCtx, visit.SlotID); err != nil {
			return err
		}
		closed, err := u.visits.UpdateIfUpcoming(txCtx, visit)
		if err != nil {
			return err
		}
		if !closed {
			return exceptions.ErrVisitAlreadyClosed(nil)
		}
		return u.reminders.RemoveVisitReminder(txCtx, visit.Patient.ID, visit.Start)
	})
	if err != nil {
		return nil, err
	}

	content := fmt.Sprintf("Your visit with %s on %s has been cancelled.",
		visit.Provider.Name, visit.Start.Format(time.RFC1123))
	if err := u.notify.Dispatch(ctx, visit.Patient.ID, cancellationNoticeTitle, content); err != nil {
		u.log.Warn("VisitUsecase.Cancel failed to dispatch notice",
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
	}

	u.log.Info("VisitUsecase.Cancel succeeded",
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.String(constvars.LoggingCallerIDKey, callerID),
	)
	return visit, nil
}

// Reschedule moves an upcoming visit onto a different free slot. The visit
// stays upcoming; the slot swap, the digest rewrite and the reminder
// replacement commit together.
func (u *VisitUsecase) Reschedule(ctx context.Context, visitID, callerID string, request *requests.RescheduleVisit) (*models.Visit, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	visit, err := u.findOpenVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	err = u.authz.Start(callerID, "").
		MatchAnyOf().
		PatientOfVisit(ctx, visit.ID).
		InstitutionStaff(ctx, visit.Institution.ID).
		Check()
	if err != nil {
		return nil, err
	}

	newSlotID, _ := primitive.ObjectIDFromHex(request.NewSlotID)
	newSlot, err := u.slots.FindByID(ctx, newSlotID)
	if err != nil {
		return nil, err
	}
	if newSlot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}
	if newSlot.Booked {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	provider, err := u.accounts.FindByID(ctx, newSlot.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrAccountNotFound(nil)
	}
	patient, err := u.accounts.FindByID(ctx, visit.Patient.ID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrAccountNotFound(nil)
	}

	unlock, err := u.lockSlot(ctx, newSlotID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	oldSlotID := visit.SlotID
	oldStart := visit.Start

	visit.SlotID = newSlotID
	visit.Start = newSlot.Start
	visit.End = newSlot.End
	visit.Provider = models.PartyDigest{ID: newSlot.ProviderID, Name: provider.Name}
	visit.Institution = models.PartyDigest{ID: newSlot.InstitutionID, Name: newSlot.InstitutionName}
	visit.UpdatedAt = time.Now()

	err = u.txn.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := u.slots.Release(txCtx, oldSlotID); err != nil {
			return err
		}
		flipped, err := u.slots.MarkBooked(txCtx, newSlotID, visit.ID)
		if err != nil {
			return err
		}
		if !flipped {
			return exceptions.ErrSlotAlreadyBooked(nil)
		}
		// the stored visit must still be upcoming at commit time; a racing
		// cancel or complete aborts the whole swap
		moved, err := u.visits.UpdateIfUpcoming(txCtx, visit)
		if err != nil {
			return err
		}
		if !moved {
			return exceptions.ErrVisitAlreadyClosed(nil)
		}
		if err := u.reminders.RemoveVisitReminder(txCtx, visit.Patient.ID, oldStart); err != nil {
			return err
		}
		if patient.ReminderOptIn {
			return u.reminders.ScheduleVisitReminder(txCtx, visit.Patient.ID, newSlot.Start)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("VisitUsecase.Reschedule succeeded",
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.String(constvars.LoggingSlotIDKey, request.NewSlotID),
		zap.String(constvars.LoggingCallerIDKey, callerID),
	)
	return visit, nil
}

// Complete closes an upcoming visit as done, recording the provider's note
// and any issued codes. Only the visit's provider may complete it.
func (u *VisitUsecase) Complete(ctx context.Context, visitID, callerID string, request *requests.CompleteVisit) (*models.Visit, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	visit, err := u.findOpenVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	err = u.authz.Start(callerID, "").
		ProviderOfVisit(ctx, visit.ID).
		Check()
	if err != nil {
		return nil, err
	}

	for _, code := range request.Codes {
		visit.Codes = append(visit.Codes, models.VisitCode{
			Type:   models.CodeType(code.Type),
			Value:  code.Value,
			Active: true,
		})
	}
	visit.Note = request.Note
	visit.Status = models.VisitStatusCompleted
	visit.UpdatedAt = time.Now()

	completed, err := u.visits.UpdateIfUpcoming(ctx, visit)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, exceptions.ErrVisitAlreadyClosed(nil)
	}

	u.log.Info("VisitUsecase.Complete succeeded",
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.Int("code_count", len(request.Codes)),
	)
	return visit, nil
}

// findOpenVisit loads a visit and rejects terminal ones. Terminal visits
// never transition again, whichever operation is attempted.
func (u *VisitUsecase) findOpenVisit(ctx context.Context, visitID string) (*models.Visit, error) {
	id, err := primitive.ObjectIDFromHex(visitID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	visit, err := u.visits.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, exceptions.ErrVisitNotFound(nil)
	}
	if visit.Status.Closed() {
		return nil, exceptions.ErrVisitAlreadyClosed(nil)
	}
	return visit, nil
}

func (u *VisitUsecase) lockSlot(ctx context.Context, slotID primitive.ObjectID) (func(), error) {
	key := slotLockKey(slotID)
	acquired, lockValue, err := u.locker.TryLock(ctx, key, u.lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrLockNotAcquired(nil)
	}
	return func() {
		if err := u.locker.Unlock(ctx, key, lockValue); err != nil {
			u.log.Warn("VisitUsecase failed to release slot lock",
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}, nil
}
