package slots

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

const providerLockKeyPrefix = "lock:provider-slots:"

func providerLockKey(providerID primitive.ObjectID) string {
	return providerLockKeyPrefix + providerID.Hex()
}

type SlotUsecase struct {
	slots    contracts.SlotRepository
	accounts contracts.AccountRepository
	authz    *authz.Evaluator
	locker   contracts.LockerService
	txn      contracts.TransactionManager
	log      *zap.Logger
	lockTTL  time.Duration
}

func NewSlotUsecase(
	slots contracts.SlotRepository,
	accounts contracts.AccountRepository,
	authzEvaluator *authz.Evaluator,
	locker contracts.LockerService,
	txn contracts.TransactionManager,
	logger *zap.Logger,
	lockTTL time.Duration,
) *SlotUsecase {
	return &SlotUsecase{
		slots:    slots,
		accounts: accounts,
		authz:    authzEvaluator,
		locker:   locker,
		txn:      txn,
		log:      logger,
		lockTTL:  lockTTL,
	}
}

// AddSlot publishes one bookable interval for a provider. The caller must be
// the provider themselves or an admin of the institution the slot belongs to.
func (u *SlotUsecase) AddSlot(ctx context.Context, callerID string, request *requests.CreateSlot) (*models.Slot, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !request.Start.Before(request.End) {
		return nil, exceptions.ErrInvalidTimeRange(nil)
	}

	providerID, _ := primitive.ObjectIDFromHex(request.ProviderID)
	institutionID, _ := primitive.ObjectIDFromHex(request.InstitutionID)

	err := u.authz.Start(callerID, request.InstitutionID).
		MatchAnyOf().
		Self(providerID).
		InstitutionAdmin(ctx).
		Check()
	if err != nil {
		return nil, err
	}

	institution, err := u.accounts.FindByID(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	if institution == nil {
		return nil, exceptions.ErrAccountNotFound(nil)
	}

	unlock, err := u.lockProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := u.slots.FindForProviderInRange(ctx, providerID, request.Start, request.End)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if Overlaps(request.Start, request.End, existing[i].Start, existing[i].End) {
			return nil, exceptions.ErrSlotOverlap(nil)
		}
	}

	now := time.Now()
	slot := &models.Slot{
		ProviderID:      providerID,
		InstitutionID:   institutionID,
		InstitutionName: institution.Name,
		Start:           request.Start,
		End:             request.End,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	slotID, err := u.slots.Insert(ctx, slot)
	if err != nil {
		return nil, err
	}
	slot.ID = slotID

	u.log.Info("SlotUsecase.AddSlot succeeded",
		zap.String(constvars.LoggingSlotIDKey, slotID.Hex()),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
		zap.Time("start", request.Start),
		zap.Time("end", request.End),
	)
	return slot, nil
}

// AddRecurringSlots cuts [start, end) into consecutive fixed-length slots and
// publishes all of them, or none. The whole requested span is checked against
// the provider's existing slots before anything is written; a range too short
// to hold a single interval yields an empty result, not an error.
func (u *SlotUsecase) AddRecurringSlots(ctx context.Context, callerID string, request *requests.CreateRecurringSlots) ([]models.Slot, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !request.Start.Before(request.End) {
		return nil, exceptions.ErrInvalidTimeRange(nil)
	}

	providerID, _ := primitive.ObjectIDFromHex(request.ProviderID)
	institutionID, _ := primitive.ObjectIDFromHex(request.InstitutionID)

	err := u.authz.Start(callerID, request.InstitutionID).
		MatchAnyOf().
		Self(providerID).
		InstitutionAdmin(ctx).
		Check()
	if err != nil {
		return nil, err
	}

	intervals := CutIntervals(request.Start, request.End, time.Duration(request.IntervalMinutes)*time.Minute)
	if len(intervals) == 0 {
		return []models.Slot{}, nil
	}

	institution, err := u.accounts.FindByID(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	if institution == nil {
		return nil, exceptions.ErrAccountNotFound(nil)
	}

	unlock, err := u.lockProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := u.slots.FindForProviderInRange(ctx, providerID, request.Start, request.End)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if Overlaps(request.Start, request.End, existing[i].Start, existing[i].End) {
			return nil, exceptions.ErrSlotOverlap(nil)
		}
	}

	now := time.Now()
	newSlots := make([]models.Slot, len(intervals))
	for i, interval := range intervals {
		newSlots[i] = models.Slot{
			ProviderID:      providerID,
			InstitutionID:   institutionID,
			InstitutionName: institution.Name,
			Start:           interval[0],
			End:             interval[1],
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	}
	slotIDs, err := u.slots.InsertMany(ctx, newSlots)
	if err != nil {
		return nil, err
	}
	for i := range slotIDs {
		newSlots[i].ID = slotIDs[i]
	}

	u.log.Info("SlotUsecase.AddRecurringSlots succeeded",
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
		zap.Int("slot_count", len(newSlots)),
	)
	return newSlots, nil
}

// RetimeSlotRange replaces all of the provider's slots intersecting the old
// window with a fresh cut of the new window. The range must belong to a
// single institution and contain no booked slot; deletion and insertion
// happen in one transaction.
func (u *SlotUsecase) RetimeSlotRange(ctx context.Context, callerID string, request *requests.RetimeSlotRange) ([]models.Slot, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !request.OldStart.Before(request.OldEnd) || !request.NewStart.Before(request.NewEnd) {
		return nil, exceptions.ErrInvalidTimeRange(nil)
	}

	providerID, _ := primitive.ObjectIDFromHex(request.ProviderID)
	institutionID, _ := primitive.ObjectIDFromHex(request.InstitutionID)

	err := u.authz.Start(callerID, request.InstitutionID).
		MatchAnyOf().
		Self(providerID).
		InstitutionAdmin(ctx).
		Check()
	if err != nil {
		return nil, err
	}

	intervals := CutIntervals(request.NewStart, request.NewEnd, time.Duration(request.IntervalMinutes)*time.Minute)
	if len(intervals) == 0 {
		return nil, exceptions.ErrInvalidTimeRange(nil)
	}

	unlock, err := u.lockProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := u.slots.FindForProviderInRange(ctx, providerID, request.OldStart, request.OldEnd)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, exceptions.ErrSlotNotFound(nil)
	}

	oldIDs := make([]primitive.ObjectID, 0, len(existing))
	removed := make(map[primitive.ObjectID]struct{}, len(existing))
	institutionName := ""
	for i := range existing {
		if existing[i].InstitutionID != institutionID {
			return nil, exceptions.ErrSlotRangeMixedInstitutions(nil)
		}
		if existing[i].Booked {
			return nil, exceptions.ErrSlotRangeBooked(nil)
		}
		oldIDs = append(oldIDs, existing[i].ID)
		removed[existing[i].ID] = struct{}{}
		institutionName = existing[i].InstitutionName
	}

	// Slots outside the replaced range must not collide with the new cut.
	neighbours, err := u.slots.FindForProviderInRange(ctx, providerID, request.NewStart, request.NewEnd)
	if err != nil {
		return nil, err
	}
	for i := range neighbours {
		if _, gone := removed[neighbours[i].ID]; gone {
			continue
		}
		for _, interval := range intervals {
			if Overlaps(interval[0], interval[1], neighbours[i].Start, neighbours[i].End) {
				return nil, exceptions.ErrSlotOverlap(nil)
			}
		}
	}

	now := time.Now()
	newSlots := make([]models.Slot, len(intervals))
	for i, interval := range intervals {
		newSlots[i] = models.Slot{
			ProviderID:      providerID,
			InstitutionID:   institutionID,
			InstitutionName: institutionName,
			Start:           interval[0],
			End:             interval[1],
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	}

	err = u.txn.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := u.slots.DeleteByIDs(txCtx, oldIDs); err != nil {
			return err
		}
		slotIDs, err := u.slots.InsertMany(txCtx, newSlots)
		if err != nil {
			return err
		}
		for i := range slotIDs {
			newSlots[i].ID = slotIDs[i]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("SlotUsecase.RetimeSlotRange succeeded",
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
		zap.Int("removed_count", len(oldIDs)),
		zap.Int("created_count", len(newSlots)),
	)
	return newSlots, nil
}

// FindForProviderOnDay lists the provider's slots for one calendar day, in
// the day's own timezone. Browsing is open; no authorization chain runs.
func (u *SlotUsecase) FindForProviderOnDay(ctx context.Context, providerID string, day time.Time) ([]models.Slot, error) {
	id, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	from, to := DayBounds(day)
	return u.slots.FindForProviderInRange(ctx, id, from, to)
}

func (u *SlotUsecase) lockProvider(ctx context.Context, providerID primitive.ObjectID) (func(), error) {
	key := providerLockKey(providerID)
	acquired, lockValue, err := u.locker.TryLock(ctx, key, u.lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrLockNotAcquired(nil)
	}
	return func() {
		if err := u.locker.Unlock(ctx, key, lockValue); err != nil {
			u.log.Warn("SlotUsecase failed to release provider lock",
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}, nil
}
