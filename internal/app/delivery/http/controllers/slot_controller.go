package controllers

import (
	"context"
	"net/http"
	"time"

	"vitacare-service/internal/app/contracts"
	"vitacare-service/internal/pkg/constvars"
	"vitacare-service/internal/pkg/dto/requests"
	"vitacare-service/internal/pkg/exceptions"
	"vitacare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SlotController struct {
	usecase contracts.SlotUsecase
	log     *zap.Logger
}

func NewSlotController(usecase contracts.SlotUsecase, logger *zap.Logger) *SlotController {
	return &SlotController{usecase: usecase, log: logger}
}

func (c *SlotController) CreateSlot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	callerID, err := callerIDFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := &requests.CreateSlot{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	slot, err := c.usecase.AddSlot(ctx, callerID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSlotSuccessMessage, toSlotResponse(slot))
}

func (c *SlotController) CreateRecurringSlots(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	callerID, err := callerIDFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := &requests.CreateRecurringSlots{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	slots, err := c.usecase.AddRecurringSlots(ctx, callerID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateRecurringSlotSuccessMessage, toSlotResponses(slots))
}

func (c *SlotController) RetimeSlotRange(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	callerID, err := callerIDFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := &requests.RetimeSlotRange{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	slots, err := c.usecase.RetimeSlotRange(ctx, callerID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RetimeSlotRangeSuccessMessage, toSlotResponses(slots))
}

// GetSlots lists a provider's slots for one calendar day. The day query
// parameter is a date in 2006-01-02 form, interpreted in the server timezone.
func (c *SlotController) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	providerID := r.URL.Query().Get("provider_id")
	rawDay := r.URL.Query().Get("day")
	if rawDay == "" {
		utils.BuildErrorResponse(c.log, w, exceptions.ErrMissingTimeRange(nil))
		return
	}
	day, err := time.ParseInLocation("2006-01-02", rawDay, time.Local)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, exceptions.ErrCannotParseTime(err))
		return
	}

	slots, err := c.usecase.FindForProviderOnDay(ctx, providerID, day)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotsSuccessMessage, toSlotResponses(slots))
}
