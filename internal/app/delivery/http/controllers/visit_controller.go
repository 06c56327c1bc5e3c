package controllers

import (
	"context"
	"net/http"

	"vitacare-service/internal/app/contracts"
	"vitacare-service/internal/pkg/constvars"
	"vitacare-service/internal/pkg/dto/requests"
	"vitacare-service/internal/pkg/exceptions"
	"vitacare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type VisitController struct {
	usecase contracts.VisitUsecase
	log     *zap.Logger
}

func NewVisitController(usecase contracts.VisitUsecase, logger *zap.Logger) *VisitController {
	return &VisitController{usecase: usecase, log: logger}
}

func (c *VisitController) BookVisit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	callerID, err := callerIDFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := &requests.BookVisit{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	visit, err := c.usecase.Book(ctx, callerID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookVisitSuccessMessage, toVisitResponse(visit))
}

func (c *VisitController) CancelVisit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	callerID, err := callerIDFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	visitID := chi.URLParam(r, "visitID")
	visit, err := c.usecase.Cancel(ctx, visitID, callerID)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelVisitSuccessMessage, toVisitResponse(visit))
}

func (c *VisitController) RescheduleVisit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	callerID, err := callerIDFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := &requests.RescheduleVisit{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	visitID := chi.URLParam(r, "visitID")
	visit, err := c.usecase.Reschedule(ctx, visitID, callerID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RescheduleVisitSuccessMessage, toVisitResponse(visit))
}

func (c *VisitController) CompleteVisit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	callerID, err := callerIDFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := &requests.CompleteVisit{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	visitID := chi.URLParam(r, "visitID")
	visit, err := c.usecase.Complete(ctx, visitID, callerID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CompleteVisitSuccessMessage, toVisitResponse(visit))
}
