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

type ReviewController struct {
	usecase contracts.ReviewUsecase
	log     *zap.Logger
}

func NewReviewController(usecase contracts.ReviewUsecase, logger *zap.Logger) *ReviewController {
	return &ReviewController{usecase: usecase, log: logger}
}

func (c *ReviewController) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	callerID, err := callerIDFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := &requests.SubmitReview{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	review, err := c.usecase.Submit(ctx, callerID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitReviewSuccessMessage, toReviewResponse(review))
}

func (c *ReviewController) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	callerID, err := callerIDFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := &requests.UpdateReview{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	reviewID := chi.URLParam(r, "reviewID")
	review, err := c.usecase.Update(ctx, reviewID, callerID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateReviewSuccessMessage, toReviewResponse(review))
}

func (c *ReviewController) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	callerID, err := callerIDFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	reviewID := chi.URLParam(r, "reviewID")
	if err := c.usecase.Delete(ctx, reviewID, callerID); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteReviewSuccessMessage, nil)
}
