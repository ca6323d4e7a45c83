package handlers

import (
	"context"
	"errors"
	"net/http"

	request "travelops/internal/adapter/http/dto/request"
	response "travelops/internal/adapter/http/dto/response"
	"travelops/internal/domain/entities"
	"travelops/internal/usecase"
	"travelops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidGuidePayload      = pkg.NewDomainErrorSimple("INVALID_GUIDE_INPUT", "Invalid guide payload", http.StatusBadRequest)
	errInvalidAssignmentPayload = pkg.NewDomainErrorSimple("INVALID_ASSIGNMENT_INPUT", "Invalid assignment payload", http.StatusBadRequest)
)

// ScheduleHandler handles HTTP requests for guides, their calendars and the
// assignment lifecycle.

type ScheduleHandler struct {
	usecase usecase.IScheduleUseCase
}

func NewScheduleHandler(uc usecase.IScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{usecase: uc}
}

func (h *ScheduleHandler) RegisterGuide(c *gin.Context) {
	var payload request.GuideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGuidePayload.HTTPStatus, errInvalidGuidePayload.ToHTTPError())
		return
	}

	guide, err := h.usecase.RegisterGuide(c.Request.Context(), payload.Name, payload.Languages, payload.DailyRate)
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromGuide(guide))
}

func (h *ScheduleHandler) GetGuide(c *gin.Context) {
	guide, err := h.usecase.GetGuide(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGuide(guide))
}

// FindBestGuide picks the highest-rated guide free on the date, optionally
// filtered by language (query params "language" and "date").
func (h *ScheduleHandler) FindBestGuide(c *gin.Context) {
	guide, err := h.usecase.FindBestGuide(c.Request.Context(), c.Query("language"), c.Query("date"))
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGuide(guide))
}

func (h *ScheduleHandler) RateGuide(c *gin.Context) {
	var payload request.RatingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGuidePayload.HTTPStatus, errInvalidGuidePayload.ToHTTPError())
		return
	}

	guide, err := h.usecase.RateGuide(c.Request.Context(), c.Param("id"), payload.Score)
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGuide(guide))
}

func (h *ScheduleHandler) GetEarnings(c *gin.Context) {
	earnings, err := h.usecase.Earnings(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEarnings(earnings))
}

// MarkUnavailable blacks out a guide's date; any open assignments on that
// date are cancelled and the count is reported back.
func (h *ScheduleHandler) MarkUnavailable(c *gin.Context) {
	var payload request.BlackoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGuidePayload.HTTPStatus, errInvalidGuidePayload.ToHTTPError())
		return
	}

	cancelled, err := h.usecase.MarkUnavailable(c.Request.Context(), c.Param("id"), payload.Date, payload.Reason)
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BlackoutResponse{
		GuideID:              c.Param("id"),
		Date:                 payload.Date,
		CancelledAssignments: cancelled,
	})
}

func (h *ScheduleHandler) CreateAssignment(c *gin.Context) {
	var payload request.AssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssignmentPayload.HTTPStatus, errInvalidAssignmentPayload.ToHTTPError())
		return
	}

	assignment, err := h.usecase.Assign(c.Request.Context(), usecase.AssignGuideCommand{
		GuideID:   payload.GuideID,
		BookingID: payload.BookingID,
		PackageID: payload.PackageID,
		Date:      payload.Date,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
	})
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAssignment(assignment))
}

func (h *ScheduleHandler) DeleteAssignment(c *gin.Context) {
	if err := h.usecase.Unassign(c.Request.Context(), c.Param("id"), c.Param("assignmentId")); err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) ConfirmAssignment(c *gin.Context) {
	h.patchAssignmentStatus(c, h.usecase.ConfirmAssignment)
}

func (h *ScheduleHandler) StartAssignment(c *gin.Context) {
	h.patchAssignmentStatus(c, h.usecase.StartAssignment)
}

func (h *ScheduleHandler) CompleteAssignment(c *gin.Context) {
	h.patchAssignmentStatus(c, h.usecase.CompleteAssignment)
}

func (h *ScheduleHandler) ReassignAssignment(c *gin.Context) {
	var payload request.ReassignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssignmentPayload.HTTPStatus, errInvalidAssignmentPayload.ToHTTPError())
		return
	}

	assignment, err := h.usecase.Reassign(c.Request.Context(), c.Param("id"), c.Param("assignmentId"), payload.NewGuideID)
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssignment(assignment))
}

func (h *ScheduleHandler) patchAssignmentStatus(
	c *gin.Context,
	updater func(ctx context.Context, guideID, assignmentID string) (entities.Assignment, error),
) {
	assignment, err := updater(c.Request.Context(), c.Param("id"), c.Param("assignmentId"))
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssignment(assignment))
}

func mapScheduleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGuideID), errors.Is(err, usecase.ErrInvalidGuide),
		errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidTimeWindow), errors.Is(err, usecase.ErrInvalidRating):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGuideNotFound):
		return pkg.NewDomainErrorSimple("GUIDE_NOT_FOUND", "Guide not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_NOT_FOUND", "Assignment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoGuideAvailable):
		return pkg.NewDomainErrorSimple("NO_GUIDE_AVAILABLE", "No guide available for the criteria", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGuideUnavailable):
		return pkg.NewDomainErrorSimple("GUIDE_UNAVAILABLE", "Guide is not available", http.StatusConflict)
	case errors.Is(err, usecase.ErrSlotConflict):
		return pkg.NewDomainErrorSimple("SLOT_CONFLICT", "Time slot conflicts with the guide schedule", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidAssignmentState), errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Assignment cannot change to this status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
