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
	errInvalidCancellationPayload = pkg.NewDomainErrorSimple("INVALID_CANCELLATION_INPUT", "Invalid cancellation payload", http.StatusBadRequest)
)

// CancellationHandler handles HTTP requests for cancellation requests, their
// review and the refund flow.

type CancellationHandler struct {
	usecase usecase.ICancellationUseCase
}

func NewCancellationHandler(uc usecase.ICancellationUseCase) *CancellationHandler {
	return &CancellationHandler{usecase: uc}
}

func (h *CancellationHandler) CreateCancellation(c *gin.Context) {
	var payload request.CancellationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCancellationPayload.HTTPStatus, errInvalidCancellationPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.Create(c.Request.Context(), payload.BookingID, payload.UserID, payload.Reason, payload.IsEmergency)
	if err != nil {
		appErr := mapCancellationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCancellation(req))
}

func (h *CancellationHandler) GetCancellation(c *gin.Context) {
	req, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCancellationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCancellation(req))
}

// ApproveCancellation computes the fee tier, cancels the booking and releases
// its seats.
func (h *CancellationHandler) ApproveCancellation(c *gin.Context) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCancellationPayload.HTTPStatus, errInvalidCancellationPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), payload.ReviewedBy)
	if err != nil {
		appErr := mapCancellationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCancellation(req))
}

func (h *CancellationHandler) RejectCancellation(c *gin.Context) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCancellationPayload.HTTPStatus, errInvalidCancellationPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.ReviewedBy, payload.Notes)
	if err != nil {
		appErr := mapCancellationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCancellation(req))
}

func (h *CancellationHandler) ProcessRefund(c *gin.Context) {
	h.patchRefundStatus(c, h.usecase.ProcessRefund)
}

func (h *CancellationHandler) CompleteRefund(c *gin.Context) {
	h.patchRefundStatus(c, h.usecase.CompleteRefund)
}

func (h *CancellationHandler) patchRefundStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.CancellationRequest, error),
) {
	req, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCancellationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCancellation(req))
}

func mapCancellationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCancellationID), errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidReason),
		errors.Is(err, usecase.ErrInvalidApprover):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCancellationNotFound):
		return pkg.NewDomainErrorSimple("CANCELLATION_NOT_FOUND", "Cancellation request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingAlreadyCanceled):
		return pkg.NewDomainErrorSimple("BOOKING_ALREADY_CANCELED", "Booking is already canceled", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestNotPending):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_PENDING", "Cancellation request already reviewed", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestNotApproved):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_APPROVED", "Cancellation request is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrRefundNotProcessing):
		return pkg.NewDomainErrorSimple("REFUND_NOT_PROCESSING", "Refund is not processing", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Refund cannot change to this status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
