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
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
)

// BookingHandler handles HTTP requests for the booking lifecycle.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	travelDate, err := payload.ResolveTravelDate()
	if err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.Create(c.Request.Context(), usecase.CreateBookingCommand{
		PackageID:      payload.PackageID,
		UserID:         payload.UserID,
		TravelDate:     travelDate,
		NumberOfPeople: payload.NumberOfPeople,
	})
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func (h *BookingHandler) ListBookingsByPackage(c *gin.Context) {
	bookings, err := h.usecase.ListByPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func (h *BookingHandler) ListBookingsByUser(c *gin.Context) {
	bookings, err := h.usecase.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.patchBookingStatus(c, h.usecase.Confirm)
}

func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.patchBookingStatus(c, h.usecase.Complete)
}

// CancelBooking cancels directly, without the cancellation-request review
// flow. Seats and any guide assignment are released by the use case.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.patchBookingStatus(c, h.usecase.Cancel)
}

func (h *BookingHandler) patchBookingStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Booking, error),
) {
	booking, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidPackageID),
		errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidTravelDate),
		errors.Is(err, usecase.ErrInvalidHeadcount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageUnavailable), errors.Is(err, usecase.ErrCapacityExceeded):
		return pkg.NewDomainErrorSimple("PACKAGE_UNAVAILABLE", "Package cannot take this booking", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Booking cannot change to this status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
