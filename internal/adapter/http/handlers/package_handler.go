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
	errInvalidPackagePayload = pkg.NewDomainErrorSimple("INVALID_PACKAGE_INPUT", "Invalid package payload", http.StatusBadRequest)
	errInvalidSeatPayload    = pkg.NewDomainErrorSimple("INVALID_SEAT_INPUT", "Invalid seat payload", http.StatusBadRequest)
)

// PackageHandler handles HTTP requests for travel packages and the seat
// ledger operations over them.

type PackageHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewPackageHandler(uc usecase.IInventoryUseCase) *PackageHandler {
	return &PackageHandler{usecase: uc}
}

func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var payload request.PackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	p, err := h.usecase.RegisterPackage(c.Request.Context(), payload.Name, payload.BasePrice, payload.MaxCapacity)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPackage(p))
}

func (h *PackageHandler) GetPackage(c *gin.Context) {
	p, err := h.usecase.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPackage(p))
}

func (h *PackageHandler) GetAvailability(c *gin.Context) {
	availability, err := h.usecase.Availability(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAvailability(availability))
}

// AdmitSeats reserves seats against the package capacity. It is the only
// admission gate; bookings call the same use case internally.
func (h *PackageHandler) AdmitSeats(c *gin.Context) {
	h.patchSeats(c, h.usecase.Admit)
}

func (h *PackageHandler) ReleaseSeats(c *gin.Context) {
	h.patchSeats(c, h.usecase.Release)
}

func (h *PackageHandler) ActivatePackage(c *gin.Context) {
	h.patchStatus(c, h.usecase.Activate)
}

func (h *PackageHandler) DeactivatePackage(c *gin.Context) {
	h.patchStatus(c, h.usecase.Deactivate)
}

func (h *PackageHandler) patchSeats(
	c *gin.Context,
	mutator func(ctx context.Context, packageID string, count int) (entities.TravelPackage, error),
) {
	var payload request.SeatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSeatPayload.HTTPStatus, errInvalidSeatPayload.ToHTTPError())
		return
	}

	p, err := mutator(c.Request.Context(), c.Param("id"), payload.Seats)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPackage(p))
}

func (h *PackageHandler) patchStatus(
	c *gin.Context,
	mutator func(ctx context.Context, packageID string) (entities.TravelPackage, error),
) {
	p, err := mutator(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPackage(p))
}

func mapPackageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPackageID), errors.Is(err, usecase.ErrInvalidPackage),
		errors.Is(err, usecase.ErrInvalidCapacity), errors.Is(err, usecase.ErrInvalidSeatCount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCapacityExceeded):
		return pkg.NewDomainErrorSimple("CAPACITY_EXCEEDED", "Package capacity exceeded", http.StatusConflict)
	case errors.Is(err, usecase.ErrPackageInactive):
		return pkg.NewDomainErrorSimple("PACKAGE_INACTIVE", "Package is not active", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
