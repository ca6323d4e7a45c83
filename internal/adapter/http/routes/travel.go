package routes

import (
	"travelops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPackages      = "/packages"
	PathBookings      = "/bookings"
	PathGuides        = "/guides"
	PathAssignments   = "/assignments"
	PathCancellations = "/cancellations"
	PathUsers         = "/users"
)

func addTravelRoutes(
	rg *gin.RouterGroup,
	packageHandler *handlers.PackageHandler,
	bookingHandler *handlers.BookingHandler,
	scheduleHandler *handlers.ScheduleHandler,
	cancellationHandler *handlers.CancellationHandler,
) {
	packages := rg.Group(PathPackages)
	{
		packages.POST("", packageHandler.CreatePackage)
		packages.GET("/:id", packageHandler.GetPackage)
		packages.GET("/:id/availability", packageHandler.GetAvailability)
		packages.GET("/:id/bookings", bookingHandler.ListBookingsByPackage)
		packages.POST("/:id/admit", packageHandler.AdmitSeats)
		packages.POST("/:id/release", packageHandler.ReleaseSeats)
		packages.PATCH("/:id/activate", packageHandler.ActivatePackage)
		packages.PATCH("/:id/deactivate", packageHandler.DeactivatePackage)
	}

	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.PATCH("/:id/confirm", bookingHandler.ConfirmBooking)
		bookings.PATCH("/:id/complete", bookingHandler.CompleteBooking)
		bookings.PATCH("/:id/cancel", bookingHandler.CancelBooking)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("/:id/bookings", bookingHandler.ListBookingsByUser)
	}

	guides := rg.Group(PathGuides)
	{
		guides.POST("", scheduleHandler.RegisterGuide)
		guides.GET("/best", scheduleHandler.FindBestGuide)
		guides.GET("/:id", scheduleHandler.GetGuide)
		guides.GET("/:id/earnings", scheduleHandler.GetEarnings)
		guides.POST("/:id/ratings", scheduleHandler.RateGuide)
		guides.POST("/:id/blackouts", scheduleHandler.MarkUnavailable)
		guides.DELETE("/:id/assignments/:assignmentId", scheduleHandler.DeleteAssignment)
		guides.PATCH("/:id/assignments/:assignmentId/confirm", scheduleHandler.ConfirmAssignment)
		guides.PATCH("/:id/assignments/:assignmentId/start", scheduleHandler.StartAssignment)
		guides.PATCH("/:id/assignments/:assignmentId/complete", scheduleHandler.CompleteAssignment)
		guides.PATCH("/:id/assignments/:assignmentId/reassign", scheduleHandler.ReassignAssignment)
	}

	assignments := rg.Group(PathAssignments)
	{
		assignments.POST("", scheduleHandler.CreateAssignment)
	}

	cancellations := rg.Group(PathCancellations)
	{
		cancellations.POST("", cancellationHandler.CreateCancellation)
		cancellations.GET("/:id", cancellationHandler.GetCancellation)
		cancellations.PATCH("/:id/approve", cancellationHandler.ApproveCancellation)
		cancellations.PATCH("/:id/reject", cancellationHandler.RejectCancellation)
		cancellations.PATCH("/:id/refund/process", cancellationHandler.ProcessRefund)
		cancellations.PATCH("/:id/refund/complete", cancellationHandler.CompleteRefund)
	}
}
