package interfaces

import (
	"context"
	"travelops/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	Put(ctx context.Context, b entities.Booking) (entities.Booking, error)
	ListByPackageID(ctx context.Context, packageID string) ([]entities.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
}
