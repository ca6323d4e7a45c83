package interfaces

import (
	"context"
	"travelops/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment. The refund
// engine only ever needs the completed payment behind a booking, plus the
// ability to flip it to refunded.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	FindCompletedByBookingID(ctx context.Context, bookingID string) (entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error)
}
