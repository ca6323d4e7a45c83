package interfaces

import (
	"context"
	"travelops/internal/domain/entities"
)

// ICancellationRepository abstracts DynamoDB persistence for
// CancellationRequest.

type ICancellationRepository interface {
	Create(ctx context.Context, r entities.CancellationRequest) (entities.CancellationRequest, error)
	GetByID(ctx context.Context, id string) (entities.CancellationRequest, error)
	Put(ctx context.Context, r entities.CancellationRequest) (entities.CancellationRequest, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.CancellationRequest, error)
}
