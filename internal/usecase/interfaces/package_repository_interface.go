package interfaces

import (
	"context"
	"travelops/internal/domain/entities"
)

// IPackageRepository abstracts DynamoDB persistence for TravelPackage.
//
// Seat-counter mutation goes through ReserveSeats/ReleaseSeats so the storage
// layer can enforce the capacity bound with a conditional write; both return
// an empty entity when the condition fails or the package is missing.

type IPackageRepository interface {
	Create(ctx context.Context, p entities.TravelPackage) (entities.TravelPackage, error)
	GetByID(ctx context.Context, id string) (entities.TravelPackage, error)
	UpdateStatus(ctx context.Context, id string, status entities.PackageStatus) (entities.TravelPackage, error)
	ReserveSeats(ctx context.Context, id string, count int) (entities.TravelPackage, error)
	ReleaseSeats(ctx context.Context, id string, count int) (entities.TravelPackage, error)
}
