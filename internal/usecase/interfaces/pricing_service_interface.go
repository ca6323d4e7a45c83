package interfaces

import (
	"context"
	"travelops/internal/domain/entities"
)

// IPricingService abstracts the external pricing function that computes a
// booking's total from the package base price and headcount (discount rules
// live behind the implementation, not in the booking lifecycle).

type IPricingService interface {
	TotalAmount(ctx context.Context, p entities.TravelPackage, numberOfPeople int) (float64, error)
}
