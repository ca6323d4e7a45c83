package pricing

import (
	"context"
	"errors"

	"travelops/internal/domain/entities"
	"travelops/internal/usecase/interfaces"
)

var ErrInvalidHeadcount = errors.New("invalid number of people")

// Group bookings of ten or more people get a flat discount on the total.
const (
	groupSizeThreshold = 10
	groupDiscount      = 0.10
)

// BasePriceService prices a booking as base price times headcount, with a
// group discount for large parties.

type BasePriceService struct{}

var _ interfaces.IPricingService = (*BasePriceService)(nil)

func NewBasePriceService() *BasePriceService {
	return &BasePriceService{}
}

func (s *BasePriceService) TotalAmount(_ context.Context, p entities.TravelPackage, numberOfPeople int) (float64, error) {
	if numberOfPeople <= 0 {
		return 0, ErrInvalidHeadcount
	}
	total := p.BasePrice * float64(numberOfPeople)
	if numberOfPeople >= groupSizeThreshold {
		total *= 1 - groupDiscount
	}
	return total, nil
}
