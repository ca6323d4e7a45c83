package entities

import "time"

// PackageStatus represents the publication state of a travel package.
//
// Only active packages accept new bookings; inactive packages keep their
// booked seats until every booking is canceled or completed.

type PackageStatus string

const (
	PackageStatusActive   PackageStatus = "active"
	PackageStatusInactive PackageStatus = "inactive"
)

// TravelPackage is the bookable tour product and its seat ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Seat accounting:
//   - CurrentBookings is mutated only through the inventory ledger
//     (admit/release); the invariant 0 <= CurrentBookings <= MaxCapacity
//     must hold after every operation.

type TravelPackage struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	BasePrice       float64       `json:"base_price"`
	MaxCapacity     int           `json:"max_capacity"`
	CurrentBookings int           `json:"current_bookings"`
	Status          PackageStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (p TravelPackage) AvailableSlots() int {
	if p.CurrentBookings >= p.MaxCapacity {
		return 0
	}
	return p.MaxCapacity - p.CurrentBookings
}

func (p TravelPackage) OccupancyRate() float64 {
	if p.MaxCapacity == 0 {
		return 0
	}
	return float64(p.CurrentBookings) / float64(p.MaxCapacity)
}

func (p TravelPackage) IsFullyBooked() bool {
	return p.CurrentBookings >= p.MaxCapacity
}

func (p TravelPackage) IsAvailable() bool {
	return p.Status == PackageStatusActive && !p.IsFullyBooked()
}
