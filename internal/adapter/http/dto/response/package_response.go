package response

import (
	"time"

	"travelops/internal/domain/entities"
	"travelops/internal/usecase"
)

type PackageResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	BasePrice       float64   `json:"base_price"`
	MaxCapacity     int       `json:"max_capacity"`
	CurrentBookings int       `json:"current_bookings"`
	AvailableSlots  int       `json:"available_slots"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromPackage(p entities.TravelPackage) PackageResponse {
	return PackageResponse{
		ID:              p.ID,
		Name:            p.Name,
		BasePrice:       p.BasePrice,
		MaxCapacity:     p.MaxCapacity,
		CurrentBookings: p.CurrentBookings,
		AvailableSlots:  p.AvailableSlots(),
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type AvailabilityResponse struct {
	PackageID      string  `json:"package_id"`
	MaxCapacity    int     `json:"max_capacity"`
	BookedSeats    int     `json:"booked_seats"`
	AvailableSlots int     `json:"available_slots"`
	OccupancyRate  float64 `json:"occupancy_rate"`
	FullyBooked    bool    `json:"fully_booked"`
}

func FromAvailability(a usecase.PackageAvailability) AvailabilityResponse {
	return AvailabilityResponse{
		PackageID:      a.PackageID,
		MaxCapacity:    a.MaxCapacity,
		BookedSeats:    a.BookedSeats,
		AvailableSlots: a.AvailableSlots,
		OccupancyRate:  a.OccupancyRate,
		FullyBooked:    a.FullyBooked,
	}
}
