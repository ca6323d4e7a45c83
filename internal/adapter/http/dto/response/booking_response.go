package response

import (
	"time"

	"travelops/internal/domain/entities"
)

type BookingResponse struct {
	ID             string    `json:"id"`
	PackageID      string    `json:"package_id"`
	UserID         string    `json:"user_id"`
	TravelDate     string    `json:"travel_date"`
	NumberOfPeople int       `json:"number_of_people"`
	TotalAmount    float64   `json:"total_amount"`
	Paid           bool      `json:"paid"`
	Status         string    `json:"status"`
	AssignmentID   string    `json:"assignment_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		PackageID:      b.PackageID,
		UserID:         b.UserID,
		TravelDate:     b.TravelDate.Format("2006-01-02"),
		NumberOfPeople: b.NumberOfPeople,
		TotalAmount:    b.TotalAmount,
		Paid:           b.Paid,
		Status:         string(b.Status),
		AssignmentID:   b.AssignmentID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func FromBookings(bs []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBooking(b))
	}
	return out
}
