package response

import (
	"testing"
	"time"

	"travelops/internal/domain/entities"
)

func TestFromBooking(t *testing.T) {
	now := time.Now().UTC()

	b := entities.Booking{
		ID:             "b-1",
		PackageID:      "p-1",
		UserID:         "u-1",
		TravelDate:     time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		NumberOfPeople: 3,
		TotalAmount:    600,
		Paid:           true,
		Status:         entities.BookingStatusConfirmed,
		AssignmentID:   "asg-1",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res := FromBooking(b)
	if res.ID != "b-1" || res.PackageID != "p-1" || res.UserID != "u-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.TravelDate != "2026-10-05" {
		t.Fatalf("unexpected travel date: %s", res.TravelDate)
	}
	if res.NumberOfPeople != 3 || res.TotalAmount != 600 || !res.Paid {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Status != "confirmed" || res.AssignmentID != "asg-1" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", res)
	}
}

func TestFromBookings(t *testing.T) {
	list := FromBookings([]entities.Booking{
		{ID: "b-1", Status: entities.BookingStatusPending},
		{ID: "b-2", Status: entities.BookingStatusCanceled},
	})
	if len(list) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(list))
	}
	if list[0].ID != "b-1" || list[1].Status != "canceled" {
		t.Fatalf("unexpected list: %+v", list)
	}

	if empty := FromBookings(nil); len(empty) != 0 {
		t.Fatalf("expected empty slice, got %+v", empty)
	}
}
