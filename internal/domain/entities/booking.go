package entities

import "time"

// BookingStatus is the booking lifecycle state.
//
// Legal transitions:
//   - pending   -> confirmed (payment succeeded)
//   - confirmed -> completed (tour delivered)
//   - pending|confirmed -> canceled
//
// canceled and completed are terminal.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking ties a customer request to package capacity and, optionally, a
// guide assignment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (package_id-index): package_id
//   - GSI2 (user_id-index): user_id
//
// AssignmentID is a weak reference; the guide calendar owns the assignment.
// A booking only exists if its headcount was admitted against the package.

type Booking struct {
	ID             string        `json:"id"`
	PackageID      string        `json:"package_id"`
	UserID         string        `json:"user_id"`
	TravelDate     time.Time     `json:"travel_date"`
	NumberOfPeople int           `json:"number_of_people"`
	TotalAmount    float64       `json:"total_amount"`
	Paid           bool          `json:"paid"`
	Status         BookingStatus `json:"status"`
	AssignmentID   string        `json:"assignment_id,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (b Booking) IsTerminal() bool {
	return b.Status == BookingStatusCanceled || b.Status == BookingStatusCompleted
}

// CanTransitionTo reports whether the booking may move to the target state.
func (b Booking) CanTransitionTo(target BookingStatus) bool {
	switch target {
	case BookingStatusConfirmed:
		return b.Status == BookingStatusPending
	case BookingStatusCompleted:
		return b.Status == BookingStatusConfirmed
	case BookingStatusCanceled:
		return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
	default:
		return false
	}
}

// DaysBeforeTravel is the calendar-day distance between now and the travel
// date. Same-day travel is 0; past dates are negative.
func DaysBeforeTravel(now, travelDate time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	travel := time.Date(travelDate.Year(), travelDate.Month(), travelDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(travel.Sub(today).Hours() / 24)
}
