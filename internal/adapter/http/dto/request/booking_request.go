package request

import (
	"errors"
	"time"
)

var ErrInvalidTravelDate = errors.New("invalid travel date")

// BookingRequest creates a booking. The travel date comes in as a plain
// calendar date.
type BookingRequest struct {
	PackageID      string `json:"package_id" binding:"required"`
	UserID         string `json:"user_id" binding:"required"`
	TravelDate     string `json:"travel_date" binding:"required"`
	NumberOfPeople int    `json:"number_of_people" binding:"required"`
}

func (r BookingRequest) ResolveTravelDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", r.TravelDate)
	if err != nil {
		return time.Time{}, ErrInvalidTravelDate
	}
	return t, nil
}
