package request

// GuideRequest registers a tour guide.
type GuideRequest struct {
	Name      string   `json:"name" binding:"required"`
	Languages []string `json:"languages"`
	DailyRate float64  `json:"daily_rate" binding:"min=0"`
}

// AssignmentRequest books a guide time-slot for a booking.
type AssignmentRequest struct {
	GuideID   string `json:"guide_id" binding:"required"`
	BookingID string `json:"booking_id" binding:"required"`
	PackageID string `json:"package_id"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// ReassignRequest moves an assignment to another guide.
type ReassignRequest struct {
	NewGuideID string `json:"new_guide_id" binding:"required"`
}

// BlackoutRequest marks a guide unavailable on a date.
type BlackoutRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

// RatingRequest records a tourist's score for a guide.
type RatingRequest struct {
	Score float64 `json:"score" binding:"min=0,max=5"`
}
