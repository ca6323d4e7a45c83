package response

import (
	"time"

	"travelops/internal/domain/entities"
	"travelops/internal/usecase"
)

type GuideResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Languages     []string  `json:"languages"`
	Rating        float64   `json:"rating"`
	RatingCount   int       `json:"rating_count"`
	DailyRate     float64   `json:"daily_rate"`
	Available     bool      `json:"available"`
	AssignedTours []string  `json:"assigned_tours,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromGuide(g entities.GuideProfile) GuideResponse {
	return GuideResponse{
		ID:            g.ID,
		Name:          g.Name,
		Languages:     g.Languages,
		Rating:        g.Rating,
		RatingCount:   g.RatingCount,
		DailyRate:     g.DailyRate,
		Available:     g.Available,
		AssignedTours: g.AssignedTours,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

type AssignmentResponse struct {
	ID           string    `json:"id"`
	GuideID      string    `json:"guide_id"`
	BookingID    string    `json:"booking_id"`
	PackageID    string    `json:"package_id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Rate         float64   `json:"rate"`
	Status       string    `json:"status"`
	CancelReason string    `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromAssignment(a entities.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:           a.ID,
		GuideID:      a.GuideID,
		BookingID:    a.BookingID,
		PackageID:    a.PackageID,
		Date:         a.Date,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		Rate:         a.Rate,
		Status:       string(a.Status),
		CancelReason: a.CancelReason,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

type EarningsResponse struct {
	GuideID        string  `json:"guide_id"`
	CompletedTours int     `json:"completed_tours"`
	Total          float64 `json:"total"`
}

func FromEarnings(e usecase.GuideEarnings) EarningsResponse {
	return EarningsResponse{
		GuideID:        e.GuideID,
		CompletedTours: e.CompletedTours,
		Total:          e.Total,
	}
}

type BlackoutResponse struct {
	GuideID              string `json:"guide_id"`
	Date                 string `json:"date"`
	CancelledAssignments int    `json:"cancelled_assignments"`
}
