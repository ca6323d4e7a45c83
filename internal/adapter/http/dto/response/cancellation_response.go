package response

import (
	"time"

	"travelops/internal/domain/entities"
)

type CancellationResponse struct {
	ID               string    `json:"id"`
	BookingID        string    `json:"booking_id"`
	UserID           string    `json:"user_id"`
	Reason           string    `json:"reason"`
	OriginalAmount   float64   `json:"original_amount"`
	DaysBeforeTravel int       `json:"days_before_travel"`
	IsEmergency      bool      `json:"is_emergency"`
	FeePercent       float64   `json:"fee_percent"`
	CancellationFee  float64   `json:"cancellation_fee"`
	RefundAmount     float64   `json:"refund_amount"`
	Status           string    `json:"status"`
	RefundStatus     string    `json:"refund_status"`
	RefundMethod     string    `json:"refund_method,omitempty"`
	ReviewedBy       string    `json:"reviewed_by,omitempty"`
	ReviewNotes      string    `json:"review_notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromCancellation(r entities.CancellationRequest) CancellationResponse {
	return CancellationResponse{
		ID:               r.ID,
		BookingID:        r.BookingID,
		UserID:           r.UserID,
		Reason:           r.Reason,
		OriginalAmount:   r.OriginalAmount,
		DaysBeforeTravel: r.DaysBeforeTravel,
		IsEmergency:      r.IsEmergency,
		FeePercent:       r.FeePercent,
		CancellationFee:  r.CancellationFee,
		RefundAmount:     r.RefundAmount,
		Status:           string(r.Status),
		RefundStatus:     string(r.RefundStatus),
		RefundMethod:     string(r.RefundMethod),
		ReviewedBy:       r.ReviewedBy,
		ReviewNotes:      r.ReviewNotes,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
