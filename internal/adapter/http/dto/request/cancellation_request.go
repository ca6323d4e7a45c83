package request

// CancellationRequest opens a cancellation request for a booking.
type CancellationRequest struct {
	BookingID   string `json:"booking_id" binding:"required"`
	UserID      string `json:"user_id" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	IsEmergency bool   `json:"is_emergency"`
}

// ReviewRequest approves or rejects a pending cancellation request.
type ReviewRequest struct {
	ReviewedBy string `json:"reviewed_by" binding:"required"`
	Notes      string `json:"notes"`
}
