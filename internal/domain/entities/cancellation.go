package entities

import "time"

// CancellationStatus is the review state of a cancellation request.

type CancellationStatus string

const (
	CancellationStatusPending  CancellationStatus = "pending"
	CancellationStatusApproved CancellationStatus = "approved"
	CancellationStatusRejected CancellationStatus = "rejected"
)

// RefundStatus is the refund sub-state-machine, meaningful only once the
// request is approved.

type RefundStatus string

const (
	RefundStatusNotProcessed RefundStatus = "not_processed"
	RefundStatusProcessing   RefundStatus = "processing"
	RefundStatusCompleted    RefundStatus = "completed"
)

// RefundMethod is how an approved refund is disbursed, derived from the
// booking's original payment method.

type RefundMethod string

const (
	RefundMethodOriginalPayment RefundMethod = "original_payment_method"
	RefundMethodMobileBanking   RefundMethod = "mobile_banking"
	RefundMethodBankTransfer    RefundMethod = "bank_transfer"
	RefundMethodCash            RefundMethod = "cash"
)

// CancellationRequest drives the fee computation and refund flow for a
// booking cancellation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
//
// Invariant: RefundAmount = max(0, OriginalAmount - CancellationFee), and the
// fee is computed exactly once, at approval.

type CancellationRequest struct {
	ID               string             `json:"id"`
	BookingID        string             `json:"booking_id"`
	UserID           string             `json:"user_id"`
	Reason           string             `json:"reason"`
	OriginalAmount   float64            `json:"original_amount"`
	DaysBeforeTravel int                `json:"days_before_travel"`
	IsEmergency      bool               `json:"is_emergency"`
	FeePercent       float64            `json:"fee_percent"`
	CancellationFee  float64            `json:"cancellation_fee"`
	RefundAmount     float64            `json:"refund_amount"`
	Status           CancellationStatus `json:"status"`
	RefundStatus     RefundStatus       `json:"refund_status"`
	RefundMethod     RefundMethod       `json:"refund_method,omitempty"`
	ReviewedBy       string             `json:"reviewed_by,omitempty"`
	ReviewNotes      string             `json:"review_notes,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// CancellationFeePercent selects the fee tier by days before travel. An
// emergency cancellation pays a flat 10% regardless of the tier table.
func CancellationFeePercent(daysBeforeTravel int, isEmergency bool) float64 {
	if isEmergency {
		return 0.10
	}
	switch {
	case daysBeforeTravel >= 30:
		return 0.05
	case daysBeforeTravel >= 15:
		return 0.15
	case daysBeforeTravel >= 7:
		return 0.25
	case daysBeforeTravel >= 3:
		return 0.50
	default:
		return 0.75
	}
}

// ApplyFee computes the fee and refund from the request's own amount, days
// and emergency flag. Refunds never go negative.
func (r *CancellationRequest) ApplyFee() {
	r.FeePercent = CancellationFeePercent(r.DaysBeforeTravel, r.IsEmergency)
	r.CancellationFee = r.OriginalAmount * r.FeePercent
	r.RefundAmount = r.OriginalAmount - r.CancellationFee
	if r.RefundAmount < 0 {
		r.RefundAmount = 0
	}
}

// RefundMethodFor maps the original payment method to a disbursement channel.
// Unknown methods fall back to bank transfer.
func RefundMethodFor(m PaymentMethod) RefundMethod {
	switch m {
	case PaymentMethodCard:
		return RefundMethodOriginalPayment
	case PaymentMethodMobileBanking:
		return RefundMethodMobileBanking
	case PaymentMethodBankTransfer:
		return RefundMethodBankTransfer
	case PaymentMethodCash:
		return RefundMethodCash
	default:
		return RefundMethodBankTransfer
	}
}
