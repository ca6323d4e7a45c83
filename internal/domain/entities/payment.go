package entities

import "time"

// PaymentMethod is how a booking was originally paid.

type PaymentMethod string

const (
	PaymentMethodCard          PaymentMethod = "card"
	PaymentMethodMobileBanking PaymentMethod = "mobile_banking"
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodCash          PaymentMethod = "cash"
)

// PaymentStatus tracks whether the payment is still held or was refunded.

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment is the completed-payment record consulted when a refund method is
// derived and marked refunded when the refund completes.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id

type Payment struct {
	ID        string        `json:"id"`
	BookingID string        `json:"booking_id"`
	Method    PaymentMethod `json:"method"`
	Amount    float64       `json:"amount"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
