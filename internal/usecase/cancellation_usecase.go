package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"travelops/internal/domain/entities"
	"travelops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCancellationNotFound   = errors.New("cancellation request not found")
	ErrInvalidCancellationID  = errors.New("invalid cancellation request id")
	ErrInvalidReason          = errors.New("invalid cancellation reason")
	ErrInvalidApprover        = errors.New("invalid approver")
	ErrRequestNotPending      = errors.New("cancellation request is not pending")
	ErrRequestNotApproved     = errors.New("cancellation request is not approved")
	ErrRefundNotProcessing    = errors.New("refund is not processing")
	ErrBookingAlreadyCanceled = errors.New("booking already canceled")
)

// ICancellationUseCase is the cancellation/refund engine: the request review
// state machine (pending -> approved|rejected), the fee tier computation at
// approval, and the refund sub-state-machine
// (not_processed -> processing -> completed).

type ICancellationUseCase interface {
	Create(ctx context.Context, bookingID, userID, reason string, isEmergency bool) (entities.CancellationRequest, error)
	Approve(ctx context.Context, id, approver string) (entities.CancellationRequest, error)
	Reject(ctx context.Context, id, approver, notes string) (entities.CancellationRequest, error)
	ProcessRefund(ctx context.Context, id string) (entities.CancellationRequest, error)
	CompleteRefund(ctx context.Context, id string) (entities.CancellationRequest, error)
	GetByID(ctx context.Context, id string) (entities.CancellationRequest, error)
}

type CancellationUseCase struct {
	repo     interfaces.ICancellationRepository
	bookings IBookingUseCase
	payments interfaces.IPaymentRepository

	// now is swappable so the fee tier (days before travel) is testable.
	now func() time.Time
}

var _ ICancellationUseCase = (*CancellationUseCase)(nil)

func NewCancellationUseCase(repo interfaces.ICancellationRepository, bookings IBookingUseCase, payments interfaces.IPaymentRepository) *CancellationUseCase {
	return &CancellationUseCase{repo: repo, bookings: bookings, payments: payments, now: time.Now}
}

// Create opens a pending request against a live booking. The original amount
// and days-before-travel are captured here; the fee itself is only computed
// at approval.
func (u *CancellationUseCase) Create(ctx context.Context, bookingID, userID, reason string, isEmergency bool) (entities.CancellationRequest, error) {
	bookingID = strings.TrimSpace(bookingID)
	userID = strings.TrimSpace(userID)
	reason = strings.TrimSpace(reason)
	if bookingID == "" {
		return entities.CancellationRequest{}, ErrInvalidBookingID
	}
	if userID == "" {
		return entities.CancellationRequest{}, ErrInvalidUserID
	}
	if reason == "" {
		return entities.CancellationRequest{}, ErrInvalidReason
	}

	booking, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.CancellationRequest{}, err
	}
	if booking.Status == entities.BookingStatusCanceled {
		return entities.CancellationRequest{}, ErrBookingAlreadyCanceled
	}
	if booking.Status == entities.BookingStatusCompleted {
		return entities.CancellationRequest{}, ErrInvalidTransition
	}

	now := u.now().UTC()
	r := entities.CancellationRequest{
		ID:               uuid.NewString(),
		BookingID:        booking.ID,
		UserID:           userID,
		Reason:           reason,
		OriginalAmount:   booking.TotalAmount,
		DaysBeforeTravel: entities.DaysBeforeTravel(now, booking.TravelDate),
		IsEmergency:      isEmergency,
		Status:           entities.CancellationStatusPending,
		RefundStatus:     entities.RefundStatusNotProcessed,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.CancellationRequest{}, err
	}
	log.Printf("[cancellation][usecase] create success request_id=%s booking_id=%s days_before_travel=%d emergency=%v", created.ID, created.BookingID, created.DaysBeforeTravel, created.IsEmergency)
	return created, nil
}

// Approve computes the fee exactly once (tier table, or flat 10% for an
// emergency), derives the refund amount and then drives the booking
// lifecycle's cancel so capacity and any guide slot are released.
func (u *CancellationUseCase) Approve(ctx context.Context, id, approver string) (entities.CancellationRequest, error) {
	approver = strings.TrimSpace(approver)
	if approver == "" {
		return entities.CancellationRequest{}, ErrInvalidApprover
	}

	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CancellationRequest{}, err
	}
	if r.Status != entities.CancellationStatusPending {
		return entities.CancellationRequest{}, ErrRequestNotPending
	}

	r.Status = entities.CancellationStatusApproved
	r.ReviewedBy = approver
	r.ApplyFee()
	r.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Put(ctx, r)
	if err != nil {
		return entities.CancellationRequest{}, err
	}

	if _, err := u.bookings.Cancel(ctx, r.BookingID); err != nil && !errors.Is(err, ErrInvalidTransition) {
		log.Printf("[cancellation][usecase] booking cancel failed request_id=%s booking_id=%s err=%v", r.ID, r.BookingID, err)
	}
	log.Printf("[cancellation][usecase] approve success request_id=%s fee_percent=%.2f fee=%.2f refund=%.2f", updated.ID, updated.FeePercent, updated.CancellationFee, updated.RefundAmount)
	return updated, nil
}

// Reject closes the request with no refund. Terminal.
func (u *CancellationUseCase) Reject(ctx context.Context, id, approver, notes string) (entities.CancellationRequest, error) {
	approver = strings.TrimSpace(approver)
	if approver == "" {
		return entities.CancellationRequest{}, ErrInvalidApprover
	}

	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CancellationRequest{}, err
	}
	if r.Status != entities.CancellationStatusPending {
		return entities.CancellationRequest{}, ErrRequestNotPending
	}

	r.Status = entities.CancellationStatusRejected
	r.ReviewedBy = approver
	r.ReviewNotes = notes
	r.RefundAmount = 0
	r.UpdatedAt = u.now().UTC()
	return u.repo.Put(ctx, r)
}

// ProcessRefund moves the refund to processing and records the disbursement
// method derived from the booking's completed payment. A booking with no
// completed payment falls back to bank transfer.
func (u *CancellationUseCase) ProcessRefund(ctx context.Context, id string) (entities.CancellationRequest, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CancellationRequest{}, err
	}
	if r.Status != entities.CancellationStatusApproved {
		return entities.CancellationRequest{}, ErrRequestNotApproved
	}
	if r.RefundStatus != entities.RefundStatusNotProcessed {
		return entities.CancellationRequest{}, ErrInvalidTransition
	}

	method := entities.RefundMethodBankTransfer
	payment, err := u.payments.FindCompletedByBookingID(ctx, r.BookingID)
	if err != nil {
		return entities.CancellationRequest{}, err
	}
	if payment.ID != "" {
		method = entities.RefundMethodFor(payment.Method)
	} else {
		log.Printf("[cancellation][usecase] no completed payment booking_id=%s; refund defaults to bank transfer", r.BookingID)
	}

	r.RefundStatus = entities.RefundStatusProcessing
	r.RefundMethod = method
	r.UpdatedAt = u.now().UTC()
	updated, err := u.repo.Put(ctx, r)
	if err != nil {
		return entities.CancellationRequest{}, err
	}
	log.Printf("[cancellation][usecase] refund processing request_id=%s method=%s amount=%.2f", updated.ID, updated.RefundMethod, updated.RefundAmount)
	return updated, nil
}

// CompleteRefund finishes the refund and marks the original payment
// refunded. Calling it on an already-completed refund is a successful no-op.
func (u *CancellationUseCase) CompleteRefund(ctx context.Context, id string) (entities.CancellationRequest, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CancellationRequest{}, err
	}
	if r.RefundStatus == entities.RefundStatusCompleted {
		return r, nil
	}
	if r.Status != entities.CancellationStatusApproved || r.RefundStatus != entities.RefundStatusProcessing {
		return entities.CancellationRequest{}, ErrRefundNotProcessing
	}

	r.RefundStatus = entities.RefundStatusCompleted
	r.UpdatedAt = u.now().UTC()
	updated, err := u.repo.Put(ctx, r)
	if err != nil {
		return entities.CancellationRequest{}, err
	}

	payment, err := u.payments.FindCompletedByBookingID(ctx, r.BookingID)
	if err == nil && payment.ID != "" {
		if _, err := u.payments.UpdateStatus(ctx, payment.ID, entities.PaymentStatusRefunded); err != nil {
			log.Printf("[cancellation][usecase] payment refund mark failed payment_id=%s err=%v", payment.ID, err)
		}
	}
	log.Printf("[cancellation][usecase] refund completed request_id=%s refund=%.2f", updated.ID, updated.RefundAmount)
	return updated, nil
}

func (u *CancellationUseCase) GetByID(ctx context.Context, id string) (entities.CancellationRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CancellationRequest{}, ErrInvalidCancellationID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CancellationRequest{}, err
	}
	if r.ID == "" {
		return entities.CancellationRequest{}, ErrCancellationNotFound
	}
	return r, nil
}
