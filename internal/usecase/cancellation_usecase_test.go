package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"travelops/internal/domain/entities"
	mock_interfaces "travelops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var refundNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// fakeCancellationStore backs the mock repository with a map so the review
// and refund flows can be driven end to end.
type fakeCancellationStore struct {
	mu       sync.Mutex
	requests map[string]entities.CancellationRequest
}

func newCancellationRepo(t *testing.T, ctrl *gomock.Controller) (*mock_interfaces.MockICancellationRepository, *fakeCancellationStore) {
	t.Helper()
	store := &fakeCancellationStore{requests: map[string]entities.CancellationRequest{}}
	repo := mock_interfaces.NewMockICancellationRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, r entities.CancellationRequest) (entities.CancellationRequest, error) {
			store.mu.Lock()
			defer store.mu.Unlock()
			store.requests[r.ID] = r
			return r, nil
		})
	repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, id string) (entities.CancellationRequest, error) {
			store.mu.Lock()
			defer store.mu.Unlock()
			return store.requests[id], nil
		})
	repo.EXPECT().Put(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, r entities.CancellationRequest) (entities.CancellationRequest, error) {
			store.mu.Lock()
			defer store.mu.Unlock()
			store.requests[r.ID] = r
			return r, nil
		})
	return repo, store
}

type cancellationFixture struct {
	uc     *CancellationUseCase
	store  *fakeCancellationStore
	ledger *fakeSeatLedger
	books  *fakeBookingStore
	pay    *mock_interfaces.MockIPaymentRepository
}

func newCancellationFixture(t *testing.T, ctrl *gomock.Controller, booking entities.Booking) *cancellationFixture {
	t.Helper()
	pkgRepo, ledger := newLedgerRepo(t, ctrl, entities.TravelPackage{
		ID: booking.PackageID, Status: entities.PackageStatusActive,
		MaxCapacity: 10, CurrentBookings: booking.NumberOfPeople,
	})
	bookRepo, books := newBookingRepo(t, ctrl, booking)
	bookings := NewBookingUseCase(bookRepo, NewInventoryUseCase(pkgRepo), nil, nil)

	cancRepo, store := newCancellationRepo(t, ctrl)
	pay := mock_interfaces.NewMockIPaymentRepository(ctrl)

	uc := NewCancellationUseCase(cancRepo, bookings, pay)
	uc.now = func() time.Time { return refundNow }
	return &cancellationFixture{uc: uc, store: store, ledger: ledger, books: books, pay: pay}
}

func confirmedBooking(travelDate time.Time) entities.Booking {
	return entities.Booking{
		ID: "b-1", PackageID: "pkg-1", UserID: "u-1",
		TravelDate: travelDate, NumberOfPeople: 2, TotalAmount: 1000,
		Paid: true, Status: entities.BookingStatusConfirmed,
	}
}

func TestCancellationUseCase_Create(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewCancellationUseCase(nil, nil, nil)
		if _, err := uc.Create(context.Background(), " ", "u-1", "sick", false); !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "b-1", "", "sick", false); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "b-1", "u-1", "  ", false); !errors.Is(err, ErrInvalidReason) {
			t.Fatalf("expected ErrInvalidReason, got %v", err)
		}
	})

	t.Run("captures amount and days before travel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCancellationFixture(t, ctrl, confirmedBooking(refundNow.AddDate(0, 0, 20)))

		r, err := f.uc.Create(context.Background(), "b-1", "u-1", "change of plans", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.CancellationStatusPending {
			t.Fatalf("expected pending, got %s", r.Status)
		}
		if r.RefundStatus != entities.RefundStatusNotProcessed {
			t.Fatalf("expected not_processed, got %s", r.RefundStatus)
		}
		if r.OriginalAmount != 1000 {
			t.Fatalf("expected original 1000, got %f", r.OriginalAmount)
		}
		if r.DaysBeforeTravel != 20 {
			t.Fatalf("expected 20 days, got %d", r.DaysBeforeTravel)
		}
		if r.CancellationFee != 0 || r.RefundAmount != 0 {
			t.Fatalf("fee must not be computed before approval: %+v", r)
		}
	})

	t.Run("canceled booking rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b := confirmedBooking(refundNow.AddDate(0, 0, 20))
		b.Status = entities.BookingStatusCanceled
		f := newCancellationFixture(t, ctrl, b)

		if _, err := f.uc.Create(context.Background(), "b-1", "u-1", "sick", false); !errors.Is(err, ErrBookingAlreadyCanceled) {
			t.Fatalf("expected ErrBookingAlreadyCanceled, got %v", err)
		}
	})

	t.Run("completed booking rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b := confirmedBooking(refundNow.AddDate(0, 0, 20))
		b.Status = entities.BookingStatusCompleted
		f := newCancellationFixture(t, ctrl, b)

		if _, err := f.uc.Create(context.Background(), "b-1", "u-1", "sick", false); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestCancellationUseCase_Approve(t *testing.T) {
	approve := func(t *testing.T, daysOut int, emergency bool) (entities.CancellationRequest, *cancellationFixture) {
		t.Helper()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		f := newCancellationFixture(t, ctrl, confirmedBooking(refundNow.AddDate(0, 0, daysOut)))
		r, err := f.uc.Create(context.Background(), "b-1", "u-1", "plans changed", emergency)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		approved, err := f.uc.Approve(context.Background(), r.ID, "admin-1")
		if err != nil {
			t.Fatalf("approve: %v", err)
		}
		return approved, f
	}

	t.Run("fee tiers", func(t *testing.T) {
		cases := []struct {
			name       string
			daysOut    int
			emergency  bool
			wantFee    float64
			wantRefund float64
		}{
			{"30 or more days pays 5 percent", 31, false, 50, 950},
			{"20 days pays 15 percent", 20, false, 150, 850},
			{"10 days pays 25 percent", 10, false, 250, 750},
			{"4 days pays 50 percent", 4, false, 500, 500},
			{"2 days pays 75 percent", 2, false, 750, 250},
			{"emergency pays flat 10 percent", 2, true, 100, 900},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				r, _ := approve(t, tc.daysOut, tc.emergency)
				if r.CancellationFee != tc.wantFee {
					t.Fatalf("expected fee %f, got %f", tc.wantFee, r.CancellationFee)
				}
				if r.RefundAmount != tc.wantRefund {
					t.Fatalf("expected refund %f, got %f", tc.wantRefund, r.RefundAmount)
				}
				if r.Status != entities.CancellationStatusApproved || r.ReviewedBy != "admin-1" {
					t.Fatalf("review fields missing: %+v", r)
				}
			})
		}
	})

	t.Run("approval cancels the booking and releases seats", func(t *testing.T) {
		_, f := approve(t, 20, false)
		if got := f.books.get("b-1"); got.Status != entities.BookingStatusCanceled {
			t.Fatalf("booking not canceled, got %s", got.Status)
		}
		if f.ledger.pkg.CurrentBookings != 0 {
			t.Fatalf("seats not released, got %d", f.ledger.pkg.CurrentBookings)
		}
	})

	t.Run("empty approver", func(t *testing.T) {
		uc := NewCancellationUseCase(nil, nil, nil)
		if _, err := uc.Approve(context.Background(), "req-1", " "); !errors.Is(err, ErrInvalidApprover) {
			t.Fatalf("expected ErrInvalidApprover, got %v", err)
		}
	})

	t.Run("already reviewed", func(t *testing.T) {
		r, f := approve(t, 20, false)
		if _, err := f.uc.Approve(context.Background(), r.ID, "admin-2"); !errors.Is(err, ErrRequestNotPending) {
			t.Fatalf("expected ErrRequestNotPending, got %v", err)
		}
	})
}

func TestCancellationUseCase_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCancellationFixture(t, ctrl, confirmedBooking(refundNow.AddDate(0, 0, 20)))
	ctx := context.Background()

	r, err := f.uc.Create(ctx, "b-1", "u-1", "plans changed", false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rejected, err := f.uc.Reject(ctx, r.ID, "admin-1", "no-show history")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != entities.CancellationStatusRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
	if rejected.RefundAmount != 0 {
		t.Fatalf("rejected request must refund nothing, got %f", rejected.RefundAmount)
	}
	if rejected.ReviewNotes != "no-show history" {
		t.Fatalf("notes not recorded")
	}

	// The booking is untouched by a rejection.
	if got := f.books.get("b-1"); got.Status != entities.BookingStatusConfirmed {
		t.Fatalf("rejection must not cancel the booking, got %s", got.Status)
	}
	if _, err := f.uc.Reject(ctx, r.ID, "admin-1", ""); !errors.Is(err, ErrRequestNotPending) {
		t.Fatalf("expected ErrRequestNotPending, got %v", err)
	}
}

func TestCancellationUseCase_RefundFlow(t *testing.T) {
	setup := func(t *testing.T) (*cancellationFixture, entities.CancellationRequest) {
		t.Helper()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		f := newCancellationFixture(t, ctrl, confirmedBooking(refundNow.AddDate(0, 0, 20)))
		ctx := context.Background()
		r, err := f.uc.Create(ctx, "b-1", "u-1", "plans changed", false)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		approved, err := f.uc.Approve(ctx, r.ID, "admin-1")
		if err != nil {
			t.Fatalf("approve: %v", err)
		}
		return f, approved
	}

	t.Run("process derives method from original payment", func(t *testing.T) {
		f, r := setup(t)
		f.pay.EXPECT().FindCompletedByBookingID(gomock.Any(), "b-1").Return(entities.Payment{
			ID: "pay-1", BookingID: "b-1", Method: entities.PaymentMethodCard,
			Status: entities.PaymentStatusCompleted,
		}, nil)

		processed, err := f.uc.ProcessRefund(context.Background(), r.ID)
		if err != nil {
			t.Fatalf("process: %v", err)
		}
		if processed.RefundStatus != entities.RefundStatusProcessing {
			t.Fatalf("expected processing, got %s", processed.RefundStatus)
		}
		if processed.RefundMethod != entities.RefundMethodOriginalPayment {
			t.Fatalf("expected original payment method, got %s", processed.RefundMethod)
		}
	})

	t.Run("missing payment falls back to bank transfer", func(t *testing.T) {
		f, r := setup(t)
		f.pay.EXPECT().FindCompletedByBookingID(gomock.Any(), "b-1").Return(entities.Payment{}, nil)

		processed, err := f.uc.ProcessRefund(context.Background(), r.ID)
		if err != nil {
			t.Fatalf("process: %v", err)
		}
		if processed.RefundMethod != entities.RefundMethodBankTransfer {
			t.Fatalf("expected bank transfer fallback, got %s", processed.RefundMethod)
		}
	})

	t.Run("process requires approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCancellationFixture(t, ctrl, confirmedBooking(refundNow.AddDate(0, 0, 20)))
		r, err := f.uc.Create(context.Background(), "b-1", "u-1", "plans changed", false)
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		if _, err := f.uc.ProcessRefund(context.Background(), r.ID); !errors.Is(err, ErrRequestNotApproved) {
			t.Fatalf("expected ErrRequestNotApproved, got %v", err)
		}
	})

	t.Run("process runs once", func(t *testing.T) {
		f, r := setup(t)
		f.pay.EXPECT().FindCompletedByBookingID(gomock.Any(), "b-1").Return(entities.Payment{}, nil)

		if _, err := f.uc.ProcessRefund(context.Background(), r.ID); err != nil {
			t.Fatalf("process: %v", err)
		}
		if _, err := f.uc.ProcessRefund(context.Background(), r.ID); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition on second process, got %v", err)
		}
	})

	t.Run("complete marks payment refunded and is idempotent", func(t *testing.T) {
		f, r := setup(t)
		payment := entities.Payment{
			ID: "pay-1", BookingID: "b-1", Method: entities.PaymentMethodCard,
			Status: entities.PaymentStatusCompleted,
		}
		f.pay.EXPECT().FindCompletedByBookingID(gomock.Any(), "b-1").Times(2).Return(payment, nil)
		f.pay.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusRefunded).Return(entities.Payment{
			ID: "pay-1", Status: entities.PaymentStatusRefunded,
		}, nil)

		if _, err := f.uc.ProcessRefund(context.Background(), r.ID); err != nil {
			t.Fatalf("process: %v", err)
		}
		done, err := f.uc.CompleteRefund(context.Background(), r.ID)
		if err != nil {
			t.Fatalf("complete: %v", err)
		}
		if done.RefundStatus != entities.RefundStatusCompleted {
			t.Fatalf("expected completed, got %s", done.RefundStatus)
		}

		// A repeat completion is a silent success and touches nothing.
		again, err := f.uc.CompleteRefund(context.Background(), r.ID)
		if err != nil {
			t.Fatalf("repeat complete: %v", err)
		}
		if again.RefundStatus != entities.RefundStatusCompleted {
			t.Fatalf("expected completed on repeat, got %s", again.RefundStatus)
		}
	})

	t.Run("complete requires processing", func(t *testing.T) {
		f, r := setup(t)
		if _, err := f.uc.CompleteRefund(context.Background(), r.ID); !errors.Is(err, ErrRefundNotProcessing) {
			t.Fatalf("expected ErrRefundNotProcessing, got %v", err)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo, _ := newCancellationRepo(t, ctrl)
		uc := NewCancellationUseCase(repo, nil, nil)

		if _, err := uc.GetByID(context.Background(), "nope"); !errors.Is(err, ErrCancellationNotFound) {
			t.Fatalf("expected ErrCancellationNotFound, got %v", err)
		}
	})
}
