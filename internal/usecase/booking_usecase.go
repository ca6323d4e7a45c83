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
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidBookingID   = errors.New("invalid booking id")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidTravelDate  = errors.New("invalid travel date")
	ErrInvalidHeadcount   = errors.New("invalid number of people")
	ErrPackageUnavailable = errors.New("package unavailable")
	ErrInvalidTransition  = errors.New("invalid booking transition")
)

// CreateBookingCommand is the admission request for a new booking.

type CreateBookingCommand struct {
	PackageID      string
	UserID         string
	TravelDate     time.Time
	NumberOfPeople int
}

// IBookingUseCase is the booking lifecycle state machine. Create admits
// seats before the booking exists; Cancel releases them exactly once and
// then frees any guide slot, in that order.

type IBookingUseCase interface {
	Create(ctx context.Context, cmd CreateBookingCommand) (entities.Booking, error)
	Confirm(ctx context.Context, id string) (entities.Booking, error)
	Complete(ctx context.Context, id string) (entities.Booking, error)
	Cancel(ctx context.Context, id string) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByPackage(ctx context.Context, packageID string) ([]entities.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Booking, error)
}

type BookingUseCase struct {
	repo      interfaces.IBookingRepository
	inventory IInventoryUseCase
	schedule  IScheduleUseCase
	pricing   interfaces.IPricingService
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, inventory IInventoryUseCase, schedule IScheduleUseCase, pricing interfaces.IPricingService) *BookingUseCase {
	return &BookingUseCase{repo: repo, inventory: inventory, schedule: schedule, pricing: pricing}
}

// Create admits the headcount against the package and only then creates the
// booking in pending. When admission fails the caller sees
// ErrPackageUnavailable and no booking record exists.
func (u *BookingUseCase) Create(ctx context.Context, cmd CreateBookingCommand) (entities.Booking, error) {
	cmd.PackageID = strings.TrimSpace(cmd.PackageID)
	cmd.UserID = strings.TrimSpace(cmd.UserID)
	if cmd.PackageID == "" {
		return entities.Booking{}, ErrInvalidPackageID
	}
	if cmd.UserID == "" {
		return entities.Booking{}, ErrInvalidUserID
	}
	if cmd.TravelDate.IsZero() {
		return entities.Booking{}, ErrInvalidTravelDate
	}
	if cmd.NumberOfPeople <= 0 {
		return entities.Booking{}, ErrInvalidHeadcount
	}

	pkg, err := u.inventory.Admit(ctx, cmd.PackageID, cmd.NumberOfPeople)
	if err != nil {
		if errors.Is(err, ErrCapacityExceeded) || errors.Is(err, ErrPackageInactive) {
			log.Printf("[booking][usecase] admission denied package_id=%s people=%d err=%v", cmd.PackageID, cmd.NumberOfPeople, err)
			return entities.Booking{}, ErrPackageUnavailable
		}
		return entities.Booking{}, err
	}

	total, err := u.pricing.TotalAmount(ctx, pkg, cmd.NumberOfPeople)
	if err != nil {
		// Pricing failed after seats were admitted; give them back before
		// reporting the failure so the ledger stays balanced.
		if _, relErr := u.inventory.Release(ctx, cmd.PackageID, cmd.NumberOfPeople); relErr != nil {
			log.Printf("[booking][usecase] release after pricing failure failed package_id=%s err=%v", cmd.PackageID, relErr)
		}
		return entities.Booking{}, err
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:             uuid.NewString(),
		PackageID:      cmd.PackageID,
		UserID:         cmd.UserID,
		TravelDate:     cmd.TravelDate,
		NumberOfPeople: cmd.NumberOfPeople,
		TotalAmount:    total,
		Status:         entities.BookingStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		if _, relErr := u.inventory.Release(ctx, cmd.PackageID, cmd.NumberOfPeople); relErr != nil {
			log.Printf("[booking][usecase] release after create failure failed package_id=%s err=%v", cmd.PackageID, relErr)
		}
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] create success booking_id=%s package_id=%s people=%d total=%.2f", created.ID, created.PackageID, created.NumberOfPeople, created.TotalAmount)
	return created, nil
}

// Confirm moves pending -> confirmed on payment success and marks the
// booking paid.
func (u *BookingUseCase) Confirm(ctx context.Context, id string) (entities.Booking, error) {
	return u.transition(ctx, id, entities.BookingStatusConfirmed, func(b *entities.Booking) {
		b.Paid = true
	})
}

// Complete moves confirmed -> completed once the tour is delivered.
func (u *BookingUseCase) Complete(ctx context.Context, id string) (entities.Booking, error) {
	return u.transition(ctx, id, entities.BookingStatusCompleted, nil)
}

// Cancel moves pending|confirmed -> canceled, then releases package seats,
// then releases any open guide assignment. The status flip happens first so
// an interruption leaves an unambiguously canceled booking with at most one
// pending release.
func (u *BookingUseCase) Cancel(ctx context.Context, id string) (entities.Booking, error) {
	b, err := u.transition(ctx, id, entities.BookingStatusCanceled, nil)
	if err != nil {
		return entities.Booking{}, err
	}

	if _, err := u.inventory.Release(ctx, b.PackageID, b.NumberOfPeople); err != nil {
		log.Printf("[booking][usecase] seat release failed booking_id=%s package_id=%s err=%v", b.ID, b.PackageID, err)
	}

	if b.AssignmentID != "" && u.schedule != nil {
		if err := u.schedule.CancelAssignmentForBooking(ctx, b.ID, b.AssignmentID, "booking canceled"); err != nil {
			log.Printf("[booking][usecase] guide slot release failed booking_id=%s assignment_id=%s err=%v", b.ID, b.AssignmentID, err)
		}
	}
	log.Printf("[booking][usecase] cancel success booking_id=%s", b.ID)
	return b, nil
}

func (u *BookingUseCase) transition(ctx context.Context, id string, target entities.BookingStatus, mutate func(*entities.Booking)) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if !b.CanTransitionTo(target) {
		log.Printf("[booking][usecase] illegal transition booking_id=%s from=%s to=%s", b.ID, b.Status, target)
		return entities.Booking{}, ErrInvalidTransition
	}

	b.Status = target
	if mutate != nil {
		mutate(&b)
	}
	b.UpdatedAt = time.Now().UTC()
	return u.repo.Put(ctx, b)
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) ListByPackage(ctx context.Context, packageID string) ([]entities.Booking, error) {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return nil, ErrInvalidPackageID
	}
	return u.repo.ListByPackageID(ctx, packageID)
}

func (u *BookingUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Booking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}
