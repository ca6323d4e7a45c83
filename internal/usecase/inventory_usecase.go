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
	ErrPackageNotFound  = errors.New("package not found")
	ErrInvalidPackageID = errors.New("invalid package id")
	ErrInvalidSeatCount = errors.New("invalid seat count")
	ErrInvalidCapacity  = errors.New("invalid package capacity")
	ErrInvalidPackage   = errors.New("invalid package payload")
	ErrCapacityExceeded = errors.New("package capacity exceeded")
	ErrPackageInactive  = errors.New("package is not active")
)

// PackageAvailability is the derived-query view over the seat ledger.

type PackageAvailability struct {
	PackageID      string  `json:"package_id"`
	MaxCapacity    int     `json:"max_capacity"`
	BookedSeats    int     `json:"booked_seats"`
	AvailableSlots int     `json:"available_slots"`
	OccupancyRate  float64 `json:"occupancy_rate"`
	FullyBooked    bool    `json:"fully_booked"`
}

// IInventoryUseCase is the capacity ledger: admission control over package
// seats plus the derived availability queries.
//
// Admit is the only gate through which a booking may reserve seats; Release
// is its inverse and never drops the counter below zero. Callers are
// responsible for releasing at most once per admission.

type IInventoryUseCase interface {
	RegisterPackage(ctx context.Context, name string, basePrice float64, maxCapacity int) (entities.TravelPackage, error)
	GetPackage(ctx context.Context, id string) (entities.TravelPackage, error)
	Admit(ctx context.Context, packageID string, count int) (entities.TravelPackage, error)
	Release(ctx context.Context, packageID string, count int) (entities.TravelPackage, error)
	Availability(ctx context.Context, packageID string) (PackageAvailability, error)
	Activate(ctx context.Context, packageID string) (entities.TravelPackage, error)
	Deactivate(ctx context.Context, packageID string) (entities.TravelPackage, error)
}

type InventoryUseCase struct {
	repo  interfaces.IPackageRepository
	locks keyedMutex
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IPackageRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

func (u *InventoryUseCase) RegisterPackage(ctx context.Context, name string, basePrice float64, maxCapacity int) (entities.TravelPackage, error) {
	name = strings.TrimSpace(name)
	if name == "" || basePrice <= 0 {
		return entities.TravelPackage{}, ErrInvalidPackage
	}
	if maxCapacity < 0 {
		return entities.TravelPackage{}, ErrInvalidCapacity
	}

	now := time.Now().UTC()
	p := entities.TravelPackage{
		ID:          uuid.NewString(),
		Name:        name,
		BasePrice:   basePrice,
		MaxCapacity: maxCapacity,
		Status:      entities.PackageStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, p)
}

func (u *InventoryUseCase) GetPackage(ctx context.Context, id string) (entities.TravelPackage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TravelPackage{}, ErrInvalidPackageID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.TravelPackage{}, err
	}
	if p.ID == "" {
		return entities.TravelPackage{}, ErrPackageNotFound
	}
	return p, nil
}

// Admit reserves count seats. The check and the increment happen inside one
// per-package critical section, and the repository additionally guards the
// bound with a conditional write, so concurrent admits can never push the
// counter past MaxCapacity.
func (u *InventoryUseCase) Admit(ctx context.Context, packageID string, count int) (entities.TravelPackage, error) {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return entities.TravelPackage{}, ErrInvalidPackageID
	}
	if count <= 0 {
		return entities.TravelPackage{}, ErrInvalidSeatCount
	}

	unlock := u.locks.lock(packageID)
	defer unlock()

	p, err := u.repo.GetByID(ctx, packageID)
	if err != nil {
		return entities.TravelPackage{}, err
	}
	if p.ID == "" {
		return entities.TravelPackage{}, ErrPackageNotFound
	}
	if p.Status != entities.PackageStatusActive {
		log.Printf("[inventory][usecase] admit denied package_id=%s status=%s", packageID, p.Status)
		return entities.TravelPackage{}, ErrPackageInactive
	}

	updated, err := u.repo.ReserveSeats(ctx, packageID, count)
	if err != nil {
		return entities.TravelPackage{}, err
	}
	if updated.ID == "" {
		log.Printf("[inventory][usecase] admit denied package_id=%s requested=%d booked=%d capacity=%d", packageID, count, p.CurrentBookings, p.MaxCapacity)
		return entities.TravelPackage{}, ErrCapacityExceeded
	}
	log.Printf("[inventory][usecase] admit success package_id=%s requested=%d booked=%d", packageID, count, updated.CurrentBookings)
	return updated, nil
}

// Release returns count seats to the pool, flooring the counter at zero. The
// ledger does not detect double release; the booking lifecycle releases
// exactly once per canceled booking.
func (u *InventoryUseCase) Release(ctx context.Context, packageID string, count int) (entities.TravelPackage, error) {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return entities.TravelPackage{}, ErrInvalidPackageID
	}
	if count <= 0 {
		return entities.TravelPackage{}, ErrInvalidSeatCount
	}

	unlock := u.locks.lock(packageID)
	defer unlock()

	updated, err := u.repo.ReleaseSeats(ctx, packageID, count)
	if err != nil {
		return entities.TravelPackage{}, err
	}
	if updated.ID == "" {
		return entities.TravelPackage{}, ErrPackageNotFound
	}
	log.Printf("[inventory][usecase] release success package_id=%s released=%d booked=%d", packageID, count, updated.CurrentBookings)
	return updated, nil
}

func (u *InventoryUseCase) Availability(ctx context.Context, packageID string) (PackageAvailability, error) {
	p, err := u.GetPackage(ctx, packageID)
	if err != nil {
		return PackageAvailability{}, err
	}
	return PackageAvailability{
		PackageID:      p.ID,
		MaxCapacity:    p.MaxCapacity,
		BookedSeats:    p.CurrentBookings,
		AvailableSlots: p.AvailableSlots(),
		OccupancyRate:  p.OccupancyRate(),
		FullyBooked:    p.IsFullyBooked(),
	}, nil
}

func (u *InventoryUseCase) Activate(ctx context.Context, packageID string) (entities.TravelPackage, error) {
	return u.updateStatus(ctx, packageID, entities.PackageStatusActive)
}

func (u *InventoryUseCase) Deactivate(ctx context.Context, packageID string) (entities.TravelPackage, error) {
	return u.updateStatus(ctx, packageID, entities.PackageStatusInactive)
}

func (u *InventoryUseCase) updateStatus(ctx context.Context, packageID string, status entities.PackageStatus) (entities.TravelPackage, error) {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return entities.TravelPackage{}, ErrInvalidPackageID
	}
	updated, err := u.repo.UpdateStatus(ctx, packageID, status)
	if err != nil {
		return entities.TravelPackage{}, err
	}
	if updated.ID == "" {
		return entities.TravelPackage{}, ErrPackageNotFound
	}
	return updated, nil
}
