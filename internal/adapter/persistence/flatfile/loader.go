// Package flatfile imports the legacy back-office's pipe-delimited data
// files. Each record is one line; malformed lines are skipped with a logged
// warning and never abort the load.
package flatfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"travelops/internal/domain/entities"
	"travelops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	bookingsFile      = "bookings.txt"
	assignmentsFile   = "assignments.txt"
	cancellationsFile = "cancellations.txt"

	dateLayout = "2006-01-02"
)

// Loader replays legacy records into the repositories.

type Loader struct {
	bookings      interfaces.IBookingRepository
	guides        interfaces.IGuideRepository
	calendars     interfaces.ICalendarRepository
	cancellations interfaces.ICancellationRepository
}

func NewLoader(
	bookings interfaces.IBookingRepository,
	guides interfaces.IGuideRepository,
	calendars interfaces.ICalendarRepository,
	cancellations interfaces.ICancellationRepository,
) *Loader {
	return &Loader{bookings: bookings, guides: guides, calendars: calendars, cancellations: cancellations}
}

// Import loads every known legacy file found under dir. Files that do not
// exist are skipped silently; a file that exists but cannot be opened fails
// the import.
func (l *Loader) Import(ctx context.Context, dir string) error {
	steps := []struct {
		file string
		fn   func(context.Context, io.Reader) int
	}{
		{bookingsFile, l.importBookings},
		{assignmentsFile, l.importAssignments},
		{cancellationsFile, l.importCancellations},
	}
	for _, step := range steps {
		path := filepath.Join(dir, step.file)
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}
		n := step.fn(ctx, f)
		f.Close()
		log.Printf("[flatfile][persistence] imported file=%s records=%d", step.file, n)
	}
	return nil
}

func (l *Loader) importBookings(ctx context.Context, r io.Reader) int {
	return eachLine(r, bookingsFile, func(line string) error {
		b, err := ParseBooking(line)
		if err != nil {
			return err
		}
		if _, err := l.bookings.Create(ctx, b); err != nil {
			return fmt.Errorf("create booking %s: %w", b.ID, err)
		}
		return nil
	})
}

func (l *Loader) importAssignments(ctx context.Context, r io.Reader) int {
	return eachLine(r, assignmentsFile, func(line string) error {
		a, guideName, err := ParseAssignment(line)
		if err != nil {
			return err
		}

		g, err := l.guides.GetByID(ctx, a.GuideID)
		if err != nil {
			return err
		}
		if g.ID == "" {
			// Legacy files reference guides by id and name only.
			now := time.Now().UTC()
			g = entities.GuideProfile{
				ID: a.GuideID, Name: guideName, Available: true,
				CreatedAt: now, UpdatedAt: now,
			}
			if _, err := l.guides.Create(ctx, g); err != nil {
				return fmt.Errorf("create guide %s: %w", g.ID, err)
			}
		}

		cal, err := l.calendars.Get(ctx, a.GuideID)
		if err != nil {
			return err
		}
		if cal.GuideID == "" {
			cal = entities.NewGuideCalendar(a.GuideID)
		}
		cal.Assignments[a.Date] = append(cal.Assignments[a.Date], a)
		if _, err := l.calendars.Put(ctx, cal); err != nil {
			return fmt.Errorf("put calendar %s: %w", a.GuideID, err)
		}
		return nil
	})
}

func (l *Loader) importCancellations(ctx context.Context, r io.Reader) int {
	return eachLine(r, cancellationsFile, func(line string) error {
		req, err := ParseCancellation(line)
		if err != nil {
			return err
		}
		if _, err := l.cancellations.Create(ctx, req); err != nil {
			return fmt.Errorf("create cancellation %s: %w", req.ID, err)
		}
		return nil
	})
}

// eachLine applies fn to every non-empty line, counting successes. A failed
// line is logged and skipped.
func eachLine(r io.Reader, file string, fn func(line string) error) int {
	n := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			log.Printf("[flatfile][persistence] skipping malformed record file=%s err=%v", file, err)
			continue
		}
		n++
	}
	if err := sc.Err(); err != nil {
		log.Printf("[flatfile][persistence] read aborted file=%s err=%v", file, err)
	}
	return n
}

// ParseBooking decodes
// id|userId|packageId|travelDate|numberOfPeople|totalAmount|status|paid.
func ParseBooking(line string) (entities.Booking, error) {
	fields := strings.Split(line, "|")
	if len(fields) != 8 {
		return entities.Booking{}, fmt.Errorf("booking record has %d fields, want 8", len(fields))
	}

	travelDate, err := time.Parse(dateLayout, fields[3])
	if err != nil {
		return entities.Booking{}, fmt.Errorf("travel date %q: %w", fields[3], err)
	}
	people, err := strconv.Atoi(fields[4])
	if err != nil {
		return entities.Booking{}, fmt.Errorf("headcount %q: %w", fields[4], err)
	}
	total, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return entities.Booking{}, fmt.Errorf("total amount %q: %w", fields[5], err)
	}
	status := entities.BookingStatus(fields[6])
	switch status {
	case entities.BookingStatusPending, entities.BookingStatusConfirmed,
		entities.BookingStatusCompleted, entities.BookingStatusCanceled:
	default:
		return entities.Booking{}, fmt.Errorf("unknown booking status %q", fields[6])
	}
	paid, err := strconv.ParseBool(fields[7])
	if err != nil {
		return entities.Booking{}, fmt.Errorf("paid flag %q: %w", fields[7], err)
	}

	now := time.Now().UTC()
	return entities.Booking{
		ID:             fields[0],
		UserID:         fields[1],
		PackageID:      fields[2],
		TravelDate:     travelDate,
		NumberOfPeople: people,
		TotalAmount:    total,
		Status:         status,
		Paid:           paid,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ParseAssignment decodes
// guideId|guideName|bookingId|packageId|date|startTime|endTime|status.
// Legacy assignments carry no id of their own, so each gets a fresh one.
func ParseAssignment(line string) (entities.Assignment, string, error) {
	fields := strings.Split(line, "|")
	if len(fields) != 8 {
		return entities.Assignment{}, "", fmt.Errorf("assignment record has %d fields, want 8", len(fields))
	}

	if _, err := time.Parse(dateLayout, fields[4]); err != nil {
		return entities.Assignment{}, "", fmt.Errorf("date %q: %w", fields[4], err)
	}
	if _, err := entities.ParseClock(fields[5]); err != nil {
		return entities.Assignment{}, "", err
	}
	if _, err := entities.ParseClock(fields[6]); err != nil {
		return entities.Assignment{}, "", err
	}
	status := entities.AssignmentStatus(fields[7])
	switch status {
	case entities.AssignmentStatusAssigned, entities.AssignmentStatusConfirmed,
		entities.AssignmentStatusInProgress, entities.AssignmentStatusCompleted,
		entities.AssignmentStatusCancelled, entities.AssignmentStatusReassigned:
	default:
		return entities.Assignment{}, "", fmt.Errorf("unknown assignment status %q", fields[7])
	}

	now := time.Now().UTC()
	return entities.Assignment{
		ID:        uuid.NewString(),
		GuideID:   fields[0],
		BookingID: fields[2],
		PackageID: fields[3],
		Date:      fields[4],
		StartTime: fields[5],
		EndTime:   fields[6],
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}, fields[1], nil
}

// ParseCancellation decodes
// bookingId|userId|reason|status|originalAmount|refundAmount.
func ParseCancellation(line string) (entities.CancellationRequest, error) {
	fields := strings.Split(line, "|")
	if len(fields) != 6 {
		return entities.CancellationRequest{}, fmt.Errorf("cancellation record has %d fields, want 6", len(fields))
	}

	status := entities.CancellationStatus(fields[3])
	switch status {
	case entities.CancellationStatusPending, entities.CancellationStatusApproved,
		entities.CancellationStatusRejected:
	default:
		return entities.CancellationRequest{}, fmt.Errorf("unknown cancellation status %q", fields[3])
	}
	original, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return entities.CancellationRequest{}, fmt.Errorf("original amount %q: %w", fields[4], err)
	}
	refund, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return entities.CancellationRequest{}, fmt.Errorf("refund amount %q: %w", fields[5], err)
	}

	now := time.Now().UTC()
	req := entities.CancellationRequest{
		ID:             uuid.NewString(),
		BookingID:      fields[0],
		UserID:         fields[1],
		Reason:         fields[2],
		Status:         status,
		OriginalAmount: original,
		RefundAmount:   refund,
		RefundStatus:   entities.RefundStatusNotProcessed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if status == entities.CancellationStatusApproved {
		req.CancellationFee = original - refund
	}
	return req, nil
}
