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
	ErrGuideNotFound          = errors.New("guide not found")
	ErrInvalidGuideID         = errors.New("invalid guide id")
	ErrInvalidGuide           = errors.New("invalid guide payload")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidTimeWindow      = errors.New("invalid time window")
	ErrInvalidRating          = errors.New("invalid rating score")
	ErrGuideUnavailable       = errors.New("guide unavailable")
	ErrSlotConflict           = errors.New("slot conflict")
	ErrNoGuideAvailable       = errors.New("no guide available")
	ErrAssignmentNotFound     = errors.New("assignment not found")
	ErrInvalidAssignmentState = errors.New("invalid assignment transition")
)

const dateLayout = "2006-01-02"

// AssignGuideCommand requests a guide time-slot for a booking.

type AssignGuideCommand struct {
	GuideID   string
	BookingID string
	PackageID string
	Date      string
	StartTime string
	EndTime   string
}

// GuideEarnings sums a guide's completed assignments.

type GuideEarnings struct {
	GuideID        string  `json:"guide_id"`
	CompletedTours int     `json:"completed_tours"`
	Total          float64 `json:"total"`
}

// IScheduleUseCase is the guide calendar and scheduling engine. The guide's
// global availability flag (single-active-tour policy) is checked first;
// the per-date calendar capacity and the half-open-interval conflict check
// sit underneath it.

type IScheduleUseCase interface {
	RegisterGuide(ctx context.Context, name string, languages []string, dailyRate float64) (entities.GuideProfile, error)
	GetGuide(ctx context.Context, id string) (entities.GuideProfile, error)
	IsAvailableForDate(ctx context.Context, guideID, date string) (bool, error)
	IsAvailableForSlot(ctx context.Context, guideID, date, start, end string) (bool, error)
	Assign(ctx context.Context, cmd AssignGuideCommand) (entities.Assignment, error)
	Unassign(ctx context.Context, guideID, assignmentID string) error
	CancelAssignmentForBooking(ctx context.Context, bookingID, assignmentID, reason string) error
	FindBestGuide(ctx context.Context, language, date string) (entities.GuideProfile, error)
	MarkUnavailable(ctx context.Context, guideID, date, reason string) (int, error)
	ConfirmAssignment(ctx context.Context, guideID, assignmentID string) (entities.Assignment, error)
	StartAssignment(ctx context.Context, guideID, assignmentID string) (entities.Assignment, error)
	CompleteAssignment(ctx context.Context, guideID, assignmentID string) (entities.Assignment, error)
	Reassign(ctx context.Context, guideID, assignmentID, newGuideID string) (entities.Assignment, error)
	RateGuide(ctx context.Context, guideID string, score float64) (entities.GuideProfile, error)
	Earnings(ctx context.Context, guideID string) (GuideEarnings, error)
}

type ScheduleUseCase struct {
	guides    interfaces.IGuideRepository
	calendars interfaces.ICalendarRepository
	bookings  interfaces.IBookingRepository
	locks     keyedMutex
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase(guides interfaces.IGuideRepository, calendars interfaces.ICalendarRepository, bookings interfaces.IBookingRepository) *ScheduleUseCase {
	return &ScheduleUseCase{guides: guides, calendars: calendars, bookings: bookings}
}

func (u *ScheduleUseCase) RegisterGuide(ctx context.Context, name string, languages []string, dailyRate float64) (entities.GuideProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" || dailyRate < 0 {
		return entities.GuideProfile{}, ErrInvalidGuide
	}

	now := time.Now().UTC()
	g := entities.GuideProfile{
		ID:        uuid.NewString(),
		Name:      name,
		Languages: languages,
		DailyRate: dailyRate,
		Available: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.guides.Create(ctx, g)
	if err != nil {
		return entities.GuideProfile{}, err
	}
	if _, err := u.calendars.Put(ctx, entities.NewGuideCalendar(created.ID)); err != nil {
		return entities.GuideProfile{}, err
	}
	return created, nil
}

func (u *ScheduleUseCase) GetGuide(ctx context.Context, id string) (entities.GuideProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.GuideProfile{}, ErrInvalidGuideID
	}
	g, err := u.guides.GetByID(ctx, id)
	if err != nil {
		return entities.GuideProfile{}, err
	}
	if g.ID == "" {
		return entities.GuideProfile{}, ErrGuideNotFound
	}
	return g, nil
}

func (u *ScheduleUseCase) IsAvailableForDate(ctx context.Context, guideID, date string) (bool, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return false, ErrInvalidDate
	}
	cal, err := u.getCalendar(ctx, guideID)
	if err != nil {
		return false, err
	}
	return calendarAllowsDate(cal, date), nil
}

func (u *ScheduleUseCase) IsAvailableForSlot(ctx context.Context, guideID, date, start, end string) (bool, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return false, ErrInvalidDate
	}
	cal, err := u.getCalendar(ctx, guideID)
	if err != nil {
		return false, err
	}
	return calendarAllowsSlot(cal, date, start, end), nil
}

// calendarAllowsDate: not blacked out and under the per-day tour cap.
func calendarAllowsDate(cal entities.GuideCalendar, date string) bool {
	if cal.IsBlackedOut(date) {
		return false
	}
	return len(cal.OpenAssignmentsOn(date)) < cal.MaxToursPerDay
}

// calendarAllowsSlot: date availability, working hours containment and no
// overlapping open assignment. Windows touching at an endpoint do not
// conflict.
func calendarAllowsSlot(cal entities.GuideCalendar, date, start, end string) bool {
	if !calendarAllowsDate(cal, date) {
		return false
	}
	if !entities.WithinWindow(start, end, cal.WorkingHoursStart, cal.WorkingHoursEnd) {
		return false
	}
	for _, a := range cal.OpenAssignmentsOn(date) {
		if entities.TimesOverlap(a.StartTime, a.EndTime, start, end) {
			return false
		}
	}
	return true
}

// Assign reserves the slot. The global availability flag is checked before
// any calendar state (ErrGuideUnavailable), then the slot check runs inside
// the per-guide critical section (ErrSlotConflict). On success the guide
// goes globally unavailable until its assignments are released.
func (u *ScheduleUseCase) Assign(ctx context.Context, cmd AssignGuideCommand) (entities.Assignment, error) {
	cmd.GuideID = strings.TrimSpace(cmd.GuideID)
	cmd.BookingID = strings.TrimSpace(cmd.BookingID)
	if cmd.GuideID == "" {
		return entities.Assignment{}, ErrInvalidGuideID
	}
	if cmd.BookingID == "" {
		return entities.Assignment{}, ErrInvalidBookingID
	}
	if _, err := time.Parse(dateLayout, cmd.Date); err != nil {
		return entities.Assignment{}, ErrInvalidDate
	}
	if _, err := entities.ParseClock(cmd.StartTime); err != nil {
		return entities.Assignment{}, ErrInvalidTimeWindow
	}
	if _, err := entities.ParseClock(cmd.EndTime); err != nil {
		return entities.Assignment{}, ErrInvalidTimeWindow
	}

	unlock := u.locks.lock(cmd.GuideID)
	defer unlock()

	g, err := u.GetGuide(ctx, cmd.GuideID)
	if err != nil {
		return entities.Assignment{}, err
	}
	if !g.Available {
		log.Printf("[schedule][usecase] assign denied guide_id=%s reason=globally-unavailable", g.ID)
		return entities.Assignment{}, ErrGuideUnavailable
	}

	booking, err := u.bookings.GetByID(ctx, cmd.BookingID)
	if err != nil {
		return entities.Assignment{}, err
	}
	if booking.ID == "" {
		return entities.Assignment{}, ErrBookingNotFound
	}
	if booking.IsTerminal() {
		return entities.Assignment{}, ErrInvalidTransition
	}

	cal, err := u.getCalendar(ctx, cmd.GuideID)
	if err != nil {
		return entities.Assignment{}, err
	}
	if !calendarAllowsSlot(cal, cmd.Date, cmd.StartTime, cmd.EndTime) {
		log.Printf("[schedule][usecase] assign denied guide_id=%s date=%s window=%s-%s reason=slot-conflict", g.ID, cmd.Date, cmd.StartTime, cmd.EndTime)
		return entities.Assignment{}, ErrSlotConflict
	}

	now := time.Now().UTC()
	a := entities.Assignment{
		ID:        uuid.NewString(),
		GuideID:   g.ID,
		BookingID: booking.ID,
		PackageID: cmd.PackageID,
		Date:      cmd.Date,
		StartTime: cmd.StartTime,
		EndTime:   cmd.EndTime,
		Rate:      g.DailyRate,
		Status:    entities.AssignmentStatusAssigned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if cal.Assignments == nil {
		cal.Assignments = map[string][]entities.Assignment{}
	}
	cal.Assignments[cmd.Date] = append(cal.Assignments[cmd.Date], a)
	if _, err := u.calendars.Put(ctx, cal); err != nil {
		return entities.Assignment{}, err
	}

	g.Available = false
	g.AddAssignedTour(cmd.PackageID)
	g.UpdatedAt = now
	if _, err := u.guides.Put(ctx, g); err != nil {
		return entities.Assignment{}, err
	}

	booking.AssignmentID = a.ID
	booking.UpdatedAt = now
	if _, err := u.bookings.Put(ctx, booking); err != nil {
		log.Printf("[schedule][usecase] booking link failed booking_id=%s assignment_id=%s err=%v", booking.ID, a.ID, err)
	}

	log.Printf("[schedule][usecase] assign success guide_id=%s booking_id=%s date=%s window=%s-%s", g.ID, booking.ID, cmd.Date, cmd.StartTime, cmd.EndTime)
	return a, nil
}

// Unassign removes the assignment from the calendar and restores the guide's
// global availability once no open assignment remains.
func (u *ScheduleUseCase) Unassign(ctx context.Context, guideID, assignmentID string) error {
	guideID = strings.TrimSpace(guideID)
	if guideID == "" {
		return ErrInvalidGuideID
	}

	unlock := u.locks.lock(guideID)
	defer unlock()

	cal, err := u.getCalendar(ctx, guideID)
	if err != nil {
		return err
	}

	var removed *entities.Assignment
	for date, list := range cal.Assignments {
		for i, a := range list {
			if a.ID == assignmentID {
				removed = &list[i]
				cal.Assignments[date] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
		if removed != nil {
			break
		}
	}
	if removed == nil {
		return ErrAssignmentNotFound
	}
	if _, err := u.calendars.Put(ctx, cal); err != nil {
		return err
	}

	if err := u.refreshGuideAvailability(ctx, guideID, cal); err != nil {
		return err
	}

	if removed.BookingID != "" {
		u.clearBookingLink(ctx, removed.BookingID, assignmentID)
	}
	log.Printf("[schedule][usecase] unassign success guide_id=%s assignment_id=%s", guideID, assignmentID)
	return nil
}

// CancelAssignmentForBooking is the booking lifecycle's release hook: the
// booking only holds a weak assignment id, so the owning calendar is located
// by scanning guides. The assignment is cancelled in place (not removed) so
// the cancellation stays visible on the calendar.
func (u *ScheduleUseCase) CancelAssignmentForBooking(ctx context.Context, bookingID, assignmentID, reason string) error {
	guides, err := u.guides.List(ctx)
	if err != nil {
		return err
	}
	for _, g := range guides {
		unlock := u.locks.lock(g.ID)
		cal, err := u.calendars.Get(ctx, g.ID)
		if err != nil {
			unlock()
			return err
		}
		found := false
		for date, list := range cal.Assignments {
			for i, a := range list {
				if a.ID != assignmentID {
					continue
				}
				found = true
				if a.Status.IsTerminal() {
					break
				}
				list[i].Status = entities.AssignmentStatusCancelled
				list[i].CancelReason = reason
				list[i].UpdatedAt = time.Now().UTC()
				cal.Assignments[date] = list
				if _, err := u.calendars.Put(ctx, cal); err != nil {
					unlock()
					return err
				}
				if err := u.refreshGuideAvailability(ctx, g.ID, cal); err != nil {
					unlock()
					return err
				}
				break
			}
			if found {
				break
			}
		}
		unlock()
		if found {
			log.Printf("[schedule][usecase] assignment cancelled booking_id=%s assignment_id=%s guide_id=%s", bookingID, assignmentID, g.ID)
			return nil
		}
	}
	return ErrAssignmentNotFound
}

// FindBestGuide picks the highest-rated globally-available guide speaking
// the language (when given) with calendar room on the date. Ties break to
// the lexicographically smaller guide id so the result is deterministic.
func (u *ScheduleUseCase) FindBestGuide(ctx context.Context, language, date string) (entities.GuideProfile, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return entities.GuideProfile{}, ErrInvalidDate
	}

	guides, err := u.guides.List(ctx)
	if err != nil {
		return entities.GuideProfile{}, err
	}

	var best *entities.GuideProfile
	for i := range guides {
		g := guides[i]
		if !g.Available {
			continue
		}
		if language != "" && !g.SpeaksLanguage(language) {
			continue
		}
		cal, err := u.calendars.Get(ctx, g.ID)
		if err != nil {
			return entities.GuideProfile{}, err
		}
		if cal.GuideID == "" || !calendarAllowsDate(cal, date) {
			continue
		}
		if best == nil || g.Rating > best.Rating || (g.Rating == best.Rating && g.ID < best.ID) {
			best = &guides[i]
		}
	}
	if best == nil {
		return entities.GuideProfile{}, ErrNoGuideAvailable
	}
	return *best, nil
}

// MarkUnavailable blacks out the date and cancels every open assignment on
// it, recording the reason. Returns how many assignments were cancelled.
func (u *ScheduleUseCase) MarkUnavailable(ctx context.Context, guideID, date, reason string) (int, error) {
	guideID = strings.TrimSpace(guideID)
	if guideID == "" {
		return 0, ErrInvalidGuideID
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return 0, ErrInvalidDate
	}

	unlock := u.locks.lock(guideID)
	defer unlock()

	cal, err := u.getCalendar(ctx, guideID)
	if err != nil {
		return 0, err
	}
	if cal.UnavailableDates == nil {
		cal.UnavailableDates = map[string]string{}
	}
	cal.UnavailableDates[date] = reason

	cancelled := 0
	now := time.Now().UTC()
	list := cal.Assignments[date]
	for i, a := range list {
		if a.Status.IsTerminal() {
			continue
		}
		list[i].Status = entities.AssignmentStatusCancelled
		list[i].CancelReason = reason
		list[i].UpdatedAt = now
		cancelled++
	}
	if list != nil {
		cal.Assignments[date] = list
	}
	if _, err := u.calendars.Put(ctx, cal); err != nil {
		return 0, err
	}
	if err := u.refreshGuideAvailability(ctx, guideID, cal); err != nil {
		return 0, err
	}
	log.Printf("[schedule][usecase] blackout set guide_id=%s date=%s cancelled=%d", guideID, date, cancelled)
	return cancelled, nil
}

func (u *ScheduleUseCase) ConfirmAssignment(ctx context.Context, guideID, assignmentID string) (entities.Assignment, error) {
	return u.transitionAssignment(ctx, guideID, assignmentID, entities.AssignmentStatusConfirmed)
}

func (u *ScheduleUseCase) StartAssignment(ctx context.Context, guideID, assignmentID string) (entities.Assignment, error) {
	return u.transitionAssignment(ctx, guideID, assignmentID, entities.AssignmentStatusInProgress)
}

func (u *ScheduleUseCase) CompleteAssignment(ctx context.Context, guideID, assignmentID string) (entities.Assignment, error) {
	a, err := u.transitionAssignment(ctx, guideID, assignmentID, entities.AssignmentStatusCompleted)
	if err != nil {
		return entities.Assignment{}, err
	}
	// A completed tour no longer holds the guide's single active slot.
	unlock := u.locks.lock(guideID)
	defer unlock()
	cal, err := u.getCalendar(ctx, guideID)
	if err != nil {
		return entities.Assignment{}, err
	}
	if err := u.refreshGuideAvailability(ctx, guideID, cal); err != nil {
		return entities.Assignment{}, err
	}
	return a, nil
}

// Reassign books the same window on the target guide through the normal
// Assign path (so every availability and conflict rule applies to the new
// guide) and only then marks the old assignment reassigned. A rejected
// target guide therefore leaves the old assignment and its booking link
// untouched.
func (u *ScheduleUseCase) Reassign(ctx context.Context, guideID, assignmentID, newGuideID string) (entities.Assignment, error) {
	guideID = strings.TrimSpace(guideID)
	if guideID == "" {
		return entities.Assignment{}, ErrInvalidGuideID
	}

	cal, err := u.getCalendar(ctx, guideID)
	if err != nil {
		return entities.Assignment{}, err
	}
	old, found := findAssignment(cal, assignmentID)
	if !found {
		return entities.Assignment{}, ErrAssignmentNotFound
	}
	if !old.Status.CanTransitionTo(entities.AssignmentStatusReassigned) {
		return entities.Assignment{}, ErrInvalidAssignmentState
	}

	created, err := u.Assign(ctx, AssignGuideCommand{
		GuideID:   newGuideID,
		BookingID: old.BookingID,
		PackageID: old.PackageID,
		Date:      old.Date,
		StartTime: old.StartTime,
		EndTime:   old.EndTime,
	})
	if err != nil {
		return entities.Assignment{}, err
	}

	if _, err := u.transitionAssignment(ctx, guideID, assignmentID, entities.AssignmentStatusReassigned); err != nil {
		return entities.Assignment{}, err
	}

	unlock := u.locks.lock(guideID)
	cal, err = u.getCalendar(ctx, guideID)
	if err == nil {
		err = u.refreshGuideAvailability(ctx, guideID, cal)
	}
	unlock()
	if err != nil {
		return entities.Assignment{}, err
	}

	return created, nil
}

func findAssignment(cal entities.GuideCalendar, assignmentID string) (entities.Assignment, bool) {
	for _, list := range cal.Assignments {
		for _, a := range list {
			if a.ID == assignmentID {
				return a, true
			}
		}
	}
	return entities.Assignment{}, false
}

func (u *ScheduleUseCase) RateGuide(ctx context.Context, guideID string, score float64) (entities.GuideProfile, error) {
	if score < 0 || score > 5 {
		return entities.GuideProfile{}, ErrInvalidRating
	}
	g, err := u.GetGuide(ctx, guideID)
	if err != nil {
		return entities.GuideProfile{}, err
	}
	g.AddRating(score)
	g.UpdatedAt = time.Now().UTC()
	return u.guides.Put(ctx, g)
}

// Earnings sums rate x headcount over completed assignments. Assignments
// whose booking can no longer be found are skipped with a warning.
func (u *ScheduleUseCase) Earnings(ctx context.Context, guideID string) (GuideEarnings, error) {
	cal, err := u.getCalendar(ctx, guideID)
	if err != nil {
		return GuideEarnings{}, err
	}

	out := GuideEarnings{GuideID: guideID}
	for _, list := range cal.Assignments {
		for _, a := range list {
			if a.Status != entities.AssignmentStatusCompleted {
				continue
			}
			b, err := u.bookings.GetByID(ctx, a.BookingID)
			if err != nil {
				return GuideEarnings{}, err
			}
			if b.ID == "" {
				log.Printf("[schedule][usecase] earnings skip assignment_id=%s reason=booking-missing booking_id=%s", a.ID, a.BookingID)
				continue
			}
			out.CompletedTours++
			out.Total += a.Earnings(b.NumberOfPeople)
		}
	}
	return out, nil
}

func (u *ScheduleUseCase) transitionAssignment(ctx context.Context, guideID, assignmentID string, target entities.AssignmentStatus) (entities.Assignment, error) {
	guideID = strings.TrimSpace(guideID)
	if guideID == "" {
		return entities.Assignment{}, ErrInvalidGuideID
	}

	unlock := u.locks.lock(guideID)
	defer unlock()

	cal, err := u.getCalendar(ctx, guideID)
	if err != nil {
		return entities.Assignment{}, err
	}
	for date, list := range cal.Assignments {
		for i, a := range list {
			if a.ID != assignmentID {
				continue
			}
			if !a.Status.CanTransitionTo(target) {
				log.Printf("[schedule][usecase] illegal assignment transition assignment_id=%s from=%s to=%s", a.ID, a.Status, target)
				return entities.Assignment{}, ErrInvalidAssignmentState
			}
			list[i].Status = target
			list[i].UpdatedAt = time.Now().UTC()
			cal.Assignments[date] = list
			if _, err := u.calendars.Put(ctx, cal); err != nil {
				return entities.Assignment{}, err
			}
			return list[i], nil
		}
	}
	return entities.Assignment{}, ErrAssignmentNotFound
}

func (u *ScheduleUseCase) getCalendar(ctx context.Context, guideID string) (entities.GuideCalendar, error) {
	guideID = strings.TrimSpace(guideID)
	if guideID == "" {
		return entities.GuideCalendar{}, ErrInvalidGuideID
	}
	cal, err := u.calendars.Get(ctx, guideID)
	if err != nil {
		return entities.GuideCalendar{}, err
	}
	if cal.GuideID == "" {
		return entities.GuideCalendar{}, ErrGuideNotFound
	}
	return cal, nil
}

// refreshGuideAvailability recomputes the global flag and assignedTours from
// the calendar's open assignments, the calendar being the source of truth.
func (u *ScheduleUseCase) refreshGuideAvailability(ctx context.Context, guideID string, cal entities.GuideCalendar) error {
	g, err := u.guides.GetByID(ctx, guideID)
	if err != nil {
		return err
	}
	if g.ID == "" {
		return ErrGuideNotFound
	}

	var tours []string
	open := 0
	for date := range cal.Assignments {
		for _, a := range cal.Assignments[date] {
			if a.Status.IsTerminal() {
				continue
			}
			open++
			tours = appendUnique(tours, a.PackageID)
		}
	}
	g.Available = open == 0
	g.AssignedTours = tours
	g.UpdatedAt = time.Now().UTC()
	_, err = u.guides.Put(ctx, g)
	return err
}

func (u *ScheduleUseCase) clearBookingLink(ctx context.Context, bookingID, assignmentID string) {
	b, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil || b.ID == "" || b.AssignmentID != assignmentID {
		return
	}
	b.AssignmentID = ""
	b.UpdatedAt = time.Now().UTC()
	if _, err := u.bookings.Put(ctx, b); err != nil {
		log.Printf("[schedule][usecase] booking unlink failed booking_id=%s err=%v", bookingID, err)
	}
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
