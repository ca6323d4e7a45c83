package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AssignmentStatus is the guide assignment lifecycle state.
//
// Created as assigned by the scheduling engine; moves forward through
// confirmed -> in_progress -> completed, or is cancelled/reassigned at any
// non-terminal point. Completed assignments are immutable and feed earnings.

type AssignmentStatus string

const (
	AssignmentStatusAssigned   AssignmentStatus = "assigned"
	AssignmentStatusConfirmed  AssignmentStatus = "confirmed"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
	AssignmentStatusCancelled  AssignmentStatus = "cancelled"
	AssignmentStatusReassigned AssignmentStatus = "reassigned"
)

func (s AssignmentStatus) IsTerminal() bool {
	return s == AssignmentStatusCompleted || s.IsTerminallyReleased()
}

// IsTerminallyReleased reports whether the assignment no longer occupies its
// calendar slot.
func (s AssignmentStatus) IsTerminallyReleased() bool {
	return s == AssignmentStatusCancelled || s == AssignmentStatusReassigned
}

// CanTransitionTo enforces the forward-only lifecycle; cancelled/reassigned
// are reachable from any non-terminal state.
func (s AssignmentStatus) CanTransitionTo(target AssignmentStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch target {
	case AssignmentStatusConfirmed:
		return s == AssignmentStatusAssigned
	case AssignmentStatusInProgress:
		return s == AssignmentStatusConfirmed
	case AssignmentStatusCompleted:
		return s == AssignmentStatusInProgress
	case AssignmentStatusCancelled, AssignmentStatusReassigned:
		return true
	default:
		return false
	}
}

// Assignment is a guide's reservation of a date/time window for a booking.
// Owned by the guide calendar's daily list; bookings reference it by id only.

type Assignment struct {
	ID           string           `json:"id"`
	GuideID      string           `json:"guide_id"`
	BookingID    string           `json:"booking_id"`
	PackageID    string           `json:"package_id"`
	Date         string           `json:"date"`
	StartTime    string           `json:"start_time"`
	EndTime      string           `json:"end_time"`
	Rate         float64          `json:"rate"`
	Status       AssignmentStatus `json:"status"`
	CancelReason string           `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Earnings is the completed-tour payout: daily rate times headcount.
func (a Assignment) Earnings(touristCount int) float64 {
	return a.Rate * float64(touristCount)
}

// ParseClock converts "15:04" to minutes from midnight.
func ParseClock(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	return h*60 + m, nil
}

// TimesOverlap applies the half-open interval rule to two "15:04" windows:
// [s1,e1) and [s2,e2) conflict unless one entirely precedes the other, so
// windows that merely touch at an endpoint do not overlap. Malformed times
// count as overlapping to keep the conflict check conservative.
func TimesOverlap(start1, end1, start2, end2 string) bool {
	s1, err1 := ParseClock(start1)
	e1, err2 := ParseClock(end1)
	s2, err3 := ParseClock(start2)
	e2, err4 := ParseClock(end2)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return true
	}
	return !(e1 <= s2 || s1 >= e2)
}

// WithinWindow reports whether [start,end) is a well-formed, non-empty window
// lying inside [windowStart,windowEnd).
func WithinWindow(start, end, windowStart, windowEnd string) bool {
	s, err1 := ParseClock(start)
	e, err2 := ParseClock(end)
	ws, err3 := ParseClock(windowStart)
	we, err4 := ParseClock(windowEnd)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	return s < e && s >= ws && e <= we
}
