package entities

import "testing"

func TestTimesOverlap(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"identical windows", "09:00", "11:00", "09:00", "11:00", true},
		{"partial overlap", "09:00", "11:00", "10:00", "12:00", true},
		{"contained window", "09:00", "17:00", "10:00", "11:00", true},
		{"adjacent after", "09:00", "11:00", "11:00", "13:00", false},
		{"adjacent before", "11:00", "13:00", "09:00", "11:00", false},
		{"disjoint", "08:00", "09:00", "14:00", "15:00", false},
		{"malformed time is conservative", "9am", "11:00", "10:00", "12:00", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimesOverlap(tc.s1, tc.e1, tc.s2, tc.e2); got != tc.want {
				t.Fatalf("TimesOverlap(%s-%s, %s-%s) = %v, want %v", tc.s1, tc.e1, tc.s2, tc.e2, got, tc.want)
			}
		})
	}
}

func TestWithinWindow(t *testing.T) {
	if !WithinWindow("09:00", "11:00", "08:00", "18:00") {
		t.Fatal("expected window inside working hours")
	}
	if WithinWindow("07:00", "09:00", "08:00", "18:00") {
		t.Fatal("expected start before working hours to be rejected")
	}
	if WithinWindow("17:00", "19:00", "08:00", "18:00") {
		t.Fatal("expected end after working hours to be rejected")
	}
	if WithinWindow("11:00", "11:00", "08:00", "18:00") {
		t.Fatal("expected empty window to be rejected")
	}
	// closing at the working-hours boundary is fine: half-open intervals
	if !WithinWindow("16:00", "18:00", "08:00", "18:00") {
		t.Fatal("expected window ending at closing time to be accepted")
	}
}

func TestAssignmentStatusTransitions(t *testing.T) {
	forward := []AssignmentStatus{
		AssignmentStatusAssigned,
		AssignmentStatusConfirmed,
		AssignmentStatusInProgress,
		AssignmentStatusCompleted,
	}
	for i := 0; i < len(forward)-1; i++ {
		if !forward[i].CanTransitionTo(forward[i+1]) {
			t.Fatalf("expected %s -> %s to be legal", forward[i], forward[i+1])
		}
	}
	if AssignmentStatusAssigned.CanTransitionTo(AssignmentStatusInProgress) {
		t.Fatal("skipping confirmed must be illegal")
	}
	if !AssignmentStatusInProgress.CanTransitionTo(AssignmentStatusCancelled) {
		t.Fatal("cancel from any non-terminal state must be legal")
	}
	if AssignmentStatusCompleted.CanTransitionTo(AssignmentStatusCancelled) {
		t.Fatal("completed assignments are immutable")
	}
	if AssignmentStatusCancelled.CanTransitionTo(AssignmentStatusConfirmed) {
		t.Fatal("cancelled assignments are terminal")
	}
}

func TestAssignmentEarnings(t *testing.T) {
	a := Assignment{Rate: 150}
	if got := a.Earnings(4); got != 600 {
		t.Fatalf("Earnings(4) = %v, want 600", got)
	}
}
