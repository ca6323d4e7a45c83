package flatfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"travelops/internal/domain/entities"
	mock_interfaces "travelops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestParseBooking(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		b, err := ParseBooking("b-1|u-1|pkg-1|2026-10-01|4|1200.50|confirmed|true")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != "b-1" || b.UserID != "u-1" || b.PackageID != "pkg-1" {
			t.Fatalf("ids mismatch: %+v", b)
		}
		if b.NumberOfPeople != 4 || b.TotalAmount != 1200.50 {
			t.Fatalf("amounts mismatch: %+v", b)
		}
		if b.Status != entities.BookingStatusConfirmed || !b.Paid {
			t.Fatalf("status mismatch: %+v", b)
		}
		if b.TravelDate.Format("2006-01-02") != "2026-10-01" {
			t.Fatalf("travel date mismatch: %v", b.TravelDate)
		}
	})

	malformed := []struct {
		name string
		line string
	}{
		{"too few fields", "b-1|u-1|pkg-1"},
		{"bad date", "b-1|u-1|pkg-1|tomorrow|4|100|pending|false"},
		{"bad headcount", "b-1|u-1|pkg-1|2026-10-01|four|100|pending|false"},
		{"bad amount", "b-1|u-1|pkg-1|2026-10-01|4|lots|pending|false"},
		{"unknown status", "b-1|u-1|pkg-1|2026-10-01|4|100|maybe|false"},
		{"bad paid flag", "b-1|u-1|pkg-1|2026-10-01|4|100|pending|kinda"},
	}
	for _, tc := range malformed {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseBooking(tc.line); err == nil {
				t.Fatalf("expected parse error for %q", tc.line)
			}
		})
	}
}

func TestParseAssignment(t *testing.T) {
	t.Run("valid record gets fresh id", func(t *testing.T) {
		a, guideName, err := ParseAssignment("g-1|Lena|b-1|pkg-1|2026-10-01|09:00|11:00|confirmed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID == "" {
			t.Fatalf("expected generated assignment id")
		}
		if guideName != "Lena" {
			t.Fatalf("expected guide name, got %q", guideName)
		}
		if a.GuideID != "g-1" || a.BookingID != "b-1" || a.PackageID != "pkg-1" {
			t.Fatalf("ids mismatch: %+v", a)
		}
		if a.StartTime != "09:00" || a.EndTime != "11:00" || a.Date != "2026-10-01" {
			t.Fatalf("window mismatch: %+v", a)
		}
		if a.Status != entities.AssignmentStatusConfirmed {
			t.Fatalf("status mismatch: %s", a.Status)
		}

		b, _, err := ParseAssignment("g-1|Lena|b-2|pkg-1|2026-10-01|12:00|14:00|assigned")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID == a.ID {
			t.Fatalf("ids must be unique per record")
		}
	})

	t.Run("bad time window", func(t *testing.T) {
		if _, _, err := ParseAssignment("g-1|Lena|b-1|pkg-1|2026-10-01|9am|11:00|assigned"); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		if _, _, err := ParseAssignment("g-1|Lena|b-1|pkg-1|2026-10-01|09:00|11:00|paused"); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}

func TestParseCancellation(t *testing.T) {
	t.Run("approved record derives fee", func(t *testing.T) {
		req, err := ParseCancellation("b-1|u-1|change of plans|approved|1000|850")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.ID == "" {
			t.Fatalf("expected generated request id")
		}
		if req.OriginalAmount != 1000 || req.RefundAmount != 850 || req.CancellationFee != 150 {
			t.Fatalf("amounts mismatch: %+v", req)
		}
		if req.RefundStatus != entities.RefundStatusNotProcessed {
			t.Fatalf("expected not_processed, got %s", req.RefundStatus)
		}
	})

	t.Run("pending record has no fee", func(t *testing.T) {
		req, err := ParseCancellation("b-1|u-1|sick|pending|1000|0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.CancellationFee != 0 {
			t.Fatalf("pending record must not carry a fee: %+v", req)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		if _, err := ParseCancellation("b-1|u-1|sick|undecided|1000|0"); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}

func TestLoader_Import(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bookings.txt"),
		"b-1|u-1|pkg-1|2026-10-01|4|1200|confirmed|true\n"+
			"broken line\n"+
			"b-2|u-2|pkg-1|2026-10-02|2|600|pending|false\n")
	writeFile(t, filepath.Join(dir, "assignments.txt"),
		"g-1|Lena|b-1|pkg-1|2026-10-01|09:00|11:00|confirmed\n")
	writeFile(t, filepath.Join(dir, "cancellations.txt"),
		"b-2|u-2|change of plans|pending|600|0\n")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	guides := mock_interfaces.NewMockIGuideRepository(ctrl)
	calendars := mock_interfaces.NewMockICalendarRepository(ctrl)
	cancellations := mock_interfaces.NewMockICancellationRepository(ctrl)

	created := map[string]entities.Booking{}
	bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			created[b.ID] = b
			return b, nil
		})

	// The guide is unknown, so the loader registers a minimal profile.
	guides.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.GuideProfile{}, nil)
	guides.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, g entities.GuideProfile) (entities.GuideProfile, error) {
			if g.ID != "g-1" || g.Name != "Lena" {
				t.Fatalf("unexpected guide: %+v", g)
			}
			return g, nil
		})

	var savedCal entities.GuideCalendar
	calendars.EXPECT().Get(gomock.Any(), "g-1").Return(entities.GuideCalendar{}, nil)
	calendars.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cal entities.GuideCalendar) (entities.GuideCalendar, error) {
			savedCal = cal
			return cal, nil
		})

	cancellations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.CancellationRequest) (entities.CancellationRequest, error) {
			if req.BookingID != "b-2" {
				t.Fatalf("unexpected cancellation: %+v", req)
			}
			return req, nil
		})

	loader := NewLoader(bookings, guides, calendars, cancellations)
	if err := loader.Import(context.Background(), dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(created) != 2 {
		t.Fatalf("expected 2 bookings imported, got %d", len(created))
	}
	if savedCal.GuideID != "g-1" || len(savedCal.Assignments["2026-10-01"]) != 1 {
		t.Fatalf("calendar not built from legacy assignment: %+v", savedCal)
	}
	if savedCal.MaxToursPerDay != entities.DefaultMaxToursPerDay {
		t.Fatalf("fresh calendar missing defaults")
	}
}

func TestLoader_Import_MissingFilesTolerated(t *testing.T) {
	loader := NewLoader(nil, nil, nil, nil)
	if err := loader.Import(context.Background(), t.TempDir()); err != nil {
		t.Fatalf("empty dir must import cleanly, got %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
