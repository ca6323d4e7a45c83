package entities

import "time"

// GuideProfile is a tour guide and the single-active-tour policy state.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Available is the global flag: it goes false the moment the guide holds any
// open assignment and comes back once AssignedTours empties. The per-date
// calendar capacity (GuideCalendar.MaxToursPerDay) is layered underneath it.

type GuideProfile struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Languages     []string  `json:"languages"`
	Rating        float64   `json:"rating"`
	RatingCount   int       `json:"rating_count"`
	DailyRate     float64   `json:"daily_rate"`
	Available     bool      `json:"available"`
	AssignedTours []string  `json:"assigned_tours,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (g GuideProfile) SpeaksLanguage(lang string) bool {
	for _, l := range g.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// AddRating folds a new score into the running average.
func (g *GuideProfile) AddRating(score float64) {
	total := g.Rating*float64(g.RatingCount) + score
	g.RatingCount++
	g.Rating = total / float64(g.RatingCount)
}

func (g *GuideProfile) AddAssignedTour(packageID string) {
	for _, id := range g.AssignedTours {
		if id == packageID {
			return
		}
	}
	g.AssignedTours = append(g.AssignedTours, packageID)
}

func (g *GuideProfile) RemoveAssignedTour(packageID string) {
	out := g.AssignedTours[:0]
	for _, id := range g.AssignedTours {
		if id != packageID {
			out = append(out, id)
		}
	}
	g.AssignedTours = out
}

const (
	DefaultWorkingHoursStart = "08:00"
	DefaultWorkingHoursEnd   = "18:00"
	DefaultMaxToursPerDay    = 2
)

// GuideCalendar is the per-guide schedule: date-keyed assignment lists,
// blackout dates and working hours. The calendar is the single source of
// truth for an assignment's existence; bookings only hold its id.
//
// Storage model (DynamoDB):
//   - PK: guide_id
//
// Dates are "2006-01-02" strings, times "15:04".

type GuideCalendar struct {
	GuideID           string                  `json:"guide_id"`
	WorkingHoursStart string                  `json:"working_hours_start"`
	WorkingHoursEnd   string                  `json:"working_hours_end"`
	MaxToursPerDay    int                     `json:"max_tours_per_day"`
	Assignments       map[string][]Assignment `json:"assignments,omitempty"`
	UnavailableDates  map[string]string       `json:"unavailable_dates,omitempty"`
}

func NewGuideCalendar(guideID string) GuideCalendar {
	return GuideCalendar{
		GuideID:           guideID,
		WorkingHoursStart: DefaultWorkingHoursStart,
		WorkingHoursEnd:   DefaultWorkingHoursEnd,
		MaxToursPerDay:    DefaultMaxToursPerDay,
		Assignments:       map[string][]Assignment{},
		UnavailableDates:  map[string]string{},
	}
}

// OpenAssignmentsOn returns the assignments on a date that still occupy the
// slot (cancelled and reassigned ones do not count against capacity).
func (c GuideCalendar) OpenAssignmentsOn(date string) []Assignment {
	var open []Assignment
	for _, a := range c.Assignments[date] {
		if !a.Status.IsTerminallyReleased() {
			open = append(open, a)
		}
	}
	return open
}

func (c GuideCalendar) IsBlackedOut(date string) bool {
	_, ok := c.UnavailableDates[date]
	return ok
}
