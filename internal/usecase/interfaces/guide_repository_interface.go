package interfaces

import (
	"context"
	"travelops/internal/domain/entities"
)

// IGuideRepository abstracts DynamoDB persistence for GuideProfile.
//
// List returns every guide; best-guide selection filters in the use case so
// the ranking rule stays in one place.

type IGuideRepository interface {
	Create(ctx context.Context, g entities.GuideProfile) (entities.GuideProfile, error)
	GetByID(ctx context.Context, id string) (entities.GuideProfile, error)
	Put(ctx context.Context, g entities.GuideProfile) (entities.GuideProfile, error)
	List(ctx context.Context) ([]entities.GuideProfile, error)
}

// ICalendarRepository is the keyed calendar store, one GuideCalendar per
// guide. Get returns an empty calendar (zero GuideID) when none exists yet.

type ICalendarRepository interface {
	Get(ctx context.Context, guideID string) (entities.GuideCalendar, error)
	Put(ctx context.Context, c entities.GuideCalendar) (entities.GuideCalendar, error)
}
