package repository

import (
	"context"

	"travelops/internal/domain/entities"
	"travelops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCalendarsTableName = "guide_calendars"

type calendarAssignmentItem struct {
	ID           string `dynamodbav:"id"`
	GuideID      string `dynamodbav:"guide_id"`
	BookingID    string `dynamodbav:"booking_id"`
	PackageID    string `dynamodbav:"package_id,omitempty"`
	Date         string `dynamodbav:"date"`
	StartTime    string `dynamodbav:"start_time"`
	EndTime      string `dynamodbav:"end_time"`
	Rate         string `dynamodbav:"rate"`
	Status       string `dynamodbav:"status"`
	CancelReason string `dynamodbav:"cancel_reason,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type calendarItem struct {
	GuideID           string                              `dynamodbav:"guide_id"`
	WorkingHoursStart string                              `dynamodbav:"working_hours_start"`
	WorkingHoursEnd   string                              `dynamodbav:"working_hours_end"`
	MaxToursPerDay    int                                 `dynamodbav:"max_tours_per_day"`
	Assignments       map[string][]calendarAssignmentItem `dynamodbav:"assignments,omitempty"`
	UnavailableDates  map[string]string                   `dynamodbav:"unavailable_dates,omitempty"`
}

// CalendarDynamoRepository persists GuideCalendar aggregates in DynamoDB.
//
// Table requirements:
//   - PK: guide_id (string)
//
// The whole calendar is one item: assignments are read and written together
// with the blackout map, which is what lets the scheduling engine treat the
// calendar as the single source of truth for a guide's slots.

type CalendarDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICalendarRepository = (*CalendarDynamoRepository)(nil)

func NewCalendarDynamoRepository(ddb *dynamodb.Client) *CalendarDynamoRepository {
	return &CalendarDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALENDARS_TABLE", defaultCalendarsTableName),
	}
}

func (r *CalendarDynamoRepository) Get(ctx context.Context, guideID string) (entities.GuideCalendar, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"guide_id": &types.AttributeValueMemberS{Value: guideID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GuideCalendar{}, err
	}
	if len(out.Item) == 0 {
		return entities.GuideCalendar{}, nil
	}

	var it calendarItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GuideCalendar{}, err
	}
	return fromCalendarItem(it), nil
}

func (r *CalendarDynamoRepository) Put(ctx context.Context, cal entities.GuideCalendar) (entities.GuideCalendar, error) {
	it := toCalendarItem(cal)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.GuideCalendar{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.GuideCalendar{}, err
	}
	return cal, nil
}

func toCalendarItem(cal entities.GuideCalendar) calendarItem {
	it := calendarItem{
		GuideID:           cal.GuideID,
		WorkingHoursStart: cal.WorkingHoursStart,
		WorkingHoursEnd:   cal.WorkingHoursEnd,
		MaxToursPerDay:    cal.MaxToursPerDay,
		UnavailableDates:  cal.UnavailableDates,
	}
	if len(cal.Assignments) > 0 {
		it.Assignments = make(map[string][]calendarAssignmentItem, len(cal.Assignments))
		for date, list := range cal.Assignments {
			items := make([]calendarAssignmentItem, 0, len(list))
			for _, a := range list {
				items = append(items, toCalendarAssignmentItem(a))
			}
			it.Assignments[date] = items
		}
	}
	return it
}

func fromCalendarItem(it calendarItem) entities.GuideCalendar {
	cal := entities.GuideCalendar{
		GuideID:           it.GuideID,
		WorkingHoursStart: it.WorkingHoursStart,
		WorkingHoursEnd:   it.WorkingHoursEnd,
		MaxToursPerDay:    it.MaxToursPerDay,
		UnavailableDates:  it.UnavailableDates,
	}
	if len(it.Assignments) > 0 {
		cal.Assignments = make(map[string][]entities.Assignment, len(it.Assignments))
		for date, list := range it.Assignments {
			assignments := make([]entities.Assignment, 0, len(list))
			for _, a := range list {
				assignments = append(assignments, fromCalendarAssignmentItem(a))
			}
			cal.Assignments[date] = assignments
		}
	} else {
		cal.Assignments = map[string][]entities.Assignment{}
	}
	if cal.UnavailableDates == nil {
		cal.UnavailableDates = map[string]string{}
	}
	return cal
}

func toCalendarAssignmentItem(a entities.Assignment) calendarAssignmentItem {
	return calendarAssignmentItem{
		ID:           a.ID,
		GuideID:      a.GuideID,
		BookingID:    a.BookingID,
		PackageID:    a.PackageID,
		Date:         a.Date,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		Rate:         floatToString(a.Rate),
		Status:       string(a.Status),
		CancelReason: a.CancelReason,
		CreatedAt:    formatTime(a.CreatedAt),
		UpdatedAt:    formatTime(a.UpdatedAt),
	}
}

func fromCalendarAssignmentItem(it calendarAssignmentItem) entities.Assignment {
	return entities.Assignment{
		ID:           it.ID,
		GuideID:      it.GuideID,
		BookingID:    it.BookingID,
		PackageID:    it.PackageID,
		Date:         it.Date,
		StartTime:    it.StartTime,
		EndTime:      it.EndTime,
		Rate:         stringToFloat(it.Rate),
		Status:       entities.AssignmentStatus(it.Status),
		CancelReason: it.CancelReason,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
