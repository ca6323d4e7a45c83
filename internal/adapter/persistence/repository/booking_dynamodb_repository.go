package repository

import (
	"context"
	"errors"

	"travelops/internal/domain/entities"
	"travelops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsPackageIDIndex   = "package_id-index"
	bookingsUserIDIndex      = "user_id-index"
)

type bookingItem struct {
	ID             string `dynamodbav:"id"`
	PackageID      string `dynamodbav:"package_id"`
	UserID         string `dynamodbav:"user_id"`
	TravelDate     string `dynamodbav:"travel_date"`
	NumberOfPeople int    `dynamodbav:"number_of_people"`
	TotalAmount    string `dynamodbav:"total_amount"`
	Paid           bool   `dynamodbav:"paid"`
	Status         string `dynamodbav:"status"`
	AssignmentID   string `dynamodbav:"assignment_id,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: package_id-index (PK: package_id)
//   - GSI: user_id-index (PK: user_id)

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

// Put replaces an existing booking. Writing a booking that was never created
// comes back as an empty entity.
func (r *BookingDynamoRepository) Put(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) ListByPackageID(ctx context.Context, packageID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsPackageIDIndex, "package_id = :v", packageID)
}

func (r *BookingDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsUserIDIndex, "user_id = :v", userID)
}

func (r *BookingDynamoRepository) queryIndex(ctx context.Context, index, keyCond, value string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:             b.ID,
		PackageID:      b.PackageID,
		UserID:         b.UserID,
		TravelDate:     formatTime(b.TravelDate),
		NumberOfPeople: b.NumberOfPeople,
		TotalAmount:    floatToString(b.TotalAmount),
		Paid:           b.Paid,
		Status:         string(b.Status),
		AssignmentID:   b.AssignmentID,
		CreatedAt:      formatTime(b.CreatedAt),
		UpdatedAt:      formatTime(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:             it.ID,
		PackageID:      it.PackageID,
		UserID:         it.UserID,
		TravelDate:     parseTime(it.TravelDate),
		NumberOfPeople: it.NumberOfPeople,
		TotalAmount:    stringToFloat(it.TotalAmount),
		Paid:           it.Paid,
		Status:         entities.BookingStatus(it.Status),
		AssignmentID:   it.AssignmentID,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
