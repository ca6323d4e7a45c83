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
	defaultCancellationsTableName = "cancellation_requests"
	cancellationsBookingIDIndex   = "booking_id-index"
)

type cancellationItem struct {
	ID               string `dynamodbav:"id"`
	BookingID        string `dynamodbav:"booking_id"`
	UserID           string `dynamodbav:"user_id"`
	Reason           string `dynamodbav:"reason"`
	OriginalAmount   string `dynamodbav:"original_amount"`
	DaysBeforeTravel int    `dynamodbav:"days_before_travel"`
	IsEmergency      bool   `dynamodbav:"is_emergency"`
	FeePercent       string `dynamodbav:"fee_percent"`
	CancellationFee  string `dynamodbav:"cancellation_fee"`
	RefundAmount     string `dynamodbav:"refund_amount"`
	Status           string `dynamodbav:"status"`
	RefundStatus     string `dynamodbav:"refund_status"`
	RefundMethod     string `dynamodbav:"refund_method,omitempty"`
	ReviewedBy       string `dynamodbav:"reviewed_by,omitempty"`
	ReviewNotes      string `dynamodbav:"review_notes,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// CancellationDynamoRepository persists CancellationRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)

type CancellationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICancellationRepository = (*CancellationDynamoRepository)(nil)

func NewCancellationDynamoRepository(ddb *dynamodb.Client) *CancellationDynamoRepository {
	return &CancellationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CANCELLATIONS_TABLE", defaultCancellationsTableName),
	}
}

func (r *CancellationDynamoRepository) Create(ctx context.Context, req entities.CancellationRequest) (entities.CancellationRequest, error) {
	it := toCancellationItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CancellationRequest{}, err
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
		return entities.CancellationRequest{}, err
	}
	return req, nil
}

func (r *CancellationDynamoRepository) GetByID(ctx context.Context, id string) (entities.CancellationRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CancellationRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.CancellationRequest{}, nil
	}

	var it cancellationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CancellationRequest{}, err
	}
	return fromCancellationItem(it), nil
}

func (r *CancellationDynamoRepository) Put(ctx context.Context, req entities.CancellationRequest) (entities.CancellationRequest, error) {
	it := toCancellationItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CancellationRequest{}, err
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
			return entities.CancellationRequest{}, nil
		}
		return entities.CancellationRequest{}, err
	}
	return req, nil
}

func (r *CancellationDynamoRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.CancellationRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(cancellationsBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CancellationRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it cancellationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCancellationItem(it))
	}
	return items, nil
}

func toCancellationItem(req entities.CancellationRequest) cancellationItem {
	return cancellationItem{
		ID:               req.ID,
		BookingID:        req.BookingID,
		UserID:           req.UserID,
		Reason:           req.Reason,
		OriginalAmount:   floatToString(req.OriginalAmount),
		DaysBeforeTravel: req.DaysBeforeTravel,
		IsEmergency:      req.IsEmergency,
		FeePercent:       floatToString(req.FeePercent),
		CancellationFee:  floatToString(req.CancellationFee),
		RefundAmount:     floatToString(req.RefundAmount),
		Status:           string(req.Status),
		RefundStatus:     string(req.RefundStatus),
		RefundMethod:     string(req.RefundMethod),
		ReviewedBy:       req.ReviewedBy,
		ReviewNotes:      req.ReviewNotes,
		CreatedAt:        formatTime(req.CreatedAt),
		UpdatedAt:        formatTime(req.UpdatedAt),
	}
}

func fromCancellationItem(it cancellationItem) entities.CancellationRequest {
	return entities.CancellationRequest{
		ID:               it.ID,
		BookingID:        it.BookingID,
		UserID:           it.UserID,
		Reason:           it.Reason,
		OriginalAmount:   stringToFloat(it.OriginalAmount),
		DaysBeforeTravel: it.DaysBeforeTravel,
		IsEmergency:      it.IsEmergency,
		FeePercent:       stringToFloat(it.FeePercent),
		CancellationFee:  stringToFloat(it.CancellationFee),
		RefundAmount:     stringToFloat(it.RefundAmount),
		Status:           entities.CancellationStatus(it.Status),
		RefundStatus:     entities.RefundStatus(it.RefundStatus),
		RefundMethod:     entities.RefundMethod(it.RefundMethod),
		ReviewedBy:       it.ReviewedBy,
		ReviewNotes:      it.ReviewNotes,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
