package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"travelops/internal/domain/entities"
	"travelops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPackagesTableName = "travel_packages"

type packageItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	BasePrice       string `dynamodbav:"base_price"`
	MaxCapacity     int    `dynamodbav:"max_capacity"`
	CurrentBookings int    `dynamodbav:"current_bookings"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// PackageDynamoRepository persists TravelPackage entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The seat counter lives on the item and every reservation goes through a
// conditional update, so the capacity bound holds even across processes.

type PackageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPackageRepository = (*PackageDynamoRepository)(nil)

func NewPackageDynamoRepository(ddb *dynamodb.Client) *PackageDynamoRepository {
	return &PackageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PACKAGES_TABLE", defaultPackagesTableName),
	}
}

func (r *PackageDynamoRepository) Create(ctx context.Context, p entities.TravelPackage) (entities.TravelPackage, error) {
	it := toPackageItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TravelPackage{}, err
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
		return entities.TravelPackage{}, err
	}
	return p, nil
}

func (r *PackageDynamoRepository) GetByID(ctx context.Context, id string) (entities.TravelPackage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TravelPackage{}, err
	}
	if len(out.Item) == 0 {
		return entities.TravelPackage{}, nil
	}

	var it packageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TravelPackage{}, err
	}
	return fromPackageItem(it), nil
}

func (r *PackageDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PackageStatus) (entities.TravelPackage, error) {
	return r.update(ctx, id, nil, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// reserveSeatsCondition builds the conditional-write guard for adding count
// seats under maxCapacity. DynamoDB condition expressions do not allow
// arithmetic between operands, so the bound is precomputed and the guard
// compares the stored counter against it alone. ok is false when count by
// itself exceeds the capacity.
func reserveSeatsCondition(maxCapacity, count int) (cond string, limit int, ok bool) {
	limit = maxCapacity - count
	if limit < 0 {
		return "", 0, false
	}
	return "#current_bookings <= :limit", limit, true
}

// ReserveSeats adds count to the counter only while the result stays within
// max_capacity. max_capacity is immutable after Create, so it is read first
// and folded into the condition client-side. A failed condition comes back
// as an empty entity.
func (r *PackageDynamoRepository) ReserveSeats(ctx context.Context, id string, count int) (entities.TravelPackage, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.TravelPackage{}, err
	}
	if p.ID == "" {
		return entities.TravelPackage{}, nil
	}

	cond, limit, ok := reserveSeatsCondition(p.MaxCapacity, count)
	if !ok {
		return entities.TravelPackage{}, nil
	}
	return r.update(ctx, id, &cond, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #current_bookings = #current_bookings + :n, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":n":          &types.AttributeValueMemberN{Value: strconv.Itoa(count)},
			":limit":      &types.AttributeValueMemberN{Value: strconv.Itoa(limit)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#current_bookings": "current_bookings",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

// ReleaseSeats subtracts count while it fits, and otherwise clamps the
// counter to zero. The clamp is guarded on the counter still being below
// count, so an admit from another process landing between the two writes is
// not erased; losing that race just re-runs the guarded decrement.
func (r *PackageDynamoRepository) ReleaseSeats(ctx context.Context, id string, count int) (entities.TravelPackage, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.TravelPackage{}, err
	}
	if existing.ID == "" {
		return entities.TravelPackage{}, nil
	}

	for {
		cond := "#current_bookings >= :n"
		p, err := r.update(ctx, id, &cond, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #current_bookings = #current_bookings - :n, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":n":          &types.AttributeValueMemberN{Value: strconv.Itoa(count)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#current_bookings": "current_bookings",
				"#updated_at":       "updated_at",
			}
			return expr, vals, names
		})
		if err != nil {
			return entities.TravelPackage{}, err
		}
		if p.ID != "" {
			return p, nil
		}

		// The counter held fewer than count seats; floor it, but only while
		// that still holds.
		cond = "#current_bookings < :n"
		p, err = r.update(ctx, id, &cond, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #current_bookings = :zero, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":n":          &types.AttributeValueMemberN{Value: strconv.Itoa(count)},
				":zero":       &types.AttributeValueMemberN{Value: "0"},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#current_bookings": "current_bookings",
				"#updated_at":       "updated_at",
			}
			return expr, vals, names
		})
		if err != nil {
			return entities.TravelPackage{}, err
		}
		if p.ID != "" {
			return p, nil
		}
		// Both guards lost to a concurrent admit; the counter now covers the
		// release, so the decrement will take on the next pass.
	}
}

func (r *PackageDynamoRepository) update(
	ctx context.Context,
	id string,
	extraCond *string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.TravelPackage, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	cond := "attribute_exists(#id)"
	if extraCond != nil {
		cond += " AND " + *extraCond
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.TravelPackage{}, nil
		}
		return entities.TravelPackage{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.TravelPackage{}, nil
	}
	var it packageItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.TravelPackage{}, err
	}
	return fromPackageItem(it), nil
}

func toPackageItem(p entities.TravelPackage) packageItem {
	return packageItem{
		ID:              p.ID,
		Name:            p.Name,
		BasePrice:       floatToString(p.BasePrice),
		MaxCapacity:     p.MaxCapacity,
		CurrentBookings: p.CurrentBookings,
		Status:          string(p.Status),
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
}

func fromPackageItem(it packageItem) entities.TravelPackage {
	return entities.TravelPackage{
		ID:              it.ID,
		Name:            it.Name,
		BasePrice:       stringToFloat(it.BasePrice),
		MaxCapacity:     it.MaxCapacity,
		CurrentBookings: it.CurrentBookings,
		Status:          entities.PackageStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
