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

const defaultGuidesTableName = "guides"

type guideItem struct {
	ID            string   `dynamodbav:"id"`
	Name          string   `dynamodbav:"name"`
	Languages     []string `dynamodbav:"languages,omitempty"`
	Rating        string   `dynamodbav:"rating"`
	RatingCount   int      `dynamodbav:"rating_count"`
	DailyRate     string   `dynamodbav:"daily_rate"`
	Available     bool     `dynamodbav:"available"`
	AssignedTours []string `dynamodbav:"assigned_tours,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

// GuideDynamoRepository persists GuideProfile entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The roster is small enough that FindBestGuide scans it; no GSI needed.

type GuideDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGuideRepository = (*GuideDynamoRepository)(nil)

func NewGuideDynamoRepository(ddb *dynamodb.Client) *GuideDynamoRepository {
	return &GuideDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GUIDES_TABLE", defaultGuidesTableName),
	}
}

func (r *GuideDynamoRepository) Create(ctx context.Context, g entities.GuideProfile) (entities.GuideProfile, error) {
	it := toGuideItem(g)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.GuideProfile{}, err
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
		return entities.GuideProfile{}, err
	}
	return g, nil
}

func (r *GuideDynamoRepository) GetByID(ctx context.Context, id string) (entities.GuideProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GuideProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.GuideProfile{}, nil
	}

	var it guideItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GuideProfile{}, err
	}
	return fromGuideItem(it), nil
}

func (r *GuideDynamoRepository) Put(ctx context.Context, g entities.GuideProfile) (entities.GuideProfile, error) {
	it := toGuideItem(g)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.GuideProfile{}, err
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
			return entities.GuideProfile{}, nil
		}
		return entities.GuideProfile{}, err
	}
	return g, nil
}

func (r *GuideDynamoRepository) List(ctx context.Context) ([]entities.GuideProfile, error) {
	var guides []entities.GuideProfile
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it guideItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			guides = append(guides, fromGuideItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return guides, nil
}

func toGuideItem(g entities.GuideProfile) guideItem {
	return guideItem{
		ID:            g.ID,
		Name:          g.Name,
		Languages:     g.Languages,
		Rating:        floatToString(g.Rating),
		RatingCount:   g.RatingCount,
		DailyRate:     floatToString(g.DailyRate),
		Available:     g.Available,
		AssignedTours: g.AssignedTours,
		CreatedAt:     formatTime(g.CreatedAt),
		UpdatedAt:     formatTime(g.UpdatedAt),
	}
}

func fromGuideItem(it guideItem) entities.GuideProfile {
	return entities.GuideProfile{
		ID:            it.ID,
		Name:          it.Name,
		Languages:     it.Languages,
		Rating:        stringToFloat(it.Rating),
		RatingCount:   it.RatingCount,
		DailyRate:     stringToFloat(it.DailyRate),
		Available:     it.Available,
		AssignedTours: it.AssignedTours,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
