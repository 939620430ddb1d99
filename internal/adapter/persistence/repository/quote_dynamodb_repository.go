package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID               string `dynamodbav:"id"`
	DrawingID        string `dynamodbav:"drawing_id,omitempty"`
	BaseCost         string `dynamodbav:"base_cost"`
	MaterialCost     string `dynamodbav:"material_cost"`
	LaborCost        string `dynamodbav:"labor_cost"`
	OverheadCost     string `dynamodbav:"overhead_cost"`
	MarketAdjustment string `dynamodbav:"market_adjustment"`
	FinalPrice       string `dynamodbav:"final_price"`
	Currency         string `dynamodbav:"currency"`
	ConfidenceScore  string `dynamodbav:"confidence_score"`
	Breakdown        string `dynamodbav:"breakdown"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Breakdown and market adjustment are stored as JSON documents; every numeric
// field is a string-formatted number so the stored value round-trips exactly.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.Quote) (quoteItem, error) {
	breakdown, err := json.Marshal(q.Breakdown)
	if err != nil {
		return quoteItem{}, err
	}
	adjustment, err := json.Marshal(q.MarketAdjustment)
	if err != nil {
		return quoteItem{}, err
	}

	return quoteItem{
		ID:               q.ID,
		DrawingID:        q.DrawingID,
		BaseCost:         floatToString(q.BaseCost),
		MaterialCost:     floatToString(q.MaterialCost),
		LaborCost:        floatToString(q.LaborCost),
		OverheadCost:     floatToString(q.OverheadCost),
		MarketAdjustment: string(adjustment),
		FinalPrice:       floatToString(q.FinalPrice),
		Currency:         q.Currency,
		ConfidenceScore:  floatToString(q.ConfidenceScore),
		Breakdown:        string(breakdown),
		Status:           string(q.Status),
		CreatedAt:        q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	var breakdown entities.CostBreakdown
	if it.Breakdown != "" {
		if err := json.Unmarshal([]byte(it.Breakdown), &breakdown); err != nil {
			return entities.Quote{}, err
		}
	}
	var adjustment entities.MarketAdjustment
	if it.MarketAdjustment != "" {
		if err := json.Unmarshal([]byte(it.MarketAdjustment), &adjustment); err != nil {
			return entities.Quote{}, err
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	baseCost, _ := strconv.ParseFloat(it.BaseCost, 64)
	materialCost, _ := strconv.ParseFloat(it.MaterialCost, 64)
	laborCost, _ := strconv.ParseFloat(it.LaborCost, 64)
	overheadCost, _ := strconv.ParseFloat(it.OverheadCost, 64)
	finalPrice, _ := strconv.ParseFloat(it.FinalPrice, 64)
	confidence, _ := strconv.ParseFloat(it.ConfidenceScore, 64)

	return entities.Quote{
		ID:               it.ID,
		DrawingID:        it.DrawingID,
		BaseCost:         baseCost,
		MaterialCost:     materialCost,
		LaborCost:        laborCost,
		OverheadCost:     overheadCost,
		MarketAdjustment: adjustment,
		FinalPrice:       finalPrice,
		Currency:         it.Currency,
		ConfidenceScore:  confidence,
		Breakdown:        breakdown,
		Status:           entities.QuoteStatus(it.Status),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}
