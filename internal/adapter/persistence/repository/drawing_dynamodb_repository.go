package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDrawingsTableName = "drawings"

type drawingItem struct {
	ID             string `dynamodbav:"id"`
	FileName       string `dynamodbav:"file_name"`
	FileType       string `dynamodbav:"file_type"`
	FilePath       string `dynamodbav:"file_path,omitempty"`
	Status         string `dynamodbav:"status"`
	ExtractedSpecs string `dynamodbav:"extracted_specs,omitempty"`
	UploadedAt     string `dynamodbav:"uploaded_at"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// DrawingDynamoRepository persists Drawing entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type DrawingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDrawingRepository = (*DrawingDynamoRepository)(nil)

func NewDrawingDynamoRepository(ddb *dynamodb.Client) *DrawingDynamoRepository {
	return &DrawingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRAWINGS_TABLE", defaultDrawingsTableName),
	}
}

func (r *DrawingDynamoRepository) Create(ctx context.Context, d entities.Drawing) (entities.Drawing, error) {
	it, err := toDrawingItem(d)
	if err != nil {
		return entities.Drawing{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Drawing{}, err
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
		return entities.Drawing{}, err
	}
	return d, nil
}

func (r *DrawingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Drawing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Drawing{}, err
	}
	if len(out.Item) == 0 {
		return entities.Drawing{}, nil
	}

	var it drawingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Drawing{}, err
	}
	return fromDrawingItem(it)
}

func (r *DrawingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DrawingStatus) (entities.Drawing, error) {
	return r.update(ctx, id, "SET #status = :status", map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}, map[string]string{
		"#status": "status",
	})
}

func (r *DrawingDynamoRepository) MarkAnalyzed(ctx context.Context, id string, specs entities.DrawingSpecs) (entities.Drawing, error) {
	b, err := json.Marshal(specs)
	if err != nil {
		return entities.Drawing{}, err
	}

	return r.update(ctx, id, "SET #status = :status, #extracted_specs = :extracted_specs", map[string]types.AttributeValue{
		":status":          &types.AttributeValueMemberS{Value: string(entities.DrawingStatusAnalyzed)},
		":extracted_specs": &types.AttributeValueMemberS{Value: string(b)},
	}, map[string]string{
		"#status":          "status",
		"#extracted_specs": "extracted_specs",
	})
}

func (r *DrawingDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Drawing, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Drawing{}, nil
		}
		return entities.Drawing{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Drawing{}, nil
	}

	var it drawingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Drawing{}, err
	}
	return fromDrawingItem(it)
}

func toDrawingItem(d entities.Drawing) (drawingItem, error) {
	specs := ""
	if d.ExtractedSpecs != nil {
		b, err := json.Marshal(d.ExtractedSpecs)
		if err != nil {
			return drawingItem{}, err
		}
		specs = string(b)
	}

	return drawingItem{
		ID:             d.ID,
		FileName:       d.FileName,
		FileType:       d.FileType,
		FilePath:       d.FilePath,
		Status:         string(d.Status),
		ExtractedSpecs: specs,
		UploadedAt:     d.UploadedAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromDrawingItem(it drawingItem) (entities.Drawing, error) {
	var specs *entities.DrawingSpecs
	if it.ExtractedSpecs != "" {
		specs = &entities.DrawingSpecs{}
		if err := json.Unmarshal([]byte(it.ExtractedSpecs), specs); err != nil {
			return entities.Drawing{}, err
		}
	}

	uploadedAt, _ := time.Parse(time.RFC3339Nano, it.UploadedAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	return entities.Drawing{
		ID:             it.ID,
		FileName:       it.FileName,
		FileType:       it.FileType,
		FilePath:       it.FilePath,
		Status:         entities.DrawingStatus(it.Status),
		ExtractedSpecs: specs,
		UploadedAt:     uploadedAt,
		CreatedAt:      createdAt,
	}, nil
}
