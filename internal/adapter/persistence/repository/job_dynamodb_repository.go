package repository

import (
	"context"

	"checkout_webhooks/internal/domain/entities"
	"checkout_webhooks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const orderIDIndex = "order_id-index"

type jobItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	QuizID    string `dynamodbav:"quiz_id"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists generation jobs.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type JobDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb dynamoAPI, tableName string) *JobDynamoRepository {
	return &JobDynamoRepository{ddb: ddb, tableName: tableName}
}

// GetByOrderID returns the most recent job of the order.
func (r *JobDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Job, error) {
	items, err := queryItems(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(orderIDIndex),
		KeyConditionExpression:   aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{"#order_id": "order_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": stringAttr(orderID),
		},
	}, 0)
	if err != nil {
		return entities.Job{}, err
	}

	var latest entities.Job
	for _, raw := range items {
		var it jobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Job{}, err
		}
		j := fromJobItem(it)
		if latest.ID == "" || j.CreatedAt.After(latest.CreatedAt) {
			latest = j
		}
	}
	return latest, nil
}

// Create inserts the job unless its id already exists, in which case the
// stored job is returned instead.
func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(jobItem{
		ID:        j.ID,
		OrderID:   j.OrderID,
		QuizID:    j.QuizID,
		Status:    string(j.Status),
		CreatedAt: formatTime(j.CreatedAt),
		UpdatedAt: formatTime(j.UpdatedAt),
	})
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err == nil {
		return j, nil
	}
	if !isConditionalCheckFailed(err) {
		return entities.Job{}, err
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": stringAttr(j.ID)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:        it.ID,
		OrderID:   it.OrderID,
		QuizID:    it.QuizID,
		Status:    entities.JobStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
