package repository

import (
	"context"
	"fmt"
	"strings"

	"checkout_webhooks/internal/domain/entities"
	"checkout_webhooks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const quizzesEmailIndex = "customer_email-created_at-index"

type emailLogItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	EmailType string `dynamodbav:"email_type"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
}

type quizItem struct {
	ID            string `dynamodbav:"id"`
	CustomerEmail string `dynamodbav:"customer_email"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// EmailLogDynamoRepository reads delivery rows written by the notification service.
type EmailLogDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IEmailLogRepository = (*EmailLogDynamoRepository)(nil)

func NewEmailLogDynamoRepository(ddb dynamoAPI, tableName string) *EmailLogDynamoRepository {
	return &EmailLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EmailLogDynamoRepository) FindLatestByOrder(ctx context.Context, orderID, emailType string, statuses []entities.EmailStatus) (entities.EmailLog, error) {
	names := map[string]string{
		"#order_id":   "order_id",
		"#email_type": "email_type",
	}
	values := map[string]types.AttributeValue{
		":order_id":   stringAttr(orderID),
		":email_type": stringAttr(emailType),
	}
	filter := "#email_type = :email_type"
	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, s := range statuses {
			ph := fmt.Sprintf(":s%d", i)
			placeholders[i] = ph
			values[ph] = stringAttr(string(s))
		}
		names["#status"] = "status"
		filter += " AND #status IN (" + strings.Join(placeholders, ", ") + ")"
	}

	items, err := queryItems(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(orderIDIndex),
		KeyConditionExpression:    aws.String("#order_id = :order_id"),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}, 0)
	if err != nil {
		return entities.EmailLog{}, err
	}

	var latest entities.EmailLog
	for _, raw := range items {
		var it emailLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.EmailLog{}, err
		}
		l := entities.EmailLog{
			ID:        it.ID,
			OrderID:   it.OrderID,
			EmailType: it.EmailType,
			Status:    entities.EmailStatus(it.Status),
			CreatedAt: parseTime(it.CreatedAt),
		}
		if latest.ID == "" || l.CreatedAt.After(latest.CreatedAt) {
			latest = l
		}
	}
	return latest, nil
}

// LyricsApprovalDynamoRepository checks approval rows written by the generation service.
type LyricsApprovalDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ILyricsApprovalRepository = (*LyricsApprovalDynamoRepository)(nil)

func NewLyricsApprovalDynamoRepository(ddb dynamoAPI, tableName string) *LyricsApprovalDynamoRepository {
	return &LyricsApprovalDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LyricsApprovalDynamoRepository) ExistsForOrder(ctx context.Context, orderID string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(orderIDIndex),
		KeyConditionExpression:   aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{"#order_id": "order_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": stringAttr(orderID),
		},
		Select: types.SelectCount,
		Limit:  aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

// QuizDynamoRepository resolves quizzes by customer email.
type QuizDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IQuizRepository = (*QuizDynamoRepository)(nil)

func NewQuizDynamoRepository(ddb dynamoAPI, tableName string) *QuizDynamoRepository {
	return &QuizDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuizDynamoRepository) FindLatestByEmail(ctx context.Context, email string) (entities.Quiz, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(quizzesEmailIndex),
		KeyConditionExpression:   aws.String("#email = :email"),
		ExpressionAttributeNames: map[string]string{"#email": "customer_email"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": stringAttr(email),
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.Quiz{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quiz{}, nil
	}
	var it quizItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quiz{}, err
	}
	return entities.Quiz{ID: it.ID, CustomerEmail: it.CustomerEmail, CreatedAt: parseTime(it.CreatedAt)}, nil
}
