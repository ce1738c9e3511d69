package repository

import (
	"context"
	"fmt"

	"checkout_webhooks/internal/domain/entities"
	"checkout_webhooks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type webhookLogItem struct {
	ID            string `dynamodbav:"id"`
	Provider      string `dynamodbav:"provider"`
	RawPayload    string `dynamodbav:"raw_payload"`
	Event         string `dynamodbav:"event,omitempty"`
	Status        string `dynamodbav:"status,omitempty"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	OrderIDHint   string `dynamodbav:"order_id_hint,omitempty"`
	CustomerEmail string `dynamodbav:"customer_email,omitempty"`
	CustomerPhone string `dynamodbav:"customer_phone,omitempty"`
	AmountCents   int64  `dynamodbav:"amount_cents"`
	OrderFound    bool   `dynamodbav:"order_found"`
	OrderID       string `dynamodbav:"order_id,omitempty"`
	Success       bool   `dynamodbav:"success"`
	StrategyUsed  string `dynamodbav:"strategy_used,omitempty"`
	ErrorMessage  string `dynamodbav:"error_message,omitempty"`
	ProcessingMS  int64  `dynamodbav:"processing_ms"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// WebhookLogDynamoRepository appends audit rows to one table per provider.
type WebhookLogDynamoRepository struct {
	ddb    dynamoAPI
	tables map[entities.Provider]string
}

var _ interfaces.IWebhookLogRepository = (*WebhookLogDynamoRepository)(nil)

func NewWebhookLogDynamoRepository(ddb dynamoAPI, caktoTable, hotmartTable string) *WebhookLogDynamoRepository {
	return &WebhookLogDynamoRepository{
		ddb: ddb,
		tables: map[entities.Provider]string{
			entities.ProviderCakto:   caktoTable,
			entities.ProviderHotmart: hotmartTable,
		},
	}
}

func (r *WebhookLogDynamoRepository) Create(ctx context.Context, l entities.WebhookLog) error {
	table, ok := r.tables[l.Provider]
	if !ok || table == "" {
		return fmt.Errorf("no webhook log table for provider %q", l.Provider)
	}

	av, err := attributevalue.MarshalMap(webhookLogItem{
		ID:            l.ID,
		Provider:      string(l.Provider),
		RawPayload:    string(l.RawPayload),
		Event:         l.Event,
		Status:        l.Status,
		TransactionID: l.TransactionID,
		OrderIDHint:   l.OrderIDHint,
		CustomerEmail: l.CustomerEmail,
		CustomerPhone: l.CustomerPhone,
		AmountCents:   l.AmountCents,
		OrderFound:    l.OrderFound,
		OrderID:       l.OrderID,
		Success:       l.Success,
		StrategyUsed:  l.StrategyUsed,
		ErrorMessage:  l.ErrorMessage,
		ProcessingMS:  l.ProcessingMS,
		CreatedAt:     formatTime(l.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	return err
}
