package repository

import (
	"context"
	"fmt"
	"strconv"

	"checkout_webhooks/internal/domain/entities"
	"checkout_webhooks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	ordersEmailIndex           = "customer_email-created_at-index"
	ordersProviderIndex        = "provider-created_at-index"
	ordersCaktoTxIndex         = "cakto_transaction_id-index"
	ordersHotmartTxIndex       = "hotmart_transaction_id-index"
	ordersEmailPageSize  int32 = 25
)

type orderItem struct {
	ID                   string            `dynamodbav:"id"`
	Provider             string            `dynamodbav:"provider"`
	Status               string            `dynamodbav:"status"`
	CustomerEmail        string            `dynamodbav:"customer_email,omitempty"`
	CustomerWhatsapp     string            `dynamodbav:"customer_whatsapp,omitempty"`
	CaktoTransactionID   string            `dynamodbav:"cakto_transaction_id,omitempty"`
	HotmartTransactionID string            `dynamodbav:"hotmart_transaction_id,omitempty"`
	QuizID               string            `dynamodbav:"quiz_id,omitempty"`
	AmountCents          int64             `dynamodbav:"amount_cents"`
	ProviderMetadata     map[string]string `dynamodbav:"provider_metadata,omitempty"`
	PaidAt               string            `dynamodbav:"paid_at,omitempty"`
	CreatedAt            string            `dynamodbav:"created_at"`
	UpdatedAt            string            `dynamodbav:"updated_at"`
}

// OrderDynamoRepository reads and transitions orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI customer_email-created_at-index (PK customer_email, SK created_at)
//   - GSI provider-created_at-index (PK provider, SK created_at)
//   - GSI cakto_transaction_id-index, hotmart_transaction_id-index

type OrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb dynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": stringAttr(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Item)
}

func (r *OrderDynamoRepository) GetByTransactionID(ctx context.Context, provider entities.Provider, transactionID string) (entities.Order, error) {
	index, attr, err := transactionIndex(provider)
	if err != nil {
		return entities.Order{}, err
	}
	items, err := queryItems(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#tx = :tx"),
		ExpressionAttributeNames: map[string]string{
			"#tx": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tx": stringAttr(transactionID),
		},
	}, 0)
	if err != nil {
		return entities.Order{}, err
	}
	return latestOrder(items)
}

// FindLatestPendingByEmail walks the email index newest first and returns the
// first pending order of the provider.
func (r *OrderDynamoRepository) FindLatestPendingByEmail(ctx context.Context, provider entities.Provider, email string) (entities.Order, error) {
	items, err := queryItems(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersEmailIndex),
		KeyConditionExpression: aws.String("#email = :email"),
		FilterExpression:       aws.String("#provider = :provider AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#email":    "customer_email",
			"#provider": "provider",
			"#status":   "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email":    stringAttr(email),
			":provider": stringAttr(string(provider)),
			":pending":  stringAttr(string(entities.OrderStatusPending)),
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(ordersEmailPageSize),
	}, 1)
	if err != nil {
		return entities.Order{}, err
	}
	if len(items) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(items[0])
}

// ListPendingByProvider returns up to limit pending orders, newest first.
func (r *OrderDynamoRepository) ListPendingByProvider(ctx context.Context, provider entities.Provider, limit int) ([]entities.Order, error) {
	items, err := queryItems(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersProviderIndex),
		KeyConditionExpression: aws.String("#provider = :provider"),
		FilterExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#provider": "provider",
			"#status":   "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":provider": stringAttr(string(provider)),
			":pending":  stringAttr(string(entities.OrderStatusPending)),
		},
		ScanIndexForward: aws.Bool(false),
	}, limit)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(items))
	for _, raw := range items {
		o, err := unmarshalOrder(raw)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// MarkPaid sets status=paid and the payment fields on an existing order and
// returns the stored row. A missing order yields a zero-value Order.
func (r *OrderDynamoRepository) MarkPaid(ctx context.Context, id string, t entities.PaidTransition) (entities.Order, error) {
	now := formatTime(nowUTC())
	expr := "SET #status = :paid, #paid_at = :paid_at, #updated_at = :updated_at"
	names := map[string]string{
		"#status":     "status",
		"#paid_at":    "paid_at",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":paid":       stringAttr(string(entities.OrderStatusPaid)),
		":paid_at":    stringAttr(formatTime(t.PaidAt)),
		":updated_at": stringAttr(now),
	}

	if t.TransactionID != "" {
		_, attr, err := transactionIndex(t.Provider)
		if err != nil {
			return entities.Order{}, err
		}
		expr += ", #tx = :tx"
		names["#tx"] = attr
		values[":tx"] = stringAttr(t.TransactionID)
	}
	if t.AmountCents > 0 {
		expr += ", #amount = :amount"
		names["#amount"] = "amount_cents"
		values[":amount"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(t.AmountCents, 10)}
	}
	if len(t.Metadata) > 0 {
		meta, err := attributevalue.Marshal(t.Metadata)
		if err != nil {
			return entities.Order{}, err
		}
		expr += ", #meta = :meta"
		names["#meta"] = "provider_metadata"
		values[":meta"] = meta
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"id": stringAttr(id)},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Attributes)
}

func transactionIndex(p entities.Provider) (index, attr string, err error) {
	switch p {
	case entities.ProviderCakto:
		return ordersCaktoTxIndex, "cakto_transaction_id", nil
	case entities.ProviderHotmart:
		return ordersHotmartTxIndex, "hotmart_transaction_id", nil
	}
	return "", "", fmt.Errorf("no transaction index for provider %q", p)
}

func latestOrder(items []map[string]types.AttributeValue) (entities.Order, error) {
	var latest entities.Order
	for _, raw := range items {
		o, err := unmarshalOrder(raw)
		if err != nil {
			return entities.Order{}, err
		}
		if latest.ID == "" || o.CreatedAt.After(latest.CreatedAt) {
			latest = o
		}
	}
	return latest, nil
}

func unmarshalOrder(raw map[string]types.AttributeValue) (entities.Order, error) {
	var it orderItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:                   it.ID,
		Provider:             entities.Provider(it.Provider),
		Status:               entities.OrderStatus(it.Status),
		CustomerEmail:        it.CustomerEmail,
		CustomerWhatsapp:     it.CustomerWhatsapp,
		CaktoTransactionID:   it.CaktoTransactionID,
		HotmartTransactionID: it.HotmartTransactionID,
		AmountCents:          it.AmountCents,
		ProviderMetadata:     it.ProviderMetadata,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
	if it.QuizID != "" {
		q := it.QuizID
		o.QuizID = &q
	}
	if it.PaidAt != "" {
		p := parseTime(it.PaidAt)
		o.PaidAt = &p
	}
	return o
}
