package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"checkout_webhooks/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderRow(id, status, createdAt string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":                   stringAttr(id),
		"provider":             stringAttr("cakto"),
		"status":               stringAttr(status),
		"customer_email":       stringAttr("a@b.com"),
		"cakto_transaction_id": stringAttr("tx-1"),
		"quiz_id":              stringAttr("q-1"),
		"amount_cents":         &types.AttributeValueMemberN{Value: "10000"},
		"created_at":           stringAttr(createdAt),
		"updated_at":           stringAttr(createdAt),
	}
}

func TestOrderDynamoRepository_GetByID(t *testing.T) {
	t.Run("missing returns zero order", func(t *testing.T) {
		repo := NewOrderDynamoRepository(&fakeDynamo{}, "orders")
		o, err := repo.GetByID(context.Background(), "nope")
		require.NoError(t, err)
		assert.Empty(t, o.ID)
	})

	t.Run("found", func(t *testing.T) {
		fake := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			assert.True(t, aws.ToBool(in.ConsistentRead))
			return &dynamodb.GetItemOutput{Item: orderRow("o-1", "pending", "2024-05-01T12:00:00.000000Z")}, nil
		}}
		o, err := NewOrderDynamoRepository(fake, "orders").GetByID(context.Background(), "o-1")
		require.NoError(t, err)
		assert.Equal(t, "o-1", o.ID)
		assert.Equal(t, entities.OrderStatusPending, o.Status)
		assert.Equal(t, int64(10000), o.AmountCents)
		require.NotNil(t, o.QuizID)
		assert.Equal(t, "q-1", *o.QuizID)
		assert.Nil(t, o.PaidAt)
		assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), o.CreatedAt)
	})
}

func TestOrderDynamoRepository_GetByTransactionID(t *testing.T) {
	fake := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
			orderRow("older", "pending", "2024-05-01T10:00:00.000000Z"),
			orderRow("newer", "pending", "2024-05-01T11:00:00.000000Z"),
		}}, nil
	}}
	repo := NewOrderDynamoRepository(fake, "orders")

	o, err := repo.GetByTransactionID(context.Background(), entities.ProviderHotmart, "HP1")
	require.NoError(t, err)
	assert.Equal(t, "newer", o.ID)
	require.Len(t, fake.queries, 1)
	assert.Equal(t, ordersHotmartTxIndex, aws.ToString(fake.queries[0].IndexName))
	assert.Equal(t, "hotmart_transaction_id", fake.queries[0].ExpressionAttributeNames["#tx"])

	_, err = repo.GetByTransactionID(context.Background(), entities.Provider("stripe"), "x")
	assert.Error(t, err)
}

func TestOrderDynamoRepository_FindLatestPendingByEmail(t *testing.T) {
	calls := 0
	fake := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		calls++
		if calls == 1 {
			// filtered page with nothing left but more to read
			return &dynamodb.QueryOutput{LastEvaluatedKey: map[string]types.AttributeValue{"id": stringAttr("k")}}, nil
		}
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
			orderRow("o-2", "pending", "2024-05-01T11:00:00.000000Z"),
			orderRow("o-1", "pending", "2024-05-01T10:00:00.000000Z"),
		}}, nil
	}}
	repo := NewOrderDynamoRepository(fake, "orders")

	o, err := repo.FindLatestPendingByEmail(context.Background(), entities.ProviderCakto, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "o-2", o.ID)
	assert.Equal(t, 2, calls)

	in := fake.queries[0]
	assert.Equal(t, ordersEmailIndex, aws.ToString(in.IndexName))
	assert.False(t, aws.ToBool(in.ScanIndexForward))
	assert.Contains(t, aws.ToString(in.FilterExpression), "#status = :pending")
}

func TestOrderDynamoRepository_ListPendingByProviderHonoursLimit(t *testing.T) {
	fake := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
			orderRow("a", "pending", "2024-05-01T12:00:00.000000Z"),
			orderRow("b", "pending", "2024-05-01T11:00:00.000000Z"),
			orderRow("c", "pending", "2024-05-01T10:00:00.000000Z"),
		}}, nil
	}}
	orders, err := NewOrderDynamoRepository(fake, "orders").ListPendingByProvider(context.Background(), entities.ProviderCakto, 2)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "a", orders[0].ID)
	assert.Equal(t, ordersProviderIndex, aws.ToString(fake.queries[0].IndexName))
}

func TestOrderDynamoRepository_MarkPaid(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	prev := nowUTC
	nowUTC = func() time.Time { return fixed }
	t.Cleanup(func() { nowUTC = prev })

	transition := entities.PaidTransition{
		Provider:      entities.ProviderCakto,
		TransactionID: "tx-1",
		AmountCents:   10000,
		PaidAt:        fixed,
		Metadata:      map[string]string{"last_event": "purchase_approved"},
	}

	t.Run("updates and returns stored row", func(t *testing.T) {
		row := orderRow("o-1", "paid", "2024-05-01T10:00:00.000000Z")
		row["paid_at"] = stringAttr(formatTime(fixed))
		fake := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return &dynamodb.UpdateItemOutput{Attributes: row}, nil
		}}

		o, err := NewOrderDynamoRepository(fake, "orders").MarkPaid(context.Background(), "o-1", transition)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusPaid, o.Status)
		require.NotNil(t, o.PaidAt)
		assert.True(t, o.PaidAt.Equal(fixed))

		in := fake.updates[0]
		expr := aws.ToString(in.UpdateExpression)
		for _, part := range []string{"#status = :paid", "#tx = :tx", "#amount = :amount", "#meta = :meta"} {
			assert.True(t, strings.Contains(expr, part), "missing %q in %q", part, expr)
		}
		assert.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))
		assert.Equal(t, "cakto_transaction_id", in.ExpressionAttributeNames["#tx"])
		assert.Equal(t, "id", in.ExpressionAttributeNames["#id"])
		assert.Equal(t, types.ReturnValueAllNew, in.ReturnValues)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "2024-05-01T12:00:00.000000Z"}, in.ExpressionAttributeValues[":updated_at"])
	})

	t.Run("missing order yields zero order", func(t *testing.T) {
		fake := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("nope")}
		}}
		o, err := NewOrderDynamoRepository(fake, "orders").MarkPaid(context.Background(), "o-1", transition)
		require.NoError(t, err)
		assert.Empty(t, o.ID)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		fake := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, errors.New("throttled")
		}}
		_, err := NewOrderDynamoRepository(fake, "orders").MarkPaid(context.Background(), "o-1", transition)
		assert.EqualError(t, err, "throttled")
	})

	t.Run("zero amount and no tx leave fields alone", func(t *testing.T) {
		fake := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return &dynamodb.UpdateItemOutput{Attributes: orderRow("o-1", "paid", "2024-05-01T10:00:00.000000Z")}, nil
		}}
		_, err := NewOrderDynamoRepository(fake, "orders").MarkPaid(context.Background(), "o-1",
			entities.PaidTransition{Provider: entities.ProviderCakto, PaidAt: fixed})
		require.NoError(t, err)
		expr := aws.ToString(fake.updates[0].UpdateExpression)
		assert.NotContains(t, expr, "#tx")
		assert.NotContains(t, expr, "#amount")
		assert.NotContains(t, expr, "#meta")
	})
}

func TestTimeLayoutSortsLexicographically(t *testing.T) {
	a := time.Date(2024, 5, 1, 9, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	b := time.Date(2024, 5, 1, 12, 0, 0, int(500*time.Microsecond), time.UTC)

	fa, fb := formatTime(a), formatTime(b)
	assert.Equal(t, "2024-05-01T12:00:00.000000Z", fa)
	assert.Less(t, fa, fb)
	assert.True(t, parseTime(fa).Equal(a))
	assert.Equal(t, "", formatTime(time.Time{}))
	assert.True(t, parseTime("2024-05-01T12:00:00Z").Equal(b.Truncate(time.Second)))
}
