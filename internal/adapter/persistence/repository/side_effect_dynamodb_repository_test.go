package repository

import (
	"context"
	"testing"
	"time"

	"checkout_webhooks/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailLogDynamoRepository_FindLatestByOrder(t *testing.T) {
	row := func(id, status, createdAt string) map[string]types.AttributeValue {
		return map[string]types.AttributeValue{
			"id":         stringAttr(id),
			"order_id":   stringAttr("o-1"),
			"email_type": stringAttr(entities.EmailTypeOrderPaid),
			"status":     stringAttr(status),
			"created_at": stringAttr(createdAt),
		}
	}
	fake := &fakeDynamo{query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
			row("e-1", "sent", "2024-05-01T10:00:00.000000Z"),
			row("e-2", "pending", "2024-05-01T11:00:00.000000Z"),
		}}, nil
	}}

	l, err := NewEmailLogDynamoRepository(fake, "email_logs").FindLatestByOrder(context.Background(), "o-1",
		entities.EmailTypeOrderPaid, []entities.EmailStatus{entities.EmailStatusSent, entities.EmailStatusPending})
	require.NoError(t, err)
	assert.Equal(t, "e-2", l.ID)
	assert.Equal(t, entities.EmailStatusPending, l.Status)
	assert.Equal(t, time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC), l.CreatedAt)

	in := fake.queries[0]
	assert.Equal(t, "#email_type = :email_type AND #status IN (:s0, :s1)", aws.ToString(in.FilterExpression))
	assert.Equal(t, stringAttr("pending"), in.ExpressionAttributeValues[":s1"])
}

func TestLyricsApprovalDynamoRepository_ExistsForOrder(t *testing.T) {
	fake := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		assert.Equal(t, types.SelectCount, in.Select)
		if in.ExpressionAttributeValues[":order_id"].(*types.AttributeValueMemberS).Value == "o-1" {
			return &dynamodb.QueryOutput{Count: 1}, nil
		}
		return &dynamodb.QueryOutput{}, nil
	}}
	repo := NewLyricsApprovalDynamoRepository(fake, "lyrics_approvals")

	ok, err := repo.ExistsForOrder(context.Background(), "o-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsForOrder(context.Background(), "o-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuizDynamoRepository_FindLatestByEmail(t *testing.T) {
	fake := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		assert.False(t, aws.ToBool(in.ScanIndexForward))
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{{
			"id":             stringAttr("q-9"),
			"customer_email": stringAttr("a@b.com"),
			"created_at":     stringAttr("2024-05-01T10:00:00.000000Z"),
		}}}, nil
	}}
	q, err := NewQuizDynamoRepository(fake, "quizzes").FindLatestByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "q-9", q.ID)

	none, err := NewQuizDynamoRepository(&fakeDynamo{}, "quizzes").FindLatestByEmail(context.Background(), "x@y.com")
	require.NoError(t, err)
	assert.Empty(t, none.ID)
}
