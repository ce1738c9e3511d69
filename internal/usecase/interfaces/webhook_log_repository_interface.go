package interfaces

import (
	"context"

	"checkout_webhooks/internal/domain/entities"
)

// IWebhookLogRepository appends webhook audit rows to the provider's log table.
type IWebhookLogRepository interface {
	Create(ctx context.Context, l entities.WebhookLog) error
}
