package entities

import (
	"encoding/json"
	"time"
)

// WebhookLog is the append-only audit row written once per processed webhook.
//
// Storage model (DynamoDB):
//   - one table per provider (cakto_webhook_logs, hotmart_webhook_logs)
//   - PK: id
//
// Rows are never updated after creation.
type WebhookLog struct {
	ID            string          `json:"id"`
	Provider      Provider        `json:"provider"`
	RawPayload    json.RawMessage `json:"raw_payload"`
	Event         string          `json:"event"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id"`
	OrderIDHint   string          `json:"order_id_hint"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	AmountCents   int64           `json:"amount_cents"`
	OrderFound    bool            `json:"order_found"`
	OrderID       string          `json:"order_id,omitempty"`
	Success       bool            `json:"success"`
	StrategyUsed  string          `json:"strategy_used,omitempty"`
	ErrorMessage  string          `json:"error_message,omitempty"`
	ProcessingMS  int64           `json:"processing_ms"`
	CreatedAt     time.Time       `json:"created_at"`
}
