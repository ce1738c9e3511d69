package entities

import (
	"encoding/json"
	"time"
)

// EventStatus is the provider event collapsed into the categories the
// reconciler acts on. Only EventStatusApproved mutates orders.

type EventStatus string

const (
	EventStatusApproved   EventStatus = "approved"
	EventStatusRefused    EventStatus = "refused"
	EventStatusRefunded   EventStatus = "refunded"
	EventStatusCancelled  EventStatus = "cancelled"
	EventStatusChargeback EventStatus = "chargeback"
	EventStatusPending    EventStatus = "pending"
	EventStatusUnknown    EventStatus = "unknown"
)

// WebhookEvent is the canonical, provider-independent view of an inbound notification.
type WebhookEvent struct {
	Provider         Provider
	Event            string
	Status           string
	NormalizedStatus EventStatus
	TransactionID    string
	OrderIDHint      string
	CustomerEmail    string
	CustomerPhone    string
	AmountCents      int64
	PaidAt           time.Time
	Raw              json.RawMessage
}

// HasIdentifier reports whether any field usable by the order matcher is present.
func (e WebhookEvent) HasIdentifier() bool {
	return e.OrderIDHint != "" || e.TransactionID != "" || e.CustomerEmail != ""
}
