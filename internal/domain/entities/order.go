package entities

import "time"

// Provider identifies the payment provider that owns an order's checkout.

type Provider string

const (
	ProviderCakto   Provider = "cakto"
	ProviderHotmart Provider = "hotmart"
)

func (p Provider) Valid() bool {
	return p == ProviderCakto || p == ProviderHotmart
}

// OrderStatus represents the payment lifecycle of an order.
//
// Domain notes:
//   - pending -> paid happens at most once per order.
//   - Re-processing a paid order only refreshes provider metadata.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusRefused    OrderStatus = "refused"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusChargeback OrderStatus = "chargeback"
)

// Order is the purchase record reconciled against payment-provider notifications.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI customer_email-created_at-index: customer_email / created_at
//   - GSI provider-created_at-index: provider / created_at
//   - GSI cakto_transaction_id-index, hotmart_transaction_id-index
type Order struct {
	ID                   string            `json:"id"`
	Provider             Provider          `json:"provider"`
	Status               OrderStatus       `json:"status"`
	CustomerEmail        string            `json:"customer_email"`
	CustomerWhatsapp     string            `json:"customer_whatsapp"`
	CaktoTransactionID   string            `json:"cakto_transaction_id,omitempty"`
	HotmartTransactionID string            `json:"hotmart_transaction_id,omitempty"`
	QuizID               *string           `json:"quiz_id,omitempty"`
	AmountCents          int64             `json:"amount_cents"`
	ProviderMetadata     map[string]string `json:"provider_metadata,omitempty"`
	PaidAt               *time.Time        `json:"paid_at,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

func (o Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

// TransactionIDFor returns the provider-specific transaction id stored on the order.
func (o Order) TransactionIDFor(p Provider) string {
	switch p {
	case ProviderCakto:
		return o.CaktoTransactionID
	case ProviderHotmart:
		return o.HotmartTransactionID
	}
	return ""
}

// PaidTransition carries the fields written when an order is marked paid.
type PaidTransition struct {
	Provider      Provider
	TransactionID string
	AmountCents   int64
	PaidAt        time.Time
	Metadata      map[string]string
}
