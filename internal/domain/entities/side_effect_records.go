package entities

import "time"

// LyricsApproval is owned by the generation service. Its existence for an
// order means lyrics generation was already initiated.
type LyricsApproval struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	JobID     string    `json:"job_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

const EmailTypeOrderPaid = "order_paid"

type EmailStatus string

const (
	EmailStatusPending   EmailStatus = "pending"
	EmailStatusSent      EmailStatus = "sent"
	EmailStatusDelivered EmailStatus = "delivered"
	EmailStatusFailed    EmailStatus = "failed"
)

// Terminal reports whether the email already left the notification service.
func (s EmailStatus) Terminal() bool {
	return s == EmailStatusSent || s == EmailStatusDelivered
}

// EmailLog is owned by the notification service.
type EmailLog struct {
	ID        string      `json:"id"`
	OrderID   string      `json:"order_id"`
	EmailType string      `json:"email_type"`
	Status    EmailStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// Quiz is the questionnaire a customer filled before checkout.
type Quiz struct {
	ID            string    `json:"id"`
	CustomerEmail string    `json:"customer_email"`
	CreatedAt     time.Time `json:"created_at"`
}

// DispatchResult summarizes the best-effort side effects fired for a paid order.
type DispatchResult struct {
	EmailTriggered   bool
	EmailSkipReason  string
	LyricsGenerated  bool
	LyricsSkipReason string
	LyricsAttempts   int
	JobID            string
}
