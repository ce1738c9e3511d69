package entities

import "time"

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Job links an order to a generation pipeline run.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI order_id-index: order_id
type Job struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	QuizID    string    `json:"quiz_id"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
