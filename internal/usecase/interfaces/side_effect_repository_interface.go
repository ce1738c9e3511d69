package interfaces

import (
	"context"

	"checkout_webhooks/internal/domain/entities"
)

// IJobRepository persists generation jobs. Only creation on demand is needed here.
type IJobRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (entities.Job, error)
	// Create is a conditional insert on the job id. When the id already exists
	// it returns the stored job, not an error.
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
}

// IEmailLogRepository reads notification delivery state owned by the notification service.
type IEmailLogRepository interface {
	FindLatestByOrder(ctx context.Context, orderID, emailType string, statuses []entities.EmailStatus) (entities.EmailLog, error)
}

// ILyricsApprovalRepository reads approval records owned by the generation service.
type ILyricsApprovalRepository interface {
	ExistsForOrder(ctx context.Context, orderID string) (bool, error)
}

// IQuizRepository resolves the quiz a customer answered before checkout.
type IQuizRepository interface {
	FindLatestByEmail(ctx context.Context, email string) (entities.Quiz, error)
}

// ISideEffectDispatcher fires the best-effort follow-ups for a paid order.
// It never fails the caller; problems are reported through the result and logs.
type ISideEffectDispatcher interface {
	Dispatch(ctx context.Context, order entities.Order) entities.DispatchResult
}
