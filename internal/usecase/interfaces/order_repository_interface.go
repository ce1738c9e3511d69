package interfaces

import (
	"context"

	"checkout_webhooks/internal/domain/entities"
)

// IOrderRepository abstracts the order store used by the reconciler.
//
// Lookups return a zero-value Order (empty ID) when nothing matches.
type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByTransactionID(ctx context.Context, provider entities.Provider, transactionID string) (entities.Order, error)
	FindLatestPendingByEmail(ctx context.Context, provider entities.Provider, email string) (entities.Order, error)
	ListPendingByProvider(ctx context.Context, provider entities.Provider, limit int) ([]entities.Order, error)
	// MarkPaid updates the order narrowed by id and returns the row as stored
	// after the update. A zero-value Order means no row was updated.
	MarkPaid(ctx context.Context, id string, t entities.PaidTransition) (entities.Order, error)
}
