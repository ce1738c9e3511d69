package usecase

import (
	"context"
	"fmt"
	"time"

	"checkout_webhooks/internal/domain/entities"
	"checkout_webhooks/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// PaidReplayPolicy decides what a webhook for an already paid order does.
type PaidReplayPolicy string

const (
	// PaidReplayShortCircuit acknowledges the replay and does nothing else.
	PaidReplayShortCircuit PaidReplayPolicy = "short-circuit"
	// PaidReplayReapply re-applies the paid update (metadata, transaction id,
	// paid_at) and lets side effects re-evaluate their own gates, so a webhook
	// that previously stopped halfway still gets its generation fired.
	PaidReplayReapply PaidReplayPolicy = "reapply"
)

// PaidReplayPolicyFor returns the replay policy of a provider.
func PaidReplayPolicyFor(p entities.Provider) PaidReplayPolicy {
	if p == entities.ProviderHotmart {
		return PaidReplayReapply
	}
	return PaidReplayShortCircuit
}

type TransitionResult struct {
	Order            entities.Order
	AlreadyProcessed bool
}

// StateTransitionExecutor performs the idempotent pending -> paid update.
type StateTransitionExecutor struct {
	orders interfaces.IOrderRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewStateTransitionExecutor(orders interfaces.IOrderRepository, logger *zap.Logger) *StateTransitionExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StateTransitionExecutor{
		orders: orders,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger.Named("transition"),
	}
}

func (x *StateTransitionExecutor) MarkPaid(ctx context.Context, order entities.Order, ev entities.WebhookEvent) (TransitionResult, error) {
	if order.IsPaid() && PaidReplayPolicyFor(ev.Provider) == PaidReplayShortCircuit {
		x.logger.Info("order already paid; short-circuit",
			zap.String("provider", string(ev.Provider)),
			zap.String("order_id", order.ID),
		)
		return TransitionResult{Order: order, AlreadyProcessed: true}, nil
	}

	now := x.now()
	paidAt := ev.PaidAt
	if paidAt.IsZero() {
		paidAt = now
	}
	transactionID := ev.TransactionID
	if transactionID == "" {
		transactionID = order.TransactionIDFor(ev.Provider)
	}

	t := entities.PaidTransition{
		Provider:      ev.Provider,
		TransactionID: transactionID,
		AmountCents:   ev.AmountCents,
		PaidAt:        paidAt,
		Metadata:      refreshedMetadata(order.ProviderMetadata, ev, now),
	}

	updated, err := x.orders.MarkPaid(ctx, order.ID, t)
	if err != nil {
		x.logger.Error("paid update failed", zap.String("order_id", order.ID), zap.Error(err))
		return TransitionResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if updated.ID == "" {
		x.logger.Error("paid update affected no rows", zap.String("order_id", order.ID))
		return TransitionResult{}, fmt.Errorf("%w: no rows updated for order %s", ErrPersistence, order.ID)
	}
	if updated.Status != entities.OrderStatusPaid {
		x.logger.Error("paid update returned unexpected status",
			zap.String("order_id", order.ID),
			zap.String("status", string(updated.Status)),
		)
		return TransitionResult{}, fmt.Errorf("%w: order %s status is %s after update", ErrPersistence, order.ID, updated.Status)
	}

	x.logger.Info("order marked paid",
		zap.String("provider", string(ev.Provider)),
		zap.String("order_id", updated.ID),
		zap.Bool("was_paid", order.IsPaid()),
		zap.Int64("amount_cents", updated.AmountCents),
	)
	return TransitionResult{Order: updated}, nil
}

// refreshedMetadata keeps existing provider metadata and overwrites the
// last-seen webhook fields.
func refreshedMetadata(existing map[string]string, ev entities.WebhookEvent, now time.Time) map[string]string {
	out := make(map[string]string, len(existing)+4)
	for k, v := range existing {
		out[k] = v
	}
	out["last_event"] = ev.Event
	out["last_status"] = ev.Status
	out["last_webhook_at"] = now.Format(time.RFC3339Nano)
	if ev.TransactionID != "" {
		out["last_transaction_id"] = ev.TransactionID
	}
	return out
}
