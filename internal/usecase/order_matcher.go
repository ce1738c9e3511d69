package usecase

import (
	"context"
	"fmt"
	"sort"

	"checkout_webhooks/internal/domain/entities"
	"checkout_webhooks/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatchStrategy names one heuristic of the order matching cascade.
type MatchStrategy string

const (
	StrategyOrderID         MatchStrategy = "order_id"
	StrategyTransactionID   MatchStrategy = "transaction_id"
	StrategyEmailMostRecent MatchStrategy = "email_most_recent"
	StrategyPhoneMostRecent MatchStrategy = "phone_most_recent"
)

// Reliable reports whether a match through this strategy identifies the
// order strongly enough to skip cross-field validation.
func (s MatchStrategy) Reliable() bool {
	switch s {
	case StrategyOrderID, StrategyTransactionID, StrategyPhoneMostRecent:
		return true
	}
	return false
}

const defaultPhoneScanLimit = 200

type MatchResult struct {
	Order    entities.Order
	Strategy MatchStrategy
}

type matchStep struct {
	strategy MatchStrategy
	find     func(ctx context.Context, ev entities.WebhookEvent) (entities.Order, error)
}

// OrderMatcher runs the provider's ordered lookup cascade. Each step runs only
// when every previous step found nothing; the first hit wins.
type OrderMatcher struct {
	orders         interfaces.IOrderRepository
	phoneScanLimit int
	logger         *zap.Logger
}

func NewOrderMatcher(orders interfaces.IOrderRepository, phoneScanLimit int, logger *zap.Logger) *OrderMatcher {
	if phoneScanLimit <= 0 {
		phoneScanLimit = defaultPhoneScanLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderMatcher{orders: orders, phoneScanLimit: phoneScanLimit, logger: logger.Named("matcher")}
}

func (m *OrderMatcher) Match(ctx context.Context, ev entities.WebhookEvent) (MatchResult, error) {
	steps, err := m.cascade(ev.Provider)
	if err != nil {
		return MatchResult{}, err
	}

	for _, step := range steps {
		order, err := step.find(ctx, ev)
		if err != nil {
			m.logger.Error("strategy lookup failed",
				zap.String("provider", string(ev.Provider)),
				zap.String("strategy", string(step.strategy)),
				zap.Error(err),
			)
			return MatchResult{}, fmt.Errorf("%w: %s lookup: %v", ErrPersistence, step.strategy, err)
		}
		if order.ID == "" {
			m.logger.Debug("strategy missed",
				zap.String("provider", string(ev.Provider)),
				zap.String("strategy", string(step.strategy)),
			)
			continue
		}
		m.logger.Info("order matched",
			zap.String("provider", string(ev.Provider)),
			zap.String("strategy", string(step.strategy)),
			zap.String("order_id", order.ID),
		)
		return MatchResult{Order: order, Strategy: step.strategy}, nil
	}

	return MatchResult{}, ErrOrderNotFound
}

func (m *OrderMatcher) cascade(p entities.Provider) ([]matchStep, error) {
	switch p {
	case entities.ProviderCakto:
		return []matchStep{
			{StrategyOrderID, m.byOrderID},
			{StrategyTransactionID, m.byTransactionID},
			{StrategyEmailMostRecent, m.byEmail},
			{StrategyPhoneMostRecent, m.byPhone},
		}, nil
	case entities.ProviderHotmart:
		return []matchStep{
			{StrategyTransactionID, m.byTransactionID},
			{StrategyEmailMostRecent, m.byEmail},
			{StrategyPhoneMostRecent, m.byPhone},
		}, nil
	}
	return nil, ErrUnsupportedProvider
}

func (m *OrderMatcher) byOrderID(ctx context.Context, ev entities.WebhookEvent) (entities.Order, error) {
	if ev.OrderIDHint == "" {
		return entities.Order{}, nil
	}
	id, err := uuid.Parse(ev.OrderIDHint)
	if err != nil {
		return entities.Order{}, nil
	}
	order, err := m.orders.GetByID(ctx, id.String())
	if err != nil {
		return entities.Order{}, err
	}
	if order.Provider != ev.Provider {
		return entities.Order{}, nil
	}
	return order, nil
}

func (m *OrderMatcher) byTransactionID(ctx context.Context, ev entities.WebhookEvent) (entities.Order, error) {
	if ev.TransactionID == "" {
		return entities.Order{}, nil
	}
	order, err := m.orders.GetByTransactionID(ctx, ev.Provider, ev.TransactionID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.TransactionIDFor(ev.Provider) != ev.TransactionID {
		return entities.Order{}, nil
	}
	return order, nil
}

func (m *OrderMatcher) byEmail(ctx context.Context, ev entities.WebhookEvent) (entities.Order, error) {
	if ev.CustomerEmail == "" {
		return entities.Order{}, nil
	}
	return m.orders.FindLatestPendingByEmail(ctx, ev.Provider, ev.CustomerEmail)
}

func (m *OrderMatcher) byPhone(ctx context.Context, ev entities.WebhookEvent) (entities.Order, error) {
	if digitsOnly(ev.CustomerPhone) == "" {
		return entities.Order{}, nil
	}
	candidates, err := m.orders.ListPendingByProvider(ctx, ev.Provider, m.phoneScanLimit)
	if err != nil {
		return entities.Order{}, err
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
	})
	for _, o := range candidates {
		if o.Status != entities.OrderStatusPending {
			continue
		}
		if phonesMatch(o.CustomerWhatsapp, ev.CustomerPhone) {
			return o, nil
		}
	}
	return entities.Order{}, nil
}
