package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"checkout_webhooks/internal/domain/entities"
	"checkout_webhooks/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UnknownStatusPolicy decides what an event whose status matched no known
// keyword does.
type UnknownStatusPolicy string

const (
	// UnknownStatusApprove treats the event as a payment (fail-open).
	UnknownStatusApprove UnknownStatusPolicy = "approve"
	// UnknownStatusIgnore acknowledges the event without mutating anything.
	UnknownStatusIgnore UnknownStatusPolicy = "ignore"
)

// ParseUnknownStatusPolicy falls back to UnknownStatusApprove for anything it
// does not recognize.
func ParseUnknownStatusPolicy(s string) UnknownStatusPolicy {
	if UnknownStatusPolicy(strings.ToLower(strings.TrimSpace(s))) == UnknownStatusIgnore {
		return UnknownStatusIgnore
	}
	return UnknownStatusApprove
}

const MessageAlreadyProcessed = "Already processed"

// WebhookOutcome is what the webhook endpoint answers for an event that did
// not fail.
type WebhookOutcome struct {
	HTTPStatus       int
	Processed        bool
	AlreadyProcessed bool
	OrderID          string
	Strategy         MatchStrategy
	NormalizedStatus entities.EventStatus
	EmailTriggered   bool
	LyricsGenerated  bool
	Message          string
}

// IPaymentWebhookUseCase reconciles a provider notification with an order.
//
// Pipeline: verify -> normalize -> match -> validate -> mark paid -> dispatch.
// Errors are usecase sentinels; once the order is paid the call succeeds
// regardless of side effect failures.
type IPaymentWebhookUseCase interface {
	ProcessWebhook(ctx context.Context, provider entities.Provider, raw []byte, creds Credentials) (WebhookOutcome, error)
}

type PaymentWebhookUseCase struct {
	verifier      *SignatureVerifier
	normalizer    *Normalizer
	matcher       *OrderMatcher
	validator     CrossFieldValidator
	executor      *StateTransitionExecutor
	dispatcher    interfaces.ISideEffectDispatcher
	logs          interfaces.IWebhookLogRepository
	metrics       interfaces.IWebhookMetrics
	unknownPolicy UnknownStatusPolicy
	now           func() time.Time
	logger        *zap.Logger
}

var _ IPaymentWebhookUseCase = (*PaymentWebhookUseCase)(nil)

type PaymentWebhookDeps struct {
	Verifier      *SignatureVerifier
	Orders        interfaces.IOrderRepository
	Logs          interfaces.IWebhookLogRepository
	Dispatcher    interfaces.ISideEffectDispatcher
	Metrics       interfaces.IWebhookMetrics
	UnknownPolicy UnknownStatusPolicy
	PhoneScanMax  int
	Logger        *zap.Logger
}

func NewPaymentWebhookUseCase(d PaymentWebhookDeps) *PaymentWebhookUseCase {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := d.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}
	policy := d.UnknownPolicy
	if policy == "" {
		policy = UnknownStatusApprove
	}
	return &PaymentWebhookUseCase{
		verifier:      d.Verifier,
		normalizer:    NewNormalizer(),
		matcher:       NewOrderMatcher(d.Orders, d.PhoneScanMax, logger),
		executor:      NewStateTransitionExecutor(d.Orders, logger),
		dispatcher:    d.Dispatcher,
		logs:          d.Logs,
		metrics:       metrics,
		unknownPolicy: policy,
		now:           func() time.Time { return time.Now().UTC() },
		logger:        logger.Named("webhook.usecase"),
	}
}

func (u *PaymentWebhookUseCase) ProcessWebhook(ctx context.Context, provider entities.Provider, raw []byte, creds Credentials) (WebhookOutcome, error) {
	start := u.now()
	log := u.logger.With(zap.String("provider", string(provider)))
	log.Info("webhook received", zap.Int("payload_len", len(raw)))

	if !provider.Valid() {
		return u.fail(provider, start, "unsupported", ErrUnsupportedProvider)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		log.Warn("empty payload")
		return u.fail(provider, start, "invalid_payload", ErrEmptyPayload)
	}

	verification, err := u.verifier.Verify(provider, creds)
	if err != nil {
		if errors.Is(err, ErrSecretNotConfigured) {
			log.Error("provider secret not configured")
			return u.fail(provider, start, "config_missing", err)
		}
		log.Warn("webhook authentication failed")
		return u.fail(provider, start, "unauthorized", err)
	}
	log = log.With(zap.String("auth", string(verification)))

	ev, err := u.normalizer.Normalize(provider, raw)
	if err != nil {
		if errors.Is(err, ErrNoIdentifier) {
			log.Warn("no identifier extracted", zap.String("event", ev.Event))
			u.writeLog(ctx, start, ev, MatchResult{}, false, err)
			return u.fail(provider, start, "no_identifier", err)
		}
		log.Warn("payload rejected", zap.Error(err))
		return u.fail(provider, start, "invalid_payload", err)
	}
	log = log.With(
		zap.String("event", ev.Event),
		zap.String("status", ev.Status),
		zap.String("normalized_status", string(ev.NormalizedStatus)),
		zap.String("transaction_id", ev.TransactionID),
	)
	log.Info("payload normalized", zap.Int64("amount_cents", ev.AmountCents))

	match, err := u.matcher.Match(ctx, ev)
	if err != nil {
		u.writeLog(ctx, start, ev, MatchResult{}, false, err)
		if errors.Is(err, ErrOrderNotFound) {
			log.Warn("order not found")
			return u.fail(provider, start, "not_found", err)
		}
		return u.fail(provider, start, "error", err)
	}
	u.metrics.IncMatchStrategy(string(provider), string(match.Strategy))
	log = log.With(zap.String("order_id", match.Order.ID), zap.String("strategy", string(match.Strategy)))

	out := WebhookOutcome{
		HTTPStatus:       http.StatusOK,
		OrderID:          match.Order.ID,
		Strategy:         match.Strategy,
		NormalizedStatus: ev.NormalizedStatus,
	}

	if !u.shouldApply(ev.NormalizedStatus, log) {
		log.Info("event acknowledged without changes")
		out.Message = "Event " + string(ev.NormalizedStatus) + " acknowledged"
		u.writeLog(ctx, start, ev, match, true, nil)
		u.observe(provider, start, "ignored")
		return out, nil
	}

	if err := u.validator.Validate(ev, match.Order, match.Strategy); err != nil {
		log.Warn("cross-field validation failed",
			zap.String("event_email", ev.CustomerEmail),
			zap.String("order_email", normalizeEmail(match.Order.CustomerEmail)),
		)
		u.writeLog(ctx, start, ev, match, false, err)
		return u.fail(provider, start, "mismatch", err)
	}

	transition, err := u.executor.MarkPaid(ctx, match.Order, ev)
	if err != nil {
		u.writeLog(ctx, start, ev, match, false, err)
		return u.fail(provider, start, "error", err)
	}
	if transition.AlreadyProcessed {
		out.AlreadyProcessed = true
		out.Message = MessageAlreadyProcessed
		u.writeLog(ctx, start, ev, match, true, nil)
		u.observe(provider, start, "already_processed")
		return out, nil
	}

	out.Processed = true
	out.Message = "Order marked as paid"
	u.writeLog(ctx, start, ev, match, true, nil)

	// The order is paid; side effects keep running if the provider hangs up.
	if u.dispatcher != nil {
		res := u.dispatcher.Dispatch(context.WithoutCancel(ctx), transition.Order)
		out.EmailTriggered = res.EmailTriggered
		out.LyricsGenerated = res.LyricsGenerated
		log.Info("side effects dispatched",
			zap.Bool("email_triggered", res.EmailTriggered),
			zap.String("email_skip", res.EmailSkipReason),
			zap.Bool("lyrics_generated", res.LyricsGenerated),
			zap.String("lyrics_skip", res.LyricsSkipReason),
		)
	}

	u.observe(provider, start, "processed")
	log.Info("webhook processed", zap.Int64("elapsed_ms", u.now().Sub(start).Milliseconds()))
	return out, nil
}

func (u *PaymentWebhookUseCase) shouldApply(s entities.EventStatus, log *zap.Logger) bool {
	switch s {
	case entities.EventStatusApproved:
		return true
	case entities.EventStatusUnknown:
		log.Warn("unrecognized event status", zap.String("policy", string(u.unknownPolicy)))
		return u.unknownPolicy == UnknownStatusApprove
	}
	return false
}

// writeLog appends the audit row. A failed write is logged and does not
// change the webhook result.
func (u *PaymentWebhookUseCase) writeLog(ctx context.Context, start time.Time, ev entities.WebhookEvent, match MatchResult, success bool, cause error) {
	if u.logs == nil {
		return
	}
	now := u.now()
	row := entities.WebhookLog{
		ID:            uuid.NewString(),
		Provider:      ev.Provider,
		RawPayload:    ev.Raw,
		Event:         ev.Event,
		Status:        ev.Status,
		TransactionID: ev.TransactionID,
		OrderIDHint:   ev.OrderIDHint,
		CustomerEmail: ev.CustomerEmail,
		CustomerPhone: ev.CustomerPhone,
		AmountCents:   ev.AmountCents,
		OrderFound:    match.Order.ID != "",
		OrderID:       match.Order.ID,
		Success:       success,
		StrategyUsed:  string(match.Strategy),
		ProcessingMS:  now.Sub(start).Milliseconds(),
		CreatedAt:     now,
	}
	if cause != nil {
		row.ErrorMessage = cause.Error()
	}
	if err := u.logs.Create(context.WithoutCancel(ctx), row); err != nil {
		u.logger.Error("webhook log write failed",
			zap.String("provider", string(ev.Provider)),
			zap.String("order_id", match.Order.ID),
			zap.Error(err),
		)
	}
}

func (u *PaymentWebhookUseCase) fail(provider entities.Provider, start time.Time, outcome string, err error) (WebhookOutcome, error) {
	u.observe(provider, start, outcome)
	return WebhookOutcome{}, err
}

func (u *PaymentWebhookUseCase) observe(provider entities.Provider, start time.Time, outcome string) {
	u.metrics.ObserveWebhook(string(provider), outcome, u.now().Sub(start))
}
