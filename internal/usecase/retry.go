package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"checkout_webhooks/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

var errFunctionReportedFailure = errors.New("function reported success=false")

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
	defaultCallTimeout = 30 * time.Second
)

// RetryPolicy bounds downstream retries. The wait after failed attempt n is
// BaseDelay * 2^(n-1).
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	CallTimeout time.Duration
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultMaxAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = defaultBaseDelay
	}
	if p.CallTimeout <= 0 {
		p.CallTimeout = defaultCallTimeout
	}
	return p
}

func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return p.BaseDelay * time.Duration(1<<(attempt-1))
}

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

func contextSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// doublingBackOff yields the policy delay after each failed attempt and stops
// once MaxAttempts calls have been made.
type doublingBackOff struct {
	policy RetryPolicy
	failed int
}

func (b *doublingBackOff) NextBackOff() time.Duration {
	b.failed++
	if b.failed >= b.policy.MaxAttempts {
		return backoff.Stop
	}
	return b.policy.Delay(b.failed)
}

func (b *doublingBackOff) Reset() { b.failed = 0 }

type RetryOutcome struct {
	Data      json.RawMessage
	Attempts  int
	Succeeded bool
	Delays    []time.Duration
	LastErr   error
}

// RetryInvoke calls a downstream function until it succeeds, fails
// permanently, or the attempt ceiling is reached. Each call gets its own
// timeout; a timeout counts as a transient failure.
func RetryInvoke(
	ctx context.Context,
	invoker interfaces.IFunctionInvoker,
	name string,
	body any,
	policy RetryPolicy,
	logger *zap.Logger,
) RetryOutcome {
	policy = policy.withDefaults()
	out := RetryOutcome{}

	operation := func() (json.RawMessage, error) {
		out.Attempts++
		attempt := out.Attempts

		callCtx, cancel := context.WithTimeout(ctx, policy.CallTimeout)
		data, err := invoker.Invoke(callCtx, name, body)
		timedOut := errors.Is(callCtx.Err(), context.DeadlineExceeded)
		cancel()

		if err == nil && functionSucceeded(data) {
			return data, nil
		}

		retryable := true
		switch {
		case err == nil:
			out.LastErr = fmt.Errorf("%s: %w", name, errFunctionReportedFailure)
		case timedOut:
			out.LastErr = &interfaces.InvokeError{Name: name, Timeout: true, Err: err}
		default:
			out.LastErr = err
			retryable = interfaces.IsRetryableInvokeError(err)
		}

		logger.Warn("function attempt failed",
			zap.String("function", name),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", policy.MaxAttempts),
			zap.Bool("retryable", retryable),
			zap.Error(out.LastErr),
		)
		if !retryable {
			return nil, backoff.Permanent(out.LastErr)
		}
		return nil, out.LastErr
	}

	data, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(&doublingBackOff{policy: policy}),
		backoff.WithMaxTries(uint(policy.MaxAttempts)),
		backoff.WithNotify(func(_ error, next time.Duration) {
			out.Delays = append(out.Delays, next)
		}),
	)
	if err == nil {
		out.Data = data
		out.Succeeded = true
		logger.Info("function succeeded", zap.String("function", name), zap.Int("attempt", out.Attempts))
		return out
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		out.LastErr = ctxErr
	}

	logger.Error("function gave up",
		zap.String("function", name),
		zap.Int("attempts", out.Attempts),
		zap.Error(out.LastErr),
	)
	return out
}

// functionSucceeded treats a result as successful unless it explicitly says
// success=false, or carries an error while saying nothing about success.
func functionSucceeded(data json.RawMessage) bool {
	if len(data) == 0 {
		return true
	}
	var res map[string]any
	if err := json.Unmarshal(data, &res); err != nil {
		return true
	}
	if v, ok := res["success"]; ok {
		if b, isBool := v.(bool); isBool && !b {
			return false
		}
		return true
	}
	if v, ok := res["error"]; ok && v != nil && v != "" {
		return false
	}
	return true
}
