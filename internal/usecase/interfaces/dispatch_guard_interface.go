package interfaces

import (
	"context"
	"time"
)

// IDispatchGuard is a short-lived cross-instance claim on a side effect key.
type IDispatchGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
