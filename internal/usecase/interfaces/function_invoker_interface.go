package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// IFunctionInvoker abstracts the RPC-style downstream services
// (notification email, lyrics generation): invoke(name, body) -> data | error.
type IFunctionInvoker interface {
	Invoke(ctx context.Context, name string, body any) (json.RawMessage, error)
}

// InvokeError describes a failed downstream invocation.
//
// Classification:
//   - timeouts, transport errors (Status 0), 5xx and non-JSON bodies are transient
//   - any other 4xx is permanent
type InvokeError struct {
	Name        string
	Status      int
	NonJSONBody bool
	Timeout     bool
	Message     string
	Err         error
}

func (e *InvokeError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("function %s: timeout", e.Name)
	case e.Status == 0:
		return fmt.Sprintf("function %s: transport error: %v", e.Name, e.Err)
	default:
		return fmt.Sprintf("function %s: status=%d non_json=%t message=%s", e.Name, e.Status, e.NonJSONBody, e.Message)
	}
}

func (e *InvokeError) Unwrap() error { return e.Err }

func (e *InvokeError) Retryable() bool {
	if e.Timeout || e.Status == 0 || e.NonJSONBody {
		return true
	}
	return e.Status >= 500
}

// IsRetryableInvokeError reports whether err is a transient downstream failure.
// Errors that are not InvokeErrors are treated as transport failures.
func IsRetryableInvokeError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ie *InvokeError
	if errors.As(err, &ie) {
		return ie.Retryable()
	}
	return true
}
