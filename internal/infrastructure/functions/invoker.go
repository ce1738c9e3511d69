package functions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"checkout_webhooks/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var ErrFunctionsNotConfigured = errors.New("functions base url not configured")

// Invoker calls downstream functions as POST {baseURL}/{name} with the service
// bearer key. In mock mode every call succeeds without leaving the process.
type Invoker struct {
	client   *resty.Client
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IFunctionInvoker = (*Invoker)(nil)

type Options struct {
	BaseURL    string
	ServiceKey string
	Timeout    time.Duration
	Mock       bool
}

func NewInvoker(opts Options, logger *zap.Logger) (*Invoker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("functions")
	if opts.Mock {
		logger.Info("functions mock mode enabled")
		return &Invoker{mockMode: true, logger: logger}, nil
	}
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, ErrFunctionsNotConfigured
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if opts.ServiceKey != "" {
		client.SetAuthToken(opts.ServiceKey)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	return &Invoker{client: client, logger: logger}, nil
}

func (i *Invoker) Invoke(ctx context.Context, name string, body any) (json.RawMessage, error) {
	if i.mockMode {
		i.logger.Info("mock invoke", zap.String("function", name))
		return json.Marshal(map[string]any{"success": true, "mock": true, "function": name})
	}

	start := time.Now()
	resp, err := i.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/" + strings.TrimLeft(name, "/"))
	if err != nil {
		ie := &interfaces.InvokeError{Name: name, Err: err}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			ie.Timeout = true
		}
		i.logger.Warn("invoke transport error", zap.String("function", name), zap.Error(err))
		return nil, ie
	}

	status := resp.StatusCode()
	raw := resp.Body()
	i.logger.Debug("invoke finished",
		zap.String("function", name),
		zap.Int("status", status),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)

	isJSON := len(strings.TrimSpace(string(raw))) == 0 || json.Valid(raw)
	if status >= 200 && status < 300 {
		if !isJSON {
			return nil, &interfaces.InvokeError{Name: name, Status: status, NonJSONBody: true, Message: snippet(raw)}
		}
		return json.RawMessage(raw), nil
	}

	return nil, &interfaces.InvokeError{
		Name:        name,
		Status:      status,
		NonJSONBody: !isJSON,
		Message:     errorMessage(raw, isJSON),
	}
}

func errorMessage(raw []byte, isJSON bool) string {
	if isJSON {
		var body struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &body); err == nil {
			if body.Error != "" {
				return body.Error
			}
			if body.Message != "" {
				return body.Message
			}
		}
	}
	return snippet(raw)
}

func snippet(raw []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(raw))
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
