package response

import "checkout_webhooks/internal/usecase"

// WebhookResponse is the JSON body answered to payment providers.
type WebhookResponse struct {
	Success          bool   `json:"success,omitempty"`
	Received         bool   `json:"received,omitempty"`
	Processed        *bool  `json:"processed,omitempty"`
	Message          string `json:"message,omitempty"`
	OrderID          string `json:"order_id,omitempty"`
	StrategyUsed     string `json:"strategy_used,omitempty"`
	NormalizedStatus string `json:"normalized_status,omitempty"`
	LyricsGenerated  *bool  `json:"lyrics_generated,omitempty"`
	EmailTriggered   *bool  `json:"email_triggered,omitempty"`
}

func FromWebhookOutcome(o usecase.WebhookOutcome) WebhookResponse {
	if o.AlreadyProcessed {
		return WebhookResponse{
			Received: true,
			Message:  o.Message,
			OrderID:  o.OrderID,
		}
	}

	res := WebhookResponse{
		Success:          true,
		Processed:        boolPtr(o.Processed),
		Message:          o.Message,
		OrderID:          o.OrderID,
		StrategyUsed:     string(o.Strategy),
		NormalizedStatus: string(o.NormalizedStatus),
	}
	if o.Processed {
		res.LyricsGenerated = boolPtr(o.LyricsGenerated)
		res.EmailTriggered = boolPtr(o.EmailTriggered)
	}
	return res
}

func boolPtr(b bool) *bool { return &b }
