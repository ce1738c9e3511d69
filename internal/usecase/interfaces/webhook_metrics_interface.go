package interfaces

import "time"

// IWebhookMetrics records reconciliation outcomes. Labels must stay low-cardinality.
type IWebhookMetrics interface {
	ObserveWebhook(provider, outcome string, elapsed time.Duration)
	IncMatchStrategy(provider, strategy string)
	IncSideEffect(effect, result string)
}
