package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "checkout_webhooks"

// WebhookMetrics records reconciliation outcomes on its own registry.
type WebhookMetrics struct {
	registry    *prometheus.Registry
	received    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	matches     *prometheus.CounterVec
	sideEffects *prometheus.CounterVec
}

func NewWebhookMetrics() *WebhookMetrics {
	m := &WebhookMetrics{
		registry: prometheus.NewRegistry(),
		received: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhooks_total",
			Help:      "Webhooks handled, by provider and outcome.",
		}, []string{"provider", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "webhook_duration_seconds",
			Help:      "Webhook processing time, side effects included.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"provider"}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_match_total",
			Help:      "Orders matched, by provider and strategy.",
		}, []string{"provider", "strategy"}),
		sideEffects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "side_effects_total",
			Help:      "Side effect dispatch results.",
		}, []string{"effect", "result"}),
	}
	m.registry.MustRegister(
		m.received, m.duration, m.matches, m.sideEffects,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *WebhookMetrics) ObserveWebhook(provider, outcome string, elapsed time.Duration) {
	m.received.WithLabelValues(provider, outcome).Inc()
	m.duration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

func (m *WebhookMetrics) IncMatchStrategy(provider, strategy string) {
	m.matches.WithLabelValues(provider, strategy).Inc()
}

func (m *WebhookMetrics) IncSideEffect(effect, result string) {
	m.sideEffects.WithLabelValues(effect, result).Inc()
}

func (m *WebhookMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
