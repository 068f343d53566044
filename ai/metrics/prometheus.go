// Package metrics provides Prometheus metrics export for the note
// enrichment pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exports enrichment metrics in Prometheus format.
type Collector struct {
	registry *prometheus.Registry

	summaries *prometheus.CounterVec // by source: llm | fallback
	fallbacks *prometheus.CounterVec // by reason
	latency   prometheus.Histogram
}

// NewCollector creates a new Prometheus metrics collector.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		summaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicalnotes",
			Name:      "summaries_total",
			Help:      "Number of note summaries produced, by source.",
		}, []string{"source"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicalnotes",
			Name:      "summary_fallbacks_total",
			Help:      "Number of fallback summaries, by failure reason.",
		}, []string{"reason"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "clinicalnotes",
			Name:      "inference_duration_seconds",
			Help:      "Wall-clock duration of LLM summarization calls.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}),
	}

	registry.MustRegister(c.summaries, c.fallbacks, c.latency)
	return c
}

// RecordSummary counts a produced summary and its latency.
// Nil collectors are valid and record nothing, which keeps the
// summarizer usable in tests without a registry.
func (c *Collector) RecordSummary(source string, duration time.Duration) {
	if c == nil {
		return
	}
	c.summaries.WithLabelValues(source).Inc()
	// Fallback summaries carry no inference call, so they report a zero
	// duration and must not contaminate the latency histogram.
	if duration > 0 {
		c.latency.Observe(duration.Seconds())
	}
}

// RecordFallback counts a fallback activation by reason.
func (c *Collector) RecordFallback(reason string) {
	if c == nil {
		return
	}
	c.fallbacks.WithLabelValues(reason).Inc()
}

// Handler returns the HTTP handler serving the metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
