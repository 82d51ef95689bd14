// Package metrics exposes Prometheus instrumentation for the search
// pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the collectors the search pipeline updates.
type Registry struct {
	reg *prometheus.Registry

	// Searches counts search requests accepted by the orchestrator.
	Searches prometheus.Counter

	// ValidationFailures counts requests rejected for missing fields.
	ValidationFailures prometheus.Counter

	// SampleFallbacks counts searches answered with sample data.
	SampleFallbacks prometheus.Counter

	// SearchDuration observes end-to-end search latency.
	SearchDuration prometheus.Histogram

	// ProviderResults counts raw records contributed, per provider.
	ProviderResults *prometheus.CounterVec

	// ProviderFailures counts contained provider errors, per provider.
	ProviderFailures *prometheus.CounterVec
}

// NewRegistry creates a registry with all pipeline collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	searches := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eventscout_searches_total",
		Help: "Search requests accepted by the orchestrator.",
	})
	validation := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eventscout_search_validation_failures_total",
		Help: "Search requests rejected for missing fields.",
	})
	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eventscout_sample_fallbacks_total",
		Help: "Searches answered with sample data.",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "eventscout_search_duration_seconds",
		Help:    "End-to-end search latency.",
		Buckets: prometheus.DefBuckets,
	})
	results := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventscout_provider_results_total",
			Help: "Raw records contributed, per provider.",
		},
		[]string{"provider"},
	)
	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventscout_provider_failures_total",
			Help: "Contained provider errors, per provider.",
		},
		[]string{"provider"},
	)

	reg.MustRegister(searches, validation, fallbacks, duration, results, failures)
	return &Registry{
		reg:                reg,
		Searches:           searches,
		ValidationFailures: validation,
		SampleFallbacks:    fallbacks,
		SearchDuration:     duration,
		ProviderResults:    results,
		ProviderFailures:   failures,
	}
}

// Handler returns the HTTP handler serving the registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
