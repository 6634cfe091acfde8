// Package metric defines the converter's Prometheus metrics: per-dataset
// reaction counts by status, conversion durations, and emitted triples.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics contains all conversion metrics.
type Metrics struct {
	ReactionsProcessed *prometheus.CounterVec
	DatasetsProcessed  *prometheus.CounterVec
	ConversionDuration *prometheus.HistogramVec
	TriplesEmitted     *prometheus.CounterVec
}

// NewMetrics creates the metric set.
func NewMetrics() *Metrics {
	return &Metrics{
		ReactionsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rxnkg",
				Subsystem: "reactions",
				Name:      "processed_total",
				Help:      "Total number of reactions processed",
			},
			[]string{"dataset", "status"},
		),

		DatasetsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rxnkg",
				Subsystem: "datasets",
				Name:      "processed_total",
				Help:      "Total number of datasets processed",
			},
			[]string{"status"},
		),

		ConversionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "rxnkg",
				Subsystem: "reactions",
				Name:      "conversion_duration_seconds",
				Help:      "Per-reaction conversion duration",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"dataset"},
		),

		TriplesEmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rxnkg",
				Subsystem: "graphs",
				Name:      "triples_emitted_total",
				Help:      "Total number of triples written to documents",
			},
			[]string{"dataset"},
		),
	}
}

// Registry bundles the metric set with its Prometheus registry.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	Metrics            *Metrics
}

// NewRegistry creates a registry with the conversion metrics plus Go
// runtime collectors registered.
func NewRegistry() *Registry {
	r := &Registry{
		prometheusRegistry: prometheus.NewRegistry(),
		Metrics:            NewMetrics(),
	}
	r.prometheusRegistry.MustRegister(
		r.Metrics.ReactionsProcessed,
		r.Metrics.DatasetsProcessed,
		r.Metrics.ConversionDuration,
		r.Metrics.TriplesEmitted,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// PrometheusRegistry returns the underlying Prometheus registry for
// exposition handlers.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}
