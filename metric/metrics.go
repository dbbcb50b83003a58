// Package metric exposes Prometheus instrumentation for the semlink store,
// loader, validator, and query engine.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the collectors semlink components increment.
type Metrics struct {
	// EntitiesAdded counts entities accepted by the store.
	EntitiesAdded prometheus.Counter

	// RelationsAdded counts relations accepted by the store.
	RelationsAdded prometheus.Counter

	// LabelsWritten counts concept labels written.
	LabelsWritten prometheus.Counter

	// LoadRejects counts bulk-load records rejected, by failure kind.
	LoadRejects *prometheus.CounterVec

	// Violations counts consistency findings, by check kind.
	Violations *prometheus.CounterVec

	// TraceDuration observes path-query traversal time in seconds.
	TraceDuration prometheus.Histogram
}

// New registers the semlink collectors with the given registerer.
// Pass prometheus.DefaultRegisterer for the process-wide registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EntitiesAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "semlink_entities_added_total",
			Help: "Entities accepted by the instance graph store.",
		}),
		RelationsAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "semlink_relations_added_total",
			Help: "Relations accepted by the instance graph store.",
		}),
		LabelsWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "semlink_labels_written_total",
			Help: "Concept labels written by the concept mapper.",
		}),
		LoadRejects: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "semlink_load_rejects_total",
			Help: "Bulk-load records rejected, by failure kind.",
		}, []string{"kind"}),
		Violations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "semlink_validation_violations_total",
			Help: "Consistency validator findings, by check kind.",
		}, []string{"kind"}),
		TraceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "semlink_trace_duration_seconds",
			Help:    "Path query traversal duration.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
