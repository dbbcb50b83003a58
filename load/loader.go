// Package load is the bulk entry point of semlink. It turns serialized
// triple records into validated store writes under a namespace tag,
// reporting per-record rejects by default or rolling the whole namespace
// back in atomic mode.
package load

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/c360studio/semlink/concept"
	"github.com/c360studio/semlink/export"
	"github.com/c360studio/semlink/graph"
	"github.com/c360studio/semlink/metric"
	"github.com/c360studio/semlink/schema"
	"github.com/c360studio/semlink/vocabulary"
)

// ErrAtomicLoad is returned when an all-or-nothing load hits any reject;
// the namespace is purged before returning.
var ErrAtomicLoad = errors.New("atomic load rejected records")

// Reject is one record the loader refused, with its failure kind.
type Reject struct {
	Record export.Record `json:"record"`
	Kind   string        `json:"kind"`
	Reason string        `json:"reason"`
}

// Result summarizes one bulk load.
type Result struct {
	Namespace string   `json:"namespace"`
	BatchID   string   `json:"batch_id"`
	Entities  int      `json:"entities"`
	Relations int      `json:"relations"`
	Labels    int      `json:"labels"`
	Rejects   []Reject `json:"rejects,omitempty"`
}

// Loader loads serialized records into a store.
type Loader struct {
	store     *graph.Store
	mapper    *concept.Mapper
	publisher *graph.Publisher
	metrics   *metric.Metrics
}

// Option configures a loader.
type Option func(*Loader)

// WithPublisher attaches a NATS event publisher; loads and purges emit
// mutation events.
func WithPublisher(p *graph.Publisher) Option {
	return func(l *Loader) {
		l.publisher = p
	}
}

// WithMetrics attaches a metrics registry; rejects increment it by kind.
func WithMetrics(m *metric.Metrics) Option {
	return func(l *Loader) {
		l.metrics = m
	}
}

// NewLoader creates a loader over the given store.
func NewLoader(store *graph.Store, opts ...Option) *Loader {
	l := &Loader{
		store:  store,
		mapper: concept.NewMapper(store),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadRecords loads a batch of records under a namespace. Entity type
// declarations load first so attributes, labels, and relations resolve
// regardless of record order. By default failures are isolated per record
// and reported as rejects; with atomic set, any reject purges the
// namespace and fails the whole call.
func (l *Loader) LoadRecords(ctx context.Context, namespace string, records []export.Record, atomic bool) (*Result, error) {
	result := &Result{
		Namespace: namespace,
		BatchID:   uuid.NewString(),
	}

	// Pass 1: entities.
	for _, rec := range records {
		if rec.Predicate != vocabulary.RDFType {
			continue
		}
		if rec.IsLiteral {
			l.reject(result, rec, fmt.Errorf("load.LoadRecords: rdf:type object must be an IRI: %w", graph.ErrUnknownClass))
			continue
		}
		if err := l.store.AddEntity(namespace, rec.Subject, rec.Object, nil); err != nil {
			l.reject(result, rec, err)
			continue
		}
		result.Entities++
	}

	// Pass 2: attributes, labels, relations.
	for _, rec := range records {
		if rec.Predicate == vocabulary.RDFType {
			continue
		}

		switch {
		case rec.Predicate == vocabulary.SKOSPrefLabel || rec.Predicate == vocabulary.SKOSAltLabel:
			preferred := rec.Predicate == vocabulary.SKOSPrefLabel
			if err := l.mapper.SetLabel(rec.Subject, rec.Language, rec.Object, preferred); err != nil {
				l.reject(result, rec, err)
				continue
			}
			result.Labels++

		case rec.IsLiteral:
			ent, err := l.store.GetEntity(rec.Subject)
			if err != nil {
				l.reject(result, rec, err)
				continue
			}
			attrs := map[string]string{rec.Predicate: rec.Object}
			if err := l.store.AddEntity(namespace, rec.Subject, ent.Class, attrs); err != nil {
				l.reject(result, rec, err)
			}

		default:
			if err := l.store.AddRelation(namespace, rec.Subject, rec.Predicate, rec.Object); err != nil {
				l.reject(result, rec, err)
				continue
			}
			result.Relations++
		}
	}

	if atomic && len(result.Rejects) > 0 {
		if _, err := l.store.RemoveGraph(namespace); err != nil && !errors.Is(err, graph.ErrUnknownNamespace) {
			return result, fmt.Errorf("load.LoadRecords: rollback: %w", err)
		}
		return result, fmt.Errorf("load.LoadRecords: %s: %d rejects: %w",
			namespace, len(result.Rejects), ErrAtomicLoad)
	}

	if err := l.publisher.Publish(ctx, graph.Event{
		Kind:      graph.EventNamespaceLoaded,
		Namespace: namespace,
		BatchID:   result.BatchID,
		Stats: graph.Stats{
			Entities:  result.Entities,
			Relations: result.Relations,
			Labels:    result.Labels,
		},
	}); err != nil {
		return result, fmt.Errorf("load.LoadRecords: %w", err)
	}

	return result, nil
}

// Purge removes a namespace and publishes the removal event.
func (l *Loader) Purge(ctx context.Context, namespace string) (graph.Stats, error) {
	removed, err := l.store.RemoveGraph(namespace)
	if err != nil {
		return removed, fmt.Errorf("load.Purge: %w", err)
	}
	if err := l.publisher.Publish(ctx, graph.Event{
		Kind:      graph.EventNamespaceRemoved,
		Namespace: namespace,
		Stats:     removed,
	}); err != nil {
		return removed, fmt.Errorf("load.Purge: %w", err)
	}
	return removed, nil
}

func (l *Loader) reject(result *Result, rec export.Record, err error) {
	kind := failureKind(err)
	result.Rejects = append(result.Rejects, Reject{
		Record: rec,
		Kind:   kind,
		Reason: err.Error(),
	})
	if l.metrics != nil {
		l.metrics.LoadRejects.WithLabelValues(kind).Inc()
	}
}

// failureKind classifies a write error into the reject kinds the load
// entry point reports.
func failureKind(err error) string {
	switch {
	case errors.Is(err, graph.ErrUnknownClass):
		return "unknown_class"
	case errors.Is(err, graph.ErrDuplicateEntity):
		return "duplicate_entity"
	case errors.Is(err, graph.ErrUnknownProperty):
		return "unknown_property"
	case errors.Is(err, graph.ErrUnknownEntity):
		return "unknown_entity"
	case errors.Is(err, graph.ErrDomainMismatch):
		return "domain_mismatch"
	case errors.Is(err, graph.ErrRangeMismatch):
		return "range_mismatch"
	case errors.Is(err, graph.ErrCardinalityViolation):
		return "cardinality_violation"
	case errors.Is(err, schema.ErrNotFound):
		return "not_found"
	default:
		return "invalid"
	}
}
