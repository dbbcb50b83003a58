// Package concept manages multilingual preferred labels on concept
// entities and deduplication of equivalent concepts discovered across
// languages. A class opts its instances in by satisfying the concept
// capability tag in the schema registry.
package concept

import (
	"context"
	"errors"
	"fmt"

	"github.com/c360studio/semlink/graph"
	"github.com/c360studio/semlink/schema"
)

// Standard error variables for label resolution and concept merging.
var (
	// ErrNoLabel indicates no preferred label exists for the requested
	// language or the fallback language.
	ErrNoLabel = errors.New("no preferred label")

	// ErrClassMismatch indicates a merge between concepts of different
	// classes.
	ErrClassMismatch = errors.New("concepts are not instances of the same class")
)

// Mapper attaches and resolves preferred labels on concept entities.
type Mapper struct {
	store     *graph.Store
	publisher *graph.Publisher
}

// Option configures a mapper.
type Option func(*Mapper)

// WithPublisher attaches a NATS event publisher; concept merges emit
// mutation events.
func WithPublisher(p *graph.Publisher) Option {
	return func(m *Mapper) {
		m.publisher = p
	}
}

// NewMapper creates a mapper over the given store.
func NewMapper(store *graph.Store, opts ...Option) *Mapper {
	m := &Mapper{store: store}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetLabel attaches a language-tagged label to a concept entity. When
// preferred is set and a preferred label already exists for that language,
// it is replaced (last-write-wins). Entities whose class does not satisfy
// the concept capability are rejected the same way as missing entities.
func (m *Mapper) SetLabel(conceptID, language, text string, preferred bool) error {
	ent, err := m.store.GetEntity(conceptID)
	if err != nil {
		return fmt.Errorf("concept.SetLabel: %w", err)
	}
	if !m.store.Schema().HasCapability(ent.Class, schema.CapabilityConcept) {
		return fmt.Errorf("concept.SetLabel: %s: class %s is not concept-capable: %w",
			conceptID, ent.Class, graph.ErrUnknownEntity)
	}
	if err := m.store.PutLabel(conceptID, language, text, preferred); err != nil {
		return fmt.Errorf("concept.SetLabel: %w", err)
	}
	return nil
}

// Resolve returns the preferred label for the language. When absent and a
// fallback language is given, the fallback's preferred label is returned.
func (m *Mapper) Resolve(conceptID, language, fallbackLanguage string) (string, error) {
	if !m.store.HasEntity(conceptID) {
		return "", fmt.Errorf("concept.Resolve: %s: %w", conceptID, graph.ErrUnknownEntity)
	}

	labels := m.store.LabelsOf(conceptID)
	if text, ok := preferredText(labels, language); ok {
		return text, nil
	}
	if fallbackLanguage != "" {
		if text, ok := preferredText(labels, fallbackLanguage); ok {
			return text, nil
		}
	}
	return "", fmt.Errorf("concept.Resolve: %s: language %q: %w", conceptID, language, ErrNoLabel)
}

// MergeConcepts re-points all labels and relations of b onto a and removes
// b. Both entities must be instances of the same concept class; merging is
// always explicit, never triggered by matching label text.
func (m *Mapper) MergeConcepts(ctx context.Context, a, b string) error {
	entA, err := m.store.GetEntity(a)
	if err != nil {
		return fmt.Errorf("concept.MergeConcepts: %w", err)
	}
	entB, err := m.store.GetEntity(b)
	if err != nil {
		return fmt.Errorf("concept.MergeConcepts: %w", err)
	}
	if entA.Class != entB.Class {
		return fmt.Errorf("concept.MergeConcepts: %s (%s) vs %s (%s): %w",
			a, entA.Class, b, entB.Class, ErrClassMismatch)
	}
	if !m.store.Schema().HasCapability(entA.Class, schema.CapabilityConcept) {
		return fmt.Errorf("concept.MergeConcepts: class %s is not concept-capable: %w",
			entA.Class, ErrClassMismatch)
	}
	if err := m.store.MergeEntities(a, b); err != nil {
		return fmt.Errorf("concept.MergeConcepts: %w", err)
	}

	if err := m.publisher.Publish(ctx, graph.Event{
		Kind:      graph.EventConceptsMerged,
		Namespace: entA.Namespace,
		Detail:    fmt.Sprintf("%s absorbed %s", a, b),
	}); err != nil {
		return fmt.Errorf("concept.MergeConcepts: %w", err)
	}
	return nil
}

func preferredText(labels []graph.Label, language string) (string, bool) {
	for _, l := range labels {
		if l.Language == language && l.Preferred {
			return l.Text, true
		}
	}
	return "", false
}
