package graph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/c360studio/semlink/metric"
	"github.com/c360studio/semlink/schema"
)

// Store is the instance graph store. It validates every write against the
// schema registry and keeps entities, relations, and labels partitioned by
// load namespace.
type Store struct {
	mu     sync.RWMutex
	schema *schema.Registry

	entities map[string]*Entity
	order    []string // entity IDs in insertion order

	relations []Relation            // global insertion order
	outgoing  map[string][]Relation // per source, insertion order
	incoming  map[string][]Relation // per target, insertion order

	labels map[string][]Label // per entity, insertion order

	namespaces map[string]bool

	metrics *metric.Metrics
}

// StoreOption configures a store.
type StoreOption func(*Store)

// WithMetrics attaches a metrics registry; write operations increment it.
func WithMetrics(m *metric.Metrics) StoreOption {
	return func(s *Store) {
		s.metrics = m
	}
}

// NewStore creates an empty store validated against the given registry.
func NewStore(reg *schema.Registry, opts ...StoreOption) *Store {
	s := &Store{
		schema:     reg,
		entities:   make(map[string]*Entity),
		outgoing:   make(map[string][]Relation),
		incoming:   make(map[string][]Relation),
		labels:     make(map[string][]Label),
		namespaces: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schema returns the registry this store validates against.
func (s *Store) Schema() *schema.Registry {
	return s.schema
}

// AddEntity stores an entity of the given class under a namespace.
// Re-adding an existing entity with the same class merges attributes and is
// not an error; a different class fails with ErrDuplicateEntity.
func (s *Store) AddEntity(namespace, id, classIRI string, attrs map[string]string) error {
	if _, err := s.schema.ResolveClass(classIRI); err != nil {
		return fmt.Errorf("graph.AddEntity: %s: class %s: %w", id, classIRI, ErrUnknownClass)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entities[id]; ok {
		if existing.Class != classIRI {
			return fmt.Errorf("graph.AddEntity: %s: registered as %s, got %s: %w",
				id, existing.Class, classIRI, ErrDuplicateEntity)
		}
		for k, v := range attrs {
			if existing.Attrs == nil {
				existing.Attrs = make(map[string]string)
			}
			existing.Attrs[k] = v
		}
		return nil
	}

	ent := &Entity{ID: id, Class: classIRI, Namespace: namespace}
	if len(attrs) > 0 {
		ent.Attrs = make(map[string]string, len(attrs))
		for k, v := range attrs {
			ent.Attrs[k] = v
		}
	}
	s.entities[id] = ent
	s.order = append(s.order, id)
	s.namespaces[namespace] = true

	if s.metrics != nil {
		s.metrics.EntitiesAdded.Inc()
	}
	return nil
}

// AddRelation stores a typed directed relation after validating the
// property's domain, range, and cardinality. Re-adding an identical
// relation is idempotent.
func (s *Store) AddRelation(namespace, source, propertyIRI, target string) error {
	prop, err := s.schema.ResolveProperty(propertyIRI)
	if err != nil {
		return fmt.Errorf("graph.AddRelation: property %s: %w", propertyIRI, ErrUnknownProperty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.entities[source]
	if !ok {
		return fmt.Errorf("graph.AddRelation: source %s: %w", source, ErrUnknownEntity)
	}
	tgt, ok := s.entities[target]
	if !ok {
		return fmt.Errorf("graph.AddRelation: target %s: %w", target, ErrUnknownEntity)
	}

	if !s.schema.IsSubclassOf(src.Class, prop.Domain) {
		return fmt.Errorf("graph.AddRelation: %s: source class %s vs domain %s: %w",
			propertyIRI, src.Class, prop.Domain, ErrDomainMismatch)
	}
	if !s.schema.IsSubclassOf(tgt.Class, prop.Range) {
		return fmt.Errorf("graph.AddRelation: %s: target class %s vs range %s: %w",
			propertyIRI, tgt.Class, prop.Range, ErrRangeMismatch)
	}

	for _, rel := range s.outgoing[source] {
		if rel.Property != propertyIRI {
			continue
		}
		if rel.Target == target {
			return nil // identical relation, idempotent
		}
		if prop.Cardinality == schema.CardinalityOne {
			return fmt.Errorf("graph.AddRelation: %s already relates %s to %s: %w",
				propertyIRI, source, rel.Target, ErrCardinalityViolation)
		}
	}

	rel := Relation{Source: source, Property: propertyIRI, Target: target, Namespace: namespace}
	s.relations = append(s.relations, rel)
	s.outgoing[source] = append(s.outgoing[source], rel)
	s.incoming[target] = append(s.incoming[target], rel)
	s.namespaces[namespace] = true

	if s.metrics != nil {
		s.metrics.RelationsAdded.Inc()
	}
	return nil
}

// GetEntity returns a copy of the stored entity.
func (s *Store) GetEntity(id string) (Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ent, ok := s.entities[id]
	if !ok {
		return Entity{}, fmt.Errorf("graph.GetEntity: %s: %w", id, ErrUnknownEntity)
	}
	return copyEntity(ent), nil
}

// HasEntity reports whether an entity ID is present.
func (s *Store) HasEntity(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entities[id]
	return ok
}

// EntitiesOfType returns the IDs of entities whose class is classIRI, in
// insertion order. With includeSubclasses, instances of descendant classes
// are included.
func (s *Store) EntitiesOfType(classIRI string, includeSubclasses bool) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for _, id := range s.order {
		ent := s.entities[id]
		if ent.Class == classIRI || (includeSubclasses && s.schema.IsSubclassOf(ent.Class, classIRI)) {
			out = append(out, id)
		}
	}
	return out
}

// Entities returns copies of all entities in insertion order.
func (s *Store) Entities() []Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyEntity(s.entities[id]))
	}
	return out
}

// RelationsFrom returns the outgoing relations of an entity in insertion
// order, optionally filtered to one property. An empty propertyIRI matches
// all properties.
func (s *Store) RelationsFrom(entityID, propertyIRI string) []Relation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRelations(s.outgoing[entityID], propertyIRI)
}

// RelationsTo returns the incoming relations of an entity in insertion
// order, optionally filtered to one property.
func (s *Store) RelationsTo(entityID, propertyIRI string) []Relation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRelations(s.incoming[entityID], propertyIRI)
}

// Relations returns all relations in insertion order.
func (s *Store) Relations() []Relation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Relation, len(s.relations))
	copy(out, s.relations)
	return out
}

// PutLabel attaches a language-tagged label to an entity. When preferred,
// an existing preferred label for the same language is replaced
// (last-write-wins). Capability checks belong to the concept mapper; the
// store only requires the entity to exist.
func (s *Store) PutLabel(entityID, language, text string, preferred bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entities[entityID]; !ok {
		return fmt.Errorf("graph.PutLabel: %s: %w", entityID, ErrUnknownEntity)
	}

	labels := s.labels[entityID]
	if preferred {
		for i := range labels {
			if labels[i].Language == language && labels[i].Preferred {
				labels[i].Text = text
				return nil
			}
		}
	} else {
		for i := range labels {
			if labels[i].Language == language && !labels[i].Preferred && labels[i].Text == text {
				return nil // identical alternative label, idempotent
			}
		}
	}

	s.labels[entityID] = append(labels, Label{
		Entity:    entityID,
		Language:  language,
		Text:      text,
		Preferred: preferred,
	})
	if s.metrics != nil {
		s.metrics.LabelsWritten.Inc()
	}
	return nil
}

// LabelsOf returns copies of an entity's labels in insertion order.
func (s *Store) LabelsOf(entityID string) []Label {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Label, len(s.labels[entityID]))
	copy(out, s.labels[entityID])
	return out
}

// Labels returns all labels in entity insertion order.
func (s *Store) Labels() []Label {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Label
	for _, id := range s.order {
		out = append(out, s.labels[id]...)
	}
	return out
}

// RemoveGraph purges every entity, relation, and label loaded under the
// namespace. Relations from other namespaces that reference a purged entity
// are removed as well so no dangling edges remain.
func (s *Store) RemoveGraph(namespace string) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.namespaces[namespace] {
		return Stats{}, fmt.Errorf("graph.RemoveGraph: %s: %w", namespace, ErrUnknownNamespace)
	}

	var removed Stats
	keepOrder := s.order[:0]
	for _, id := range s.order {
		ent := s.entities[id]
		if ent.Namespace == namespace {
			removed.Entities++
			removed.Labels += len(s.labels[id])
			delete(s.entities, id)
			delete(s.labels, id)
			continue
		}
		keepOrder = append(keepOrder, id)
	}
	s.order = keepOrder

	keepRels := s.relations[:0]
	for _, rel := range s.relations {
		_, srcOK := s.entities[rel.Source]
		_, tgtOK := s.entities[rel.Target]
		if rel.Namespace == namespace || !srcOK || !tgtOK {
			removed.Relations++
			continue
		}
		keepRels = append(keepRels, rel)
	}
	s.relations = keepRels
	s.rebuildIndexes()

	delete(s.namespaces, namespace)
	return removed, nil
}

// MergeEntities re-points every relation and label of the entity remove
// onto keep and deletes remove. Identical relations produced by the
// re-pointing collapse. The caller is responsible for class compatibility.
func (s *Store) MergeEntities(keep, remove string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entities[keep]; !ok {
		return fmt.Errorf("graph.MergeEntities: %s: %w", keep, ErrUnknownEntity)
	}
	if _, ok := s.entities[remove]; !ok {
		return fmt.Errorf("graph.MergeEntities: %s: %w", remove, ErrUnknownEntity)
	}

	// Re-point relations, collapsing duplicates and self-loops created by
	// the merge.
	seen := make(map[Relation]bool, len(s.relations))
	merged := s.relations[:0]
	for _, rel := range s.relations {
		if rel.Source == remove {
			rel.Source = keep
		}
		if rel.Target == remove {
			rel.Target = keep
		}
		if rel.Source == keep && rel.Target == keep {
			continue
		}
		key := Relation{Source: rel.Source, Property: rel.Property, Target: rel.Target}
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, rel)
	}
	s.relations = merged
	s.rebuildIndexes()

	// Re-point labels. The kept entity's preferred label wins per language.
	kept := s.labels[keep]
	for _, lbl := range s.labels[remove] {
		lbl.Entity = keep
		if lbl.Preferred && hasPreferred(kept, lbl.Language) {
			lbl.Preferred = false
		}
		kept = append(kept, lbl)
	}
	s.labels[keep] = kept
	delete(s.labels, remove)

	delete(s.entities, remove)
	keepOrder := s.order[:0]
	for _, id := range s.order {
		if id != remove {
			keepOrder = append(keepOrder, id)
		}
	}
	s.order = keepOrder
	return nil
}

// Stats returns entity/relation/label counts for one namespace, or for the
// whole store when namespace is empty.
func (s *Store) Stats(namespace string) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st Stats
	for _, id := range s.order {
		ent := s.entities[id]
		if namespace != "" && ent.Namespace != namespace {
			continue
		}
		st.Entities++
		st.Labels += len(s.labels[id])
	}
	for _, rel := range s.relations {
		if namespace == "" || rel.Namespace == namespace {
			st.Relations++
		}
	}
	return st
}

// Namespaces returns the namespaces with data in the store.
func (s *Store) Namespaces() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.namespaces))
	for ns := range s.namespaces {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// rebuildIndexes recomputes the per-entity relation indexes from the global
// relation list. Callers hold the write lock.
func (s *Store) rebuildIndexes() {
	s.outgoing = make(map[string][]Relation, len(s.entities))
	s.incoming = make(map[string][]Relation, len(s.entities))
	for _, rel := range s.relations {
		s.outgoing[rel.Source] = append(s.outgoing[rel.Source], rel)
		s.incoming[rel.Target] = append(s.incoming[rel.Target], rel)
	}
}

func filterRelations(rels []Relation, propertyIRI string) []Relation {
	out := make([]Relation, 0, len(rels))
	for _, rel := range rels {
		if propertyIRI == "" || rel.Property == propertyIRI {
			out = append(out, rel)
		}
	}
	return out
}

func copyEntity(ent *Entity) Entity {
	out := *ent
	if ent.Attrs != nil {
		out.Attrs = make(map[string]string, len(ent.Attrs))
		for k, v := range ent.Attrs {
			out.Attrs[k] = v
		}
	}
	return out
}

func hasPreferred(labels []Label, language string) bool {
	for _, l := range labels {
		if l.Language == language && l.Preferred {
			return true
		}
	}
	return false
}
