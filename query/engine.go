// Package query answers value-traceability questions over the linkage
// graph. It traverses bridge properties across levels, either forward
// (lower to higher level) or backward, and returns ordered entity-ID
// chains. Traversal depth is bounded by the number of registered levels,
// so no caller-supplied timeout is required.
package query

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/c360studio/semlink/graph"
	"github.com/c360studio/semlink/metric"
	"github.com/c360studio/semlink/schema"
)

// ErrCycleDetected indicates the traversal revisited an entity within one
// chain. Level ordering makes this impossible by construction, so hitting
// it means schema or data corruption; callers must treat it as fatal.
var ErrCycleDetected = errors.New("traversal revisited an entity")

// Engine traverses bridge properties over a store.
type Engine struct {
	store   *graph.Store
	metrics *metric.Metrics
}

// Option configures an engine.
type Option func(*Engine)

// WithMetrics attaches a metrics registry; traversals observe duration.
func WithMetrics(m *metric.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// NewEngine creates a query engine over the given store.
func NewEngine(store *graph.Store, opts ...Option) *Engine {
	e := &Engine{store: store}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TraceChain returns every chain of entities connecting an instance of
// startClass to an instance of endClass along bridge properties. The
// traversal moves strictly from lower to higher level, or backward along
// bridge properties when endClass sits at a lower level than startClass.
// An empty result means no chain exists. Chains are deterministic: bridge
// properties expand in lexical IRI order, then targets in insertion order.
func (e *Engine) TraceChain(startClass, endClass string) ([][]string, error) {
	start := time.Now()
	defer func() {
		if e.metrics != nil {
			e.metrics.TraceDuration.Observe(time.Since(start).Seconds())
		}
	}()

	reg := e.store.Schema()
	startLevel, err := reg.LevelOf(startClass)
	if err != nil {
		return nil, fmt.Errorf("query.TraceChain: start class: %w", err)
	}
	endLevel, err := reg.LevelOf(endClass)
	if err != nil {
		return nil, fmt.Errorf("query.TraceChain: end class: %w", err)
	}
	backward := endLevel < startLevel

	var chains [][]string
	for _, id := range e.store.EntitiesOfType(startClass, true) {
		found, err := e.traverse(id, endClass, backward, []string{id})
		if err != nil {
			return nil, err
		}
		chains = append(chains, found...)
	}
	return chains, nil
}

// ValueChainFor returns the value chains anchoring a specific entity to the
// top level, following bridge properties backward from the entity. Each
// chain is returned in level order, top level first, anchor entity last.
func (e *Engine) ValueChainFor(entityID string) ([][]string, error) {
	start := time.Now()
	defer func() {
		if e.metrics != nil {
			e.metrics.TraceDuration.Observe(time.Since(start).Seconds())
		}
	}()

	ent, err := e.store.GetEntity(entityID)
	if err != nil {
		return nil, fmt.Errorf("query.ValueChainFor: %w", err)
	}
	level, err := e.store.Schema().LevelOf(ent.Class)
	if err != nil {
		return nil, fmt.Errorf("query.ValueChainFor: %w", err)
	}
	if level == schema.LevelFoundation {
		return [][]string{{entityID}}, nil
	}

	chains, err := e.climb(entityID, []string{entityID})
	if err != nil {
		return nil, err
	}
	for _, chain := range chains {
		reverse(chain)
	}
	return chains, nil
}

// traverse walks bridge relations from cur, emitting the chain whenever an
// instance of endClass is reached. Chain length is bounded by the level
// count; breaching the bound or revisiting an entity is a fatal invariant
// failure.
func (e *Engine) traverse(cur, endClass string, backward bool, chain []string) ([][]string, error) {
	if len(chain) > 1 {
		ent, err := e.store.GetEntity(cur)
		if err == nil && e.store.Schema().IsSubclassOf(ent.Class, endClass) {
			done := make([]string, len(chain))
			copy(done, chain)
			return [][]string{done}, nil
		}
	} else {
		// A start entity that is already an endClass instance is a
		// single-entity chain.
		ent, err := e.store.GetEntity(cur)
		if err == nil && e.store.Schema().IsSubclassOf(ent.Class, endClass) {
			return [][]string{{cur}}, nil
		}
	}

	if len(chain) > int(schema.MaxLevel) {
		return nil, fmt.Errorf("query.traverse: chain exceeds level count at %s: %w", cur, ErrCycleDetected)
	}

	var chains [][]string
	for _, rel := range e.bridgeRelations(cur, backward) {
		next := rel.Target
		if backward {
			next = rel.Source
		}
		if contains(chain, next) {
			return nil, fmt.Errorf("query.traverse: %s via %s: %w", next, rel.Property, ErrCycleDetected)
		}
		found, err := e.traverse(next, endClass, backward, append(chain, next))
		if err != nil {
			return nil, err
		}
		chains = append(chains, found...)
	}
	return chains, nil
}

// climb walks incoming bridge relations until no lower-level anchor exists,
// emitting the chain at each dead end. Used for value-chain queries where
// the end is "as high as the graph goes" rather than a fixed class.
func (e *Engine) climb(cur string, chain []string) ([][]string, error) {
	if len(chain) > int(schema.MaxLevel) {
		return nil, fmt.Errorf("query.climb: chain exceeds level count at %s: %w", cur, ErrCycleDetected)
	}

	rels := e.bridgeRelations(cur, true)
	if len(rels) == 0 {
		done := make([]string, len(chain))
		copy(done, chain)
		return [][]string{done}, nil
	}

	var chains [][]string
	for _, rel := range rels {
		next := rel.Source
		if contains(chain, next) {
			return nil, fmt.Errorf("query.climb: %s via %s: %w", next, rel.Property, ErrCycleDetected)
		}
		found, err := e.climb(next, append(chain, next))
		if err != nil {
			return nil, err
		}
		chains = append(chains, found...)
	}
	return chains, nil
}

// bridgeRelations returns the bridge relations leaving (or, backward,
// entering) an entity, sorted by property IRI with insertion order
// preserved within a property.
func (e *Engine) bridgeRelations(entityID string, backward bool) []graph.Relation {
	reg := e.store.Schema()

	var rels []graph.Relation
	if backward {
		rels = e.store.RelationsTo(entityID, "")
	} else {
		rels = e.store.RelationsFrom(entityID, "")
	}

	out := rels[:0]
	for _, rel := range rels {
		prop, err := reg.ResolveProperty(rel.Property)
		if err == nil && prop.Bridge {
			out = append(out, rel)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Property < out[j].Property })
	return out
}

func contains(chain []string, id string) bool {
	for _, c := range chain {
		if c == id {
			return true
		}
	}
	return false
}

func reverse(chain []string) {
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
}
