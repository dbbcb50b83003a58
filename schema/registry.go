package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds class and property definitions and answers subclass and
// lookup queries. All methods are safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	classes    map[string]*ClassDef
	properties map[string]*PropertyDef
}

// NewRegistry creates an empty schema registry.
func NewRegistry() *Registry {
	return &Registry{
		classes:    make(map[string]*ClassDef),
		properties: make(map[string]*PropertyDef),
	}
}

// ClassOption configures a class definition.
type ClassOption func(*ClassDef)

// WithSuperclass declares the parent class. The parent must already be
// registered at the same or a lower-numbered level.
func WithSuperclass(iri string) ClassOption {
	return func(c *ClassDef) {
		c.Superclass = iri
	}
}

// WithLabel sets the human-readable class name.
func WithLabel(label string) ClassOption {
	return func(c *ClassDef) {
		c.Label = label
	}
}

// WithCapabilities declares the capability tags the class satisfies.
func WithCapabilities(caps ...Capability) ClassOption {
	return func(c *ClassDef) {
		c.Capabilities = append(c.Capabilities, caps...)
	}
}

// DefineClass registers a class at the given level.
func (r *Registry) DefineClass(iri string, level Level, opts ...ClassOption) error {
	if !level.IsValid() {
		return fmt.Errorf("schema.DefineClass: %s: %w", iri, ErrInvalidLevel)
	}

	def := &ClassDef{IRI: iri, Level: level}
	for _, opt := range opts {
		opt(def)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[iri]; exists {
		return fmt.Errorf("schema.DefineClass: class %s: %w", iri, ErrAlreadyDefined)
	}

	if def.Superclass != "" {
		parent, ok := r.classes[def.Superclass]
		if !ok {
			return fmt.Errorf("schema.DefineClass: %s: superclass %s: %w", iri, def.Superclass, ErrUnknownSuperclass)
		}
		if parent.Level > level {
			return fmt.Errorf("schema.DefineClass: %s (level %d) under %s (level %d): %w",
				iri, level, parent.IRI, parent.Level, ErrLevelOrderViolation)
		}
		// Walk the parent chain; revisiting the new IRI or any ancestor
		// means the chain would not terminate.
		seen := map[string]bool{iri: true}
		for cur := parent; cur != nil; {
			if seen[cur.IRI] {
				return fmt.Errorf("schema.DefineClass: %s via %s: %w", iri, cur.IRI, ErrCycleDetected)
			}
			seen[cur.IRI] = true
			if cur.Superclass == "" {
				break
			}
			cur = r.classes[cur.Superclass]
		}
	}

	r.classes[iri] = def
	return nil
}

// PropertyOption configures a property definition.
type PropertyOption func(*PropertyDef)

// WithCardinality sets the property cardinality. Defaults to many.
func WithCardinality(c Cardinality) PropertyOption {
	return func(p *PropertyDef) {
		p.Cardinality = c
	}
}

// AsBridge marks the property as level-bridging.
func AsBridge() PropertyOption {
	return func(p *PropertyDef) {
		p.Bridge = true
	}
}

// WithPropertyLabel sets the human-readable property name.
func WithPropertyLabel(label string) PropertyOption {
	return func(p *PropertyDef) {
		p.Label = label
	}
}

// DefineProperty registers a property with the given domain and range.
func (r *Registry) DefineProperty(iri, domain, rng string, opts ...PropertyOption) error {
	def := &PropertyDef{IRI: iri, Domain: domain, Range: rng, Cardinality: CardinalityMany}
	for _, opt := range opts {
		opt(def)
	}
	if !def.Cardinality.IsValid() {
		return fmt.Errorf("schema.DefineProperty: %s: %q: %w", iri, def.Cardinality, ErrInvalidCardinality)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.properties[iri]; exists {
		return fmt.Errorf("schema.DefineProperty: property %s: %w", iri, ErrAlreadyDefined)
	}

	domainDef, ok := r.classes[domain]
	if !ok {
		return fmt.Errorf("schema.DefineProperty: %s: domain %s: %w", iri, domain, ErrUnknownClass)
	}
	rangeDef, ok := r.classes[rng]
	if !ok {
		return fmt.Errorf("schema.DefineProperty: %s: range %s: %w", iri, rng, ErrUnknownClass)
	}

	if def.Bridge && domainDef.Level >= rangeDef.Level {
		return fmt.Errorf("schema.DefineProperty: %s: domain level %d, range level %d: %w",
			iri, domainDef.Level, rangeDef.Level, ErrBridgeLevelViolation)
	}

	r.properties[iri] = def
	return nil
}

// IsSubclassOf reports whether class a is b or a descendant of b.
// It is reflexive and transitive over the superclass DAG.
func (r *Registry) IsSubclassOf(a, b string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cur, ok := r.classes[a]
	for ok {
		if cur.IRI == b {
			return true
		}
		if cur.Superclass == "" {
			return false
		}
		cur, ok = r.classes[cur.Superclass]
	}
	return false
}

// HasCapability reports whether the class or any of its ancestors satisfies
// the capability tag.
func (r *Registry) HasCapability(classIRI string, cap Capability) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cur, ok := r.classes[classIRI]
	for ok {
		for _, c := range cur.Capabilities {
			if c == cap {
				return true
			}
		}
		if cur.Superclass == "" {
			return false
		}
		cur, ok = r.classes[cur.Superclass]
	}
	return false
}

// ResolveClass returns a copy of the class definition.
func (r *Registry) ResolveClass(iri string) (ClassDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.classes[iri]
	if !ok {
		return ClassDef{}, fmt.Errorf("schema.ResolveClass: class %s: %w", iri, ErrNotFound)
	}
	return *def, nil
}

// ResolveProperty returns a copy of the property definition.
func (r *Registry) ResolveProperty(iri string) (PropertyDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.properties[iri]
	if !ok {
		return PropertyDef{}, fmt.Errorf("schema.ResolveProperty: property %s: %w", iri, ErrNotFound)
	}
	return *def, nil
}

// LevelOf returns the level of a registered class.
func (r *Registry) LevelOf(classIRI string) (Level, error) {
	def, err := r.ResolveClass(classIRI)
	if err != nil {
		return 0, err
	}
	return def.Level, nil
}

// Classes returns all class definitions sorted by IRI.
func (r *Registry) Classes() []ClassDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ClassDef, 0, len(r.classes))
	for _, def := range r.classes {
		out = append(out, *def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IRI < out[j].IRI })
	return out
}

// Properties returns all property definitions sorted by IRI.
func (r *Registry) Properties() []PropertyDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]PropertyDef, 0, len(r.properties))
	for _, def := range r.properties {
		out = append(out, *def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IRI < out[j].IRI })
	return out
}

// BridgeProperties returns all bridge property definitions sorted by IRI.
// The lexical order is the deterministic tie-break for path queries.
func (r *Registry) BridgeProperties() []PropertyDef {
	props := r.Properties()
	out := props[:0]
	for _, p := range props {
		if p.Bridge {
			out = append(out, p)
		}
	}
	return out
}
