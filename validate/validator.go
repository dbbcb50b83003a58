// Package validate batch-checks the whole instance graph against
// schema-derived rules: domain/range re-validation, required-bridge
// completeness, orphan detection, and cardinality re-checks. Findings are
// reported, not thrown; strict mode escalates any finding to an error.
package validate

import (
	"errors"
	"fmt"

	"github.com/c360studio/semlink/graph"
	"github.com/c360studio/semlink/metric"
	"github.com/c360studio/semlink/schema"
)

// ErrStrictValidation is returned from a strict run that found violations.
var ErrStrictValidation = errors.New("validation failed in strict mode")

// Kind classifies a consistency finding.
type Kind string

const (
	// KindDomainRange marks a stored relation that no longer satisfies its
	// property's domain or range.
	KindDomainRange Kind = "domain_range"

	// KindMissingBridge marks an instance of a class configured to require
	// an outgoing bridge property that has none.
	KindMissingBridge Kind = "missing_bridge"

	// KindOrphanEntity marks an entity above level 1 with no incoming
	// bridge relation from a lower level.
	KindOrphanEntity Kind = "orphan_entity"

	// KindCardinality marks a one-valued property with more than one
	// target per source.
	KindCardinality Kind = "cardinality"
)

// Violation is a single consistency finding.
type Violation struct {
	Kind     Kind   `json:"kind"`
	Entity   string `json:"entity,omitempty"`
	Property string `json:"property,omitempty"`
	Detail   string `json:"detail"`
}

// Report is the outcome of a validation run.
type Report struct {
	Violations []Violation `json:"violations"`

	// Checked counts how many relations and entities the run inspected.
	CheckedRelations int `json:"checked_relations"`
	CheckedEntities  int `json:"checked_entities"`
}

// OK reports whether the run found no violations.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Config selects which classes require specific outgoing bridge properties.
type Config struct {
	// RequiredBridges maps a class IRI to the bridge property IRIs every
	// instance (including subclass instances) must have at least one
	// relation of.
	RequiredBridges map[string][]string `yaml:"required_bridges"`
}

// Validator runs the fixed battery of consistency checks over a store.
type Validator struct {
	store   *graph.Store
	cfg     Config
	metrics *metric.Metrics
}

// Option configures a validator.
type Option func(*Validator)

// WithMetrics attaches a metrics registry; findings increment it by kind.
func WithMetrics(m *metric.Metrics) Option {
	return func(v *Validator) {
		v.metrics = m
	}
}

// New creates a validator over the given store.
func New(store *graph.Store, cfg Config, opts ...Option) *Validator {
	v := &Validator{store: store, cfg: cfg}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run executes all checks and returns the report. In strict mode any
// violation escalates the whole call to an error; the report is still
// returned alongside for diagnosis.
func (v *Validator) Run(strict bool) (*Report, error) {
	report := &Report{}

	v.checkDomainRange(report)
	v.checkRequiredBridges(report)
	v.checkOrphans(report)
	v.checkCardinality(report)

	if v.metrics != nil {
		for _, viol := range report.Violations {
			v.metrics.Violations.WithLabelValues(string(viol.Kind)).Inc()
		}
	}

	if strict && !report.OK() {
		return report, fmt.Errorf("validate.Run: %d violations: %w", len(report.Violations), ErrStrictValidation)
	}
	return report, nil
}

// checkDomainRange re-validates every stored relation against the current
// schema. Defensive: write-time validation already enforces this, but the
// schema may have gained namespaces and merges re-point relations.
func (v *Validator) checkDomainRange(report *Report) {
	reg := v.store.Schema()
	for _, rel := range v.store.Relations() {
		report.CheckedRelations++

		prop, err := reg.ResolveProperty(rel.Property)
		if err != nil {
			report.Violations = append(report.Violations, Violation{
				Kind:     KindDomainRange,
				Entity:   rel.Source,
				Property: rel.Property,
				Detail:   "relation uses unregistered property",
			})
			continue
		}

		src, err := v.store.GetEntity(rel.Source)
		if err == nil && !reg.IsSubclassOf(src.Class, prop.Domain) {
			report.Violations = append(report.Violations, Violation{
				Kind:     KindDomainRange,
				Entity:   rel.Source,
				Property: rel.Property,
				Detail:   fmt.Sprintf("source class %s does not satisfy domain %s", src.Class, prop.Domain),
			})
		}
		tgt, err := v.store.GetEntity(rel.Target)
		if err == nil && !reg.IsSubclassOf(tgt.Class, prop.Range) {
			report.Violations = append(report.Violations, Violation{
				Kind:     KindDomainRange,
				Entity:   rel.Target,
				Property: rel.Property,
				Detail:   fmt.Sprintf("target class %s does not satisfy range %s", tgt.Class, prop.Range),
			})
		}
	}
}

// checkRequiredBridges verifies each configured class's instances carry at
// least one relation of each required outgoing bridge property.
func (v *Validator) checkRequiredBridges(report *Report) {
	for classIRI, props := range v.cfg.RequiredBridges {
		for _, entityID := range v.store.EntitiesOfType(classIRI, true) {
			report.CheckedEntities++
			for _, propIRI := range props {
				if len(v.store.RelationsFrom(entityID, propIRI)) == 0 {
					report.Violations = append(report.Violations, Violation{
						Kind:     KindMissingBridge,
						Entity:   entityID,
						Property: propIRI,
						Detail:   "required outgoing bridge relation missing",
					})
				}
			}
		}
	}
}

// checkOrphans finds entities above level 1 with no incoming bridge
// relation from a lower level.
func (v *Validator) checkOrphans(report *Report) {
	reg := v.store.Schema()
	for _, ent := range v.store.Entities() {
		level, err := reg.LevelOf(ent.Class)
		if err != nil || level <= schema.LevelFoundation {
			continue
		}
		report.CheckedEntities++

		anchored := false
		for _, rel := range v.store.RelationsTo(ent.ID, "") {
			prop, err := reg.ResolveProperty(rel.Property)
			if err != nil || !prop.Bridge {
				continue
			}
			src, err := v.store.GetEntity(rel.Source)
			if err != nil {
				continue
			}
			srcLevel, err := reg.LevelOf(src.Class)
			if err == nil && srcLevel < level {
				anchored = true
				break
			}
		}
		if !anchored {
			report.Violations = append(report.Violations, Violation{
				Kind:   KindOrphanEntity,
				Entity: ent.ID,
				Detail: fmt.Sprintf("level %d entity has no incoming bridge relation from a lower level", level),
			})
		}
	}
}

// checkCardinality verifies no one-valued property has more than one
// distinct target per source.
func (v *Validator) checkCardinality(report *Report) {
	reg := v.store.Schema()
	for _, ent := range v.store.Entities() {
		targets := make(map[string]map[string]bool)
		for _, rel := range v.store.RelationsFrom(ent.ID, "") {
			if targets[rel.Property] == nil {
				targets[rel.Property] = make(map[string]bool)
			}
			targets[rel.Property][rel.Target] = true
		}
		for propIRI, tgts := range targets {
			prop, err := reg.ResolveProperty(propIRI)
			if err != nil || prop.Cardinality != schema.CardinalityOne {
				continue
			}
			if len(tgts) > 1 {
				report.Violations = append(report.Violations, Violation{
					Kind:     KindCardinality,
					Entity:   ent.ID,
					Property: propIRI,
					Detail:   fmt.Sprintf("one-valued property has %d targets", len(tgts)),
				})
			}
		}
	}
}
