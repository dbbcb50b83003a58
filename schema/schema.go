package schema

// Level identifies one of the four ordered tiers of the linkage model.
type Level int

// The four levels, ordered from the enterprise foundation ontology down to
// the operational data-contract layer.
const (
	// LevelFoundation holds the enterprise ontology concepts
	// (Organization, Person, Agreement, Category).
	LevelFoundation Level = 1

	// LevelCanvas holds the business-canvas layer.
	LevelCanvas Level = 2

	// LevelStatementOfWork holds the statement-of-work layer.
	LevelStatementOfWork Level = 3

	// LevelDataContract holds the operational data-contract layer.
	LevelDataContract Level = 4
)

// MaxLevel is the highest registered level. Path traversal is bounded by it.
const MaxLevel = LevelDataContract

// IsValid checks that the level is within the 1-4 range.
func (l Level) IsValid() bool {
	return l >= LevelFoundation && l <= MaxLevel
}

// Cardinality constrains how many relations a property admits per source.
type Cardinality string

const (
	// CardinalityOne admits at most one relation per (source, property).
	CardinalityOne Cardinality = "one"

	// CardinalityMany admits any number of relations per (source, property).
	CardinalityMany Cardinality = "many"
)

// IsValid checks if the cardinality is one of the defined constants.
func (c Cardinality) IsValid() bool {
	return c == CardinalityOne || c == CardinalityMany
}

// Capability is a tag a class satisfies independently of the level
// hierarchy. It models the multiple-ancestor structure of the source
// ontology without language-level multiple inheritance: a class has one
// superclass per level plus a set of satisfied capabilities.
type Capability string

const (
	// CapabilityConcept marks classes whose instances accept multilingual
	// preferred labels via the concept mapper.
	CapabilityConcept Capability = "concept"

	// CapabilityAgent marks classes whose instances can be responsible
	// parties on agreements and work statements.
	CapabilityAgent Capability = "agent"

	// CapabilityDeliverable marks classes whose instances represent work
	// products that value chains terminate in.
	CapabilityDeliverable Capability = "deliverable"
)

// ClassDef describes a registered class.
type ClassDef struct {
	// IRI is the class identifier.
	IRI string `json:"iri"`

	// Level is the tier the class belongs to (1-4).
	Level Level `json:"level"`

	// Superclass is the IRI of the parent class, empty for roots.
	// The parent must sit at the same or a lower-numbered level.
	Superclass string `json:"superclass,omitempty"`

	// Label is a human-readable name.
	Label string `json:"label,omitempty"`

	// Capabilities lists the capability tags this class satisfies.
	Capabilities []Capability `json:"capabilities,omitempty"`
}

// PropertyDef describes a registered property.
type PropertyDef struct {
	// IRI is the property identifier.
	IRI string `json:"iri"`

	// Domain is the class IRI a relation's source must satisfy.
	Domain string `json:"domain"`

	// Range is the class IRI a relation's target must satisfy.
	Range string `json:"range"`

	// Cardinality is one or many.
	Cardinality Cardinality `json:"cardinality"`

	// Bridge marks the property as crossing levels. A bridge property's
	// domain level is strictly below its range level; full value-chain
	// shortcuts may skip levels.
	Bridge bool `json:"bridge"`

	// Label is a human-readable name.
	Label string `json:"label,omitempty"`
}
