package graph

// Entity is a read-only view of a stored entity. The store owns entities
// for their full lifetime; views returned to callers are copies.
type Entity struct {
	// ID is the entity identifier (IRI or dotted ID).
	ID string `json:"id"`

	// Class is the IRI of the entity's concrete class.
	Class string `json:"class"`

	// Namespace is the load batch the entity belongs to.
	Namespace string `json:"namespace"`

	// Attrs holds literal attributes keyed by predicate IRI.
	Attrs map[string]string `json:"attrs,omitempty"`
}

// Relation is a typed directed edge between two stored entities.
type Relation struct {
	// Source is the entity ID the relation starts at.
	Source string `json:"source"`

	// Property is the IRI of the relation's property.
	Property string `json:"property"`

	// Target is the entity ID the relation points to.
	Target string `json:"target"`

	// Namespace is the load batch the relation was added under.
	Namespace string `json:"namespace"`
}

// Label is a language-tagged literal attached to a concept entity.
type Label struct {
	// Entity is the concept entity ID.
	Entity string `json:"entity"`

	// Language is an arbitrary language tag, e.g. "en" or "tr".
	Language string `json:"language"`

	// Text is the literal label text.
	Text string `json:"text"`

	// Preferred marks the single preferred label per (entity, language).
	Preferred bool `json:"preferred"`
}

// Stats summarizes the contents of a namespace or the whole store.
type Stats struct {
	Entities  int `json:"entities"`
	Relations int `json:"relations"`
	Labels    int `json:"labels"`
}
