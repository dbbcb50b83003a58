// Package schema holds the class and property definitions that govern the
// semlink graph. Classes are organized into four ordered levels (foundation
// ontology, business canvas, statement of work, data contract) and form a
// single-superclass DAG per level. Properties declare domain, range,
// cardinality, and whether they bridge levels.
//
// The registry is the authority every instance write is validated against:
// the graph store, the consistency validator, and the path query engine all
// consult it. Definitions are append-only; a registered IRI is never
// redefined, which keeps the schema stable once instance data references it.
package schema
