// Package enterprise defines the built-in four-level enterprise linkage
// ontology: foundation concepts (Organization, Person, Agreement, Category),
// the business-canvas layer, the statement-of-work layer, and the
// operational data-contract layer, together with the bridge properties that
// connect them.
//
// The constants here are the canonical IRIs; RegisterSchema loads the whole
// vocabulary into a schema.Registry so stores can validate instance data
// against it. Callers with additional namespaces register their own classes
// and properties alongside.
package enterprise
