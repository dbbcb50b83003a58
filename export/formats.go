// Package export serializes a loaded graph to triple-style records and
// parses them back. Round-tripping a namespace through Serialize and Parse
// reproduces the same set of entity, relation, and label facts,
// order-independent.
package export

import "fmt"

// Format specifies the output serialization format.
type Format string

const (
	// FormatNTriples produces line-oriented N-Triples (.nt) output. This
	// is the round-trip format: everything emitted can be parsed back.
	FormatNTriples Format = "ntriples"

	// FormatTurtle produces Turtle (.ttl) output with prefixes, for human
	// inspection.
	FormatTurtle Format = "turtle"
)

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatNTriples, FormatTurtle:
		return Format(s), nil
	default:
		return "", fmt.Errorf("export.ParseFormat: unsupported format %q", s)
	}
}

// Record is one triple-style statement: subject, predicate, and either an
// IRI object or a literal with an optional language tag.
type Record struct {
	// Subject is the subject IRI.
	Subject string `json:"subject"`

	// Predicate is the predicate IRI.
	Predicate string `json:"predicate"`

	// Object is the object IRI or literal text.
	Object string `json:"object"`

	// IsLiteral distinguishes literal objects from IRI references.
	IsLiteral bool `json:"is_literal,omitempty"`

	// Language is the literal's language tag, if any.
	Language string `json:"language,omitempty"`
}
