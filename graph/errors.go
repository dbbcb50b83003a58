package graph

import "errors"

// Standard error variables for instance-store write validation.
var (
	// ErrUnknownClass indicates an entity declared with an unregistered class.
	ErrUnknownClass = errors.New("unknown class")

	// ErrDuplicateEntity indicates an entity ID already present with a
	// different class.
	ErrDuplicateEntity = errors.New("entity already exists with a different class")

	// ErrUnknownProperty indicates a relation using an unregistered property.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrUnknownEntity indicates a relation or label referencing an entity
	// that is not in the store.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrDomainMismatch indicates a relation whose source class does not
	// satisfy the property's domain.
	ErrDomainMismatch = errors.New("source class does not satisfy property domain")

	// ErrRangeMismatch indicates a relation whose target class does not
	// satisfy the property's range.
	ErrRangeMismatch = errors.New("target class does not satisfy property range")

	// ErrCardinalityViolation indicates a second relation on a one-valued
	// property from the same source to a different target.
	ErrCardinalityViolation = errors.New("cardinality violation on one-valued property")

	// ErrUnknownNamespace indicates a purge of a namespace that was never
	// loaded.
	ErrUnknownNamespace = errors.New("unknown namespace")
)
