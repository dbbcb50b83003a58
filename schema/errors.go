package schema

import "errors"

// Standard error variables for schema registration and lookup failures.
var (
	// ErrCycleDetected indicates a class definition whose superclass chain
	// would revisit the class being defined.
	ErrCycleDetected = errors.New("superclass cycle detected")

	// ErrUnknownSuperclass indicates the declared superclass is not registered.
	ErrUnknownSuperclass = errors.New("unknown superclass")

	// ErrLevelOrderViolation indicates a superclass at a higher level than
	// the class being defined.
	ErrLevelOrderViolation = errors.New("superclass level exceeds class level")

	// ErrUnknownClass indicates a domain or range reference to an
	// unregistered class.
	ErrUnknownClass = errors.New("unknown class")

	// ErrBridgeLevelViolation indicates a bridge property whose domain level
	// is not strictly below its range level.
	ErrBridgeLevelViolation = errors.New("bridge property domain level must be below range level")

	// ErrAlreadyDefined indicates an IRI that is already registered.
	// Definitions are append-only so referenced schema never mutates.
	ErrAlreadyDefined = errors.New("already defined")

	// ErrNotFound indicates a lookup for an unregistered class or property.
	ErrNotFound = errors.New("not found")

	// ErrInvalidLevel indicates a level outside the 1-4 range.
	ErrInvalidLevel = errors.New("level must be between 1 and 4")

	// ErrInvalidCardinality indicates a cardinality other than one or many.
	ErrInvalidCardinality = errors.New("cardinality must be one or many")
)
