package ir

import "errors"

// Contract violation kinds. All are raised at the call site that detects
// them, are never retried, and are safe for the caller to catch and handle;
// a failed call aborts only the operation in progress and leaves local
// caches untouched.
var (
	// ErrInvalidArgument reports an argument of the wrong type or shape.
	ErrInvalidArgument = errors.New("ir: invalid argument")
	// ErrTypeMismatch reports a type of the wrong category for an operation.
	ErrTypeMismatch = errors.New("ir: type mismatch")
	// ErrUnrepresentableType reports a type kind with no wrapper variant.
	ErrUnrepresentableType = errors.New("ir: unrepresentable type")
	// ErrOutOfRange reports an index outside current bounds.
	ErrOutOfRange = errors.New("ir: out of range")
)
