package ir

import (
	"fmt"

	"irval/internal/engine"
)

// Type pairs a type handle with its classified kind. A Type is a point-in
// -time view; Value.Type rederives it on every call because the engine is
// the source of truth and a value's type can change under it.
type Type struct {
	eng  engine.Engine
	th   engine.TypeHandle
	kind engine.TypeKind
}

// TypeOf classifies a type handle. Metadata types have no wrapper variant
// and fail with ErrUnrepresentableType instead of producing a wrong object.
func TypeOf(eng engine.Engine, th engine.TypeHandle) (Type, error) {
	if eng == nil || !th.IsValid() {
		return Type{}, fmt.Errorf("type handle required: %w", ErrInvalidArgument)
	}
	kind := eng.KindOf(th)
	if kind == engine.KindInvalid {
		return Type{}, fmt.Errorf("dead type handle: %w", ErrInvalidArgument)
	}
	if kind == engine.KindMetadata {
		return Type{}, fmt.Errorf("metadata type: %w", ErrUnrepresentableType)
	}
	return Type{eng: eng, th: th, kind: kind}, nil
}

// Kind returns the classified kind.
func (t Type) Kind() engine.TypeKind { return t.kind }

// Handle returns the underlying type handle.
func (t Type) Handle() engine.TypeHandle { return t.th }

// Valid reports whether the Type refers to an engine type.
func (t Type) Valid() bool { return t.eng != nil && t.th.IsValid() }

func (t Type) String() string {
	if !t.Valid() {
		return "<invalid>"
	}
	return t.kind.String()
}

// PointerTo returns the pointer type over t.
func (t Type) PointerTo() (Type, error) {
	if !t.Valid() {
		return Type{}, fmt.Errorf("pointer element type required: %w", ErrInvalidArgument)
	}
	return TypeOf(t.eng, t.eng.PointerType(t.th))
}
