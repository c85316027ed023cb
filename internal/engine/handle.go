package engine

// Handle is an opaque reference to an engine-owned IR value.
// Equality of handles is identity of the underlying value.
type Handle uint64

// NoHandle marks the absence of a value.
const NoHandle Handle = 0

// IsValid reports whether the handle refers to a value.
func (h Handle) IsValid() bool { return h != NoHandle }

// TypeHandle is an opaque reference to an engine-owned IR type.
type TypeHandle uint64

// NoTypeHandle marks the absence of a type.
const NoTypeHandle TypeHandle = 0

// IsValid reports whether the handle refers to a type.
func (t TypeHandle) IsValid() bool { return t != NoTypeHandle }

// Context identifies an engine construction context. Types and constants
// built in distinct contexts are distinct even when structurally equal;
// context-scoped construction is otherwise equivalent to global
// construction.
type Context uint64

// GlobalContext is the engine's default construction context.
const GlobalContext Context = 0
