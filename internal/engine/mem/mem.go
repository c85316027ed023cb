// Package mem is an in-memory reference implementation of the engine
// boundary. It performs real constant folding with per-width integer
// semantics and IEEE float semantics, and backs the package tests and the
// demo CLI. All floating formats are modeled at float64 precision, which is
// a documented limitation, not an accident.
package mem

import (
	"fmt"

	"fortio.org/safecast"

	"irval/internal/engine"
)

// Engine is an arena-backed engine.Engine. The zero value is not usable;
// construct with New.
type Engine struct {
	types     []typeRec
	typeIndex map[string]engine.TypeHandle
	values    []valueRec
	contexts  engine.Context

	void  engine.TypeHandle
	label engine.TypeHandle
}

var _ engine.Engine = (*Engine)(nil)

// New constructs an empty engine with the singleton types pre-interned.
func New() *Engine {
	e := &Engine{
		typeIndex: make(map[string]engine.TypeHandle, 32),
	}
	e.void = e.internType(typeRec{kind: engine.KindVoid})
	e.label = e.internType(typeRec{kind: engine.KindLabel})
	return e
}

type typeRec struct {
	kind   engine.TypeKind
	bits   uint32
	elem   engine.TypeHandle
	count  uint64
	fields []engine.TypeHandle
	packed bool
	ctx    engine.Context
}

func (t typeRec) key() string {
	return fmt.Sprintf("%d|%d|%d|%d|%t|%d|%v", t.kind, t.bits, t.elem, t.count, t.packed, t.ctx, t.fields)
}

func (e *Engine) internType(t typeRec) engine.TypeHandle {
	key := t.key()
	if th, ok := e.typeIndex[key]; ok {
		return th
	}
	e.types = append(e.types, t)
	n, err := safecast.Conv[uint64](len(e.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	th := engine.TypeHandle(n)
	e.typeIndex[key] = th
	return th
}

func (e *Engine) typeRec(t engine.TypeHandle) (typeRec, bool) {
	if !t.IsValid() || uint64(t) > uint64(len(e.types)) {
		return typeRec{}, false
	}
	return e.types[t-1], true
}

// TypeOf returns the type of a value, or NoTypeHandle for a dead handle.
func (e *Engine) TypeOf(v engine.Handle) engine.TypeHandle {
	rec, ok := e.valueRec(v)
	if !ok {
		return engine.NoTypeHandle
	}
	return rec.typ
}

// KindOf classifies a type handle. A handle that does not refer to a live
// type reports KindInvalid rather than posing as a real kind.
func (e *Engine) KindOf(t engine.TypeHandle) engine.TypeKind {
	rec, ok := e.typeRec(t)
	if !ok {
		return engine.KindInvalid
	}
	return rec.kind
}

// IntWidth returns the bit width of an integer type, 0 for anything else.
func (e *Engine) IntWidth(t engine.TypeHandle) uint32 {
	rec, ok := e.typeRec(t)
	if !ok || rec.kind != engine.KindInteger {
		return 0
	}
	return rec.bits
}

func (e *Engine) VoidType() engine.TypeHandle  { return e.void }
func (e *Engine) LabelType() engine.TypeHandle { return e.label }

// IntType interns the integer type of the given width. Widths above 64 are
// not representable by this engine and are clamped; the typed layer only
// requests 1..64.
func (e *Engine) IntType(bits uint32) engine.TypeHandle {
	if bits == 0 {
		bits = 1
	}
	if bits > 64 {
		bits = 64
	}
	return e.internType(typeRec{kind: engine.KindInteger, bits: bits})
}

// FloatType interns one of the floating formats.
func (e *Engine) FloatType(kind engine.TypeKind) engine.TypeHandle {
	if !kind.IsFloating() {
		return engine.NoTypeHandle
	}
	return e.internType(typeRec{kind: kind})
}

func (e *Engine) PointerType(elem engine.TypeHandle) engine.TypeHandle {
	return e.internType(typeRec{kind: engine.KindPointer, elem: elem})
}

func (e *Engine) ArrayType(elem engine.TypeHandle, count uint64) engine.TypeHandle {
	return e.internType(typeRec{kind: engine.KindArray, elem: elem, count: count})
}

func (e *Engine) VectorType(elem engine.TypeHandle, count uint64) engine.TypeHandle {
	return e.internType(typeRec{kind: engine.KindVector, elem: elem, count: count})
}

func (e *Engine) StructType(fields []engine.TypeHandle, packed bool) engine.TypeHandle {
	return e.StructTypeIn(engine.GlobalContext, fields, packed)
}

func (e *Engine) StructTypeIn(ctx engine.Context, fields []engine.TypeHandle, packed bool) engine.TypeHandle {
	rec := typeRec{kind: engine.KindStruct, packed: packed, ctx: ctx}
	rec.fields = append(rec.fields, fields...)
	return e.internType(rec)
}

// NewContext opens a fresh construction context. Contexts only affect type
// identity; construction behavior is identical across contexts.
func (e *Engine) NewContext() engine.Context {
	e.contexts++
	return e.contexts
}

// MetadataType interns the metadata type. It exists so callers can exercise
// the classifier's unsupported arm; the boundary interface has no use for it.
func (e *Engine) MetadataType() engine.TypeHandle {
	return e.internType(typeRec{kind: engine.KindMetadata})
}

// FunctionType interns an opaque function type.
func (e *Engine) FunctionType() engine.TypeHandle {
	return e.internType(typeRec{kind: engine.KindFunction})
}

// X86MMXType interns the x86 MMX type.
func (e *Engine) X86MMXType() engine.TypeHandle {
	return e.internType(typeRec{kind: engine.KindX86MMX})
}
