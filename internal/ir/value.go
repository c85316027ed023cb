package ir

import (
	"fmt"

	"irval/internal/engine"
)

// Value is the root of the closed wrapper hierarchy. Every concrete variant
// embeds Val, so holding any wrapper gives access to the root operations;
// the unexported method seals the set against outside implementations.
type Value interface {
	Handle() engine.Handle
	Name() string
	IsConstant() bool
	IsNull() bool
	IsUndef() bool
	Type() (Type, error)
	Attrs() *AttrSet
	Dump() string

	root() *Val
}

// Val is the generic value wrapper: the concrete variant used where no more
// specific classification applies, and the representation operand reads
// come back as.
type Val struct {
	eng   engine.Engine
	h     engine.Handle
	attrs *AttrSet
}

func newVal(eng engine.Engine, h engine.Handle) Val {
	return Val{eng: eng, h: h}
}

// WrapVal wraps a handle as a generic value without classification.
func WrapVal(eng engine.Engine, h engine.Handle) (*Val, error) {
	if eng == nil || !h.IsValid() {
		return nil, fmt.Errorf("value handle required: %w", ErrInvalidArgument)
	}
	v := newVal(eng, h)
	return &v, nil
}

func (v *Val) root() *Val { return v }

// Handle returns the underlying handle. Wrapper equality is handle
// identity; handles are comparable and hash as map keys.
func (v *Val) Handle() engine.Handle { return v.h }

// Name returns the value's debug name.
func (v *Val) Name() string { return v.eng.ValueName(v.h) }

// SetName sets the value's debug name; an empty name is rejected.
func (v *Val) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidArgument)
	}
	v.eng.SetValueName(v.h, name)
	return nil
}

// IsConstant reports whether the engine considers the value a constant.
func (v *Val) IsConstant() bool { return v.eng.IsConstant(v.h) }

// IsNull reports whether the value is the null value of its type.
func (v *Val) IsNull() bool { return v.eng.IsNull(v.h) }

// IsUndef reports whether the value is an undefined constant.
func (v *Val) IsUndef() bool { return v.eng.IsUndef(v.h) }

// Type rederives the value's classified type. Deliberately uncached: the
// engine owns the truth and the cost is one classification query.
func (v *Val) Type() (Type, error) {
	return TypeOf(v.eng, v.eng.TypeOf(v.h))
}

// Attrs returns the value's attribute set, constructing it on first
// access. Exactly one AttrSet exists per wrapper instance; its cache is
// valid only while it is the sole mutator of this value's attributes.
func (v *Val) Attrs() *AttrSet {
	if v.attrs == nil {
		v.attrs = newAttrSet(v.eng, v.h)
	}
	return v.attrs
}

// Dump renders the value in the engine's debug syntax.
func (v *Val) Dump() string { return v.eng.Dump(v.h) }

func (v *Val) String() string { return v.Dump() }

func (v *Val) cast(op engine.CastOp, to Type) (*Val, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%s target type required: %w", op, ErrInvalidArgument)
	}
	h, err := v.eng.ConstCast(op, v.h, to.Handle())
	if err != nil {
		return nil, err
	}
	out := newVal(v.eng, h)
	return &out, nil
}

// Bitcast folds a bit-pattern reinterpretation to the target type.
func (v *Val) Bitcast(to Type) (*Val, error) { return v.cast(engine.CastBit, to) }

// Truncate folds a narrowing conversion to the target type.
func (v *Val) Truncate(to Type) (*Val, error) { return v.cast(engine.CastTrunc, to) }

// TruncOrBitcast truncates when the target is narrower, bitcasts otherwise.
func (v *Val) TruncOrBitcast(to Type) (*Val, error) { return v.cast(engine.CastTruncOrBit, to) }

// ZeroExtend folds a zero-extending conversion to the target type.
func (v *Val) ZeroExtend(to Type) (*Val, error) { return v.cast(engine.CastZExt, to) }

// ZeroExtendOrBitcast zero-extends when the target is wider, bitcasts
// otherwise.
func (v *Val) ZeroExtendOrBitcast(to Type) (*Val, error) { return v.cast(engine.CastZExtOrBit, to) }

// Identical reports handle identity between two wrappers.
func Identical(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Handle() == b.Handle()
}

// Wrap classifies a handle into its concrete wrapper variant by TypeKind
// tag. The table is exhaustive over the kind set; metadata is the explicit
// unsupported arm.
func Wrap(eng engine.Engine, h engine.Handle) (Value, error) {
	if eng == nil || !h.IsValid() {
		return nil, fmt.Errorf("value handle required: %w", ErrInvalidArgument)
	}
	th := eng.TypeOf(h)
	kind := eng.KindOf(th)
	switch kind {
	case engine.KindInteger:
		if ik, ok := intKindForBits(eng.IntWidth(th)); ok {
			return newInteger(eng, h, ik, true), nil
		}
		return newConstantPtr(eng, h), nil
	case engine.KindFloat, engine.KindDouble, engine.KindX86FP80, engine.KindFP128, engine.KindPPCFP128:
		rk, _ := realKindFor(kind)
		return newReal(eng, h, rk), nil
	case engine.KindPointer:
		switch {
		case eng.IsGlobalVariable(h):
			return &GlobalVariable{Global: newGlobal(eng, h)}, nil
		case eng.IsGlobalAlias(h):
			return &GlobalAlias{Global: newGlobal(eng, h)}, nil
		default:
			return &Pointer{Constant: newConstant(eng, h)}, nil
		}
	case engine.KindArray:
		return &Array{aggregate: newAggregate(eng, h)}, nil
	case engine.KindVector:
		return &Vector{aggregate: newAggregate(eng, h)}, nil
	case engine.KindStruct:
		return &Struct{aggregate: newAggregate(eng, h)}, nil
	case engine.KindFunction:
		return &Function{Global: newGlobal(eng, h)}, nil
	case engine.KindLabel:
		return &Block{Val: newVal(eng, h)}, nil
	case engine.KindVoid, engine.KindX86MMX:
		v := newVal(eng, h)
		return &v, nil
	case engine.KindMetadata:
		return nil, fmt.Errorf("metadata value: %w", ErrUnrepresentableType)
	case engine.KindInvalid:
		return nil, fmt.Errorf("dead value handle: %w", ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("kind %s: %w", kind, ErrUnrepresentableType)
	}
}

// Block wraps a label-typed value.
type Block struct {
	Val
}
