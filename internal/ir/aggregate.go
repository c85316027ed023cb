package ir

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"irval/internal/engine"
)

// aggregate carries the folding element operations shared by the composite
// constant variants.
type aggregate struct {
	Constant
}

func newAggregate(eng engine.Engine, h engine.Handle) aggregate {
	return aggregate{Constant: newConstant(eng, h)}
}

// Extract folds element access, returning a freshly classified wrapper for
// the element constant.
func (a *aggregate) Extract(index uint32) (Value, error) {
	h, err := a.eng.ConstExtractValue(a.h, index)
	if err != nil {
		return nil, indexErr(err, index)
	}
	return Wrap(a.eng, h)
}

// Insert folds element replacement. The receiver is untouched; constants
// are immutable and the result is a fresh aggregate.
func (a *aggregate) Insert(v Value, index uint32) (Value, error) {
	if v == nil {
		return nil, fmt.Errorf("insert element value required: %w", ErrInvalidArgument)
	}
	h, err := a.eng.ConstInsertValue(a.h, v.Handle(), index)
	if err != nil {
		return nil, indexErr(err, index)
	}
	return Wrap(a.eng, h)
}

func indexErr(err error, index uint32) error {
	if errors.Is(err, engine.ErrBadIndex) {
		return fmt.Errorf("element %d: %w", index, ErrOutOfRange)
	}
	return err
}

// packValues collects element handles into a contiguous buffer for the
// engine's aggregate constructors.
func packValues(elems []Value) ([]engine.Handle, error) {
	out := make([]engine.Handle, len(elems))
	for i, el := range elems {
		if el == nil {
			return nil, fmt.Errorf("element %d: %w", i, ErrInvalidArgument)
		}
		out[i] = el.Handle()
	}
	return out, nil
}

// generateValues materializes count elements from a generator. A count
// with no generator has nothing to produce elements from and is an
// argument error.
func generateValues(count int, gen func(int) Value) ([]Value, error) {
	if gen == nil {
		return nil, fmt.Errorf("element generator required for count %d: %w", count, ErrInvalidArgument)
	}
	if _, err := safecast.Conv[uint32](count); err != nil {
		return nil, fmt.Errorf("element count %d: %w", count, ErrInvalidArgument)
	}
	out := make([]Value, count)
	for i := range out {
		out[i] = gen(i)
	}
	return out, nil
}

// Array is a constant array with an explicit element type.
type Array struct {
	aggregate
}

// NewArray builds an array constant; the element count is the slice length.
func NewArray(eng engine.Engine, elem Type, elems []Value) (*Array, error) {
	if eng == nil || !elem.Valid() {
		return nil, fmt.Errorf("array element type required: %w", ErrInvalidArgument)
	}
	packed, err := packValues(elems)
	if err != nil {
		return nil, err
	}
	return &Array{aggregate: newAggregate(eng, eng.ConstArray(elem.Handle(), packed))}, nil
}

// GenerateArray builds an array constant from count elements produced by
// the generator.
func GenerateArray(eng engine.Engine, elem Type, count int, gen func(int) Value) (*Array, error) {
	elems, err := generateValues(count, gen)
	if err != nil {
		return nil, err
	}
	return NewArray(eng, elem, elems)
}

// Vector is a constant vector.
type Vector struct {
	aggregate
}

// NewVector builds a vector constant from an explicit element sequence.
func NewVector(eng engine.Engine, elems []Value) (*Vector, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine required: %w", ErrInvalidArgument)
	}
	packed, err := packValues(elems)
	if err != nil {
		return nil, err
	}
	return &Vector{aggregate: newAggregate(eng, eng.ConstVector(packed))}, nil
}

// GenerateVector builds a vector constant from count generated elements.
func GenerateVector(eng engine.Engine, count int, gen func(int) Value) (*Vector, error) {
	elems, err := generateValues(count, gen)
	if err != nil {
		return nil, err
	}
	return NewVector(eng, elems)
}

// WrapVector wraps an already-produced vector handle.
func WrapVector(eng engine.Engine, h engine.Handle) (*Vector, error) {
	if eng == nil || !h.IsValid() {
		return nil, fmt.Errorf("vector handle required: %w", ErrInvalidArgument)
	}
	return &Vector{aggregate: newAggregate(eng, h)}, nil
}

// ExtractElement folds element access under a constant index value.
func (v *Vector) ExtractElement(index Value) (Value, error) {
	if index == nil {
		return nil, fmt.Errorf("element index required: %w", ErrInvalidArgument)
	}
	h, err := v.eng.ConstExtractElement(v.h, index.Handle())
	if err != nil {
		return nil, err
	}
	return Wrap(v.eng, h)
}

// InsertElement folds element replacement under a constant index value,
// yielding a fresh vector.
func (v *Vector) InsertElement(elem, index Value) (Value, error) {
	if elem == nil || index == nil {
		return nil, fmt.Errorf("element and index required: %w", ErrInvalidArgument)
	}
	h, err := v.eng.ConstInsertElement(v.h, elem.Handle(), index.Handle())
	if err != nil {
		return nil, err
	}
	return Wrap(v.eng, h)
}

// Shuffle folds a two-vector shuffle under a constant mask. Lane and type
// compatibility are the engine's to judge.
func (v *Vector) Shuffle(other *Vector, mask Value) (Value, error) {
	if other == nil || mask == nil {
		return nil, fmt.Errorf("shuffle operand and mask required: %w", ErrInvalidArgument)
	}
	h, err := v.eng.ConstShuffleVector(v.h, other.h, mask.Handle())
	if err != nil {
		return nil, err
	}
	return Wrap(v.eng, h)
}

// Struct is a constant struct.
type Struct struct {
	aggregate
}

// NewStruct builds a struct constant in the engine's global context.
func NewStruct(eng engine.Engine, elems []Value, packed bool) (*Struct, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine required: %w", ErrInvalidArgument)
	}
	buf, err := packValues(elems)
	if err != nil {
		return nil, err
	}
	return &Struct{aggregate: newAggregate(eng, eng.ConstStruct(buf, packed))}, nil
}

// NewStructIn builds a struct constant scoped to a construction context.
// Apart from which engine entry point runs, behavior matches NewStruct.
func NewStructIn(eng engine.Engine, ctx engine.Context, elems []Value, packed bool) (*Struct, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine required: %w", ErrInvalidArgument)
	}
	buf, err := packValues(elems)
	if err != nil {
		return nil, err
	}
	return &Struct{aggregate: newAggregate(eng, eng.ConstStructIn(ctx, buf, packed))}, nil
}

// Str is a constant character array.
type Str struct {
	aggregate
}

// NewString builds a character-array constant in the global context.
func NewString(eng engine.Engine, text string, nullTerminated bool) (*Str, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine required: %w", ErrInvalidArgument)
	}
	return &Str{aggregate: newAggregate(eng, eng.ConstString(text, nullTerminated))}, nil
}

// NewStringIn builds a character-array constant scoped to a construction
// context.
func NewStringIn(eng engine.Engine, ctx engine.Context, text string, nullTerminated bool) (*Str, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine required: %w", ErrInvalidArgument)
	}
	return &Str{aggregate: newAggregate(eng, eng.ConstStringIn(ctx, text, nullTerminated))}, nil
}
