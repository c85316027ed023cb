package ir

import (
	"errors"
	"fmt"

	"irval/internal/engine"
)

// Operands is an uncached, indexable view over a user value's operand
// slots. Size and element identity are recomputed from the engine on every
// access; nothing here goes stale, and iteration may be repeated freely. A
// read wraps its result as a generic *Val: operand access does not
// reclassify the concrete subtype.
type Operands struct {
	eng   engine.Engine
	owner engine.Handle
}

// Len queries the current operand count.
func (o *Operands) Len() int { return o.eng.OperandCount(o.owner) }

// At returns the operand at index. Out-of-bounds indices and null slots
// both report ok=false; a read never errors.
func (o *Operands) At(index int) (*Val, bool) {
	h, ok := o.eng.Operand(o.owner, index)
	if !ok {
		return nil, false
	}
	v := newVal(o.eng, h)
	return &v, true
}

// Set replaces the operand at index. The view has no cache to update; the
// replacement is visible on the next read.
func (o *Operands) Set(index int, v Value) error {
	if v == nil {
		return fmt.Errorf("operand value required: %w", ErrInvalidArgument)
	}
	if err := o.eng.SetOperand(o.owner, index, v.Handle()); err != nil {
		if errors.Is(err, engine.ErrBadIndex) {
			return fmt.Errorf("operand %d: %w", index, ErrOutOfRange)
		}
		return err
	}
	return nil
}

// All returns the operands in index order, recomputing bounds at call time.
func (o *Operands) All() []*Val {
	n := o.Len()
	out := make([]*Val, 0, n)
	for i := 0; i < n; i++ {
		if v, ok := o.At(i); ok {
			out = append(out, v)
		}
	}
	return out
}
