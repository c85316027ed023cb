package mem

import (
	"fmt"
	"slices"

	"irval/internal/engine"
)

type valueKind uint8

const (
	valInt valueKind = iota
	valReal
	valNull
	valPointerNull
	valUndef
	valAggregate
	valString
	valGlobal
	valAlias
	valExpr
)

type valueRec struct {
	kind valueKind
	typ  engine.TypeHandle

	bits uint64 // integer payload, masked to the type width
	real float64
	// elems holds aggregate elements or expression operands.
	elems []engine.Handle
	text  string // string payload, or expression opcode for dumps
	name  string
	attrs []engine.Attribute

	// global metadata
	content     engine.TypeHandle
	init        engine.Handle
	aliasee     engine.Handle
	align       uint32
	linkage     engine.Linkage
	visibility  engine.Visibility
	section     string
	globalConst bool
	threadLocal bool
	nullTerm    bool
}

func (e *Engine) alloc(rec valueRec) engine.Handle {
	e.values = append(e.values, rec)
	return engine.Handle(len(e.values))
}

func (e *Engine) valueRec(v engine.Handle) (*valueRec, bool) {
	if !v.IsValid() || uint64(v) > uint64(len(e.values)) {
		return nil, false
	}
	return &e.values[v-1], true
}

func (e *Engine) mustRec(v engine.Handle) (*valueRec, error) {
	rec, ok := e.valueRec(v)
	if !ok {
		return nil, fmt.Errorf("handle %d: %w", v, engine.ErrBadHandle)
	}
	return rec, nil
}

// ValueName returns the value's debug name.
func (e *Engine) ValueName(v engine.Handle) string {
	rec, ok := e.valueRec(v)
	if !ok {
		return ""
	}
	return rec.name
}

// SetValueName records the value's debug name.
func (e *Engine) SetValueName(v engine.Handle, name string) {
	if rec, ok := e.valueRec(v); ok {
		rec.name = name
	}
}

// IsConstant reports whether the handle refers to a constant. Every value
// this engine produces is a constant; dead handles are not.
func (e *Engine) IsConstant(v engine.Handle) bool {
	_, ok := e.valueRec(v)
	return ok
}

// IsNull reports whether the value is the null/zero value of its type.
func (e *Engine) IsNull(v engine.Handle) bool {
	rec, ok := e.valueRec(v)
	if !ok {
		return false
	}
	switch rec.kind {
	case valNull, valPointerNull:
		return true
	case valInt:
		return rec.bits == 0
	case valReal:
		return rec.real == 0
	default:
		return false
	}
}

// IsUndef reports whether the value is an undefined constant.
func (e *Engine) IsUndef(v engine.Handle) bool {
	rec, ok := e.valueRec(v)
	return ok && rec.kind == valUndef
}

// AddAttribute records an attribute on the value; adding a present
// attribute is a no-op.
func (e *Engine) AddAttribute(v engine.Handle, attr engine.Attribute) error {
	rec, err := e.mustRec(v)
	if err != nil {
		return err
	}
	if !slices.Contains(rec.attrs, attr) {
		rec.attrs = append(rec.attrs, attr)
	}
	return nil
}

// RemoveAttribute removes an attribute; removing an absent one is a no-op.
func (e *Engine) RemoveAttribute(v engine.Handle, attr engine.Attribute) error {
	rec, err := e.mustRec(v)
	if err != nil {
		return err
	}
	if i := slices.Index(rec.attrs, attr); i >= 0 {
		rec.attrs = slices.Delete(rec.attrs, i, i+1)
	}
	return nil
}

// Attributes returns a copy of the value's attribute set.
func (e *Engine) Attributes(v engine.Handle) []engine.Attribute {
	rec, ok := e.valueRec(v)
	if !ok {
		return nil
	}
	return slices.Clone(rec.attrs)
}

// OperandCount reports the number of operand slots on a user value.
func (e *Engine) OperandCount(v engine.Handle) int {
	rec, ok := e.valueRec(v)
	if !ok {
		return 0
	}
	switch rec.kind {
	case valAggregate, valExpr:
		return len(rec.elems)
	case valString:
		return len(e.stringBytes(rec))
	case valGlobal:
		if rec.init.IsValid() {
			return 1
		}
		return 0
	case valAlias:
		return 1
	default:
		return 0
	}
}

// Operand returns the operand at index. Out-of-bounds and null slots both
// report ok=false.
func (e *Engine) Operand(v engine.Handle, index int) (engine.Handle, bool) {
	rec, ok := e.valueRec(v)
	if !ok || index < 0 {
		return engine.NoHandle, false
	}
	switch rec.kind {
	case valAggregate, valExpr:
		if index >= len(rec.elems) {
			return engine.NoHandle, false
		}
		op := rec.elems[index]
		return op, op.IsValid()
	case valString:
		bs := e.stringBytes(rec)
		if index >= len(bs) {
			return engine.NoHandle, false
		}
		return e.ConstInt(e.IntType(8), uint64(bs[index]), false), true
	case valGlobal:
		if index == 0 && rec.init.IsValid() {
			return rec.init, true
		}
		return engine.NoHandle, false
	case valAlias:
		if index == 0 {
			return rec.aliasee, rec.aliasee.IsValid()
		}
		return engine.NoHandle, false
	default:
		return engine.NoHandle, false
	}
}

// SetOperand replaces the operand at index. String constants are the one
// asymmetry with Operand: their character slots are synthesized on read
// and have no backing element storage, so writes to them report
// ErrBadIndex like any other operand-free value.
func (e *Engine) SetOperand(v engine.Handle, index int, op engine.Handle) error {
	rec, err := e.mustRec(v)
	if err != nil {
		return err
	}
	switch rec.kind {
	case valAggregate, valExpr:
		if index < 0 || index >= len(rec.elems) {
			return fmt.Errorf("operand %d of %d: %w", index, len(rec.elems), engine.ErrBadIndex)
		}
		rec.elems[index] = op
		return nil
	case valGlobal:
		if index != 0 {
			return fmt.Errorf("operand %d: %w", index, engine.ErrBadIndex)
		}
		rec.init = op
		return nil
	case valAlias:
		if index != 0 {
			return fmt.Errorf("operand %d: %w", index, engine.ErrBadIndex)
		}
		rec.aliasee = op
		return nil
	default:
		return fmt.Errorf("value has no operands: %w", engine.ErrBadIndex)
	}
}

func (e *Engine) stringBytes(rec *valueRec) []byte {
	bs := []byte(rec.text)
	if rec.nullTerm {
		bs = append(bs, 0)
	}
	return bs
}
