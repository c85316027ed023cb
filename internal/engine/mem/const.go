package mem

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"irval/internal/engine"
)

// mask returns the payload mask for an integer width in 1..64.
func mask(bits uint32) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// signExtend reinterprets a masked payload as a signed value of the width.
func signExtend(v uint64, bits uint32) int64 {
	if bits == 0 || bits >= 64 {
		return int64(v) //nolint:gosec // intentional bit-pattern reinterpretation for fixed-width ints
	}
	shift := 64 - bits
	return int64(v<<shift) >> shift //nolint:gosec // intentional bit-pattern reinterpretation
}

func asUint64(v int64) uint64 {
	return uint64(v) //nolint:gosec // intentional bit-pattern reinterpretation for unsigned ops
}

// ConstInt builds an integer constant. The payload is masked to the type
// width; signExtend only matters for how val is interpreted before masking
// and is irrelevant once stored.
func (e *Engine) ConstInt(t engine.TypeHandle, val uint64, signExtend bool) engine.Handle {
	_ = signExtend
	bits := e.IntWidth(t)
	return e.alloc(valueRec{kind: valInt, typ: t, bits: val & mask(bits)})
}

// ConstIntOfString parses text in the given radix and builds an integer
// constant of the type's width.
func (e *Engine) ConstIntOfString(t engine.TypeHandle, text string, radix int) (engine.Handle, error) {
	bits := e.IntWidth(t)
	if bits == 0 {
		return engine.NoHandle, fmt.Errorf("not an integer type: %w", engine.ErrBadHandle)
	}
	text = strings.TrimSpace(text)
	neg := false
	if strings.HasPrefix(text, "-") {
		neg = true
		text = text[1:]
	}
	u, err := strconv.ParseUint(text, radix, 64)
	if err != nil {
		return engine.NoHandle, fmt.Errorf("parse %q radix %d: %w", text, radix, engine.ErrBadConstant)
	}
	if neg {
		u = asUint64(-signExtend(u, 64))
	}
	return e.ConstInt(t, u, neg), nil
}

// ConstReal builds a floating constant of the given format.
func (e *Engine) ConstReal(t engine.TypeHandle, val float64) engine.Handle {
	if e.KindOf(t) == engine.KindFloat {
		val = float64(float32(val))
	}
	return e.alloc(valueRec{kind: valReal, typ: t, real: val})
}

// ConstRealOfString parses a decimal floating literal.
func (e *Engine) ConstRealOfString(t engine.TypeHandle, text string) (engine.Handle, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return engine.NoHandle, fmt.Errorf("parse %q: %w", text, engine.ErrBadConstant)
	}
	return e.ConstReal(t, f), nil
}

// ConstAllOnes builds the all-ones integer constant of the type's width.
func (e *Engine) ConstAllOnes(t engine.TypeHandle) engine.Handle {
	bits := e.IntWidth(t)
	return e.alloc(valueRec{kind: valInt, typ: t, bits: mask(bits)})
}

// ConstNull builds the zero value of any type.
func (e *Engine) ConstNull(t engine.TypeHandle) engine.Handle {
	return e.alloc(valueRec{kind: valNull, typ: t})
}

// ConstPointerNull builds the null pointer constant for a pointer type.
func (e *Engine) ConstPointerNull(t engine.TypeHandle) engine.Handle {
	return e.alloc(valueRec{kind: valPointerNull, typ: t})
}

// ConstUndef builds an undefined constant of any type.
func (e *Engine) ConstUndef(t engine.TypeHandle) engine.Handle {
	return e.alloc(valueRec{kind: valUndef, typ: t})
}

// ConstArray builds an array constant; the element count is the slice length.
func (e *Engine) ConstArray(elem engine.TypeHandle, elems []engine.Handle) engine.Handle {
	t := e.ArrayType(elem, uint64(len(elems)))
	rec := valueRec{kind: valAggregate, typ: t}
	rec.elems = append(rec.elems, elems...)
	return e.alloc(rec)
}

// ConstVector builds a vector constant; the element type is taken from the
// first element.
func (e *Engine) ConstVector(elems []engine.Handle) engine.Handle {
	var elemType engine.TypeHandle
	if len(elems) > 0 {
		elemType = e.TypeOf(elems[0])
	}
	t := e.VectorType(elemType, uint64(len(elems)))
	rec := valueRec{kind: valAggregate, typ: t}
	rec.elems = append(rec.elems, elems...)
	return e.alloc(rec)
}

// ConstStruct builds a struct constant in the global context.
func (e *Engine) ConstStruct(elems []engine.Handle, packed bool) engine.Handle {
	return e.ConstStructIn(engine.GlobalContext, elems, packed)
}

// ConstStructIn builds a struct constant scoped to ctx. Behavior is
// identical to ConstStruct apart from type identity.
func (e *Engine) ConstStructIn(ctx engine.Context, elems []engine.Handle, packed bool) engine.Handle {
	fields := make([]engine.TypeHandle, len(elems))
	for i, el := range elems {
		fields[i] = e.TypeOf(el)
	}
	t := e.StructTypeIn(ctx, fields, packed)
	rec := valueRec{kind: valAggregate, typ: t}
	rec.elems = append(rec.elems, elems...)
	return e.alloc(rec)
}

// ConstString builds a character-array constant in the global context.
func (e *Engine) ConstString(text string, nullTerminate bool) engine.Handle {
	return e.ConstStringIn(engine.GlobalContext, text, nullTerminate)
}

// ConstStringIn builds a character-array constant scoped to ctx.
func (e *Engine) ConstStringIn(ctx engine.Context, text string, nullTerminate bool) engine.Handle {
	_ = ctx // strings have no context-dependent type identity here
	n := uint64(len(text))
	if nullTerminate {
		n++
	}
	t := e.ArrayType(e.IntType(8), n)
	return e.alloc(valueRec{kind: valString, typ: t, text: text, nullTerm: nullTerminate})
}

// ConstIntSExt materializes an integer constant sign-extended to 64 bits.
func (e *Engine) ConstIntSExt(v engine.Handle) int64 {
	rec, ok := e.valueRec(v)
	if !ok {
		return 0
	}
	switch rec.kind {
	case valInt:
		return signExtend(rec.bits, e.IntWidth(rec.typ))
	case valNull:
		return 0
	default:
		return 0
	}
}

// ConstIntZExt materializes an integer constant zero-extended to 64 bits.
func (e *Engine) ConstIntZExt(v engine.Handle) uint64 {
	rec, ok := e.valueRec(v)
	if !ok || rec.kind != valInt {
		return 0
	}
	return rec.bits
}

// ConstRealValue materializes a floating constant. lossy is true when the
// stored format is wider than float64; this engine stores everything as
// float64, so only the format flag is reported, never an actual loss.
func (e *Engine) ConstRealValue(v engine.Handle) (float64, bool) {
	rec, ok := e.valueRec(v)
	if !ok {
		return 0, false
	}
	switch rec.kind {
	case valReal:
		kind := e.KindOf(rec.typ)
		lossy := kind == engine.KindFP128 || kind == engine.KindPPCFP128 || kind == engine.KindX86FP80
		return rec.real, lossy
	case valNull:
		return 0, false
	default:
		return math.NaN(), false
	}
}
