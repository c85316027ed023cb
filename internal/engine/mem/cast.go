package mem

import (
	"fmt"
	"math"

	"irval/internal/engine"
)

// ConstCast folds a conversion primitive into a fresh constant of the
// target type.
func (e *Engine) ConstCast(op engine.CastOp, v engine.Handle, to engine.TypeHandle) (engine.Handle, error) {
	rec, err := e.mustRec(v)
	if err != nil {
		return engine.NoHandle, err
	}
	if _, ok := e.typeRec(to); !ok {
		return engine.NoHandle, fmt.Errorf("cast target type: %w", engine.ErrBadHandle)
	}
	switch op {
	case engine.CastTrunc:
		a, err := e.intOperand(v)
		if err != nil {
			return engine.NoHandle, err
		}
		return e.ConstInt(to, a.val, false), nil
	case engine.CastZExt:
		a, err := e.intOperand(v)
		if err != nil {
			return engine.NoHandle, err
		}
		return e.ConstInt(to, a.val, false), nil
	case engine.CastSExt:
		a, err := e.intOperand(v)
		if err != nil {
			return engine.NoHandle, err
		}
		return e.ConstInt(to, asUint64(signExtend(a.val, a.bits)), true), nil
	case engine.CastTruncOrBit:
		a, err := e.intOperand(v)
		if err != nil {
			return engine.NoHandle, err
		}
		if e.IntWidth(to) < a.bits {
			return e.ConstInt(to, a.val, false), nil
		}
		return e.bitcast(rec, to)
	case engine.CastZExtOrBit:
		a, err := e.intOperand(v)
		if err != nil {
			return engine.NoHandle, err
		}
		if e.IntWidth(to) > a.bits {
			return e.ConstInt(to, a.val, false), nil
		}
		return e.bitcast(rec, to)
	case engine.CastFPTrunc, engine.CastFPExt:
		f, _, err := e.realOperand(v)
		if err != nil {
			return engine.NoHandle, err
		}
		return e.ConstReal(to, f), nil
	case engine.CastFPToSI:
		f, _, err := e.realOperand(v)
		if err != nil {
			return engine.NoHandle, err
		}
		width := e.IntWidth(to)
		t := math.Trunc(f)
		if math.IsNaN(t) || t < float64(minInt(width)) || t >= math.Ldexp(1, int(width-1)) {
			return engine.NoHandle, fmt.Errorf("fptosi %g to i%d: %w", f, width, engine.ErrOverflow)
		}
		return e.ConstInt(to, asUint64(int64(t)), true), nil
	case engine.CastFPToUI:
		f, _, err := e.realOperand(v)
		if err != nil {
			return engine.NoHandle, err
		}
		width := e.IntWidth(to)
		t := math.Trunc(f)
		if math.IsNaN(t) || t < 0 || t >= math.Ldexp(1, int(width)) {
			return engine.NoHandle, fmt.Errorf("fptoui %g to i%d: %w", f, width, engine.ErrOverflow)
		}
		return e.ConstInt(to, uint64(t), false), nil
	case engine.CastSIToFP:
		a, err := e.intOperand(v)
		if err != nil {
			return engine.NoHandle, err
		}
		return e.ConstReal(to, float64(signExtend(a.val, a.bits))), nil
	case engine.CastUIToFP:
		a, err := e.intOperand(v)
		if err != nil {
			return engine.NoHandle, err
		}
		return e.ConstReal(to, float64(a.val)), nil
	case engine.CastPtrToInt:
		if e.KindOf(rec.typ) != engine.KindPointer {
			return engine.NoHandle, fmt.Errorf("ptrtoint source: %w", engine.ErrBadHandle)
		}
		if rec.kind == valPointerNull || rec.kind == valNull {
			return e.ConstInt(to, 0, false), nil
		}
		// Opaque address identity: the handle stands in for the address.
		return e.ConstInt(to, uint64(v), false), nil
	case engine.CastIntToPtr:
		if _, err := e.intOperand(v); err != nil {
			return engine.NoHandle, err
		}
		return e.alloc(valueRec{kind: valExpr, typ: to, text: "inttoptr", elems: []engine.Handle{v}}), nil
	case engine.CastBit:
		return e.bitcast(rec, to)
	default:
		return engine.NoHandle, fmt.Errorf("unknown cast op %d: %w", op, engine.ErrBadHandle)
	}
}

// bitcast reinterprets a constant's payload as the target type. The source
// and target must have the same bit width; the engine checks only the
// width combinations it can fold.
func (e *Engine) bitcast(rec *valueRec, to engine.TypeHandle) (engine.Handle, error) {
	srcKind := e.KindOf(rec.typ)
	dstKind := e.KindOf(to)
	switch {
	case srcKind == engine.KindInteger && dstKind == engine.KindInteger:
		if e.IntWidth(rec.typ) != e.IntWidth(to) {
			return engine.NoHandle, fmt.Errorf("bitcast width mismatch i%d to i%d: %w",
				e.IntWidth(rec.typ), e.IntWidth(to), engine.ErrBadHandle)
		}
		return e.ConstInt(to, rec.bits, false), nil
	case srcKind == engine.KindInteger && dstKind == engine.KindDouble:
		if e.IntWidth(rec.typ) != 64 {
			return engine.NoHandle, fmt.Errorf("bitcast i%d to double: %w", e.IntWidth(rec.typ), engine.ErrBadHandle)
		}
		return e.ConstReal(to, math.Float64frombits(rec.bits)), nil
	case srcKind == engine.KindInteger && dstKind == engine.KindFloat:
		if e.IntWidth(rec.typ) != 32 {
			return engine.NoHandle, fmt.Errorf("bitcast i%d to float: %w", e.IntWidth(rec.typ), engine.ErrBadHandle)
		}
		return e.ConstReal(to, float64(math.Float32frombits(uint32(rec.bits)))), nil //nolint:gosec // masked to 32 bits
	case srcKind == engine.KindDouble && dstKind == engine.KindInteger:
		if e.IntWidth(to) != 64 {
			return engine.NoHandle, fmt.Errorf("bitcast double to i%d: %w", e.IntWidth(to), engine.ErrBadHandle)
		}
		return e.ConstInt(to, math.Float64bits(rec.real), false), nil
	case srcKind == engine.KindFloat && dstKind == engine.KindInteger:
		if e.IntWidth(to) != 32 {
			return engine.NoHandle, fmt.Errorf("bitcast float to i%d: %w", e.IntWidth(to), engine.ErrBadHandle)
		}
		return e.ConstInt(to, uint64(math.Float32bits(float32(rec.real))), false), nil
	case srcKind == engine.KindPointer && dstKind == engine.KindPointer:
		out := *rec
		out.typ = to
		out.elems = append([]engine.Handle(nil), rec.elems...)
		return e.alloc(out), nil
	default:
		out := *rec
		out.typ = to
		out.elems = append([]engine.Handle(nil), rec.elems...)
		return e.alloc(out), nil
	}
}
