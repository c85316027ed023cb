package mem

import (
	"fmt"
	"math"
	"math/bits"

	"irval/internal/engine"
)

type intOperand struct {
	val  uint64
	typ  engine.TypeHandle
	bits uint32
}

func (e *Engine) intOperand(v engine.Handle) (intOperand, error) {
	rec, err := e.mustRec(v)
	if err != nil {
		return intOperand{}, err
	}
	width := e.IntWidth(rec.typ)
	if width == 0 {
		return intOperand{}, fmt.Errorf("integer operand required: %w", engine.ErrBadHandle)
	}
	switch rec.kind {
	case valInt:
		return intOperand{val: rec.bits, typ: rec.typ, bits: width}, nil
	case valNull:
		return intOperand{typ: rec.typ, bits: width}, nil
	default:
		return intOperand{}, fmt.Errorf("integer constant required: %w", engine.ErrBadHandle)
	}
}

func (e *Engine) realOperand(v engine.Handle) (float64, engine.TypeHandle, error) {
	rec, err := e.mustRec(v)
	if err != nil {
		return 0, engine.NoTypeHandle, err
	}
	if !e.KindOf(rec.typ).IsFloating() {
		return 0, engine.NoTypeHandle, fmt.Errorf("floating operand required: %w", engine.ErrBadHandle)
	}
	switch rec.kind {
	case valReal:
		return rec.real, rec.typ, nil
	case valNull:
		return 0, rec.typ, nil
	default:
		return 0, engine.NoTypeHandle, fmt.Errorf("floating constant required: %w", engine.ErrBadHandle)
	}
}

func negative(v uint64, width uint32) bool { return signExtend(v, width) < 0 }

func minInt(width uint32) int64 { return signExtend(uint64(1)<<(width-1), width) }

// ConstBinary folds a binary primitive. Both operands must share the
// result type; flagged wrap or exactness violations are errors.
func (e *Engine) ConstBinary(op engine.BinOp, flags engine.Flags, lhs, rhs engine.Handle) (engine.Handle, error) {
	if op.IsFloat() {
		return e.foldFloatBinary(op, lhs, rhs)
	}
	a, err := e.intOperand(lhs)
	if err != nil {
		return engine.NoHandle, err
	}
	b, err := e.intOperand(rhs)
	if err != nil {
		return engine.NoHandle, err
	}
	if a.typ != b.typ {
		return engine.NoHandle, fmt.Errorf("binary operand type mismatch: %w", engine.ErrBadHandle)
	}
	res, err := foldIntBinary(op, flags, a.val, b.val, a.bits)
	if err != nil {
		return engine.NoHandle, err
	}
	return e.alloc(valueRec{kind: valInt, typ: a.typ, bits: res}), nil
}

func foldIntBinary(op engine.BinOp, flags engine.Flags, a, b uint64, width uint32) (uint64, error) {
	m := mask(width)
	sa, sb := signExtend(a, width), signExtend(b, width)
	switch op {
	case engine.OpAdd:
		r := (a + b) & m
		if flags&engine.FlagNUW != 0 && r < a {
			return 0, fmt.Errorf("add nuw i%d %d, %d: %w", width, a, b, engine.ErrOverflow)
		}
		if flags&engine.FlagNSW != 0 {
			sr := signExtend(r, width)
			if (sa >= 0) == (sb >= 0) && (sr >= 0) != (sa >= 0) {
				return 0, fmt.Errorf("add nsw i%d %d, %d: %w", width, sa, sb, engine.ErrOverflow)
			}
		}
		return r, nil
	case engine.OpSub:
		r := (a - b) & m
		if flags&engine.FlagNUW != 0 && b > a {
			return 0, fmt.Errorf("sub nuw i%d %d, %d: %w", width, a, b, engine.ErrOverflow)
		}
		if flags&engine.FlagNSW != 0 {
			sr := signExtend(r, width)
			if (sa >= 0) != (sb >= 0) && (sr >= 0) != (sa >= 0) {
				return 0, fmt.Errorf("sub nsw i%d %d, %d: %w", width, sa, sb, engine.ErrOverflow)
			}
		}
		return r, nil
	case engine.OpMul:
		hi, lo := bits.Mul64(a, b)
		r := lo & m
		if flags&engine.FlagNUW != 0 && (hi != 0 || lo != r) {
			return 0, fmt.Errorf("mul nuw i%d %d, %d: %w", width, a, b, engine.ErrOverflow)
		}
		if flags&engine.FlagNSW != 0 && signedMulWraps(sa, sb, width) {
			return 0, fmt.Errorf("mul nsw i%d %d, %d: %w", width, sa, sb, engine.ErrOverflow)
		}
		return r, nil
	case engine.OpSDiv:
		if sb == 0 {
			return 0, fmt.Errorf("sdiv i%d %d, 0: %w", width, sa, engine.ErrDivideByZero)
		}
		if sa == minInt(width) && sb == -1 {
			return 0, fmt.Errorf("sdiv i%d min, -1: %w", width, engine.ErrOverflow)
		}
		q := sa / sb
		if flags&engine.FlagExact != 0 && sa%sb != 0 {
			return 0, fmt.Errorf("sdiv exact i%d %d, %d: %w", width, sa, sb, engine.ErrOverflow)
		}
		return asUint64(q) & m, nil
	case engine.OpUDiv:
		if b == 0 {
			return 0, fmt.Errorf("udiv i%d %d, 0: %w", width, a, engine.ErrDivideByZero)
		}
		if flags&engine.FlagExact != 0 && a%b != 0 {
			return 0, fmt.Errorf("udiv exact i%d %d, %d: %w", width, a, b, engine.ErrOverflow)
		}
		return (a / b) & m, nil
	case engine.OpSRem:
		if sb == 0 {
			return 0, fmt.Errorf("srem i%d %d, 0: %w", width, sa, engine.ErrDivideByZero)
		}
		if sb == -1 {
			return 0, nil
		}
		return asUint64(sa%sb) & m, nil
	case engine.OpURem:
		if b == 0 {
			return 0, fmt.Errorf("urem i%d %d, 0: %w", width, a, engine.ErrDivideByZero)
		}
		return (a % b) & m, nil
	case engine.OpAnd:
		return a & b, nil
	case engine.OpOr:
		return a | b, nil
	case engine.OpXor:
		return (a ^ b) & m, nil
	case engine.OpShl:
		if b >= uint64(width) {
			return 0, fmt.Errorf("shl i%d by %d: %w", width, b, engine.ErrOverflow)
		}
		r := (a << b) & m
		if flags&engine.FlagNUW != 0 && r>>b != a {
			return 0, fmt.Errorf("shl nuw i%d %d by %d: %w", width, a, b, engine.ErrOverflow)
		}
		if flags&engine.FlagNSW != 0 && signExtend(r, width)>>b != sa {
			return 0, fmt.Errorf("shl nsw i%d %d by %d: %w", width, sa, b, engine.ErrOverflow)
		}
		return r, nil
	case engine.OpLShr:
		if b >= uint64(width) {
			return 0, fmt.Errorf("lshr i%d by %d: %w", width, b, engine.ErrOverflow)
		}
		return a >> b, nil
	case engine.OpAShr:
		if b >= uint64(width) {
			return 0, fmt.Errorf("ashr i%d by %d: %w", width, b, engine.ErrOverflow)
		}
		return asUint64(sa>>b) & m, nil
	default:
		return 0, fmt.Errorf("op %s on integer operands: %w", op, engine.ErrBadHandle)
	}
}

// signedMulWraps reports whether sa*sb leaves the signed range of the width.
func signedMulWraps(sa, sb int64, width uint32) bool {
	if sa == 0 || sb == 0 {
		return false
	}
	hi, lo := bits.Mul64(asUint64(sa), asUint64(sb))
	prod := int64(lo) //nolint:gosec // low 64 bits of the two's-complement product
	// 128-bit sanity for the 64-bit case: hi must be the sign extension of lo.
	if width >= 64 {
		if int64(hi) != prod>>63 { //nolint:gosec // sign bits comparison
			return true
		}
		return false
	}
	if int64(hi) != prod>>63 { //nolint:gosec // sign bits comparison
		return true
	}
	return prod != signExtend(asUint64(prod)&mask(width), width)
}

func (e *Engine) foldFloatBinary(op engine.BinOp, lhs, rhs engine.Handle) (engine.Handle, error) {
	a, at, err := e.realOperand(lhs)
	if err != nil {
		return engine.NoHandle, err
	}
	b, bt, err := e.realOperand(rhs)
	if err != nil {
		return engine.NoHandle, err
	}
	if at != bt {
		return engine.NoHandle, fmt.Errorf("binary operand type mismatch: %w", engine.ErrBadHandle)
	}
	var r float64
	switch op {
	case engine.OpFAdd:
		r = a + b
	case engine.OpFSub:
		r = a - b
	case engine.OpFMul:
		r = a * b
	case engine.OpFDiv:
		r = a / b
	case engine.OpFRem:
		r = math.Mod(a, b)
	default:
		return engine.NoHandle, fmt.Errorf("op %s on floating operands: %w", op, engine.ErrBadHandle)
	}
	return e.ConstReal(at, r), nil
}

// ConstNeg folds negation for integer and floating constants.
func (e *Engine) ConstNeg(flags engine.Flags, v engine.Handle) (engine.Handle, error) {
	rec, err := e.mustRec(v)
	if err != nil {
		return engine.NoHandle, err
	}
	if e.KindOf(rec.typ).IsFloating() {
		f, ft, err := e.realOperand(v)
		if err != nil {
			return engine.NoHandle, err
		}
		return e.ConstReal(ft, -f), nil
	}
	a, err := e.intOperand(v)
	if err != nil {
		return engine.NoHandle, err
	}
	res, err := foldIntBinary(engine.OpSub, flags, 0, a.val, a.bits)
	if err != nil {
		return engine.NoHandle, err
	}
	return e.alloc(valueRec{kind: valInt, typ: a.typ, bits: res}), nil
}

// ConstNot folds bitwise complement for integer constants.
func (e *Engine) ConstNot(v engine.Handle) (engine.Handle, error) {
	a, err := e.intOperand(v)
	if err != nil {
		return engine.NoHandle, err
	}
	return e.alloc(valueRec{kind: valInt, typ: a.typ, bits: ^a.val & mask(a.bits)}), nil
}

// ConstICmp folds an integer comparison into an i1 constant.
func (e *Engine) ConstICmp(pred engine.IntPredicate, lhs, rhs engine.Handle) (engine.Handle, error) {
	a, err := e.intOperand(lhs)
	if err != nil {
		return engine.NoHandle, err
	}
	b, err := e.intOperand(rhs)
	if err != nil {
		return engine.NoHandle, err
	}
	if a.typ != b.typ {
		return engine.NoHandle, fmt.Errorf("icmp operand type mismatch: %w", engine.ErrBadHandle)
	}
	sa, sb := signExtend(a.val, a.bits), signExtend(b.val, b.bits)
	var r bool
	switch pred {
	case engine.IntEQ:
		r = a.val == b.val
	case engine.IntNE:
		r = a.val != b.val
	case engine.IntUGT:
		r = a.val > b.val
	case engine.IntUGE:
		r = a.val >= b.val
	case engine.IntULT:
		r = a.val < b.val
	case engine.IntULE:
		r = a.val <= b.val
	case engine.IntSGT:
		r = sa > sb
	case engine.IntSGE:
		r = sa >= sb
	case engine.IntSLT:
		r = sa < sb
	case engine.IntSLE:
		r = sa <= sb
	default:
		return engine.NoHandle, fmt.Errorf("unknown predicate %d: %w", pred, engine.ErrBadHandle)
	}
	return e.constBool(r), nil
}

func (e *Engine) constBool(b bool) engine.Handle {
	var v uint64
	if b {
		v = 1
	}
	return e.ConstInt(e.IntType(1), v, false)
}

// ConstFCmp folds a floating comparison into an i1 constant. Ordered
// predicates are false when either operand is NaN.
func (e *Engine) ConstFCmp(pred engine.RealPredicate, lhs, rhs engine.Handle) (engine.Handle, error) {
	a, at, err := e.realOperand(lhs)
	if err != nil {
		return engine.NoHandle, err
	}
	b, bt, err := e.realOperand(rhs)
	if err != nil {
		return engine.NoHandle, err
	}
	if at != bt {
		return engine.NoHandle, fmt.Errorf("fcmp operand type mismatch: %w", engine.ErrBadHandle)
	}
	unordered := math.IsNaN(a) || math.IsNaN(b)
	var r bool
	switch pred {
	case engine.RealPredicateFalse:
		r = false
	case engine.RealPredicateTrue:
		r = true
	case engine.RealORD:
		r = !unordered
	case engine.RealUNO:
		r = unordered
	case engine.RealOEQ:
		r = !unordered && a == b
	case engine.RealOGT:
		r = !unordered && a > b
	case engine.RealOGE:
		r = !unordered && a >= b
	case engine.RealOLT:
		r = !unordered && a < b
	case engine.RealOLE:
		r = !unordered && a <= b
	case engine.RealONE:
		r = !unordered && a != b
	case engine.RealUEQ:
		r = unordered || a == b
	case engine.RealUGT:
		r = unordered || a > b
	case engine.RealUGE:
		r = unordered || a >= b
	case engine.RealULT:
		r = unordered || a < b
	case engine.RealULE:
		r = unordered || a <= b
	case engine.RealUNE:
		r = unordered || a != b
	default:
		return engine.NoHandle, fmt.Errorf("unknown predicate %d: %w", pred, engine.ErrBadHandle)
	}
	return e.constBool(r), nil
}
