package ir

import (
	"fmt"

	"irval/internal/engine"
)

// IntKind is the compile-time descriptor of one integer variant. The five
// kinds below are process-wide immutable singletons; every Integer carries
// exactly one of them and all derived operations stay in the receiver's
// kind.
type IntKind struct {
	name string
	bits uint32
}

var (
	Int1  = IntKind{name: "Int1", bits: 1}
	Int8  = IntKind{name: "Int8", bits: 8}
	Int16 = IntKind{name: "Int16", bits: 16}
	Int32 = IntKind{name: "Int32", bits: 32}
	Int64 = IntKind{name: "Int64", bits: 64}
)

// IntKinds lists the integer variants in width order.
func IntKinds() []IntKind { return []IntKind{Int1, Int8, Int16, Int32, Int64} }

// intKindForBits is the direct width-to-descriptor table used by the
// classifier; no name lookup is involved.
func intKindForBits(bits uint32) (IntKind, bool) {
	switch bits {
	case 1:
		return Int1, true
	case 8:
		return Int8, true
	case 16:
		return Int16, true
	case 32:
		return Int32, true
	case 64:
		return Int64, true
	default:
		return IntKind{}, false
	}
}

// Bits returns the variant's fixed width.
func (k IntKind) Bits() uint32 { return k.bits }

func (k IntKind) String() string { return k.name }

// Valid reports whether the descriptor is one of the five variants.
func (k IntKind) Valid() bool { return k.bits != 0 }

// Type returns the variant's associated engine type.
func (k IntKind) Type(eng engine.Engine) (Type, error) {
	if eng == nil || !k.Valid() {
		return Type{}, fmt.Errorf("integer kind required: %w", ErrInvalidArgument)
	}
	return TypeOf(eng, eng.IntType(k.bits))
}

// Const builds a signed constant of this kind.
func (k IntKind) Const(eng engine.Engine, v int64) (*Integer, error) {
	return k.ConstSigned(eng, v, true)
}

// Unsigned builds an unsigned constant of this kind.
func (k IntKind) Unsigned(eng engine.Engine, v uint64) (*Integer, error) {
	t, err := k.Type(eng)
	if err != nil {
		return nil, err
	}
	return newInteger(eng, eng.ConstInt(t.Handle(), v, false), k, false), nil
}

// ConstSigned builds a constant with explicit signedness. The flag is fixed
// for the wrapper's lifetime and directs every signedness-sensitive
// operation derived from it.
func (k IntKind) ConstSigned(eng engine.Engine, v int64, signed bool) (*Integer, error) {
	t, err := k.Type(eng)
	if err != nil {
		return nil, err
	}
	return newInteger(eng, eng.ConstInt(t.Handle(), uint64(v), true), k, signed), nil //nolint:gosec // bit-pattern carry into the engine
}

// Parse builds a constant from a numeric string in the given radix.
func (k IntKind) Parse(eng engine.Engine, text string, radix int) (*Integer, error) {
	t, err := k.Type(eng)
	if err != nil {
		return nil, err
	}
	h, err := eng.ConstIntOfString(t.Handle(), text, radix)
	if err != nil {
		return nil, err
	}
	return newInteger(eng, h, k, true), nil
}

// AllOnes builds the all-ones constant of this kind.
func (k IntKind) AllOnes(eng engine.Engine) (*Integer, error) {
	t, err := k.Type(eng)
	if err != nil {
		return nil, err
	}
	return newInteger(eng, eng.ConstAllOnes(t.Handle()), k, true), nil
}

// Wrap wraps an already-produced handle of this kind. Signedness is
// unspecified on the wire and defaults to signed.
func (k IntKind) Wrap(eng engine.Engine, h engine.Handle) (*Integer, error) {
	if eng == nil || !h.IsValid() {
		return nil, fmt.Errorf("integer handle required: %w", ErrInvalidArgument)
	}
	if !k.Valid() {
		return nil, fmt.Errorf("integer kind required: %w", ErrInvalidArgument)
	}
	return newInteger(eng, h, k, true), nil
}

// Integer is a constant integer of one fixed kind. The signedness flag is
// set at construction and never changes; it selects sign- versus zero-
// extension and signed versus unsigned engine primitives wherever the
// operation itself does not say.
type Integer struct {
	Constant
	kind   IntKind
	signed bool
}

func newInteger(eng engine.Engine, h engine.Handle, kind IntKind, signed bool) *Integer {
	return &Integer{Constant: newConstant(eng, h), kind: kind, signed: signed}
}

// Kind returns the variant descriptor.
func (x *Integer) Kind() IntKind { return x.kind }

// Signed returns the construction-time signedness flag.
func (x *Integer) Signed() bool { return x.signed }

// SExtValue materializes the constant sign-extended to 64 bits.
func (x *Integer) SExtValue() int64 { return x.eng.ConstIntSExt(x.h) }

// ZExtValue materializes the constant zero-extended to 64 bits.
func (x *Integer) ZExtValue() uint64 { return x.eng.ConstIntZExt(x.h) }

func (x *Integer) binary(op engine.BinOp, flags engine.Flags, rhs *Integer) (*Integer, error) {
	if rhs == nil {
		return nil, fmt.Errorf("%s operand required: %w", op, ErrInvalidArgument)
	}
	h, err := x.eng.ConstBinary(op, flags, x.h, rhs.h)
	if err != nil {
		return nil, err
	}
	return newInteger(x.eng, h, x.kind, x.signed), nil
}

// Add folds wrapping addition.
func (x *Integer) Add(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpAdd, engine.FlagNone, rhs)
}

// AddNSW folds addition that errors on signed wrap.
func (x *Integer) AddNSW(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpAdd, engine.FlagNSW, rhs)
}

// AddNUW folds addition that errors on unsigned wrap.
func (x *Integer) AddNUW(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpAdd, engine.FlagNUW, rhs)
}

// Sub folds wrapping subtraction.
func (x *Integer) Sub(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpSub, engine.FlagNone, rhs)
}

// SubNSW folds subtraction that errors on signed wrap.
func (x *Integer) SubNSW(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpSub, engine.FlagNSW, rhs)
}

// SubNUW folds subtraction that errors on unsigned wrap.
func (x *Integer) SubNUW(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpSub, engine.FlagNUW, rhs)
}

// Mul folds wrapping multiplication.
func (x *Integer) Mul(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpMul, engine.FlagNone, rhs)
}

// MulNSW folds multiplication that errors on signed wrap.
func (x *Integer) MulNSW(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpMul, engine.FlagNSW, rhs)
}

// MulNUW folds multiplication that errors on unsigned wrap.
func (x *Integer) MulNUW(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpMul, engine.FlagNUW, rhs)
}

// Div folds division, signed or unsigned per the receiver's stored flag.
func (x *Integer) Div(rhs *Integer) (*Integer, error) {
	if x.signed {
		return x.binary(engine.OpSDiv, engine.FlagNone, rhs)
	}
	return x.binary(engine.OpUDiv, engine.FlagNone, rhs)
}

// ExactSDiv folds signed division that errors on a nonzero remainder.
func (x *Integer) ExactSDiv(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpSDiv, engine.FlagExact, rhs)
}

// UDiv folds unsigned division.
func (x *Integer) UDiv(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpUDiv, engine.FlagNone, rhs)
}

// Rem folds remainder, signed or unsigned per the receiver's stored flag.
func (x *Integer) Rem(rhs *Integer) (*Integer, error) {
	if x.signed {
		return x.binary(engine.OpSRem, engine.FlagNone, rhs)
	}
	return x.binary(engine.OpURem, engine.FlagNone, rhs)
}

// SRem folds signed remainder.
func (x *Integer) SRem(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpSRem, engine.FlagNone, rhs)
}

// URem folds unsigned remainder.
func (x *Integer) URem(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpURem, engine.FlagNone, rhs)
}

// And folds bitwise and.
func (x *Integer) And(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpAnd, engine.FlagNone, rhs)
}

// Or folds bitwise or.
func (x *Integer) Or(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpOr, engine.FlagNone, rhs)
}

// Xor folds bitwise exclusive or.
func (x *Integer) Xor(rhs *Integer) (*Integer, error) {
	return x.binary(engine.OpXor, engine.FlagNone, rhs)
}

// Shl folds a left shift.
func (x *Integer) Shl(bits *Integer) (*Integer, error) {
	return x.binary(engine.OpShl, engine.FlagNone, bits)
}

// Shr folds a right shift, arithmetic or logical per the mode argument.
func (x *Integer) Shr(bits *Integer, arithmetic bool) (*Integer, error) {
	if arithmetic {
		return x.binary(engine.OpAShr, engine.FlagNone, bits)
	}
	return x.binary(engine.OpLShr, engine.FlagNone, bits)
}

func (x *Integer) neg(flags engine.Flags) (*Integer, error) {
	h, err := x.eng.ConstNeg(flags, x.h)
	if err != nil {
		return nil, err
	}
	return newInteger(x.eng, h, x.kind, x.signed), nil
}

// Neg folds wrapping negation.
func (x *Integer) Neg() (*Integer, error) { return x.neg(engine.FlagNone) }

// NegNSW folds negation that errors on signed wrap.
func (x *Integer) NegNSW() (*Integer, error) { return x.neg(engine.FlagNSW) }

// NegNUW folds negation that errors on unsigned wrap.
func (x *Integer) NegNUW() (*Integer, error) { return x.neg(engine.FlagNUW) }

// Not folds bitwise complement.
func (x *Integer) Not() (*Integer, error) {
	h, err := x.eng.ConstNot(x.h)
	if err != nil {
		return nil, err
	}
	return newInteger(x.eng, h, x.kind, x.signed), nil
}

// ICmp folds a comparison against rhs into an Int1 constant. Operand width
// compatibility is the engine's to judge.
func (x *Integer) ICmp(pred engine.IntPredicate, rhs *Integer) (*Integer, error) {
	if rhs == nil {
		return nil, fmt.Errorf("icmp operand required: %w", ErrInvalidArgument)
	}
	h, err := x.eng.ConstICmp(pred, x.h, rhs.h)
	if err != nil {
		return nil, err
	}
	return newInteger(x.eng, h, Int1, false), nil
}

// Cast folds a width conversion to the target kind. The result is always
// the target variant; widening extends with sign when signed is set, the
// result wrapper keeps the argument's signedness.
func (x *Integer) Cast(to IntKind, signed bool) (*Integer, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("integer cast target: %w", ErrInvalidArgument)
	}
	t, err := to.Type(x.eng)
	if err != nil {
		return nil, err
	}
	op := engine.CastBit
	switch {
	case to.bits < x.kind.bits:
		op = engine.CastTrunc
	case to.bits > x.kind.bits && signed:
		op = engine.CastSExt
	case to.bits > x.kind.bits:
		op = engine.CastZExt
	}
	h, err := x.eng.ConstCast(op, x.h, t.Handle())
	if err != nil {
		return nil, err
	}
	return newInteger(x.eng, h, to, signed), nil
}

// ToFloat converts to the target floating kind. Direction is chosen by the
// receiver's stored signedness, not by the caller.
func (x *Integer) ToFloat(to RealKind) (*Real, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("floating-point target kind required: %w", ErrTypeMismatch)
	}
	t, err := to.Type(x.eng)
	if err != nil {
		return nil, err
	}
	op := engine.CastUIToFP
	if x.signed {
		op = engine.CastSIToFP
	}
	h, err := x.eng.ConstCast(op, x.h, t.Handle())
	if err != nil {
		return nil, err
	}
	return newReal(x.eng, h, to), nil
}

// ToPointer converts the constant to a pointer of the target type.
func (x *Integer) ToPointer(to Type) (*Pointer, error) {
	if !to.Valid() || to.Kind() != engine.KindPointer {
		return nil, fmt.Errorf("pointer target type required: %w", ErrTypeMismatch)
	}
	h, err := x.eng.ConstCast(engine.CastIntToPtr, x.h, to.Handle())
	if err != nil {
		return nil, err
	}
	return &Pointer{Constant: newConstant(x.eng, h)}, nil
}

// True builds the Int1 true constant.
func True(eng engine.Engine) (*Integer, error) { return Int1.Unsigned(eng, 1) }

// False builds the Int1 false constant.
func False(eng engine.Engine) (*Integer, error) { return Int1.Unsigned(eng, 0) }
