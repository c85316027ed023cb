package ir

import (
	"fmt"

	"irval/internal/engine"
)

// RealKind is the compile-time descriptor of one floating-point variant.
// rank orders formats by width so casts can pick extend versus truncate.
type RealKind struct {
	name string
	kind engine.TypeKind
	rank uint8
}

var (
	Float    = RealKind{name: "Float", kind: engine.KindFloat, rank: 1}
	Double   = RealKind{name: "Double", kind: engine.KindDouble, rank: 2}
	X86FP80  = RealKind{name: "X86FP80", kind: engine.KindX86FP80, rank: 3}
	FP128    = RealKind{name: "FP128", kind: engine.KindFP128, rank: 4}
	PPCFP128 = RealKind{name: "PPCFP128", kind: engine.KindPPCFP128, rank: 4}
)

// RealKinds lists the floating variants in ascending format width.
func RealKinds() []RealKind { return []RealKind{Float, Double, X86FP80, FP128, PPCFP128} }

// realKindFor is the direct TypeKind-to-descriptor table used by the
// classifier.
func realKindFor(kind engine.TypeKind) (RealKind, bool) {
	switch kind {
	case engine.KindFloat:
		return Float, true
	case engine.KindDouble:
		return Double, true
	case engine.KindX86FP80:
		return X86FP80, true
	case engine.KindFP128:
		return FP128, true
	case engine.KindPPCFP128:
		return PPCFP128, true
	default:
		return RealKind{}, false
	}
}

func (k RealKind) String() string { return k.name }

// TypeKind returns the engine tag for this format.
func (k RealKind) TypeKind() engine.TypeKind { return k.kind }

// Valid reports whether the descriptor is one of the five formats.
func (k RealKind) Valid() bool { return k.rank != 0 }

// Type returns the variant's associated engine type.
func (k RealKind) Type(eng engine.Engine) (Type, error) {
	if eng == nil || !k.Valid() {
		return Type{}, fmt.Errorf("floating kind required: %w", ErrInvalidArgument)
	}
	return TypeOf(eng, eng.FloatType(k.kind))
}

// Const builds a constant of this format from a float literal.
func (k RealKind) Const(eng engine.Engine, v float64) (*Real, error) {
	t, err := k.Type(eng)
	if err != nil {
		return nil, err
	}
	return newReal(eng, eng.ConstReal(t.Handle(), v), k), nil
}

// Parse builds a constant of this format from a decimal string.
func (k RealKind) Parse(eng engine.Engine, text string) (*Real, error) {
	t, err := k.Type(eng)
	if err != nil {
		return nil, err
	}
	h, err := eng.ConstRealOfString(t.Handle(), text)
	if err != nil {
		return nil, err
	}
	return newReal(eng, h, k), nil
}

// Wrap wraps an already-produced handle of this format.
func (k RealKind) Wrap(eng engine.Engine, h engine.Handle) (*Real, error) {
	if eng == nil || !h.IsValid() {
		return nil, fmt.Errorf("floating handle required: %w", ErrInvalidArgument)
	}
	if !k.Valid() {
		return nil, fmt.Errorf("floating kind required: %w", ErrInvalidArgument)
	}
	return newReal(eng, h, k), nil
}

// Real is a constant floating-point value of one fixed format. Floats
// carry no signedness flag; IEEE values are inherently signed, so unlike
// Integer the conversion to integers takes signedness per call.
type Real struct {
	Constant
	kind RealKind
}

func newReal(eng engine.Engine, h engine.Handle, kind RealKind) *Real {
	return &Real{Constant: newConstant(eng, h), kind: kind}
}

// Kind returns the variant descriptor.
func (x *Real) Kind() RealKind { return x.kind }

// Value materializes the constant. lossy reports that the engine stores
// the format wider than float64 can represent.
func (x *Real) Value() (val float64, lossy bool) {
	return x.eng.ConstRealValue(x.h)
}

func (x *Real) binary(op engine.BinOp, rhs *Real) (*Real, error) {
	if rhs == nil {
		return nil, fmt.Errorf("%s operand required: %w", op, ErrInvalidArgument)
	}
	h, err := x.eng.ConstBinary(op, engine.FlagNone, x.h, rhs.h)
	if err != nil {
		return nil, err
	}
	return newReal(x.eng, h, x.kind), nil
}

// Neg folds negation.
func (x *Real) Neg() (*Real, error) {
	h, err := x.eng.ConstNeg(engine.FlagNone, x.h)
	if err != nil {
		return nil, err
	}
	return newReal(x.eng, h, x.kind), nil
}

// Add folds addition.
func (x *Real) Add(rhs *Real) (*Real, error) { return x.binary(engine.OpFAdd, rhs) }

// Sub folds subtraction.
func (x *Real) Sub(rhs *Real) (*Real, error) { return x.binary(engine.OpFSub, rhs) }

// Mul folds multiplication.
func (x *Real) Mul(rhs *Real) (*Real, error) { return x.binary(engine.OpFMul, rhs) }

// Div folds division.
func (x *Real) Div(rhs *Real) (*Real, error) { return x.binary(engine.OpFDiv, rhs) }

// Rem folds remainder.
func (x *Real) Rem(rhs *Real) (*Real, error) { return x.binary(engine.OpFRem, rhs) }

// FCmp folds a comparison against rhs into an Int1 constant.
func (x *Real) FCmp(pred engine.RealPredicate, rhs *Real) (*Integer, error) {
	if rhs == nil {
		return nil, fmt.Errorf("fcmp operand required: %w", ErrInvalidArgument)
	}
	h, err := x.eng.ConstFCmp(pred, x.h, rhs.h)
	if err != nil {
		return nil, err
	}
	return newInteger(x.eng, h, Int1, false), nil
}

func (x *Real) convert(op engine.CastOp, to RealKind) (*Real, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("floating cast target: %w", ErrInvalidArgument)
	}
	t, err := to.Type(x.eng)
	if err != nil {
		return nil, err
	}
	h, err := x.eng.ConstCast(op, x.h, t.Handle())
	if err != nil {
		return nil, err
	}
	return newReal(x.eng, h, to), nil
}

// Cast folds a format conversion to the target kind, extending or
// truncating by format width. The result is always the target variant.
func (x *Real) Cast(to RealKind) (*Real, error) {
	switch {
	case to.rank > x.kind.rank:
		return x.convert(engine.CastFPExt, to)
	case to.rank < x.kind.rank:
		return x.convert(engine.CastFPTrunc, to)
	default:
		return x.convert(engine.CastBit, to)
	}
}

// Extend folds a widening format conversion.
func (x *Real) Extend(to RealKind) (*Real, error) {
	return x.convert(engine.CastFPExt, to)
}

// Truncate folds a narrowing format conversion.
func (x *Real) Truncate(to RealKind) (*Real, error) {
	return x.convert(engine.CastFPTrunc, to)
}

// ToInteger converts to the target integer kind. Signedness is supplied by
// the caller per call; this deliberately differs from Integer.ToFloat,
// which reads its stored flag, mirroring the asymmetry in the model this
// layer tracks.
func (x *Real) ToInteger(to IntKind, signed bool) (*Integer, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("basic integer target kind required: %w", ErrTypeMismatch)
	}
	t, err := to.Type(x.eng)
	if err != nil {
		return nil, err
	}
	op := engine.CastFPToUI
	if signed {
		op = engine.CastFPToSI
	}
	h, err := x.eng.ConstCast(op, x.h, t.Handle())
	if err != nil {
		return nil, err
	}
	return newInteger(x.eng, h, to, signed), nil
}
