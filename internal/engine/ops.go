package engine

// BinOp names a constant-folding binary primitive.
type BinOp uint8

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpSDiv
	OpUDiv
	OpSRem
	OpURem
	OpAnd
	OpOr
	OpXor
	OpShl
	OpLShr
	OpAShr
	OpFAdd
	OpFSub
	OpFMul
	OpFDiv
	OpFRem
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpSDiv:
		return "sdiv"
	case OpUDiv:
		return "udiv"
	case OpSRem:
		return "srem"
	case OpURem:
		return "urem"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpShl:
		return "shl"
	case OpLShr:
		return "lshr"
	case OpAShr:
		return "ashr"
	case OpFAdd:
		return "fadd"
	case OpFSub:
		return "fsub"
	case OpFMul:
		return "fmul"
	case OpFDiv:
		return "fdiv"
	case OpFRem:
		return "frem"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the op is a floating-point primitive.
func (op BinOp) IsFloat() bool { return op >= OpFAdd }

// Flags qualify an integer primitive with wrap/exactness demands. A flagged
// violation is an error from the fold entry point, not a wrapped result.
type Flags uint8

const (
	FlagNone Flags = 0
	// FlagNSW demands no signed wrap.
	FlagNSW Flags = 1 << iota
	// FlagNUW demands no unsigned wrap.
	FlagNUW
	// FlagExact demands a zero remainder on division.
	FlagExact
)

// CastOp names a constant-folding conversion primitive.
type CastOp uint8

const (
	CastTrunc CastOp = iota
	CastZExt
	CastSExt
	CastFPTrunc
	CastFPExt
	CastFPToSI
	CastFPToUI
	CastSIToFP
	CastUIToFP
	CastPtrToInt
	CastIntToPtr
	CastBit
	// CastTruncOrBit truncates when the target is narrower, bitcasts otherwise.
	CastTruncOrBit
	// CastZExtOrBit zero-extends when the target is wider, bitcasts otherwise.
	CastZExtOrBit
)

func (op CastOp) String() string {
	switch op {
	case CastTrunc:
		return "trunc"
	case CastZExt:
		return "zext"
	case CastSExt:
		return "sext"
	case CastFPTrunc:
		return "fptrunc"
	case CastFPExt:
		return "fpext"
	case CastFPToSI:
		return "fptosi"
	case CastFPToUI:
		return "fptoui"
	case CastSIToFP:
		return "sitofp"
	case CastUIToFP:
		return "uitofp"
	case CastPtrToInt:
		return "ptrtoint"
	case CastIntToPtr:
		return "inttoptr"
	case CastBit:
		return "bitcast"
	case CastTruncOrBit:
		return "trunc-or-bitcast"
	case CastZExtOrBit:
		return "zext-or-bitcast"
	default:
		return "unknown"
	}
}

// IntPredicate selects an integer comparison.
type IntPredicate uint8

const (
	IntEQ IntPredicate = iota
	IntNE
	IntUGT
	IntUGE
	IntULT
	IntULE
	IntSGT
	IntSGE
	IntSLT
	IntSLE
)

func (p IntPredicate) String() string {
	switch p {
	case IntEQ:
		return "eq"
	case IntNE:
		return "ne"
	case IntUGT:
		return "ugt"
	case IntUGE:
		return "uge"
	case IntULT:
		return "ult"
	case IntULE:
		return "ule"
	case IntSGT:
		return "sgt"
	case IntSGE:
		return "sge"
	case IntSLT:
		return "slt"
	case IntSLE:
		return "sle"
	default:
		return "unknown"
	}
}

// RealPredicate selects a floating-point comparison. Ordered predicates are
// false when either operand is NaN; unordered ones are true.
type RealPredicate uint8

const (
	RealPredicateFalse RealPredicate = iota
	RealOEQ
	RealOGT
	RealOGE
	RealOLT
	RealOLE
	RealONE
	RealORD
	RealUNO
	RealUEQ
	RealUGT
	RealUGE
	RealULT
	RealULE
	RealUNE
	RealPredicateTrue
)

func (p RealPredicate) String() string {
	switch p {
	case RealPredicateFalse:
		return "false"
	case RealOEQ:
		return "oeq"
	case RealOGT:
		return "ogt"
	case RealOGE:
		return "oge"
	case RealOLT:
		return "olt"
	case RealOLE:
		return "ole"
	case RealONE:
		return "one"
	case RealORD:
		return "ord"
	case RealUNO:
		return "uno"
	case RealUEQ:
		return "ueq"
	case RealUGT:
		return "ugt"
	case RealUGE:
		return "uge"
	case RealULT:
		return "ult"
	case RealULE:
		return "ule"
	case RealUNE:
		return "une"
	case RealPredicateTrue:
		return "true"
	default:
		return "unknown"
	}
}
