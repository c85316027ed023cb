package engine

import "errors"

// Fold failure conditions reported by arithmetic entry points. These are
// deterministic contract violations, never retried.
var (
	// ErrOverflow reports an nsw/nuw-flagged wrap or a non-exact division
	// under FlagExact.
	ErrOverflow = errors.New("engine: arithmetic overflow")
	// ErrDivideByZero reports a zero divisor in a division or remainder fold.
	ErrDivideByZero = errors.New("engine: division by zero")
	// ErrBadConstant reports a malformed literal passed to a string
	// constructor.
	ErrBadConstant = errors.New("engine: malformed constant literal")
	// ErrBadHandle reports a handle that does not refer to a live value, or
	// refers to a value of the wrong shape for the entry point.
	ErrBadHandle = errors.New("engine: bad handle")
	// ErrBadIndex reports an aggregate or operand index outside bounds.
	ErrBadIndex = errors.New("engine: index out of bounds")
)

// TypeOps is the engine's type construction and classification surface.
type TypeOps interface {
	// TypeOf returns the type of a value.
	TypeOf(v Handle) TypeHandle
	// KindOf classifies a type into its TypeKind tag.
	KindOf(t TypeHandle) TypeKind
	// IntWidth returns the bit width of an integer type, 0 otherwise.
	IntWidth(t TypeHandle) uint32

	VoidType() TypeHandle
	LabelType() TypeHandle
	IntType(bits uint32) TypeHandle
	// FloatType expects one of the floating TypeKinds.
	FloatType(kind TypeKind) TypeHandle
	PointerType(elem TypeHandle) TypeHandle
	ArrayType(elem TypeHandle, count uint64) TypeHandle
	VectorType(elem TypeHandle, count uint64) TypeHandle
	StructType(fields []TypeHandle, packed bool) TypeHandle
	StructTypeIn(ctx Context, fields []TypeHandle, packed bool) TypeHandle

	// NewContext opens a fresh construction context.
	NewContext() Context
}

// ValueOps is the per-value metadata and predicate surface.
type ValueOps interface {
	ValueName(v Handle) string
	SetValueName(v Handle, name string)
	IsConstant(v Handle) bool
	IsNull(v Handle) bool
	IsUndef(v Handle) bool
	// Dump renders the value in IR assembly style for debugging.
	Dump(v Handle) string
}

// ConstOps is the constant construction and folding surface. Every fold
// computes its result at construction time; no deferred evaluation exists.
type ConstOps interface {
	ConstInt(t TypeHandle, val uint64, signExtend bool) Handle
	ConstIntOfString(t TypeHandle, text string, radix int) (Handle, error)
	ConstReal(t TypeHandle, val float64) Handle
	ConstRealOfString(t TypeHandle, text string) (Handle, error)
	ConstAllOnes(t TypeHandle) Handle
	ConstNull(t TypeHandle) Handle
	ConstPointerNull(t TypeHandle) Handle
	ConstUndef(t TypeHandle) Handle

	ConstArray(elem TypeHandle, elems []Handle) Handle
	ConstVector(elems []Handle) Handle
	ConstStruct(elems []Handle, packed bool) Handle
	ConstStructIn(ctx Context, elems []Handle, packed bool) Handle
	ConstString(text string, nullTerminate bool) Handle
	ConstStringIn(ctx Context, text string, nullTerminate bool) Handle

	ConstBinary(op BinOp, flags Flags, lhs, rhs Handle) (Handle, error)
	ConstNeg(flags Flags, v Handle) (Handle, error)
	ConstNot(v Handle) (Handle, error)
	ConstICmp(pred IntPredicate, lhs, rhs Handle) (Handle, error)
	ConstFCmp(pred RealPredicate, lhs, rhs Handle) (Handle, error)
	ConstCast(op CastOp, v Handle, to TypeHandle) (Handle, error)
	ConstGEP(v Handle, indices []Handle, inBounds bool) (Handle, error)

	ConstExtractValue(agg Handle, index uint32) (Handle, error)
	ConstInsertValue(agg Handle, elem Handle, index uint32) (Handle, error)
	ConstExtractElement(vec, index Handle) (Handle, error)
	ConstInsertElement(vec, elem, index Handle) (Handle, error)
	ConstShuffleVector(a, b, mask Handle) (Handle, error)

	// ConstIntSExt materializes an integer constant sign-extended to 64 bits.
	ConstIntSExt(v Handle) int64
	// ConstIntZExt materializes an integer constant zero-extended to 64 bits.
	ConstIntZExt(v Handle) uint64
	// ConstRealValue materializes a floating constant; lossy reports that the
	// engine's stored format could not round-trip through float64.
	ConstRealValue(v Handle) (val float64, lossy bool)
}

// AttrOps is the attribute mutation surface. The typed layer mirrors these
// calls into a client-side cache, so mutators report success explicitly.
type AttrOps interface {
	AddAttribute(v Handle, attr Attribute) error
	RemoveAttribute(v Handle, attr Attribute) error
	// Attributes returns the authoritative attribute set, for verification.
	Attributes(v Handle) []Attribute
}

// OperandOps is the operand access surface for user values.
type OperandOps interface {
	OperandCount(v Handle) int
	// Operand returns the operand at index, or ok=false when the index is out
	// of bounds or the slot is null.
	Operand(v Handle, index int) (op Handle, ok bool)
	SetOperand(v Handle, index int, op Handle) error
}

// GlobalOps is the global-value construction and metadata surface. Reads and
// writes pass straight through; the engine is the only source of truth.
type GlobalOps interface {
	AddGlobal(t TypeHandle, name string) Handle
	AddAlias(t TypeHandle, aliasee Handle, name string) Handle
	IsGlobalVariable(v Handle) bool
	IsGlobalAlias(v Handle) bool

	Alignment(v Handle) uint32
	SetAlignment(v Handle, align uint32)
	Linkage(v Handle) Linkage
	SetLinkage(v Handle, l Linkage)
	Visibility(v Handle) Visibility
	SetVisibility(v Handle, vis Visibility)
	Section(v Handle) string
	SetSection(v Handle, s string)
	IsDeclaration(v Handle) bool
	IsGlobalConstant(v Handle) bool
	SetGlobalConstant(v Handle, c bool)
	IsThreadLocal(v Handle) bool
	SetThreadLocal(v Handle, tl bool)
	Initializer(v Handle) (Handle, bool)
	SetInitializer(v Handle, init Handle)
}

// Engine is the complete call surface the typed value layer depends on.
// All calls are synchronous and complete in bounded time; nothing here
// blocks, suspends, or spawns work.
type Engine interface {
	TypeOps
	ValueOps
	ConstOps
	AttrOps
	OperandOps
	GlobalOps
}
