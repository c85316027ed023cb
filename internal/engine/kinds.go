package engine

// TypeKind classifies an IR type into one of the engine's fixed categories.
// Exactly one kind applies to a type at query time; kinds are recomputed on
// demand and never cached across engine mutations.
type TypeKind uint8

const (
	KindVoid TypeKind = iota
	KindLabel
	KindInteger
	KindFloat
	KindDouble
	KindX86FP80
	KindFP128
	KindPPCFP128
	KindFunction
	KindStruct
	KindArray
	KindPointer
	KindVector
	KindMetadata
	KindX86MMX

	// KindInvalid marks a query on a handle that does not refer to a live
	// type. It is a failure marker, not a classifiable kind, and never
	// appears in Kinds().
	KindInvalid
)

func (k TypeKind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindLabel:
		return "label"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindX86FP80:
		return "x86_fp80"
	case KindFP128:
		return "fp128"
	case KindPPCFP128:
		return "ppc_fp128"
	case KindFunction:
		return "function"
	case KindStruct:
		return "struct"
	case KindArray:
		return "array"
	case KindPointer:
		return "pointer"
	case KindVector:
		return "vector"
	case KindMetadata:
		return "metadata"
	case KindX86MMX:
		return "x86_mmx"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// IsFloating reports whether the kind is one of the floating-point formats.
func (k TypeKind) IsFloating() bool {
	switch k {
	case KindFloat, KindDouble, KindX86FP80, KindFP128, KindPPCFP128:
		return true
	default:
		return false
	}
}

// Kinds lists every kind the classifier can produce, in declaration order.
func Kinds() []TypeKind {
	return []TypeKind{
		KindVoid, KindLabel, KindInteger, KindFloat, KindDouble,
		KindX86FP80, KindFP128, KindPPCFP128, KindFunction, KindStruct,
		KindArray, KindPointer, KindVector, KindMetadata, KindX86MMX,
	}
}
