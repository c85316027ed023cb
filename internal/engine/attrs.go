package engine

// Attribute tags a value with engine-recognized metadata.
type Attribute uint8

const (
	AttrNone Attribute = iota
	AttrReadOnly
	AttrReadNone
	AttrNoUnwind
	AttrNoInline
	AttrAlwaysInline
	AttrNoReturn
	AttrCold
	AttrNoAlias
	AttrNonNull
	AttrDereferenceable
)

func (a Attribute) String() string {
	switch a {
	case AttrReadOnly:
		return "readonly"
	case AttrReadNone:
		return "readnone"
	case AttrNoUnwind:
		return "nounwind"
	case AttrNoInline:
		return "noinline"
	case AttrAlwaysInline:
		return "alwaysinline"
	case AttrNoReturn:
		return "noreturn"
	case AttrCold:
		return "cold"
	case AttrNoAlias:
		return "noalias"
	case AttrNonNull:
		return "nonnull"
	case AttrDereferenceable:
		return "dereferenceable"
	default:
		return "none"
	}
}

// Linkage controls how a global value participates in linking.
type Linkage uint8

const (
	LinkageExternal Linkage = iota
	LinkageAvailableExternally
	LinkageOnceAny
	LinkageOnceODR
	LinkageWeakAny
	LinkageWeakODR
	LinkageAppending
	LinkageInternal
	LinkagePrivate
	LinkageCommon
)

func (l Linkage) String() string {
	switch l {
	case LinkageExternal:
		return "external"
	case LinkageAvailableExternally:
		return "available_externally"
	case LinkageOnceAny:
		return "linkonce"
	case LinkageOnceODR:
		return "linkonce_odr"
	case LinkageWeakAny:
		return "weak"
	case LinkageWeakODR:
		return "weak_odr"
	case LinkageAppending:
		return "appending"
	case LinkageInternal:
		return "internal"
	case LinkagePrivate:
		return "private"
	case LinkageCommon:
		return "common"
	default:
		return "unknown"
	}
}

// Visibility controls symbol visibility of a global value.
type Visibility uint8

const (
	VisibilityDefault Visibility = iota
	VisibilityHidden
	VisibilityProtected
)

func (v Visibility) String() string {
	switch v {
	case VisibilityDefault:
		return "default"
	case VisibilityHidden:
		return "hidden"
	case VisibilityProtected:
		return "protected"
	default:
		return "unknown"
	}
}
