package mem

import (
	"fmt"
	"strings"

	"irval/internal/engine"
)

// TypeString renders a type handle in IR assembly spelling. Pointers render
// opaquely as "ptr".
func (e *Engine) TypeString(t engine.TypeHandle) string {
	rec, ok := e.typeRec(t)
	if !ok {
		return "<badtype>"
	}
	switch rec.kind {
	case engine.KindVoid:
		return "void"
	case engine.KindLabel:
		return "label"
	case engine.KindInteger:
		return fmt.Sprintf("i%d", rec.bits)
	case engine.KindFloat:
		return "float"
	case engine.KindDouble:
		return "double"
	case engine.KindX86FP80:
		return "x86_fp80"
	case engine.KindFP128:
		return "fp128"
	case engine.KindPPCFP128:
		return "ppc_fp128"
	case engine.KindPointer:
		return "ptr"
	case engine.KindArray:
		return fmt.Sprintf("[%d x %s]", rec.count, e.TypeString(rec.elem))
	case engine.KindVector:
		return fmt.Sprintf("<%d x %s>", rec.count, e.TypeString(rec.elem))
	case engine.KindStruct:
		var sb strings.Builder
		if rec.packed {
			sb.WriteString("<")
		}
		sb.WriteString("{ ")
		for i, f := range rec.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.TypeString(f))
		}
		sb.WriteString(" }")
		if rec.packed {
			sb.WriteString(">")
		}
		return sb.String()
	case engine.KindFunction:
		return "func"
	case engine.KindMetadata:
		return "metadata"
	case engine.KindX86MMX:
		return "x86_mmx"
	default:
		return "<badtype>"
	}
}

// Dump renders a value in IR assembly style for debugging.
func (e *Engine) Dump(v engine.Handle) string {
	rec, ok := e.valueRec(v)
	if !ok {
		return "<badref>"
	}
	ts := e.TypeString(rec.typ)
	switch rec.kind {
	case valInt:
		if e.IntWidth(rec.typ) == 1 {
			if rec.bits != 0 {
				return "i1 true"
			}
			return "i1 false"
		}
		return fmt.Sprintf("%s %d", ts, signExtend(rec.bits, e.IntWidth(rec.typ)))
	case valReal:
		return fmt.Sprintf("%s %g", ts, rec.real)
	case valNull:
		return fmt.Sprintf("%s zeroinitializer", ts)
	case valPointerNull:
		return "ptr null"
	case valUndef:
		return fmt.Sprintf("%s undef", ts)
	case valAggregate:
		opening, closing := "[", "]"
		switch e.KindOf(rec.typ) {
		case engine.KindVector:
			opening, closing = "<", ">"
		case engine.KindStruct:
			opening, closing = "{ ", " }"
		}
		var sb strings.Builder
		sb.WriteString(ts)
		sb.WriteString(" ")
		sb.WriteString(opening)
		for i, el := range rec.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.Dump(el))
		}
		sb.WriteString(closing)
		return sb.String()
	case valString:
		var sb strings.Builder
		sb.WriteString(ts)
		sb.WriteString(` c"`)
		for _, b := range e.stringBytes(rec) {
			if b >= 0x20 && b < 0x7f && b != '"' && b != '\\' {
				sb.WriteByte(b)
			} else {
				fmt.Fprintf(&sb, `\%02X`, b)
			}
		}
		sb.WriteString(`"`)
		return sb.String()
	case valGlobal:
		var sb strings.Builder
		fmt.Fprintf(&sb, "@%s = ", rec.name)
		if rec.linkage != engine.LinkageExternal {
			sb.WriteString(rec.linkage.String())
			sb.WriteString(" ")
		}
		if rec.visibility != engine.VisibilityDefault {
			sb.WriteString(rec.visibility.String())
			sb.WriteString(" ")
		}
		if rec.threadLocal {
			sb.WriteString("thread_local ")
		}
		if rec.globalConst {
			sb.WriteString("constant ")
		} else {
			sb.WriteString("global ")
		}
		if rec.init.IsValid() {
			sb.WriteString(e.Dump(rec.init))
		} else {
			sb.WriteString(e.TypeString(rec.content))
		}
		if rec.section != "" {
			fmt.Fprintf(&sb, `, section "%s"`, rec.section)
		}
		if rec.align != 0 {
			fmt.Fprintf(&sb, ", align %d", rec.align)
		}
		return sb.String()
	case valAlias:
		target := "<badref>"
		if arec, ok := e.valueRec(rec.aliasee); ok {
			if arec.name != "" {
				target = "ptr @" + arec.name
			} else {
				target = e.Dump(rec.aliasee)
			}
		}
		return fmt.Sprintf("@%s = alias %s, %s", rec.name, e.TypeString(rec.content), target)
	case valExpr:
		var sb strings.Builder
		sb.WriteString(ts)
		sb.WriteString(" ")
		sb.WriteString(rec.text)
		sb.WriteString(" (")
		for i, op := range rec.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			// Named globals are referenced, not re-dumped in full.
			if orec, ok := e.valueRec(op); ok && (orec.kind == valGlobal || orec.kind == valAlias) && orec.name != "" {
				sb.WriteString("ptr @" + orec.name)
			} else {
				sb.WriteString(e.Dump(op))
			}
		}
		sb.WriteString(")")
		return sb.String()
	default:
		return "<badref>"
	}
}
