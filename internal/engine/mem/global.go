package mem

import "irval/internal/engine"

// AddGlobal creates a global variable of the given content type. Its value
// type is a pointer to the content, matching IR addressing rules. The
// global starts as a declaration; SetInitializer turns it into a
// definition.
func (e *Engine) AddGlobal(t engine.TypeHandle, name string) engine.Handle {
	return e.alloc(valueRec{
		kind:    valGlobal,
		typ:     e.PointerType(t),
		content: t,
		name:    name,
	})
}

// AddAlias creates a global alias for an existing global value.
func (e *Engine) AddAlias(t engine.TypeHandle, aliasee engine.Handle, name string) engine.Handle {
	return e.alloc(valueRec{
		kind:    valAlias,
		typ:     e.PointerType(t),
		content: t,
		aliasee: aliasee,
		name:    name,
	})
}

// IsGlobalVariable reports whether the handle refers to a global variable.
func (e *Engine) IsGlobalVariable(v engine.Handle) bool {
	rec, ok := e.valueRec(v)
	return ok && rec.kind == valGlobal
}

// IsGlobalAlias reports whether the handle refers to a global alias.
func (e *Engine) IsGlobalAlias(v engine.Handle) bool {
	rec, ok := e.valueRec(v)
	return ok && rec.kind == valAlias
}

func (e *Engine) Alignment(v engine.Handle) uint32 {
	rec, ok := e.valueRec(v)
	if !ok {
		return 0
	}
	return rec.align
}

func (e *Engine) SetAlignment(v engine.Handle, align uint32) {
	if rec, ok := e.valueRec(v); ok {
		rec.align = align
	}
}

func (e *Engine) Linkage(v engine.Handle) engine.Linkage {
	rec, ok := e.valueRec(v)
	if !ok {
		return engine.LinkageExternal
	}
	return rec.linkage
}

func (e *Engine) SetLinkage(v engine.Handle, l engine.Linkage) {
	if rec, ok := e.valueRec(v); ok {
		rec.linkage = l
	}
}

func (e *Engine) Visibility(v engine.Handle) engine.Visibility {
	rec, ok := e.valueRec(v)
	if !ok {
		return engine.VisibilityDefault
	}
	return rec.visibility
}

func (e *Engine) SetVisibility(v engine.Handle, vis engine.Visibility) {
	if rec, ok := e.valueRec(v); ok {
		rec.visibility = vis
	}
}

func (e *Engine) Section(v engine.Handle) string {
	rec, ok := e.valueRec(v)
	if !ok {
		return ""
	}
	return rec.section
}

func (e *Engine) SetSection(v engine.Handle, s string) {
	if rec, ok := e.valueRec(v); ok {
		rec.section = s
	}
}

// IsDeclaration reports whether a global has no initializer yet.
func (e *Engine) IsDeclaration(v engine.Handle) bool {
	rec, ok := e.valueRec(v)
	if !ok {
		return false
	}
	switch rec.kind {
	case valGlobal:
		return !rec.init.IsValid()
	case valAlias:
		return false
	default:
		return false
	}
}

func (e *Engine) IsGlobalConstant(v engine.Handle) bool {
	rec, ok := e.valueRec(v)
	return ok && rec.globalConst
}

func (e *Engine) SetGlobalConstant(v engine.Handle, c bool) {
	if rec, ok := e.valueRec(v); ok {
		rec.globalConst = c
	}
}

func (e *Engine) IsThreadLocal(v engine.Handle) bool {
	rec, ok := e.valueRec(v)
	return ok && rec.threadLocal
}

func (e *Engine) SetThreadLocal(v engine.Handle, tl bool) {
	if rec, ok := e.valueRec(v); ok {
		rec.threadLocal = tl
	}
}

func (e *Engine) Initializer(v engine.Handle) (engine.Handle, bool) {
	rec, ok := e.valueRec(v)
	if !ok {
		return engine.NoHandle, false
	}
	switch rec.kind {
	case valGlobal:
		return rec.init, rec.init.IsValid()
	case valAlias:
		return rec.aliasee, rec.aliasee.IsValid()
	default:
		return engine.NoHandle, false
	}
}

func (e *Engine) SetInitializer(v engine.Handle, init engine.Handle) {
	rec, ok := e.valueRec(v)
	if !ok {
		return
	}
	switch rec.kind {
	case valGlobal:
		rec.init = init
	case valAlias:
		rec.aliasee = init
	}
}
