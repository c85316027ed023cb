package ir

import (
	"fmt"

	"irval/internal/engine"
)

// Global is the shared metadata surface of global values. Every accessor
// passes straight through to the engine: no field is cached, so external
// mutation is visible on the next read.
type Global struct {
	Constant
}

func newGlobal(eng engine.Engine, h engine.Handle) Global {
	return Global{Constant: newConstant(eng, h)}
}

// Alignment returns the global's alignment in bytes.
func (g *Global) Alignment() uint32 { return g.eng.Alignment(g.h) }

// SetAlignment sets the global's alignment in bytes.
func (g *Global) SetAlignment(align uint32) { g.eng.SetAlignment(g.h, align) }

// Linkage returns the global's linkage.
func (g *Global) Linkage() engine.Linkage { return g.eng.Linkage(g.h) }

// SetLinkage sets the global's linkage.
func (g *Global) SetLinkage(l engine.Linkage) { g.eng.SetLinkage(g.h, l) }

// Visibility returns the global's symbol visibility.
func (g *Global) Visibility() engine.Visibility { return g.eng.Visibility(g.h) }

// SetVisibility sets the global's symbol visibility.
func (g *Global) SetVisibility(vis engine.Visibility) { g.eng.SetVisibility(g.h, vis) }

// Section returns the global's section name, empty when unset.
func (g *Global) Section() string { return g.eng.Section(g.h) }

// SetSection sets the global's section name.
func (g *Global) SetSection(s string) { g.eng.SetSection(g.h, s) }

// IsDeclaration reports whether the global has no definition yet.
func (g *Global) IsDeclaration() bool { return g.eng.IsDeclaration(g.h) }

// IsGlobalConstant reports whether the global is marked constant.
func (g *Global) IsGlobalConstant() bool { return g.eng.IsGlobalConstant(g.h) }

// SetGlobalConstant marks or unmarks the global as constant.
func (g *Global) SetGlobalConstant(c bool) { g.eng.SetGlobalConstant(g.h, c) }

// Initializer returns the global's initializer, if any, as a freshly
// classified wrapper.
func (g *Global) Initializer() (Value, bool) {
	h, ok := g.eng.Initializer(g.h)
	if !ok {
		return nil, false
	}
	v, err := Wrap(g.eng, h)
	if err != nil {
		return nil, false
	}
	return v, true
}

// SetInitializer installs the global's initializer.
func (g *Global) SetInitializer(v Value) error {
	if v == nil {
		return fmt.Errorf("initializer value required: %w", ErrInvalidArgument)
	}
	g.eng.SetInitializer(g.h, v.Handle())
	return nil
}

// GlobalVariable is a global variable; on top of the shared global
// metadata it carries thread-locality.
type GlobalVariable struct {
	Global
}

// NewGlobalVariable creates a global variable of the given content type.
func NewGlobalVariable(eng engine.Engine, content Type, name string) (*GlobalVariable, error) {
	if eng == nil || !content.Valid() {
		return nil, fmt.Errorf("global content type required: %w", ErrInvalidArgument)
	}
	return &GlobalVariable{Global: newGlobal(eng, eng.AddGlobal(content.Handle(), name))}, nil
}

// IsThreadLocal reports whether the variable is thread local.
func (g *GlobalVariable) IsThreadLocal() bool { return g.eng.IsThreadLocal(g.h) }

// SetThreadLocal marks or unmarks the variable as thread local.
func (g *GlobalVariable) SetThreadLocal(tl bool) { g.eng.SetThreadLocal(g.h, tl) }

// GlobalAlias is a named alias of another global value.
type GlobalAlias struct {
	Global
}

// NewGlobalAlias creates an alias for an existing global value.
func NewGlobalAlias(eng engine.Engine, content Type, aliasee Value, name string) (*GlobalAlias, error) {
	if eng == nil || !content.Valid() {
		return nil, fmt.Errorf("alias content type required: %w", ErrInvalidArgument)
	}
	if aliasee == nil {
		return nil, fmt.Errorf("aliasee value required: %w", ErrInvalidArgument)
	}
	return &GlobalAlias{Global: newGlobal(eng, eng.AddAlias(content.Handle(), aliasee.Handle(), name))}, nil
}

// Function wraps a function-typed global value. Bodies, blocks, and
// instruction building belong to the surrounding tooling, not this layer.
type Function struct {
	Global
}
