package ir

import (
	"errors"
	"testing"

	"irval/internal/engine"
	"irval/internal/engine/mem"
)

func TestGlobalVariableMetadata(t *testing.T) {
	e := mem.New()
	i32, _ := TypeOf(e, e.IntType(32))
	g, err := NewGlobalVariable(e, i32, "counter")
	if err != nil {
		t.Fatalf("global: %v", err)
	}

	if g.Name() != "counter" {
		t.Fatalf("expected name counter, got %q", g.Name())
	}
	gt, err := g.Type()
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	if gt.Kind() != engine.KindPointer {
		t.Fatalf("a global value is pointer-typed, got %s", gt.Kind())
	}

	g.SetAlignment(8)
	if g.Alignment() != 8 {
		t.Fatalf("alignment: got %d", g.Alignment())
	}
	g.SetLinkage(engine.LinkageInternal)
	if g.Linkage() != engine.LinkageInternal {
		t.Fatalf("linkage: got %s", g.Linkage())
	}
	g.SetVisibility(engine.VisibilityHidden)
	if g.Visibility() != engine.VisibilityHidden {
		t.Fatalf("visibility: got %s", g.Visibility())
	}
	g.SetSection(".data")
	if g.Section() != ".data" {
		t.Fatalf("section: got %q", g.Section())
	}
	g.SetGlobalConstant(true)
	if !g.IsGlobalConstant() {
		t.Fatalf("constant flag lost")
	}
	g.SetThreadLocal(true)
	if !g.IsThreadLocal() {
		t.Fatalf("thread-local flag lost")
	}
}

func TestGlobalInitializer(t *testing.T) {
	e := mem.New()
	i32, _ := TypeOf(e, e.IntType(32))
	g, _ := NewGlobalVariable(e, i32, "counter")

	if !g.IsDeclaration() {
		t.Fatalf("a fresh global is a declaration")
	}
	if _, ok := g.Initializer(); ok {
		t.Fatalf("declaration has no initializer")
	}

	seven, _ := Int32.Const(e, 7)
	if err := g.SetInitializer(seven); err != nil {
		t.Fatalf("set initializer: %v", err)
	}
	if g.IsDeclaration() {
		t.Fatalf("an initialized global is a definition")
	}
	init, ok := g.Initializer()
	if !ok {
		t.Fatalf("initializer lost")
	}
	iv, ok := init.(*Integer)
	if !ok {
		t.Fatalf("initializer must reclassify, got %T", init)
	}
	if iv.SExtValue() != 7 {
		t.Fatalf("expected 7, got %d", iv.SExtValue())
	}

	if err := g.SetInitializer(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil initializer: expected ErrInvalidArgument, got %v", err)
	}
}

func TestGlobalAlias(t *testing.T) {
	e := mem.New()
	i32, _ := TypeOf(e, e.IntType(32))
	target, _ := NewGlobalVariable(e, i32, "target")

	a, err := NewGlobalAlias(e, i32, target, "shortcut")
	if err != nil {
		t.Fatalf("alias: %v", err)
	}
	if a.Name() != "shortcut" {
		t.Fatalf("expected name shortcut, got %q", a.Name())
	}

	aliasee, ok := a.Initializer()
	if !ok {
		t.Fatalf("alias must expose its aliasee")
	}
	if !Identical(aliasee, target) {
		t.Fatalf("aliasee mismatch")
	}

	if _, err := NewGlobalAlias(e, i32, nil, "a"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil aliasee: expected ErrInvalidArgument, got %v", err)
	}
}

func TestGlobalWrapRoundTrip(t *testing.T) {
	e := mem.New()
	i32, _ := TypeOf(e, e.IntType(32))
	g, _ := NewGlobalVariable(e, i32, "g")
	a, _ := NewGlobalAlias(e, i32, g, "a")

	wrapped, err := Wrap(e, g.Handle())
	if err != nil {
		t.Fatalf("wrap global: %v", err)
	}
	if _, ok := wrapped.(*GlobalVariable); !ok {
		t.Fatalf("expected *GlobalVariable, got %T", wrapped)
	}

	wrapped, err = Wrap(e, a.Handle())
	if err != nil {
		t.Fatalf("wrap alias: %v", err)
	}
	if _, ok := wrapped.(*GlobalAlias); !ok {
		t.Fatalf("expected *GlobalAlias, got %T", wrapped)
	}
}

func TestNewGlobalVariableArguments(t *testing.T) {
	e := mem.New()
	if _, err := NewGlobalVariable(e, Type{}, "g"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("missing content type: expected ErrInvalidArgument, got %v", err)
	}
	i32, _ := TypeOf(e, e.IntType(32))
	if _, err := NewGlobalVariable(nil, i32, "g"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil engine: expected ErrInvalidArgument, got %v", err)
	}
}
