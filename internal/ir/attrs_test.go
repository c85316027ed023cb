package ir

import (
	"testing"

	"irval/internal/engine"
	"irval/internal/engine/mem"
)

func TestAttrSetIdempotence(t *testing.T) {
	e := mem.New()
	v, err := WrapVal(e, e.ConstInt(e.IntType(32), 1, false))
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	attrs := v.Attrs()

	if err := attrs.Add(engine.AttrReadOnly); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := attrs.Add(engine.AttrReadOnly); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if attrs.Len() != 1 {
		t.Fatalf("expected one attribute, got %d", attrs.Len())
	}
	if got := e.Attributes(v.Handle()); len(got) != 1 {
		t.Fatalf("engine must hold one attribute, got %v", got)
	}

	if err := attrs.Remove(engine.AttrReadOnly); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := attrs.Remove(engine.AttrReadOnly); err != nil {
		t.Fatalf("re-remove: %v", err)
	}
	if attrs.Len() != 0 {
		t.Fatalf("expected empty set, got %d", attrs.Len())
	}
	if got := e.Attributes(v.Handle()); len(got) != 0 {
		t.Fatalf("engine must hold no attributes, got %v", got)
	}
}

func TestAttrSetSingleInstance(t *testing.T) {
	e := mem.New()
	v, _ := WrapVal(e, e.ConstInt(e.IntType(32), 1, false))
	if v.Attrs() != v.Attrs() {
		t.Fatalf("a wrapper owns exactly one attribute set")
	}
}

func TestAttrSetListOrder(t *testing.T) {
	e := mem.New()
	v, _ := WrapVal(e, e.ConstInt(e.IntType(32), 1, false))
	attrs := v.Attrs()
	for _, a := range []engine.Attribute{engine.AttrCold, engine.AttrReadOnly, engine.AttrNoUnwind} {
		if err := attrs.Add(a); err != nil {
			t.Fatalf("add %s: %v", a, err)
		}
	}
	list := attrs.List()
	for i := 1; i < len(list); i++ {
		if list[i-1] >= list[i] {
			t.Fatalf("list must be sorted, got %v", list)
		}
	}
	if !attrs.Has(engine.AttrCold) || attrs.Has(engine.AttrNoAlias) {
		t.Fatalf("presence queries answer from the cache")
	}
	if attrs.String() != "[readonly nounwind cold]" {
		t.Fatalf("unexpected rendering %q", attrs.String())
	}
}

// Attributes added through the wrapper layer stay visible to raw engine
// queries, since the set mirrors rather than shadows them.
func TestAttrSetEndToEnd(t *testing.T) {
	e := mem.New()
	one, err := Int32.Const(e, 1)
	if err != nil {
		t.Fatalf("int const: %v", err)
	}
	two, err := Double.Const(e, 2.0)
	if err != nil {
		t.Fatalf("real const: %v", err)
	}
	s, err := NewStruct(e, []Value{one, two}, false)
	if err != nil {
		t.Fatalf("struct: %v", err)
	}
	if err := s.Attrs().Add(engine.AttrReadOnly); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !s.Attrs().Has(engine.AttrReadOnly) {
		t.Fatalf("attribute must be present locally")
	}
	got := e.Attributes(s.Handle())
	if len(got) != 1 || got[0] != engine.AttrReadOnly {
		t.Fatalf("engine must hold exactly the one attribute, got %v", got)
	}
}
