package ir

import (
	"errors"
	"testing"

	"irval/internal/engine"
	"irval/internal/engine/mem"
)

func TestWrapClassifiesEveryKind(t *testing.T) {
	e := mem.New()
	i32, err := TypeOf(e, e.IntType(32))
	if err != nil {
		t.Fatalf("i32 type: %v", err)
	}

	intVal, err := Wrap(e, e.ConstInt(i32.Handle(), 7, false))
	if err != nil {
		t.Fatalf("wrap int: %v", err)
	}
	iv, ok := intVal.(*Integer)
	if !ok {
		t.Fatalf("expected *Integer, got %T", intVal)
	}
	if iv.Kind() != Int32 {
		t.Fatalf("expected Int32 kind, got %s", iv.Kind())
	}

	realVal, err := Wrap(e, e.ConstReal(e.FloatType(engine.KindDouble), 1.5))
	if err != nil {
		t.Fatalf("wrap real: %v", err)
	}
	rv, ok := realVal.(*Real)
	if !ok {
		t.Fatalf("expected *Real, got %T", realVal)
	}
	if rv.Kind() != Double {
		t.Fatalf("expected Double kind, got %s", rv.Kind())
	}

	ptrVal, err := Wrap(e, e.ConstPointerNull(e.PointerType(i32.Handle())))
	if err != nil {
		t.Fatalf("wrap pointer: %v", err)
	}
	if _, ok := ptrVal.(*Pointer); !ok {
		t.Fatalf("expected *Pointer, got %T", ptrVal)
	}

	one := e.ConstInt(i32.Handle(), 1, false)
	arrVal, err := Wrap(e, e.ConstArray(i32.Handle(), []engine.Handle{one}))
	if err != nil {
		t.Fatalf("wrap array: %v", err)
	}
	if _, ok := arrVal.(*Array); !ok {
		t.Fatalf("expected *Array, got %T", arrVal)
	}

	vecVal, err := Wrap(e, e.ConstVector([]engine.Handle{one}))
	if err != nil {
		t.Fatalf("wrap vector: %v", err)
	}
	if _, ok := vecVal.(*Vector); !ok {
		t.Fatalf("expected *Vector, got %T", vecVal)
	}

	structVal, err := Wrap(e, e.ConstStruct([]engine.Handle{one}, false))
	if err != nil {
		t.Fatalf("wrap struct: %v", err)
	}
	if _, ok := structVal.(*Struct); !ok {
		t.Fatalf("expected *Struct, got %T", structVal)
	}

	gv, err := Wrap(e, e.AddGlobal(i32.Handle(), "g"))
	if err != nil {
		t.Fatalf("wrap global: %v", err)
	}
	if _, ok := gv.(*GlobalVariable); !ok {
		t.Fatalf("expected *GlobalVariable, got %T", gv)
	}

	al, err := Wrap(e, e.AddAlias(i32.Handle(), gv.Handle(), "a"))
	if err != nil {
		t.Fatalf("wrap alias: %v", err)
	}
	if _, ok := al.(*GlobalAlias); !ok {
		t.Fatalf("expected *GlobalAlias, got %T", al)
	}

	fn, err := Wrap(e, e.ConstUndef(e.FunctionType()))
	if err != nil {
		t.Fatalf("wrap function: %v", err)
	}
	if _, ok := fn.(*Function); !ok {
		t.Fatalf("expected *Function, got %T", fn)
	}

	blk, err := Wrap(e, e.ConstUndef(e.LabelType()))
	if err != nil {
		t.Fatalf("wrap label: %v", err)
	}
	if _, ok := blk.(*Block); !ok {
		t.Fatalf("expected *Block, got %T", blk)
	}

	vd, err := Wrap(e, e.ConstUndef(e.VoidType()))
	if err != nil {
		t.Fatalf("wrap void: %v", err)
	}
	if _, ok := vd.(*Val); !ok {
		t.Fatalf("expected *Val, got %T", vd)
	}

	mmx, err := Wrap(e, e.ConstUndef(e.X86MMXType()))
	if err != nil {
		t.Fatalf("wrap x86_mmx: %v", err)
	}
	if _, ok := mmx.(*Val); !ok {
		t.Fatalf("expected *Val, got %T", mmx)
	}
}

func TestWrapMetadataFails(t *testing.T) {
	e := mem.New()
	_, err := Wrap(e, e.ConstUndef(e.MetadataType()))
	if !errors.Is(err, ErrUnrepresentableType) {
		t.Fatalf("expected ErrUnrepresentableType, got %v", err)
	}
}

func TestWrapNonstandardWidthFallsBack(t *testing.T) {
	e := mem.New()
	v, err := Wrap(e, e.ConstInt(e.IntType(13), 5, false))
	if err != nil {
		t.Fatalf("wrap i13: %v", err)
	}
	if _, ok := v.(*Integer); ok {
		t.Fatalf("i13 must not classify as a fixed-width integer variant")
	}
	if _, ok := v.(*Constant); !ok {
		t.Fatalf("expected *Constant fallback, got %T", v)
	}
}

func TestWrapInvalidArguments(t *testing.T) {
	e := mem.New()
	if _, err := Wrap(nil, engine.Handle(1)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil engine: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Wrap(e, engine.NoHandle); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("no handle: expected ErrInvalidArgument, got %v", err)
	}
}

func TestDeadHandlesFail(t *testing.T) {
	e := mem.New()
	if _, err := TypeOf(e, engine.TypeHandle(9999)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("dead type handle: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Wrap(e, engine.Handle(9999)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("dead value handle: expected ErrInvalidArgument, got %v", err)
	}
}

func TestTypeOfMetadataFails(t *testing.T) {
	e := mem.New()
	_, err := TypeOf(e, e.MetadataType())
	if !errors.Is(err, ErrUnrepresentableType) {
		t.Fatalf("expected ErrUnrepresentableType, got %v", err)
	}
}

func TestSetNameRejectsEmpty(t *testing.T) {
	e := mem.New()
	v, err := WrapVal(e, e.ConstInt(e.IntType(32), 1, false))
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if err := v.SetName(""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("empty name: expected ErrInvalidArgument, got %v", err)
	}
	if err := v.SetName("x"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if v.Name() != "x" {
		t.Fatalf("expected name x, got %q", v.Name())
	}
}

func TestIdentical(t *testing.T) {
	e := mem.New()
	h := e.ConstInt(e.IntType(32), 1, false)
	a, _ := WrapVal(e, h)
	b, _ := WrapVal(e, h)
	c, _ := WrapVal(e, e.ConstInt(e.IntType(32), 1, false))
	if !Identical(a, b) {
		t.Fatalf("wrappers of one handle must be identical")
	}
	if Identical(a, c) {
		t.Fatalf("distinct handles must not be identical")
	}
	if Identical(a, nil) {
		t.Fatalf("nil is identical only to nil")
	}
	if !Identical(nil, nil) {
		t.Fatalf("nil is identical to nil")
	}
}

func TestValCasts(t *testing.T) {
	e := mem.New()
	i8, _ := TypeOf(e, e.IntType(8))
	i32, _ := TypeOf(e, e.IntType(32))
	v, _ := WrapVal(e, e.ConstInt(i32.Handle(), 0x1FF, false))

	narrow, err := v.Truncate(i8)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
	wide, err := narrow.ZeroExtend(i32)
	if err != nil {
		t.Fatalf("zext: %v", err)
	}
	wt, err := wide.Type()
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	if wt.Handle() != i32.Handle() {
		t.Fatalf("zext result type mismatch")
	}

	same, err := v.TruncOrBitcast(i32)
	if err != nil {
		t.Fatalf("trunc-or-bitcast: %v", err)
	}
	st, _ := same.Type()
	if st.Handle() != i32.Handle() {
		t.Fatalf("same-width cast must keep the type")
	}

	if _, err := v.Bitcast(Type{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("invalid target: expected ErrInvalidArgument, got %v", err)
	}
}

func TestNullUndefLeaves(t *testing.T) {
	e := mem.New()
	i32, _ := TypeOf(e, e.IntType(32))

	n, err := NewNull(e, i32)
	if err != nil {
		t.Fatalf("null: %v", err)
	}
	if !n.IsNull() || n.IsUndef() {
		t.Fatalf("null constant misreports predicates")
	}

	u, err := NewUndef(e, i32)
	if err != nil {
		t.Fatalf("undef: %v", err)
	}
	if !u.IsUndef() || u.IsNull() {
		t.Fatalf("undef constant misreports predicates")
	}

	ptr, err := i32.PointerTo()
	if err != nil {
		t.Fatalf("pointer type: %v", err)
	}
	pn, err := NewPointerNull(e, ptr)
	if err != nil {
		t.Fatalf("pointer null: %v", err)
	}
	if !pn.IsNull() {
		t.Fatalf("pointer null must be null")
	}

	if _, err := NewNull(e, Type{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("null without type: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewUndef(nil, i32); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("undef without engine: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := WrapNull(e, engine.NoHandle); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("wrap null without handle: expected ErrInvalidArgument, got %v", err)
	}
}
