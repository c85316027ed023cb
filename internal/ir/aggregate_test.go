package ir

import (
	"errors"
	"testing"

	"irval/internal/engine"
	"irval/internal/engine/mem"
)

func TestGenerateArray(t *testing.T) {
	e := mem.New()
	i32, _ := TypeOf(e, e.IntType(32))

	arr, err := GenerateArray(e, i32, 3, func(i int) Value {
		c, cerr := Int32.Const(e, int64(i))
		if cerr != nil {
			t.Fatalf("generator const: %v", cerr)
		}
		return c
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	el, err := arr.Extract(1)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	iv, ok := el.(*Integer)
	if !ok {
		t.Fatalf("element must reclassify as *Integer, got %T", el)
	}
	if iv.SExtValue() != 1 {
		t.Fatalf("expected 1, got %d", iv.SExtValue())
	}
}

func TestGenerateArrayErrors(t *testing.T) {
	e := mem.New()
	i32, _ := TypeOf(e, e.IntType(32))

	if _, err := GenerateArray(e, i32, 3, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil generator: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := GenerateArray(e, i32, -1, func(int) Value { return nil }); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("negative count: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewArray(e, Type{}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("missing element type: expected ErrInvalidArgument, got %v", err)
	}
	one, _ := Int32.Const(e, 1)
	if _, err := NewArray(e, i32, []Value{one, nil}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil element: expected ErrInvalidArgument, got %v", err)
	}
}

func TestAggregateInsertImmutability(t *testing.T) {
	e := mem.New()
	arr := arrayOfInts(t, e, 1, 2)
	nine, _ := Int32.Const(e, 9)

	updated, err := arr.Insert(nine, 0)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if Identical(arr, updated) {
		t.Fatalf("insert must yield a fresh aggregate")
	}

	orig, err := arr.Extract(0)
	if err != nil {
		t.Fatalf("extract original: %v", err)
	}
	if orig.(*Integer).SExtValue() != 1 {
		t.Fatalf("source aggregate must be untouched")
	}

	if _, err := arr.Extract(7); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("out-of-range extract: expected ErrOutOfRange, got %v", err)
	}
	if _, err := arr.Insert(nine, 7); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("out-of-range insert: expected ErrOutOfRange, got %v", err)
	}
	if _, err := arr.Insert(nil, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil insert: expected ErrInvalidArgument, got %v", err)
	}
}

func TestStructContexts(t *testing.T) {
	e := mem.New()
	one, _ := Int32.Const(e, 1)

	s, err := NewStruct(e, []Value{one}, false)
	if err != nil {
		t.Fatalf("struct: %v", err)
	}
	st, err := s.Type()
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	if st.Kind() != engine.KindStruct {
		t.Fatalf("expected struct kind, got %s", st.Kind())
	}

	ctx := e.NewContext()
	scoped, err := NewStructIn(e, ctx, []Value{one}, false)
	if err != nil {
		t.Fatalf("scoped struct: %v", err)
	}
	sct, _ := scoped.Type()
	if sct.Handle() == st.Handle() {
		t.Fatalf("contexts must keep distinct struct identities")
	}

	el, err := scoped.Extract(0)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if el.(*Integer).SExtValue() != 1 {
		t.Fatalf("scoped struct folds like the global one")
	}
}

func TestString(t *testing.T) {
	e := mem.New()
	s, err := NewString(e, "hi", true)
	if err != nil {
		t.Fatalf("string: %v", err)
	}
	if s.Operands().Len() != 3 {
		t.Fatalf("null-terminated string of two chars has 3 elements, got %d", s.Operands().Len())
	}
	el, err := s.Extract(0)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if el.(*Integer).ZExtValue() != 'h' {
		t.Fatalf("expected 'h', got %d", el.(*Integer).ZExtValue())
	}
	last, err := s.Extract(2)
	if err != nil {
		t.Fatalf("extract terminator: %v", err)
	}
	if last.(*Integer).ZExtValue() != 0 {
		t.Fatalf("terminator must be zero")
	}

	bare, err := NewString(e, "hi", false)
	if err != nil {
		t.Fatalf("bare string: %v", err)
	}
	if bare.Operands().Len() != 2 {
		t.Fatalf("unterminated string keeps its length, got %d", bare.Operands().Len())
	}
}

func TestVectorElementOps(t *testing.T) {
	e := mem.New()
	gen := func(base int64) func(int) Value {
		return func(i int) Value {
			c, _ := Int32.Const(e, base+int64(i))
			return c
		}
	}
	vec, err := GenerateVector(e, 2, gen(1))
	if err != nil {
		t.Fatalf("vector: %v", err)
	}
	other, err := GenerateVector(e, 2, gen(3))
	if err != nil {
		t.Fatalf("other vector: %v", err)
	}
	idx, _ := Int32.Unsigned(e, 1)

	el, err := vec.ExtractElement(idx)
	if err != nil {
		t.Fatalf("extract element: %v", err)
	}
	if el.(*Integer).SExtValue() != 2 {
		t.Fatalf("expected 2, got %d", el.(*Integer).SExtValue())
	}

	eight, _ := Int32.Const(e, 8)
	upd, err := vec.InsertElement(eight, idx)
	if err != nil {
		t.Fatalf("insert element: %v", err)
	}
	uv, ok := upd.(*Vector)
	if !ok {
		t.Fatalf("insert must reclassify as *Vector, got %T", upd)
	}
	el, _ = uv.ExtractElement(idx)
	if el.(*Integer).SExtValue() != 8 {
		t.Fatalf("expected 8, got %d", el.(*Integer).SExtValue())
	}

	mask, err := GenerateVector(e, 2, func(i int) Value {
		c, _ := Int32.Unsigned(e, uint64(i)*3) // lanes 0 and 3
		return c
	})
	if err != nil {
		t.Fatalf("mask: %v", err)
	}
	shuf, err := vec.Shuffle(other, mask)
	if err != nil {
		t.Fatalf("shuffle: %v", err)
	}
	sv := shuf.(*Vector)
	first, _ := sv.ExtractElement(mustInt(t, e, 0))
	second, _ := sv.ExtractElement(mustInt(t, e, 1))
	if first.(*Integer).SExtValue() != 1 || second.(*Integer).SExtValue() != 4 {
		t.Fatalf("shuffle lanes: got %d and %d",
			first.(*Integer).SExtValue(), second.(*Integer).SExtValue())
	}

	if _, err := vec.Shuffle(nil, mask); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil shuffle operand: expected ErrInvalidArgument, got %v", err)
	}
}

func mustInt(t *testing.T, e engine.Engine, v uint64) *Integer {
	t.Helper()
	c, err := Int32.Unsigned(e, v)
	if err != nil {
		t.Fatalf("const %d: %v", v, err)
	}
	return c
}

func TestConstantGEP(t *testing.T) {
	e := mem.New()
	i32, _ := TypeOf(e, e.IntType(32))
	arrTy, err := TypeOf(e, e.ArrayType(i32.Handle(), 4))
	if err != nil {
		t.Fatalf("array type: %v", err)
	}
	g, err := NewGlobalVariable(e, arrTy, "table")
	if err != nil {
		t.Fatalf("global: %v", err)
	}

	gep, err := g.GEPInBounds(mustInt(t, e, 0), mustInt(t, e, 1))
	if err != nil {
		t.Fatalf("gep: %v", err)
	}
	gt, err := gep.Type()
	if err != nil {
		t.Fatalf("gep type: %v", err)
	}
	if gt.Kind() != engine.KindPointer {
		t.Fatalf("gep yields a pointer, got %s", gt.Kind())
	}

	if _, err := g.GEP(mustInt(t, e, 0), nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil index: expected ErrInvalidArgument, got %v", err)
	}
}
