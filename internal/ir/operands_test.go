package ir

import (
	"errors"
	"testing"

	"irval/internal/engine"
	"irval/internal/engine/mem"
)

func arrayOfInts(t *testing.T, e engine.Engine, vals ...int64) *Array {
	t.Helper()
	i32, err := TypeOf(e, e.IntType(32))
	if err != nil {
		t.Fatalf("i32 type: %v", err)
	}
	elems := make([]Value, len(vals))
	for i, v := range vals {
		c, err := Int32.Const(e, v)
		if err != nil {
			t.Fatalf("const %d: %v", v, err)
		}
		elems[i] = c
	}
	arr, err := NewArray(e, i32, elems)
	if err != nil {
		t.Fatalf("array: %v", err)
	}
	return arr
}

func TestOperandsRoundTrip(t *testing.T) {
	e := mem.New()
	arr := arrayOfInts(t, e, 10, 20, 30)
	ops := arr.Operands()

	if ops.Len() != 3 {
		t.Fatalf("expected 3 operands, got %d", ops.Len())
	}
	v, ok := ops.At(1)
	if !ok {
		t.Fatalf("operand 1 must exist")
	}
	got, err := Int32.Wrap(e, v.Handle())
	if err != nil {
		t.Fatalf("rewrap: %v", err)
	}
	if got.SExtValue() != 20 {
		t.Fatalf("expected 20, got %d", got.SExtValue())
	}

	repl, _ := Int32.Const(e, 99)
	if err := ops.Set(0, repl); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, _ = ops.At(0)
	if v.Handle() != repl.Handle() {
		t.Fatalf("replacement must be visible on the next read")
	}
}

func TestOperandsOutOfRange(t *testing.T) {
	e := mem.New()
	arr := arrayOfInts(t, e, 1)
	ops := arr.Operands()

	if _, ok := ops.At(5); ok {
		t.Fatalf("out-of-range read must report absent")
	}
	if _, ok := ops.At(-1); ok {
		t.Fatalf("negative read must report absent")
	}

	repl, _ := Int32.Const(e, 2)
	if err := ops.Set(5, repl); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("out-of-range write: expected ErrOutOfRange, got %v", err)
	}
	if err := ops.Set(0, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil write: expected ErrInvalidArgument, got %v", err)
	}
}

func TestOperandsAll(t *testing.T) {
	e := mem.New()
	arr := arrayOfInts(t, e, 1, 2)
	all := arr.Operands().All()
	if len(all) != 2 {
		t.Fatalf("expected 2 operands, got %d", len(all))
	}
	for i, v := range all {
		got, err := Int32.Wrap(e, v.Handle())
		if err != nil {
			t.Fatalf("rewrap %d: %v", i, err)
		}
		if got.SExtValue() != int64(i)+1 {
			t.Fatalf("operand %d: expected %d, got %d", i, i+1, got.SExtValue())
		}
	}
}

// Leaf constants have no operand slots; the view just reports empty.
func TestOperandsLeaf(t *testing.T) {
	e := mem.New()
	i32, _ := TypeOf(e, e.IntType(32))
	n, err := NewNull(e, i32)
	if err != nil {
		t.Fatalf("null: %v", err)
	}
	if n.Operands().Len() != 0 {
		t.Fatalf("leaf constants carry no operands")
	}
}
