package engine

import "testing"

func TestKindStringsDistinct(t *testing.T) {
	seen := make(map[string]TypeKind)
	for _, k := range Kinds() {
		s := k.String()
		if s == "" || s == "unknown" {
			t.Fatalf("kind %d has no name", k)
		}
		if prev, dup := seen[s]; dup {
			t.Fatalf("kinds %v and %v share the name %q", prev, k, s)
		}
		seen[s] = k
	}
}

func TestKindInvalidOutsideClassifiableSet(t *testing.T) {
	for _, k := range Kinds() {
		if k == KindInvalid {
			t.Fatalf("KindInvalid must not be a classifiable kind")
		}
	}
	if KindInvalid.String() != "invalid" {
		t.Fatalf("unexpected name %q", KindInvalid.String())
	}
	if KindInvalid.IsFloating() {
		t.Fatalf("the failure marker is not a floating kind")
	}
}

func TestIsFloating(t *testing.T) {
	floating := map[TypeKind]bool{
		KindFloat:    true,
		KindDouble:   true,
		KindX86FP80:  true,
		KindFP128:    true,
		KindPPCFP128: true,
	}
	for _, k := range Kinds() {
		if k.IsFloating() != floating[k] {
			t.Fatalf("IsFloating(%s) = %v", k, k.IsFloating())
		}
	}
}

func TestBinOpIsFloat(t *testing.T) {
	intOps := []BinOp{OpAdd, OpSub, OpMul, OpSDiv, OpUDiv, OpSRem, OpURem, OpAnd, OpOr, OpXor, OpShl, OpLShr, OpAShr}
	for _, op := range intOps {
		if op.IsFloat() {
			t.Fatalf("%s must not be a float op", op)
		}
	}
	for _, op := range []BinOp{OpFAdd, OpFSub, OpFMul, OpFDiv, OpFRem} {
		if !op.IsFloat() {
			t.Fatalf("%s must be a float op", op)
		}
	}
}
