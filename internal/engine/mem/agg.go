package mem

import (
	"fmt"

	"fortio.org/safecast"

	"irval/internal/engine"
)

// ConstGEP folds a constant getelementptr expression. The result is a
// pointer-typed expression whose operands are the base followed by the
// indices; index validity beyond structural typing is the caller's problem.
func (e *Engine) ConstGEP(v engine.Handle, indices []engine.Handle, inBounds bool) (engine.Handle, error) {
	rec, err := e.mustRec(v)
	if err != nil {
		return engine.NoHandle, err
	}
	base, ok := e.typeRec(rec.typ)
	if !ok || base.kind != engine.KindPointer {
		return engine.NoHandle, fmt.Errorf("gep base must be a pointer: %w", engine.ErrBadHandle)
	}
	cur := base.elem
	// The first index steps over the base pointer itself; the rest walk
	// into the pointee.
	for i, idx := range indices {
		if _, err := e.mustRec(idx); err != nil {
			return engine.NoHandle, err
		}
		if i == 0 {
			continue
		}
		tr, ok := e.typeRec(cur)
		if !ok {
			return engine.NoHandle, fmt.Errorf("gep walks past a leaf type: %w", engine.ErrBadIndex)
		}
		switch tr.kind {
		case engine.KindArray, engine.KindVector:
			cur = tr.elem
		case engine.KindStruct:
			field := e.ConstIntZExt(idx)
			n, convErr := safecast.Conv[uint64](len(tr.fields))
			if convErr != nil || field >= n {
				return engine.NoHandle, fmt.Errorf("gep struct field %d of %d: %w", field, len(tr.fields), engine.ErrBadIndex)
			}
			cur = tr.fields[field]
		default:
			return engine.NoHandle, fmt.Errorf("gep into %s: %w", tr.kind, engine.ErrBadIndex)
		}
	}
	opcode := "getelementptr"
	if inBounds {
		opcode = "getelementptr inbounds"
	}
	ops := append([]engine.Handle{v}, indices...)
	return e.alloc(valueRec{kind: valExpr, typ: e.PointerType(cur), text: opcode, elems: ops}), nil
}

func (e *Engine) aggElems(v engine.Handle) (*valueRec, []engine.Handle, error) {
	rec, err := e.mustRec(v)
	if err != nil {
		return nil, nil, err
	}
	switch rec.kind {
	case valAggregate:
		return rec, rec.elems, nil
	case valString:
		bs := e.stringBytes(rec)
		elems := make([]engine.Handle, len(bs))
		i8 := e.IntType(8)
		for i, b := range bs {
			elems[i] = e.ConstInt(i8, uint64(b), false)
		}
		return rec, elems, nil
	default:
		return nil, nil, fmt.Errorf("aggregate constant required: %w", engine.ErrBadHandle)
	}
}

// ConstExtractValue folds element extraction from an aggregate constant.
func (e *Engine) ConstExtractValue(agg engine.Handle, index uint32) (engine.Handle, error) {
	_, elems, err := e.aggElems(agg)
	if err != nil {
		return engine.NoHandle, err
	}
	if uint64(index) >= uint64(len(elems)) {
		return engine.NoHandle, fmt.Errorf("extract %d of %d: %w", index, len(elems), engine.ErrBadIndex)
	}
	return elems[index], nil
}

// ConstInsertValue folds element replacement, yielding a fresh aggregate;
// the source is untouched.
func (e *Engine) ConstInsertValue(agg engine.Handle, elem engine.Handle, index uint32) (engine.Handle, error) {
	rec, elems, err := e.aggElems(agg)
	if err != nil {
		return engine.NoHandle, err
	}
	if _, err := e.mustRec(elem); err != nil {
		return engine.NoHandle, err
	}
	if uint64(index) >= uint64(len(elems)) {
		return engine.NoHandle, fmt.Errorf("insert %d of %d: %w", index, len(elems), engine.ErrBadIndex)
	}
	out := make([]engine.Handle, len(elems))
	copy(out, elems)
	out[index] = elem
	return e.alloc(valueRec{kind: valAggregate, typ: rec.typ, elems: out}), nil
}

// ConstExtractElement folds vector element extraction with a constant index.
func (e *Engine) ConstExtractElement(vec, index engine.Handle) (engine.Handle, error) {
	idx, err := e.intOperand(index)
	if err != nil {
		return engine.NoHandle, err
	}
	i, err := safecast.Conv[uint32](idx.val)
	if err != nil {
		return engine.NoHandle, fmt.Errorf("element index %d: %w", idx.val, engine.ErrBadIndex)
	}
	return e.ConstExtractValue(vec, i)
}

// ConstInsertElement folds vector element replacement with a constant index.
func (e *Engine) ConstInsertElement(vec, elem, index engine.Handle) (engine.Handle, error) {
	idx, err := e.intOperand(index)
	if err != nil {
		return engine.NoHandle, err
	}
	i, err := safecast.Conv[uint32](idx.val)
	if err != nil {
		return engine.NoHandle, fmt.Errorf("element index %d: %w", idx.val, engine.ErrBadIndex)
	}
	return e.ConstInsertValue(vec, elem, i)
}

// ConstShuffleVector folds a shuffle of two vectors under a constant mask.
// Mask lanes index the concatenation of a and b; an undef lane yields an
// undef element.
func (e *Engine) ConstShuffleVector(a, b, mask engine.Handle) (engine.Handle, error) {
	arec, aelems, err := e.aggElems(a)
	if err != nil {
		return engine.NoHandle, err
	}
	_, belems, err := e.aggElems(b)
	if err != nil {
		return engine.NoHandle, err
	}
	_, melems, err := e.aggElems(mask)
	if err != nil {
		return engine.NoHandle, err
	}
	atype, ok := e.typeRec(arec.typ)
	if !ok || atype.kind != engine.KindVector {
		return engine.NoHandle, fmt.Errorf("shuffle operands must be vectors: %w", engine.ErrBadHandle)
	}
	out := make([]engine.Handle, len(melems))
	for i, lane := range melems {
		if e.IsUndef(lane) {
			out[i] = e.ConstUndef(atype.elem)
			continue
		}
		sel := e.ConstIntZExt(lane)
		switch {
		case sel < uint64(len(aelems)):
			out[i] = aelems[sel]
		case sel < uint64(len(aelems)+len(belems)):
			out[i] = belems[sel-uint64(len(aelems))]
		default:
			return engine.NoHandle, fmt.Errorf("shuffle lane %d of %d: %w", sel, len(aelems)+len(belems), engine.ErrBadIndex)
		}
	}
	t := e.VectorType(atype.elem, uint64(len(out)))
	return e.alloc(valueRec{kind: valAggregate, typ: t, elems: out}), nil
}
