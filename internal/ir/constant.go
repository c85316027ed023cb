package ir

import (
	"fmt"

	"irval/internal/engine"
)

// User is a value with operand slots.
type User struct {
	Val
}

// Operands returns the uncached operand view for this value.
func (u *User) Operands() *Operands {
	return &Operands{eng: u.eng, owner: u.h}
}

// Constant is a user value known to the engine at build time. Constants are
// immutable: every folding operation yields a fresh value.
type Constant struct {
	User
}

func newConstant(eng engine.Engine, h engine.Handle) Constant {
	return Constant{User: User{Val: newVal(eng, h)}}
}

func newConstantPtr(eng engine.Engine, h engine.Handle) *Constant {
	c := newConstant(eng, h)
	return &c
}

func (c *Constant) gep(indices []Value, inBounds bool) (Value, error) {
	packed := make([]engine.Handle, len(indices))
	for i, idx := range indices {
		if idx == nil {
			return nil, fmt.Errorf("gep index %d: %w", i, ErrInvalidArgument)
		}
		packed[i] = idx.Handle()
	}
	h, err := c.eng.ConstGEP(c.h, packed, inBounds)
	if err != nil {
		return nil, err
	}
	return Wrap(c.eng, h)
}

// GEP folds a constant getelementptr expression over the given constant
// indices. Index validity is the engine's to judge.
func (c *Constant) GEP(indices ...Value) (Value, error) { return c.gep(indices, false) }

// GEPInBounds is GEP with the in-bounds marker.
func (c *Constant) GEPInBounds(indices ...Value) (Value, error) { return c.gep(indices, true) }

// Pointer is a constant pointer value.
type Pointer struct {
	Constant
}

// constDesc names the engine entry point a leaf constant variant is built
// with. One descriptor exists per variant, fixed at compile time.
type constDesc struct {
	name  string
	build func(engine.Engine, engine.TypeHandle) engine.Handle
}

var (
	nullDesc        = constDesc{name: "null", build: engine.Engine.ConstNull}
	pointerNullDesc = constDesc{name: "pointer-null", build: engine.Engine.ConstPointerNull}
	undefDesc       = constDesc{name: "undef", build: engine.Engine.ConstUndef}
)

func (d constDesc) make(eng engine.Engine, t Type) (engine.Handle, error) {
	if eng == nil {
		return engine.NoHandle, fmt.Errorf("%s constant: engine required: %w", d.name, ErrInvalidArgument)
	}
	if !t.Valid() {
		return engine.NoHandle, fmt.Errorf("%s constant needs a type or a raw handle: %w", d.name, ErrInvalidArgument)
	}
	return d.build(eng, t.Handle()), nil
}

func wrapLeaf(eng engine.Engine, h engine.Handle, name string) (Constant, error) {
	if eng == nil || !h.IsValid() {
		return Constant{}, fmt.Errorf("%s constant needs a type or a raw handle: %w", name, ErrInvalidArgument)
	}
	return newConstant(eng, h), nil
}

// Null is the zero value of an arbitrary type.
type Null struct {
	Constant
}

// NewNull builds the null constant of a type.
func NewNull(eng engine.Engine, t Type) (*Null, error) {
	h, err := nullDesc.make(eng, t)
	if err != nil {
		return nil, err
	}
	return &Null{Constant: newConstant(eng, h)}, nil
}

// WrapNull wraps an already-produced null constant handle.
func WrapNull(eng engine.Engine, h engine.Handle) (*Null, error) {
	c, err := wrapLeaf(eng, h, nullDesc.name)
	if err != nil {
		return nil, err
	}
	return &Null{Constant: c}, nil
}

// PointerNull is the null pointer constant of a pointer type.
type PointerNull struct {
	Constant
}

// NewPointerNull builds the null pointer constant for a pointer type.
func NewPointerNull(eng engine.Engine, t Type) (*PointerNull, error) {
	h, err := pointerNullDesc.make(eng, t)
	if err != nil {
		return nil, err
	}
	return &PointerNull{Constant: newConstant(eng, h)}, nil
}

// WrapPointerNull wraps an already-produced null pointer handle.
func WrapPointerNull(eng engine.Engine, h engine.Handle) (*PointerNull, error) {
	c, err := wrapLeaf(eng, h, pointerNullDesc.name)
	if err != nil {
		return nil, err
	}
	return &PointerNull{Constant: c}, nil
}

// Undef is an undefined constant of an arbitrary type.
type Undef struct {
	Constant
}

// NewUndef builds the undefined constant of a type.
func NewUndef(eng engine.Engine, t Type) (*Undef, error) {
	h, err := undefDesc.make(eng, t)
	if err != nil {
		return nil, err
	}
	return &Undef{Constant: newConstant(eng, h)}, nil
}

// WrapUndef wraps an already-produced undef constant handle.
func WrapUndef(eng engine.Engine, h engine.Handle) (*Undef, error) {
	c, err := wrapLeaf(eng, h, undefDesc.name)
	if err != nil {
		return nil, err
	}
	return &Undef{Constant: c}, nil
}
