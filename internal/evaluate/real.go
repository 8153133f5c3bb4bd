package evaluate

import (
	"github.com/neok-m4700/f18/internal/types"
	"github.com/neok-m4700/f18/internal/utils/numeric"
)

// Real is a REAL expression of kind K. Its operation is one of RealConstant,
// Convert, Parentheses, Negate, Add, Subtract, Multiply, Divide, Power,
// IntPower, RealPart or ImaginaryPart.
type Real[K types.RealKind] struct {
	u Operation[*Real[K]]
}

// RealConstant is a REAL value.
type RealConstant[K types.RealKind] struct {
	Value numeric.Real
}

func (c *RealConstant[K]) Dump(o Sink) { o.WriteString(c.Value.Hexadecimal()) }
func (c *RealConstant[K]) clone() Operation[*Real[K]] {
	return &RealConstant[K]{Value: c.Value}
}
func (*RealConstant[K]) operationOf(*Real[K]) {}

// RealPart extracts the real part of a complex of the same kind.
type RealPart[K types.RealKind] struct{ Unary[*Complex[K]] }

func (x *RealPart[K]) Dump(o Sink) { x.Unary.Dump(o, "REAL(") }
func (x *RealPart[K]) clone() Operation[*Real[K]] {
	return &RealPart[K]{Unary[*Complex[K]]{X: x.X.Clone()}}
}
func (*RealPart[K]) operationOf(*Real[K]) {}

// ImaginaryPart extracts the imaginary part of a complex of the same kind.
type ImaginaryPart[K types.RealKind] struct{ Unary[*Complex[K]] }

func (x *ImaginaryPart[K]) Dump(o Sink) { x.Unary.Dump(o, "AIMAG(") }
func (x *ImaginaryPart[K]) clone() Operation[*Real[K]] {
	return &ImaginaryPart[K]{Unary[*Complex[K]]{X: x.X.Clone()}}
}
func (*ImaginaryPart[K]) operationOf(*Real[K]) {}

// NewReal makes a tree of op, which becomes owned by the tree.
func NewReal[K types.RealKind](op Operation[*Real[K]]) *Real[K] {
	return &Real[K]{u: op}
}

func (e *Real[K]) Dump(o Sink)      { e.u.Dump(o) }
func (e *Real[K]) Type() types.Type { return types.Of[K](types.Real) }

// Operation returns the current variant.
func (e *Real[K]) Operation() Operation[*Real[K]] { return e.u }

// Constant returns the value when the tree is a constant.
func (e *Real[K]) Constant() (numeric.Real, bool) {
	if c, ok := e.u.(*RealConstant[K]); ok {
		return c.Value, true
	}
	return numeric.Real{}, false
}

// Clone returns a deep copy sharing no node with e.
func (e *Real[K]) Clone() *Real[K] { return &Real[K]{u: e.u.clone()} }

func (*Real[K]) wrap(op Operation[*Real[K]]) *Real[K] { return &Real[K]{u: op} }
func (*Real[K]) arithmetic()                          {}
func (*Real[K]) floating()                            {}
func (*Real[K]) convertible()                         {}
func (*Real[K]) ordered()                             {}
func (*Real[K]) isRealTree()                          {}
