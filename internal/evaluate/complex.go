package evaluate

import (
	"github.com/neok-m4700/f18/internal/types"
	"github.com/neok-m4700/f18/internal/utils/numeric"
)

// Complex is a COMPLEX expression of kind K. Its operation is one of
// ComplexConstant, Parentheses, Negate, Add, Subtract, Multiply, Divide,
// Power, IntPower or Construct.
type Complex[K types.RealKind] struct {
	u Operation[*Complex[K]]
}

// ComplexConstant is a COMPLEX value.
type ComplexConstant[K types.RealKind] struct {
	Value numeric.Complex
}

func (c *ComplexConstant[K]) Dump(o Sink) { o.WriteString(c.Value.Hexadecimal()) }
func (c *ComplexConstant[K]) clone() Operation[*Complex[K]] {
	return &ComplexConstant[K]{Value: c.Value}
}
func (*ComplexConstant[K]) operationOf(*Complex[K]) {}

// Construct builds a complex from real and imaginary parts, (re,im).
type Construct[K types.RealKind] struct{ Binary[*Real[K], *Real[K]] }

func (x *Construct[K]) Dump(o Sink) { x.Binary.Dump(o, ",") }
func (x *Construct[K]) clone() Operation[*Complex[K]] {
	return &Construct[K]{Binary[*Real[K], *Real[K]]{X: x.X.Clone(), Y: x.Y.Clone()}}
}
func (*Construct[K]) operationOf(*Complex[K]) {}

// NewComplex makes a tree of op, which becomes owned by the tree.
func NewComplex[K types.RealKind](op Operation[*Complex[K]]) *Complex[K] {
	return &Complex[K]{u: op}
}

func (e *Complex[K]) Dump(o Sink)      { e.u.Dump(o) }
func (e *Complex[K]) Type() types.Type { return types.Of[K](types.Complex) }

// Operation returns the current variant.
func (e *Complex[K]) Operation() Operation[*Complex[K]] { return e.u }

// Constant returns the value when the tree is a constant.
func (e *Complex[K]) Constant() (numeric.Complex, bool) {
	if c, ok := e.u.(*ComplexConstant[K]); ok {
		return c.Value, true
	}
	return numeric.Complex{}, false
}

// Clone returns a deep copy sharing no node with e.
func (e *Complex[K]) Clone() *Complex[K] { return &Complex[K]{u: e.u.clone()} }

func (*Complex[K]) wrap(op Operation[*Complex[K]]) *Complex[K] { return &Complex[K]{u: op} }
func (*Complex[K]) arithmetic()                                {}
func (*Complex[K]) floating()                                  {}
func (*Complex[K]) isComplexTree()                             {}
