package evaluate

import (
	"github.com/neok-m4700/f18/internal/types"
	"github.com/neok-m4700/f18/internal/utils/numeric"
)

// Integer is an INTEGER expression of kind K. Its operation is one of
// IntegerConstant, Convert, Parentheses, Negate, Add, Subtract, Multiply,
// Divide or Power.
type Integer[K types.IntegerKind] struct {
	u Operation[*Integer[K]]
}

// IntegerConstant is a folded INTEGER value.
type IntegerConstant[K types.IntegerKind] struct {
	Value numeric.Int
}

func (c *IntegerConstant[K]) Dump(o Sink) { o.WriteString(c.Value.SignedDecimal()) }
func (c *IntegerConstant[K]) clone() Operation[*Integer[K]] {
	return &IntegerConstant[K]{Value: c.Value}
}
func (*IntegerConstant[K]) operationOf(*Integer[K]) {}

// NewInteger makes a tree of op, which becomes owned by the tree.
func NewInteger[K types.IntegerKind](op Operation[*Integer[K]]) *Integer[K] {
	return &Integer[K]{u: op}
}

func integerBits[K types.IntegerKind]() int { return types.KindOf[K]() * 8 }

func (e *Integer[K]) Dump(o Sink)      { e.u.Dump(o) }
func (e *Integer[K]) Type() types.Type { return types.Of[K](types.Integer) }

// Operation returns the current variant.
func (e *Integer[K]) Operation() Operation[*Integer[K]] { return e.u }

// Constant returns the value when the tree is a constant.
func (e *Integer[K]) Constant() (numeric.Int, bool) {
	if c, ok := e.u.(*IntegerConstant[K]); ok {
		return c.Value, true
	}
	return numeric.Int{}, false
}

// Clone returns a deep copy sharing no node with e.
func (e *Integer[K]) Clone() *Integer[K] { return &Integer[K]{u: e.u.clone()} }

func (*Integer[K]) wrap(op Operation[*Integer[K]]) *Integer[K] { return &Integer[K]{u: op} }
func (*Integer[K]) arithmetic()                                {}
func (*Integer[K]) convertible()                               {}
func (*Integer[K]) ordered()                                   {}
func (*Integer[K]) isIntegerTree()                             {}
