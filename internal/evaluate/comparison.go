package evaluate

import (
	"github.com/cockroachdb/errors"

	"github.com/neok-m4700/f18/internal/types"
)

// RelationalOperator orders two operands.
type RelationalOperator int

const (
	LT RelationalOperator = iota
	LE
	EQ
	NE
	GE
	GT
)

var relationalText = [...]string{
	LT: ".LT.",
	LE: ".LE.",
	EQ: ".EQ.",
	NE: ".NE.",
	GE: ".GE.",
	GT: ".GT.",
}

func (op RelationalOperator) String() string {
	if op < LT || op > GT {
		return "?"
	}
	return relationalText[op]
}

// SafeValue implements redact.SafeValue.
func (RelationalOperator) SafeValue() {}

// EqualityOperator is the subset of relational operators defined on COMPLEX.
type EqualityOperator int

const (
	Equals EqualityOperator = iota
	NotEquals
)

// Relational returns the matching relational operator.
func (op EqualityOperator) Relational() RelationalOperator {
	if op == NotEquals {
		return NE
	}
	return EQ
}

func (op EqualityOperator) String() string { return op.Relational().String() }

// SafeValue implements redact.SafeValue.
func (EqualityOperator) SafeValue() {}

// EqualityOperatorOf narrows op, failing for the ordering operators.
func EqualityOperatorOf(op RelationalOperator) (EqualityOperator, error) {
	switch op {
	case EQ:
		return Equals, nil
	case NE:
		return NotEquals, nil
	}
	return 0, errors.Newf("%v is not defined for complex operands", op)
}

// Comparison relates two integers, reals, or characters of the same kind.
type Comparison[T Ordered[T]] struct {
	Op RelationalOperator
	Binary[T, T]
}

func (c *Comparison[T]) Dump(o Sink) { c.Binary.Dump(o, c.Op.String()) }
func (c *Comparison[T]) clone() Operation[*Logical] {
	return &Comparison[T]{Op: c.Op, Binary: Binary[T, T]{X: c.X.Clone(), Y: c.Y.Clone()}}
}
func (*Comparison[T]) operationOf(*Logical) {}

// ComplexComparison tests two complexes of the same kind for equality.
type ComplexComparison[K types.RealKind] struct {
	Op EqualityOperator
	Binary[*Complex[K], *Complex[K]]
}

func (c *ComplexComparison[K]) Dump(o Sink) { c.Binary.Dump(o, c.Op.String()) }
func (c *ComplexComparison[K]) clone() Operation[*Logical] {
	return &ComplexComparison[K]{Op: c.Op, Binary: Binary[*Complex[K], *Complex[K]]{X: c.X.Clone(), Y: c.Y.Clone()}}
}
func (*ComplexComparison[K]) operationOf(*Logical) {}
