package evaluate

import (
	"github.com/cockroachdb/errors"

	"github.com/neok-m4700/f18/internal/source"
)

func unhandled(op any) error {
	return errors.AssertionFailedf("unhandled operation %T", op)
}

func (e *Integer[K]) constant() (*IntegerConstant[K], bool) {
	c, ok := e.u.(*IntegerConstant[K])
	return c, ok
}

// Fold evaluates constant subexpressions bottom-up, replacing each folded
// node's operation with a constant. Overflows are said to messages (which
// may be nil) at the given location and the wrapped value is kept.
//
// Parentheses, Negate, Add and Multiply fold. Subtract, Divide, Power and
// Convert fold their operands but are never replaced themselves.
func (e *Integer[K]) Fold(at *source.Location, messages Messages) {
	switch x := e.u.(type) {
	case *IntegerConstant[K]:
	case *Parentheses[*Integer[K]]:
		x.X.Fold(at, messages)
		if c, ok := x.X.constant(); ok {
			e.u = &IntegerConstant[K]{Value: c.Value}
		}
	case *Negate[*Integer[K]]:
		x.X.Fold(at, messages)
		if c, ok := x.X.constant(); ok {
			r := c.Value.Negate()
			if r.Overflow {
				say(messages, at, NegationOverflowed)
			}
			e.u = &IntegerConstant[K]{Value: r.Value}
		}
	case *Add[*Integer[K]]:
		x.X.Fold(at, messages)
		x.Y.Fold(at, messages)
		cx, okx := x.X.constant()
		cy, oky := x.Y.constant()
		if okx && oky {
			r := cx.Value.AddSigned(cy.Value)
			if r.Overflow {
				say(messages, at, AdditionOverflowed)
			}
			e.u = &IntegerConstant[K]{Value: r.Value}
		}
	case *Multiply[*Integer[K]]:
		x.X.Fold(at, messages)
		x.Y.Fold(at, messages)
		cx, okx := x.X.constant()
		cy, oky := x.Y.constant()
		if okx && oky {
			p := cx.Value.MultiplySigned(cy.Value)
			if p.SignedMultiplicationOverflowed() {
				say(messages, at, MultiplicationOverflowed)
			}
			e.u = &IntegerConstant[K]{Value: p.Lower}
		}
	// TODO: fold Subtract with SubtractSigned, and Divide and Power once
	// numeric.Int can divide and exponentiate.
	case *Subtract[*Integer[K]]:
		x.X.Fold(at, messages)
		x.Y.Fold(at, messages)
	case *Divide[*Integer[K]]:
		x.X.Fold(at, messages)
		x.Y.Fold(at, messages)
	case *Power[*Integer[K]]:
		x.X.Fold(at, messages)
		x.Y.Fold(at, messages)
	case *Convert[*Integer[K]]:
		x.X.Fold(at, messages)
	default:
		panic(unhandled(x))
	}
}
