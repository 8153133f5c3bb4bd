package evaluate

// Unary is the shape of a node with one operand.
type Unary[A Expr] struct {
	X A
}

// Dump writes opr, the operand, and a closing parenthesis.
func (u *Unary[A]) Dump(o Sink, opr string) {
	o.WriteString(opr)
	u.X.Dump(o)
	o.WriteByte(')')
}

// Binary is the shape of a node with two operands. The operand types differ
// for a real raised to an integer power.
type Binary[A, B Expr] struct {
	X A
	Y B
}

// Dump writes the operands, separated by opr, in parentheses.
func (b *Binary[A, B]) Dump(o Sink, opr string) {
	o.WriteByte('(')
	b.X.Dump(o)
	o.WriteString(opr)
	b.Y.Dump(o)
	o.WriteByte(')')
}

type Parentheses[T Arithmetic[T]] struct{ Unary[T] }

func (x *Parentheses[T]) Dump(o Sink) { x.Unary.Dump(o, "(") }
func (x *Parentheses[T]) clone() Operation[T] {
	return &Parentheses[T]{Unary[T]{X: x.X.Clone()}}
}
func (*Parentheses[T]) operationOf(T) {}

type Negate[T Arithmetic[T]] struct{ Unary[T] }

func (x *Negate[T]) Dump(o Sink) { x.Unary.Dump(o, "(-") }
func (x *Negate[T]) clone() Operation[T] {
	return &Negate[T]{Unary[T]{X: x.X.Clone()}}
}
func (*Negate[T]) operationOf(T) {}

type Add[T Arithmetic[T]] struct{ Binary[T, T] }

func (x *Add[T]) Dump(o Sink) { x.Binary.Dump(o, "+") }
func (x *Add[T]) clone() Operation[T] {
	return &Add[T]{Binary[T, T]{X: x.X.Clone(), Y: x.Y.Clone()}}
}
func (*Add[T]) operationOf(T) {}

type Subtract[T Arithmetic[T]] struct{ Binary[T, T] }

func (x *Subtract[T]) Dump(o Sink) { x.Binary.Dump(o, "-") }
func (x *Subtract[T]) clone() Operation[T] {
	return &Subtract[T]{Binary[T, T]{X: x.X.Clone(), Y: x.Y.Clone()}}
}
func (*Subtract[T]) operationOf(T) {}

type Multiply[T Arithmetic[T]] struct{ Binary[T, T] }

func (x *Multiply[T]) Dump(o Sink) { x.Binary.Dump(o, "*") }
func (x *Multiply[T]) clone() Operation[T] {
	return &Multiply[T]{Binary[T, T]{X: x.X.Clone(), Y: x.Y.Clone()}}
}
func (*Multiply[T]) operationOf(T) {}

type Divide[T Arithmetic[T]] struct{ Binary[T, T] }

func (x *Divide[T]) Dump(o Sink) { x.Binary.Dump(o, "/") }
func (x *Divide[T]) clone() Operation[T] {
	return &Divide[T]{Binary[T, T]{X: x.X.Clone(), Y: x.Y.Clone()}}
}
func (*Divide[T]) operationOf(T) {}

type Power[T Arithmetic[T]] struct{ Binary[T, T] }

func (x *Power[T]) Dump(o Sink) { x.Binary.Dump(o, "**") }
func (x *Power[T]) clone() Operation[T] {
	return &Power[T]{Binary[T, T]{X: x.X.Clone(), Y: x.Y.Clone()}}
}
func (*Power[T]) operationOf(T) {}

// IntPower raises a real or complex base to an integer exponent of any kind.
type IntPower[T Floating[T]] struct{ Binary[T, *AnyInteger] }

func (x *IntPower[T]) Dump(o Sink) { x.Binary.Dump(o, "**") }
func (x *IntPower[T]) clone() Operation[T] {
	return &IntPower[T]{Binary[T, *AnyInteger]{X: x.X.Clone(), Y: x.Y.Clone()}}
}
func (*IntPower[T]) operationOf(T) {}

// Convert produces a T from an integer or real of any kind. It dumps as its
// operand.
type Convert[T Convertible[T]] struct{ Unary[*AnyIntegerOrReal] }

func (x *Convert[T]) Dump(o Sink) { x.X.Dump(o) }
func (x *Convert[T]) clone() Operation[T] {
	return &Convert[T]{Unary[*AnyIntegerOrReal]{X: x.X.Clone()}}
}
func (*Convert[T]) operationOf(T) {}
