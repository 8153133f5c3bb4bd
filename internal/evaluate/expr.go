// Package evaluate holds typed expression trees for the intrinsic types,
// their canonical dump, and integer constant folding.
//
// Each category has one tree type per kind (Integer[types.K4], Real[types.K8],
// ...). A tree owns a single Operation, one of a closed set of variants, and
// every variant exclusively owns its operands. Operands of a binary node
// always share a kind; Convert is the only way across kinds or categories.
// The Any* wrappers erase the kind when code needs to hold "some integer".
package evaluate

import (
	"strings"

	"github.com/neok-m4700/f18/internal/source"
	"github.com/neok-m4700/f18/internal/types"
)

// Sink receives dumped text. strings.Builder, bytes.Buffer and bufio.Writer
// all satisfy it.
type Sink interface {
	WriteString(s string) (int, error)
	WriteByte(c byte) error
}

// Expr is implemented by every tree and wrapper.
type Expr interface {
	// Dump writes the canonical text of the expression. It never mutates.
	Dump(o Sink)
	Type() types.Type
}

// Messages receives diagnostics raised while folding.
type Messages interface {
	Say(at *source.Location, text string)
}

// Texts said while folding integers.
const (
	NegationOverflowed       = "integer negation overflowed"
	AdditionOverflowed       = "integer addition overflowed"
	MultiplicationOverflowed = "integer multiplication overflowed"
)

func say(messages Messages, at *source.Location, text string) {
	if messages != nil {
		messages.Say(at, text)
	}
}

// String renders e with Dump.
func String(e Expr) string {
	var b strings.Builder
	e.Dump(&b)
	return b.String()
}

// Operation is one variant of the tree type T.
type Operation[T any] interface {
	Dump(o Sink)
	clone() Operation[T]
	operationOf(T)
}

// Arithmetic is satisfied by *Integer[K], *Real[K] and *Complex[K].
type Arithmetic[T any] interface {
	Expr
	Clone() T
	wrap(Operation[T]) T
	arithmetic()
}

// Floating is satisfied by *Real[K] and *Complex[K], the trees that may be
// raised to an integer power.
type Floating[T any] interface {
	Arithmetic[T]
	floating()
}

// Convertible is satisfied by *Integer[K] and *Real[K], the trees a Convert
// node can produce.
type Convertible[T any] interface {
	Expr
	Clone() T
	convertible()
}

// Ordered is satisfied by *Integer[K], *Real[K] and *Character[K], the trees
// that support every relational operator.
type Ordered[T any] interface {
	Expr
	Clone() T
	ordered()
}
