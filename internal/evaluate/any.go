package evaluate

import (
	"github.com/neok-m4700/f18/internal/source"
	"github.com/neok-m4700/f18/internal/types"
)

// The *Tree interfaces close each wrapper over the kinds of one category:
// only the tree types of this package implement them.

type integerTree interface {
	Expr
	Fold(at *source.Location, messages Messages)
	cloneExpr() Expr
	isIntegerTree()
}

type realTree interface {
	Expr
	cloneExpr() Expr
	isRealTree()
}

type complexTree interface {
	Expr
	cloneExpr() Expr
	isComplexTree()
}

type characterTree interface {
	Expr
	LEN() *Integer[types.K8]
	cloneExpr() Expr
	isCharacterTree()
}

func dumpTagged(o Sink, t types.Type, e Expr) {
	o.WriteByte('(')
	o.WriteString(t.Dump())
	o.WriteByte(' ')
	e.Dump(o)
	o.WriteByte(')')
}

// AnyInteger holds an INTEGER tree of any kind.
type AnyInteger struct {
	u integerTree
}

// AnyIntegerOf wraps e, taking ownership of it.
func AnyIntegerOf[K types.IntegerKind](e *Integer[K]) *AnyInteger {
	return &AnyInteger{u: e}
}

// IntegerTree returns the wrapped tree when its kind is K.
func IntegerTree[K types.IntegerKind](a *AnyInteger) (*Integer[K], bool) {
	e, ok := a.u.(*Integer[K])
	return e, ok
}

// Dump writes the wrapped tree prefixed with its type, e.g. (Integer(4) 1).
func (a *AnyInteger) Dump(o Sink)      { dumpTagged(o, a.u.Type(), a.u) }
func (a *AnyInteger) Type() types.Type { return a.u.Type() }
func (a *AnyInteger) Kind() int        { return a.u.Type().Kind }

// Unwrap returns the wrapped tree.
func (a *AnyInteger) Unwrap() Expr { return a.u }

// Fold folds the wrapped tree in place.
func (a *AnyInteger) Fold(at *source.Location, messages Messages) {
	a.u.Fold(at, messages)
}

// Clone returns a deep copy sharing no node with a.
func (a *AnyInteger) Clone() *AnyInteger {
	return &AnyInteger{u: a.u.cloneExpr().(integerTree)}
}

// AnyReal holds a REAL tree of any kind.
type AnyReal struct {
	u realTree
}

// AnyRealOf wraps e, taking ownership of it.
func AnyRealOf[K types.RealKind](e *Real[K]) *AnyReal {
	return &AnyReal{u: e}
}

// RealTree returns the wrapped tree when its kind is K.
func RealTree[K types.RealKind](a *AnyReal) (*Real[K], bool) {
	e, ok := a.u.(*Real[K])
	return e, ok
}

func (a *AnyReal) Dump(o Sink)      { dumpTagged(o, a.u.Type(), a.u) }
func (a *AnyReal) Type() types.Type { return a.u.Type() }
func (a *AnyReal) Kind() int        { return a.u.Type().Kind }
func (a *AnyReal) Unwrap() Expr     { return a.u }
func (a *AnyReal) Clone() *AnyReal  { return &AnyReal{u: a.u.cloneExpr().(realTree)} }

// AnyComplex holds a COMPLEX tree of any kind.
type AnyComplex struct {
	u complexTree
}

// AnyComplexOf wraps e, taking ownership of it.
func AnyComplexOf[K types.RealKind](e *Complex[K]) *AnyComplex {
	return &AnyComplex{u: e}
}

// ComplexTree returns the wrapped tree when its kind is K.
func ComplexTree[K types.RealKind](a *AnyComplex) (*Complex[K], bool) {
	e, ok := a.u.(*Complex[K])
	return e, ok
}

func (a *AnyComplex) Dump(o Sink)        { dumpTagged(o, a.u.Type(), a.u) }
func (a *AnyComplex) Type() types.Type   { return a.u.Type() }
func (a *AnyComplex) Kind() int          { return a.u.Type().Kind }
func (a *AnyComplex) Unwrap() Expr       { return a.u }
func (a *AnyComplex) Clone() *AnyComplex { return &AnyComplex{u: a.u.cloneExpr().(complexTree)} }

// AnyCharacter holds a CHARACTER tree of any kind.
type AnyCharacter struct {
	u characterTree
}

// AnyCharacterOf wraps e, taking ownership of it.
func AnyCharacterOf[K types.CharacterKind](e *Character[K]) *AnyCharacter {
	return &AnyCharacter{u: e}
}

// CharacterTree returns the wrapped tree when its kind is K.
func CharacterTree[K types.CharacterKind](a *AnyCharacter) (*Character[K], bool) {
	e, ok := a.u.(*Character[K])
	return e, ok
}

func (a *AnyCharacter) Dump(o Sink)      { dumpTagged(o, a.u.Type(), a.u) }
func (a *AnyCharacter) Type() types.Type { return a.u.Type() }
func (a *AnyCharacter) Kind() int        { return a.u.Type().Kind }
func (a *AnyCharacter) Unwrap() Expr     { return a.u }

// LEN returns the length of the wrapped tree; see Character.LEN.
func (a *AnyCharacter) LEN() *Integer[types.K8] { return a.u.LEN() }

func (a *AnyCharacter) Clone() *AnyCharacter {
	return &AnyCharacter{u: a.u.cloneExpr().(characterTree)}
}

// AnyIntegerOrReal holds either an AnyInteger or an AnyReal; it is the
// operand of Convert.
type AnyIntegerOrReal struct {
	integer *AnyInteger
	real    *AnyReal
}

// FromAnyInteger wraps a, taking ownership of it.
func FromAnyInteger(a *AnyInteger) *AnyIntegerOrReal { return &AnyIntegerOrReal{integer: a} }

// FromAnyReal wraps a, taking ownership of it.
func FromAnyReal(a *AnyReal) *AnyIntegerOrReal { return &AnyIntegerOrReal{real: a} }

// Integer returns the wrapped integer, if that is the case held.
func (a *AnyIntegerOrReal) Integer() (*AnyInteger, bool) { return a.integer, a.integer != nil }

// Real returns the wrapped real, if that is the case held.
func (a *AnyIntegerOrReal) Real() (*AnyReal, bool) { return a.real, a.real != nil }

func (a *AnyIntegerOrReal) inner() Expr {
	if a.integer != nil {
		return a.integer
	}
	return a.real
}

// Dump delegates to the held wrapper, so the type prefix appears once.
func (a *AnyIntegerOrReal) Dump(o Sink)      { a.inner().Dump(o) }
func (a *AnyIntegerOrReal) Type() types.Type { return a.inner().Type() }

// Fold folds a held integer; reals have no folding rule.
func (a *AnyIntegerOrReal) Fold(at *source.Location, messages Messages) {
	if a.integer != nil {
		a.integer.Fold(at, messages)
	}
}

func (a *AnyIntegerOrReal) Clone() *AnyIntegerOrReal {
	if a.integer != nil {
		return &AnyIntegerOrReal{integer: a.integer.Clone()}
	}
	return &AnyIntegerOrReal{real: a.real.Clone()}
}

func (e *Integer[K]) cloneExpr() Expr   { return e.Clone() }
func (e *Real[K]) cloneExpr() Expr      { return e.Clone() }
func (e *Complex[K]) cloneExpr() Expr   { return e.Clone() }
func (e *Character[K]) cloneExpr() Expr { return e.Clone() }
