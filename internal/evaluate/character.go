package evaluate

import (
	"unicode/utf8"

	"github.com/neok-m4700/f18/internal/types"
)

// Character is a CHARACTER expression of kind K: a literal or a
// concatenation.
type Character[K types.CharacterKind] struct {
	u Operation[*Character[K]]
}

// CharacterConstant is literal text, held as UTF-8 for every kind.
type CharacterConstant[K types.CharacterKind] struct {
	Value string
}

func (c *CharacterConstant[K]) Dump(o Sink) {
	o.WriteByte('"')
	o.WriteString(c.Value)
	o.WriteByte('"')
}
func (c *CharacterConstant[K]) clone() Operation[*Character[K]] {
	return &CharacterConstant[K]{Value: c.Value}
}
func (*CharacterConstant[K]) operationOf(*Character[K]) {}

// Len is the number of characters: bytes for kind 1, code points otherwise.
func (c *CharacterConstant[K]) Len() int {
	if types.KindOf[K]() == 1 {
		return len(c.Value)
	}
	return utf8.RuneCountInString(c.Value)
}

// Concat dumps as x//y, without parentheses.
type Concat[K types.CharacterKind] struct {
	Binary[*Character[K], *Character[K]]
}

func (x *Concat[K]) Dump(o Sink) {
	x.X.Dump(o)
	o.WriteString("//")
	x.Y.Dump(o)
}
func (x *Concat[K]) clone() Operation[*Character[K]] {
	return &Concat[K]{Binary[*Character[K], *Character[K]]{X: x.X.Clone(), Y: x.Y.Clone()}}
}
func (*Concat[K]) operationOf(*Character[K]) {}

// NewCharacter makes a tree of op, which becomes owned by the tree.
func NewCharacter[K types.CharacterKind](op Operation[*Character[K]]) *Character[K] {
	return &Character[K]{u: op}
}

func (e *Character[K]) Dump(o Sink)      { e.u.Dump(o) }
func (e *Character[K]) Type() types.Type { return types.Of[K](types.Character) }

// Operation returns the current variant.
func (e *Character[K]) Operation() Operation[*Character[K]] { return e.u }

// Constant returns the text when the tree is a literal.
func (e *Character[K]) Constant() (string, bool) {
	if c, ok := e.u.(*CharacterConstant[K]); ok {
		return c.Value, true
	}
	return "", false
}

// LEN builds the length of e as an expression. A literal yields its length
// as a constant; a concatenation yields the unevaluated sum of the operand
// lengths.
func (e *Character[K]) LEN() *Integer[types.K8] {
	switch x := e.u.(type) {
	case *CharacterConstant[K]:
		return IntegerValue[types.K8](int64(x.Len()))
	case *Concat[K]:
		return Sum(x.X.LEN(), x.Y.LEN())
	default:
		panic(unhandled(x))
	}
}

// Clone returns a deep copy sharing no node with e.
func (e *Character[K]) Clone() *Character[K] { return &Character[K]{u: e.u.clone()} }

func (*Character[K]) ordered()         {}
func (*Character[K]) isCharacterTree() {}
