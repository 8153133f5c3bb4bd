package evaluate

import (
	"github.com/neok-m4700/f18/internal/types"
)

// Logical is a LOGICAL expression: a constant, a connective, or a
// comparison.
type Logical struct {
	u Operation[*Logical]
}

type LogicalConstant struct {
	Value bool
}

func (c *LogicalConstant) Dump(o Sink) {
	if c.Value {
		o.WriteString(".T.")
	} else {
		o.WriteString(".F.")
	}
}
func (c *LogicalConstant) clone() Operation[*Logical] { return &LogicalConstant{Value: c.Value} }
func (*LogicalConstant) operationOf(*Logical)         {}

type Not struct{ Unary[*Logical] }

func (x *Not) Dump(o Sink)                { x.Unary.Dump(o, "(.NOT.") }
func (x *Not) clone() Operation[*Logical] { return &Not{Unary[*Logical]{X: x.X.Clone()}} }
func (*Not) operationOf(*Logical)         {}

type And struct{ connective }

func (x *And) Dump(o Sink)                { x.connective.Dump(o, ".AND.") }
func (x *And) clone() Operation[*Logical] { return &And{cloneConnective(&x.connective)} }
func (*And) operationOf(*Logical)         {}

type Or struct{ connective }

func (x *Or) Dump(o Sink)                { x.connective.Dump(o, ".OR.") }
func (x *Or) clone() Operation[*Logical] { return &Or{cloneConnective(&x.connective)} }
func (*Or) operationOf(*Logical)         {}

type Eqv struct{ connective }

func (x *Eqv) Dump(o Sink)                { x.connective.Dump(o, ".EQV.") }
func (x *Eqv) clone() Operation[*Logical] { return &Eqv{cloneConnective(&x.connective)} }
func (*Eqv) operationOf(*Logical)         {}

type Neqv struct{ connective }

func (x *Neqv) Dump(o Sink)                { x.connective.Dump(o, ".NEQV.") }
func (x *Neqv) clone() Operation[*Logical] { return &Neqv{cloneConnective(&x.connective)} }
func (*Neqv) operationOf(*Logical)         {}

type connective = Binary[*Logical, *Logical]

func cloneConnective(b *connective) connective {
	return connective{X: b.X.Clone(), Y: b.Y.Clone()}
}

// NewLogical makes a tree of op, which becomes owned by the tree.
func NewLogical(op Operation[*Logical]) *Logical { return &Logical{u: op} }

func (e *Logical) Dump(o Sink)      { e.u.Dump(o) }
func (e *Logical) Type() types.Type { return types.LogicalType }

// Operation returns the current variant.
func (e *Logical) Operation() Operation[*Logical] { return e.u }

// Constant returns the value when the tree is a constant.
func (e *Logical) Constant() (bool, bool) {
	if c, ok := e.u.(*LogicalConstant); ok {
		return c.Value, true
	}
	return false, false
}

// Clone returns a deep copy sharing no node with e.
func (e *Logical) Clone() *Logical { return &Logical{u: e.u.clone()} }
