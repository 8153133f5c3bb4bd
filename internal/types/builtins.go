package types

// Kind is implemented by the marker types that select a precision at compile
// time. Expression trees are generic over one of the closed kind sets below.
type Kind interface {
	Bytes() int
}

type (
	K1  struct{}
	K2  struct{}
	K4  struct{}
	K8  struct{}
	K10 struct{}
	K16 struct{}
)

func (K1) Bytes() int  { return 1 }
func (K2) Bytes() int  { return 2 }
func (K4) Bytes() int  { return 4 }
func (K8) Bytes() int  { return 8 }
func (K10) Bytes() int { return 10 }
func (K16) Bytes() int { return 16 }

// IntegerKind is the closed set of INTEGER precisions.
type IntegerKind interface {
	K1 | K2 | K4 | K8 | K16
	Kind
}

// RealKind is the closed set of REAL and COMPLEX precisions.
type RealKind interface {
	K2 | K4 | K8 | K10 | K16
	Kind
}

// CharacterKind is the closed set of CHARACTER kinds.
type CharacterKind interface {
	K1 | K2 | K4
	Kind
}

// KindOf returns the byte size selected by K.
func KindOf[K Kind]() int {
	var k K
	return k.Bytes()
}

var (
	IntegerKinds   = []int{1, 2, 4, 8, 16}
	RealKinds      = []int{2, 4, 8, 10, 16}
	ComplexKinds   = RealKinds
	CharacterKinds = []int{1, 2, 4}
)

// LengthKind is the integer kind of character lengths and other type
// parameter values.
const LengthKind = 8
