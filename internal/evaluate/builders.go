package evaluate

import (
	"github.com/neok-m4700/f18/internal/types"
	"github.com/neok-m4700/f18/internal/utils/numeric"
)

// The builders take ownership of their operands. Pass Clone() to reuse a
// subtree.

// IntegerValue is the constant v of kind K, wrapped to the kind's width.
func IntegerValue[K types.IntegerKind](v int64) *Integer[K] {
	return NewInteger[K](&IntegerConstant[K]{Value: numeric.NewInt(integerBits[K](), v)})
}

// IntegerFrom is the constant v, which must have the width of kind K.
func IntegerFrom[K types.IntegerKind](v numeric.Int) *Integer[K] {
	if v.Bits() != integerBits[K]() {
		v = numeric.IntFromBig(integerBits[K](), v.Big())
	}
	return NewInteger[K](&IntegerConstant[K]{Value: v})
}

// RealValue is v rounded to kind K. v must not be NaN.
func RealValue[K types.RealKind](v float64) *Real[K] {
	return NewReal[K](&RealConstant[K]{Value: numeric.NewReal(types.KindOf[K](), v)})
}

// RealFrom is the constant v rounded to kind K.
func RealFrom[K types.RealKind](v numeric.Real) *Real[K] {
	if v.Kind() != types.KindOf[K]() {
		v = numeric.RealFromBig(types.KindOf[K](), v.Big())
	}
	return NewReal[K](&RealConstant[K]{Value: v})
}

// ComplexValue is re + i*im rounded to kind K.
func ComplexValue[K types.RealKind](re, im float64) *Complex[K] {
	return NewComplex[K](&ComplexConstant[K]{Value: numeric.NewComplex(types.KindOf[K](), re, im)})
}

// ComplexFromParts is the constant with the given parts rounded to kind K.
func ComplexFromParts[K types.RealKind](re, im numeric.Real) *Complex[K] {
	kind := types.KindOf[K]()
	return NewComplex[K](&ComplexConstant[K]{Value: numeric.Complex{
		Re: numeric.RealFromBig(kind, re.Big()),
		Im: numeric.RealFromBig(kind, im.Big()),
	}})
}

// CharacterValue is the literal s.
func CharacterValue[K types.CharacterKind](s string) *Character[K] {
	return NewCharacter[K](&CharacterConstant[K]{Value: s})
}

// LogicalValue is .T. or .F.
func LogicalValue(b bool) *Logical {
	return NewLogical(&LogicalConstant{Value: b})
}

func Parens[T Arithmetic[T]](x T) T {
	return x.wrap(&Parentheses[T]{Unary[T]{X: x}})
}

func Negated[T Arithmetic[T]](x T) T {
	return x.wrap(&Negate[T]{Unary[T]{X: x}})
}

func Sum[T Arithmetic[T]](x, y T) T {
	return x.wrap(&Add[T]{Binary[T, T]{X: x, Y: y}})
}

func Difference[T Arithmetic[T]](x, y T) T {
	return x.wrap(&Subtract[T]{Binary[T, T]{X: x, Y: y}})
}

func Product[T Arithmetic[T]](x, y T) T {
	return x.wrap(&Multiply[T]{Binary[T, T]{X: x, Y: y}})
}

func Quotient[T Arithmetic[T]](x, y T) T {
	return x.wrap(&Divide[T]{Binary[T, T]{X: x, Y: y}})
}

func Raised[T Arithmetic[T]](x, y T) T {
	return x.wrap(&Power[T]{Binary[T, T]{X: x, Y: y}})
}

// RaisedToInt raises a real or complex to an integer power of any kind.
func RaisedToInt[T Floating[T]](x T, n *AnyInteger) T {
	return x.wrap(&IntPower[T]{Binary[T, *AnyInteger]{X: x, Y: n}})
}

// ToInteger converts x to an integer of kind K.
func ToInteger[K types.IntegerKind](x *AnyIntegerOrReal) *Integer[K] {
	return NewInteger[K](&Convert[*Integer[K]]{Unary[*AnyIntegerOrReal]{X: x}})
}

// ToReal converts x to a real of kind K.
func ToReal[K types.RealKind](x *AnyIntegerOrReal) *Real[K] {
	return NewReal[K](&Convert[*Real[K]]{Unary[*AnyIntegerOrReal]{X: x}})
}

func RealPartOf[K types.RealKind](z *Complex[K]) *Real[K] {
	return NewReal[K](&RealPart[K]{Unary[*Complex[K]]{X: z}})
}

func ImaginaryPartOf[K types.RealKind](z *Complex[K]) *Real[K] {
	return NewReal[K](&ImaginaryPart[K]{Unary[*Complex[K]]{X: z}})
}

// ComplexFrom builds (re,im).
func ComplexFrom[K types.RealKind](re, im *Real[K]) *Complex[K] {
	return NewComplex[K](&Construct[K]{Binary[*Real[K], *Real[K]]{X: re, Y: im}})
}

func Concatenation[K types.CharacterKind](x, y *Character[K]) *Character[K] {
	return NewCharacter[K](&Concat[K]{Binary[*Character[K], *Character[K]]{X: x, Y: y}})
}

func LogicalNot(x *Logical) *Logical {
	return NewLogical(&Not{Unary[*Logical]{X: x}})
}

func LogicalAnd(x, y *Logical) *Logical  { return NewLogical(&And{connective{X: x, Y: y}}) }
func LogicalOr(x, y *Logical) *Logical   { return NewLogical(&Or{connective{X: x, Y: y}}) }
func LogicalEqv(x, y *Logical) *Logical  { return NewLogical(&Eqv{connective{X: x, Y: y}}) }
func LogicalNeqv(x, y *Logical) *Logical { return NewLogical(&Neqv{connective{X: x, Y: y}}) }

// Compare relates two integers, reals or characters of the same kind.
func Compare[T Ordered[T]](op RelationalOperator, x, y T) *Logical {
	return NewLogical(&Comparison[T]{Op: op, Binary: Binary[T, T]{X: x, Y: y}})
}

// CompareComplex tests two complexes of the same kind for (in)equality.
func CompareComplex[K types.RealKind](op EqualityOperator, x, y *Complex[K]) *Logical {
	return NewLogical(&ComplexComparison[K]{Op: op, Binary: Binary[*Complex[K], *Complex[K]]{X: x, Y: y}})
}
