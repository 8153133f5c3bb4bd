package evaluate

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/neok-m4700/f18/internal/source"
	"github.com/neok-m4700/f18/internal/types"
	"github.com/neok-m4700/f18/internal/utils/numeric"
)

type said struct {
	at   *source.Location
	text string
}

type recorder struct {
	said []said
}

func (r *recorder) Say(at *source.Location, text string) {
	r.said = append(r.said, said{at: at, text: text})
}

func (r *recorder) texts() []string {
	var texts []string
	for _, s := range r.said {
		texts = append(texts, s.text)
	}
	return texts
}

func i4(v int64) *Integer[types.K4] { return IntegerValue[types.K4](v) }

func TestDump(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"constant", i4(5), "5"},
		{"negative constant", i4(-7), "-7"},
		{"parentheses", Parens(Sum(i4(1), i4(2))), "((1+2))"},
		{"negate", Negated(i4(3)), "(-3)"},
		{"add", Sum(i4(1), i4(2)), "(1+2)"},
		{"subtract", Difference(i4(1), i4(2)), "(1-2)"},
		{"multiply", Product(i4(1), i4(2)), "(1*2)"},
		{"divide", Quotient(i4(1), i4(2)), "(1/2)"},
		{"power", Raised(i4(1), i4(2)), "(1**2)"},
		{"nested", Product(Sum(i4(1), i4(2)), Negated(i4(4))), "((1+2)*(-4))"},
		{"real", RealValue[types.K4](1.5), "0x1.8p+00"},
		{"real past largest", RealValue[types.K2](1e10), "+Inf"},
		{"real below smallest", RealValue[types.K4](-1e-50), "-0x0p+00"},
		{"int power", RaisedToInt(RealValue[types.K8](2), AnyIntegerOf(IntegerValue[types.K8](3))), "(0x1p+01**(Integer(8) 3))"},
		{"convert integer", ToInteger[types.K4](FromAnyInteger(AnyIntegerOf(IntegerValue[types.K8](9)))), "(Integer(8) 9)"},
		{"convert real", ToReal[types.K4](FromAnyReal(AnyRealOf(RealValue[types.K8](0.25)))), "(Real(8) 0x1p-02)"},
		{"complex", ComplexValue[types.K4](1, 2), "(0x1p+00,0x1p+01)"},
		{"complex from parts", ComplexFrom(RealValue[types.K4](1), RealValue[types.K4](-2)), "(0x1p+00,-0x1p+01)"},
		{"real part", RealPartOf(ComplexValue[types.K8](1, 2)), "REAL((0x1p+00,0x1p+01))"},
		{"imaginary part", ImaginaryPartOf(ComplexValue[types.K8](1, 2)), "AIMAG((0x1p+00,0x1p+01))"},
		{"character", CharacterValue[types.K1]("ab"), `"ab"`},
		{"concat", Concatenation(CharacterValue[types.K1]("ab"), CharacterValue[types.K1]("cd")), `"ab"//"cd"`},
		{"true", LogicalValue(true), ".T."},
		{"not", LogicalNot(LogicalValue(false)), "(.NOT..F.)"},
		{"and", LogicalAnd(LogicalValue(true), LogicalValue(false)), "(.T..AND..F.)"},
		{"or", LogicalOr(LogicalValue(true), LogicalValue(false)), "(.T..OR..F.)"},
		{"eqv", LogicalEqv(LogicalValue(true), LogicalValue(true)), "(.T..EQV..T.)"},
		{"neqv", LogicalNeqv(LogicalValue(true), LogicalValue(true)), "(.T..NEQV..T.)"},
		{"compare", Compare(LT, i4(1), i4(2)), "(1.LT.2)"},
		{"compare characters", Compare(GE, CharacterValue[types.K1]("a"), CharacterValue[types.K1]("b")), `("a".GE."b")`},
		{"compare complex", CompareComplex(NotEquals, ComplexValue[types.K4](1, 0), ComplexValue[types.K4](0, 1)), "((0x1p+00,0x0p+00).NE.(0x0p+00,0x1p+00))"},
		{"any integer", AnyIntegerOf(Sum(i4(1), i4(2))), "(Integer(4) (1+2))"},
		{"any real", AnyRealOf(RealValue[types.K2](1)), "(Real(2) 0x1p+00)"},
		{"any complex", AnyComplexOf(ComplexValue[types.K16](0, 0)), "(Complex(16) (0x0p+00,0x0p+00))"},
		{"any character", AnyCharacterOf(CharacterValue[types.K4]("x")), `(Character(4) "x")`},
		{"any integer or real", FromAnyReal(AnyRealOf(RealValue[types.K4](1))), "(Real(4) 0x1p+00)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.expr); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypes(t *testing.T) {
	require.Equal(t, types.Type{Category: types.Integer, Kind: 4}, i4(1).Type())
	require.Equal(t, "Real(10)", RealValue[types.K10](1).Type().Dump())
	require.Equal(t, "Complex(8)", ComplexValue[types.K8](1, 1).Type().Dump())
	require.Equal(t, "Character(2)", CharacterValue[types.K2]("").Type().Dump())
	require.Equal(t, types.LogicalType, Compare(EQ, i4(1), i4(1)).Type())
	require.Equal(t, 8, AnyIntegerOf(IntegerValue[types.K8](0)).Kind())
}

func TestDumpDoesNotMutate(t *testing.T) {
	e := Sum(i4(1), Negated(i4(2)))
	first := String(e)
	require.Equal(t, first, String(e))
	_, ok := e.Constant()
	require.False(t, ok)
}

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		expr *Integer[types.K4]
		want string
		said []string
	}{
		{"constant", i4(7), "7", nil},
		{"add", Sum(i4(5), i4(3)), "8", nil},
		{"negate", Negated(i4(5)), "-5", nil},
		{"multiply", Product(i4(-6), i4(7)), "-42", nil},
		{"parentheses", Parens(Sum(i4(1), i4(2))), "3", nil},
		{"nested", Product(Parens(Sum(i4(1), i4(2))), Negated(i4(4))), "-12", nil},
		{"subtract stays", Difference(i4(5), i4(3)), "(5-3)", nil},
		{"subtract folds operands", Difference(Sum(i4(1), i4(1)), i4(3)), "(2-3)", nil},
		{"divide folds operands", Quotient(i4(6), Parens(i4(3))), "(6/3)", nil},
		{"power folds operands", Raised(Negated(i4(2)), i4(3)), "(-2**3)", nil},
		{"add overflows", Sum(i4(2147483647), i4(1)), "-2147483648", []string{AdditionOverflowed}},
		{"negate overflows", Negated(i4(-2147483648)), "-2147483648", []string{NegationOverflowed}},
		{"multiply overflows", Product(i4(65536), i4(65536)), "0", []string{MultiplicationOverflowed}},
		{"overflow inside", Sum(Product(i4(65536), i4(65536)), i4(1)), "1", []string{MultiplicationOverflowed}},
		{"convert folds operand", ToInteger[types.K4](FromAnyInteger(AnyIntegerOf(Sum(IntegerValue[types.K8](1), IntegerValue[types.K8](2))))), "(Integer(8) 3)", nil},
		{"convert real untouched", ToInteger[types.K4](FromAnyReal(AnyRealOf(RealValue[types.K4](1.5)))), "(Real(4) 0x1.8p+00)", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			tt.expr.Fold(nil, &r)
			require.Equal(t, tt.want, String(tt.expr))
			if diff := cmp.Diff(tt.said, r.texts()); diff != "" {
				t.Errorf("messages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFoldNegateMinimumKind1(t *testing.T) {
	e := Negated(IntegerValue[types.K1](-128))
	var r recorder
	e.Fold(nil, &r)

	v, ok := e.Constant()
	require.True(t, ok)
	require.Equal(t, "-128", v.SignedDecimal())
	require.Equal(t, []string{NegationOverflowed}, r.texts())
}

func TestFoldMultiplyWrapsKind1(t *testing.T) {
	e := Product(IntegerValue[types.K1](200), IntegerValue[types.K1](200))
	var r recorder
	e.Fold(nil, &r)
	require.Equal(t, "64", String(e))
	require.Equal(t, []string{MultiplicationOverflowed}, r.texts())
}

func TestFoldKind16(t *testing.T) {
	var r recorder
	e := Sum(IntegerFrom[types.K16](numeric.MaxInt(128)), IntegerValue[types.K16](1))
	e.Fold(nil, &r)
	require.Equal(t, numeric.MinInt(128).SignedDecimal(), String(e))
	require.Equal(t, []string{AdditionOverflowed}, r.texts())

	r = recorder{}
	e = Product(IntegerFrom[types.K16](numeric.MinInt(128)), IntegerValue[types.K16](-1))
	e.Fold(nil, &r)
	require.Equal(t, numeric.MinInt(128).SignedDecimal(), String(e))
	require.Equal(t, []string{MultiplicationOverflowed}, r.texts())

	r = recorder{}
	x := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 64))
	y := new(big.Int).Lsh(big.NewInt(1), 63)
	e = Product(IntegerFrom[types.K16](numeric.IntFromBig(128, x)), IntegerFrom[types.K16](numeric.IntFromBig(128, y)))
	e.Fold(nil, &r)
	require.Equal(t, numeric.MinInt(128).SignedDecimal(), String(e))
	require.Empty(t, r.texts())
}

func TestRealValueRejectsNaN(t *testing.T) {
	require.Panics(t, func() { RealValue[types.K8](math.NaN()) })
}

func TestFoldSaysAtLocation(t *testing.T) {
	name := "expr.f18x"
	start := source.Position{Line: 2, Column: 3}
	end := source.Position{Line: 2, Column: 20}
	at := source.NewLocation(&name, &start, &end)

	e := Sum(IntegerValue[types.K2](32767), IntegerValue[types.K2](1))
	var r recorder
	e.Fold(at, &r)
	require.Len(t, r.said, 1)
	require.Same(t, at, r.said[0].at)
	require.Equal(t, AdditionOverflowed, r.said[0].text)
}

func TestFoldWithoutMessages(t *testing.T) {
	e := Negated(IntegerValue[types.K8](-9223372036854775808))
	require.NotPanics(t, func() { e.Fold(nil, nil) })
	require.Equal(t, "-9223372036854775808", String(e))
}

func TestFoldIsIdempotent(t *testing.T) {
	e := Sum(Product(i4(3), i4(4)), Difference(i4(1), i4(1)))
	var r recorder
	e.Fold(nil, &r)
	once := String(e)
	e.Fold(nil, &r)
	require.Equal(t, once, String(e))
	require.Equal(t, "(12+(1-1))", once)
}

type bogus struct{}

func (bogus) Dump(o Sink)                          { o.WriteString("?") }
func (bogus) clone() Operation[*Integer[types.K4]] { return bogus{} }
func (bogus) operationOf(*Integer[types.K4])       {}

func TestFoldUnhandledOperationPanics(t *testing.T) {
	e := NewInteger[types.K4](bogus{})
	require.Panics(t, func() { e.Fold(nil, nil) })
}

func TestCloneIsIndependent(t *testing.T) {
	e := Sum(i4(1), Parens(i4(2)))
	c := e.Clone()
	c.Fold(nil, nil)
	require.Equal(t, "(1+(2))", String(e))
	require.Equal(t, "3", String(c))

	a := AnyIntegerOf(Negated(IntegerValue[types.K2](4)))
	b := a.Clone()
	b.Fold(nil, nil)
	require.Equal(t, "(Integer(2) (-4))", String(a))
	require.Equal(t, "(Integer(2) -4)", String(b))

	z := RaisedToInt(ComplexValue[types.K8](1, 1), AnyIntegerOf(Sum(i4(1), i4(1))))
	zc := z.Clone()
	require.Equal(t, String(z), String(zc))

	l := LogicalAnd(Compare(LT, i4(1), i4(2)), LogicalNot(LogicalValue(true)))
	require.Equal(t, String(l), String(l.Clone()))

	ch := AnyCharacterOf(Concatenation(CharacterValue[types.K1]("a"), CharacterValue[types.K1]("b")))
	require.Equal(t, String(ch), String(ch.Clone()))
}

func TestLEN(t *testing.T) {
	k1 := func(s string) *Character[types.K1] { return CharacterValue[types.K1](s) }

	t.Run("constant", func(t *testing.T) {
		n := k1("hello").LEN()
		v, ok := n.Constant()
		require.True(t, ok)
		require.Equal(t, "5", v.SignedDecimal())
		require.Equal(t, types.Type{Category: types.Integer, Kind: types.LengthKind}, n.Type())
	})

	t.Run("concatenation", func(t *testing.T) {
		n := Concatenation(k1("ab"), Concatenation(k1("cd"), k1("e"))).LEN()
		require.Equal(t, "(2+(2+1))", String(n))
		var r recorder
		n.Fold(nil, &r)
		require.Equal(t, "5", String(n))
		require.Empty(t, r.said)
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, "0", String(k1("").LEN()))
	})

	t.Run("kinds count characters", func(t *testing.T) {
		require.Equal(t, "6", String(k1("héllo").LEN()))
		require.Equal(t, "5", String(CharacterValue[types.K2]("héllo").LEN()))
		require.Equal(t, "5", String(CharacterValue[types.K4]("héllo").LEN()))
	})

	t.Run("wrapped", func(t *testing.T) {
		a := AnyCharacterOf(Concatenation(CharacterValue[types.K4]("ab"), CharacterValue[types.K4]("c")))
		n := a.LEN()
		n.Fold(nil, nil)
		require.Equal(t, "3", String(n))
	})
}

func TestWrappers(t *testing.T) {
	a := AnyIntegerOf(i4(1))
	e, ok := IntegerTree[types.K4](a)
	require.True(t, ok)
	require.Equal(t, "1", String(e))
	_, ok = IntegerTree[types.K8](a)
	require.False(t, ok)
	require.Same(t, Expr(e), a.Unwrap())

	r := AnyRealOf(RealValue[types.K8](1))
	_, ok = RealTree[types.K8](r)
	require.True(t, ok)
	_, ok = RealTree[types.K4](r)
	require.False(t, ok)

	z := AnyComplexOf(ComplexValue[types.K10](1, 2))
	_, ok = ComplexTree[types.K10](z)
	require.True(t, ok)

	c := AnyCharacterOf(CharacterValue[types.K2]("a"))
	_, ok = CharacterTree[types.K2](c)
	require.True(t, ok)
	_, ok = CharacterTree[types.K1](c)
	require.False(t, ok)

	ir := FromAnyInteger(AnyIntegerOf(Negated(i4(3))))
	_, isReal := ir.Real()
	require.False(t, isReal)
	held, isInt := ir.Integer()
	require.True(t, isInt)
	ir.Fold(nil, nil)
	require.Equal(t, "(Integer(4) -3)", String(held))
	require.Equal(t, i4(0).Type(), ir.Type())
}

func TestAnyIntegerFold(t *testing.T) {
	a := AnyIntegerOf(Sum(IntegerValue[types.K1](127), IntegerValue[types.K1](1)))
	var r recorder
	a.Fold(nil, &r)
	require.Equal(t, "(Integer(1) -128)", String(a))
	require.Equal(t, []string{AdditionOverflowed}, r.texts())
}

func TestEqualityOperatorOf(t *testing.T) {
	eq, err := EqualityOperatorOf(EQ)
	require.NoError(t, err)
	require.Equal(t, Equals, eq)
	ne, err := EqualityOperatorOf(NE)
	require.NoError(t, err)
	require.Equal(t, NE, ne.Relational())

	_, err = EqualityOperatorOf(LT)
	require.EqualError(t, err, ".LT. is not defined for complex operands")
}
