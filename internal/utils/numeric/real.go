package numeric

import (
	"math"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// realFormat is the storage of one REAL kind: the significand precision,
// counting the implicit leading bit, and the largest unbiased exponent of
// a finite value. The smallest normal exponent is 1-maxExp.
type realFormat struct {
	precision uint
	maxExp    int
}

var realFormats = map[int]realFormat{
	2:  {11, 15},     // IEEE binary16
	4:  {24, 127},    // IEEE binary32
	8:  {53, 1023},   // IEEE binary64
	10: {64, 16383},  // x87 extended
	16: {113, 16383}, // IEEE binary128
}

// ErrRealOverflow marks a literal whose magnitude exceeds the largest
// finite value of its kind.
var ErrRealOverflow = errors.New("real literal overflows its kind")

// SignificandBits returns the significand precision of a REAL kind.
func SignificandBits(kind int) (uint, bool) {
	f, ok := realFormats[kind]
	return f.precision, ok
}

// Real is an immutable binary floating-point value that one REAL kind can
// hold: rounded to its significand precision, with gradual underflow below
// the smallest normal and infinities past the largest finite value.
type Real struct {
	kind int
	f    *big.Float
}

func formatOf(kind int) realFormat {
	f, ok := realFormats[kind]
	if !ok {
		panic(errors.AssertionFailedf("no REAL kind %d", errors.Safe(kind)))
	}
	return f
}

func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetMode(big.ToNearestEven)
}

// roundToKind rounds v to the nearest value of kind, ties to even.
func roundToKind(kind int, v *big.Float) *big.Float {
	f := formatOf(kind)
	z := newFloat(f.precision)
	if v.IsInf() || v.Sign() == 0 {
		return z.Set(v)
	}

	// the leading bit of v has weight 2^lead
	lead := v.MantExp(nil) - 1
	minExp := 1 - f.maxExp
	if lead >= minExp {
		z.Set(v)
		if z.MantExp(nil)-1 > f.maxExp {
			z.SetInf(v.Signbit())
		}
		return z
	}

	// subnormal: only the bits at or above 2^(minExp-precision+1) survive
	bits := int(f.precision) - (minExp - lead)
	if bits >= 1 {
		return z.Set(newFloat(uint(bits)).Set(v))
	}
	tiny := minExp - int(f.precision) + 1
	half := new(big.Float).SetMantExp(big.NewFloat(1), tiny-1)
	if bits == 0 && new(big.Float).Abs(v).Cmp(half) > 0 {
		z.SetMantExp(big.NewFloat(1), tiny)
	}
	if v.Signbit() {
		z.Neg(z)
	}
	return z
}

// NewReal rounds v to kind. v must not be NaN.
func NewReal(kind int, v float64) Real {
	if math.IsNaN(v) {
		panic(errors.AssertionFailedf("NaN is not a REAL(%d) value", errors.Safe(kind)))
	}
	return Real{kind: kind, f: roundToKind(kind, new(big.Float).SetFloat64(v))}
}

// RealFromBig rounds v to kind. v is not retained.
func RealFromBig(kind int, v *big.Float) Real {
	return Real{kind: kind, f: roundToKind(kind, v)}
}

// ParseReal reads a decimal or scientific literal (underscores allowed) and
// rounds it to kind. Integer literals are accepted too. Literals too small
// for the kind underflow to a subnormal or zero; literals too large fail
// with ErrRealOverflow.
func ParseReal(kind int, literal string) (Real, error) {
	s := strings.ReplaceAll(literal, "_", "")
	if !IsFloat(s) && !IsDecimal(s) {
		return Real{}, errors.Newf("invalid real literal: %s", literal)
	}
	f, _, err := newFloat(formatOf(kind).precision+64).Parse(s, 10)
	if err != nil {
		return Real{}, errors.Wrapf(err, "invalid real literal: %s", literal)
	}
	r := RealFromBig(kind, f)
	if r.f.IsInf() {
		return Real{}, errors.Mark(
			errors.Newf("real literal %s overflows REAL(%d)", literal, errors.Safe(kind)), ErrRealOverflow)
	}
	return r, nil
}

func (r Real) Kind() int { return r.kind }

// Big returns a copy of the value.
func (r Real) Big() *big.Float { return new(big.Float).Copy(r.f) }

func (r Real) Float64() float64 {
	v, _ := r.f.Float64()
	return v
}

func (r Real) IsNegative() bool { return r.f.Signbit() }

// Equal reports whether kind and value both match.
func (r Real) Equal(other Real) bool {
	return r.kind == other.kind && r.f.Cmp(other.f) == 0
}

// Hexadecimal renders the exact value as a hexadecimal significand with a
// binary exponent, e.g. 0x1.8p+00 for 1.5.
func (r Real) Hexadecimal() string {
	return r.f.Text('x', -1)
}

// ExactDecimal renders the exact value in plain decimal notation. Every
// binary fraction has a finite decimal expansion.
func (r Real) ExactDecimal() string {
	if r.f.IsInf() {
		if r.f.Signbit() {
			return "-Inf"
		}
		return "+Inf"
	}
	if r.f.Sign() == 0 {
		if r.f.Signbit() {
			return "-0"
		}
		return "0"
	}

	// r = m * 2^exp with an integer m
	mant := new(big.Float)
	exp := r.f.MantExp(mant)
	prec := int(r.f.MinPrec())
	mant.SetMantExp(mant, prec)
	m, _ := mant.Int(nil)
	exp -= prec
	if exp >= 0 {
		return m.Lsh(m, uint(exp)).String()
	}

	// m * 2^exp == m * 5^-exp * 10^exp
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	m.Mul(m, five)
	d := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(m), int32(exp))
	d.Reduce(d)
	return d.Text('f')
}

func (r Real) String() string { return r.Hexadecimal() }

// Complex is a pair of reals of the same kind.
type Complex struct {
	Re Real
	Im Real
}

// NewComplex rounds both parts to the precision of kind.
func NewComplex(kind int, re, im float64) Complex {
	return Complex{Re: NewReal(kind, re), Im: NewReal(kind, im)}
}

func (c Complex) Kind() int { return c.Re.kind }

func (c Complex) Equal(other Complex) bool {
	return c.Re.Equal(other.Re) && c.Im.Equal(other.Im)
}

// Hexadecimal renders both parts as "(re,im)".
func (c Complex) Hexadecimal() string {
	return "(" + c.Re.Hexadecimal() + "," + c.Im.Hexadecimal() + ")"
}

// ExactDecimal renders both parts as "(re,im)".
func (c Complex) ExactDecimal() string {
	return "(" + c.Re.ExactDecimal() + "," + c.Im.ExactDecimal() + ")"
}

func (c Complex) String() string { return c.Hexadecimal() }
