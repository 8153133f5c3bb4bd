package numeric

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
)

// Int is an immutable two's-complement integer of a fixed bit width.
// The zero value is not usable; build one with NewInt, IntFromBig or ParseInt.
type Int struct {
	bits int
	v    *big.Int // always within [MinInt(bits), MaxInt(bits)]
}

// ValueWithOverflow is the wrapped result of an operation together with a
// flag telling whether the exact result did not fit.
type ValueWithOverflow struct {
	Value    Int
	Overflow bool
}

// Product is the exact double-width result of a multiplication split into
// its high and low halves.
type Product struct {
	Upper Int
	Lower Int
}

func modulus(bits int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(bits))
}

// wrap reduces x into the signed range of the given width.
func wrap(bits int, x *big.Int) *big.Int {
	m := modulus(bits)
	r := new(big.Int).Mod(x, m)
	if r.Cmp(new(big.Int).Rsh(m, 1)) >= 0 {
		r.Sub(r, m)
	}
	return r
}

// NewInt wraps v into a bits-wide integer.
func NewInt(bits int, v int64) Int {
	return IntFromBig(bits, big.NewInt(v))
}

// IntFromBig wraps v into a bits-wide integer. v is not retained.
func IntFromBig(bits int, v *big.Int) Int {
	if bits <= 0 {
		panic(errors.AssertionFailedf("integer width must be positive, got %d", errors.Safe(bits)))
	}
	return Int{bits: bits, v: wrap(bits, v)}
}

// ParseInt reads a literal (decimal, 0x, 0o or 0b, underscores allowed) and
// fails when it does not fit the signed range of the width.
func ParseInt(bits int, literal string) (Int, error) {
	v, err := StringToBigInt(literal)
	if err != nil {
		return Int{}, err
	}
	if !FitsInBitSize(v, bits, true) {
		return Int{}, errors.Newf("integer literal %s overflows %d-bit integer", literal, errors.Safe(bits))
	}
	return Int{bits: bits, v: v}, nil
}

// MinInt returns the most negative bits-wide value.
func MinInt(bits int) Int {
	return Int{bits: bits, v: new(big.Int).Neg(new(big.Int).Rsh(modulus(bits), 1))}
}

// MaxInt returns the most positive bits-wide value.
func MaxInt(bits int) Int {
	m := new(big.Int).Rsh(modulus(bits), 1)
	return Int{bits: bits, v: m.Sub(m, big.NewInt(1))}
}

func (i Int) Bits() int { return i.bits }

// Big returns a copy of the value.
func (i Int) Big() *big.Int { return new(big.Int).Set(i.v) }

// Int64 returns the value when it fits in an int64.
func (i Int) Int64() (int64, bool) {
	if !i.v.IsInt64() {
		return 0, false
	}
	return i.v.Int64(), true
}

func (i Int) Sign() int        { return i.v.Sign() }
func (i Int) IsNegative() bool { return i.v.Sign() < 0 }

// Cmp compares the values, ignoring the widths.
func (i Int) Cmp(other Int) int { return i.v.Cmp(other.v) }

// Equal reports whether width and value both match.
func (i Int) Equal(other Int) bool {
	return i.bits == other.bits && i.v.Cmp(other.v) == 0
}

// SignedDecimal renders the value in base 10 with a leading '-' when negative.
func (i Int) SignedDecimal() string { return i.v.String() }

// Hexadecimal renders the two's-complement bit pattern, zero-padded to the
// full width.
func (i Int) Hexadecimal() string {
	u := new(big.Int).Set(i.v)
	if u.Sign() < 0 {
		u.Add(u, modulus(i.bits))
	}
	digits := (i.bits + 3) / 4
	s := u.Text(16)
	if pad := digits - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}

func (i Int) String() string { return i.SignedDecimal() }

// Format implements fmt.Formatter so %d and %v print the decimal value.
func (i Int) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x':
		fmt.Fprint(f, i.Hexadecimal())
	default:
		fmt.Fprint(f, i.SignedDecimal())
	}
}

func (i Int) sameWidth(other Int) {
	if i.bits != other.bits {
		panic(errors.AssertionFailedf("mixed integer widths %d and %d", errors.Safe(i.bits), errors.Safe(other.bits)))
	}
}

// Negate returns -i. Only the most negative value overflows, yielding itself.
func (i Int) Negate() ValueWithOverflow {
	exact := new(big.Int).Neg(i.v)
	return ValueWithOverflow{
		Value:    IntFromBig(i.bits, exact),
		Overflow: !FitsInBitSize(exact, i.bits, true),
	}
}

// AddSigned returns i+y wrapped to the width.
func (i Int) AddSigned(y Int) ValueWithOverflow {
	i.sameWidth(y)
	exact := new(big.Int).Add(i.v, y.v)
	return ValueWithOverflow{
		Value:    IntFromBig(i.bits, exact),
		Overflow: !FitsInBitSize(exact, i.bits, true),
	}
}

// SubtractSigned returns i-y wrapped to the width.
func (i Int) SubtractSigned(y Int) ValueWithOverflow {
	i.sameWidth(y)
	exact := new(big.Int).Sub(i.v, y.v)
	return ValueWithOverflow{
		Value:    IntFromBig(i.bits, exact),
		Overflow: !FitsInBitSize(exact, i.bits, true),
	}
}

// MultiplySigned returns the full 2*bits product of i and y.
func (i Int) MultiplySigned(y Int) Product {
	i.sameWidth(y)
	exact := new(big.Int).Mul(i.v, y.v)
	// Rsh on a negative big.Int rounds toward negative infinity, which is the
	// arithmetic shift of the two's-complement pattern.
	upper := new(big.Int).Rsh(exact, uint(i.bits))
	return Product{
		Upper: IntFromBig(i.bits, upper),
		Lower: IntFromBig(i.bits, exact),
	}
}

// SignedMultiplicationOverflowed reports whether the upper half is anything
// other than the sign extension of the lower half.
func (p Product) SignedMultiplicationOverflowed() bool {
	want := int64(0)
	if p.Lower.IsNegative() {
		want = -1
	}
	return p.Upper.v.Cmp(big.NewInt(want)) != 0
}
