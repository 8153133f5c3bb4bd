package numeric

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestNewIntWraps(t *testing.T) {
	tests := []struct {
		bits int
		in   int64
		want string
	}{
		{8, 200, "-56"},
		{8, 127, "127"},
		{8, 128, "-128"},
		{8, -129, "127"},
		{8, 256, "0"},
		{16, 40000, "-25536"},
		{32, 5, "5"},
		{64, -9223372036854775808, "-9223372036854775808"},
		{128, -1, "-1"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.bits, tt.in), func(t *testing.T) {
			require.Equal(t, tt.want, NewInt(tt.bits, tt.in).SignedDecimal())
		})
	}
}

func TestParseInt(t *testing.T) {
	v, err := ParseInt(8, "-128")
	require.NoError(t, err)
	require.True(t, v.Equal(MinInt(8)))

	v, err = ParseInt(128, "0x7FFF_FFFF_FFFF_FFFF_FFFF_FFFF_FFFF_FFFF")
	require.NoError(t, err)
	require.True(t, v.Equal(MaxInt(128)))

	_, err = ParseInt(8, "128")
	require.ErrorContains(t, err, "integer literal 128 overflows 8-bit integer")

	_, err = ParseInt(32, "twelve")
	require.ErrorContains(t, err, "invalid integer literal")
}

func TestHexadecimal(t *testing.T) {
	require.Equal(t, "ff", NewInt(8, -1).Hexadecimal())
	require.Equal(t, "80", MinInt(8).Hexadecimal())
	require.Equal(t, "0005", NewInt(16, 5).Hexadecimal())
	require.Equal(t, "7fffffff", MaxInt(32).Hexadecimal())
	require.Equal(t, "c8", fmt.Sprintf("%x", NewInt(8, -56)))
	require.Equal(t, "-56", fmt.Sprintf("%d", NewInt(8, -56)))
}

func TestNegate(t *testing.T) {
	r := MinInt(8).Negate()
	require.True(t, r.Overflow)
	require.Equal(t, "-128", r.Value.SignedDecimal())

	r = NewInt(8, 127).Negate()
	require.False(t, r.Overflow)
	require.Equal(t, "-127", r.Value.SignedDecimal())

	r = NewInt(32, 0).Negate()
	require.False(t, r.Overflow)
	require.Equal(t, 0, r.Value.Sign())
}

func TestAddSigned(t *testing.T) {
	r := NewInt(32, 5).AddSigned(NewInt(32, 3))
	require.False(t, r.Overflow)
	require.Equal(t, "8", r.Value.SignedDecimal())

	r = MaxInt(16).AddSigned(NewInt(16, 1))
	require.True(t, r.Overflow)
	require.True(t, r.Value.Equal(MinInt(16)))

	r = MinInt(64).AddSigned(NewInt(64, -1))
	require.True(t, r.Overflow)
	require.True(t, r.Value.Equal(MaxInt(64)))
}

func TestSubtractSigned(t *testing.T) {
	r := NewInt(8, 5).SubtractSigned(NewInt(8, 3))
	require.False(t, r.Overflow)
	require.Equal(t, "2", r.Value.SignedDecimal())

	r = MinInt(8).SubtractSigned(NewInt(8, 1))
	require.True(t, r.Overflow)
	require.True(t, r.Value.Equal(MaxInt(8)))
}

func TestMultiplySigned(t *testing.T) {
	// 200 wraps to -56 at one byte; (-56)*(-56) = 3136 = 0x0c40
	x := NewInt(8, 200)
	p := x.MultiplySigned(x)
	require.True(t, p.SignedMultiplicationOverflowed())
	require.Equal(t, "64", p.Lower.SignedDecimal())
	require.Equal(t, "12", p.Upper.SignedDecimal())

	p = NewInt(8, -8).MultiplySigned(NewInt(8, 16))
	require.False(t, p.SignedMultiplicationOverflowed())
	require.Equal(t, "-128", p.Lower.SignedDecimal())
	require.Equal(t, "-1", p.Upper.SignedDecimal())

	p = NewInt(8, 8).MultiplySigned(NewInt(8, 16))
	require.True(t, p.SignedMultiplicationOverflowed())
	require.Equal(t, "-128", p.Lower.SignedDecimal())
	require.Equal(t, "0", p.Upper.SignedDecimal())
}

func TestSigned128(t *testing.T) {
	r := MaxInt(128).AddSigned(NewInt(128, 1))
	require.True(t, r.Overflow)
	require.True(t, r.Value.Equal(MinInt(128)))

	r = MinInt(128).Negate()
	require.True(t, r.Overflow)
	require.True(t, r.Value.Equal(MinInt(128)))

	p := MinInt(128).MultiplySigned(NewInt(128, -1))
	require.True(t, p.SignedMultiplicationOverflowed())
	require.True(t, p.Lower.Equal(MinInt(128)))
	require.Equal(t, "0", p.Upper.SignedDecimal())

	// -2^64 * 2^63 lands exactly on the minimum
	x := IntFromBig(128, new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 64)))
	y := IntFromBig(128, new(big.Int).Lsh(big.NewInt(1), 63))
	p = x.MultiplySigned(y)
	require.False(t, p.SignedMultiplicationOverflowed())
	require.True(t, p.Lower.Equal(MinInt(128)))
	require.Equal(t, "-1", p.Upper.SignedDecimal())

	p = y.MultiplySigned(IntFromBig(128, new(big.Int).Lsh(big.NewInt(1), 64)))
	require.True(t, p.SignedMultiplicationOverflowed())
	require.True(t, p.Lower.Equal(MinInt(128)))
}

func TestMixedWidthsPanic(t *testing.T) {
	require.Panics(t, func() { NewInt(8, 1).AddSigned(NewInt(16, 1)) })
}

// Overflow must be flagged exactly when the mathematical result leaves the
// signed range, and the stored value must be the result modulo 2^bits.
func TestOverflowExactness(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	inRange := func(v *big.Int, bits int) bool { return FitsInBitSize(v, bits, true) }
	wrapped := func(v *big.Int, bits int) string { return IntFromBig(bits, v).SignedDecimal() }

	properties.Property("8-bit addition", prop.ForAll(
		func(a, b int8) bool {
			exact := big.NewInt(int64(a) + int64(b))
			r := NewInt(8, int64(a)).AddSigned(NewInt(8, int64(b)))
			return r.Overflow == !inRange(exact, 8) && r.Value.SignedDecimal() == wrapped(exact, 8)
		},
		gen.Int8(), gen.Int8(),
	))

	properties.Property("8-bit multiplication", prop.ForAll(
		func(a, b int8) bool {
			exact := big.NewInt(int64(a) * int64(b))
			p := NewInt(8, int64(a)).MultiplySigned(NewInt(8, int64(b)))
			return p.SignedMultiplicationOverflowed() == !inRange(exact, 8) &&
				p.Lower.SignedDecimal() == wrapped(exact, 8)
		},
		gen.Int8(), gen.Int8(),
	))

	properties.Property("16-bit negation", prop.ForAll(
		func(a int16) bool {
			exact := big.NewInt(-int64(a))
			r := NewInt(16, int64(a)).Negate()
			return r.Overflow == !inRange(exact, 16) && r.Value.SignedDecimal() == wrapped(exact, 16)
		},
		gen.Int16(),
	))

	properties.Property("32-bit multiplication", prop.ForAll(
		func(a, b int32) bool {
			exact := big.NewInt(int64(a) * int64(b))
			p := NewInt(32, int64(a)).MultiplySigned(NewInt(32, int64(b)))
			return p.SignedMultiplicationOverflowed() == !inRange(exact, 32) &&
				p.Lower.SignedDecimal() == wrapped(exact, 32)
		},
		gen.Int32(), gen.Int32(),
	))

	properties.Property("64-bit addition", prop.ForAll(
		func(a, b int64) bool {
			exact := new(big.Int).Add(big.NewInt(a), big.NewInt(b))
			r := NewInt(64, a).AddSigned(NewInt(64, b))
			return r.Overflow == !inRange(exact, 64) && r.Value.SignedDecimal() == wrapped(exact, 64)
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("128-bit addition", prop.ForAll(
		func(a, b int64) bool {
			x := new(big.Int).Lsh(big.NewInt(a), 64)
			y := new(big.Int).Lsh(big.NewInt(b), 64)
			exact := new(big.Int).Add(x, y)
			r := IntFromBig(128, x).AddSigned(IntFromBig(128, y))
			return r.Overflow == !inRange(exact, 128) && r.Value.SignedDecimal() == wrapped(exact, 128)
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("128-bit multiplication", prop.ForAll(
		func(a, b int64) bool {
			x := new(big.Int).Lsh(big.NewInt(a), 63)
			exact := new(big.Int).Mul(x, big.NewInt(b))
			p := IntFromBig(128, x).MultiplySigned(NewInt(128, b))
			return p.SignedMultiplicationOverflowed() == !inRange(exact, 128) &&
				p.Lower.SignedDecimal() == wrapped(exact, 128)
		},
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}
