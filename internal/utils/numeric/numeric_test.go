package numeric

import (
	"math/big"
	"testing"
)

func TestLiteralClassification(t *testing.T) {
	tests := []struct {
		input   string
		integer bool
		float   bool
	}{
		{"42", true, false},
		{"-7", true, false},
		{"1_000", true, false},
		{"0xFF", true, false},
		{"0o17", true, false},
		{"0b1010", true, false},
		{"1.5", false, true},
		{"-2.25", false, true},
		{"1e10", false, true},
		{"1.2e-3", false, true},
		{"abc", false, false},
		{"1.", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsInteger(tt.input); got != tt.integer {
				t.Errorf("IsInteger(%q) = %v, want %v", tt.input, got, tt.integer)
			}
			if got := IsFloat(tt.input); got != tt.float {
				t.Errorf("IsFloat(%q) = %v, want %v", tt.input, got, tt.float)
			}
		})
	}
}

func TestStringToBigInt(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"-42", "-42"},
		{"1_000_000", "1000000"},
		{"0xff", "255"},
		{"-0x80", "-128"},
		{"0o777", "511"},
		{"0b1111", "15"},
		{"170141183460469231731687303715884105727", "170141183460469231731687303715884105727"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := StringToBigInt(tt.input)
			if err != nil {
				t.Fatalf("StringToBigInt(%q) error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("StringToBigInt(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}

	if _, err := StringToBigInt("1.5"); err == nil {
		t.Error("StringToBigInt(\"1.5\") should fail")
	}
}

func TestFitsInBitSize(t *testing.T) {
	tests := []struct {
		value   int64
		bitSize int
		signed  bool
		want    bool
	}{
		{127, 8, true, true},
		{128, 8, true, false},
		{-128, 8, true, true},
		{-129, 8, true, false},
		{255, 8, false, true},
		{256, 8, false, false},
		{-1, 8, false, false},
		{32767, 16, true, true},
		{-32769, 16, true, false},
	}

	for _, tt := range tests {
		if got := FitsInBitSize(big.NewInt(tt.value), tt.bitSize, tt.signed); got != tt.want {
			t.Errorf("FitsInBitSize(%d, %d, %v) = %v, want %v", tt.value, tt.bitSize, tt.signed, got, tt.want)
		}
	}
}
