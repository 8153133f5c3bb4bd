package types

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Category is the intrinsic type category of an expression.
type Category int

const (
	Integer Category = iota
	Real
	Complex
	Character
	Logical
)

func (c Category) String() string {
	switch c {
	case Integer:
		return "Integer"
	case Real:
		return "Real"
	case Complex:
		return "Complex"
	case Character:
		return "Character"
	case Logical:
		return "Logical"
	default:
		return "Unknown"
	}
}

// SafeValue implements redact.SafeValue.
func (Category) SafeValue() {}

// ParseCategory maps a category name, case-insensitively, to its Category.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(name) {
	case "integer":
		return Integer, nil
	case "real":
		return Real, nil
	case "complex":
		return Complex, nil
	case "character":
		return Character, nil
	case "logical":
		return Logical, nil
	}
	return 0, errors.Newf("unknown type category %q", name)
}

// Type is an intrinsic type: a category plus a kind.
//
// For the numeric and character categories the kind is the storage size of
// one element in bytes. Logical expressions are not distinguished by kind and
// carry Kind 0.
type Type struct {
	Category Category
	Kind     int
}

// Of returns the Type of category c at precision K.
func Of[K Kind](c Category) Type {
	return Type{Category: c, Kind: KindOf[K]()}
}

// LogicalType is the single type of every logical expression.
var LogicalType = Type{Category: Logical}

// Dump renders the type tag used to annotate dumped expressions,
// e.g. "Integer(4)".
func (t Type) Dump() string {
	if t.Category == Logical {
		return t.Category.String()
	}
	return fmt.Sprintf("%s(%d)", t.Category, t.Kind)
}

func (t Type) String() string { return t.Dump() }

// SafeValue implements redact.SafeValue.
func (Type) SafeValue() {}

// Equals reports whether both category and kind match.
func (t Type) Equals(other Type) bool {
	return t.Category == other.Category && t.Kind == other.Kind
}

// Bits returns the width of one element in bits, or 0 for logical.
func (t Type) Bits() int {
	return t.Kind * 8
}

// IsNumeric reports whether arithmetic operators apply to the type.
func (t Type) IsNumeric() bool {
	switch t.Category {
	case Integer, Real, Complex:
		return true
	}
	return false
}
