package types

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// KindsOf returns the supported kinds of a category. Logical has none.
func KindsOf(c Category) []int {
	switch c {
	case Integer:
		return IntegerKinds
	case Real:
		return RealKinds
	case Complex:
		return ComplexKinds
	case Character:
		return CharacterKinds
	}
	return nil
}

// IsValidKind reports whether kind is supported for the category.
func IsValidKind(c Category, kind int) bool {
	return slices.Contains(KindsOf(c), kind)
}

// DefaultKind is the kind used when none is written.
func DefaultKind(c Category) int {
	switch c {
	case Integer, Real, Complex:
		return 4
	case Character:
		return 1
	}
	return 0
}

// NewType validates kind against the category's closed set.
func NewType(c Category, kind int) (Type, error) {
	if c == Logical {
		return LogicalType, nil
	}
	if !IsValidKind(c, kind) {
		return Type{}, errors.Newf("%s has no kind %d (supported: %v)", c, errors.Safe(kind), errors.Safe(KindsOf(c)))
	}
	return Type{Category: c, Kind: kind}, nil
}
