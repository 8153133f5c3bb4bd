package exprtext

import (
	"github.com/cockroachdb/errors"

	"github.com/neok-m4700/f18/internal/evaluate"
	"github.com/neok-m4700/f18/internal/types"
)

// compare unwraps two operands of one type and relates them.
func compare(op evaluate.RelationalOperator, x, y evaluate.Expr) (*evaluate.Logical, error) {
	switch a := x.(type) {
	case *evaluate.AnyInteger:
		b := y.(*evaluate.AnyInteger)
		switch a.Kind() {
		case 1:
			return compareIntegers[types.K1](op, a, b), nil
		case 2:
			return compareIntegers[types.K2](op, a, b), nil
		case 4:
			return compareIntegers[types.K4](op, a, b), nil
		case 8:
			return compareIntegers[types.K8](op, a, b), nil
		case 16:
			return compareIntegers[types.K16](op, a, b), nil
		}
	case *evaluate.AnyReal:
		b := y.(*evaluate.AnyReal)
		switch a.Kind() {
		case 2:
			return compareReals[types.K2](op, a, b), nil
		case 4:
			return compareReals[types.K4](op, a, b), nil
		case 8:
			return compareReals[types.K8](op, a, b), nil
		case 10:
			return compareReals[types.K10](op, a, b), nil
		case 16:
			return compareReals[types.K16](op, a, b), nil
		}
	case *evaluate.AnyCharacter:
		b := y.(*evaluate.AnyCharacter)
		switch a.Kind() {
		case 1:
			return compareCharacters[types.K1](op, a, b), nil
		case 2:
			return compareCharacters[types.K2](op, a, b), nil
		case 4:
			return compareCharacters[types.K4](op, a, b), nil
		}
	case *evaluate.AnyComplex:
		b := y.(*evaluate.AnyComplex)
		eq, err := evaluate.EqualityOperatorOf(op)
		if err != nil {
			return nil, err
		}
		switch a.Kind() {
		case 2:
			return compareComplexes[types.K2](eq, a, b), nil
		case 4:
			return compareComplexes[types.K4](eq, a, b), nil
		case 8:
			return compareComplexes[types.K8](eq, a, b), nil
		case 10:
			return compareComplexes[types.K10](eq, a, b), nil
		case 16:
			return compareComplexes[types.K16](eq, a, b), nil
		}
	case *evaluate.Logical:
		return nil, errors.Newf("logical operands are compared with eqv or neqv, not %v", op)
	}
	return nil, errors.AssertionFailedf("cannot compare %s", x.Type())
}

func compareIntegers[K types.IntegerKind](op evaluate.RelationalOperator, a, b *evaluate.AnyInteger) *evaluate.Logical {
	x, _ := evaluate.IntegerTree[K](a)
	y, _ := evaluate.IntegerTree[K](b)
	return evaluate.Compare(op, x, y)
}

func compareReals[K types.RealKind](op evaluate.RelationalOperator, a, b *evaluate.AnyReal) *evaluate.Logical {
	x, _ := evaluate.RealTree[K](a)
	y, _ := evaluate.RealTree[K](b)
	return evaluate.Compare(op, x, y)
}

func compareCharacters[K types.CharacterKind](op evaluate.RelationalOperator, a, b *evaluate.AnyCharacter) *evaluate.Logical {
	x, _ := evaluate.CharacterTree[K](a)
	y, _ := evaluate.CharacterTree[K](b)
	return evaluate.Compare(op, x, y)
}

func compareComplexes[K types.RealKind](op evaluate.EqualityOperator, a, b *evaluate.AnyComplex) *evaluate.Logical {
	x, _ := evaluate.ComplexTree[K](a)
	y, _ := evaluate.ComplexTree[K](b)
	return evaluate.CompareComplex(op, x, y)
}
