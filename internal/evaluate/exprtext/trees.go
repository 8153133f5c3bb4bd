package exprtext

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/neok-m4700/f18/internal/diagnostics"
	"github.com/neok-m4700/f18/internal/evaluate"
	"github.com/neok-m4700/f18/internal/types"
	"github.com/neok-m4700/f18/internal/utils/numeric"
)

// operatorHead consumes the '(' and operator atom of an application.
func (r *reader) operatorHead() (token, error) {
	r.next()
	return r.expect(tokAtom)
}

func unknownOperator(r *reader, op token, t types.Type) error {
	return r.errorAt(op, diagnostics.ErrUnknownOperator, "unknown %s operator %q", t.Category, op.text)
}

// readArithmetic reads the operands of paren, neg, + - * / and ** and
// builds the node.
func readArithmetic[T evaluate.Arithmetic[T]](r *reader, op token, t types.Type, operand func(*reader) (T, error)) (T, error) {
	var zero T
	switch op.text {
	case "paren", "neg", "+", "-", "*", "/", "**":
	default:
		return zero, unknownOperator(r, op, t)
	}
	x, err := operand(r)
	if err != nil {
		return zero, err
	}
	switch op.text {
	case "paren":
		return evaluate.Parens(x), nil
	case "neg":
		return evaluate.Negated(x), nil
	}
	y, err := operand(r)
	if err != nil {
		return zero, err
	}
	switch op.text {
	case "+":
		return evaluate.Sum(x, y), nil
	case "-":
		return evaluate.Difference(x, y), nil
	case "*":
		return evaluate.Product(x, y), nil
	case "/":
		return evaluate.Quotient(x, y), nil
	default:
		return evaluate.Raised(x, y), nil
	}
}

// readPower reads x ** y, where an (integer k ...) exponent makes an
// IntPower.
func readPower[T evaluate.Floating[T]](r *reader, operand func(*reader) (T, error)) (T, error) {
	var zero T
	x, err := operand(r)
	if err != nil {
		return zero, err
	}
	if r.atIntegerTree() {
		n, err := r.readExponent()
		if err != nil {
			return zero, err
		}
		return evaluate.RaisedToInt(x, n), nil
	}
	y, err := operand(r)
	if err != nil {
		return zero, err
	}
	return evaluate.Raised(x, y), nil
}

func readInteger[K types.IntegerKind](r *reader) (*evaluate.Integer[K], error) {
	typ := types.Of[K](types.Integer)
	t := r.peek()
	switch {
	case t.kind == tokAtom:
		r.next()
		v, err := numeric.ParseInt(typ.Bits(), t.text)
		if err != nil {
			if numeric.IsInteger(strings.TrimPrefix(t.text, "-")) {
				return nil, r.errorAt(t, diagnostics.ErrInvalidNumber, "integer literal %s overflows %s", t.text, typ)
			}
			return nil, r.errorAt(t, diagnostics.ErrInvalidNumber, "%s is not a valid %s literal", t.text, typ)
		}
		return evaluate.IntegerFrom[K](v), nil
	case r.atTree():
		return readNested(r, typ, readInteger[K])
	case t.kind == tokLParen:
		op, err := r.operatorHead()
		if err != nil {
			return nil, err
		}
		var e *evaluate.Integer[K]
		if op.text == "convert" {
			var x *evaluate.AnyIntegerOrReal
			if x, err = r.readIntegerOrReal(); err == nil {
				e = evaluate.ToInteger[K](x)
			}
		} else {
			e, err = readArithmetic(r, op, typ, readInteger[K])
		}
		if err != nil {
			return nil, err
		}
		return e, r.closeOperator(op)
	}
	return nil, r.unexpected(t, "an integer operand")
}

func readReal[K types.RealKind](r *reader) (*evaluate.Real[K], error) {
	typ := types.Of[K](types.Real)
	t := r.peek()
	switch {
	case t.kind == tokAtom:
		r.next()
		v, err := numeric.ParseReal(typ.Kind, t.text)
		if err != nil {
			if errors.Is(err, numeric.ErrRealOverflow) {
				return nil, r.errorAt(t, diagnostics.ErrInvalidNumber, "real literal %s overflows %s", t.text, typ)
			}
			return nil, r.errorAt(t, diagnostics.ErrInvalidNumber, "%s is not a valid %s literal", t.text, typ)
		}
		return evaluate.RealFrom[K](v), nil
	case r.atTree():
		return readNested(r, typ, readReal[K])
	case t.kind == tokLParen:
		op, err := r.operatorHead()
		if err != nil {
			return nil, err
		}
		var e *evaluate.Real[K]
		switch op.text {
		case "convert":
			var x *evaluate.AnyIntegerOrReal
			if x, err = r.readIntegerOrReal(); err == nil {
				e = evaluate.ToReal[K](x)
			}
		case "realpart", "aimag":
			var z *evaluate.Complex[K]
			if z, err = readComplex[K](r); err == nil {
				if op.text == "realpart" {
					e = evaluate.RealPartOf(z)
				} else {
					e = evaluate.ImaginaryPartOf(z)
				}
			}
		case "**":
			e, err = readPower(r, readReal[K])
		default:
			e, err = readArithmetic(r, op, typ, readReal[K])
		}
		if err != nil {
			return nil, err
		}
		return e, r.closeOperator(op)
	}
	return nil, r.unexpected(t, "a real operand")
}

func readComplex[K types.RealKind](r *reader) (*evaluate.Complex[K], error) {
	typ := types.Of[K](types.Complex)
	t := r.peek()
	switch {
	case t.kind == tokAtom && strings.EqualFold(t.text, "#c"):
		r.next()
		if _, err := r.expect(tokLParen); err != nil {
			return nil, err
		}
		var parts [2]numeric.Real
		for i := range parts {
			p, err := r.expect(tokAtom)
			if err != nil {
				return nil, err
			}
			if parts[i], err = numeric.ParseReal(typ.Kind, p.text); err != nil {
				if errors.Is(err, numeric.ErrRealOverflow) {
					return nil, r.errorAt(p, diagnostics.ErrInvalidNumber, "real literal %s overflows %s", p.text, typ)
				}
				return nil, r.errorAt(p, diagnostics.ErrInvalidNumber, "%s is not a valid %s part", p.text, typ)
			}
		}
		if err := r.close(); err != nil {
			return nil, err
		}
		return evaluate.ComplexFromParts[K](parts[0], parts[1]), nil
	case t.kind == tokAtom:
		return nil, r.errorAt(t, diagnostics.ErrInvalidNumber, "complex constants are written #c(re im), found %q", t.text)
	case r.atTree():
		return readNested(r, typ, readComplex[K])
	case t.kind == tokLParen:
		op, err := r.operatorHead()
		if err != nil {
			return nil, err
		}
		var e *evaluate.Complex[K]
		switch op.text {
		case "cmplx":
			var re, im *evaluate.Real[K]
			if re, err = readReal[K](r); err == nil {
				if im, err = readReal[K](r); err == nil {
					e = evaluate.ComplexFrom(re, im)
				}
			}
		case "**":
			e, err = readPower(r, readComplex[K])
		default:
			e, err = readArithmetic(r, op, typ, readComplex[K])
		}
		if err != nil {
			return nil, err
		}
		return e, r.closeOperator(op)
	}
	return nil, r.unexpected(t, "a complex operand")
}

func readCharacter[K types.CharacterKind](r *reader) (*evaluate.Character[K], error) {
	typ := types.Of[K](types.Character)
	t := r.peek()
	switch {
	case t.kind == tokString:
		r.next()
		return evaluate.CharacterValue[K](t.text), nil
	case r.atTree():
		return readNested(r, typ, readCharacter[K])
	case t.kind == tokLParen:
		op, err := r.operatorHead()
		if err != nil {
			return nil, err
		}
		if op.text != "//" {
			return nil, unknownOperator(r, op, typ)
		}
		x, err := readCharacter[K](r)
		if err != nil {
			return nil, err
		}
		y, err := readCharacter[K](r)
		if err != nil {
			return nil, err
		}
		return evaluate.Concatenation(x, y), r.closeOperator(op)
	}
	return nil, r.unexpected(t, "a character operand")
}
