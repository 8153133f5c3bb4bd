// Package exprtext reads typed expression trees written in a parenthesized
// prefix notation:
//
//	(integer 4 (+ 1 (neg 2)))
//	(real 8 (** 1.5 (integer 4 3)))
//	(complex 4 (cmplx 1.0 2.0))
//	(character 1 (// "ab" "cd"))
//	(logical (and .T. (< (integer 4 1) (integer 4 2))))
//
// A tree names its category and, except for logical, its kind; operands are
// read at that type. A nested tree may appear wherever an operand of its
// exact type is expected, and is required where the type changes: the
// operand of convert, an integer exponent, and comparison operands.
package exprtext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/neok-m4700/f18/internal/diagnostics"
	"github.com/neok-m4700/f18/internal/evaluate"
	"github.com/neok-m4700/f18/internal/source"
	"github.com/neok-m4700/f18/internal/types"
)

// Tree is one expression read from the input.
type Tree struct {
	Expr evaluate.Expr
	Loc  *source.Location
}

type reader struct {
	name *string
	toks []token
	i    int
}

// ReadAll reads every tree in text. name labels locations.
func ReadAll(name, text string) ([]Tree, error) {
	toks, err := lex(&name, text)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	r := &reader{name: &name, toks: toks}
	var trees []Tree
	for r.peek().kind != tokEOF {
		start := r.peek().start
		e, err := r.readTree()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		end := r.toks[r.i-1].end
		trees = append(trees, Tree{Expr: e, Loc: source.NewLocation(&name, &start, &end)})
	}
	return trees, nil
}

// Read reads exactly one tree.
func Read(name, text string) (evaluate.Expr, error) {
	trees, err := ReadAll(name, text)
	if err != nil {
		return nil, err
	}
	if len(trees) != 1 {
		return nil, errors.Newf("expected one expression, found %d", errors.Safe(len(trees)))
	}
	return trees[0].Expr, nil
}

func (r *reader) peek() token { return r.toks[r.i] }
func (r *reader) peekAt(n int) token {
	if r.i+n < len(r.toks) {
		return r.toks[r.i+n]
	}
	return r.toks[len(r.toks)-1]
}

func (r *reader) next() token {
	t := r.toks[r.i]
	if t.kind != tokEOF {
		r.i++
	}
	return t
}

func (r *reader) errorAt(t token, code, format string, args ...any) error {
	return newError(r.name, t.start, t.end, code, fmt.Sprintf(format, args...))
}

func (r *reader) unexpected(t token, want string) error {
	if t.kind == tokEOF {
		return r.errorAt(t, diagnostics.ErrUnexpectedToken, "expected %s, found end of input", want)
	}
	return r.errorAt(t, diagnostics.ErrUnexpectedToken, "expected %s, found %q", want, t.text)
}

func (r *reader) expect(kind tokenKind) (token, error) {
	t := r.next()
	if t.kind != kind {
		return t, r.unexpected(t, strconv.Quote(kind.String()))
	}
	return t, nil
}

func (r *reader) close() error {
	_, err := r.expect(tokRParen)
	return err
}

// closeOperator ends an operator application, reporting extra operands.
func (r *reader) closeOperator(op token) error {
	t := r.next()
	switch t.kind {
	case tokRParen:
		return nil
	case tokEOF:
		return r.unexpected(t, `")"`)
	}
	return r.errorAt(t, diagnostics.ErrArity, "too many operands for %q", op.text)
}

// atTree reports whether a nested typed tree starts here.
func (r *reader) atTree() bool {
	if r.peek().kind != tokLParen || r.peekAt(1).kind != tokAtom {
		return false
	}
	_, err := types.ParseCategory(r.peekAt(1).text)
	return err == nil
}

// readType reads the category and kind after a tree's opening parenthesis.
func (r *reader) readType() (types.Type, error) {
	head, err := r.expect(tokAtom)
	if err != nil {
		return types.Type{}, err
	}
	category, err := types.ParseCategory(head.text)
	if err != nil {
		return types.Type{}, r.errorAt(head, diagnostics.ErrUnexpectedToken, "expected a type category, found %q", head.text)
	}
	if category == types.Logical {
		return types.LogicalType, nil
	}
	kt, err := r.expect(tokAtom)
	if err != nil {
		return types.Type{}, err
	}
	kind, err := strconv.Atoi(kt.text)
	if err != nil {
		return types.Type{}, r.errorAt(kt, diagnostics.ErrInvalidKind, "invalid kind %q", kt.text)
	}
	t, err := types.NewType(category, kind)
	if err != nil {
		return types.Type{}, r.errorAt(kt, diagnostics.ErrInvalidKind, "%s", err.Error())
	}
	return t, nil
}

// readTree reads a complete typed tree and returns it wrapped: *AnyInteger,
// *AnyReal, *AnyComplex, *AnyCharacter or *Logical.
func (r *reader) readTree() (evaluate.Expr, error) {
	if _, err := r.expect(tokLParen); err != nil {
		return nil, err
	}
	t, err := r.readType()
	if err != nil {
		return nil, err
	}
	var e evaluate.Expr
	switch t.Category {
	case types.Integer:
		e, err = r.readAnyInteger(t.Kind)
	case types.Real:
		e, err = r.readAnyReal(t.Kind)
	case types.Complex:
		e, err = r.readAnyComplex(t.Kind)
	case types.Character:
		e, err = r.readAnyCharacter(t.Kind)
	default:
		e, err = r.readLogical()
	}
	if err != nil {
		return nil, err
	}
	return e, r.close()
}

// readNested reads a typed tree that must have type want, then hands its
// body to read.
func readNested[T any](r *reader, want types.Type, read func(*reader) (T, error)) (T, error) {
	var zero T
	open := r.next()
	t, err := r.readType()
	if err != nil {
		return zero, err
	}
	if !t.Equals(want) {
		return zero, r.errorAt(open, diagnostics.ErrOperandMismatch, "expected an operand of type %s, found %s", want, t)
	}
	e, err := read(r)
	if err != nil {
		return zero, err
	}
	return e, r.close()
}

func (r *reader) readAnyInteger(kind int) (*evaluate.AnyInteger, error) {
	switch kind {
	case 1:
		return anyInteger(readInteger[types.K1](r))
	case 2:
		return anyInteger(readInteger[types.K2](r))
	case 4:
		return anyInteger(readInteger[types.K4](r))
	case 8:
		return anyInteger(readInteger[types.K8](r))
	case 16:
		return anyInteger(readInteger[types.K16](r))
	}
	return nil, errors.AssertionFailedf("integer kind %d passed validation", errors.Safe(kind))
}

func anyInteger[K types.IntegerKind](e *evaluate.Integer[K], err error) (*evaluate.AnyInteger, error) {
	if err != nil {
		return nil, err
	}
	return evaluate.AnyIntegerOf(e), nil
}

func (r *reader) readAnyReal(kind int) (*evaluate.AnyReal, error) {
	switch kind {
	case 2:
		return anyReal(readReal[types.K2](r))
	case 4:
		return anyReal(readReal[types.K4](r))
	case 8:
		return anyReal(readReal[types.K8](r))
	case 10:
		return anyReal(readReal[types.K10](r))
	case 16:
		return anyReal(readReal[types.K16](r))
	}
	return nil, errors.AssertionFailedf("real kind %d passed validation", errors.Safe(kind))
}

func anyReal[K types.RealKind](e *evaluate.Real[K], err error) (*evaluate.AnyReal, error) {
	if err != nil {
		return nil, err
	}
	return evaluate.AnyRealOf(e), nil
}

func (r *reader) readAnyComplex(kind int) (*evaluate.AnyComplex, error) {
	switch kind {
	case 2:
		return anyComplex(readComplex[types.K2](r))
	case 4:
		return anyComplex(readComplex[types.K4](r))
	case 8:
		return anyComplex(readComplex[types.K8](r))
	case 10:
		return anyComplex(readComplex[types.K10](r))
	case 16:
		return anyComplex(readComplex[types.K16](r))
	}
	return nil, errors.AssertionFailedf("complex kind %d passed validation", errors.Safe(kind))
}

func anyComplex[K types.RealKind](e *evaluate.Complex[K], err error) (*evaluate.AnyComplex, error) {
	if err != nil {
		return nil, err
	}
	return evaluate.AnyComplexOf(e), nil
}

func (r *reader) readAnyCharacter(kind int) (*evaluate.AnyCharacter, error) {
	switch kind {
	case 1:
		return anyCharacter(readCharacter[types.K1](r))
	case 2:
		return anyCharacter(readCharacter[types.K2](r))
	case 4:
		return anyCharacter(readCharacter[types.K4](r))
	}
	return nil, errors.AssertionFailedf("character kind %d passed validation", errors.Safe(kind))
}

func anyCharacter[K types.CharacterKind](e *evaluate.Character[K], err error) (*evaluate.AnyCharacter, error) {
	if err != nil {
		return nil, err
	}
	return evaluate.AnyCharacterOf(e), nil
}

// readIntegerOrReal reads the typed operand of convert.
func (r *reader) readIntegerOrReal() (*evaluate.AnyIntegerOrReal, error) {
	if !r.atTree() {
		return nil, r.unexpected(r.peek(), "an (integer k ...) or (real k ...) operand")
	}
	open := r.peek()
	e, err := r.readTree()
	if err != nil {
		return nil, err
	}
	switch x := e.(type) {
	case *evaluate.AnyInteger:
		return evaluate.FromAnyInteger(x), nil
	case *evaluate.AnyReal:
		return evaluate.FromAnyReal(x), nil
	}
	return nil, r.errorAt(open, diagnostics.ErrOperandMismatch, "cannot convert %s", e.Type())
}

// readExponent reads an integer exponent of any kind.
func (r *reader) readExponent() (*evaluate.AnyInteger, error) {
	open := r.peek()
	e, err := r.readTree()
	if err != nil {
		return nil, err
	}
	n, ok := e.(*evaluate.AnyInteger)
	if !ok {
		return nil, r.errorAt(open, diagnostics.ErrOperandMismatch, "expected an integer exponent, found %s", e.Type())
	}
	return n, nil
}

// atIntegerTree reports whether an (integer k ...) tree starts here.
func (r *reader) atIntegerTree() bool {
	return r.atTree() && strings.EqualFold(r.peekAt(1).text, "integer")
}
