package exprtext

import (
	"fmt"
	"strings"

	"github.com/neok-m4700/f18/internal/diagnostics"
	"github.com/neok-m4700/f18/internal/evaluate"
	"github.com/neok-m4700/f18/internal/source"
	"github.com/neok-m4700/f18/internal/types"
)

var relationalOperators = map[string]evaluate.RelationalOperator{
	"<": evaluate.LT, ".lt.": evaluate.LT,
	"<=": evaluate.LE, ".le.": evaluate.LE,
	"==": evaluate.EQ, ".eq.": evaluate.EQ,
	"/=": evaluate.NE, ".ne.": evaluate.NE,
	">=": evaluate.GE, ".ge.": evaluate.GE,
	">": evaluate.GT, ".gt.": evaluate.GT,
}

var connectives = map[string]func(x, y *evaluate.Logical) *evaluate.Logical{
	"and":  evaluate.LogicalAnd,
	"or":   evaluate.LogicalOr,
	"eqv":  evaluate.LogicalEqv,
	"neqv": evaluate.LogicalNeqv,
}

func (r *reader) readLogical() (*evaluate.Logical, error) {
	t := r.peek()
	switch {
	case t.kind == tokAtom:
		r.next()
		switch strings.ToUpper(t.text) {
		case ".T.", ".TRUE.":
			return evaluate.LogicalValue(true), nil
		case ".F.", ".FALSE.":
			return evaluate.LogicalValue(false), nil
		}
		return nil, r.errorAt(t, diagnostics.ErrInvalidNumber, "%s is not a logical constant", t.text)
	case r.atTree():
		return readNested(r, types.LogicalType, (*reader).readLogical)
	case t.kind == tokLParen:
		op, err := r.operatorHead()
		if err != nil {
			return nil, err
		}
		name := strings.ToLower(op.text)
		var e *evaluate.Logical
		if rel, ok := relationalOperators[name]; ok {
			e, err = r.readComparison(op, rel)
		} else if join, ok := connectives[name]; ok {
			var x, y *evaluate.Logical
			if x, err = r.readLogical(); err == nil {
				if y, err = r.readLogical(); err == nil {
					e = join(x, y)
				}
			}
		} else if name == "not" {
			var x *evaluate.Logical
			if x, err = r.readLogical(); err == nil {
				e = evaluate.LogicalNot(x)
			}
		} else {
			err = unknownOperator(r, op, types.LogicalType)
		}
		if err != nil {
			return nil, err
		}
		return e, r.closeOperator(op)
	}
	return nil, r.unexpected(t, "a logical operand")
}

// readComparison reads two typed operands of one type.
func (r *reader) readComparison(op token, rel evaluate.RelationalOperator) (*evaluate.Logical, error) {
	var operands [2]evaluate.Expr
	var first *source.Location
	for i := range operands {
		if !r.atTree() {
			return nil, r.unexpected(r.peek(), "a typed comparison operand such as (integer 4 1)")
		}
		open := r.peek()
		e, err := r.readTree()
		if err != nil {
			return nil, err
		}
		if i == 0 {
			start, end := open.start, r.toks[r.i-1].end
			first = source.NewLocation(r.name, &start, &end)
		} else if !e.Type().Equals(operands[0].Type()) {
			mismatch := newError(r.name, open.start, open.end, diagnostics.ErrOperandMismatch,
				fmt.Sprintf("cannot compare %s with %s", operands[0].Type(), e.Type()))
			mismatch.Related = first
			mismatch.RelatedMessage = "this is " + operands[0].Type().Dump()
			return nil, mismatch
		}
		operands[i] = e
	}
	e, err := compare(rel, operands[0], operands[1])
	if err != nil {
		return nil, r.errorAt(op, diagnostics.ErrOperandMismatch, "%s", err.Error())
	}
	return e, nil
}
