package diagnostics

import (
	"github.com/neok-m4700/f18/internal/source"
)

// Texts said by the integer folder.
const (
	NegationOverflowed       = "integer negation overflowed"
	AdditionOverflowed       = "integer addition overflowed"
	MultiplicationOverflowed = "integer multiplication overflowed"
)

var foldingCodes = map[string]string{
	NegationOverflowed:       WarnNegationOverflow,
	AdditionOverflowed:       WarnAdditionOverflow,
	MultiplicationOverflowed: WarnMultiplicationOverflow,
}

// FoldingMessage creates the warning for a message said while folding.
func FoldingMessage(filepath string, at *source.Location, text string) *Diagnostic {
	code, ok := foldingCodes[text]
	if !ok {
		return NewWarning(text).
			WithCode(WarnFoldingMessage).
			WithPrimaryLabel(filepath, at, "")
	}
	return NewWarning(text).
		WithCode(code).
		WithPrimaryLabel(filepath, at, "result wrapped to the kind's range").
		WithNote("the folded constant keeps the low-order bits of the exact result")
}

// ReadError creates a diagnostic for malformed expression text.
func ReadError(filepath string, loc *source.Location, code, message string) *Diagnostic {
	d := NewError(message).
		WithCode(code).
		WithPrimaryLabel(filepath, loc, "")
	switch code {
	case ErrUnknownOperator:
		d.WithHelp("operators are paren neg + - * / ** convert realpart aimag cmplx // not and or eqv neqv < <= == /= >= >")
	case ErrInvalidKind:
		d.WithHelp("integer kinds are 1 2 4 8 16, real and complex 2 4 8 10 16, character 1 2 4")
	}
	return d
}

// NotCharacter creates a diagnostic for LEN of a non-character expression.
func NotCharacter(filepath string, loc *source.Location, typ string) *Diagnostic {
	return NewError("LEN requires a character expression").
		WithCode(ErrNotCharacter).
		WithPrimaryLabel(filepath, loc, "this is "+typ)
}

// NotConstant reports an expression that did not fold to a constant.
func NotConstant(filepath string, loc *source.Location) *Diagnostic {
	return NewInfo("expression is not a constant after folding").
		WithCode(ErrNotConstant).
		WithPrimaryLabel(filepath, loc, "").
		WithNote("only parentheses, negation, addition and multiplication of integers are folded")
}
