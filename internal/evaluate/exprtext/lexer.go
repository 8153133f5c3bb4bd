package exprtext

import (
	"fmt"
	"strings"

	"github.com/neok-m4700/f18/internal/diagnostics"
	"github.com/neok-m4700/f18/internal/source"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokAtom
	tokString
)

func (k tokenKind) String() string {
	switch k {
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	case tokAtom:
		return "atom"
	case tokString:
		return "string"
	default:
		return "end of input"
	}
}

type token struct {
	kind  tokenKind
	text  string // atom text, or string contents with "" collapsed
	start source.Position
	end   source.Position
}

// Error is a malformed-input error with its location and diagnostic code.
type Error struct {
	Code    string
	Message string
	Loc     *source.Location
	// Related marks a second span the message refers to, described by
	// RelatedMessage.
	Related        *source.Location
	RelatedMessage string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Message)
}

// Diagnostic converts the error for a DiagnosticBag.
func (e *Error) Diagnostic() *diagnostics.Diagnostic {
	name := ""
	if e.Loc != nil && e.Loc.Filename != nil {
		name = *e.Loc.Filename
	}
	d := diagnostics.ReadError(name, e.Loc, e.Code, e.Message)
	if e.Related != nil {
		d.WithSecondaryLabel(name, e.Related, e.RelatedMessage)
	}
	return d
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '"', ';', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// lex splits text into tokens. Whitespace and ';' comments separate tokens.
func lex(name *string, text string) ([]token, error) {
	var toks []token
	pos := source.Start()
	i := 0
	advance := func(n int) {
		pos.Advance(text[i : i+n])
		i += n
	}

	for i < len(text) {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			advance(1)

		case c == ';':
			n := strings.IndexByte(text[i:], '\n')
			if n < 0 {
				n = len(text) - i
			}
			advance(n)

		case c == '(' || c == ')':
			start := pos
			advance(1)
			kind := tokLParen
			if c == ')' {
				kind = tokRParen
			}
			toks = append(toks, token{kind: kind, text: string(c), start: start, end: pos})

		case c == '"':
			start := pos
			var b strings.Builder
			j := i + 1
			closed := false
			for j < len(text) {
				if text[j] == '"' {
					if j+1 < len(text) && text[j+1] == '"' {
						b.WriteByte('"')
						j += 2
						continue
					}
					closed = true
					j++
					break
				}
				b.WriteByte(text[j])
				j++
			}
			advance(j - i)
			if !closed {
				return nil, newError(name, start, pos, diagnostics.ErrUnterminatedString, "unterminated character literal")
			}
			toks = append(toks, token{kind: tokString, text: b.String(), start: start, end: pos})

		default:
			start := pos
			j := i
			for j < len(text) && !isDelimiter(text[j]) {
				j++
			}
			atom := text[i:j]
			advance(j - i)
			toks = append(toks, token{kind: tokAtom, text: atom, start: start, end: pos})
		}
	}
	toks = append(toks, token{kind: tokEOF, start: pos, end: pos})
	return toks, nil
}

func newError(name *string, start, end source.Position, code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Loc:     source.NewLocation(name, &start, &end),
	}
}
