package diagnostics

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/neok-m4700/f18/colors"
	"github.com/neok-m4700/f18/internal/types"
)

// SyntaxHighlighter colors lines of expression tree notation, e.g.
// (integer 4 (+ 1 (neg 2))).
type SyntaxHighlighter struct {
	enabled bool
}

// NewSyntaxHighlighter creates a new syntax highlighter
func NewSyntaxHighlighter(enabled bool) *SyntaxHighlighter {
	return &SyntaxHighlighter{enabled: enabled}
}

// IsEnabled returns whether syntax highlighting is enabled
func (sh *SyntaxHighlighter) IsEnabled() bool {
	return sh.enabled
}

// Token is a highlighted piece of a line
type Token struct {
	Text  string
	Color colors.COLOR
}

var operatorWords = map[string]bool{
	"paren": true, "neg": true, "convert": true, "realpart": true,
	"aimag": true, "cmplx": true, "not": true, "and": true, "or": true,
	"eqv": true, "neqv": true,
}

func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '"' || c == ';' || unicode.IsSpace(rune(c))
}

// Highlight splits a line into colored tokens
func (sh *SyntaxHighlighter) Highlight(line string) []Token {
	if !sh.enabled {
		return []Token{{Text: line, Color: colors.WHITE}}
	}

	var out []Token
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case unicode.IsSpace(rune(c)):
			start := i
			for i < len(line) && unicode.IsSpace(rune(line[i])) {
				i++
			}
			out = append(out, Token{Text: line[start:i], Color: colors.WHITE})

		case c == ';':
			out = append(out, Token{Text: line[i:], Color: colors.GREY})
			i = len(line)

		case c == '(' || c == ')':
			out = append(out, Token{Text: line[i : i+1], Color: colors.GREY})
			i++

		case c == '"':
			start := i
			i++
			for i < len(line) && line[i] != '"' {
				if line[i] == '\\' && i+1 < len(line) {
					i++
				}
				i++
			}
			if i < len(line) {
				i++
			}
			out = append(out, Token{Text: line[start:i], Color: colors.LIGHT_GREEN})

		default:
			start := i
			for i < len(line) && !isDelimiter(line[i]) {
				i++
			}
			word := line[start:i]
			out = append(out, Token{Text: word, Color: wordColor(word)})
		}
	}
	return out
}

func wordColor(word string) colors.COLOR {
	if _, err := types.ParseCategory(word); err == nil {
		return colors.PURPLE
	}
	switch {
	case operatorWords[strings.ToLower(word)]:
		return colors.CYAN
	case strings.EqualFold(word, ".T.") || strings.EqualFold(word, ".F."):
		return colors.LIGHT_ORANGE
	case strings.HasPrefix(word, "#c"):
		return colors.LIGHT_YELLOW
	case word != "" && (unicode.IsDigit(rune(word[0])) || (len(word) > 1 && (word[0] == '-' || word[0] == '.') && unicode.IsDigit(rune(word[1])))):
		return colors.LIGHT_YELLOW
	case word != "" && !unicode.IsLetter(rune(word[0])):
		return colors.CYAN
	}
	return colors.WHITE
}

// HighlightLine returns a highlighted line as a string ready for printing
func (sh *SyntaxHighlighter) HighlightLine(line string) string {
	var result strings.Builder
	sh.HighlightWithColor(line, &result)
	return result.String()
}

// HighlightWithColor writes the highlighted line to writer
func (sh *SyntaxHighlighter) HighlightWithColor(line string, writer io.Writer) {
	if !sh.enabled {
		fmt.Fprint(writer, line)
		return
	}
	for _, token := range sh.Highlight(line) {
		token.Color.Fprint(writer, token.Text)
	}
}
