package source

// Position is a point in source text. Line and Column are 1-based, Index is
// the byte offset.
type Position struct {
	Line   int
	Column int
	Index  int
}

// Start is the position of the first byte of a source.
func Start() Position {
	return Position{Line: 1, Column: 1}
}

// Advance moves the position past toSkip and returns it. Newlines reset the
// column, a tab advances it by 4, and every other rune advances it by one
// while the index advances by the rune's byte length.
func (p *Position) Advance(toSkip string) *Position {
	for _, char := range toSkip {
		switch char {
		case '\n':
			p.Line++
			p.Column = 1
			p.Index++
		case '\t':
			p.Column += 4
			p.Index++
		default:
			p.Column++
			p.Index += len(string(char))
		}
	}
	return p
}
