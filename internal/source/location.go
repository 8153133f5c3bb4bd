package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Location represents a span of source text with start and end positions.
// End is exclusive.
type Location struct {
	Start    *Position
	End      *Position
	Filename *string
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(filename *string, start, end *Position) *Location {
	return &Location{
		Filename: filename,
		Start:    start,
		End:      end,
	}
}

// Span returns the location covering text when it begins at start.
func Span(filename *string, start Position, text string) *Location {
	begin := start
	end := start
	return NewLocation(filename, &begin, end.Advance(text))
}

// LineCache serves source lines without touching the file system. In-memory
// sources (stdin, the playground) are only reachable through a cache.
type LineCache interface {
	GetLinesRange(filepath string, startLine, endLine int) ([]string, bool)
}

// Contains checks if the given position is within this location
func (l *Location) Contains(pos *Position) bool {
	if l.Start.Line > pos.Line || (l.Start.Line == pos.Line && l.Start.Column > pos.Column) {
		return false
	}
	if l.End.Line < pos.Line || (l.End.Line == pos.Line && l.End.Column < pos.Column) {
		return false
	}
	return true
}

func (l *Location) String() string {
	if l == nil || l.Start == nil || l.End == nil {
		return "location(unknown)"
	}
	if l.Filename != nil {
		return fmt.Sprintf("%s:%d:%d", *l.Filename, l.Start.Line, l.Start.Column)
	}
	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}

// GetText extracts the source text for this location, consulting cache
// first when it is not nil. Returns "" if the location is invalid or the
// lines cannot be read.
func (l *Location) GetText(cache LineCache) string {
	if l.Filename == nil || l.Start == nil || l.End == nil {
		return ""
	}

	lineStart, lineEnd := l.Start.Line, l.End.Line
	colStart, colEnd := l.Start.Column, l.End.Column
	if lineStart < 1 || lineEnd < 1 || lineStart > lineEnd {
		return ""
	}

	lines, err := GetSourceLinesRange(*l.Filename, lineStart, lineEnd, cache)
	if err != nil || len(lines) == 0 {
		return ""
	}

	if lineStart == lineEnd {
		line := lines[0]
		if colStart < 1 || colStart > len(line)+1 || colEnd < colStart || colEnd > len(line)+1 {
			return ""
		}
		return line[colStart-1 : colEnd-1]
	}

	var b strings.Builder
	for i, line := range lines {
		switch lineStart + i {
		case lineStart:
			if colStart >= 1 && colStart <= len(line)+1 {
				b.WriteString(line[colStart-1:])
			}
		case lineEnd:
			if colEnd >= 1 && colEnd <= len(line)+1 {
				b.WriteString("\n" + line[:colEnd-1])
			}
		default:
			b.WriteString("\n" + line)
		}
	}
	return b.String()
}

// SplitLines splits text on '\n'. A trailing newline does not produce an
// empty last line.
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// GetSourceLines reads a file and splits it into lines.
func GetSourceLines(filepath string) ([]string, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filepath)
	}
	return SplitLines(string(content)), nil
}

// GetSourceLinesRange returns lines startLine..endLine (1-indexed,
// inclusive), from cache when it has them and from the file otherwise.
func GetSourceLinesRange(filepath string, startLine, endLine int, cache LineCache) ([]string, error) {
	if startLine < 1 || endLine < startLine {
		return nil, errors.Newf("invalid line range: %d-%d", errors.Safe(startLine), errors.Safe(endLine))
	}

	if cache != nil {
		if lines, ok := cache.GetLinesRange(filepath, startLine, endLine); ok {
			return lines, nil
		}
	}

	file, err := os.Open(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filepath)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lines := make([]string, 0, endLine-startLine+1)
	currentLine := 0
	for scanner.Scan() {
		currentLine++
		if currentLine < startLine {
			continue
		}
		if currentLine > endLine {
			break
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", filepath)
	}

	if len(lines) == 0 && currentLine < startLine {
		return nil, errors.Newf("line %d out of range (file has %d lines)", errors.Safe(startLine), errors.Safe(currentLine))
	}
	return lines, nil
}
