package diagnostics

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/neok-m4700/f18/internal/source"
)

// SourceCache caches source lines for error reporting. Registered in-memory
// sources shadow the file system.
type SourceCache struct {
	mu    sync.Mutex
	files map[string][]string
}

var _ source.LineCache = (*SourceCache)(nil)

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// AddSource registers content under filepath.
func (sc *SourceCache) AddSource(filepath, content string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.files[filepath] = source.SplitLines(content)
}

func (sc *SourceCache) lines(filepath string) ([]string, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if lines, ok := sc.files[filepath]; ok {
		return lines, nil
	}
	lines, err := source.GetSourceLines(filepath)
	if err != nil {
		return nil, err
	}
	sc.files[filepath] = lines
	return lines, nil
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, err := sc.lines(filepath)
	if err != nil {
		return "", err
	}
	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	return "", errors.Newf("line %d out of range", errors.Safe(line))
}

// GetLinesRange implements source.LineCache.
func (sc *SourceCache) GetLinesRange(filepath string, startLine, endLine int) ([]string, bool) {
	lines, err := sc.lines(filepath)
	if err != nil || startLine < 1 || startLine > len(lines) {
		return nil, false
	}
	if endLine > len(lines) {
		endLine = len(lines)
	}
	return lines[startLine-1 : endLine], true
}
