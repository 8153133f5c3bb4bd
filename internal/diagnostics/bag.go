package diagnostics

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/neok-m4700/f18/colors"
	"github.com/neok-m4700/f18/internal/source"
)

const (
	failedMsg             = "\nEvaluation failed with %d error(s)"
	andWarningMsg         = " and %d warning(s)"
	succeededWithWarnings = "\nEvaluation succeeded with %d warning(s)\n"
)

// DiagnosticBag collects the diagnostics of one source
type DiagnosticBag struct {
	filepath    string
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	warnCount   int
	sourceCache *SourceCache
}

// NewDiagnosticBag creates a new diagnostic bag for a file
func NewDiagnosticBag(filepath string) *DiagnosticBag {
	return &DiagnosticBag{
		filepath:    filepath,
		diagnostics: make([]*Diagnostic, 0),
		sourceCache: NewSourceCache(),
	}
}

// FilePath is the source the bag reports against.
func (db *DiagnosticBag) FilePath() string { return db.filepath }

// Cache returns the bag's source cache.
func (db *DiagnosticBag) Cache() *SourceCache { return db.sourceCache }

// AddSourceContent registers in-memory content for a file path
func (db *DiagnosticBag) AddSourceContent(filepath, content string) {
	db.sourceCache.AddSource(filepath, content)
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// Say records a folding message as a warning at the given location. Saying
// to a nil bag discards the message.
func (db *DiagnosticBag) Say(at *source.Location, text string) {
	if db == nil {
		return
	}
	db.Add(FoldingMessage(db.filepath, at, text))
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Diagnostics returns a copy of all diagnostics
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]*Diagnostic, len(db.diagnostics))
	copy(result, db.diagnostics)
	return result
}

// EmitAll renders every diagnostic and a summary to w.
func (db *DiagnosticBag) EmitAll(w io.Writer) {
	emitter := &Emitter{
		cache:       db.sourceCache,
		writer:      w,
		highlighter: NewSyntaxHighlighter(colors.Enabled()),
	}
	for _, diag := range db.Diagnostics() {
		emitter.Emit(diag)
	}
	db.printSummary(w)
}

// EmitAllToString emits all diagnostics to a string, with ANSI codes when
// colors are enabled
func (db *DiagnosticBag) EmitAllToString() string {
	var buf bytes.Buffer
	db.EmitAll(&buf)
	return buf.String()
}

// EmitAllToHTML emits all diagnostics to an HTML string
func (db *DiagnosticBag) EmitAllToHTML() string {
	return colors.ConvertANSIToHTML(db.EmitAllToString())
}

func (db *DiagnosticBag) printSummary(w io.Writer) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.errorCount > 0 {
		colors.RED.Fprintf(w, failedMsg, db.errorCount)
		if db.warnCount > 0 {
			colors.RED.Fprintf(w, andWarningMsg, db.warnCount)
		}
		fmt.Fprintln(w)
	} else if db.warnCount > 0 {
		colors.ORANGE.Fprintf(w, succeededWithWarnings, db.warnCount)
	}
}
