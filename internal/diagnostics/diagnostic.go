package diagnostics

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/neok-m4700/f18/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// SafeValue implements redact.SafeValue.
func (Severity) SafeValue() {}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The offending span (uses ^^^)
	Secondary                   // Additional context (uses ---)
)

// Label marks a span of source with an optional message.
type Label struct {
	Location *source.Location
	Message  string
	Style    LabelStyle
}

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic is a message for the user about an expression, with the spans
// it concerns.
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string // like "W0102"
	FilePath string
	Labels   []Label
	Notes    []Note
	Help     string
}

func newDiagnostic(severity Severity, message string) *Diagnostic {
	return &Diagnostic{
		Severity: severity,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic { return newDiagnostic(Error, message) }

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic { return newDiagnostic(Warning, message) }

// NewInfo creates a new info diagnostic
func NewInfo(message string) *Diagnostic { return newDiagnostic(Info, message) }

// WithCode sets the diagnostic code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLabel adds a labeled location to the diagnostic
func (d *Diagnostic) WithLabel(filepath string, loc *source.Location, message string, style LabelStyle) *Diagnostic {
	if d.FilePath == "" {
		d.FilePath = filepath
	}
	d.Labels = append(d.Labels, Label{
		Location: loc,
		Message:  message,
		Style:    style,
	})
	return d
}

func (d *Diagnostic) primary() (Label, bool) {
	for _, label := range d.Labels {
		if label.Style == Primary {
			return label, true
		}
	}
	return Label{}, false
}

// WithPrimaryLabel adds the primary label. It is always stored first, and a
// second primary label is ignored.
func (d *Diagnostic) WithPrimaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	if _, ok := d.primary(); ok {
		return d
	}
	if d.FilePath == "" {
		d.FilePath = filepath
	}
	d.Labels = append([]Label{{Location: loc, Message: message, Style: Primary}}, d.Labels...)
	return d
}

// WithSecondaryLabel adds a context label. A primary label must exist.
func (d *Diagnostic) WithSecondaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	if _, ok := d.primary(); !ok {
		panic(errors.AssertionFailedf("secondary label %q added before a primary label", message))
	}
	return d.WithLabel(filepath, loc, message, Secondary)
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets a suggestion for the user
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// Location returns the primary label's location, or nil.
func (d *Diagnostic) Location() *source.Location {
	label, _ := d.primary()
	return label.Location
}

// String renders the diagnostic on one line without colors, e.g.
// "warning[W0102]: integer addition overflowed (expr:1:12)".
func (d *Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(d.Severity.String())
	if d.Code != "" {
		fmt.Fprintf(&b, "[%s]", d.Code)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	if loc := d.Location(); loc != nil {
		fmt.Fprintf(&b, " (%s)", loc)
	}
	return b.String()
}
