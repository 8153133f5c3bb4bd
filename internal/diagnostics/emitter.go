package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/neok-m4700/f18/colors"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
)

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache               *SourceCache
	writer              io.Writer
	highlighter         *SyntaxHighlighter
	currentLineNumWidth int
}

// labelContext groups parameters for printing labels
type labelContext struct {
	filepath     string
	line         int
	startLine    int
	endLine      int
	startCol     int
	endCol       int
	label        Label
	lineNumWidth int
	severity     Severity
}

// NewEmitter creates an emitter that writes to w, reading source lines
// through cache (a fresh one when nil).
func NewEmitter(w io.Writer, cache *SourceCache) *Emitter {
	if cache == nil {
		cache = NewSourceCache()
	}
	return &Emitter{
		cache:       cache,
		writer:      w,
		highlighter: NewSyntaxHighlighter(colors.Enabled()),
	}
}

func (e *Emitter) lineNumWidth(diag *Diagnostic) int {
	maxLine := 0
	for _, label := range diag.Labels {
		if label.Location == nil || label.Location.Start == nil {
			continue
		}
		end := label.Location.End
		if end == nil {
			end = label.Location.Start
		}
		if end.Line > maxLine {
			maxLine = end.Line
		}
	}
	if maxLine == 0 {
		return 1
	}
	return len(fmt.Sprintf("%d", maxLine))
}

func (e *Emitter) Emit(diag *Diagnostic) {
	e.currentLineNumWidth = e.lineNumWidth(diag)

	e.printHeader(diag)

	// primary first, then context
	for _, style := range []LabelStyle{Primary, Secondary} {
		for _, label := range diag.Labels {
			if label.Style == style {
				e.printLabel(diag.FilePath, label, diag.Severity)
			}
		}
	}

	for _, note := range diag.Notes {
		e.printNote(note)
	}
	if diag.Help != "" {
		e.printHelp(diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	var color colors.COLOR
	switch diag.Severity {
	case Error:
		color = colors.BOLD_RED
	case Warning:
		color = colors.BOLD_YELLOW
	default:
		color = colors.BOLD_CYAN
	}

	color.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	color.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	start := label.Location.Start
	end := label.Location.End
	if end == nil {
		end = start
	}

	lineNumWidth := e.currentLineNumWidth
	colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", lineNumWidth), filepath, start.Line, start.Column)

	fmt.Fprint(e.writer, strings.Repeat(" ", lineNumWidth))
	colors.GREY.Fprintln(e.writer, " |")

	ctx := labelContext{
		filepath:     filepath,
		startLine:    start.Line,
		endLine:      end.Line,
		startCol:     start.Column,
		endCol:       end.Column,
		label:        label,
		lineNumWidth: lineNumWidth,
		severity:     severity,
	}

	if start.Line == end.Line {
		ctx.line = start.Line
		e.printSingleLineLabel(ctx)
	} else {
		e.printMultiLineLabel(ctx)
	}
}

func (e *Emitter) printSourceLine(width, line int, text string) {
	colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, width, line)
	e.highlighter.HighlightWithColor(text, e.writer)
	fmt.Fprintln(e.writer)
}

func (e *Emitter) printSingleLineLabel(ctx labelContext) {
	sourceLine, err := e.cache.GetLine(ctx.filepath, ctx.line)
	if err != nil {
		return
	}
	e.printSourceLine(ctx.lineNumWidth, ctx.line, sourceLine)

	fmt.Fprint(e.writer, strings.Repeat(" ", ctx.lineNumWidth))
	colors.GREY.Fprint(e.writer, " | ")

	padding := ctx.startCol - 1
	length := ctx.endCol - ctx.startCol
	if length <= 0 {
		length = 1
	}

	underlineColor := colors.BLUE
	underlineChar := "-"
	if ctx.label.Style == Primary {
		underlineColor = e.getSeverityColor(ctx.severity)
		underlineChar = "~"
		if length == 1 {
			underlineChar = "^"
		}
	}

	fmt.Fprint(e.writer, strings.Repeat(" ", padding))
	underlineColor.Fprint(e.writer, strings.Repeat(underlineChar, length))
	if ctx.label.Message != "" {
		underlineColor.Fprintf(e.writer, " %s", ctx.label.Message)
	}
	fmt.Fprintln(e.writer)

	fmt.Fprint(e.writer, strings.Repeat(" ", ctx.lineNumWidth))
	colors.GREY.Fprintln(e.writer, " |")
}

func (e *Emitter) printMultiLineLabel(ctx labelContext) {
	sourceLine, err := e.cache.GetLine(ctx.filepath, ctx.startLine)
	if err != nil {
		return
	}
	e.printSourceLine(ctx.lineNumWidth, ctx.startLine, sourceLine)

	underlineColor := colors.BLUE
	if ctx.label.Style == Primary {
		underlineColor = e.getSeverityColor(ctx.severity)
	}

	fmt.Fprint(e.writer, strings.Repeat(" ", ctx.lineNumWidth))
	colors.GREY.Fprint(e.writer, " | ")
	fmt.Fprint(e.writer, strings.Repeat(" ", ctx.startCol-1))
	if width := len(sourceLine) - (ctx.startCol - 1); width > 0 {
		underlineColor.Fprint(e.writer, strings.Repeat("~", width))
	}
	fmt.Fprintln(e.writer)

	if ctx.endLine-ctx.startLine > 5 {
		fmt.Fprint(e.writer, strings.Repeat(" ", ctx.lineNumWidth))
		colors.GREY.Fprintln(e.writer, "...")
	} else {
		for i := ctx.startLine + 1; i < ctx.endLine; i++ {
			line, err := e.cache.GetLine(ctx.filepath, i)
			if err != nil {
				continue
			}
			e.printSourceLine(ctx.lineNumWidth, i, line)
		}
	}

	if endSourceLine, err := e.cache.GetLine(ctx.filepath, ctx.endLine); err == nil {
		e.printSourceLine(ctx.lineNumWidth, ctx.endLine, endSourceLine)

		fmt.Fprint(e.writer, strings.Repeat(" ", ctx.lineNumWidth))
		colors.GREY.Fprint(e.writer, " | ")
		if ctx.endCol > 1 {
			fmt.Fprint(e.writer, strings.Repeat(" ", ctx.endCol-2))
		}
		underlineColor.Fprint(e.writer, "^")
		if ctx.label.Message != "" {
			underlineColor.Fprintf(e.writer, " %s", ctx.label.Message)
		}
		fmt.Fprintln(e.writer)
	}

	fmt.Fprint(e.writer, strings.Repeat(" ", ctx.lineNumWidth))
	colors.GREY.Fprintln(e.writer, " |")
}

func (e *Emitter) printNote(note Note) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth+1))
	colors.CYAN.Fprint(e.writer, "= note: ")
	fmt.Fprintln(e.writer, note.Message)
}

func (e *Emitter) printHelp(help string) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth+1))
	colors.GREEN.Fprint(e.writer, "= help: ")
	fmt.Fprintln(e.writer, help)
}

// getSeverityColor returns the color for a given severity
func (e *Emitter) getSeverityColor(severity Severity) colors.COLOR {
	switch severity {
	case Error:
		return colors.RED
	case Warning:
		return colors.YELLOW
	default:
		return colors.BLUE
	}
}
