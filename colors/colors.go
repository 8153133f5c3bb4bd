package colors

import (
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

// COLOR is an ANSI SGR escape sequence.
type COLOR string

const (
	RESET COLOR = "\033[0m"
	BOLD  COLOR = "\033[1m"

	BLACK  COLOR = "\033[30m"
	RED    COLOR = "\033[31m"
	GREEN  COLOR = "\033[32m"
	YELLOW COLOR = "\033[33m"
	BLUE   COLOR = "\033[34m"
	PURPLE COLOR = "\033[35m"
	CYAN   COLOR = "\033[36m"
	WHITE  COLOR = "\033[37m"
	GREY   COLOR = "\033[90m"

	LIGHT_RED    COLOR = "\033[91m"
	LIGHT_GREEN  COLOR = "\033[92m"
	LIGHT_YELLOW COLOR = "\033[93m"
	LIGHT_BLUE   COLOR = "\033[94m"

	BOLD_RED    COLOR = "\033[1;31m"
	BOLD_GREEN  COLOR = "\033[1;32m"
	BOLD_YELLOW COLOR = "\033[1;33m"
	BOLD_BLUE   COLOR = "\033[1;34m"
	BOLD_PURPLE COLOR = "\033[1;35m"
	BOLD_CYAN   COLOR = "\033[1;36m"

	ORANGE       COLOR = "\033[38;5;208m"
	LIGHT_ORANGE COLOR = "\033[38;5;215m"
)

var disabled atomic.Bool

// SetEnabled turns escape sequences on or off for every COLOR method.
func SetEnabled(on bool) { disabled.Store(!on) }

// Enabled reports whether COLOR methods emit escape sequences.
func Enabled() bool { return !disabled.Load() }

// IsTerminal reports whether f is attached to a terminal (including Cygwin
// and MSYS pseudo terminals).
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Configure applies a color mode: "always", "never", or "auto" which
// enables colors only when out is a terminal.
func Configure(mode string, out *os.File) {
	switch mode {
	case "always":
		SetEnabled(true)
	case "never":
		SetEnabled(false)
	default:
		SetEnabled(IsTerminal(out))
	}
}

func (c COLOR) code() string {
	if disabled.Load() {
		return ""
	}
	return string(c)
}

func reset() string { return RESET.code() }
