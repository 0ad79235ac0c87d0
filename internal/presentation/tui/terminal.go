package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled reports whether styled output should be written to w.
// NO_COLOR and non-TTY destinations disable color.
func ColorEnabled(w io.Writer) bool {
	if termenv.EnvNoColor() || !IsTerminal(w) {
		return false
	}
	return termenv.NewOutput(w).Profile != termenv.Ascii
}

// MarkdownStyle picks the glamour style for w.
func MarkdownStyle(w io.Writer) string {
	if ColorEnabled(w) {
		return ""
	}
	return "notty"
}
