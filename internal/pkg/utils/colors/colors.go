package colors

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color escape sequences
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
	Bold   = "\033[1m"
)

// Icons used in status lines
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconStep    = "▸"
)

// Enabled reports whether w is a terminal that should receive escape sequences
func Enabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Wrap surrounds s with color when enabled
func Wrap(enabled bool, color, s string) string {
	if !enabled || color == "" {
		return s
	}
	return color + s + Reset
}
