// Package term provides ANSI color palettes and terminal detection.
//
// A [Palette] is a value: callers resolve the color mode once during
// startup and pass the palette to whatever renders output. When colors are
// disabled every field is empty, making string concatenation a no-op.
package term

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/durack1/durolib/internal/config"
)

// Palette holds ANSI color codes. The zero value has colors disabled.
type Palette struct {
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Cyan    string
	Magenta string
	NC      string // Reset sequence.
}

// NewPalette returns the color palette, or the empty palette when enabled
// is false.
func NewPalette(enabled bool) Palette {
	if !enabled {
		return Palette{}
	}
	return Palette{
		Red:     "\033[1;91m",
		Green:   "\033[1;92m",
		Yellow:  "\033[1;93m",
		Blue:    "\033[1;94m",
		Cyan:    "\033[1;96m",
		Magenta: "\033[1;95m",
		NC:      "\033[0m",
	}
}

// Enabled reports whether p emits ANSI colors.
func (p Palette) Enabled() bool { return p.NC != "" }

// Wrap surrounds s with color and the reset sequence when p is enabled.
func (p Palette) Wrap(color, s string) string {
	if color == "" || !p.Enabled() {
		return s
	}
	return color + s + p.NC
}

// Resolve determines whether colors should be enabled for output written to
// w based on the configured mode, TTY detection, and the NO_COLOR env var
// (https://no-color.org). Writers that are not files are never colored in
// auto mode.
func Resolve(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		f, ok := w.(*os.File)
		return ok && IsTerminal(f) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a terminal. Other character
// devices such as /dev/null are not terminals.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
