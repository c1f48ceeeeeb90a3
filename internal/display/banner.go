package display

import (
	"fmt"
	"io"

	"github.com/durack1/durolib/internal/term"
)

// PrintBanner writes the startup banner; uses Magenta if p has colors enabled.
func PrintBanner(w io.Writer, p term.Palette, version string) {
	fmt.Fprintln(w, p.Wrap(p.Magenta, "=== trimmodels v"+version+" ==="))
	fmt.Fprintln(w, "one dataset per model/experiment/realization/grid")
}
