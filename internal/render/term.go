package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexdraw/internal/config"
	"github.com/vovakirdan/hexdraw/internal/raster"
)

// TermString renders the raster for a terminal using the upper half
// block, packing two pixel rows into each text row so cells come out
// roughly square. Adjacent cells with the same color pair are grouped
// into one styled run to keep the escape-sequence overhead down.
func TermString(r *raster.Raster, pal config.Palette) string {
	var sb strings.Builder
	sb.Grow(r.Width()*r.Height()*2 + r.Height())

	for y := 0; y < r.Height(); y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}

		haveBottom := y+1 < r.Height()
		x := 0
		for x < r.Width() {
			top := r.Get(y, x)
			var bottom = top
			if haveBottom {
				bottom = r.Get(y+1, x)
			}

			n := 0
			for x < r.Width() && r.Get(y, x) == top && (!haveBottom || r.Get(y+1, x) == bottom) {
				n++
				x++
			}

			style := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Hex(int(top))))
			if haveBottom {
				style = style.Background(lipgloss.Color(pal.Hex(int(bottom))))
			}
			sb.WriteString(style.Render(strings.Repeat("▀", n)))
		}
	}
	return sb.String()
}
