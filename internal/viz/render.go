package viz

import (
	"math"
	"strings"

	"github.com/davidcortesortuno/skyrmion-model-widget/internal/lattice"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/spin"
)

// Arrow glyphs by 45-degree sector, counterclockwise from east.
var arrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Spins with less in-plane weight than this render as dots.
const planarThreshold = 0.3

// Glyph picks the character for one spin: an arrow along the in-plane
// direction, '●' for the core tip (z < 0) and '·' for the background.
func Glyph(v spin.Vector) rune {
	if v.Planar() < planarThreshold {
		if v.Z < 0 {
			return '●'
		}
		return '·'
	}
	sector := int(math.Round(math.Atan2(v.Y, v.X) / (math.Pi / 4)))
	sector = ((sector % 8) + 8) % 8
	return arrows[sector]
}

// RenderField draws the field with one glyph per lattice point, highest row
// first so y points up on screen. Rows shifted by half the lattice spacing
// are indented one character to keep the triangular packing visible.
func RenderField(lat *lattice.Lattice, field []spin.Vector) string {
	var b strings.Builder
	for j := lat.Ny - 1; j >= 0; j-- {
		if j%2 == 0 {
			b.WriteString(" ")
		}
		for i := 0; i < lat.Nx; i++ {
			idx, ok := lat.Index(i, j)
			if !ok || idx >= len(field) {
				continue
			}
			v := field[idx]
			b.WriteString(StyleFor(v.Z).Render(string(Glyph(v))))
			if i < lat.Nx-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
