package export

import (
	"fmt"
	"strings"

	"github.com/davidcortesortuno/skyrmion-model-widget/internal/lattice"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/spin"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/viz"
)

// Arrows shorter than this in-plane magnitude are dropped; the cell fill
// already carries the out-of-plane information.
const minArrow = 0.05

// FieldToSVG renders the evaluated field as an SVG document: one hexagonal
// cell per lattice point filled by the z-component colormap, overlaid with
// segments for the in-plane spin components. cells and field must be
// index-aligned with the lattice points.
func FieldToSVG(lat *lattice.Lattice, cells []lattice.HexCell, field []spin.Vector, scale float64) string {
	if lat == nil || len(cells) != len(lat.Points) || len(field) != len(lat.Points) {
		return ""
	}
	if scale <= 0 {
		scale = 12
	}

	// Bounds over all cell corners, with a corner-width margin.
	minX, maxX := cells[0].Corners[0].X, cells[0].Corners[0].X
	minY, maxY := cells[0].Corners[0].Y, cells[0].Corners[0].Y
	for _, cell := range cells {
		for _, c := range cell.Corners {
			if c.X < minX {
				minX = c.X
			}
			if c.X > maxX {
				maxX = c.X
			}
			if c.Y < minY {
				minY = c.Y
			}
			if c.Y > maxY {
				maxY = c.Y
			}
		}
	}

	width := (maxX - minX) * scale
	height := (maxY - minY) * scale

	// SVG y grows downward; flip so the lattice keeps y up.
	toPx := func(x, y float64) (float64, float64) {
		return (x - minX) * scale, height - (y-minY)*scale
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(`<g stroke="#222222" stroke-width="0.5">
`)
	for idx, cell := range cells {
		var pts strings.Builder
		for k, c := range cell.Corners {
			px, py := toPx(c.X, c.Y)
			if k > 0 {
				pts.WriteString(" ")
			}
			pts.WriteString(fmt.Sprintf("%.2f,%.2f", px, py))
		}
		sb.WriteString(fmt.Sprintf(`<polygon points="%s" fill="%s"/>
`, pts.String(), viz.RampHex(field[idx].Z)))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g stroke="#111111" stroke-width="1.2" fill="#111111">
`)
	arrowLen := lat.Radius * 1.6
	for idx, cell := range cells {
		v := field[idx]
		if v.Planar() < minArrow {
			continue
		}
		dx := v.X * arrowLen / 2
		dy := v.Y * arrowLen / 2
		x0, y0 := toPx(cell.X-dx, cell.Y-dy)
		x1, y1 := toPx(cell.X+dx, cell.Y+dy)
		sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>
<circle cx="%.2f" cy="%.2f" r="%.2f"/>
`, x0, y0, x1, y1, x1, y1, scale*0.12))
	}
	sb.WriteString("</g>\n</svg>")

	return sb.String()
}
