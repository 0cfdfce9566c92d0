package lattice

import "math"

// Corner is one vertex of a hexagonal cell, in the lattice plane.
type Corner struct {
	X, Y float64
}

// HexCell is the hexagonal boundary around a lattice point. Cells share the
// index of the point they surround.
type HexCell struct {
	X, Y    float64
	Corners [6]Corner
}

// HexCorners returns the six cell vertices around (cx, cy) at the given
// circumradius. Corner k sits at 60k+30 degrees; the renderer treats the
// result as a closed polygon in this exact order.
func HexCorners(cx, cy, circumradius float64) [6]Corner {
	var corners [6]Corner
	for k := 0; k < 6; k++ {
		angle := (60*float64(k) + 30) * math.Pi / 180
		corners[k] = Corner{
			X: cx + circumradius*math.Cos(angle),
			Y: cy + circumradius*math.Sin(angle),
		}
	}
	return corners
}

// Cells builds one hexagonal cell per lattice point, index-aligned with
// Points. The circumradius is half the flat-to-flat span, so the cells tile
// the lattice without gaps for the spacing Generate used.
func (l *Lattice) Cells() []HexCell {
	circumradius := l.FlatToFlat() / 2
	cells := make([]HexCell, len(l.Points))
	for idx, p := range l.Points {
		cells[idx] = HexCell{
			X:       p.X,
			Y:       p.Y,
			Corners: HexCorners(p.X, p.Y, circumradius),
		}
	}
	return cells
}
