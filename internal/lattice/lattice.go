package lattice

import (
	"fmt"
	"math"
)

// Point is a single lattice site. Z is always zero; the lattice lives in the
// plane and only the spin vectors attached to it have an out-of-plane part.
type Point struct {
	X, Y, Z float64
	Row     int
	Col     int
}

// Lattice is an immutable triangular arrangement of Nx*Ny points packed into
// a square layout. Points are stored row-major: index = col + row*Nx.
type Lattice struct {
	Nx, Ny int
	Radius float64
	Points []Point
}

// Generate builds a triangular lattice with horizontal spacing 2*radius and
// vertical spacing sqrt(3)*radius. Rows with even row index are shifted right
// by half the horizontal spacing; this convention fixes the lattice alignment
// and the cell geometry downstream depends on it.
func Generate(nx, ny int, radius float64) (*Lattice, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("lattice: dimensions must be at least 1x1, got %dx%d", nx, ny)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("lattice: hexagon radius must be positive, got %f", radius)
	}

	dx := 2 * radius
	dy := math.Sqrt(3) * radius
	h := dx * 2 / math.Sqrt(3) // hexagon flat-to-flat span

	points := make([]Point, 0, nx*ny)
	for j := 0; j < ny; j++ {
		offset := 0.0
		if j%2 == 0 {
			offset = dx / 2
		}
		for i := 0; i < nx; i++ {
			points = append(points, Point{
				X:   offset + float64(i)*dx + dx/2,
				Y:   float64(j)*dy + h/2,
				Row: j,
				Col: i,
			})
		}
	}

	return &Lattice{Nx: nx, Ny: ny, Radius: radius, Points: points}, nil
}

// Index maps a (col, row) pair to the linear point index. The second return
// is false when (i, j) lies outside the grid.
func (l *Lattice) Index(i, j int) (int, bool) {
	if i < 0 || i >= l.Nx || j < 0 || j >= l.Ny {
		return 0, false
	}
	return i + j*l.Nx, true
}

// FlatToFlat returns the flat-to-flat span of the hexagonal cell tiling the
// lattice, 4*Radius/sqrt(3).
func (l *Lattice) FlatToFlat() float64 {
	return 4 * l.Radius / math.Sqrt(3)
}

// Center returns the midpoint of the lattice bounding box. The skyrmion
// center is pinned here once and reused across parameter changes.
func (l *Lattice) Center() (cx, cy float64) {
	minX, maxX := l.Points[0].X, l.Points[0].X
	minY, maxY := l.Points[0].Y, l.Points[0].Y
	for _, p := range l.Points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return (minX + maxX) / 2, (minY + maxY) / 2
}
