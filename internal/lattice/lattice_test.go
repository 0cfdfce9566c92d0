package lattice

import (
	"math"
	"testing"
)

func TestGenerate_PointCount(t *testing.T) {
	tests := []struct {
		nx, ny int
		radius float64
	}{
		{1, 1, 1.0},
		{4, 4, 1.0},
		{30, 30, 1.0},
		{5, 3, 0.5},
		{2, 7, 2.5},
	}

	for _, tt := range tests {
		lat, err := Generate(tt.nx, tt.ny, tt.radius)
		if err != nil {
			t.Fatalf("Generate(%d, %d, %f) failed: %v", tt.nx, tt.ny, tt.radius, err)
		}
		if len(lat.Points) != tt.nx*tt.ny {
			t.Errorf("Generate(%d, %d): expected %d points, got %d",
				tt.nx, tt.ny, tt.nx*tt.ny, len(lat.Points))
		}
	}
}

func TestGenerate_InvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		nx, ny int
		radius float64
	}{
		{"zero nx", 0, 4, 1.0},
		{"zero ny", 4, 0, 1.0},
		{"negative nx", -1, 4, 1.0},
		{"zero radius", 4, 4, 0.0},
		{"negative radius", 4, 4, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(tt.nx, tt.ny, tt.radius); err == nil {
				t.Errorf("expected error for nx=%d ny=%d radius=%f", tt.nx, tt.ny, tt.radius)
			}
		})
	}
}

func TestGenerate_RowOffsetConvention(t *testing.T) {
	// radius 1: dx=2, dy=sqrt(3), h/2 = 2/sqrt(3). Even rows shift right by
	// dx/2, odd rows do not.
	lat, err := Generate(4, 4, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	h2 := 2 / math.Sqrt(3)
	tests := []struct {
		i, j int
		x, y float64
	}{
		{0, 0, 2.0, h2},
		{3, 0, 8.0, h2},
		{0, 1, 1.0, math.Sqrt(3) + h2},
		{3, 1, 7.0, math.Sqrt(3) + h2},
		{0, 2, 2.0, 2*math.Sqrt(3) + h2},
		{2, 3, 5.0, 3*math.Sqrt(3) + h2},
	}

	for _, tt := range tests {
		idx, ok := lat.Index(tt.i, tt.j)
		if !ok {
			t.Fatalf("Index(%d, %d) unexpectedly out of range", tt.i, tt.j)
		}
		p := lat.Points[idx]
		if math.Abs(p.X-tt.x) > 1e-12 || math.Abs(p.Y-tt.y) > 1e-12 {
			t.Errorf("point (%d, %d): expected (%f, %f), got (%f, %f)",
				tt.i, tt.j, tt.x, tt.y, p.X, p.Y)
		}
		if p.Z != 0 {
			t.Errorf("point (%d, %d): expected z=0, got %f", tt.i, tt.j, p.Z)
		}
	}
}

func TestIndex_Bijection(t *testing.T) {
	lat, err := Generate(5, 7, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[int]bool)
	for j := 0; j < lat.Ny; j++ {
		for i := 0; i < lat.Nx; i++ {
			idx, ok := lat.Index(i, j)
			if !ok {
				t.Fatalf("Index(%d, %d) out of range inside grid", i, j)
			}
			if idx < 0 || idx >= lat.Nx*lat.Ny {
				t.Errorf("Index(%d, %d) = %d outside [0, %d)", i, j, idx, lat.Nx*lat.Ny)
			}
			if seen[idx] {
				t.Errorf("Index(%d, %d) = %d already assigned", i, j, idx)
			}
			seen[idx] = true

			p := lat.Points[idx]
			if p.Row != j || p.Col != i {
				t.Errorf("Points[%d] has (row, col) = (%d, %d), want (%d, %d)",
					idx, p.Row, p.Col, j, i)
			}
		}
	}
	if len(seen) != lat.Nx*lat.Ny {
		t.Errorf("expected %d distinct indices, got %d", lat.Nx*lat.Ny, len(seen))
	}
}

func TestIndex_OutOfRange(t *testing.T) {
	lat, err := Generate(4, 4, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct{ i, j int }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {4, 4}, {-1, -1},
	}
	for _, tt := range tests {
		if _, ok := lat.Index(tt.i, tt.j); ok {
			t.Errorf("Index(%d, %d) should be out of range", tt.i, tt.j)
		}
	}
}

func TestCenter(t *testing.T) {
	lat, err := Generate(4, 4, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	// x spans [1, 8]; y spans [h/2, 3*sqrt(3)+h/2].
	cx, cy := lat.Center()
	wantCx := 4.5
	wantCy := 2/math.Sqrt(3) + 1.5*math.Sqrt(3)

	if math.Abs(cx-wantCx) > 1e-12 {
		t.Errorf("Center x = %f, want %f", cx, wantCx)
	}
	if math.Abs(cy-wantCy) > 1e-12 {
		t.Errorf("Center y = %f, want %f", cy, wantCy)
	}
}

func TestCenter_SinglePoint(t *testing.T) {
	lat, err := Generate(1, 1, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	cx, cy := lat.Center()
	p := lat.Points[0]
	if cx != p.X || cy != p.Y {
		t.Errorf("Center of 1x1 lattice = (%f, %f), want the point (%f, %f)", cx, cy, p.X, p.Y)
	}
}
