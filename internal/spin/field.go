package spin

import (
	"fmt"
	"math"

	"github.com/davidcortesortuno/skyrmion-model-widget/internal/lattice"
)

// Parameters describes one skyrmion configuration. A value is immutable for
// the duration of an evaluation call; the interactive controller keeps the
// last-used copy and rebuilds the field whenever one entry changes.
type Parameters struct {
	Radius    float64 // skyrmion radius, boundary between core and background
	CenterX   float64
	CenterY   float64
	Helicity  float64 // in-plane rotation offset, [0, pi]
	Vorticity int     // +1 vortex, -1 antivortex
	Chirality int     // global sign of the texture
}

func (p Parameters) Validate() error {
	if p.Radius <= 0 {
		return fmt.Errorf("%w, got %f", ErrRadius, p.Radius)
	}
	if p.Vorticity != 1 && p.Vorticity != -1 {
		return fmt.Errorf("%w, got %d", ErrVorticity, p.Vorticity)
	}
	if p.Chirality != 1 && p.Chirality != -1 {
		return fmt.Errorf("%w, got %d", ErrChirality, p.Chirality)
	}
	if p.Helicity < 0 || p.Helicity > math.Pi {
		return fmt.Errorf("%w, got %f", ErrHelicity, p.Helicity)
	}
	return nil
}

func (p Parameters) GetParams() map[string]float64 {
	return map[string]float64{
		"radius":    p.Radius,
		"helicity":  p.Helicity,
		"vorticity": float64(p.Vorticity),
		"chirality": float64(p.Chirality),
	}
}

func (p *Parameters) SetParam(name string, value float64) error {
	switch name {
	case "radius":
		p.Radius = value
	case "helicity":
		p.Helicity = value
	case "vorticity":
		p.Vorticity = int(value)
	case "chirality":
		p.Chirality = int(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return nil
}

// EvaluatePoint returns the analytic spin at (x, y). Inside the skyrmion disk
// the in-plane angle is psi = vorticity*atan2(dy, dx) + helicity and the
// polar profile is linear in rho with k = pi/radius; outside, the uniform
// background (0, 0, chirality) points opposite to the core tip.
//
// At rho = 0 the result degenerates to (0, 0, -chirality) for every helicity
// and vorticity; that is the expected core-tip orientation, not an error.
// Callers must guarantee Radius > 0 (see Parameters.Validate).
func EvaluatePoint(x, y float64, p Parameters) Vector {
	dx := x - p.CenterX
	dy := y - p.CenterY
	rho := math.Hypot(dx, dy)
	c := float64(p.Chirality)

	if rho > p.Radius {
		return Vector{0, 0, c}
	}

	psi := float64(p.Vorticity)*math.Atan2(dy, dx) + p.Helicity
	k := math.Pi / p.Radius
	sin, cos := math.Sincos(k * rho)

	return Vector{
		X: c * sin * math.Cos(psi),
		Y: c * sin * math.Sin(psi),
		Z: -c * cos,
	}
}

// EvaluateField evaluates the spin at every lattice point and returns the
// vectors index-aligned with lat.Points. Every raw value is renormalized
// when its norm is positive; analytically this is a no-op, but it pins down
// the numerical output against floating-point drift.
func EvaluateField(lat *lattice.Lattice, p Parameters) ([]Vector, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	field := make([]Vector, len(lat.Points))
	for i, pt := range lat.Points {
		field[i] = EvaluatePoint(pt.X, pt.Y, p).Normalize()
	}
	return field, nil
}
