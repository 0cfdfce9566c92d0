package spin

import "math"

// Vector is a 3-component spin. Raw field values come out of the analytic
// profile already at unit length; Normalize exists to absorb floating-point
// drift, not to change direction.
type Vector struct {
	X, Y, Z float64
}

func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Normalize rescales v to unit length. A zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	n := v.Norm()
	if n > 0 {
		return v.Scale(1 / n)
	}
	return v
}

// Planar returns the in-plane magnitude, used by renderers for arrow length.
func (v Vector) Planar() float64 {
	return math.Hypot(v.X, v.Y)
}
