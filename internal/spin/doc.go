// Package spin evaluates the analytic skyrmion spin texture.
//
// The texture is the linear closed-form approximation: inside the skyrmion
// disk the polar angle grows linearly with the distance from the center,
// outside the disk the field is the uniform background. Four parameters
// shape it:
//
//   - [Parameters.Radius]: core size, boundary to the background
//   - [Parameters.Helicity]: in-plane rotation offset (0 Néel, pi/2 Bloch)
//   - [Parameters.Vorticity]: +1 skyrmion, -1 antiskyrmion
//   - [Parameters.Chirality]: global orientation sign
//
// # Example
//
//	lat, _ := lattice.Generate(30, 30, 1.0)
//	cx, cy := lat.Center()
//	field, _ := spin.EvaluateField(lat, spin.Parameters{
//	    Radius: 10, CenterX: cx, CenterY: cy, Vorticity: 1, Chirality: 1,
//	})
//
// Evaluation is pure and synchronous; callers re-evaluate the full field on
// every parameter change and may share the lattice across calls.
package spin
