package spin

import "errors"

// Domain errors for field evaluation.
var (
	// ErrRadius indicates a non-positive skyrmion radius.
	ErrRadius = errors.New("spin: skyrmion radius must be positive")

	// ErrVorticity indicates a vorticity outside {-1, +1}.
	ErrVorticity = errors.New("spin: vorticity must be -1 or +1")

	// ErrChirality indicates a chirality outside {-1, +1}.
	ErrChirality = errors.New("spin: chirality must be -1 or +1")

	// ErrHelicity indicates a helicity outside [0, pi].
	ErrHelicity = errors.New("spin: helicity must be in [0, pi]")

	// ErrUnknownParam indicates a parameter name SetParam does not know.
	ErrUnknownParam = errors.New("spin: unknown parameter")
)
