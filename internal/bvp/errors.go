package bvp

import "errors"

// Failure modes of a comparison run. All four are fatal: if any method
// fails, the three-way comparison cannot proceed.
var (
	// ErrInvalidStep indicates a step size outside (0, 1].
	ErrInvalidStep = errors.New("bvp: invalid step size")

	// ErrNoSignChange indicates the shooting bracket does not straddle
	// a root of the terminal residual.
	ErrNoSignChange = errors.New("bvp: no sign change in bracket")

	// ErrSingularSystem indicates the finite-difference matrix is
	// numerically singular.
	ErrSingularSystem = errors.New("bvp: singular finite-difference system")

	// ErrNoConvergence indicates the variational minimizer failed or
	// left the boundary constraint unsatisfied.
	ErrNoConvergence = errors.New("bvp: minimizer failed to converge")
)
