package bvp

import (
	"fmt"
	"math"
)

// Grid is the ordered sequence of sample points x₀=0,...,xₙ=1 with
// uniform step h, shared by all three solvers so their outputs can be
// compared point by point.
type Grid struct {
	h  float64
	xs []float64
}

// NewGrid builds the grid for step size h. The number of intervals is
// ⌊1/h⌋ and the last point is clamped to exactly 1 regardless of
// floating accumulation.
func NewGrid(h float64) (Grid, error) {
	if h <= 0 || h > 1 {
		return Grid{}, fmt.Errorf("%w: h=%g (want 0 < h <= 1)", ErrInvalidStep, h)
	}
	// The guard absorbs cases like h=0.1 where 1/h lands just below an
	// integer in binary.
	n := int(math.Floor(1/h + 1e-9))
	xs := make([]float64, n+1)
	for i := range xs {
		xs[i] = float64(i) * h
	}
	xs[n] = 1
	return Grid{h: h, xs: xs}, nil
}

// Step returns the uniform spacing h.
func (g Grid) Step() float64 { return g.h }

// Len returns the number of grid points, n+1.
func (g Grid) Len() int { return len(g.xs) }

// At returns the i-th grid point.
func (g Grid) At(i int) float64 { return g.xs[i] }

// Points returns a copy of the grid points.
func (g Grid) Points() []float64 {
	xs := make([]float64, len(g.xs))
	copy(xs, g.xs)
	return xs
}
