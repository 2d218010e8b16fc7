// Package metrics computes scalar diagnostics of solution vectors:
// how well a method hits the far boundary and how far two methods
// drift apart across the grid.
package metrics

import (
	"math"

	"github.com/numlab/bvplab/internal/bvp"
)

// BoundaryDefect is |y(1) - 2|, the terminal boundary error.
func BoundaryDefect(s bvp.Solution) float64 {
	return math.Abs(s.At(s.Len()-1) - bvp.YRight)
}

// MaxAbsDiff is the largest pointwise deviation between two solutions
// on the same grid.
func MaxAbsDiff(a, b bvp.Solution) float64 {
	max := 0.0
	for i := 0; i < a.Len(); i++ {
		if d := math.Abs(a.At(i) - b.At(i)); d > max {
			max = d
		}
	}
	return max
}

// RMSDiff is the root-mean-square deviation between two solutions on
// the same grid.
func RMSDiff(a, b bvp.Solution) float64 {
	if a.Len() == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < a.Len(); i++ {
		d := a.At(i) - b.At(i)
		sum += d * d
	}
	return math.Sqrt(sum / float64(a.Len()))
}
