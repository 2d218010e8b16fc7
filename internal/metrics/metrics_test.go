package metrics

import (
	"math"
	"testing"

	"github.com/numlab/bvplab/internal/bvp"
)

func TestBoundaryDefect(t *testing.T) {
	exact := bvp.NewSolution("a", []float64{1, 1.5, 2})
	if got := BoundaryDefect(exact); got != 0 {
		t.Errorf("defect = %g, want 0", got)
	}

	off := bvp.NewSolution("b", []float64{1, 1.5, 2.001})
	if got := BoundaryDefect(off); math.Abs(got-0.001) > 1e-12 {
		t.Errorf("defect = %g, want 0.001", got)
	}
}

func TestMaxAbsDiff(t *testing.T) {
	a := bvp.NewSolution("a", []float64{1, 1.5, 2})
	b := bvp.NewSolution("b", []float64{1, 1.52, 1.99})

	if got := MaxAbsDiff(a, b); math.Abs(got-0.02) > 1e-12 {
		t.Errorf("max diff = %g, want 0.02", got)
	}
	if got := MaxAbsDiff(a, a); got != 0 {
		t.Errorf("self diff = %g, want 0", got)
	}
}

func TestRMSDiff(t *testing.T) {
	a := bvp.NewSolution("a", []float64{0, 0, 0, 0})
	b := bvp.NewSolution("b", []float64{1, 1, 1, 1})

	if got := RMSDiff(a, b); math.Abs(got-1) > 1e-12 {
		t.Errorf("rms = %g, want 1", got)
	}
	if got := RMSDiff(a, a); got != 0 {
		t.Errorf("self rms = %g, want 0", got)
	}
}
