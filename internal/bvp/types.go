package bvp

import "math"

// State is the (y, y') pair carried through an initial-value
// integration run.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is anything the initial-value integrator can advance.
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Solution is one method's approximation to y at every grid point,
// immutable once produced.
type Solution struct {
	method string
	y      []float64
}

// NewSolution copies y so later mutation of the argument cannot leak
// into a published result.
func NewSolution(method string, y []float64) Solution {
	c := make([]float64, len(y))
	copy(c, y)
	return Solution{method: method, y: c}
}

// Name returns the producing method's name.
func (s Solution) Name() string { return s.method }

// Len returns the number of samples.
func (s Solution) Len() int { return len(s.y) }

// At returns the y-value at grid index i.
func (s Solution) At(i int) float64 { return s.y[i] }

// Y returns a copy of the sample values.
func (s Solution) Y() []float64 {
	c := make([]float64, len(s.y))
	copy(c, s.y)
	return c
}

// Solver is the shared capability: approximate y on the given grid.
type Solver interface {
	Name() string
	Solve(g Grid) (Solution, error)
}
