// Package shooting converts the boundary-value problem into an
// initial-value one: guess the initial slope α = y'(0), integrate
// forward, and adjust α until y(1) hits the far boundary value.
package shooting

import (
	"fmt"

	"github.com/numlab/bvplab/internal/bvp"
	"github.com/numlab/bvplab/internal/integrators"
)

// Defaults for the root search over the initial slope.
const (
	DefaultBracketLo = -10.0
	DefaultBracketHi = 10.0
	DefaultTol       = 1e-8
)

// Solver implements bvp.Solver via the shooting method.
type Solver struct {
	prob bvp.Problem
	rk   *integrators.RK45

	// Bracket is the search interval for the initial slope. The
	// terminal residual must change sign across it.
	Bracket [2]float64
	// Tol bounds both the local integration error and the root
	// finder's interval width.
	Tol float64
}

func New() *Solver {
	return &Solver{
		rk:      integrators.NewRK45(),
		Bracket: [2]float64{DefaultBracketLo, DefaultBracketHi},
		Tol:     DefaultTol,
	}
}

func (s *Solver) Name() string { return "shooting" }

// Solve finds the slope α* whose forward integration lands on
// y(1)=2, then returns that trajectory sampled on the grid.
func (s *Solver) Solve(g bvp.Grid) (bvp.Solution, error) {
	residual := func(alpha float64) (float64, error) {
		y, err := s.integrate(alpha, g)
		if err != nil {
			return 0, err
		}
		return y[len(y)-1] - bvp.YRight, nil
	}

	alpha, err := findRoot(residual, s.Bracket[0], s.Bracket[1], s.Tol)
	if err != nil {
		return bvp.Solution{}, fmt.Errorf("shooting: %w", err)
	}

	y, err := s.integrate(alpha, g)
	if err != nil {
		return bvp.Solution{}, fmt.Errorf("shooting: %w", err)
	}
	return bvp.NewSolution(s.Name(), y), nil
}

// integrate runs the initial-value problem from (y, y') = (1, alpha)
// at x=0, sampling y at every grid point.
func (s *Solver) integrate(alpha float64, g bvp.Grid) ([]float64, error) {
	state := bvp.State{bvp.YLeft, alpha}
	y := make([]float64, g.Len())
	y[0] = state[0]

	for i := 1; i < g.Len(); i++ {
		next, err := s.rk.IntegrateTo(s.prob, state, g.At(i-1), g.At(i), s.Tol)
		if err != nil {
			return nil, fmt.Errorf("integrating to x=%g: %w", g.At(i), err)
		}
		state = next
		y[i] = state[0]
	}
	return y, nil
}
