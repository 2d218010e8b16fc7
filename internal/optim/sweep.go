// Package optim runs parameter studies over the solvers. The step
// sweep re-solves the problem on a sequence of grids and reports how
// the methods converge toward one another as h shrinks.
package optim

import (
	"fmt"

	"github.com/numlab/bvplab/internal/bvp"
	"github.com/numlab/bvplab/internal/metrics"
)

// StepResult is one row of a convergence study.
type StepResult struct {
	Step    float64
	Points  int
	MaxDiff map[string]float64 // keyed "a/b" per solver pair
	Defects map[string]float64
}

// StepSweep solves with every solver at every step size, sequentially.
// Any solver failure aborts the sweep, consistent with the
// no-partial-results rule of a single run.
func StepSweep(steps []float64, solvers []bvp.Solver) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))

	for _, h := range steps {
		g, err := bvp.NewGrid(h)
		if err != nil {
			return nil, err
		}

		sols := make([]bvp.Solution, 0, len(solvers))
		for _, s := range solvers {
			sol, err := s.Solve(g)
			if err != nil {
				return nil, fmt.Errorf("h=%g: %s method failed: %w", h, s.Name(), err)
			}
			sols = append(sols, sol)
		}

		res := StepResult{
			Step:    h,
			Points:  g.Len(),
			MaxDiff: make(map[string]float64),
			Defects: make(map[string]float64, len(sols)),
		}
		for i, a := range sols {
			res.Defects[a.Name()] = metrics.BoundaryDefect(a)
			for _, b := range sols[i+1:] {
				res.MaxDiff[a.Name()+"/"+b.Name()] = metrics.MaxAbsDiff(a, b)
			}
		}
		results = append(results, res)
	}

	return results, nil
}
