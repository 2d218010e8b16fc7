// Package variational fits a cubic trial function to the
// boundary-value problem by minimizing the integrated squared equation
// residual, with the far boundary condition held by a quadratic
// penalty sweep.
package variational

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/optimize"

	"github.com/numlab/bvplab/internal/bvp"
)

// DefaultBoundaryTol is the accepted defect |y(1)-2| after fitting.
const DefaultBoundaryTol = 1e-4

// penaltyWeights is the escalating sweep for the boundary penalty;
// each stage warm-starts from the previous minimizer.
var penaltyWeights = []float64{1e2, 1e4, 1e6, 1e8}

// Solver implements bvp.Solver via a least-squares cubic fit.
type Solver struct {
	prob bvp.Problem

	// BoundaryTol bounds the terminal defect accepted as converged.
	BoundaryTol float64
}

func New() *Solver {
	return &Solver{BoundaryTol: DefaultBoundaryTol}
}

func (s *Solver) Name() string { return "variational" }

// Solve fits the trial coefficients and evaluates the trial at every
// grid point.
func (s *Solver) Solve(g bvp.Grid) (bvp.Solution, error) {
	p, err := s.Fit(g)
	if err != nil {
		return bvp.Solution{}, err
	}

	y := make([]float64, g.Len())
	for i := range y {
		y[i] = p.Eval(g.At(i))
	}
	return bvp.NewSolution(s.Name(), y), nil
}

// Fit minimizes J(a,b,c) = ∫₀¹ r(x)² dx + μ(y(1)-2)² over the grid's
// trapezoid rule, sweeping μ upward, from the initial guess (0,0,0).
func (s *Solver) Fit(g bvp.Grid) (TrialParams, error) {
	x := []float64{0, 0, 0}

	for _, mu := range penaltyWeights {
		problem := optimize.Problem{
			Func: func(v []float64) float64 {
				return s.penalized(g, TrialParams{v[0], v[1], v[2]}, mu)
			},
			Grad: func(grad, v []float64) {
				s.penalizedGrad(grad, g, TrialParams{v[0], v[1], v[2]}, mu)
			},
		}

		result, err := optimize.Minimize(problem, x, nil, &optimize.BFGS{})
		switch {
		case err == nil:
			if err := result.Status.Err(); err != nil {
				return TrialParams{}, fmt.Errorf("variational: %w: %v", bvp.ErrNoConvergence, err)
			}
		case errors.Is(err, optimize.ErrLinesearcherFailure) && result != nil:
			// The linesearch stalls once progress drops below function
			// precision, which on this quadratic objective happens at
			// the minimum. The defect check below decides acceptance.
		default:
			return TrialParams{}, fmt.Errorf("variational: %w: %v", bvp.ErrNoConvergence, err)
		}
		x = result.X
	}

	p := TrialParams{x[0], x[1], x[2]}
	if defect := math.Abs(p.Eval(1) - bvp.YRight); defect > s.BoundaryTol {
		return TrialParams{}, fmt.Errorf("variational: %w: boundary defect %.2e exceeds %.0e",
			bvp.ErrNoConvergence, defect, s.BoundaryTol)
	}
	return p, nil
}

// residual is r(x) = y'' + P(x)y' + Q(x)y - F(x) from the trial's
// analytic derivatives.
func (s *Solver) residual(p TrialParams, x float64) float64 {
	return p.Deriv2(x) + s.prob.P(x)*p.Deriv1(x) + s.prob.Q(x)*p.Eval(x) - s.prob.F(x)
}

// Objective is the unpenalized functional J(a,b,c) = ∫₀¹ r(x)² dx,
// approximated by the trapezoid rule on the grid.
func (s *Solver) Objective(g bvp.Grid, p TrialParams) float64 {
	xs := g.Points()
	r2 := make([]float64, len(xs))
	for i, x := range xs {
		r := s.residual(p, x)
		r2[i] = r * r
	}
	return integrate.Trapezoidal(xs, r2)
}

func (s *Solver) penalized(g bvp.Grid, p TrialParams, mu float64) float64 {
	defect := p.Eval(1) - bvp.YRight
	return s.Objective(g, p) + mu*defect*defect
}

// penalizedGrad fills grad with the exact gradient of the discrete
// penalized objective. The residual is linear in the parameters, with
// sensitivities r_a = P + Qx, r_b = 2 + 2Px + Qx², r_c = 6x + 3Px² + Qx³.
func (s *Solver) penalizedGrad(grad []float64, g bvp.Grid, p TrialParams, mu float64) {
	xs := g.Points()
	ga := make([]float64, len(xs))
	gb := make([]float64, len(xs))
	gc := make([]float64, len(xs))

	for i, x := range xs {
		r := s.residual(p, x)
		P, Q := s.prob.P(x), s.prob.Q(x)
		ga[i] = 2 * r * (P + Q*x)
		gb[i] = 2 * r * (2 + 2*P*x + Q*x*x)
		gc[i] = 2 * r * (6*x + 3*P*x*x + Q*x*x*x)
	}

	defect := p.Eval(1) - bvp.YRight
	grad[0] = integrate.Trapezoidal(xs, ga) + 2*mu*defect
	grad[1] = integrate.Trapezoidal(xs, gb) + 2*mu*defect
	grad[2] = integrate.Trapezoidal(xs, gc) + 2*mu*defect
}
