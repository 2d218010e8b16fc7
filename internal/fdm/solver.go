// Package fdm discretizes the boundary-value problem with second-order
// central differences and solves the resulting dense linear system by
// LU factorization.
package fdm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/numlab/bvplab/internal/bvp"
)

// Solver implements bvp.Solver via finite differences.
type Solver struct {
	prob bvp.Problem
}

func New() *Solver { return &Solver{} }

func (s *Solver) Name() string { return "finite-diff" }

// Solve assembles A·y = b and solves it directly. Interior row i
// encodes
//
//	(y[i-1] - 2y[i] + y[i+1])/h² + P(xᵢ)(y[i+1] - y[i-1])/(2h) + Q(xᵢ)y[i] = F(xᵢ)
//
// and the two boundary rows pin y(0) and y(1) exactly.
func (s *Solver) Solve(g bvp.Grid) (bvp.Solution, error) {
	A, b := s.assemble(g)

	var lu mat.LU
	lu.Factorize(A)

	var y mat.VecDense
	if err := lu.SolveVecTo(&y, false, b); err != nil {
		return bvp.Solution{}, fmt.Errorf("finite-diff: %w: %v", bvp.ErrSingularSystem, err)
	}

	out := make([]float64, y.Len())
	for i := range out {
		out[i] = y.AtVec(i)
	}
	return bvp.NewSolution(s.Name(), out), nil
}

func (s *Solver) assemble(g bvp.Grid) (*mat.Dense, *mat.VecDense) {
	n := g.Len() - 1
	h := g.Step()
	h2 := h * h

	A := mat.NewDense(n+1, n+1, nil)
	b := mat.NewVecDense(n+1, nil)

	A.Set(0, 0, 1)
	b.SetVec(0, bvp.YLeft)
	A.Set(n, n, 1)
	b.SetVec(n, bvp.YRight)

	for i := 1; i < n; i++ {
		xi := g.At(i)
		A.Set(i, i-1, 1/h2-s.prob.P(xi)/(2*h))
		A.Set(i, i, -2/h2+s.prob.Q(xi))
		A.Set(i, i+1, 1/h2+s.prob.P(xi)/(2*h))
		b.SetVec(i, s.prob.F(xi))
	}
	return A, b
}
