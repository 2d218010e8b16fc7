package variational

// TrialParams are the free coefficients of the cubic trial function
//
//	y(x) = 1 + a·x + b·x² + c·x³
//
// whose fixed leading 1 encodes y(0)=1 by construction.
type TrialParams struct {
	A, B, C float64
}

// Eval returns the trial value at x.
func (p TrialParams) Eval(x float64) float64 {
	return 1 + x*(p.A+x*(p.B+x*p.C))
}

// Deriv1 returns the trial's first derivative at x.
func (p TrialParams) Deriv1(x float64) float64 {
	return p.A + x*(2*p.B+x*3*p.C)
}

// Deriv2 returns the trial's second derivative at x.
func (p TrialParams) Deriv2(x float64) float64 {
	return 2*p.B + 6*p.C*x
}
