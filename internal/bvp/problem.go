package bvp

import "math"

// Boundary values of the problem.
const (
	YLeft  = 1.0 // y(0)
	YRight = 2.0 // y(1)
)

// Problem is the fixed linear second-order equation in the form
// y'' + P(x)y' + Q(x)y = F(x). The coefficient accessors serve the
// matrix and residual formulations; Derive serves the initial-value
// integrator as the equivalent first-order system.
type Problem struct{}

// P is the convection coefficient x+1.
func (Problem) P(x float64) float64 { return x + 1 }

// Q is the reaction coefficient, constant -2.
func (Problem) Q(x float64) float64 { return -2 }

// F is the forcing term (1-x²)e⁻ˣ.
func (Problem) F(x float64) float64 { return (1 - x*x) * math.Exp(-x) }

// Derive maps (y, y') at t to (y', y''), with
// y'' = -(t+1)y' + 2y + (1-t²)e⁻ᵗ.
func (p Problem) Derive(s State, t float64) State {
	return State{s[1], -p.P(t)*s[1] - p.Q(t)*s[0] + p.F(t)}
}

// StateDim implements System.
func (Problem) StateDim() int { return 2 }
