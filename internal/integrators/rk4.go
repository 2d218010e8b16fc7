package integrators

import "github.com/numlab/bvplab/internal/bvp"

// RK4 is the classic fixed-step fourth-order Runge-Kutta scheme, kept
// as a cross-check against the adaptive integrator.
type RK4 struct {
	k1, k2, k3, k4 bvp.State
	scratch        bvp.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(bvp.State, n)
		r.k2 = make(bvp.State, n)
		r.k3 = make(bvp.State, n)
		r.k4 = make(bvp.State, n)
		r.scratch = make(bvp.State, n)
	}
}

func (r *RK4) Step(sys bvp.System, x bvp.State, t, dt float64) bvp.State {
	n := len(x)
	r.ensureScratch(n)

	copy(r.k1, sys.Derive(x, t))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*r.k1[i]
	}
	copy(r.k2, sys.Derive(r.scratch, t+dt*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*r.k2[i]
	}
	copy(r.k3, sys.Derive(r.scratch, t+dt*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*r.k3[i]
	}
	copy(r.k4, sys.Derive(r.scratch, t+dt))

	result := make(bvp.State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}
