package integrators

import (
	"errors"
	"math"

	"github.com/numlab/bvplab/internal/bvp"
)

// ErrStepTooSmall indicates the adaptive controller drove the step
// below its floor without meeting the error tolerance.
var ErrStepTooSmall = errors.New("integrators: adaptive step below minimum")

// Dormand-Prince coefficients (RK45)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0
)

// RK45 is an adaptive Dormand-Prince integrator with embedded
// fourth-order error estimate.
type RK45 struct {
	safety   float64
	minScale float64
	maxScale float64
	minStep  float64
}

func NewRK45() *RK45 {
	return &RK45{
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
		minStep:  1e-14,
	}
}

// Step advances one fixed step, discarding the error estimate.
func (r *RK45) Step(sys bvp.System, x bvp.State, t, dt float64) bvp.State {
	xNew, _ := r.attempt(sys, x, t, dt)
	return xNew
}

// attempt takes a single trial step and returns the new state together
// with the scaled local error estimate.
func (r *RK45) attempt(sys bvp.System, x bvp.State, t, dt float64) (bvp.State, float64) {
	n := len(x)

	k1 := sys.Derive(x, t)

	x2 := make(bvp.State, n)
	for i := 0; i < n; i++ {
		x2[i] = x[i] + dt*b21*k1[i]
	}
	k2 := sys.Derive(x2, t+a2*dt)

	x3 := make(bvp.State, n)
	for i := 0; i < n; i++ {
		x3[i] = x[i] + dt*(b31*k1[i]+b32*k2[i])
	}
	k3 := sys.Derive(x3, t+a3*dt)

	x4 := make(bvp.State, n)
	for i := 0; i < n; i++ {
		x4[i] = x[i] + dt*(b41*k1[i]+b42*k2[i]+b43*k3[i])
	}
	k4 := sys.Derive(x4, t+a4*dt)

	x5 := make(bvp.State, n)
	for i := 0; i < n; i++ {
		x5[i] = x[i] + dt*(b51*k1[i]+b52*k2[i]+b53*k3[i]+b54*k4[i])
	}
	k5 := sys.Derive(x5, t+a5*dt)

	x6 := make(bvp.State, n)
	for i := 0; i < n; i++ {
		x6[i] = x[i] + dt*(b61*k1[i]+b62*k2[i]+b63*k3[i]+b64*k4[i]+b65*k5[i])
	}
	k6 := sys.Derive(x6, t+dt)

	xNew := make(bvp.State, n)
	for i := 0; i < n; i++ {
		xNew[i] = x[i] + dt*(c1*k1[i]+c3*k3[i]+c4*k4[i]+c5*k5[i]+c6*k6[i])
	}

	k7 := sys.Derive(xNew, t+dt)

	errMax := 0.0
	for i := 0; i < n; i++ {
		errEst := dt * (dc1*k1[i] + dc3*k3[i] + dc4*k4[i] + dc5*k5[i] + dc6*k6[i] + dc7*k7[i])
		scale := math.Abs(x[i]) + math.Abs(dt*k1[i]) + 1e-10
		errMax = math.Max(errMax, math.Abs(errEst)/scale)
	}

	return xNew, errMax
}

// IntegrateTo advances the state from t0 to exactly t1 with adaptive
// substeps, rejecting and shrinking any step whose scaled error
// exceeds tol and clamping the final substep to land on t1.
func (r *RK45) IntegrateTo(sys bvp.System, x bvp.State, t0, t1, tol float64) (bvp.State, error) {
	cur := x.Clone()
	if t1 <= t0 {
		return cur, nil
	}

	t := t0
	dt := (t1 - t0) / 4

	for t < t1 {
		if t+dt > t1 {
			dt = t1 - t
		}

		xNew, errMax := r.attempt(sys, cur, t, dt)
		ratio := errMax / tol

		if ratio > 1 {
			dt *= math.Max(r.minScale, r.safety*math.Pow(ratio, -0.25))
			if dt < r.minStep {
				return nil, ErrStepTooSmall
			}
			continue
		}

		t += dt
		cur = xNew
		if !cur.IsValid() {
			return nil, errors.New("integrators: state diverged (NaN or Inf)")
		}

		if ratio > 0 {
			dt *= math.Min(r.maxScale, r.safety*math.Pow(ratio, -0.2))
		} else {
			dt *= r.maxScale
		}
	}

	return cur, nil
}
