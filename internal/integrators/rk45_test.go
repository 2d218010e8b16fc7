package integrators

import (
	"math"
	"testing"

	"github.com/numlab/bvplab/internal/bvp"
)

// harmonicOscillator is y'' = -y, whose solution from (1, 0) is
// (cos t, -sin t).
type harmonicOscillator struct{}

func (harmonicOscillator) StateDim() int { return 2 }

func (harmonicOscillator) Derive(x bvp.State, t float64) bvp.State {
	return bvp.State{x[1], -x[0]}
}

func TestRK45_IntegrateTo(t *testing.T) {
	r := NewRK45()
	x0 := bvp.State{1.0, 0.0}

	// One full period returns to the initial state.
	x, err := r.IntegrateTo(harmonicOscillator{}, x0, 0, 2*math.Pi, 1e-8)
	if err != nil {
		t.Fatalf("IntegrateTo returned error: %v", err)
	}
	if math.Abs(x[0]-1) > 1e-6 || math.Abs(x[1]) > 1e-6 {
		t.Errorf("after one period: got (%g, %g), want (1, 0)", x[0], x[1])
	}
}

func TestRK45_IntegrateTo_QuarterPeriod(t *testing.T) {
	r := NewRK45()
	x, err := r.IntegrateTo(harmonicOscillator{}, bvp.State{1, 0}, 0, math.Pi/2, 1e-8)
	if err != nil {
		t.Fatalf("IntegrateTo returned error: %v", err)
	}
	if math.Abs(x[0]) > 1e-7 || math.Abs(x[1]+1) > 1e-7 {
		t.Errorf("at quarter period: got (%g, %g), want (0, -1)", x[0], x[1])
	}
}

func TestRK45_IntegrateTo_EmptyInterval(t *testing.T) {
	r := NewRK45()
	x0 := bvp.State{1, 0}
	x, err := r.IntegrateTo(harmonicOscillator{}, x0, 0.5, 0.5, 1e-8)
	if err != nil {
		t.Fatalf("IntegrateTo returned error: %v", err)
	}
	if x[0] != 1 || x[1] != 0 {
		t.Error("empty interval should return the initial state")
	}
}

func TestRK45_Deterministic(t *testing.T) {
	r := NewRK45()
	a, err := r.IntegrateTo(harmonicOscillator{}, bvp.State{1, 0}, 0, 1.0, 1e-8)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.IntegrateTo(harmonicOscillator{}, bvp.State{1, 0}, 0, 1.0, 1e-8)
	if err != nil {
		t.Fatal(err)
	}
	if a[0] != b[0] || a[1] != b[1] {
		t.Error("repeated runs with identical inputs differ")
	}
}

func TestRK45_VsRK4(t *testing.T) {
	rk4 := NewRK4()
	rk45 := NewRK45()
	dyn := harmonicOscillator{}

	x4 := bvp.State{1, 0}
	dt := 0.001
	for i := 0; i < 1000; i++ {
		x4 = rk4.Step(dyn, x4, float64(i)*dt, dt)
	}

	x45, err := rk45.IntegrateTo(dyn, bvp.State{1, 0}, 0, 1.0, 1e-10)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(x4[0]-x45[0]) > 1e-8 || math.Abs(x4[1]-x45[1]) > 1e-8 {
		t.Errorf("RK4 (%g, %g) and RK45 (%g, %g) disagree", x4[0], x4[1], x45[0], x45[1])
	}
}

func BenchmarkRK45_IntegrateTo(b *testing.B) {
	r := NewRK45()
	for i := 0; i < b.N; i++ {
		_, _ = r.IntegrateTo(harmonicOscillator{}, bvp.State{1, 0}, 0, 1.0, 1e-8)
	}
}
