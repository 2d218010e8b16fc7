package shooting

import (
	"errors"
	"math"
	"testing"

	"github.com/numlab/bvplab/internal/bvp"
)

func mustGrid(t *testing.T, h float64) bvp.Grid {
	t.Helper()
	g, err := bvp.NewGrid(h)
	if err != nil {
		t.Fatalf("NewGrid(%g): %v", h, err)
	}
	return g
}

func TestSolver_BoundaryValues(t *testing.T) {
	g := mustGrid(t, 0.1)

	sol, err := New().Solve(g)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	if sol.Len() != 11 {
		t.Fatalf("expected 11 samples, got %d", sol.Len())
	}
	if sol.At(0) != bvp.YLeft {
		t.Errorf("y(0) = %g, want exactly %g", sol.At(0), bvp.YLeft)
	}
	if math.Abs(sol.At(10)-bvp.YRight) > 1e-6 {
		t.Errorf("y(1) = %.10f, want %g within 1e-6", sol.At(10), bvp.YRight)
	}
}

func TestSolver_MidpointSanity(t *testing.T) {
	g := mustGrid(t, 0.1)
	sol, err := New().Solve(g)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	// x=0.5 is grid index 5.
	mid := sol.At(5)
	if mid < 1.3 || mid > 1.7 {
		t.Errorf("y(0.5) = %g, expected within [1.3, 1.7]", mid)
	}
}

func TestSolver_MidpointGolden(t *testing.T) {
	// y(0.5) of the continuous solution, from a tight-tolerance
	// reference shoot (fixed-step RK4 at dt=5e-6, bisected slope).
	g := mustGrid(t, 0.1)
	sol, err := New().Solve(g)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	const want = 1.310524708476
	if d := math.Abs(sol.At(5) - want); d > 1e-6 {
		t.Errorf("y(0.5) = %.12f, want %.12f within 1e-6", sol.At(5), want)
	}
}

func TestSolver_Monotone(t *testing.T) {
	// Not a theorem, but the solution of this particular problem rises
	// from 1 to 2 without large oscillation; every sample should stay
	// inside a loose envelope.
	g := mustGrid(t, 0.1)
	sol, err := New().Solve(g)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	for i := 0; i < sol.Len(); i++ {
		if sol.At(i) < 0.5 || sol.At(i) > 2.5 {
			t.Errorf("y(%g) = %g outside plausible envelope", g.At(i), sol.At(i))
		}
	}
}

func TestSolver_Idempotent(t *testing.T) {
	g := mustGrid(t, 0.1)
	s := New()

	first, err := s.Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Solve(g)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < first.Len(); i++ {
		if first.At(i) != second.At(i) {
			t.Errorf("index %d: %g != %g on repeat solve", i, first.At(i), second.At(i))
		}
	}
}

func TestSolver_BadBracket(t *testing.T) {
	g := mustGrid(t, 0.1)
	s := New()
	// Both endpoints overshoot the terminal value, so the residual
	// cannot change sign.
	s.Bracket = [2]float64{50, 60}

	_, err := s.Solve(g)
	if !errors.Is(err, bvp.ErrNoSignChange) {
		t.Errorf("expected ErrNoSignChange, got %v", err)
	}
}

func TestSolver_CoarseGrid(t *testing.T) {
	// Even with only two grid points the integration still spans the
	// full interval, so the terminal condition must hold.
	g := mustGrid(t, 1.0)
	sol, err := New().Solve(g)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if sol.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", sol.Len())
	}
	if sol.At(0) != 1 {
		t.Errorf("y(0) = %g, want 1", sol.At(0))
	}
	if math.Abs(sol.At(1)-2) > 1e-6 {
		t.Errorf("y(1) = %g, want 2 within 1e-6", sol.At(1))
	}
}
