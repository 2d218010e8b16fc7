package shooting

import (
	"errors"
	"math"
	"testing"

	"github.com/numlab/bvplab/internal/bvp"
)

func wrap(f func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) { return f(x), nil }
}

func TestFindRoot_KnownRoots(t *testing.T) {
	tests := []struct {
		name   string
		f      func(float64) float64
		lo, hi float64
		want   float64
	}{
		{"cos(x)-x", func(x float64) float64 { return math.Cos(x) - x }, 0, 1, 0.7390851332151607},
		{"cubic", func(x float64) float64 { return x*x*x - 2*x - 5 }, 2, 3, 2.0945514815423265},
		{"linear", func(x float64) float64 { return 3*x - 1.5 }, -10, 10, 0.5},
		{"exp(x)-2", func(x float64) float64 { return math.Exp(x) - 2 }, 0, 2, math.Ln2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findRoot(wrap(tt.f), tt.lo, tt.hi, 1e-10)
			if err != nil {
				t.Fatalf("findRoot returned error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-8 {
				t.Errorf("root = %.12f, want %.12f", got, tt.want)
			}
		})
	}
}

func TestFindRoot_RootAtEndpoint(t *testing.T) {
	got, err := findRoot(wrap(func(x float64) float64 { return x }), 0, 1, 1e-10)
	if err != nil {
		t.Fatalf("findRoot returned error: %v", err)
	}
	if math.Abs(got) > 1e-8 {
		t.Errorf("root = %g, want 0", got)
	}
}

func TestFindRoot_NoSignChange(t *testing.T) {
	_, err := findRoot(wrap(func(x float64) float64 { return x*x + 1 }), -1, 1, 1e-10)
	if !errors.Is(err, bvp.ErrNoSignChange) {
		t.Errorf("expected ErrNoSignChange, got %v", err)
	}
}

func TestFindRoot_PropagatesEvalError(t *testing.T) {
	sentinel := errors.New("boom")
	_, err := findRoot(func(x float64) (float64, error) { return 0, sentinel }, 0, 1, 1e-10)
	if !errors.Is(err, sentinel) {
		t.Errorf("expected evaluation error to propagate, got %v", err)
	}
}
