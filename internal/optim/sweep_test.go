package optim

import (
	"testing"

	"github.com/numlab/bvplab/internal/bvp"
	"github.com/numlab/bvplab/internal/fdm"
	"github.com/numlab/bvplab/internal/shooting"
)

func TestStepSweep_Converges(t *testing.T) {
	solvers := []bvp.Solver{shooting.New(), fdm.New()}

	results, err := StepSweep([]float64{0.2, 0.1, 0.05}, solvers)
	if err != nil {
		t.Fatalf("StepSweep returned error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	key := "shooting/finite-diff"
	for i, res := range results {
		if _, ok := res.MaxDiff[key]; !ok {
			t.Fatalf("result %d missing pair %q", i, key)
		}
	}

	// Central differences are second order: halving h should shrink
	// the gap to the (much more accurate) shooting solution.
	if results[2].MaxDiff[key] >= results[0].MaxDiff[key] {
		t.Errorf("max diff did not decrease: h=0.2 gives %.3e, h=0.05 gives %.3e",
			results[0].MaxDiff[key], results[2].MaxDiff[key])
	}
}

func TestStepSweep_InvalidStep(t *testing.T) {
	if _, err := StepSweep([]float64{-1}, []bvp.Solver{fdm.New()}); err == nil {
		t.Error("expected error for invalid step")
	}
}
