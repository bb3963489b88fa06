package quadinf

import (
	"math"
	"testing"
)

// AssertIntegral verifies a run converged and that a known closed-form
// value lies within the returned error bound.
//
// Mathematical property:
//
//	|Value − want| ≤ AbsError  when Status = SUCCESS
func AssertIntegral(t *testing.T, res Result, want float64) {
	t.Helper()

	if res.Status != StatusSuccess {
		t.Errorf("❌ Integration did not converge: status=%s (value=%.10g ± %.3g)",
			res.Status, res.Value, res.AbsError)
		return
	}

	diff := math.Abs(res.Value - want)
	if diff > res.AbsError {
		t.Errorf("❌ Result outside its own error bound:\n"+
			"  value: %.15g\n  want:  %.15g\n  |diff|: %.3g > bound %.3g",
			res.Value, want, diff, res.AbsError)
		return
	}

	t.Logf("✓ Integral: %.10g ± %.3g (true error %.3g, %d evaluations, %d intervals)",
		res.Value, res.AbsError, diff, res.Evaluations, res.Intervals)
}

// AssertStatus verifies the run terminated with the expected status code.
func AssertStatus(t *testing.T, res Result, want Status) {
	t.Helper()

	if res.Status != want {
		t.Errorf("❌ Status = %s (want %s); value=%.10g ± %.3g after %d intervals",
			res.Status, want, res.Value, res.AbsError, res.Intervals)
		return
	}
	t.Logf("✓ Status: %s", res.Status)
}

// AssertEvaluationPattern verifies the structural evaluation-count
// invariant of the 15-point rule: the first interval costs 15 evaluations
// and every bisection 30 more, so
//
//	Evaluations = 30·Intervals − 15
//
// doubled when the two-sided fold samples f(x) and f(−x) per node.
func AssertEvaluationPattern(t *testing.T, res Result, twoSided bool) {
	t.Helper()

	want := 30*res.Intervals - 15
	if twoSided {
		want *= 2
	}
	if res.Evaluations != want {
		t.Errorf("❌ Evaluation count broken: %d evaluations for %d intervals (want %d)",
			res.Evaluations, res.Intervals, want)
		return
	}
	t.Logf("✓ Evaluation pattern: %d = 30·%d − 15%s",
		res.Evaluations, res.Intervals, map[bool]string{true: " (×2 two-sided)", false: ""}[twoSided])
}

// PrintResult outputs a full result record to the test log.
func PrintResult(t *testing.T, name string, res Result) {
	t.Helper()

	t.Logf("\n=== %s ===", name)
	t.Logf("  Value:       %.15g", res.Value)
	t.Logf("  AbsError:    %.3g", res.AbsError)
	t.Logf("  Evaluations: %d", res.Evaluations)
	t.Logf("  Intervals:   %d", res.Intervals)
	t.Logf("  Status:      %s", res.Status)
}
