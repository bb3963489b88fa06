package quadinf

import (
	"errors"
	"math"
	"testing"
)

// TestIntegrate_ExponentialTail verifies ∫₀^∞ e^(−x) dx = 1.
func TestIntegrate_ExponentialTail(t *testing.T) {
	res, err := Integrate(func(x float64) float64 {
		return math.Exp(-x)
	}, 0, math.Inf(1), DefaultConfig())
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	AssertIntegral(t, res, 1.0)
	AssertEvaluationPattern(t, res, false)
	PrintResult(t, "∫₀^∞ e^(−x) dx", res)
}

// TestIntegrate_Gaussian verifies ∫_{−∞}^{∞} e^(−x²) dx = √π on the
// two-sided path, where the integrand folds onto the positive half-line.
func TestIntegrate_Gaussian(t *testing.T) {
	res, err := Integrate(func(x float64) float64 {
		return math.Exp(-x * x)
	}, math.Inf(-1), math.Inf(1), DefaultConfig())
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	AssertIntegral(t, res, math.Sqrt(math.Pi))
	AssertEvaluationPattern(t, res, true)
	PrintResult(t, "∫ e^(−x²) dx", res)
}

// TestIntegrate_InverseSquare verifies ∫₁^∞ x^(−2) dx = 1 with anchor
// bound 1. Under the transform x = 1/t the integrand becomes the constant
// 1 on (0,1), so the very first Kronrod panel is exact: one interval,
// exactly 15 evaluations, error at the underflow floor.
func TestIntegrate_InverseSquare(t *testing.T) {
	res, err := Integrate(func(x float64) float64 {
		return 1 / (x * x)
	}, 1, math.Inf(1), DefaultConfig())
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	AssertStatus(t, res, StatusSuccess)
	if diff := math.Abs(res.Value - 1); diff > 1e-13 {
		t.Errorf("❌ Value = %.17g, want 1 within 1e-13 (transformed integrand is constant)", res.Value)
	}
	if res.Intervals != 1 {
		t.Errorf("❌ Intervals = %d, want 1 (first panel is exact)", res.Intervals)
	}
	if res.Evaluations != 15 {
		t.Errorf("❌ Evaluations = %d, want 15", res.Evaluations)
	}
	if res.AbsError > 1e-12 {
		t.Errorf("❌ AbsError = %.3g, want the 50·ε·resAbs floor (≤ 1e-12)", res.AbsError)
	}
	t.Logf("✓ Exact on the first panel: %.17g ± %.3g", res.Value, res.AbsError)
}

// TestIntegrate_LeftRightMirror verifies ∫_{−∞}^0 e^x dx equals
// ∫₀^∞ e^(−x) dx bit for bit: the left-infinite transform produces the
// identical sequence of transformed evaluations.
func TestIntegrate_LeftRightMirror(t *testing.T) {
	right, err := Integrate(func(x float64) float64 {
		return math.Exp(-x)
	}, 0, math.Inf(1), DefaultConfig())
	if err != nil {
		t.Fatalf("right-infinite failed: %v", err)
	}
	left, err := Integrate(func(x float64) float64 {
		return math.Exp(x)
	}, math.Inf(-1), 0, DefaultConfig())
	if err != nil {
		t.Fatalf("left-infinite failed: %v", err)
	}

	if left != right {
		t.Errorf("❌ Mirror symmetry broken:\n  left:  %+v\n  right: %+v", left, right)
	} else {
		t.Logf("✓ Mirror symmetry: left and right results identical (%.15g)", left.Value)
	}
}

// TestIntegrate_Determinism verifies repeated calls produce identical
// output: the algorithm involves no randomness and no shared state.
func TestIntegrate_Determinism(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(-x) * math.Cos(x) }

	first, err := Integrate(f, 0, math.Inf(1), DefaultConfig())
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	second, err := Integrate(f, 0, math.Inf(1), DefaultConfig())
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	if first != second {
		t.Errorf("❌ Nondeterministic results:\n  first:  %+v\n  second: %+v", first, second)
	} else {
		t.Logf("✓ Deterministic: %.15g ± %.3g both runs", first.Value, first.AbsError)
	}
}

// TestIntegrate_MonotonicTightening verifies that halving the relative
// tolerance never increases the reported error bound for a well-behaved
// integrand (it may increase the evaluation count).
func TestIntegrate_MonotonicTightening(t *testing.T) {
	f := func(x float64) float64 { return 1 / (1 + x*x) } // ∫ = π

	prevErr := math.Inf(1)
	prevEvals := 0
	tol := 1e-3
	for i := 0; i < 7; i++ {
		cfg := Config{RelTolerance: tol}
		res, err := Integrate(f, math.Inf(-1), math.Inf(1), cfg)
		if err != nil {
			t.Fatalf("Integrate failed at tol=%.3g: %v", tol, err)
		}
		AssertStatus(t, res, StatusSuccess)
		AssertIntegral(t, res, math.Pi)

		if res.AbsError > prevErr {
			t.Errorf("❌ Tightening tol to %.3g INCREASED the error bound: %.3g > %.3g",
				tol, res.AbsError, prevErr)
		}
		t.Logf("  tol=%.1e → bound=%.3e, evals=%d (prev evals=%d)",
			tol, res.AbsError, res.Evaluations, prevEvals)

		prevErr = res.AbsError
		prevEvals = res.Evaluations
		tol /= 2
	}
}

// TestIntegrate_EvaluationCount cross-checks the structural evaluation
// count against actual callback invocations, for both the semi-infinite
// and the folded two-sided path.
func TestIntegrate_EvaluationCount(t *testing.T) {
	calls := 0
	res, err := Integrate(func(x float64) float64 {
		calls++
		return math.Exp(-x)
	}, 0, math.Inf(1), Config{RelTolerance: 1e-10})
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	if calls != res.Evaluations {
		t.Errorf("❌ Reported %d evaluations, integrand saw %d", res.Evaluations, calls)
	}
	AssertEvaluationPattern(t, res, false)

	calls = 0
	res, err = Integrate(func(x float64) float64 {
		calls++
		return math.Exp(-x * x)
	}, math.Inf(-1), math.Inf(1), Config{RelTolerance: 1e-10})
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	if calls != res.Evaluations {
		t.Errorf("❌ Two-sided: reported %d evaluations, integrand saw %d", res.Evaluations, calls)
	}
	AssertEvaluationPattern(t, res, true)
}

// TestIntegrate_Divergent verifies ∫₀^∞ x dx triggers the divergence
// heuristic instead of returning a finite "success".
func TestIntegrate_Divergent(t *testing.T) {
	res, err := Integrate(func(x float64) float64 {
		return x
	}, 0, math.Inf(1), DefaultConfig())
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	AssertStatus(t, res, StatusProbablyDivergent)
	PrintResult(t, "∫₀^∞ x dx (divergent)", res)
}

// TestIntegrate_InteriorSingularity verifies that a non-integrable
// singularity in the interior of the transformed domain is reported, not
// silently converged. The singular point √2 is irrational, so no dyadic
// bisection midpoint ever lands on it exactly.
func TestIntegrate_InteriorSingularity(t *testing.T) {
	res, err := Integrate(func(x float64) float64 {
		return math.Exp(-x) / math.Abs(x-math.Sqrt2)
	}, 0, math.Inf(1), DefaultConfig())
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	if res.Status == StatusSuccess {
		t.Errorf("❌ Singular integrand reported SUCCESS: value=%.10g ± %.3g",
			res.Value, res.AbsError)
	} else {
		t.Logf("✓ Singularity detected: status=%s after %d intervals", res.Status, res.Intervals)
	}
	PrintResult(t, "∫₀^∞ e^(−x)/|x−√2| dx (singular)", res)
}

// TestIntegrate_FiniteIntervalRejected verifies finite-finite bounds fail
// fast with a distinguishable usage error.
func TestIntegrate_FiniteIntervalRejected(t *testing.T) {
	res, err := Integrate(math.Exp, 0, 1, DefaultConfig())
	if !errors.Is(err, ErrFiniteInterval) {
		t.Errorf("❌ err = %v, want ErrFiniteInterval", err)
	}
	AssertStatus(t, res, StatusInvalidInput)
}

// TestIntegrate_MalformedDomain covers reversed infinities and NaN bounds.
func TestIntegrate_MalformedDomain(t *testing.T) {
	cases := []struct{ a, b float64 }{
		{math.Inf(1), math.Inf(-1)}, // reversed
		{math.Inf(1), math.Inf(1)},  // empty at +∞
		{math.Inf(1), 0},            // reversed semi-infinite
		{0, math.Inf(-1)},           // reversed semi-infinite
		{math.NaN(), math.Inf(1)},
		{0, math.NaN()},
	}
	for _, c := range cases {
		res, err := Integrate(math.Exp, c.a, c.b, DefaultConfig())
		if !errors.Is(err, ErrInvalidDomain) {
			t.Errorf("❌ (%v, %v): err = %v, want ErrInvalidDomain", c.a, c.b, err)
		}
		if res.Status != StatusInvalidInput {
			t.Errorf("❌ (%v, %v): status = %s, want %s", c.a, c.b, res.Status, StatusInvalidInput)
		}
	}
	t.Logf("✓ All malformed domains rejected")
}

// TestIntegrate_ToleranceTooTight verifies tolerances below machine
// precision are rejected up front.
func TestIntegrate_ToleranceTooTight(t *testing.T) {
	res, err := Integrate(math.Exp, 0, math.Inf(1), Config{RelTolerance: 1e-30})
	if !errors.Is(err, ErrTolerance) {
		t.Errorf("❌ err = %v, want ErrTolerance", err)
	}
	AssertStatus(t, res, StatusInvalidInput)

	// A pure absolute tolerance with zero relative tolerance stays valid.
	res, err = Integrate(func(x float64) float64 {
		return math.Exp(-x)
	}, 0, math.Inf(1), Config{AbsTolerance: 1e-6})
	if err != nil {
		t.Errorf("❌ absolute-only tolerance rejected: %v", err)
	}
	AssertStatus(t, res, StatusSuccess)
}

// TestIntegrate_ZeroConfig verifies the zero-value Config selects the
// documented defaults instead of failing.
func TestIntegrate_ZeroConfig(t *testing.T) {
	res, err := Integrate(func(x float64) float64 {
		return math.Exp(-x)
	}, 0, math.Inf(1), Config{})
	if err != nil {
		t.Fatalf("zero-value Config rejected: %v", err)
	}
	AssertIntegral(t, res, 1.0)
}

// TestIntegrate_MaxIntervals verifies that a limit of one subinterval on a
// hard integrand reports MAX_INTERVALS with a partial result.
func TestIntegrate_MaxIntervals(t *testing.T) {
	res, err := Integrate(func(x float64) float64 {
		return math.Exp(-x) * math.Cos(10*x)
	}, 0, math.Inf(1), Config{RelTolerance: 1e-12, MaxIntervals: 1})
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	AssertStatus(t, res, StatusMaxIntervals)
	if res.Intervals != 1 {
		t.Errorf("❌ Intervals = %d, want 1 with MaxIntervals=1", res.Intervals)
	}
	t.Logf("✓ Limit honored: status=%s, value=%.10g ± %.3g", res.Status, res.Value, res.AbsError)
}
