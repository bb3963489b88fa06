package quadinf

import (
	"errors"
	"math"
)

// Func is an integrand: a pure function ℝ → ℝ. It may be evaluated any
// number of times and in any order; it must not rely on side effects.
type Func func(x float64) float64

// Status classifies the outcome of an integration. Every non-success code
// still comes with the best available estimate in the Result; the caller
// decides whether a degraded answer is acceptable.
type Status string

const (
	// StatusSuccess: the accumulated error is within the requested
	// tolerance max(AbsTolerance, RelTolerance·|Value|).
	StatusSuccess Status = "SUCCESS"
	// StatusMaxIntervals: the subdivision limit was reached first.
	StatusMaxIntervals Status = "MAX_INTERVALS"
	// StatusRoundoff: floating-point roundoff prevents the error from
	// shrinking any further.
	StatusRoundoff Status = "ROUNDOFF_LIMITED"
	// StatusBadIntegrand: extremely local behavior (a singularity or
	// near-singularity) was detected inside the domain.
	StatusBadIntegrand Status = "BAD_INTEGRAND"
	// StatusExtrapolationStalled: convergence acceleration stopped making
	// progress.
	StatusExtrapolationStalled Status = "EXTRAPOLATION_STALLED"
	// StatusProbablyDivergent: the result/area ratio heuristic indicates
	// the integral probably does not converge.
	StatusProbablyDivergent Status = "PROBABLY_DIVERGENT"
	// StatusInvalidInput: malformed domain or impossible tolerances;
	// accompanied by a non-nil error from Integrate.
	StatusInvalidInput Status = "INVALID_INPUT"
)

// Usage errors. Numerical non-convergence is never an error; it is a
// Status on the Result.
var (
	// ErrFiniteInterval: both bounds are finite. This package only
	// integrates over infinite and semi-infinite ranges.
	ErrFiniteInterval = errors.New("quadinf: both bounds finite; use a finite-interval rule")
	// ErrInvalidDomain: NaN bounds, reversed infinities, or any other
	// pair that is not [a,+∞), (−∞,b] or (−∞,+∞).
	ErrInvalidDomain = errors.New("quadinf: malformed integration domain")
	// ErrTolerance: the requested tolerances are tighter than double
	// precision can deliver.
	ErrTolerance = errors.New("quadinf: requested tolerance too tight for float64")
)

// Config controls one integration run. The zero value is usable: zero
// tolerances select the documented defaults and a non-positive interval
// limit selects DefaultMaxIntervals.
type Config struct {
	// AbsTolerance is the requested absolute accuracy (epsabs). Zero is
	// valid and means "relative tolerance only".
	AbsTolerance float64

	// RelTolerance is the requested relative accuracy (epsrel). If both
	// tolerances are zero, RelTolerance defaults to 1e-3.
	RelTolerance float64

	// MaxIntervals bounds the number of subintervals the adaptive driver
	// may create; it is the only bound on work. Bookkeeping storage is
	// four float64 arrays of this length.
	MaxIntervals int
}

// DefaultMaxIntervals is the historical subdivision limit.
const DefaultMaxIntervals = 100

// DefaultConfig returns the standard tolerances: relative 1e-3, absolute
// 0, at most 100 subintervals.
func DefaultConfig() Config {
	return Config{
		AbsTolerance: 0,
		RelTolerance: 1e-3,
		MaxIntervals: DefaultMaxIntervals,
	}
}

// Result is the read-only record of one integration run.
type Result struct {
	Value       float64 // best available estimate of the integral
	AbsError    float64 // estimated bound on |true value − Value|
	Evaluations int     // total integrand evaluations performed
	Intervals   int     // subintervals in the final partition
	Status      Status  // outcome classification
}

// Integrate computes ∫ₐᵇ f(x) dx where exactly one of a, b is infinite
// (semi-infinite range) or both are (two-sided range).
//
// The returned error is non-nil only for misuse: a malformed domain or
// tolerances below machine precision. All numerical difficulties
// (roundoff, suspected singularities, probable divergence) are reported
// through Result.Status alongside the best estimate obtained.
func Integrate(f Func, a, b float64, cfg Config) (Result, error) {
	dom, bound, err := classifyDomain(a, b)
	if err != nil {
		return Result{Status: StatusInvalidInput}, err
	}

	if cfg.MaxIntervals <= 0 {
		cfg.MaxIntervals = DefaultMaxIntervals
	}
	if cfg.AbsTolerance == 0 && cfg.RelTolerance == 0 {
		cfg.RelTolerance = DefaultConfig().RelTolerance
	}
	if cfg.AbsTolerance <= 0 && cfg.RelTolerance < math.Max(50*epmach, 0.5e-28) {
		return Result{Status: StatusInvalidInput}, ErrTolerance
	}

	res := adaptiveIntegrate(f, bound, dom, cfg.AbsTolerance, cfg.RelTolerance, cfg.MaxIntervals)
	return res, nil
}

// classifyDomain derives the domain tag and finite anchor bound from the
// user-facing interval endpoints.
func classifyDomain(a, b float64) (Domain, float64, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, 0, ErrInvalidDomain
	}
	aNegInf := math.IsInf(a, -1)
	aPosInf := math.IsInf(a, 1)
	bNegInf := math.IsInf(b, -1)
	bPosInf := math.IsInf(b, 1)

	switch {
	case aNegInf && bPosInf:
		return DomainBothInfinite, 0, nil
	case !aNegInf && !aPosInf && bPosInf:
		return DomainRightInfinite, a, nil
	case aNegInf && !bNegInf && !bPosInf:
		return DomainLeftInfinite, b, nil
	case !aNegInf && !aPosInf && !bNegInf && !bPosInf:
		return 0, 0, ErrFiniteInterval
	}
	return 0, 0, ErrInvalidDomain
}
