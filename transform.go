package quadinf

// Domain identifies which kind of infinite integration range is in play.
// The numeric values are the classic QUADPACK inf codes; the sign doubles
// as the direction factor of the variable transform.
type Domain int

const (
	// DomainRightInfinite is [bound, +∞).
	DomainRightInfinite Domain = 1
	// DomainLeftInfinite is (−∞, bound].
	DomainLeftInfinite Domain = -1
	// DomainBothInfinite is (−∞, +∞). The anchor bound is fixed at 0 and
	// the two half-lines fold onto the same transformed coordinate.
	DomainBothInfinite Domain = 2
)

// String returns a human-readable domain description.
func (d Domain) String() string {
	switch d {
	case DomainRightInfinite:
		return "[bound, +inf)"
	case DomainLeftInfinite:
		return "(-inf, bound]"
	case DomainBothInfinite:
		return "(-inf, +inf)"
	}
	return "invalid domain"
}

// direction returns the sign d of the transform x = bound + d·(1−t)/t.
// The two-sided case uses the positive half-line and folds.
func (d Domain) direction() float64 {
	if d == DomainLeftInfinite {
		return -1
	}
	return 1
}

// transformedEval evaluates the integrand at the original-domain image of
// the transformed coordinate t ∈ (0,1) and applies the chain-rule Jacobian:
//
//	x(t) = bound + d·(1−t)/t,   dx = −d/t² dt
//
// so the transformed integrand is f(x(t))/t². For the two-sided domain the
// integrand is additionally sampled at −x and the two values summed, since
// both half-lines map onto the same t.
//
// t = 0 maps to ±∞ and must never be sampled; the Kronrod nodes are
// strictly interior to every subinterval of (0,1), so this cannot happen
// through the rule evaluator.
func transformedEval(f Func, bound, dir float64, dom Domain, t float64) float64 {
	x := bound + dir*(1-t)/t
	v := f(x)
	if dom == DomainBothInfinite {
		v += f(-x)
	}
	return (v / t) / t
}
