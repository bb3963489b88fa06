package quadinf

import "math"

// adaptiveIntegrate is the adaptive bisection driver over the transformed
// unit interval. It owns the whole lifecycle of one integration: initial
// Kronrod estimate, the bisection loop with incremental worklist
// reordering, periodic epsilon-algorithm extrapolation of the running
// total, and the termination decision.
//
// The branch conditions and their evaluation order follow the classic
// QAGI control flow exactly. Several of the checks look independent but
// are not: when more than one termination condition is true in the same
// iteration, the order below decides which status wins, so reordering
// them changes observable behavior.
func adaptiveIntegrate(f Func, bound float64, dom Domain, epsabs, epsrel float64, limit int) Result {
	w := newWorkList(limit)

	// ========================================
	// Phase I: first approximation on (0,1)
	// ========================================
	area0, err0, resAbs, resAsc := kronrod15(f, bound, dom, 0, 1)
	w.start(area0, err0)

	result := area0
	abserr := err0
	dres := math.Abs(result)
	errbnd := math.Max(epsabs, epsrel*dres)
	status := StatusSuccess
	last := 1

	if abserr <= 100*epmach*resAbs && abserr > errbnd {
		status = StatusRoundoff
	}
	if limit == 1 {
		status = StatusMaxIntervals
	}
	if status != StatusSuccess || (abserr <= errbnd && abserr != resAsc) || abserr == 0 {
		return newResult(result, abserr, last, dom, status)
	}

	// ========================================
	// Phase II: adaptive bisection loop
	// ========================================
	var table epsilonTable
	table.add(result)

	maxerr := 0     // index of the interval with the largest error
	errmax := abserr
	area := result  // running total over the current partition
	errsum := abserr
	abserr = oflow  // best extrapolated error so far
	ktmin := 0      // extrapolations since the estimate last improved
	iroff1, iroff2, iroff3 := 0, 0, 0
	ierro := 0      // roundoff seen inside the extrapolation table
	extrap := false // currently favoring extrapolation over bisection
	noext := false  // extrapolation disabled for the rest of this run
	ksgn := -1
	if dres >= (1-50*epmach)*resAbs {
		ksgn = 1
	}
	var small, erlarg, ertest, correc float64
	directSum := false

	for last = 2; last <= limit; last++ {
		// Bisect the interval with the largest error estimate.
		a1 := w.alist[maxerr]
		b1 := 0.5 * (w.alist[maxerr] + w.blist[maxerr])
		a2, b2 := b1, w.blist[maxerr]
		erlast := errmax

		area1, error1, _, defab1 := kronrod15(f, bound, dom, a1, b1)
		area2, error2, _, defab2 := kronrod15(f, bound, dom, a2, b2)

		area12 := area1 + area2
		erro12 := error1 + error2
		errsum += erro12 - errmax
		area += area12 - w.rlist[maxerr]

		// Count bisections that brought no improvement; they signal that
		// roundoff, not resolution, is the limiting factor.
		if defab1 != error1 && defab2 != error2 {
			if math.Abs(w.rlist[maxerr]-area12) <= 1e-5*math.Abs(area12) &&
				erro12 >= 0.99*errmax {
				if extrap {
					iroff2++
				} else {
					iroff1++
				}
			}
			if last > 10 && erro12 > errmax {
				iroff3++
			}
		}
		errbnd = math.Max(epsabs, epsrel*math.Abs(area))

		if iroff1+iroff2 >= 10 || iroff3 >= 20 {
			status = StatusRoundoff
		}
		if iroff2 >= 5 {
			ierro = 3
		}
		if last == limit {
			status = StatusMaxIntervals
		}
		// A bisected interval whose width has collapsed to machine
		// resolution at an interior point marks a local singularity.
		if math.Max(math.Abs(a1), math.Abs(b2)) <=
			(1+100*epmach)*(math.Abs(a2)+1000*uflow) {
			status = StatusBadIntegrand
		}

		// The child with the larger error keeps the parent's slot; the
		// other is appended as a new entry.
		if error2 > error1 {
			w.alist[maxerr] = a2
			w.alist[last-1] = a1
			w.blist[last-1] = b1
			w.rlist[maxerr] = area2
			w.rlist[last-1] = area1
			w.elist[maxerr] = error2
			w.elist[last-1] = error1
		} else {
			w.alist[last-1] = a2
			w.blist[maxerr] = b1
			w.blist[last-1] = b2
			w.rlist[maxerr] = area1
			w.rlist[last-1] = area2
			w.elist[maxerr] = error1
			w.elist[last-1] = error2
		}
		w.last = last
		maxerr = w.reorder(maxerr)
		errmax = w.elist[maxerr]

		if errsum <= errbnd {
			directSum = true
			break
		}
		if status != StatusSuccess {
			break
		}
		if last == 2 {
			small = 0.375
			erlarg = errsum
			ertest = errbnd
			table.add(area)
			continue
		}
		if noext {
			continue
		}

		erlarg -= erlast
		if math.Abs(b1-a1) > small {
			erlarg += erro12
		}
		if !extrap {
			// Keep plain bisection until the next candidate is small.
			if w.blist[maxerr]-w.alist[maxerr] > small {
				continue
			}
			extrap = true
			w.nrmax = 1
		}
		if ierro != 3 && erlarg > ertest {
			// The larger intervals still carry enough error to be worth
			// bisecting before the next extrapolation attempt.
			jupbnd := last
			if last > 2+limit/2 {
				jupbnd = limit + 3 - last
			}
			larger := false
			for k := w.nrmax; k < jupbnd; k++ {
				maxerr = w.order[w.nrmax]
				errmax = w.elist[maxerr]
				if math.Abs(w.blist[maxerr]-w.alist[maxerr]) > small {
					larger = true
					break
				}
				w.nrmax++
			}
			if larger {
				continue
			}
		}

		// ========================================
		// Phase III: extrapolation attempt
		// ========================================
		table.add(area)
		reseps, abseps := table.extrapolate()
		ktmin++
		if ktmin > 5 && abserr < 1e-3*errsum {
			status = StatusExtrapolationStalled
		}
		if abseps < abserr {
			// Accept the accelerated estimate only when it beats the
			// best error seen so far.
			ktmin = 0
			abserr = abseps
			result = reseps
			correc = erlarg
			ertest = math.Max(epsabs, epsrel*math.Abs(reseps))
			if abserr <= ertest {
				break
			}
		}
		if table.n == 1 {
			noext = true
		}
		if status == StatusExtrapolationStalled {
			break
		}

		// Back to bisection, now on a finer scale.
		maxerr = w.order[0]
		errmax = w.elist[maxerr]
		w.nrmax = 0
		extrap = false
		small *= 0.5
		erlarg = errsum
	}

	// ========================================
	// Phase IV: termination decision
	// ========================================
	if !directSum {
		if abserr == oflow {
			directSum = true
		} else if status != StatusSuccess || ierro != 0 {
			if ierro == 3 {
				abserr += correc
			}
			if status == StatusSuccess {
				status = StatusRoundoff
			}
			if result != 0 && area != 0 {
				if abserr/math.Abs(result) > errsum/math.Abs(area) {
					directSum = true
				}
			} else if abserr > errsum {
				directSum = true
			} else if area == 0 {
				return newResult(result, abserr, last, dom, status)
			}
		}
		if !directSum {
			// Divergence heuristic: an extrapolated value wildly out of
			// proportion to the accumulated area, or an error exceeding
			// the area, means the integral probably does not exist.
			if !(ksgn == -1 &&
				math.Max(math.Abs(result), math.Abs(area)) <= resAbs*0.01) {
				if 0.01 > result/area || result/area > 100 ||
					errsum > math.Abs(area) {
					status = StatusProbablyDivergent
				}
			}
			return newResult(result, abserr, last, dom, status)
		}
	}

	// Error-sum success (or extrapolation abandoned): the direct sum over
	// the partition is the more numerically stable value.
	result = 0
	for k := 0; k < last; k++ {
		result += w.rlist[k]
	}
	abserr = errsum
	return newResult(result, abserr, last, dom, status)
}

// newResult assembles the caller-visible record. The evaluation count is
// structural: every interval costs one 15-point rule application, and each
// bisection evaluates two children, giving 30·last − 15 integrand calls,
// doubled for the two-sided domain where every call folds f(x) + f(−x).
func newResult(value, absErr float64, last int, dom Domain, status Status) Result {
	evals := 30*last - 15
	if dom == DomainBothInfinite {
		evals *= 2
	}
	return Result{
		Value:       value,
		AbsError:    absErr,
		Evaluations: evals,
		Intervals:   last,
		Status:      status,
	}
}
