package quadinf

import "math"

// epsTableCap is the maximum number of partial-sum entries the epsilon
// table holds before the halving rule compacts it. Storage carries a few
// slots of slack because one diagonal sweep reads two positions past the
// newest entry.
const epsTableCap = 50

// epsilonTable implements Wynn's epsilon algorithm on the sequence of
// running partial areas produced by the bisection driver. Each extrapolate
// call sweeps one new diagonal of the epsilon table via the
// reciprocal-difference recurrence
//
//	ε(k+1, n) = ε(k−1, n+1) + 1/(ε(k, n+1) − ε(k, n))
//
// keeping the best accelerated estimate found so far. A ring of the last
// three converged estimates supplies the returned error bound once at
// least four extrapolations have been performed.
type epsilonTable struct {
	vals  [epsTableCap + 5]float64
	n     int // number of live entries
	last3 [3]float64
	calls int
}

// add appends a new partial-area value to the table.
func (e *epsilonTable) add(v float64) {
	e.vals[e.n] = v
	e.n++
}

// extrapolate transforms the current sequence and returns the accelerated
// estimate together with an error estimate. With fewer than three entries,
// or fewer than four prior calls, no meaningful error bound exists yet and
// the returned error is the overflow sentinel.
func (e *epsilonTable) extrapolate() (float64, float64) {
	e.calls++
	n := e.n
	result := e.vals[n-1]
	abserr := oflow

	if n < 3 {
		return result, math.Max(abserr, 5*epmach*math.Abs(result))
	}

	e.vals[n+1] = e.vals[n-1]
	newelm := (n - 1) / 2
	e.vals[n-1] = oflow
	num := n
	k1 := n

	for i := 1; i <= newelm; i++ {
		k2 := k1 - 1
		k3 := k1 - 2
		res := e.vals[k1+1]
		e0 := e.vals[k3-1]
		e1 := e.vals[k2-1]
		e2 := res
		e1abs := math.Abs(e1)

		delta2 := e2 - e1
		err2 := math.Abs(delta2)
		tol2 := math.Max(math.Abs(e2), e1abs) * epmach
		delta3 := e1 - e0
		err3 := math.Abs(delta3)
		tol3 := math.Max(e1abs, math.Abs(e0)) * epmach

		// Three consecutive entries equal to machine accuracy: the
		// sequence has converged; the residual sum is the error.
		if err2 <= tol2 && err3 <= tol3 {
			result = res
			abserr = err2 + err3
			return result, math.Max(abserr, 5*epmach*math.Abs(result))
		}

		e3 := e.vals[k1-1]
		e.vals[k1-1] = e1
		delta1 := e1 - e3
		err1 := math.Abs(delta1)
		tol1 := math.Max(e1abs, math.Abs(e3)) * epmach

		// Two nearly equal neighbors make the reciprocal differences
		// blow up; drop the offending part of the table and stop the
		// sweep.
		if err1 <= tol1 || err2 <= tol2 || err3 <= tol3 {
			n = i + i - 1
			break
		}
		ss := 1/delta1 + 1/delta2 - 1/delta3
		if math.Abs(ss*e1) <= 1e-4 {
			n = i + i - 1
			break
		}

		res = e1 + 1/ss
		e.vals[k1-1] = res
		k1 -= 2

		errEst := err2 + math.Abs(res-e2) + err3
		if errEst <= abserr {
			abserr = errEst
			result = res
		}
	}

	// Halving rule: once the table is full, drop the oldest half. The
	// early convergence return above skips this section, so n can arrive
	// here one or two past the cap; >= keeps the compaction reachable.
	if n >= epsTableCap {
		n = 2*(epsTableCap/2) - 1
	}

	// Shift the diagonal down so the next call appends in place.
	ib := 0
	if num%2 == 0 {
		ib = 1
	}
	for i := 0; i <= newelm; i++ {
		e.vals[ib] = e.vals[ib+2]
		ib += 2
	}
	if num != n {
		idx := num - n
		for i := 0; i < n; i++ {
			e.vals[i] = e.vals[idx]
			idx++
		}
	}
	e.n = n

	if e.calls < 4 {
		e.last3[e.calls-1] = result
		return result, math.Max(oflow, 5*epmach*math.Abs(result))
	}

	abserr = math.Abs(result-e.last3[2]) +
		math.Abs(result-e.last3[1]) +
		math.Abs(result-e.last3[0])
	e.last3[0] = e.last3[1]
	e.last3[1] = e.last3[2]
	e.last3[2] = result

	return result, math.Max(abserr, 5*epmach*math.Abs(result))
}
