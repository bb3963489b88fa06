package quadinf

// workList is the bookkeeping arena for the adaptive driver: four parallel
// arrays hold the subintervals of the transformed (0,1) range (endpoints,
// area estimate, error estimate), and order holds interval indices in
// descending error order.
//
// Only the top of the list is kept fully sorted; once more than half the
// capacity is consumed, the tail is maintained in ascending order from the
// bottom instead, so each update shifts only the affected neighborhood.
// This incremental reinsertion is not interchangeable with a heap: a heap
// would give a different (not equivalent) bisection order and break
// evaluation-count parity with the classic algorithm.
//
// Intervals partition (0,1) exactly: bisection replaces one interval with
// its two halves and never merges, so the widths always sum to 1.
type workList struct {
	limit int

	alist []float64 // left endpoints in transformed coordinates
	blist []float64 // right endpoints
	rlist []float64 // area estimates
	elist []float64 // error estimates

	order []int // interval indices, descending error
	last  int   // number of intervals currently in the partition
	nrmax int   // position in order of the interval to bisect next
}

func newWorkList(limit int) *workList {
	return &workList{
		limit: limit,
		alist: make([]float64, limit),
		blist: make([]float64, limit),
		rlist: make([]float64, limit),
		elist: make([]float64, limit),
		order: make([]int, limit),
	}
}

// start seeds the list with the single interval (0,1).
func (w *workList) start(area, errEst float64) {
	w.alist[0] = 0
	w.blist[0] = 1
	w.rlist[0] = area
	w.elist[0] = errEst
	w.order[0] = 0
	w.last = 1
	w.nrmax = 0
}

// reorder restores the descending-error ordering after a bisection has
// overwritten the interval at index maxerr and appended a new interval at
// index last−1. The displaced entry is bubbled toward the top if its error
// grew, then reinserted top-down; the new (smaller-error) interval is
// reinserted bottom-up. Returns the index of the interval now holding the
// position nrmax, which is the next bisection candidate.
func (w *workList) reorder(maxerr int) int {
	if w.last <= 2 {
		w.order[0] = 0
		w.order[1] = 1
		return w.order[w.nrmax]
	}

	errmax := w.elist[maxerr]

	// If subdivision increased the error estimate, the entry may have to
	// move up before the top-down insert can start.
	for w.nrmax > 0 {
		prev := w.order[w.nrmax-1]
		if errmax <= w.elist[prev] {
			break
		}
		w.order[w.nrmax] = prev
		w.nrmax--
	}

	// Number of entries kept in descending order shrinks as the partition
	// approaches capacity; the remainder is kept ascending from the bottom.
	top := w.last
	if w.last > w.limit/2+2 {
		top = w.limit + 3 - w.last
	}

	errmin := w.elist[w.last-1]
	jbnd := top - 2

	insertAt := -1
	for p := w.nrmax + 1; p <= jbnd; p++ {
		succ := w.order[p]
		if errmax >= w.elist[succ] {
			insertAt = p
			break
		}
		w.order[p-1] = succ
	}

	if insertAt < 0 {
		w.order[jbnd] = maxerr
		w.order[jbnd+1] = w.last - 1
		return w.order[w.nrmax]
	}

	w.order[insertAt-1] = maxerr

	// Insert the smaller-error child bottom-up.
	k := jbnd
	inserted := false
	for j := insertAt; j <= jbnd; j++ {
		succ := w.order[k]
		if errmin < w.elist[succ] {
			w.order[k+1] = w.last - 1
			inserted = true
			break
		}
		w.order[k+1] = succ
		k--
	}
	if !inserted {
		w.order[insertAt] = w.last - 1
	}
	return w.order[w.nrmax]
}
