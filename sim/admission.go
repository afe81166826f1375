package sim

// arrivalCursor admits processes in (arrival, id) order.
// It only moves forward: each position is admitted exactly once and the
// process list is never rescanned.
type arrivalCursor struct {
	ps    *ProcessSet
	order []int // positions in arrival order
	next  int   // index into order of the first unadmitted position
}

func newArrivalCursor(ps *ProcessSet) *arrivalCursor {
	return &arrivalCursor{ps: ps, order: ps.ArrivalOrder()}
}

// admitUpTo calls admit for every unadmitted position with arrival <= t,
// in (arrival, id) order, and returns how many were admitted.
func (c *arrivalCursor) admitUpTo(t int64, admit func(pos int)) int {
	admitted := 0
	for c.next < len(c.order) && c.ps.At(c.order[c.next]).Arrival <= t {
		admit(c.order[c.next])
		c.next++
		admitted++
	}
	return admitted
}

// pending reports whether any process is still unadmitted.
func (c *arrivalCursor) pending() bool {
	return c.next < len(c.order)
}

// nextArrival returns the earliest unadmitted arrival. ok is false when none remain.
func (c *arrivalCursor) nextArrival() (t int64, ok bool) {
	if !c.pending() {
		return 0, false
	}
	return c.ps.At(c.order[c.next]).Arrival, true
}
