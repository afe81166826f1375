package sim

import "github.com/inference-sim/dispatch-sim/sim/trace"

// SJFScheduler runs the arrived process with the shortest burst to completion.
// Ties break by arrival, then ID.
// Warning: SJF can starve long processes under sustained arrivals.
type SJFScheduler struct{}

func (s *SJFScheduler) Name() Algorithm { return SJF }

func (s *SJFScheduler) Schedule(ps *ProcessSet, tr *trace.DispatchTrace) *Result {
	rs := newRunState(SJF, ps, tr)
	cursor := newArrivalCursor(ps)
	ready := NewPriorityQueue(ps.Len(), ShortestBurstFirst(ps))
	admit := func(pos int) {
		rs.admit(pos)
		ready.Push(pos)
	}

	for !rs.done() {
		cursor.admitUpTo(rs.Clock, admit)
		pos, ok := ready.Pop()
		if !ok {
			next, pending := cursor.nextArrival()
			if !pending {
				panic("SJF: ready heap empty with no pending arrivals")
			}
			rs.idleUntil(next)
			continue
		}
		rs.dispatch(pos, "shortest burst")
		rs.run(pos, ps.At(pos).Burst)
	}
	return rs.finish(0)
}
