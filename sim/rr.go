package sim

import (
	"fmt"

	"github.com/inference-sim/dispatch-sim/sim/trace"
)

// RoundRobinScheduler grants each ready process at most Quantum ticks in
// FIFO order.
//
// Processes that arrive during a slice are queued before the process that
// just ran is re-queued, so a newcomer never waits behind a process that
// was already running when it arrived.
type RoundRobinScheduler struct {
	Quantum int64
}

func (r *RoundRobinScheduler) Name() Algorithm { return RR }

func (r *RoundRobinScheduler) Schedule(ps *ProcessSet, tr *trace.DispatchTrace) *Result {
	if r.Quantum <= 0 {
		panic(fmt.Sprintf("RoundRobinScheduler: quantum must be > 0, got %d", r.Quantum))
	}
	rs := newRunState(RR, ps, tr)
	cursor := newArrivalCursor(ps)
	ready := NewReadyQueue(ps.Len())
	admit := func(pos int) {
		rs.admit(pos)
		ready.Enqueue(pos)
	}

	first, _ := cursor.nextArrival()
	rs.idleUntil(first)
	cursor.admitUpTo(rs.Clock, admit)

	for !rs.done() {
		pos, ok := ready.Dequeue()
		if !ok {
			next, pending := cursor.nextArrival()
			if !pending {
				panic("RR: ready queue empty with no pending arrivals")
			}
			rs.idleUntil(next)
			cursor.admitUpTo(rs.Clock, admit)
			continue
		}

		rs.dispatch(pos, "head of ready queue")
		rs.run(pos, min(rs.remaining[pos], r.Quantum))

		// Arrivals in (previous clock, clock] go ahead of pos.
		cursor.admitUpTo(rs.Clock, admit)
		if rs.remaining[pos] > 0 {
			rs.preempt(pos, "quantum expired")
			ready.Enqueue(pos)
		}
	}
	return rs.finish(r.Quantum)
}
