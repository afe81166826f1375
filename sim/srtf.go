package sim

import (
	"fmt"

	"github.com/inference-sim/dispatch-sim/sim/trace"
)

// SRTFScheduler always runs the arrived process with the least remaining
// burst, preempting on arrivals. Ties break by arrival, then ID.
//
// The clock advances in variable-length jumps: the running process either
// finishes or runs until the next arrival, whichever comes first. Decisions
// are only needed at those points, since nothing else can change the order.
type SRTFScheduler struct{}

func (s *SRTFScheduler) Name() Algorithm { return SRTF }

func (s *SRTFScheduler) Schedule(ps *ProcessSet, tr *trace.DispatchTrace) *Result {
	rs := newRunState(SRTF, ps, tr)
	cursor := newArrivalCursor(ps)
	ready := NewPriorityQueue(ps.Len(), ShortestRemainingFirst(ps, rs.remaining))
	admit := func(pos int) {
		rs.admit(pos)
		ready.Push(pos)
	}

	running := -1 // position that held the CPU in the previous step; -1 for idle
	for !rs.done() {
		cursor.admitUpTo(rs.Clock, admit)
		next, pending := cursor.nextArrival()

		pos, ok := ready.Peek()
		if !ok {
			if !pending {
				panic("SRTF: ready heap empty with no pending arrivals")
			}
			rs.idleUntil(next)
			running = -1
			continue
		}

		if pos != running {
			if running >= 0 {
				rs.preempt(running, fmt.Sprintf("P%d has less remaining", ps.At(pos).ID))
			}
			rs.dispatch(pos, "shortest remaining")
			running = pos
		}

		finish := rs.Clock + rs.remaining[pos]
		if !pending || finish <= next {
			ready.Pop()
			rs.run(pos, rs.remaining[pos])
			running = -1
			continue
		}

		// Run until the next arrival; the key changed, so re-insert.
		ready.Pop()
		rs.run(pos, next-rs.Clock)
		ready.Push(pos)
	}
	return rs.finish(0)
}
