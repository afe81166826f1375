package sim

import "github.com/inference-sim/dispatch-sim/sim/trace"

// FCFSScheduler dispatches in (arrival, id) order without preemption.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Name() Algorithm { return FCFS }

func (f *FCFSScheduler) Schedule(ps *ProcessSet, tr *trace.DispatchTrace) *Result {
	rs := newRunState(FCFS, ps, tr)
	for _, pos := range ps.ArrivalOrder() {
		p := ps.At(pos)
		rs.idleUntil(p.Arrival)
		rs.admit(pos)
		rs.dispatch(pos, "earliest arrival")
		rs.run(pos, p.Burst)
	}
	return rs.finish(0)
}
