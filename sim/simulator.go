// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/dispatch-sim/sim/trace"
)

// Result is the finalized output of one policy run over a ProcessSet.
// Start, End and Metrics.Processes are parallel to the ProcessSet.
type Result struct {
	Algorithm Algorithm
	Quantum   int64 // zero unless Algorithm is RR
	Timeline  *Timeline
	Start     []int64
	End       []int64
	Metrics   *Metrics
	Trace     *trace.DispatchTrace
}

// runState is the private mutable state of one policy run: the logical
// clock, the timeline being emitted, and per-position bookkeeping.
// Nothing here is shared between runs.
type runState struct {
	Clock     int64
	alg       Algorithm
	ps        *ProcessSet
	timeline  *Timeline
	start     []int64 // first dispatch tick, -1 until set
	end       []int64 // completion tick, -1 until set
	remaining []int64 // burst left per position
	completed int
	trace     *trace.DispatchTrace
}

func newRunState(alg Algorithm, ps *ProcessSet, tr *trace.DispatchTrace) *runState {
	n := ps.Len()
	rs := &runState{
		alg:       alg,
		ps:        ps,
		timeline:  NewTimeline(2 * n),
		start:     make([]int64, n),
		end:       make([]int64, n),
		remaining: make([]int64, n),
		trace:     tr,
	}
	for i := 0; i < n; i++ {
		rs.start[i] = -1
		rs.end[i] = -1
		rs.remaining[i] = ps.At(i).Burst
	}
	return rs
}

// done reports whether every process has completed.
func (rs *runState) done() bool {
	return rs.completed == rs.ps.Len()
}

// idleUntil emits an idle segment [Clock, t) and jumps the clock.
// No-op when t <= Clock, so idle segments are never zero length.
func (rs *runState) idleUntil(t int64) {
	if t <= rs.Clock {
		return
	}
	logrus.Debugf("[tick %07d] %s: CPU idle until %d", rs.Clock, rs.alg, t)
	rs.trace.RecordDispatch(trace.DispatchRecord{
		Clock:     rs.Clock,
		Kind:      trace.KindIdle,
		Remaining: t - rs.Clock,
		Reason:    "no process ready",
	})
	rs.timeline.Extend(IdleOwner, rs.Clock, t)
	rs.Clock = t
}

// admit records pos entering the policy's ready structure.
func (rs *runState) admit(pos int) {
	p := rs.ps.At(pos)
	logrus.Debugf("[tick %07d] %s: admit P%d (arrival=%d, burst=%d)", rs.Clock, rs.alg, p.ID, p.Arrival, p.Burst)
	rs.trace.RecordAdmission(trace.AdmissionRecord{ProcessID: p.ID, Clock: rs.Clock})
}

// dispatch gives pos the CPU, recording its start on first dispatch.
func (rs *runState) dispatch(pos int, reason string) {
	if rs.start[pos] < 0 {
		rs.start[pos] = rs.Clock
	}
	id := rs.ps.At(pos).ID
	logrus.Debugf("[tick %07d] %s: dispatch P%d (remaining=%d, %s)", rs.Clock, rs.alg, id, rs.remaining[pos], reason)
	rs.trace.RecordDispatch(trace.DispatchRecord{
		Clock:     rs.Clock,
		Kind:      trace.KindDispatch,
		ProcessID: id,
		Remaining: rs.remaining[pos],
		Reason:    reason,
	})
}

// preempt records pos losing the CPU with work remaining.
func (rs *runState) preempt(pos int, reason string) {
	id := rs.ps.At(pos).ID
	logrus.Debugf("[tick %07d] %s: preempt P%d (remaining=%d, %s)", rs.Clock, rs.alg, id, rs.remaining[pos], reason)
	rs.trace.RecordDispatch(trace.DispatchRecord{
		Clock:     rs.Clock,
		Kind:      trace.KindPreempt,
		ProcessID: id,
		Remaining: rs.remaining[pos],
		Reason:    reason,
	})
}

// run executes pos for ticks, extending its segment and advancing the clock.
// Completes pos when its remaining burst reaches zero.
func (rs *runState) run(pos int, ticks int64) {
	if ticks <= 0 || ticks > rs.remaining[pos] {
		panic(fmt.Sprintf("run: invalid slice %d for position %d with %d remaining", ticks, pos, rs.remaining[pos]))
	}
	rs.timeline.Extend(ProcessOwner(rs.ps.At(pos).ID), rs.Clock, rs.Clock+ticks)
	rs.remaining[pos] -= ticks
	rs.Clock += ticks
	if rs.remaining[pos] == 0 {
		rs.complete(pos)
	}
}

func (rs *runState) complete(pos int) {
	rs.end[pos] = rs.Clock
	rs.completed++
	id := rs.ps.At(pos).ID
	logrus.Debugf("[tick %07d] %s: P%d complete", rs.Clock, rs.alg, id)
	rs.trace.RecordDispatch(trace.DispatchRecord{Clock: rs.Clock, Kind: trace.KindComplete, ProcessID: id})
}

// finish coalesces the timeline and derives metrics.
func (rs *runState) finish(quantum int64) *Result {
	rs.timeline.Coalesce()
	logrus.Debugf("[tick %07d] %s: finished with %d segments", rs.Clock, rs.alg, rs.timeline.Len())
	return &Result{
		Algorithm: rs.alg,
		Quantum:   quantum,
		Timeline:  rs.timeline,
		Start:     rs.start,
		End:       rs.end,
		Metrics:   ComputeMetrics(rs.ps, rs.timeline, rs.start, rs.end),
		Trace:     rs.trace,
	}
}
