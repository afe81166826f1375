package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inference-sim/dispatch-sim/sim/trace"
)

func TestSJF_ShortArrivalDoesNotPreempt(t *testing.T) {
	// GIVEN a short process arriving while a long one runs
	res := schedule(t, SJF, 0,
		Process{ID: 1, Arrival: 0, Burst: 10},
		Process{ID: 2, Arrival: 1, Burst: 1},
	)

	// THEN the long one still runs to completion first
	assert.Equal(t, "[0,10)=P1,[10,11)=P2", res.Timeline.String())
	assert.Equal(t, 0, trace.Summarize(res.Trace).Preemptions)
}

func TestSJF_PicksShortestAmongArrived(t *testing.T) {
	// GIVEN three processes waiting when the CPU frees up
	res := schedule(t, SJF, 0,
		Process{ID: 1, Arrival: 0, Burst: 4},
		Process{ID: 2, Arrival: 1, Burst: 6},
		Process{ID: 3, Arrival: 2, Burst: 2},
		Process{ID: 4, Arrival: 3, Burst: 2},
	)

	// THEN equal bursts break by arrival and the longest runs last
	assert.Equal(t, []int64{1, 3, 4, 2}, res.Timeline.DispatchSequence())
}

func TestSJF_StarvesLongProcessUnderSteadyShortArrivals(t *testing.T) {
	// GIVEN a long process that keeps losing to short arrivals
	procs := []Process{{ID: 100, Arrival: 0, Burst: 1}, {ID: 101, Arrival: 0, Burst: 5}}
	for i := int64(0); i < 10; i++ {
		procs = append(procs, Process{ID: i + 1, Arrival: 1 + i, Burst: 1})
	}

	res := schedule(t, SJF, 0, procs...)

	// THEN it runs only after all of them
	seq := res.Timeline.DispatchSequence()
	assert.Equal(t, int64(101), seq[len(seq)-1])
}

func TestSJF_IdleUntilNextArrival(t *testing.T) {
	res := schedule(t, SJF, 0,
		Process{ID: 1, Arrival: 0, Burst: 2},
		Process{ID: 2, Arrival: 6, Burst: 2},
	)

	assert.Equal(t, "[0,2)=P1,[2,6)=idle,[6,8)=P2", res.Timeline.String())
	assert.Equal(t, int64(4), res.Metrics.IdleTicks)
}
