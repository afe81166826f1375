// Derives per-process and aggregate performance metrics from a finished run:
// response, waiting and turnaround time, plus utilization and percentiles.

package sim

// ProcessMetrics holds one process's timing, parallel to the ProcessSet.
type ProcessMetrics struct {
	ID         int64
	Arrival    int64
	Burst      int64
	Start      int64 // first dispatch tick
	End        int64 // completion tick
	Response   int64 // Start - Arrival
	Waiting    int64 // Turnaround - Burst
	Turnaround int64 // End - Arrival
}

// Metrics aggregates statistics about one policy run
// for final reporting. Depends only on the run's output contract.
type Metrics struct {
	Processes []ProcessMetrics

	AvgResponse   float64
	AvgWaiting    float64
	AvgTurnaround float64

	Makespan        int64   // last completion - first dispatch
	BusyTicks       int64   // ticks some process held the CPU
	IdleTicks       int64   // idle ticks inside the timeline
	Utilization     float64 // BusyTicks / Makespan
	Throughput      float64 // completed processes per tick over Makespan
	ContextSwitches int     // changes between distinct processes, idle ignored

	WaitingP50    float64
	WaitingP90    float64
	WaitingP99    float64
	TurnaroundP50 float64
	TurnaroundP90 float64
	TurnaroundP99 float64
}

// ComputeMetrics derives Metrics from start/end arrays parallel to ps.
// ps must be non-empty and every start/end must be set.
func ComputeMetrics(ps *ProcessSet, tl *Timeline, start, end []int64) *Metrics {
	n := ps.Len()
	m := &Metrics{Processes: make([]ProcessMetrics, n)}

	responses := make([]int64, n)
	waits := make([]int64, n)
	turnarounds := make([]int64, n)
	firstStart, lastEnd := start[0], end[0]
	for i := 0; i < n; i++ {
		p := ps.At(i)
		pm := ProcessMetrics{
			ID:         p.ID,
			Arrival:    p.Arrival,
			Burst:      p.Burst,
			Start:      start[i],
			End:        end[i],
			Response:   start[i] - p.Arrival,
			Turnaround: end[i] - p.Arrival,
		}
		pm.Waiting = pm.Turnaround - p.Burst
		m.Processes[i] = pm

		responses[i] = pm.Response
		waits[i] = pm.Waiting
		turnarounds[i] = pm.Turnaround
		firstStart = min(firstStart, start[i])
		lastEnd = max(lastEnd, end[i])
	}

	m.AvgResponse = CalculateMean(responses)
	m.AvgWaiting = CalculateMean(waits)
	m.AvgTurnaround = CalculateMean(turnarounds)

	m.Makespan = lastEnd - firstStart
	m.BusyTicks = ps.TotalBurst()
	m.IdleTicks = tl.IdleTime()
	if m.Makespan > 0 {
		m.Utilization = float64(m.BusyTicks) / float64(m.Makespan)
		m.Throughput = float64(n) / float64(m.Makespan)
	}
	if seq := tl.DispatchSequence(); len(seq) > 1 {
		m.ContextSwitches = len(seq) - 1
	}

	sortedWaits := sortedCopy(waits)
	m.WaitingP50 = CalculatePercentile(sortedWaits, 50)
	m.WaitingP90 = CalculatePercentile(sortedWaits, 90)
	m.WaitingP99 = CalculatePercentile(sortedWaits, 99)
	sortedTurnarounds := sortedCopy(turnarounds)
	m.TurnaroundP50 = CalculatePercentile(sortedTurnarounds, 50)
	m.TurnaroundP90 = CalculatePercentile(sortedTurnarounds, 90)
	m.TurnaroundP99 = CalculatePercentile(sortedTurnarounds, 99)
	return m
}
