package trace

// TraceSummary aggregates statistics from a DispatchTrace.
type TraceSummary struct {
	TotalDecisions  int
	Admitted        int
	Dispatches      int
	Preemptions     int
	Completions     int
	IdlePeriods     int
	IdleTicks       int64
	ContextSwitches int           // changes between distinct processes, idle ignored
	DispatchOrder   []int64       // dispatched IDs with consecutive repeats collapsed
	DispatchCounts  map[int64]int // process ID → number of dispatches
}

// Summarize computes aggregate statistics from a DispatchTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(dt *DispatchTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchCounts: make(map[int64]int),
	}
	if dt == nil {
		return summary
	}

	summary.Admitted = len(dt.Admissions)
	summary.TotalDecisions = len(dt.Dispatches)
	for _, d := range dt.Dispatches {
		switch d.Kind {
		case KindDispatch:
			summary.Dispatches++
			summary.DispatchCounts[d.ProcessID]++
			if n := len(summary.DispatchOrder); n == 0 || summary.DispatchOrder[n-1] != d.ProcessID {
				summary.DispatchOrder = append(summary.DispatchOrder, d.ProcessID)
			}
		case KindPreempt:
			summary.Preemptions++
		case KindComplete:
			summary.Completions++
		case KindIdle:
			summary.IdlePeriods++
			summary.IdleTicks += d.Remaining
		}
	}
	if n := len(summary.DispatchOrder); n > 1 {
		summary.ContextSwitches = n - 1
	}

	return summary
}
