package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/inference-sim/dispatch-sim/sim"
)

// Summary writes the classic plain-text report of one run: a title line,
// the dispatch order, and the three averages.
//
//	SRTF (preemptive SJF) Scheduling =>
//	Context switches: 1 2 1
//	Average Response Time: 0.00
//	Average Waiting Time : 1.50
//	Average Turnaround   : 5.50
func Summary(w io.Writer, res *sim.Result) error {
	label := "Execution order"
	if res.Algorithm.Preemptive() {
		label = "Context switches"
	}
	seq := res.Timeline.DispatchSequence()
	ids := make([]string, len(seq))
	for i, id := range seq {
		ids[i] = fmt.Sprint(id)
	}

	m := res.Metrics
	_, err := fmt.Fprintf(w, "%s Scheduling =>\n%s: %s\nAverage Response Time: %.2f\nAverage Waiting Time : %.2f\nAverage Turnaround   : %.2f\n",
		title(res), label, strings.Join(ids, " "), m.AvgResponse, m.AvgWaiting, m.AvgTurnaround)
	return err
}
