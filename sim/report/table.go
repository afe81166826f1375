package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/inference-sim/dispatch-sim/sim"
)

// Table writes the per-process schedule of res with an averages footer.
func Table(w io.Writer, res *sim.Result) {
	m := res.Metrics
	rows := make([][]string, 0, len(m.Processes))
	for _, pm := range m.Processes {
		rows = append(rows, []string{
			fmt.Sprintf("P%d", pm.ID),
			strconv.FormatInt(pm.Arrival, 10),
			strconv.FormatInt(pm.Burst, 10),
			strconv.FormatInt(pm.Start, 10),
			strconv.FormatInt(pm.End, 10),
			strconv.FormatInt(pm.Response, 10),
			strconv.FormatInt(pm.Waiting, 10),
			strconv.FormatInt(pm.Turnaround, 10),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "End", "Response", "Waiting", "Turnaround"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", m.AvgResponse),
		fmt.Sprintf("%.2f", m.AvgWaiting),
		fmt.Sprintf("%.2f", m.AvgTurnaround)})
	table.Render()
}

// Compare writes one row per policy with its aggregate metrics, so several
// runs over the same process set can be read side by side.
func Compare(w io.Writer, results []*sim.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Response", "Avg Waiting", "Avg Turnaround", "P90 Waiting", "Makespan", "Utilization", "Switches"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, res := range results {
		m := res.Metrics
		table.Append([]string{
			title(res),
			fmt.Sprintf("%.2f", m.AvgResponse),
			fmt.Sprintf("%.2f", m.AvgWaiting),
			fmt.Sprintf("%.2f", m.AvgTurnaround),
			fmt.Sprintf("%.2f", m.WaitingP90),
			strconv.FormatInt(m.Makespan, 10),
			fmt.Sprintf("%.1f%%", 100*m.Utilization),
			strconv.Itoa(m.ContextSwitches),
		})
	}
	table.Render()
}

// title names a run, including the quantum for Round Robin.
func title(res *sim.Result) string {
	if res.Algorithm == sim.RR {
		return fmt.Sprintf("%s (q=%d)", res.Algorithm.Title(), res.Quantum)
	}
	return res.Algorithm.Title()
}
