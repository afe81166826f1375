package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/inference-sim/dispatch-sim/sim"
)

// csvColumns is the header of WriteCSV output.
var csvColumns = []string{"algorithm", "quantum", "id", "arrival", "burst", "start", "end", "response", "waiting", "turnaround"}

// WriteCSV writes one row per process per result, in result order and then
// process input order.
func WriteCSV(w io.Writer, results []*sim.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, res := range results {
		for _, pm := range res.Metrics.Processes {
			row := []string{
				string(res.Algorithm),
				strconv.FormatInt(res.Quantum, 10),
				strconv.FormatInt(pm.ID, 10),
				strconv.FormatInt(pm.Arrival, 10),
				strconv.FormatInt(pm.Burst, 10),
				strconv.FormatInt(pm.Start, 10),
				strconv.FormatInt(pm.End, 10),
				strconv.FormatInt(pm.Response, 10),
				strconv.FormatInt(pm.Waiting, 10),
				strconv.FormatInt(pm.Turnaround, 10),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
