package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/inference-sim/dispatch-sim/sim"
)

// processColumns is the CSV layout for process sets.
var processColumns = []string{"id", "arrival", "burst"}

// LoadProcessesCSV reads id,arrival,burst rows. A first row whose id field
// is not an integer is treated as a header. Blank lines and lines starting
// with '#' are skipped. Values are parsed but not validated; pass the
// result to sim.NewProcessSet.
func LoadProcessesCSV(r io.Reader) ([]sim.Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var procs []sim.Process
	for rec := 1; ; rec++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		if rec == 1 && isHeaderRow(row) {
			continue
		}
		if len(row) < len(processColumns) {
			return nil, fmt.Errorf("CSV record %d has %d columns, expected %d (%s)",
				rec, len(row), len(processColumns), strings.Join(processColumns, ","))
		}
		p, err := parseProcessRow(row)
		if err != nil {
			return nil, fmt.Errorf("CSV record %d: %w", rec, err)
		}
		procs = append(procs, p)
	}
	return procs, nil
}

// LoadProcessesCSVFile opens path and reads it with LoadProcessesCSV.
func LoadProcessesCSVFile(path string) ([]sim.Process, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return LoadProcessesCSV(file)
}

// ExportProcessesCSV writes procs with a header row.
func ExportProcessesCSV(w io.Writer, procs []sim.Process) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(processColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range procs {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.Arrival, 10),
			strconv.FormatInt(p.Burst, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
	return err != nil
}

func parseProcessRow(row []string) (sim.Process, error) {
	var vals [3]int64
	for i := range vals {
		v, err := strconv.ParseInt(strings.TrimSpace(row[i]), 10, 64)
		if err != nil {
			return sim.Process{}, fmt.Errorf("%s %q is not an integer", processColumns[i], row[i])
		}
		vals[i] = v
	}
	return sim.Process{ID: vals[0], Arrival: vals[1], Burst: vals[2]}, nil
}
