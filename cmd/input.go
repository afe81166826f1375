package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/inference-sim/dispatch-sim/sim"
)

// readInteractive prompts on out and reads a process set from in:
// a count, then one "PID Arrival Burst" line per process, then the
// quantum when askQuantum is set. Values are validated later by
// sim.NewProcessSet.
func readInteractive(in io.Reader, out io.Writer, askQuantum bool) ([]sim.Process, int64, error) {
	r := bufio.NewReader(in)

	var n int
	fmt.Fprint(out, "Number of Processes: ")
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, 0, fmt.Errorf("reading process count: %w", err)
	}
	if n <= 0 {
		return nil, 0, fmt.Errorf("process count must be positive, got %d", n)
	}

	fmt.Fprintln(out, "Enter details for each process on its own line: PID Arrival Burst")
	procs := make([]sim.Process, n)
	for i := range procs {
		p := &procs[i]
		if _, err := fmt.Fscan(r, &p.ID, &p.Arrival, &p.Burst); err != nil {
			return nil, 0, fmt.Errorf("reading process %d of %d: %w", i+1, n, err)
		}
	}

	if !askQuantum {
		return procs, 0, nil
	}
	var quantum int64
	fmt.Fprint(out, "Enter Time Quantum: ")
	if _, err := fmt.Fscan(r, &quantum); err != nil {
		return nil, 0, fmt.Errorf("reading time quantum: %w", err)
	}
	return procs, quantum, nil
}
