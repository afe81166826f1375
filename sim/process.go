// Defines the Process record and the validated, read-only ProcessSet
// consumed by every dispatch policy.

package sim

import (
	"fmt"
	"sort"
)

// Process is one CPU-bound job: it becomes eligible at Arrival and needs
// Burst ticks of CPU in total.
type Process struct {
	ID      int64 // Label and final tie-break key; never used as an index
	Arrival int64 // Tick at which the process becomes eligible (>= 0)
	Burst   int64 // Total CPU ticks required (> 0)
}

func (p Process) String() string {
	return fmt.Sprintf("P%d(arrival=%d, burst=%d)", p.ID, p.Arrival, p.Burst)
}

// ProcessSet is an immutable, validated list of processes.
// Policies address processes by position; index maps ID -> position.
type ProcessSet struct {
	procs []Process
	index map[int64]int
}

// NewProcessSet copies procs and validates them. It rejects an empty set,
// negative arrivals, non-positive bursts and duplicate IDs, returning a
// *ValidationError wrapping ErrInvalidInput.
func NewProcessSet(procs []Process) (*ProcessSet, error) {
	if len(procs) == 0 {
		return nil, &ValidationError{Field: "processes", Index: -1, Reason: "at least one process is required"}
	}
	ps := &ProcessSet{
		procs: make([]Process, len(procs)),
		index: make(map[int64]int, len(procs)),
	}
	copy(ps.procs, procs)
	for i, p := range ps.procs {
		if p.Arrival < 0 {
			return nil, &ValidationError{Field: "arrival", Index: i, Reason: fmt.Sprintf("must be >= 0, got %d", p.Arrival)}
		}
		if p.Burst <= 0 {
			return nil, &ValidationError{Field: "burst", Index: i, Reason: fmt.Sprintf("must be > 0, got %d", p.Burst)}
		}
		if prev, dup := ps.index[p.ID]; dup {
			return nil, &ValidationError{Field: "id", Index: i, Reason: fmt.Sprintf("duplicate id %d (also at position %d)", p.ID, prev)}
		}
		ps.index[p.ID] = i
	}
	return ps, nil
}

// MustProcessSet is NewProcessSet for inputs known to be valid. Panics otherwise.
func MustProcessSet(procs ...Process) *ProcessSet {
	ps, err := NewProcessSet(procs)
	if err != nil {
		panic(err)
	}
	return ps
}

// Len returns the number of processes.
func (ps *ProcessSet) Len() int {
	return len(ps.procs)
}

// At returns the process at position i.
func (ps *ProcessSet) At(i int) Process {
	return ps.procs[i]
}

// Processes returns a copy of the processes in input order.
func (ps *ProcessSet) Processes() []Process {
	out := make([]Process, len(ps.procs))
	copy(out, ps.procs)
	return out
}

// IndexOf returns the position of the process with the given ID.
func (ps *ProcessSet) IndexOf(id int64) (int, bool) {
	i, ok := ps.index[id]
	return i, ok
}

// TotalBurst returns the sum of all bursts.
func (ps *ProcessSet) TotalBurst() int64 {
	var total int64
	for _, p := range ps.procs {
		total += p.Burst
	}
	return total
}

// ArrivalOrder returns positions sorted by (arrival asc, id asc).
// This is FCFS dispatch order and the admission order of every other policy.
func (ps *ProcessSet) ArrivalOrder() []int {
	order := make([]int, len(ps.procs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := ps.procs[order[a]], ps.procs[order[b]]
		if pa.Arrival != pb.Arrival {
			return pa.Arrival < pb.Arrival
		}
		return pa.ID < pb.ID
	})
	return order
}
