// Package sim provides the core discrete-event dispatch engine for a single CPU.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - process.go: Process and ProcessSet, the validated read-only input
//   - timeline.go: Segment and Timeline, the ordered execution record
//   - simulator.go: per-run state shared by all dispatch policies
//
// The four policies live in fcfs.go, sjf.go, srtf.go and rr.go. SJF and
// SRTF select through the generic PriorityQueue in priority.go; RR uses
// the ReadyQueue in queue.go. All three admit arrivals through the
// monotonic cursor in admission.go.
//
// # Determinism
//
// Every policy is a pure function of (ProcessSet, quantum). Ties are
// broken by (key, arrival, id), so two runs over the same input produce
// identical timelines and metrics. Process IDs are labels and tie-break
// keys only; nothing indexes by ID.
//
// # Sub-packages
//   - sim/trace/: dispatch-decision recording
//   - sim/workload/: synthetic process-set generation and CSV I/O
//   - sim/report/: Gantt, per-tick, table, CSV and PNG rendering
package sim
