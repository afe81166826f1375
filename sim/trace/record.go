// Package trace provides dispatch-decision recording for single-CPU policy analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// DecisionKind labels a DispatchRecord.
type DecisionKind string

const (
	// KindDispatch: a process was given the CPU.
	KindDispatch DecisionKind = "dispatch"
	// KindPreempt: a running process lost the CPU with work remaining.
	KindPreempt DecisionKind = "preempt"
	// KindComplete: a process finished its burst.
	KindComplete DecisionKind = "complete"
	// KindIdle: the CPU idled until the next arrival.
	KindIdle DecisionKind = "idle"
)

// AdmissionRecord captures a process entering the ready structure.
type AdmissionRecord struct {
	ProcessID int64
	Clock     int64
}

// DispatchRecord captures a single dispatch decision.
type DispatchRecord struct {
	Clock     int64
	Kind      DecisionKind
	ProcessID int64 // zero for KindIdle
	Remaining int64 // remaining burst after the decision; idle duration for KindIdle
	Reason    string
}
