package sim

import (
	"fmt"
	"strings"

	"github.com/inference-sim/dispatch-sim/sim/trace"
)

// Algorithm names a dispatch policy.
type Algorithm string

const (
	FCFS Algorithm = "fcfs"
	SJF  Algorithm = "sjf"
	SRTF Algorithm = "srtf"
	RR   Algorithm = "rr"
)

// AllAlgorithms lists every policy in reporting order.
var AllAlgorithms = []Algorithm{FCFS, SJF, SRTF, RR}

// validAlgorithms is the set of recognized policy names.
var validAlgorithms = map[string]bool{"fcfs": true, "sjf": true, "srtf": true, "rr": true}

// IsValidAlgorithm returns true if name is a recognized policy.
func IsValidAlgorithm(name string) bool {
	return validAlgorithms[name]
}

// Title returns the human-readable policy name used in reports.
func (a Algorithm) Title() string {
	switch a {
	case FCFS:
		return "FCFS (FIFO)"
	case SJF:
		return "SJF (non-preemptive)"
	case SRTF:
		return "SRTF (preemptive SJF)"
	case RR:
		return "Round Robin"
	default:
		return string(a)
	}
}

// Preemptive reports whether the policy can interrupt a running process.
func (a Algorithm) Preemptive() bool {
	return a == SRTF || a == RR
}

// ParseAlgorithms parses "all" or a comma-separated list of policy names.
// Duplicates are dropped; order of first appearance is kept.
func ParseAlgorithms(spec string) ([]Algorithm, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "all" {
		return append([]Algorithm(nil), AllAlgorithms...), nil
	}
	seen := make(map[Algorithm]bool)
	var algs []Algorithm
	for _, part := range strings.Split(spec, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if !IsValidAlgorithm(name) {
			return nil, &ValidationError{Field: "algorithms", Index: -1, Reason: fmt.Sprintf("unknown algorithm %q (valid: fcfs, sjf, srtf, rr, all)", part)}
		}
		alg := Algorithm(name)
		if seen[alg] {
			continue
		}
		seen[alg] = true
		algs = append(algs, alg)
	}
	return algs, nil
}

// Scheduler is a dispatch policy. Schedule runs the policy over a validated
// ProcessSet to completion and returns a finalized Result. A nil trace
// records nothing.
type Scheduler interface {
	Name() Algorithm
	Schedule(ps *ProcessSet, tr *trace.DispatchTrace) *Result
}

// NewScheduler creates a Scheduler by name.
// Empty string defaults to FCFS (for CLI flag default compatibility).
// quantum is only read by RR and must already be validated.
// Panics on unrecognized names.
func NewScheduler(name Algorithm, quantum int64) Scheduler {
	switch name {
	case "", FCFS:
		return &FCFSScheduler{}
	case SJF:
		return &SJFScheduler{}
	case SRTF:
		return &SRTFScheduler{}
	case RR:
		return &RoundRobinScheduler{Quantum: quantum}
	default:
		panic(fmt.Sprintf("unknown algorithm %q", name))
	}
}
