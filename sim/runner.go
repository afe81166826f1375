package sim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/inference-sim/dispatch-sim/sim/trace"
)

// RunConfig holds the knobs shared by every policy in a run.
type RunConfig struct {
	Quantum    int64            // RR time slice; must be > 0 when RR is requested
	TraceLevel trace.TraceLevel // "" or none disables decision tracing
	Parallel   bool             // RunAll only: run policies on separate goroutines
}

// Validate checks the configuration for the given policies.
// Every failure wraps ErrInvalidInput.
func (c RunConfig) Validate(algs []Algorithm) error {
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return &ValidationError{Field: "trace_level", Index: -1, Reason: fmt.Sprintf("unknown trace level %q", c.TraceLevel)}
	}
	if len(algs) == 0 {
		return &ValidationError{Field: "algorithms", Index: -1, Reason: "at least one algorithm is required"}
	}
	for _, alg := range algs {
		if !IsValidAlgorithm(string(alg)) {
			return &ValidationError{Field: "algorithm", Index: -1, Reason: fmt.Sprintf("unknown algorithm %q", alg)}
		}
		if alg == RR {
			if err := ValidateQuantum(c.Quantum); err != nil {
				return err
			}
		}
	}
	return nil
}

// Run validates the configuration and runs one policy over ps.
// Nothing runs if validation fails.
func Run(ps *ProcessSet, alg Algorithm, cfg RunConfig) (*Result, error) {
	if ps == nil {
		return nil, &ValidationError{Field: "processes", Index: -1, Reason: "process set is nil"}
	}
	if err := cfg.Validate([]Algorithm{alg}); err != nil {
		return nil, err
	}
	return runOne(ps, alg, cfg), nil
}

// RunAll runs several policies over the same ProcessSet and returns results
// in the order of algs. All inputs are validated before any policy starts.
//
// With cfg.Parallel each policy runs on its own goroutine. The ProcessSet is
// never mutated and every run owns its state, so no locking is needed and
// the results are identical to a sequential run. Cancellation is observed
// between policies only; a started policy always runs to completion.
func RunAll(ctx context.Context, ps *ProcessSet, algs []Algorithm, cfg RunConfig) ([]*Result, error) {
	if ps == nil {
		return nil, &ValidationError{Field: "processes", Index: -1, Reason: "process set is nil"}
	}
	if err := cfg.Validate(algs); err != nil {
		return nil, err
	}

	results := make([]*Result, len(algs))
	if !cfg.Parallel {
		for i, alg := range algs {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("run cancelled before %s: %w", alg, err)
			}
			results[i] = runOne(ps, alg, cfg)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("run cancelled before %s: %w", alg, err)
			}
			results[i] = runOne(ps, alg, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ps *ProcessSet, alg Algorithm, cfg RunConfig) *Result {
	logrus.Infof("Starting %s over %d processes (total burst=%d)", alg.Title(), ps.Len(), ps.TotalBurst())
	tr := trace.NewDispatchTrace(trace.TraceConfig{Level: cfg.TraceLevel})
	quantum := int64(0)
	if alg == RR {
		quantum = cfg.Quantum
	}
	res := NewScheduler(alg, quantum).Schedule(ps, tr)
	logrus.Infof("%s complete: makespan=%d, avg waiting=%.2f", alg.Title(), res.Metrics.Makespan, res.Metrics.AvgWaiting)
	return res
}
