package workload

import (
	"fmt"
	"sort"
)

// Built-in scenario presets for common dispatch patterns.
// Each returns a valid WorkloadSpec ready for use with GenerateProcesses.

// ScenarioConvoy creates one long process followed closely by many short
// ones. FCFS suffers the convoy effect; SJF and SRTF avoid it.
func ScenarioConvoy(seed int64, n int) *WorkloadSpec {
	return &WorkloadSpec{
		Version: "1", Seed: seed,
		Groups: []GroupSpec{
			{Name: "long", Count: 1,
				Arrival: ArrivalSpec{Process: "burst"},
				Burst:   DistSpec{Type: "constant", Params: map[string]float64{"value": 50}},
			},
			{Name: "short", Count: max(n-1, 1), StartAt: 1,
				Arrival: ArrivalSpec{Process: "constant", Rate: 1},
				Burst:   DistSpec{Type: "uniform", Params: map[string]float64{"min": 1, "max": 3}},
			},
		},
	}
}

// ScenarioBursty creates Gamma-distributed arrivals with CV=3, so the CPU
// alternates between idle stretches and deep ready queues.
func ScenarioBursty(seed int64, n int) *WorkloadSpec {
	cv := 3.0
	return &WorkloadSpec{
		Version: "1", Seed: seed,
		Groups: []GroupSpec{{
			Name: "bursty", Count: n,
			Arrival: ArrivalSpec{Process: "gamma", Rate: 0.2, CV: &cv},
			Burst:   DistSpec{Type: "exponential", Params: map[string]float64{"mean": 4, "max": 40}},
		}},
	}
}

// ScenarioStarvation creates a long process that keeps losing to a steady
// stream of short arrivals under SJF.
func ScenarioStarvation(seed int64, n int) *WorkloadSpec {
	return &WorkloadSpec{
		Version: "1", Seed: seed,
		Groups: []GroupSpec{
			{Name: "short-head", Count: 1,
				Arrival: ArrivalSpec{Process: "burst"},
				Burst:   DistSpec{Type: "constant", Params: map[string]float64{"value": 2}},
			},
			{Name: "long", Count: 1,
				Arrival: ArrivalSpec{Process: "burst"},
				Burst:   DistSpec{Type: "constant", Params: map[string]float64{"value": 30}},
			},
			{Name: "stream", Count: max(n-2, 1), StartAt: 1,
				Arrival: ArrivalSpec{Process: "constant", Rate: 0.5},
				Burst:   DistSpec{Type: "constant", Params: map[string]float64{"value": 2}},
			},
		},
	}
}

// ScenarioMixed creates an even mix of short interactive processes and
// long batch processes with Poisson arrivals.
func ScenarioMixed(seed int64, n int) *WorkloadSpec {
	interactive := max(n/2, 1)
	return &WorkloadSpec{
		Version: "1", Seed: seed,
		Groups: []GroupSpec{
			{Name: "interactive", Count: interactive,
				Arrival: ArrivalSpec{Process: "poisson", Rate: 0.3},
				Burst:   DistSpec{Type: "gaussian", Params: map[string]float64{"mean": 3, "std_dev": 1, "min": 1, "max": 6}},
			},
			{Name: "batch", Count: max(n-interactive, 1),
				Arrival: ArrivalSpec{Process: "poisson", Rate: 0.05},
				Burst:   DistSpec{Type: "uniform", Params: map[string]float64{"min": 10, "max": 25}},
			},
		},
	}
}

// scenarios maps preset names to constructors.
var scenarios = map[string]func(seed int64, n int) *WorkloadSpec{
	"convoy":     ScenarioConvoy,
	"bursty":     ScenarioBursty,
	"starvation": ScenarioStarvation,
	"mixed":      ScenarioMixed,
}

// ScenarioNames returns the preset names in sorted order.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewScenario returns the named preset with n processes.
func NewScenario(name string, seed int64, n int) (*WorkloadSpec, error) {
	build, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q; valid: %v", name, ScenarioNames())
	}
	if n <= 0 {
		return nil, fmt.Errorf("scenario %q: process count must be positive, got %d", name, n)
	}
	return build(seed, n), nil
}
