package workload

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/dispatch-sim/sim"
)

// GenerateProcesses creates a process list from a WorkloadSpec.
// Deterministic given the same spec and seed.
// Returns processes sorted by arrival with sequential IDs from IDStart.
func GenerateProcesses(spec *WorkloadSpec) ([]sim.Process, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))

	all := make([]sim.Process, 0, spec.TotalCount())
	for i := range spec.Groups {
		group := &spec.Groups[i]

		// Per-group streams: editing one group leaves the others unchanged.
		arrivalRNG := rng.ForSubsystem(sim.SubsystemGroup(sim.SubsystemArrival, i))
		burstRNG := rng.ForSubsystem(sim.SubsystemGroup(sim.SubsystemBurst, i))

		arrivalSampler := NewArrivalSampler(group.Arrival)
		burstSampler, err := NewBurstSampler(group.Burst)
		if err != nil {
			return nil, fmt.Errorf("group %d burst distribution: %w", i, err)
		}

		currentTime := group.StartAt
		for k := 0; k < group.Count; k++ {
			if k > 0 {
				currentTime += arrivalSampler.SampleIAT(arrivalRNG)
			}
			all = append(all, sim.Process{
				Arrival: currentTime,
				Burst:   burstSampler.Sample(burstRNG),
			})
		}
		logrus.Debugf("workload group %d (%s): %d processes, last arrival %d", i, group.Name, group.Count, currentTime)
	}

	// Sort by arrival (stable sort preserves group order for ties)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Arrival < all[j].Arrival
	})

	idStart := spec.IDStart
	if idStart == 0 {
		idStart = 1
	}
	for i := range all {
		all[i].ID = idStart + int64(i)
	}

	logrus.Infof("Generated %d processes from %d group(s) (seed=%d)", len(all), len(spec.Groups), spec.Seed)
	return all, nil
}
