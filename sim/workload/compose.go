package workload

import "fmt"

// ComposeSpecs merges multiple WorkloadSpecs into a single spec.
// Group lists are concatenated in argument order; seed and id_start come
// from the first spec.
func ComposeSpecs(specs []*WorkloadSpec) (*WorkloadSpec, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one spec file required")
	}

	merged := &WorkloadSpec{
		Version: "1",
		Seed:    specs[0].Seed,
		IDStart: specs[0].IDStart,
	}
	for _, s := range specs {
		merged.Groups = append(merged.Groups, s.Groups...)
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("composed spec: %w", err)
	}
	return merged, nil
}
