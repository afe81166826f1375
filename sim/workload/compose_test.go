package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSpecs_ConcatenatesGroups(t *testing.T) {
	a := &WorkloadSpec{Seed: 1, IDStart: 100, Groups: []GroupSpec{{
		Name:    "a",
		Count:   1,
		Arrival: ArrivalSpec{Process: "burst"},
		Burst:   DistSpec{Type: "constant", Params: map[string]float64{"value": 1}},
	}}}
	b := &WorkloadSpec{Seed: 2, Groups: []GroupSpec{{
		Name:    "b",
		Count:   2,
		Arrival: ArrivalSpec{Process: "constant", Rate: 1},
		Burst:   DistSpec{Type: "constant", Params: map[string]float64{"value": 4}},
	}}}

	merged, err := ComposeSpecs([]*WorkloadSpec{a, b})

	require.NoError(t, err)
	assert.Equal(t, "1", merged.Version)
	assert.Equal(t, int64(1), merged.Seed, "seed comes from the first spec")
	assert.Equal(t, int64(100), merged.IDStart)
	require.Len(t, merged.Groups, 2)
	assert.Equal(t, "a", merged.Groups[0].Name)
	assert.Equal(t, "b", merged.Groups[1].Name)
	assert.Equal(t, 3, merged.TotalCount())
}

func TestComposeSpecs_Empty(t *testing.T) {
	_, err := ComposeSpecs(nil)
	assert.Error(t, err)
}

func TestComposeSpecs_InvalidGroup(t *testing.T) {
	bad := &WorkloadSpec{Groups: []GroupSpec{{Count: 1, Arrival: ArrivalSpec{Process: "poisson"}}}}
	_, err := ComposeSpecs([]*WorkloadSpec{bad})
	assert.Error(t, err)
}
