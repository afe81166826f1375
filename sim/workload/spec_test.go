package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoGroupYAML = `
version: "1"
seed: 42
id_start: 10
groups:
  - name: interactive
    count: 20
    arrival:
      process: poisson
      rate: 0.5
    burst:
      type: exponential
      params:
        mean: 3
  - name: batch
    count: 3
    start_at: 15
    arrival:
      process: burst
    burst:
      type: uniform
      params:
        min: 20
        max: 40
`

func TestLoadWorkloadSpec_ValidYAML_LoadsCorrectly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoGroupYAML), 0644))

	spec, err := LoadWorkloadSpec(path)

	require.NoError(t, err)
	assert.Equal(t, int64(42), spec.Seed)
	assert.Equal(t, int64(10), spec.IDStart)
	require.Len(t, spec.Groups, 2)
	assert.Equal(t, "poisson", spec.Groups[0].Arrival.Process)
	assert.Equal(t, 0.5, spec.Groups[0].Arrival.Rate)
	assert.Equal(t, int64(15), spec.Groups[1].StartAt)
	assert.Equal(t, 40.0, spec.Groups[1].Burst.Params["max"])
	assert.Equal(t, 23, spec.TotalCount())
	assert.NoError(t, spec.Validate())
}

func TestLoadWorkloadSpec_UnknownKey_Rejected(t *testing.T) {
	// GIVEN a typo in a field name
	data := strings.Replace(twoGroupYAML, "start_at:", "start_time:", 1)

	_, err := ParseWorkloadSpec([]byte(data))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_time")
}

func TestLoadWorkloadSpec_MissingFile(t *testing.T) {
	_, err := LoadWorkloadSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseWorkloadSpec_DefaultsVersion(t *testing.T) {
	spec, err := ParseWorkloadSpec([]byte("seed: 1\ngroups: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", spec.Version)
}

func TestWorkloadSpec_Validate_Rejects(t *testing.T) {
	valid := func() *WorkloadSpec {
		return &WorkloadSpec{Groups: []GroupSpec{{
			Count:   2,
			Arrival: ArrivalSpec{Process: "constant", Rate: 1},
			Burst:   DistSpec{Type: "constant", Params: map[string]float64{"value": 2}},
		}}}
	}
	negCV := -1.0
	tests := []struct {
		name    string
		mutate  func(s *WorkloadSpec)
		wantErr string
	}{
		{"version", func(s *WorkloadSpec) { s.Version = "2" }, "version"},
		{"no groups", func(s *WorkloadSpec) { s.Groups = nil }, "at least one group"},
		{"negative id_start", func(s *WorkloadSpec) { s.IDStart = -1 }, "id_start"},
		{"zero count", func(s *WorkloadSpec) { s.Groups[0].Count = 0 }, "count"},
		{"negative start", func(s *WorkloadSpec) { s.Groups[0].StartAt = -5 }, "start_at"},
		{"unknown process", func(s *WorkloadSpec) { s.Groups[0].Arrival.Process = "weibull" }, "arrival process"},
		{"zero rate", func(s *WorkloadSpec) { s.Groups[0].Arrival.Rate = 0 }, "rate"},
		{"negative cv", func(s *WorkloadSpec) { s.Groups[0].Arrival.CV = &negCV }, "cv"},
		{"unknown dist", func(s *WorkloadSpec) { s.Groups[0].Burst.Type = "pareto" }, "distribution type"},
		{"missing param", func(s *WorkloadSpec) { s.Groups[0].Burst.Params = nil }, "value"},
		{"inverted range", func(s *WorkloadSpec) {
			s.Groups[0].Burst = DistSpec{Type: "uniform", Params: map[string]float64{"min": 9, "max": 3}}
		}, "exceeds max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			require.NoError(t, s.Validate())
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWorkloadSpec_Validate_BurstNeedsNoRate(t *testing.T) {
	s := &WorkloadSpec{Groups: []GroupSpec{{
		Count:   4,
		Arrival: ArrivalSpec{Process: "burst"},
		Burst:   DistSpec{Type: "constant", Params: map[string]float64{"value": 1}},
	}}}
	assert.NoError(t, s.Validate())
}
