package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Version string      `yaml:"version"`
	Seed    int64       `yaml:"seed"`
	IDStart int64       `yaml:"id_start,omitempty"` // first assigned process ID; 0 means 1
	Groups  []GroupSpec `yaml:"groups"`
}

// GroupSpec describes one population of processes sharing an arrival
// pattern and a burst distribution.
type GroupSpec struct {
	Name    string      `yaml:"name,omitempty"`
	Count   int         `yaml:"count"`
	StartAt int64       `yaml:"start_at,omitempty"` // arrival of the group's first process
	Arrival ArrivalSpec `yaml:"arrival"`
	Burst   DistSpec    `yaml:"burst"`
}

// ArrivalSpec configures the inter-arrival process.
// Rate is in processes per tick and is ignored for "burst".
type ArrivalSpec struct {
	Process string   `yaml:"process"`
	Rate    float64  `yaml:"rate,omitempty"`
	CV      *float64 `yaml:"cv,omitempty"`
}

// DistSpec parameterizes a burst length distribution.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// Valid value registries.
var (
	validArrivalProcesses = map[string]bool{
		"poisson": true, "gamma": true, "constant": true, "burst": true,
	}
	validDistTypes = map[string]bool{
		"constant": true, "uniform": true, "gaussian": true, "exponential": true,
	}
	requiredDistParams = map[string][]string{
		"constant":    {"value"},
		"uniform":     {"min", "max"},
		"gaussian":    {"mean", "std_dev", "min", "max"},
		"exponential": {"mean"},
	}
)

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	return ParseWorkloadSpec(data)
}

// ParseWorkloadSpec decodes a YAML workload specification.
func ParseWorkloadSpec(data []byte) (*WorkloadSpec, error) {
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	if spec.Version == "" {
		spec.Version = "1"
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if s.Version != "" && s.Version != "1" {
		return fmt.Errorf("unsupported workload spec version %q; valid: 1", s.Version)
	}
	if s.IDStart < 0 {
		return fmt.Errorf("id_start must be non-negative, got %d", s.IDStart)
	}
	if len(s.Groups) == 0 {
		return fmt.Errorf("at least one group is required")
	}
	for i := range s.Groups {
		if err := validateGroup(&s.Groups[i], i); err != nil {
			return err
		}
	}
	return nil
}

// TotalCount returns the number of processes the spec generates.
func (s *WorkloadSpec) TotalCount() int {
	total := 0
	for _, g := range s.Groups {
		total += g.Count
	}
	return total
}

func validateGroup(g *GroupSpec, idx int) error {
	prefix := fmt.Sprintf("group[%d]", idx)
	if g.Name != "" {
		prefix = fmt.Sprintf("group[%d] %q", idx, g.Name)
	}
	if g.Count <= 0 {
		return fmt.Errorf("%s: count must be positive, got %d", prefix, g.Count)
	}
	if g.StartAt < 0 {
		return fmt.Errorf("%s: start_at must be non-negative, got %d", prefix, g.StartAt)
	}
	if !validArrivalProcesses[g.Arrival.Process] {
		return fmt.Errorf("%s: unknown arrival process %q; valid: poisson, gamma, constant, burst", prefix, g.Arrival.Process)
	}
	if g.Arrival.Process != "burst" {
		if err := validateFinitePositive(prefix+".arrival.rate", g.Arrival.Rate); err != nil {
			return err
		}
	}
	if g.Arrival.CV != nil {
		if err := validateFinitePositive(prefix+".arrival.cv", *g.Arrival.CV); err != nil {
			return err
		}
	}
	return validateDistSpec(prefix+".burst", &g.Burst)
}

func validateDistSpec(prefix string, d *DistSpec) error {
	if !validDistTypes[d.Type] {
		return fmt.Errorf("%s: unknown distribution type %q; valid: constant, uniform, gaussian, exponential", prefix, d.Type)
	}
	for name, val := range d.Params {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("%s.params.%s must be a finite number, got %f", prefix, name, val)
		}
	}
	if err := requireParam(d.Params, requiredDistParams[d.Type]...); err != nil {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	if lo, hi, ok := paramRange(d.Params); ok && lo > hi {
		return fmt.Errorf("%s: min %v exceeds max %v", prefix, lo, hi)
	}
	return nil
}

func paramRange(params map[string]float64) (lo, hi float64, ok bool) {
	lo, okLo := params["min"]
	hi, okHi := params["max"]
	return lo, hi, okLo && okHi
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val <= 0 {
		return fmt.Errorf("%s must be positive, got %f", name, val)
	}
	return nil
}
