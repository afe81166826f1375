package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/dispatch-sim/sim/workload"
)

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version   string                           `yaml:"version"`
	Defaults  DefaultConfig                    `yaml:"defaults"`
	Workloads map[string]workload.WorkloadSpec `yaml:"workloads"`
}

// DefaultConfig holds run defaults that flags override.
type DefaultConfig struct {
	Quantum    int64  `yaml:"quantum"`
	Algorithms string `yaml:"algorithms"`
	TraceLevel string `yaml:"trace_level"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking: typos must cause errors.
func loadDefaultsConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing defaults YAML %s: %w", path, err)
	}
	return &cfg, nil
}

// Preset returns a copy of the named workload preset.
func (c *Config) Preset(name string) (*workload.WorkloadSpec, error) {
	spec, ok := c.Workloads[name]
	if !ok {
		return nil, fmt.Errorf("unknown workload preset %q; valid: %v", name, c.PresetNames())
	}
	spec.Groups = append([]workload.GroupSpec(nil), spec.Groups...)
	if spec.Version == "" {
		spec.Version = "1"
	}
	return &spec, nil
}

// PresetNames lists the workload presets in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Workloads))
	for name := range c.Workloads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
