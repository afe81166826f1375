// Package testutil provides shared test infrastructure for the dispatch simulator.
// It holds the golden scenario types and assertion helpers used across
// sim/ and sim/report/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden_scenarios.json.
type GoldenDataset struct {
	Scenarios []GoldenScenario `json:"scenarios"`
}

// GoldenScenario is one hand-verified run: the input processes, the policy,
// and the exact timeline and metrics it must produce.
type GoldenScenario struct {
	Name      string          `json:"name"`
	Algorithm string          `json:"algorithm"`
	Quantum   int64           `json:"quantum"`
	Processes []GoldenProcess `json:"processes"`
	Timeline  []GoldenSegment `json:"timeline"`

	AvgResponse   float64 `json:"avg_response"`
	AvgWaiting    float64 `json:"avg_waiting"`
	AvgTurnaround float64 `json:"avg_turnaround"`
}

// GoldenProcess carries one process's input fields and its expected timing.
// Processes are listed in input order.
type GoldenProcess struct {
	ID      int64 `json:"id"`
	Arrival int64 `json:"arrival"`
	Burst   int64 `json:"burst"`

	Start      int64 `json:"start"`
	End        int64 `json:"end"`
	Response   int64 `json:"response"`
	Waiting    int64 `json:"waiting"`
	Turnaround int64 `json:"turnaround"`
}

// GoldenSegment is one expected timeline segment. Idle segments set Idle
// and leave PID zero.
type GoldenSegment struct {
	PID   int64 `json:"pid"`
	Idle  bool  `json:"idle"`
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// LoadGoldenDataset loads the golden scenarios from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_scenarios.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Scenarios) == 0 {
		t.Fatal("Golden dataset has no scenarios")
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
