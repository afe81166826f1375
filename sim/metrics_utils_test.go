package sim

import (
	"math"
	"testing"
)

func TestCalculatePercentile_EmptyInput_ReturnsZero(t *testing.T) {
	if got := CalculatePercentile([]int64{}, 50); got != 0 {
		t.Errorf("CalculatePercentile(empty, 50) = %v, want 0", got)
	}
}

func TestCalculatePercentile_SingleElement(t *testing.T) {
	for _, p := range []float64{0, 50, 99, 100} {
		if got := CalculatePercentile([]int64{7}, p); got != 7 {
			t.Errorf("CalculatePercentile([7], %v) = %v, want 7", p, got)
		}
	}
}

func TestCalculatePercentile_Interpolates(t *testing.T) {
	data := []int64{10, 20, 30, 40}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{50, 25},
		{100, 40},
		{90, 37},
	}
	for _, tt := range tests {
		if got := CalculatePercentile(data, tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CalculatePercentile(%v, %v) = %v, want %v", data, tt.p, got, tt.want)
		}
	}
}

func TestCalculateMean(t *testing.T) {
	if got := CalculateMean([]int64{}); got != 0 {
		t.Errorf("CalculateMean(empty) = %v, want 0", got)
	}
	if got := CalculateMean([]int64{1, 2, 4}); got != 7.0/3.0 {
		t.Errorf("CalculateMean([1 2 4]) = %v, want %v", got, 7.0/3.0)
	}
	if got := CalculateMean([]float64{0.5, 1.5}); got != 1.0 {
		t.Errorf("CalculateMean([0.5 1.5]) = %v, want 1", got)
	}
}

func TestSortedCopy_DoesNotMutateInput(t *testing.T) {
	in := []int64{3, 1, 2}
	out := sortedCopy(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Errorf("input mutated: %v", in)
	}
	if out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Errorf("sortedCopy = %v, want [1 2 3]", out)
	}
}
