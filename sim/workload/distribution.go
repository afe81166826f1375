package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// BurstLengthSampler generates CPU burst lengths.
type BurstLengthSampler interface {
	// Sample returns a positive burst in ticks (>= 1).
	Sample(rng *rand.Rand) int64
}

// FixedBurstSampler always returns the same burst.
type FixedBurstSampler struct {
	value int64
}

func (s *FixedBurstSampler) Sample(_ *rand.Rand) int64 {
	return max(s.value, 1)
}

// UniformBurstSampler draws uniformly from [min, max].
type UniformBurstSampler struct {
	min, max int64
}

func (s *UniformBurstSampler) Sample(rng *rand.Rand) int64 {
	if s.min >= s.max {
		return max(s.min, 1)
	}
	return max(s.min+rng.Int63n(s.max-s.min+1), 1)
}

// GaussianBurstSampler produces clamped Gaussian bursts.
type GaussianBurstSampler struct {
	mean, stdDev float64
	min, max     int64
}

func (s *GaussianBurstSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return max(s.min, 1)
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	return max(int64(math.Round(clamped)), 1)
}

// ExponentialBurstSampler produces exponentially-distributed bursts,
// optionally capped at max.
type ExponentialBurstSampler struct {
	mean float64
	max  int64 // 0 means uncapped
}

func (s *ExponentialBurstSampler) Sample(rng *rand.Rand) int64 {
	result := max(int64(math.Round(rng.ExpFloat64()*s.mean)), 1)
	if s.max > 0 && result > s.max {
		return s.max
	}
	return result
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}

// NewBurstSampler creates a BurstLengthSampler from a DistSpec.
func NewBurstSampler(spec DistSpec) (BurstLengthSampler, error) {
	if err := requireParam(spec.Params, requiredDistParams[spec.Type]...); err != nil {
		return nil, err
	}
	p := spec.Params
	switch spec.Type {
	case "constant":
		return &FixedBurstSampler{value: int64(p["value"])}, nil

	case "uniform":
		return &UniformBurstSampler{min: int64(p["min"]), max: int64(p["max"])}, nil

	case "gaussian":
		return &GaussianBurstSampler{
			mean:   p["mean"],
			stdDev: p["std_dev"],
			min:    int64(p["min"]),
			max:    int64(p["max"]),
		}, nil

	case "exponential":
		return &ExponentialBurstSampler{mean: p["mean"], max: int64(p["max"])}, nil

	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}
