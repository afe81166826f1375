package workload

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ArrivalSampler generates inter-arrival gaps for a group.
type ArrivalSampler interface {
	// SampleIAT returns the next inter-arrival gap in ticks.
	// Always non-negative; zero means the same tick as the previous arrival.
	SampleIAT(rng *rand.Rand) int64
}

// PoissonSampler generates exponentially-distributed gaps (CV=1).
type PoissonSampler struct {
	rate float64 // processes per tick
}

func (s *PoissonSampler) SampleIAT(rng *rand.Rand) int64 {
	return int64(math.Round(rng.ExpFloat64() / s.rate))
}

// GammaSampler generates Gamma-distributed gaps.
// CV > 1 produces clustered arrivals separated by long lulls.
// Implemented using Marsaglia-Tsang's method for shape >= 1,
// with transformation for shape < 1.
type GammaSampler struct {
	shape float64 // 1/CV² (alpha parameter)
	scale float64 // CV²/rate in ticks (beta parameter)
}

func (s *GammaSampler) SampleIAT(rng *rand.Rand) int64 {
	return int64(math.Round(gammaRand(rng, s.shape, s.scale)))
}

// gammaRand samples from Gamma(shape, scale) using Marsaglia-Tsang's method.
// For shape >= 1: direct method.
// For shape < 1: Gamma(shape) = Gamma(shape+1) * U^(1/shape).
func gammaRand(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1.0 {
		u := rng.Float64()
		return gammaRand(rng, shape+1.0, scale) * math.Pow(u, 1.0/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)

	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1.0 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()

		// Squeeze test
		if u < 1.0-0.0331*(x*x)*(x*x) {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// ConstantSampler spaces arrivals exactly 1/rate ticks apart.
type ConstantSampler struct {
	gap int64
}

func (s *ConstantSampler) SampleIAT(_ *rand.Rand) int64 {
	return s.gap
}

// BurstSampler releases the whole group on the same tick.
type BurstSampler struct{}

func (s *BurstSampler) SampleIAT(_ *rand.Rand) int64 {
	return 0
}

// NewArrivalSampler creates an ArrivalSampler from a validated spec.
func NewArrivalSampler(spec ArrivalSpec) ArrivalSampler {
	rate := spec.Rate
	if rate < 1e-15 {
		rate = 1e-15
	}
	switch spec.Process {
	case "poisson":
		return &PoissonSampler{rate: rate}

	case "gamma":
		cv := 1.0
		if spec.CV != nil && *spec.CV > 0 {
			cv = *spec.CV
		}
		// shape = 1/CV², scale = mean * CV² = (1/rate) * CV²
		shape := 1.0 / (cv * cv)
		scale := cv * cv / rate
		if shape < 0.01 {
			logrus.Warnf("Gamma shape %.4f (CV=%.1f) is very small; falling back to Poisson", shape, cv)
			return &PoissonSampler{rate: rate}
		}
		return &GammaSampler{shape: shape, scale: scale}

	case "constant":
		return &ConstantSampler{gap: int64(math.Round(1.0 / rate))}

	case "burst":
		return &BurstSampler{}

	default:
		// Validated before reaching here
		return &PoissonSampler{rate: rate}
	}
}
