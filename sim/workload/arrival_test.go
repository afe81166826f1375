package workload

import (
	"math"
	"math/rand"
	"testing"
)

func TestPoissonSampler_MeanIAT_MatchesRate(t *testing.T) {
	// GIVEN a Poisson sampler at 0.01 processes/tick
	rng := rand.New(rand.NewSource(42))
	sampler := NewArrivalSampler(ArrivalSpec{Process: "poisson", Rate: 0.01})

	// WHEN 10000 gaps are sampled
	n := 10000
	sum := int64(0)
	for i := 0; i < n; i++ {
		sum += sampler.SampleIAT(rng)
	}
	meanIAT := float64(sum) / float64(n)

	// THEN mean gap ≈ 1/rate = 100 ticks (within 5%)
	expected := 100.0
	if math.Abs(meanIAT-expected)/expected > 0.05 {
		t.Errorf("mean IAT = %.1f ticks, want ≈ %.0f (within 5%%)", meanIAT, expected)
	}
}

func TestGammaSampler_HighCV_ProducesBurstierArrivals(t *testing.T) {
	// GIVEN a Gamma sampler with CV=3.5 and a Poisson sampler at same rate
	rng1 := rand.New(rand.NewSource(42))
	rng2 := rand.New(rand.NewSource(42))
	cv := 3.5
	gamma := NewArrivalSampler(ArrivalSpec{Process: "gamma", Rate: 0.01, CV: &cv})
	poisson := NewArrivalSampler(ArrivalSpec{Process: "poisson", Rate: 0.01})

	// WHEN 10000 gaps sampled from each
	n := 10000
	gammaIATs := make([]float64, n)
	poissonIATs := make([]float64, n)
	for i := 0; i < n; i++ {
		gammaIATs[i] = float64(gamma.SampleIAT(rng1))
		poissonIATs[i] = float64(poisson.SampleIAT(rng2))
	}

	// THEN Gamma CV > 2.0 and Poisson CV ≈ 1.0
	gammaCV := coefficientOfVariation(gammaIATs)
	poissonCV := coefficientOfVariation(poissonIATs)
	if gammaCV < 2.0 {
		t.Errorf("gamma CV = %.2f, want > 2.0", gammaCV)
	}
	if poissonCV < 0.8 || poissonCV > 1.2 {
		t.Errorf("poisson CV = %.2f, want ≈ 1.0", poissonCV)
	}
}

func TestGammaSampler_MeanAndVariance_MatchTheoretical(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cv := 2.0
	sampler := NewArrivalSampler(ArrivalSpec{Process: "gamma", Rate: 0.01, CV: &cv})

	n := 50000
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = float64(sampler.SampleIAT(rng))
	}
	// Theoretical: mean = 1/rate = 100 ticks, variance = mean² * CV²
	mean, variance := meanAndVariance(vals)
	expectedMean := 100.0
	expectedVar := expectedMean * expectedMean * cv * cv
	if math.Abs(mean-expectedMean)/expectedMean > 0.05 {
		t.Errorf("gamma mean = %.1f, want ≈ %.0f (within 5%%)", mean, expectedMean)
	}
	if math.Abs(variance-expectedVar)/expectedVar > 0.15 {
		t.Errorf("gamma variance = %.0f, want ≈ %.0f (within 15%%)", variance, expectedVar)
	}
}

func TestGammaSampler_TinyShape_FallsBackToPoisson(t *testing.T) {
	cv := 20.0
	if _, ok := NewArrivalSampler(ArrivalSpec{Process: "gamma", Rate: 0.1, CV: &cv}).(*PoissonSampler); !ok {
		t.Error("CV=20 should fall back to Poisson")
	}
}

func TestConstantAndBurstSamplers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	constant := NewArrivalSampler(ArrivalSpec{Process: "constant", Rate: 0.25})
	burst := NewArrivalSampler(ArrivalSpec{Process: "burst"})
	for i := 0; i < 5; i++ {
		if got := constant.SampleIAT(rng); got != 4 {
			t.Errorf("constant gap = %d, want 4", got)
		}
		if got := burst.SampleIAT(rng); got != 0 {
			t.Errorf("burst gap = %d, want 0", got)
		}
	}
}

func TestArrivalSamplers_NeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cv := 0.5
	samplers := map[string]ArrivalSampler{
		"poisson": NewArrivalSampler(ArrivalSpec{Process: "poisson", Rate: 2}),
		"gamma":   NewArrivalSampler(ArrivalSpec{Process: "gamma", Rate: 2, CV: &cv}),
	}
	for name, s := range samplers {
		for i := 0; i < 10000; i++ {
			if iat := s.SampleIAT(rng); iat < 0 {
				t.Fatalf("%s: IAT must be non-negative, got %d at iteration %d", name, iat, i)
			}
		}
	}
}

// coefficientOfVariation computes std_dev / mean.
func coefficientOfVariation(vals []float64) float64 {
	mean, variance := meanAndVariance(vals)
	return math.Sqrt(variance) / mean
}

func meanAndVariance(vals []float64) (float64, float64) {
	n := float64(len(vals))
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	mean := sum / n
	sumSq := 0.0
	for _, v := range vals {
		d := v - mean
		sumSq += d * d
	}
	return mean, sumSq / n
}
