package simulation

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/prop-sim/internal/models"
)

// SampleNormal draws count independent values from Normal(mean, stdDev).
// A zero seed falls back to fresh entropy so production runs stay
// independent; tests pass a fixed seed for reproducibility.
func SampleNormal(mean, stdDev float64, count int, seed int64) ([]float64, error) {
	if stdDev <= 0 || math.IsNaN(stdDev) {
		return nil, models.ErrInvalidVariance
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, models.ErrInvalidInput
	}
	if count < models.MinSimulations || count > models.MaxSimulations {
		return nil, models.ErrInvalidSampleCount
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	samples := make([]float64, count)
	for i := range samples {
		samples[i] = mean + stdDev*rng.NormFloat64()
	}
	return samples, nil
}

// SummarizeSamples returns the sample mean and standard deviation.
func SummarizeSamples(samples []float64) (float64, float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	mean, std := stat.MeanStdDev(samples, nil)
	return mean, std
}

// Histogram is a fixed-width binning of the sample distribution, exposed
// so a plotting collaborator can render it without the raw samples.
type Histogram struct {
	BinStart float64 `json:"bin_start"`
	BinWidth float64 `json:"bin_width"`
	Counts   []int   `json:"counts"`
}

// BuildHistogram bins samples into the given number of equal-width bins
// spanning [min, max]. The top edge is inclusive so the maximum sample
// lands in the last bin.
func BuildHistogram(samples []float64, bins int) Histogram {
	if len(samples) == 0 || bins <= 0 {
		return Histogram{}
	}

	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	width := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	if width == 0 {
		counts[0] = len(samples)
		return Histogram{BinStart: lo, BinWidth: 0, Counts: counts}
	}

	for _, v := range samples {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return Histogram{BinStart: lo, BinWidth: width, Counts: counts}
}
