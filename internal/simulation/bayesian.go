package simulation

import (
	"math"

	"github.com/yourusername/prop-sim/internal/models"
)

// UpdatePosterior fuses the season prior with recent form. The recent-games
// count acts as an observation weight over the prior variance rather than
// an independently estimated variance; this keeps the update cheap and is
// the intended model, not a shortcut to fix.
//
// hasHistory gates the whole update: without season history the prior is
// returned untouched.
func UpdatePosterior(priorMean, priorStdDev, recentMean float64, recentGames int, hasHistory bool) (models.PosteriorEstimate, error) {
	if priorStdDev <= 0 || math.IsNaN(priorStdDev) {
		return models.PosteriorEstimate{}, models.ErrInvalidVariance
	}
	if recentGames < 0 || math.IsNaN(priorMean) || math.IsNaN(recentMean) {
		return models.PosteriorEstimate{}, models.ErrInvalidInput
	}

	if !hasHistory {
		return models.PosteriorEstimate{Mean: priorMean, StdDev: priorStdDev}, nil
	}

	priorVariance := priorStdDev * priorStdDev
	precisionPrior := 1 / priorVariance
	precisionRecent := float64(recentGames) / priorVariance
	totalPrecision := precisionPrior + precisionRecent

	return models.PosteriorEstimate{
		Mean:   (priorMean*precisionPrior + recentMean*precisionRecent) / totalPrecision,
		StdDev: math.Sqrt(1 / totalPrecision),
	}, nil
}
