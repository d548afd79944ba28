package simulation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/yourusername/prop-sim/internal/models"
)

// Edge thresholds for recommendation tiers, in edge-percentage points.
// Evaluated highest magnitude first; thresholds are closed (an edge of
// exactly 50 is a very strong over).
const (
	veryStrongEdge = 50.0
	strongEdge     = 31.0
	goodEdge       = 10.0
)

// Analyze derives the bet summary from the simulated sample sequence.
func Analyze(samples []float64, line, multiplier float64) (models.BetAnalysis, error) {
	if len(samples) == 0 {
		return models.BetAnalysis{}, models.ErrInvalidInput
	}
	if multiplier <= 1 || math.IsNaN(multiplier) || math.IsNaN(line) {
		return models.BetAnalysis{}, models.ErrInvalidInput
	}

	over := 0
	for _, v := range samples {
		if v > line {
			over++
		}
	}
	probOver := float64(over) / float64(len(samples))

	ev := probOver*multiplier - (1 - probOver)
	edge := probOver*100 - 50

	return models.BetAnalysis{
		ProbabilityOver: probOver,
		ExpectedValue:   ev,
		EdgePercentage:  edge,
		Recommendation:  ClassifyEdge(edge),
	}, nil
}

// ClassifyEdge maps an edge percentage to a recommendation tier.
func ClassifyEdge(edgePct float64) models.Recommendation {
	switch {
	case edgePct >= veryStrongEdge:
		return models.VeryStrongOver
	case edgePct >= strongEdge:
		return models.StrongOver
	case edgePct >= goodEdge:
		return models.GoodOver
	case edgePct <= -veryStrongEdge:
		return models.VeryStrongUnder
	case edgePct <= -strongEdge:
		return models.StrongUnder
	case edgePct <= -goodEdge:
		return models.GoodUnder
	default:
		return models.NoRecommendation
	}
}

// KellyFraction computes the fractional Kelly stake for decimal odds:
// f* = (p*d - 1) / (d - 1), clamped to [0, 1] and scaled by fraction.
func KellyFraction(probOver, multiplier, fraction float64) float64 {
	if multiplier <= 1 || probOver <= 0 {
		return 0
	}
	kelly := (probOver*multiplier - 1) / (multiplier - 1)
	kelly = math.Max(0, kelly)
	kelly = math.Min(kelly, 1.0)
	return kelly * fraction
}

// SuggestStake converts a Kelly fraction into a money amount against the
// configured bankroll, rounded to cents.
func SuggestStake(bankroll, kellyFraction float64) decimal.Decimal {
	if bankroll <= 0 || kellyFraction <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(bankroll).
		Mul(decimal.NewFromFloat(kellyFraction)).
		Round(2)
}
