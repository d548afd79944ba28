package simulation

import (
	"math"

	"github.com/yourusername/prop-sim/internal/models"
)

// Projection weights. Season form dominates recent form; the opponent
// adjustment moves a quarter of the defensive gap.
const (
	seasonWeight           = 0.6
	recentWeight           = 0.4
	opponentAdjustmentRate = 0.25
)

// ProjectPoints computes the deterministic expected-points value from
// season average, recent average, opponent defensive allowance, and the
// minutes-played ratio. When avgMinutes is zero or negative the ratio
// falls back to 1.0 instead of dividing by zero.
func ProjectPoints(seasonMean, recentMean, opponentAllowed, projectedMinutes, avgMinutes float64) (float64, error) {
	for _, v := range []float64{seasonMean, recentMean, opponentAllowed, projectedMinutes, avgMinutes} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, models.ErrInvalidInput
		}
	}

	weightedAvg := seasonWeight*seasonMean + recentWeight*recentMean
	opponentAdj := (opponentAllowed - seasonMean) * opponentAdjustmentRate

	minutesRatio := 1.0
	if avgMinutes > 0 {
		minutesRatio = projectedMinutes / avgMinutes
	}

	return (weightedAvg + opponentAdj) * minutesRatio, nil
}

// ApplyFloor clamps the projection to a minimum derived from opponent
// strength. Raising floorPercentage never lowers the floored value.
func ApplyFloor(raw, opponentAllowed, floorPercentage float64) models.Projection {
	floorValue := opponentAllowed * (floorPercentage / 100)
	return models.Projection{
		Raw:            raw,
		Floored:        math.Max(raw, floorValue),
		FloorTriggered: raw < floorValue,
	}
}
