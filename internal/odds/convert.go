// Package odds converts between American odds and decimal multipliers.
package odds

import (
	"math"

	"github.com/yourusername/prop-sim/internal/models"
)

// ToDecimal converts American odds to a decimal payout multiplier.
// Example: -110 → 1.9091, +150 → 2.5. Zero odds have no decimal form.
func ToDecimal(american float64) (float64, error) {
	if american == 0 {
		return 0, models.ErrInvalidOdds
	}
	if math.IsNaN(american) || math.IsInf(american, 0) {
		return 0, models.ErrInvalidInput
	}

	if american < 0 {
		// Favorite: stake |odds| to win 100
		return 1 + 100/math.Abs(american), nil
	}
	// Underdog: stake 100 to win odds
	return 1 + american/100, nil
}

// ImpliedProbability returns the break-even probability baked into the
// American odds. Example: -150 → 0.6, +150 → 0.4.
func ImpliedProbability(american float64) float64 {
	if american == 0 {
		return 0
	}
	if american > 0 {
		return 100.0 / (american + 100.0)
	}
	return math.Abs(american) / (math.Abs(american) + 100.0)
}
