package models

import "github.com/shopspring/decimal"

// PosteriorEstimate is the player's updated mean/spread after fusing the
// season prior with recent form. Recomputed on every run.
type PosteriorEstimate struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Projection carries the deterministic point projection before and after
// the floor heuristic.
type Projection struct {
	Raw            float64 `json:"raw"`
	Floored        float64 `json:"floored"`
	FloorTriggered bool    `json:"floor_triggered"`
}

// Recommendation classifies bet strength from the edge percentage.
type Recommendation string

// Recommendation tiers, strongest first.
const (
	VeryStrongOver   Recommendation = "very_strong_over"
	StrongOver       Recommendation = "strong_over"
	GoodOver         Recommendation = "good_over"
	NoRecommendation Recommendation = "none"
	GoodUnder        Recommendation = "good_under"
	StrongUnder      Recommendation = "strong_under"
	VeryStrongUnder  Recommendation = "very_strong_under"
)

// Display returns the wording shown to bettors.
func (r Recommendation) Display() string {
	switch r {
	case VeryStrongOver:
		return "Very Strong Over Bet"
	case StrongOver:
		return "Strong Over Bet"
	case GoodOver:
		return "Good Over Bet"
	case VeryStrongUnder:
		return "Very Strong Under Bet"
	case StrongUnder:
		return "Strong Under Bet"
	case GoodUnder:
		return "Good Under Bet"
	default:
		return "No Strong Bet Recommendation"
	}
}

// IsOver reports whether the tier favors the over side.
func (r Recommendation) IsOver() bool {
	return r == VeryStrongOver || r == StrongOver || r == GoodOver
}

// IsUnder reports whether the tier favors the under side.
func (r Recommendation) IsUnder() bool {
	return r == VeryStrongUnder || r == StrongUnder || r == GoodUnder
}

// BetAnalysis is the summary the display collaborator consumes.
// EdgePercentage is always probabilityOver*100-50, so it stays in [-50,50].
type BetAnalysis struct {
	ProbabilityOver float64         `json:"probability_over"`
	ExpectedValue   float64         `json:"expected_value"`
	EdgePercentage  float64         `json:"edge_percentage"`
	Recommendation  Recommendation  `json:"recommendation"`
	KellyFraction   float64         `json:"kelly_fraction"`
	SuggestedStake  decimal.Decimal `json:"suggested_stake"`
}
