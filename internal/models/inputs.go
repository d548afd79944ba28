package models

import "math"

// PlayerInputs holds every value one pipeline run needs. The JSON field
// names match the keys the profile file format has always used.
type PlayerInputs struct {
	SeasonMean       float64 `json:"mean_points" mapstructure:"season_mean"`
	SeasonStdDev     float64 `json:"std_dev_points" mapstructure:"season_std_dev" validate:"gt=0"`
	GamesPlayed      *int    `json:"games_played" mapstructure:"games_played"`
	RecentMean       float64 `json:"recent_avg_points" mapstructure:"recent_mean"`
	RecentGames      int     `json:"recent_games" mapstructure:"recent_games" validate:"gte=0"`
	OpponentAllowed  float64 `json:"opp_points_allowed_position" mapstructure:"opponent_allowed"`
	ProjectedMinutes float64 `json:"projected_minutes" mapstructure:"projected_minutes" validate:"gte=0"`
	AvgMinutes       float64 `json:"avg_minutes" mapstructure:"avg_minutes" validate:"gte=0"`
	FloorPercentage  float64 `json:"floor_percentage" mapstructure:"floor_percentage" validate:"gte=0,lte=100"`
	Line             float64 `json:"line" mapstructure:"line"`
	AmericanOdds     float64 `json:"odds" mapstructure:"american_odds"`
	SimulationCount  int     `json:"simulations" mapstructure:"simulation_count" validate:"gte=1000,lte=20000"`
}

// DefaultInputs returns the placeholder values the interactive tool has
// always pre-filled.
func DefaultInputs() PlayerInputs {
	return PlayerInputs{
		SeasonMean:       20.0,
		SeasonStdDev:     1.0,
		RecentMean:       22.0,
		RecentGames:      5,
		OpponentAllowed:  22.0,
		ProjectedMinutes: 35.0,
		AvgMinutes:       34.0,
		FloorPercentage:  50,
		Line:             20.5,
		AmericanOdds:     -110,
		SimulationCount:  10000,
	}
}

// Validate fails fast on values the pipeline cannot work with.
func (in PlayerInputs) Validate() error {
	for _, v := range []float64{
		in.SeasonMean, in.SeasonStdDev, in.RecentMean, in.OpponentAllowed,
		in.ProjectedMinutes, in.AvgMinutes, in.FloorPercentage, in.Line, in.AmericanOdds,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidInput
		}
	}
	if in.SeasonStdDev <= 0 {
		return ErrInvalidVariance
	}
	if in.RecentGames < 0 {
		return ErrInvalidInput
	}
	if in.FloorPercentage < 0 || in.FloorPercentage > 100 {
		return ErrInvalidInput
	}
	if in.AmericanOdds == 0 {
		return ErrInvalidOdds
	}
	if in.SimulationCount < MinSimulations || in.SimulationCount > MaxSimulations {
		return ErrInvalidSampleCount
	}
	return nil
}

// Simulation count bounds supported by the sampler.
const (
	MinSimulations = 1000
	MaxSimulations = 20000
)

// HasHistory reports whether enough season history exists for the
// Bayesian update. GamesPlayed only ever acts as this gate.
func (in PlayerInputs) HasHistory() bool {
	return in.GamesPlayed != nil && *in.GamesPlayed != 0
}
