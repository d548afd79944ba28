package simulation

import (
	"fmt"

	"github.com/yourusername/prop-sim/internal/config"
)

// SimulationConfig extends core config with run-level settings
type SimulationConfig struct {
	Seed          int64
	HistogramBins int
	Bankroll      float64
	KellyFraction float64
}

// FromConfig converts app config to simulation config
func FromConfig(cfg *config.Config) (SimulationConfig, error) {
	if cfg == nil {
		return SimulationConfig{}, fmt.Errorf("config is required")
	}

	sc := SimulationConfig{
		Seed:          cfg.Simulation.Seed,
		HistogramBins: cfg.Simulation.HistogramBins,
		Bankroll:      cfg.Bankroll.Amount,
		KellyFraction: cfg.Bankroll.KellyFraction,
	}

	return sc, sc.Validate()
}

// Validate validates simulation config parameters
func (c SimulationConfig) Validate() error {
	if c.HistogramBins <= 0 {
		return fmt.Errorf("histogram bins must be positive")
	}
	if c.Bankroll < 0 {
		return fmt.Errorf("bankroll cannot be negative")
	}
	if c.KellyFraction < 0 || c.KellyFraction > 1 {
		return fmt.Errorf("kelly fraction must be between 0 and 1")
	}
	return nil
}
