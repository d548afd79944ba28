package simulation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-sim/internal/metrics"
	"github.com/yourusername/prop-sim/internal/models"
	"github.com/yourusername/prop-sim/internal/odds"
)

// Engine orchestrates pipeline runs. It holds no per-run state, so one
// engine may serve concurrent runs; each run draws its own samples.
type Engine struct {
	config SimulationConfig
	logger *logrus.Logger
}

// NewEngine creates a new simulation engine
func NewEngine(cfg SimulationConfig, logger *logrus.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{config: cfg, logger: logger}, nil
}

// Config returns the simulation configuration
func (e *Engine) Config() SimulationConfig {
	return e.config
}

// Logger returns the engine logger
func (e *Engine) Logger() *logrus.Logger {
	return e.logger
}

// Result is the full output record of one pipeline run. Samples exist
// only for this record's lifetime; they are never persisted.
type Result struct {
	RunID        uuid.UUID                `json:"run_id"`
	Inputs       models.PlayerInputs      `json:"inputs"`
	Posterior    models.PosteriorEstimate `json:"posterior"`
	Projection   models.Projection        `json:"projection"`
	Analysis     models.BetAnalysis       `json:"analysis"`
	Samples      []float64                `json:"samples,omitempty"`
	SampleMean   float64                  `json:"sample_mean"`
	SampleStdDev float64                  `json:"sample_std_dev"`
	Histogram    Histogram                `json:"histogram"`
	Duration     time.Duration            `json:"duration_ns"`
}

// Run executes one pipeline pass: odds conversion, Bayesian update,
// projection, floor, Monte Carlo sampling, and outcome analysis.
func (e *Engine) Run(ctx context.Context, in models.PlayerInputs) (*Result, error) {
	_ = ctx
	start := time.Now()

	if err := in.Validate(); err != nil {
		metrics.RecordSimulationError()
		return nil, err
	}

	multiplier, err := odds.ToDecimal(in.AmericanOdds)
	if err != nil {
		metrics.RecordSimulationError()
		return nil, err
	}

	posterior, err := UpdatePosterior(in.SeasonMean, in.SeasonStdDev, in.RecentMean, in.RecentGames, in.HasHistory())
	if err != nil {
		metrics.RecordSimulationError()
		return nil, err
	}

	raw, err := ProjectPoints(in.SeasonMean, in.RecentMean, in.OpponentAllowed, in.ProjectedMinutes, in.AvgMinutes)
	if err != nil {
		metrics.RecordSimulationError()
		return nil, err
	}
	projection := ApplyFloor(raw, in.OpponentAllowed, in.FloorPercentage)

	samples, err := SampleNormal(projection.Floored, posterior.StdDev, in.SimulationCount, e.config.Seed)
	if err != nil {
		metrics.RecordSimulationError()
		return nil, err
	}

	analysis, err := Analyze(samples, in.Line, multiplier)
	if err != nil {
		metrics.RecordSimulationError()
		return nil, err
	}

	if e.config.Bankroll > 0 {
		analysis.KellyFraction = KellyFraction(analysis.ProbabilityOver, multiplier, e.config.KellyFraction)
		analysis.SuggestedStake = SuggestStake(e.config.Bankroll, analysis.KellyFraction)
	}

	sampleMean, sampleStdDev := SummarizeSamples(samples)

	result := &Result{
		RunID:        uuid.New(),
		Inputs:       in,
		Posterior:    posterior,
		Projection:   projection,
		Analysis:     analysis,
		Samples:      samples,
		SampleMean:   sampleMean,
		SampleStdDev: sampleStdDev,
		Histogram:    BuildHistogram(samples, e.config.HistogramBins),
		Duration:     time.Since(start),
	}

	metrics.RecordSimulation(result.Duration.Seconds(), analysis.ProbabilityOver, analysis.EdgePercentage)
	metrics.RecordRecommendation(string(analysis.Recommendation))
	if projection.FloorTriggered {
		metrics.RecordFloorApplied()
	}

	e.logger.WithFields(logrus.Fields{
		"run_id":           result.RunID,
		"line":             in.Line,
		"projection":       projection.Floored,
		"floor_triggered":  projection.FloorTriggered,
		"probability_over": analysis.ProbabilityOver,
		"edge_pct":         analysis.EdgePercentage,
		"recommendation":   analysis.Recommendation,
	}).Info("Simulation run completed")

	return result, nil
}
