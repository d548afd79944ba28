// Package main provides the entry point for the prop simulation CLI tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-sim/internal/config"
	"github.com/yourusername/prop-sim/internal/logger"
	"github.com/yourusername/prop-sim/internal/models"
	"github.com/yourusername/prop-sim/internal/profile"
	"github.com/yourusername/prop-sim/internal/simulation"
)

func main() {
	var (
		configPath  = flag.String("config", "config/config.yaml", "Path to config file")
		profileName = flag.String("profile", "", "Saved player profile to load inputs from")
		line        = flag.Float64("line", 0, "Override the prop line")
		odds        = flag.Float64("odds", 0, "Override the American odds")
		sims        = flag.Int("sims", 0, "Override the simulation count")
		seed        = flag.Int64("seed", 0, "RNG seed (0 draws fresh entropy)")
		output      = flag.String("output", "", "Write the full result record to this JSON path")
		showSamples = flag.Bool("verbose", false, "Log sample summary statistics")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg := loadConfig(*configPath)
	log := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)

	ctx := context.Background()
	inputs := resolveInputs(ctx, cfg, log, *profileName, *line, *odds, *sims)
	engine := buildEngine(cfg, log, *seed)

	result, err := engine.Run(ctx, inputs)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	fmt.Print(simulation.GenerateConsoleReport(result))

	if *showSamples {
		log.WithFields(logrus.Fields{
			"sample_mean":    result.SampleMean,
			"sample_std_dev": result.SampleStdDev,
			"samples":        len(result.Samples),
		}).Info("Sample summary")
	}

	if *output != "" {
		if err := simulation.ExportJSON(result, *output); err != nil {
			log.Fatalf("Failed to write result: %v", err)
		}
		log.WithField("path", *output).Info("Result written")
	}
}

func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// resolveInputs layers inputs: configured defaults, then a saved
// profile, then flag overrides.
func resolveInputs(ctx context.Context, cfg *config.Config, log *logrus.Logger, profileName string, line, odds float64, sims int) models.PlayerInputs {
	inputs := cfg.Defaults.Inputs()

	if profileName != "" {
		store, err := profile.NewStore(ctx, cfg, log)
		if err != nil {
			log.Fatalf("Failed to open profile store: %v", err)
		}
		p, err := store.Get(ctx, profileName)
		if err != nil {
			log.Fatalf("Failed to load profile %q: %v", profileName, err)
		}
		inputs = p.PlayerInputs
	}

	if line != 0 {
		inputs.Line = line
	}
	if odds != 0 {
		inputs.AmericanOdds = odds
	}
	if sims != 0 {
		inputs.SimulationCount = sims
	}
	return inputs
}

func buildEngine(cfg *config.Config, log *logrus.Logger, seed int64) *simulation.Engine {
	simConfig, err := simulation.FromConfig(cfg)
	if err != nil {
		log.Fatalf("Invalid simulation config: %v", err)
	}
	if seed != 0 {
		simConfig.Seed = seed
	}

	engine, err := simulation.NewEngine(simConfig, log)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	return engine
}
