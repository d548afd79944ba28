// Package config provides configuration management for the prop simulator.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment
// variables, expanding ${VAR} placeholders in the YAML file. The file is
// optional; defaults and environment variables cover every field.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("PROP_SIM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// MustLoad loads a config file that has to exist.
func MustLoad(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
	}
	return Load(configPath)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "prop-sim")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	// Input placeholders the interactive tool has always shown.
	v.SetDefault("defaults.season_mean", 20.0)
	v.SetDefault("defaults.season_std_dev", 1.0)
	v.SetDefault("defaults.recent_mean", 22.0)
	v.SetDefault("defaults.recent_games", 5)
	v.SetDefault("defaults.opponent_allowed", 22.0)
	v.SetDefault("defaults.projected_minutes", 35.0)
	v.SetDefault("defaults.avg_minutes", 34.0)
	v.SetDefault("defaults.floor_percentage", 50)
	v.SetDefault("defaults.line", 20.5)
	v.SetDefault("defaults.american_odds", -110)
	v.SetDefault("defaults.simulation_count", 10000)

	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.histogram_bins", 30)

	v.SetDefault("bankroll.amount", 0)
	v.SetDefault("bankroll.kelly_fraction", 0.25)

	v.SetDefault("profiles.backend", "file")
	v.SetDefault("profiles.path", "player_data.json")
	v.SetDefault("profiles.cache_ttl_seconds", 300)
	v.SetDefault("profiles.database.port", 5432)
	v.SetDefault("profiles.database.ssl_mode", "disable")
	v.SetDefault("profiles.database.max_connections", 4)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("server.port", 8080)
}
