// Package config provides configuration management for the prop simulator.
package config

import (
	"fmt"

	"github.com/yourusername/prop-sim/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Defaults   DefaultsConfig   `mapstructure:"defaults"`
	Simulation SimulationConfig `mapstructure:"simulation" validate:"required"`
	Bankroll   BankrollConfig   `mapstructure:"bankroll"`
	Profiles   ProfilesConfig   `mapstructure:"profiles" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Server     ServerConfig     `mapstructure:"server"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DefaultsConfig carries the pre-filled input values the calling layer
// (form or CLI) starts from. The pipeline itself never reads these.
type DefaultsConfig struct {
	SeasonMean       float64 `mapstructure:"season_mean"`
	SeasonStdDev     float64 `mapstructure:"season_std_dev" validate:"gt=0"`
	RecentMean       float64 `mapstructure:"recent_mean"`
	RecentGames      int     `mapstructure:"recent_games" validate:"gte=0"`
	OpponentAllowed  float64 `mapstructure:"opponent_allowed"`
	ProjectedMinutes float64 `mapstructure:"projected_minutes" validate:"gte=0"`
	AvgMinutes       float64 `mapstructure:"avg_minutes" validate:"gte=0"`
	FloorPercentage  float64 `mapstructure:"floor_percentage" validate:"gte=0,lte=100"`
	Line             float64 `mapstructure:"line"`
	AmericanOdds     float64 `mapstructure:"american_odds"`
	SimulationCount  int     `mapstructure:"simulation_count" validate:"gte=1000,lte=20000"`
}

// Inputs converts the configured defaults to a PlayerInputs record.
func (d DefaultsConfig) Inputs() models.PlayerInputs {
	return models.PlayerInputs{
		SeasonMean:       d.SeasonMean,
		SeasonStdDev:     d.SeasonStdDev,
		RecentMean:       d.RecentMean,
		RecentGames:      d.RecentGames,
		OpponentAllowed:  d.OpponentAllowed,
		ProjectedMinutes: d.ProjectedMinutes,
		AvgMinutes:       d.AvgMinutes,
		FloorPercentage:  d.FloorPercentage,
		Line:             d.Line,
		AmericanOdds:     d.AmericanOdds,
		SimulationCount:  d.SimulationCount,
	}
}

// SimulationConfig represents sampler configuration
type SimulationConfig struct {
	Seed          int64 `mapstructure:"seed"`
	HistogramBins int   `mapstructure:"histogram_bins" validate:"required,gt=0"`
}

// BankrollConfig represents staking configuration. A zero bankroll
// disables stake suggestions.
type BankrollConfig struct {
	Amount        float64 `mapstructure:"amount" validate:"gte=0"`
	KellyFraction float64 `mapstructure:"kelly_fraction" validate:"gte=0,lte=1"`
}

// ProfilesConfig represents the profile store configuration
type ProfilesConfig struct {
	Backend         string         `mapstructure:"backend" validate:"required,oneof=file postgres"`
	Path            string         `mapstructure:"path"`
	CacheTTLSeconds int            `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
	Database        DatabaseConfig `mapstructure:"database"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ServerConfig represents the HTTP collaborator surface configuration
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string for the profile store
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Profiles.Database.User,
		c.Profiles.Database.Password,
		c.Profiles.Database.Host,
		c.Profiles.Database.Port,
		c.Profiles.Database.Name,
		c.Profiles.Database.SSLMode,
	)
}
