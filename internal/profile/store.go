// Package profile persists named player profiles. The pipeline never
// touches a store; callers resolve one profile into PlayerInputs per run.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-sim/internal/config"
	"github.com/yourusername/prop-sim/internal/database"
	"github.com/yourusername/prop-sim/internal/models"
)

// Store is the profile persistence contract.
type Store interface {
	// Load returns the full name -> profile mapping.
	Load(ctx context.Context) (map[string]models.PlayerProfile, error)
	// SaveAll replaces the stored mapping wholesale.
	SaveAll(ctx context.Context, profiles map[string]models.PlayerProfile) error
	// Get returns one profile by player name.
	Get(ctx context.Context, name string) (*models.PlayerProfile, error)
	// Save inserts or updates one profile.
	Save(ctx context.Context, p models.PlayerProfile) error
	// Delete removes one profile by player name.
	Delete(ctx context.Context, name string) error
	// List returns the stored player names.
	List(ctx context.Context) ([]string, error)
}

// NewStore builds the configured store backend, wrapped with a
// read-through cache when a TTL is configured.
func NewStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (Store, error) {
	var store Store

	switch cfg.Profiles.Backend {
	case "file":
		store = NewFileStore(cfg.Profiles.Path)
	case "postgres":
		db, err := database.NewDB(ctx, &cfg.Profiles.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect profile database: %w", err)
		}
		pg := NewPostgresStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("failed to ensure profile schema: %w", err)
		}
		store = pg
	default:
		return nil, fmt.Errorf("unsupported profile backend: %s", cfg.Profiles.Backend)
	}

	if cfg.Profiles.CacheTTLSeconds > 0 {
		store = NewCachedStore(store, time.Duration(cfg.Profiles.CacheTTLSeconds)*time.Second, logger)
	}

	return store, nil
}
