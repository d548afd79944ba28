package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yourusername/prop-sim/internal/database"
	"github.com/yourusername/prop-sim/internal/metrics"
	"github.com/yourusername/prop-sim/internal/models"
)

// PostgresStore persists profiles in a player_profiles table. Inputs
// are stored as JSONB in the same shape as the file backend, so rows
// can be moved between backends without translation.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a store on an established connection pool.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the player_profiles table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS player_profiles (
			name TEXT PRIMARY KEY,
			id UUID NOT NULL,
			position TEXT NOT NULL DEFAULT '',
			inputs JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := s.db.GetPool().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create player_profiles table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (map[string]models.PlayerProfile, error) {
	start := time.Now()
	defer func() { metrics.RecordProfileStoreOp("read", time.Since(start).Seconds()) }()

	query := `SELECT name, id, position, inputs, updated_at FROM player_profiles`

	rows, err := s.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	profiles := map[string]models.PlayerProfile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles[p.Name] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}
	return profiles, nil
}

func (s *PostgresStore) SaveAll(ctx context.Context, profiles map[string]models.PlayerProfile) error {
	start := time.Now()
	defer func() { metrics.RecordProfileStoreOp("write", time.Since(start).Seconds()) }()

	tx, err := s.db.GetPool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM player_profiles`); err != nil {
		return fmt.Errorf("failed to clear profiles: %w", err)
	}

	for _, p := range profiles {
		if err := upsertProfile(ctx, tx, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit profiles: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, name string) (*models.PlayerProfile, error) {
	start := time.Now()
	defer func() { metrics.RecordProfileStoreOp("read", time.Since(start).Seconds()) }()

	query := `SELECT name, id, position, inputs, updated_at FROM player_profiles WHERE name = $1`

	row := s.db.GetPool().QueryRow(ctx, query, name)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile %q: %w", name, models.ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func (s *PostgresStore) Save(ctx context.Context, p models.PlayerProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	start := time.Now()
	defer func() { metrics.RecordProfileStoreOp("write", time.Since(start).Seconds()) }()

	p.UpdatedAt = time.Now().UTC()
	return upsertProfile(ctx, s.db.GetPool(), p)
}

func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	start := time.Now()
	defer func() { metrics.RecordProfileStoreOp("write", time.Since(start).Seconds()) }()

	tag, err := s.db.GetPool().Exec(ctx, `DELETE FROM player_profiles WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %q: %w", name, models.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	defer func() { metrics.RecordProfileStoreOp("read", time.Since(start).Seconds()) }()

	rows, err := s.db.GetPool().Query(ctx, `SELECT name FROM player_profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan profile name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profile names: %w", err)
	}
	return names, nil
}

// execer covers both the pool and an open transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func upsertProfile(ctx context.Context, ex execer, p models.PlayerProfile) error {
	inputs, err := json.Marshal(p.PlayerInputs)
	if err != nil {
		return fmt.Errorf("failed to encode profile inputs: %w", err)
	}

	query := `
		INSERT INTO player_profiles (name, id, position, inputs, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE SET
			position = EXCLUDED.position,
			inputs = EXCLUDED.inputs,
			updated_at = EXCLUDED.updated_at`

	if _, err := ex.Exec(ctx, query, p.Name, p.ID, p.Position, inputs, p.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func scanProfile(row pgx.Row) (models.PlayerProfile, error) {
	var (
		p      models.PlayerProfile
		inputs []byte
	)
	if err := row.Scan(&p.Name, &p.ID, &p.Position, &inputs, &p.UpdatedAt); err != nil {
		return p, err
	}
	if err := json.Unmarshal(inputs, &p.PlayerInputs); err != nil {
		return p, fmt.Errorf("failed to decode profile inputs: %w", err)
	}
	return p, nil
}
