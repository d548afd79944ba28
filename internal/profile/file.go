package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/yourusername/prop-sim/internal/metrics"
	"github.com/yourusername/prop-sim/internal/models"
)

// FileStore keeps profiles in a single JSON file keyed by player name.
// Writes rewrite the whole file; a mutex serializes access within the
// process.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the JSON file at path. The
// file is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (map[string]models.PlayerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *FileStore) SaveAll(ctx context.Context, profiles map[string]models.PlayerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeAll(profiles)
}

func (s *FileStore) Get(ctx context.Context, name string) (*models.PlayerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.readAll()
	if err != nil {
		return nil, err
	}

	p, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q: %w", name, models.ErrNotFound)
	}
	return &p, nil
}

func (s *FileStore) Save(ctx context.Context, p models.PlayerProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.readAll()
	if err != nil {
		return err
	}

	p.UpdatedAt = time.Now().UTC()
	profiles[p.Name] = p
	return s.writeAll(profiles)
}

func (s *FileStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.readAll()
	if err != nil {
		return err
	}

	if _, ok := profiles[name]; !ok {
		return fmt.Errorf("profile %q: %w", name, models.ErrNotFound)
	}

	delete(profiles, name)
	return s.writeAll(profiles)
}

func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.readAll()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	return names, nil
}

func (s *FileStore) readAll() (map[string]models.PlayerProfile, error) {
	start := time.Now()
	defer func() { metrics.RecordProfileStoreOp("read", time.Since(start).Seconds()) }()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.PlayerProfile{}, nil
		}
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	profiles := map[string]models.PlayerProfile{}
	if len(data) == 0 {
		return profiles, nil
	}
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}

	// The map key is authoritative for lookups; keep the embedded name
	// in sync for entries written by hand.
	for name, p := range profiles {
		if p.Name == "" {
			p.Name = name
			profiles[name] = p
		}
	}
	return profiles, nil
}

func (s *FileStore) writeAll(profiles map[string]models.PlayerProfile) error {
	start := time.Now()
	defer func() { metrics.RecordProfileStoreOp("write", time.Since(start).Seconds()) }()

	data, err := json.MarshalIndent(profiles, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create profile directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace profile file: %w", err)
	}
	return nil
}
