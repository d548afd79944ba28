package profile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yourusername/prop-sim/internal/models"
)

func testProfile(name string) models.PlayerProfile {
	inputs := models.DefaultInputs()
	return models.NewPlayerProfile(name, "PG", inputs)
}

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "player_data.json"))
}

func TestFileStoreSaveAndGet(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	p := testProfile("Stephen Curry")
	p.Line = 28.5
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Get(ctx, "Stephen Curry")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Stephen Curry" {
		t.Errorf("Name = %q, want %q", got.Name, "Stephen Curry")
	}
	if got.Line != 28.5 {
		t.Errorf("Line = %v, want 28.5", got.Line)
	}
	if got.Position != "PG" {
		t.Errorf("Position = %q, want PG", got.Position)
	}
}

func TestFileStoreGetMissing(t *testing.T) {
	store := newTestFileStore(t)

	_, err := store.Get(context.Background(), "Nobody")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreLoadEmptyFile(t *testing.T) {
	store := newTestFileStore(t)

	profiles, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("Load() returned %d profiles, want 0", len(profiles))
	}
}

func TestFileStoreDelete(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testProfile("LeBron James")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Delete(ctx, "LeBron James"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, "LeBron James"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "LeBron James"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Delete() missing error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreList(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	for _, name := range []string{"Jayson Tatum", "Luka Doncic"} {
		if err := store.Save(ctx, testProfile(name)); err != nil {
			t.Fatalf("Save(%q) error = %v", name, err)
		}
	}

	names, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 2 {
		t.Errorf("List() returned %d names, want 2", len(names))
	}
}

func TestFileStoreSaveRejectsInvalid(t *testing.T) {
	store := newTestFileStore(t)

	p := testProfile("Bad Profile")
	p.SeasonStdDev = -1
	if err := store.Save(context.Background(), p); err == nil {
		t.Error("Save() with negative std dev should fail")
	}
}

// The on-disk format is a flat name -> fields mapping with snake_case
// keys, so files written by earlier versions of the tool keep loading.
func TestFileStoreFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player_data.json")
	store := NewFileStore(path)
	ctx := context.Background()

	if err := store.Save(ctx, testProfile("Nikola Jokic")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("file is not a name -> fields map: %v", err)
	}
	fields, ok := raw["Nikola Jokic"]
	if !ok {
		t.Fatal("file missing profile keyed by player name")
	}
	for _, key := range []string{"mean_points", "std_dev_points", "recent_avg_points", "line", "odds"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("file missing key %q", key)
		}
	}
}

func TestFileStoreLoadLegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player_data.json")
	legacy := `{
        "Devin Booker": {
            "mean_points": 26.5,
            "std_dev_points": 4.2,
            "games_played": 60,
            "recent_avg_points": 29.0,
            "recent_games": 5,
            "opp_points_allowed_position": 25.0,
            "projected_minutes": 36.0,
            "avg_minutes": 35.0,
            "floor_percentage": 50.0,
            "line": 27.5,
            "odds": -110.0,
            "simulations": 10000
        }
    }`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	store := NewFileStore(path)
	got, err := store.Get(context.Background(), "Devin Booker")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Devin Booker" {
		t.Errorf("Name = %q, want map key backfilled", got.Name)
	}
	if got.SeasonMean != 26.5 || got.Line != 27.5 {
		t.Errorf("inputs not parsed: mean=%v line=%v", got.SeasonMean, got.Line)
	}
	if got.GamesPlayed == nil || *got.GamesPlayed != 60 {
		t.Errorf("GamesPlayed = %v, want 60", got.GamesPlayed)
	}
}
