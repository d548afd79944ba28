package profile

import (
	"context"
	"testing"
	"time"

	"github.com/yourusername/prop-sim/internal/models"
)

// countingStore wraps a Store and counts inner Get calls.
type countingStore struct {
	Store
	gets int
}

func (c *countingStore) Get(ctx context.Context, name string) (*models.PlayerProfile, error) {
	c.gets++
	return c.Store.Get(ctx, name)
}

func TestCachedStoreGetHitsCache(t *testing.T) {
	inner := &countingStore{Store: newTestFileStore(t)}
	cached := NewCachedStore(inner, time.Minute, nil)
	ctx := context.Background()

	if err := cached.Save(ctx, testProfile("Anthony Edwards")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := cached.Get(ctx, "Anthony Edwards"); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
	}

	if inner.gets != 1 {
		t.Errorf("inner Get calls = %d, want 1", inner.gets)
	}
	hits, misses := cached.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats() = (%d, %d), want (2, 1)", hits, misses)
	}
}

func TestCachedStoreSaveInvalidates(t *testing.T) {
	inner := &countingStore{Store: newTestFileStore(t)}
	cached := NewCachedStore(inner, time.Minute, nil)
	ctx := context.Background()

	p := testProfile("Ja Morant")
	if err := cached.Save(ctx, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := cached.Get(ctx, "Ja Morant"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	p.Line = 31.5
	if err := cached.Save(ctx, p); err != nil {
		t.Fatalf("Save() update error = %v", err)
	}

	got, err := cached.Get(ctx, "Ja Morant")
	if err != nil {
		t.Fatalf("Get() after update error = %v", err)
	}
	if got.Line != 31.5 {
		t.Errorf("Line = %v, want cache invalidated after Save", got.Line)
	}
}

func TestCachedStoreDeleteInvalidates(t *testing.T) {
	inner := &countingStore{Store: newTestFileStore(t)}
	cached := NewCachedStore(inner, time.Minute, nil)
	ctx := context.Background()

	if err := cached.Save(ctx, testProfile("Trae Young")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := cached.Get(ctx, "Trae Young"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if err := cached.Delete(ctx, "Trae Young"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := cached.Get(ctx, "Trae Young"); err == nil {
		t.Error("Get() after delete should fail")
	}
}
