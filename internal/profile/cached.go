package profile

import (
	"context"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-sim/internal/models"
)

// CachedStore is a read-through cache around another Store. Single
// profiles are cached by name; any write flushes the cache so reads
// never serve stale data.
type CachedStore struct {
	inner  Store
	cache  *gocache.Cache
	logger *logrus.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCachedStore wraps inner with an in-memory cache using the given
// TTL. Expired entries are purged at twice the TTL.
func NewCachedStore(inner Store, ttl time.Duration, logger *logrus.Logger) *CachedStore {
	if logger == nil {
		logger = logrus.New()
	}
	return &CachedStore{
		inner:  inner,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

func (s *CachedStore) Load(ctx context.Context) (map[string]models.PlayerProfile, error) {
	return s.inner.Load(ctx)
}

func (s *CachedStore) SaveAll(ctx context.Context, profiles map[string]models.PlayerProfile) error {
	if err := s.inner.SaveAll(ctx, profiles); err != nil {
		return err
	}
	s.cache.Flush()
	return nil
}

func (s *CachedStore) Get(ctx context.Context, name string) (*models.PlayerProfile, error) {
	if cached, found := s.cache.Get(name); found {
		s.hits.Add(1)
		p := cached.(models.PlayerProfile)
		return &p, nil
	}
	s.misses.Add(1)

	p, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	s.cache.SetDefault(name, *p)
	s.logger.WithFields(logrus.Fields{
		"player": name,
		"hits":   s.hits.Load(),
		"misses": s.misses.Load(),
	}).Debug("Profile cache miss")
	return p, nil
}

func (s *CachedStore) Save(ctx context.Context, p models.PlayerProfile) error {
	if err := s.inner.Save(ctx, p); err != nil {
		return err
	}
	s.cache.Delete(p.Name)
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, name string) error {
	if err := s.inner.Delete(ctx, name); err != nil {
		return err
	}
	s.cache.Delete(name)
	return nil
}

func (s *CachedStore) List(ctx context.Context) ([]string, error) {
	return s.inner.List(ctx)
}

// Stats reports cache hit and miss counts since startup.
func (s *CachedStore) Stats() (hits, misses int64) {
	return s.hits.Load(), s.misses.Load()
}
