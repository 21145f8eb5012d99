package stepblob

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:        5 * time.Minute,
		MaxEntries: 256,
	}
}

type CacheMetrics struct {
	Hits         uint64
	Misses       uint64
	OriginReads  uint64
	OriginWrites uint64
}

// CachedStore keeps recently read step payloads in memory in front of a
// slower origin (postgres or s3). Writes go through and invalidate.
type CachedStore struct {
	origin Store
	cache  *expirable.LRU[string, []byte]

	hits         atomic.Uint64
	misses       atomic.Uint64
	originReads  atomic.Uint64
	originWrites atomic.Uint64
}

func NewCachedStore(origin Store, cfg CacheConfig) *CachedStore {
	def := DefaultCacheConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = def.MaxEntries
	}
	return &CachedStore{
		origin: origin,
		cache:  expirable.NewLRU[string, []byte](cfg.MaxEntries, nil, cfg.TTL),
	}
}

func (s *CachedStore) Put(ctx context.Context, visualizationID string, content []byte) error {
	s.originWrites.Add(1)
	if err := s.origin.Put(ctx, visualizationID, content); err != nil {
		return err
	}
	copied := append([]byte(nil), content...)
	s.cache.Add(strings.TrimSpace(visualizationID), copied)
	return nil
}

func (s *CachedStore) Get(ctx context.Context, visualizationID string) ([]byte, error) {
	key := strings.TrimSpace(visualizationID)
	if raw, ok := s.cache.Get(key); ok {
		s.hits.Add(1)
		return append([]byte(nil), raw...), nil
	}
	s.misses.Add(1)
	s.originReads.Add(1)

	raw, err := s.origin.Get(ctx, visualizationID)
	if err != nil {
		return nil, err
	}
	copied := append([]byte(nil), raw...)
	s.cache.Add(key, copied)
	return append([]byte(nil), copied...), nil
}

func (s *CachedStore) Delete(ctx context.Context, visualizationID string) error {
	key := strings.TrimSpace(visualizationID)
	s.cache.Remove(key)
	return s.origin.Delete(ctx, visualizationID)
}

func (s *CachedStore) Metrics() CacheMetrics {
	if s == nil {
		return CacheMetrics{}
	}
	return CacheMetrics{
		Hits:         s.hits.Load(),
		Misses:       s.misses.Load(),
		OriginReads:  s.originReads.Load(),
		OriginWrites: s.originWrites.Load(),
	}
}
