// Package result caches classify/execute outputs keyed by the submitted
// source. The pipeline is pure given its inputs, so identical submissions
// within the TTL reuse the stored result instead of regenerating steps.
package result

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"algolens/internal/trace"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type Config struct {
	MaxEntries int
	TTL        time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxEntries: 1024,
		TTL:        5 * time.Minute,
	}
}

// Cache holds detection and trace results behind one key space.
type Cache struct {
	detections *expirable.LRU[string, trace.DetectionResult]
	traces     *expirable.LRU[string, trace.TraceResult]
}

func New(cfg Config) *Cache {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultConfig().MaxEntries
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	return &Cache{
		detections: expirable.NewLRU[string, trace.DetectionResult](cfg.MaxEntries, nil, cfg.TTL),
		traces:     expirable.NewLRU[string, trace.TraceResult](cfg.MaxEntries, nil, cfg.TTL),
	}
}

// Key derives the cache key for one submission. Language participates so
// the same code pasted under a different language tag is a distinct entry.
func Key(language, code string) string {
	h := sha256.New()
	h.Write([]byte(language))
	h.Write([]byte{0})
	h.Write([]byte(code))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) GetDetection(key string) (trace.DetectionResult, bool) {
	if c == nil {
		return trace.DetectionResult{}, false
	}
	return c.detections.Get(key)
}

func (c *Cache) PutDetection(key string, d trace.DetectionResult) {
	if c == nil {
		return
	}
	c.detections.Add(key, d)
}

func (c *Cache) GetTrace(key string) (trace.TraceResult, bool) {
	if c == nil {
		return trace.TraceResult{}, false
	}
	return c.traces.Get(key)
}

func (c *Cache) PutTrace(key string, r trace.TraceResult) {
	if c == nil {
		return
	}
	c.traces.Add(key, r)
}
