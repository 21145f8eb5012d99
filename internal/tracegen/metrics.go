package tracegen

import "math/rand"

// MetricsSource produces the synthetic execution-time and memory numbers
// attached to a TraceResult. Nothing is measured anywhere in the pipeline;
// the default draws from rand, and tests inject a fixed source to keep
// results reproducible.
type MetricsSource interface {
	ExecutionTimeMS() float64
	MemoryKB() float64
}

type randomMetrics struct {
	rng *rand.Rand
}

// NewRandomMetrics returns the default rand-backed source.
func NewRandomMetrics(seed int64) MetricsSource {
	return &randomMetrics{rng: rand.New(rand.NewSource(seed))}
}

func (m *randomMetrics) ExecutionTimeMS() float64 {
	return 5 + m.rng.Float64()*45
}

func (m *randomMetrics) MemoryKB() float64 {
	return 256 + m.rng.Float64()*1024
}

// FixedMetrics is a deterministic MetricsSource for tests.
type FixedMetrics struct {
	TimeMS float64
	KB     float64
}

func (m FixedMetrics) ExecutionTimeMS() float64 { return m.TimeMS }
func (m FixedMetrics) MemoryKB() float64        { return m.KB }
