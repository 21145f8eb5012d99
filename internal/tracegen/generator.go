// Package tracegen fabricates step-by-step execution traces for submitted
// source code. It is a simulation, not an interpreter: per category it
// extracts a few literals from the source (best effort, with fixed
// defaults) and replays a canned walk of the canonical algorithm. The
// submitted program's actual semantics are never evaluated.
package tracegen

import (
	"time"

	"algolens/internal/trace"
)

// Default inputs used whenever extraction finds nothing usable in the
// submitted source.
var (
	defaultSortArray   = []int{64, 34, 25, 12, 22, 11, 90}
	defaultSearchArray = []int{1, 3, 5, 7, 9, 11, 13, 15}
)

const defaultSearchTarget = 7

// Generator produces traces. Clock and metrics are injectable so tests can
// pin timestamps and the synthetic performance numbers.
type Generator struct {
	metrics MetricsSource
	now     func() time.Time
}

type Option func(*Generator)

func WithMetrics(m MetricsSource) Option {
	return func(g *Generator) { g.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func New(opts ...Option) *Generator {
	g := &Generator{
		metrics: NewRandomMetrics(time.Now().UnixNano()),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate fabricates the ordered step list for one submission. It never
// fails: malformed literals fall back to defaults and unhandled categories
// degrade to a generic per-line walk.
func (g *Generator) Generate(source string, category trace.Category, input string) []trace.TraceStep {
	switch category {
	case trace.CategorySorting:
		return g.generateSorting(source)
	case trace.CategorySearching:
		return g.generateSearching(source, input)
	case trace.CategoryQueue:
		return g.generateQueue(source)
	default:
		return g.generateGeneric(source)
	}
}

// GenerateResult wraps Generate into a full TraceResult with synthetic
// metrics, the final-state blob and the static complexity record.
func (g *Generator) GenerateResult(source string, category trace.Category, language, input string) trace.TraceResult {
	steps := g.Generate(source, category, input)
	return trace.TraceResult{
		Success:         true,
		Category:        category,
		Language:        language,
		ExecutionTimeMS: g.metrics.ExecutionTimeMS(),
		MemoryKB:        g.metrics.MemoryKB(),
		Steps:           steps,
		FinalState:      finalState(steps),
		Complexity:      trace.ComplexityFor(category, len(steps)),
	}
}

// finalState lifts the last step's variables into the result-level blob.
func finalState(steps []trace.TraceStep) map[string]any {
	if len(steps) == 0 {
		return nil
	}
	last := steps[len(steps)-1]
	if len(last.Variables) == 0 {
		return nil
	}
	out := make(map[string]any, len(last.Variables))
	for k, v := range last.Variables {
		out[k] = v
	}
	return out
}

func (g *Generator) step(s trace.TraceStep) trace.TraceStep {
	s.CreatedAt = g.now()
	return s
}
