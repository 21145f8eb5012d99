package pipeline

import (
	"context"
	"testing"
	"time"

	"algolens/internal/cache/result"
	"algolens/internal/classifier"
	"algolens/internal/trace"
	"algolens/internal/tracegen"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingMetrics counts generator invocations so cache hits are visible.
type countingMetrics struct {
	calls int
}

func (m *countingMetrics) ExecutionTimeMS() float64 {
	m.calls++
	return 10
}

func (m *countingMetrics) MemoryKB() float64 { return 256 }

func newTestService(metrics tracegen.MetricsSource) *Service {
	if metrics == nil {
		metrics = tracegen.FixedMetrics{TimeMS: 10, KB: 256}
	}
	gen := tracegen.New(
		tracegen.WithMetrics(metrics),
		tracegen.WithClock(func() time.Time { return time.Unix(0, 0) }),
	)
	return New(
		classifier.New(classifier.DefaultConfig()),
		gen,
		result.New(result.DefaultConfig()),
		zap.NewNop(),
	)
}

func TestDetectRequiresCode(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.Detect(context.Background(), "javascript", "   ")
	require.ErrorIs(t, err, ErrCodeRequired)
}

func TestDetectClassifiesSortingSource(t *testing.T) {
	svc := newTestService(nil)
	d, err := svc.Detect(context.Background(), "javascript", "function bubbleSort(arr) { /* swap */ }")
	require.NoError(t, err)
	require.Equal(t, trace.CategorySorting, d.Category)
	require.Greater(t, d.Confidence, 0.0)
}

func TestExecuteRequiresCode(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.Execute(context.Background(), "javascript", "", "")
	require.ErrorIs(t, err, ErrCodeRequired)
}

func TestExecuteProducesTraceForDetectedCategory(t *testing.T) {
	svc := newTestService(nil)
	r, err := svc.Execute(context.Background(), "javascript",
		"function binarySearch(arr, target) { let mid = 0; return -1; }", "")
	require.NoError(t, err)
	require.True(t, r.Success)
	require.Equal(t, trace.CategorySearching, r.Category)
	require.Equal(t, "javascript", r.Language)
	require.NotEmpty(t, r.Steps)
	require.Equal(t, len(r.Steps), r.Complexity.Operations)
}

func TestExecuteCachesByLanguageCodeAndInput(t *testing.T) {
	metrics := &countingMetrics{}
	svc := newTestService(metrics)
	ctx := context.Background()

	code := "function quickSort(arr) { const pivot = arr[0]; }"
	first, err := svc.Execute(ctx, "javascript", code, "")
	require.NoError(t, err)
	second, err := svc.Execute(ctx, "javascript", code, "")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, metrics.calls)

	// A different input is a distinct cache entry.
	_, err = svc.Execute(ctx, "javascript", code, "42")
	require.NoError(t, err)
	require.Equal(t, 2, metrics.calls)
}

func TestExecuteUnknownCategoryFallsBackToGenericTrace(t *testing.T) {
	svc := newTestService(nil)
	r, err := svc.Execute(context.Background(), "javascript", "let x = 1\nlet y = 2", "")
	require.NoError(t, err)
	require.Equal(t, trace.CategoryUnknown, r.Category)
	require.Len(t, r.Steps, 2)
	for _, s := range r.Steps {
		require.Equal(t, trace.ActionExecute, s.Action)
	}
}
