package classifier

import (
	"testing"

	"algolens/internal/trace"
)

func TestClassifySortingOnlyKeywords(t *testing.T) {
	src := `
function bubble(arr) {
  // repeatedly swap adjacent out-of-order pairs
  sort(arr)
}`
	got := New(DefaultConfig()).Classify(src)
	if got.Category != trace.CategorySorting {
		t.Fatalf("Classify() category = %s, want sorting", got.Category)
	}
	if got.Confidence <= 0 {
		t.Fatalf("Classify() confidence = %v, want > 0", got.Confidence)
	}
	if len(got.Matches) == 0 {
		t.Fatalf("Classify() matches empty")
	}
}

func TestClassifyZeroScoreIsUnknown(t *testing.T) {
	got := New(DefaultConfig()).Classify("let x = 1 + 2")
	if got.Category != trace.CategoryUnknown {
		t.Fatalf("Classify() category = %s, want unknown", got.Category)
	}
	if got.Confidence != 0.1 {
		t.Fatalf("Classify() confidence = %v, want exactly 0.1", got.Confidence)
	}
}

func TestClassifyTieResolvesToDeclarationOrder(t *testing.T) {
	// "swap" scores sorting +1, "target" scores searching +1; strict >
	// keeps the first-declared winner on an exact tie.
	got := New(DefaultConfig()).Classify("swap target")
	if got.Category != trace.CategorySorting {
		t.Fatalf("Classify() category = %s, want sorting on tie", got.Category)
	}
}

func TestClassifyPatternsOutweighKeywords(t *testing.T) {
	// One searching keyword plus one searching pattern (1 + 2) beats two
	// sorting keyword hits (2).
	src := "find it: while (left <= right) sort pivot"
	got := New(DefaultConfig()).Classify(src)
	if got.Category != trace.CategorySearching {
		t.Fatalf("Classify() category = %s, want searching", got.Category)
	}
}

func TestClassifyConfidenceScaleAndClamp(t *testing.T) {
	c := New(Config{ConfidenceScale: 0.3})
	got := c.Classify("queue")
	if got.Category != trace.CategoryQueue {
		t.Fatalf("Classify() category = %s, want queue", got.Category)
	}
	if got.Confidence != 0.3 {
		t.Fatalf("Classify() confidence = %v, want 0.3", got.Confidence)
	}

	// Heavy keyword repetition clamps at 1.0.
	got = c.Classify("queue queue queue queue queue queue queue")
	if got.Confidence != 1.0 {
		t.Fatalf("Classify() confidence = %v, want clamped 1.0", got.Confidence)
	}
}

func TestClassifyQueueSource(t *testing.T) {
	src := `
q = []
q.enqueue(10)
q.enqueue(20)
q.dequeue()
`
	got := New(DefaultConfig()).Classify(src)
	if got.Category != trace.CategoryQueue {
		t.Fatalf("Classify() category = %s, want queue", got.Category)
	}
}
