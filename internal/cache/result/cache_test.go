package result

import (
	"testing"
	"time"

	"algolens/internal/trace"
)

func TestKeySeparatesLanguages(t *testing.T) {
	if Key("python", "code") == Key("javascript", "code") {
		t.Fatalf("keys collide across languages")
	}
	if Key("python", "a") == Key("python", "b") {
		t.Fatalf("keys collide across code")
	}
	if Key("python", "code") != Key("python", "code") {
		t.Fatalf("key not stable")
	}
}

func TestDetectionRoundTrip(t *testing.T) {
	c := New(DefaultConfig())
	k := Key("javascript", "sort(arr)")

	if _, ok := c.GetDetection(k); ok {
		t.Fatalf("unexpected hit on empty cache")
	}
	want := trace.DetectionResult{Category: trace.CategorySorting, Confidence: 0.6}
	c.PutDetection(k, want)
	got, ok := c.GetDetection(k)
	if !ok || got.Category != want.Category || got.Confidence != want.Confidence {
		t.Fatalf("GetDetection = %+v/%v", got, ok)
	}
}

func TestTraceExpires(t *testing.T) {
	c := New(Config{MaxEntries: 8, TTL: 20 * time.Millisecond})
	k := Key("python", "q.enqueue(1)")
	c.PutTrace(k, trace.TraceResult{Success: true, Category: trace.CategoryQueue})

	if _, ok := c.GetTrace(k); !ok {
		t.Fatalf("miss before TTL")
	}
	time.Sleep(40 * time.Millisecond)
	if _, ok := c.GetTrace(k); ok {
		t.Fatalf("hit after TTL")
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var c *Cache
	c.PutDetection("k", trace.DetectionResult{})
	if _, ok := c.GetDetection("k"); ok {
		t.Fatalf("nil cache returned a hit")
	}
}
