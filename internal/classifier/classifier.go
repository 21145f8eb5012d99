// Package classifier guesses which algorithm class a piece of submitted
// source code implements. It scans for category keywords and regex
// signatures; it never parses or executes the code.
package classifier

import (
	"fmt"
	"strings"

	"algolens/internal/trace"
)

const (
	keywordWeight = 1
	patternWeight = 2

	// unknownConfidence is reported whenever no category scores above zero.
	unknownConfidence = 0.1
)

// Config holds the classifier tuning values. ConfidenceScale converts a raw
// keyword/pattern score into the reported confidence; the historical client
// and server implementations disagreed on it (0.2 vs 0.3), so it is an
// explicit policy value rather than a buried constant.
type Config struct {
	ConfidenceScale float64
}

// DefaultConfig uses the 0.2 scale: a single keyword hit stays visibly
// low-confidence.
func DefaultConfig() Config {
	return Config{ConfidenceScale: 0.2}
}

type Classifier struct {
	cfg Config
}

func New(cfg Config) *Classifier {
	if cfg.ConfidenceScale <= 0 {
		cfg.ConfidenceScale = DefaultConfig().ConfidenceScale
	}
	return &Classifier{cfg: cfg}
}

// Classify scores the source text against every category signature and
// returns the best match. It is pure and never fails: when nothing matches
// it reports the unknown category with a fixed low confidence. The language
// tag carried alongside submissions is informational only and plays no part
// here.
func (c *Classifier) Classify(source string) trace.DetectionResult {
	lower := strings.ToLower(source)

	best := trace.DetectionResult{Category: trace.CategoryUnknown}
	bestScore := 0
	for _, sig := range signatures {
		score, matches := scoreSignature(lower, sig)
		if score > bestScore {
			bestScore = score
			best = trace.DetectionResult{
				Category: sig.category,
				Matches:  matches,
			}
		}
	}

	if bestScore == 0 {
		return trace.DetectionResult{
			Category:   trace.CategoryUnknown,
			Confidence: unknownConfidence,
			Details:    "no recognizable algorithm signals in source",
		}
	}

	confidence := float64(bestScore) * c.cfg.ConfidenceScale
	if confidence > 1.0 {
		confidence = 1.0
	}
	best.Confidence = confidence
	best.Details = fmt.Sprintf("matched %d %s signal(s): %s",
		len(best.Matches), best.Category, strings.Join(best.Matches, ", "))
	return best
}

func scoreSignature(lower string, sig signature) (int, []string) {
	score := 0
	var matches []string
	for _, kw := range sig.keywords {
		n := strings.Count(lower, kw)
		if n == 0 {
			continue
		}
		score += n * keywordWeight
		matches = append(matches, kw)
	}
	for _, re := range sig.patterns {
		n := len(re.FindAllStringIndex(lower, -1))
		if n == 0 {
			continue
		}
		score += n * patternWeight
		matches = append(matches, re.String())
	}
	return score, matches
}
