// Package pipeline runs the detect/execute flow: classify the submitted
// source, fabricate a trace for the detected category, and cache both
// results keyed by the submission.
package pipeline

import (
	"context"
	"errors"
	"strings"

	"algolens/internal/cache/result"
	"algolens/internal/classifier"
	"algolens/internal/trace"
	"algolens/internal/tracegen"

	"go.uber.org/zap"
)

var ErrCodeRequired = errors.New("code is required")

type Service struct {
	classifier *classifier.Classifier
	generator  *tracegen.Generator
	cache      *result.Cache
	logger     *zap.Logger
}

func New(c *classifier.Classifier, g *tracegen.Generator, cache *result.Cache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		classifier: c,
		generator:  g,
		cache:      cache,
		logger:     logger,
	}
}

// Detect classifies the submitted source. Results are cached per
// language+code pair; classification itself is pure, so a hit and a miss
// are indistinguishable to the caller.
func (s *Service) Detect(_ context.Context, language, code string) (trace.DetectionResult, error) {
	if strings.TrimSpace(code) == "" {
		return trace.DetectionResult{}, ErrCodeRequired
	}

	key := result.Key(language, code)
	if d, ok := s.cache.GetDetection(key); ok {
		return d, nil
	}

	d := s.classifier.Classify(code)
	s.logger.Debug("classified submission",
		zap.String("category", string(d.Category)),
		zap.Float64("confidence", d.Confidence))
	s.cache.PutDetection(key, d)
	return d, nil
}

// Execute classifies the source and fabricates a full trace for the
// detected category. The optional input participates in the cache key so
// the same code with a different search target is a distinct entry.
func (s *Service) Execute(ctx context.Context, language, code, input string) (trace.TraceResult, error) {
	if strings.TrimSpace(code) == "" {
		return trace.TraceResult{}, ErrCodeRequired
	}

	key := result.Key(language, code+"\x00"+input)
	if r, ok := s.cache.GetTrace(key); ok {
		return r, nil
	}

	detection, err := s.Detect(ctx, language, code)
	if err != nil {
		return trace.TraceResult{}, err
	}

	r := s.generator.GenerateResult(code, detection.Category, language, input)
	s.logger.Debug("generated trace",
		zap.String("category", string(detection.Category)),
		zap.Int("steps", len(r.Steps)))
	s.cache.PutTrace(key, r)
	return r, nil
}
