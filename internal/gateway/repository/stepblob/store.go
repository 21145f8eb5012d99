package stepblob

import (
	"context"
	"errors"
)

// Store holds the serialized step payload for a visualization, keyed by the
// visualization ID. Metadata rows live in the visualization store; the blob
// here is the JSON-encoded step slice.
type Store interface {
	Put(ctx context.Context, visualizationID string, content []byte) error
	Get(ctx context.Context, visualizationID string) ([]byte, error)
	Delete(ctx context.Context, visualizationID string) error
}

var ErrNotFound = errors.New("step payload not found")
