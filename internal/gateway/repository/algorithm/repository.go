package algorithm

import (
	"context"
	"errors"

	"algolens/internal/gateway/entity"
)

// Store defines persistence for reference algorithm implementations.
type Store interface {
	Create(ctx context.Context, a entity.Algorithm) (entity.Algorithm, error)
	Get(ctx context.Context, id string) (entity.Algorithm, error)
	// List filters by category and/or language; empty strings match all.
	List(ctx context.Context, category, language string) ([]entity.Algorithm, error)
	Update(ctx context.Context, a entity.Algorithm) (entity.Algorithm, error)
	Delete(ctx context.Context, id string) error
}

var ErrNotFound = errors.New("algorithm not found")
