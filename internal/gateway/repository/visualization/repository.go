package visualization

import (
	"context"
	"errors"

	"algolens/internal/gateway/entity"
)

// Store defines persistence for visualization metadata rows. Step payloads
// are kept separately in the stepblob store.
type Store interface {
	Create(ctx context.Context, v entity.Visualization) (entity.Visualization, error)
	Get(ctx context.Context, id string) (entity.Visualization, error)
	ListByProject(ctx context.Context, projectID string) ([]entity.Visualization, error)
	Update(ctx context.Context, v entity.Visualization) (entity.Visualization, error)
	Delete(ctx context.Context, id string) error
}

var ErrNotFound = errors.New("visualization not found")
