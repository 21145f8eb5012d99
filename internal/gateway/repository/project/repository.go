package project

import (
	"context"
	"errors"

	"algolens/internal/gateway/entity"
)

// Store defines persistence for saved code submissions.
type Store interface {
	Create(ctx context.Context, p entity.Project) (entity.Project, error)
	Get(ctx context.Context, id string) (entity.Project, error)
	List(ctx context.Context) ([]entity.Project, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Project, error)
	Update(ctx context.Context, p entity.Project) (entity.Project, error)
	Delete(ctx context.Context, id string) error
}

var ErrNotFound = errors.New("project not found")
