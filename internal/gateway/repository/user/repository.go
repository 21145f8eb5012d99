package user

import (
	"context"
	"errors"

	"algolens/internal/gateway/entity"
)

// Store defines persistence for users.
type Store interface {
	Create(ctx context.Context, u entity.User) (entity.User, error)
	Get(ctx context.Context, id string) (entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, u entity.User) (entity.User, error)
	Delete(ctx context.Context, id string) error
}

var ErrNotFound = errors.New("user not found")
