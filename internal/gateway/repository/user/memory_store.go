package user

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"algolens/internal/gateway/entity"
)

type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]entity.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]entity.User)}
}

func (s *MemoryStore) Create(_ context.Context, u entity.User) (entity.User, error) {
	if s == nil {
		return entity.User{}, fmt.Errorf("store is nil")
	}
	id := strings.TrimSpace(u.ID)
	if id == "" {
		return entity.User{}, fmt.Errorf("user id is required")
	}
	u.ID = id
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[id] = u
	return u, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (entity.User, error) {
	if s == nil {
		return entity.User{}, fmt.Errorf("store is nil")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return entity.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) List(_ context.Context) ([]entity.User, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.User, 0, len(s.byID))
	for _, u := range s.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, u entity.User) (entity.User, error) {
	if s == nil {
		return entity.User{}, fmt.Errorf("store is nil")
	}
	id := strings.TrimSpace(u.ID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return entity.User{}, ErrNotFound
	}
	u.ID = id
	s.byID[id] = u
	return u, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	if s == nil {
		return fmt.Errorf("store is nil")
	}
	id = strings.TrimSpace(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	return nil
}
