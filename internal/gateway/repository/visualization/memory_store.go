package visualization

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
	byID map[string]entity.Visualization
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]entity.Visualization)}
}

func (s *MemoryStore) Create(_ context.Context, v entity.Visualization) (entity.Visualization, error) {
	if s == nil {
		return entity.Visualization{}, fmt.Errorf("store is nil")
	}
	id := strings.TrimSpace(v.ID)
	if id == "" {
		return entity.Visualization{}, fmt.Errorf("visualization id is required")
	}
	v.ID = id
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[id] = v
	return v, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (entity.Visualization, error) {
	if s == nil {
		return entity.Visualization{}, fmt.Errorf("store is nil")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return entity.Visualization{}, ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) ListByProject(_ context.Context, projectID string) ([]entity.Visualization, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	pid := strings.TrimSpace(projectID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Visualization, 0, 8)
	for _, v := range s.byID {
		if v.ProjectID == pid {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, v entity.Visualization) (entity.Visualization, error) {
	if s == nil {
		return entity.Visualization{}, fmt.Errorf("store is nil")
	}
	id := strings.TrimSpace(v.ID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return entity.Visualization{}, ErrNotFound
	}
	v.ID = id
	s.byID[id] = v
	return v, nil
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
