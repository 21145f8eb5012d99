package project

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
	byID map[string]entity.Project
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]entity.Project)}
}

func (s *MemoryStore) Create(_ context.Context, p entity.Project) (entity.Project, error) {
	if s == nil {
		return entity.Project{}, fmt.Errorf("store is nil")
	}
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return entity.Project{}, fmt.Errorf("project id is required")
	}
	p.ID = id
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[id] = p
	return p, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (entity.Project, error) {
	if s == nil {
		return entity.Project{}, fmt.Errorf("store is nil")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return entity.Project{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) List(_ context.Context) ([]entity.Project, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Project, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, p)
	}
	sortProjects(out)
	return out, nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]entity.Project, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	uid := strings.TrimSpace(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Project, 0, 8)
	for _, p := range s.byID {
		if p.UserID == uid {
			out = append(out, p)
		}
	}
	sortProjects(out)
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, p entity.Project) (entity.Project, error) {
	if s == nil {
		return entity.Project{}, fmt.Errorf("store is nil")
	}
	id := strings.TrimSpace(p.ID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return entity.Project{}, ErrNotFound
	}
	p.ID = id
	s.byID[id] = p
	return p, nil
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

func sortProjects(list []entity.Project) {
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
}
