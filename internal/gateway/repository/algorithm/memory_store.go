package algorithm

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
	byID map[string]entity.Algorithm
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]entity.Algorithm)}
}

func (s *MemoryStore) Create(_ context.Context, a entity.Algorithm) (entity.Algorithm, error) {
	if s == nil {
		return entity.Algorithm{}, fmt.Errorf("store is nil")
	}
	id := strings.TrimSpace(a.ID)
	if id == "" {
		return entity.Algorithm{}, fmt.Errorf("algorithm id is required")
	}
	a.ID = id
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[id] = a
	return a, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (entity.Algorithm, error) {
	if s == nil {
		return entity.Algorithm{}, fmt.Errorf("store is nil")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return entity.Algorithm{}, ErrNotFound
	}
	return a, nil
}

func (s *MemoryStore) List(_ context.Context, category, language string) ([]entity.Algorithm, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	category = strings.TrimSpace(category)
	language = strings.TrimSpace(language)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Algorithm, 0, len(s.byID))
	for _, a := range s.byID {
		if category != "" && string(a.Category) != category {
			continue
		}
		if language != "" && !strings.EqualFold(a.Language, language) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, a entity.Algorithm) (entity.Algorithm, error) {
	if s == nil {
		return entity.Algorithm{}, fmt.Errorf("store is nil")
	}
	id := strings.TrimSpace(a.ID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return entity.Algorithm{}, ErrNotFound
	}
	a.ID = id
	s.byID[id] = a
	return a, nil
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
