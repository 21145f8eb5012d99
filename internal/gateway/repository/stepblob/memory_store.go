package stepblob

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Put(_ context.Context, visualizationID string, content []byte) error {
	if s == nil {
		return fmt.Errorf("store is nil")
	}
	id := strings.TrimSpace(visualizationID)
	if id == "" {
		return fmt.Errorf("visualization id is required")
	}
	copied := append([]byte(nil), content...)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[id] = copied
	return nil
}

func (s *MemoryStore) Get(_ context.Context, visualizationID string) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.blobs[strings.TrimSpace(visualizationID)]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), raw...), nil
}

func (s *MemoryStore) Delete(_ context.Context, visualizationID string) error {
	if s == nil {
		return fmt.Errorf("store is nil")
	}
	id := strings.TrimSpace(visualizationID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[id]; !ok {
		return ErrNotFound
	}
	delete(s.blobs, id)
	return nil
}
