package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
)

// Store implements ports.ProjectStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Project
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Project),
	}
}

// Save keeps a deep copy of the project.
func (s *Store) Save(ctx context.Context, key string, project *domain.Project) error {
	cp := project.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = cp
	return nil
}

// Load retrieves a copy of the project so callers cannot reach the stored one.
func (s *Store) Load(ctx context.Context, key string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.data[key]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return project.Clone(), nil
}

// Delete removes the project.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the stored keys in order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
