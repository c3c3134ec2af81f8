package ports_test

import (
	"context"
	"sort"
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/ports"
)

// MockStore is a map-backed ProjectStore for checking the contract itself.
type MockStore struct {
	data map[string]*domain.Project
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string]*domain.Project)}
}

func (m *MockStore) Save(_ context.Context, key string, p *domain.Project) error {
	m.data[key] = p.Clone()
	return nil
}

func (m *MockStore) Load(_ context.Context, key string) (*domain.Project, error) {
	p, ok := m.data[key]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return p.Clone(), nil
}

func (m *MockStore) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockStore) List(context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func TestProjectStore_Contract(t *testing.T) {
	ports.RunProjectStoreContract(t, NewMockStore())
}
