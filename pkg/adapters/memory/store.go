package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/computor/pkg/domain"
)

// Store implements ports.ReportCache in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Report
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Report),
	}
}

// Save keeps a copy of the report so later mutations by the caller do not leak in.
func (s *Store) Save(ctx context.Context, key string, report *domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = report.Clone()
	return nil
}

// Load retrieves a copy of the report from memory.
func (s *Store) Load(ctx context.Context, key string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.data[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return report.Clone(), nil
}

// Delete removes the report.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the stored keys in sorted order.
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
