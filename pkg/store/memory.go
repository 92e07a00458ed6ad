package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rickerduniya/Sayanho-sub002/pkg/errors"
)

// MemoryStore keeps designs in a map. It is the default backend for the CLI
// server without a configured database, and for tests.
type MemoryStore struct {
	mu      sync.RWMutex
	designs map[string]Design
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{designs: make(map[string]Design)}
}

func (s *MemoryStore) Create(ctx context.Context, d *Design) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if _, exists := s.designs[d.ID]; exists {
		return errors.New(errors.ErrCodeInvalidInput, "design %s already exists", d.ID)
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	s.designs[d.ID] = *d
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Design, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.designs[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeDesignNotFound, "design %s not found", id)
	}
	return &d, nil
}

func (s *MemoryStore) Update(ctx context.Context, d *Design) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.designs[d.ID]
	if !ok {
		return errors.New(errors.ErrCodeDesignNotFound, "design %s not found", d.ID)
	}
	d.CreatedAt = prev.CreatedAt
	d.UpdatedAt = time.Now().UTC()
	s.designs[d.ID] = *d
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.designs[id]; !ok {
		return errors.New(errors.ErrCodeDesignNotFound, "design %s not found", id)
	}
	delete(s.designs, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Summary, 0, len(s.designs))
	for _, d := range s.designs {
		out = append(out, Summary{ID: d.ID, Name: d.Name, UpdatedAt: d.UpdatedAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
