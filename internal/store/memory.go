package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/agenthands/gcsynth/internal/core/model"
)

// MemoryStore keeps networks for the lifetime of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	networks map[string]*model.ReactionNetworkModel
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{networks: make(map[string]*model.ReactionNetworkModel)}
}

func (s *MemoryStore) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.networks[id]
	return ok, nil
}

func (s *MemoryStore) Load(ctx context.Context, id string) (*model.ReactionNetworkModel, error) {
	s.mu.RLock()
	m, ok := s.networks[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return clone(m)
}

func (s *MemoryStore) Save(ctx context.Context, m *model.ReactionNetworkModel) error {
	c, err := clone(m)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.networks[m.ID] = c
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.networks, id)
	return nil
}
