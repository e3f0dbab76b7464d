package core

import (
	"context"
	"fmt"

	"github.com/agenthands/gcsynth/internal/core/model"
	"github.com/agenthands/gcsynth/internal/store"
)

type MockStore struct {
	Networks map[string]*model.ReactionNetworkModel

	ExistsCalls []string
	LoadCalls   []string
	Saved       []string

	ExistsErr error
	SaveErr   error
}

func NewMockStore() *MockStore {
	return &MockStore{Networks: make(map[string]*model.ReactionNetworkModel)}
}

func (m *MockStore) Exists(ctx context.Context, id string) (bool, error) {
	m.ExistsCalls = append(m.ExistsCalls, id)
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	_, ok := m.Networks[id]
	return ok, nil
}

func (m *MockStore) Load(ctx context.Context, id string) (*model.ReactionNetworkModel, error) {
	m.LoadCalls = append(m.LoadCalls, id)
	n, ok := m.Networks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, id)
	}
	return n, nil
}

func (m *MockStore) Save(ctx context.Context, n *model.ReactionNetworkModel) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = append(m.Saved, n.ID)
	m.Networks[n.ID] = n
	return nil
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	delete(m.Networks, id)
	return nil
}
