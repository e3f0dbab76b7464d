// Package store persists generated reaction networks keyed by the module
// definition they were compiled from. The compiler probes it to decide whether
// a submodule's network can be reused.
package store

import (
	"context"
	"errors"

	"github.com/agenthands/gcsynth/internal/core/model"
)

var ErrNotFound = errors.New("network not found")

// NetworkStore is not safe for concurrent compiles targeting the same backend;
// callers serialize access when several processes share one.
type NetworkStore interface {
	Exists(ctx context.Context, id string) (bool, error)
	// Load returns ErrNotFound when no network is stored under id.
	Load(ctx context.Context, id string) (*model.ReactionNetworkModel, error)
	Save(ctx context.Context, m *model.ReactionNetworkModel) error
	// Delete forgets id so the next compile regenerates it. Deleting a
	// missing id is not an error.
	Delete(ctx context.Context, id string) error
}
