package store

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/agenthands/gcsynth/internal/core/model"
	"github.com/agenthands/gcsynth/internal/driver"
)

// GraphStore keeps each network as a :Network node carrying the encoded model,
// with its ports and submodule instantiations as graph structure for querying.
type GraphStore struct {
	Driver   driver.GraphDriver
	Compress bool
	Now      func() time.Time
}

func NewGraphStore(d driver.GraphDriver, compress bool) *GraphStore {
	return &GraphStore{Driver: d, Compress: compress, Now: time.Now}
}

func (s *GraphStore) Exists(ctx context.Context, id string) (bool, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.NetworkExistsQuery, map[string]interface{}{"id": id})
	if err != nil {
		return false, err
	}
	if len(result.Records) == 0 {
		return false, nil
	}
	v, ok := result.Records[0].Get("count")
	if !ok {
		return false, nil
	}
	n, _ := v.(int64)
	return n > 0, nil
}

func (s *GraphStore) Load(ctx context.Context, id string) (*model.ReactionNetworkModel, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.LoadNetworkQuery, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	rec := result.Records[0]
	encV, _ := rec.Get("encoding")
	payloadV, _ := rec.Get("payload")
	encoding, _ := encV.(string)
	text, _ := payloadV.(string)

	payload, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload of %s: %w", id, err)
	}
	return decode(encoding, payload)
}

func (s *GraphStore) Save(ctx context.Context, m *model.ReactionNetworkModel) error {
	encoding, payload, err := encode(m, s.Compress)
	if err != nil {
		return err
	}

	params := map[string]interface{}{
		"id":             m.ID,
		"name":           m.Name,
		"encoding":       encoding,
		"payload":        base64.StdEncoding.EncodeToString(payload),
		"species_count":  len(m.Species),
		"reaction_count": len(m.Reactions),
		"saved_at":       s.Now().UTC().Format(time.RFC3339),
	}
	if _, err := s.Driver.ExecuteQuery(ctx, driver.SaveNetworkQuery, params); err != nil {
		return fmt.Errorf("failed to save network %s: %w", m.ID, err)
	}

	if _, err := s.Driver.ExecuteQuery(ctx, driver.ClearNetworkPortsQuery, map[string]interface{}{"id": m.ID}); err != nil {
		return fmt.Errorf("failed to clear ports of %s: %w", m.ID, err)
	}
	for _, p := range m.Ports {
		portParams := map[string]interface{}{
			"network_id": m.ID,
			"id":         p.ID,
			"species":    p.Species,
			"direction":  string(p.Direction),
		}
		if _, err := s.Driver.ExecuteQuery(ctx, driver.SaveNetworkPortQuery, portParams); err != nil {
			return fmt.Errorf("failed to save port %s of %s: %w", p.ID, m.ID, err)
		}
	}

	for _, sm := range m.Submodels {
		edgeParams := map[string]interface{}{
			"parent_id": m.ID,
			"child_id":  sm.ModelRef,
			"instance":  sm.ID,
		}
		if _, err := s.Driver.ExecuteQuery(ctx, driver.SaveSubmodelEdgeQuery, edgeParams); err != nil {
			return fmt.Errorf("failed to link submodel %s of %s: %w", sm.ID, m.ID, err)
		}
	}
	return nil
}

func (s *GraphStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Driver.ExecuteQuery(ctx, driver.DeleteNetworkQuery, map[string]interface{}{"id": id}); err != nil {
		return fmt.Errorf("failed to delete network %s: %w", id, err)
	}
	return nil
}
