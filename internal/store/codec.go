package store

import (
	"encoding/json"
	"fmt"

	"github.com/golang/snappy"

	"github.com/agenthands/gcsynth/internal/core/model"
)

const (
	EncodingJSON       = "json"
	EncodingJSONSnappy = "json+snappy"
)

func encode(m *model.ReactionNetworkModel, compress bool) (string, []byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal network %s: %w", m.ID, err)
	}
	if !compress {
		return EncodingJSON, data, nil
	}
	return EncodingJSONSnappy, snappy.Encode(nil, data), nil
}

func decode(encoding string, payload []byte) (*model.ReactionNetworkModel, error) {
	data := payload
	switch encoding {
	case EncodingJSON:
	case EncodingJSONSnappy:
		var err error
		data, err = snappy.Decode(nil, payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress network: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported network encoding %q", encoding)
	}

	var m model.ReactionNetworkModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal network: %w", err)
	}
	return &m, nil
}

// clone deep-copies a network so stored values never alias caller state.
func clone(m *model.ReactionNetworkModel) (*model.ReactionNetworkModel, error) {
	enc, data, err := encode(m, false)
	if err != nil {
		return nil, err
	}
	return decode(enc, data)
}
