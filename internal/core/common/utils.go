package common

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/agenthands/gcsynth/internal/core/model"
)

// JoinIDs sorts a copy of ids and joins them with "_" so the result does not
// depend on declaration order.
func JoinIDs(ids []string) string {
	return strings.Join(SortedCopy(ids), "_")
}

func SortedCopy(ids []string) []string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return sorted
}

// PortID names the port exposing a species in the given direction.
func PortID(dir model.Direction, speciesID string) string {
	return fmt.Sprintf("%s__%s", dir, speciesID)
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Chain renders a module chain as "a -> b -> c".
func Chain(ids []string) string {
	return strings.Join(ids, " -> ")
}

// ParseJSON unmarshals a JSON payload into a type T.
func ParseJSON[T any](data []byte) (T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}
