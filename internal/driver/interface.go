package driver

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// GraphDriver is the Cypher connection the graph network store writes through.
type GraphDriver interface {
	// ExecuteQuery runs one Cypher statement from queries.go and returns every
	// record eagerly; network payloads are small enough to buffer.
	ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error)
	// BuildIndices creates the :Network and :Port lookups used by Exists and Save.
	BuildIndices(ctx context.Context) error
	Close(ctx context.Context) error
}
