package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/agenthands/gcsynth/internal/config"
	"github.com/agenthands/gcsynth/internal/driver"
)

// Open builds the store selected by cfg.Store.Backend. The returned close
// function releases connections; it is never nil. A nil store means reuse and
// persistence are off.
func Open(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (NetworkStore, func() error, error) {
	noop := func() error { return nil }
	log = log.WithField("backend", cfg.Store.Backend)

	switch cfg.Store.Backend {
	case "none":
		log.Info("network store disabled")
		return nil, noop, nil
	case "memory":
		log.Info("using in-memory network store")
		return NewMemoryStore(), noop, nil
	case "file":
		s, err := NewFileStore(cfg.Store.Dir)
		if err != nil {
			return nil, noop, err
		}
		log.WithField("dir", cfg.Store.Dir).Info("using file network store")
		return s, noop, nil
	case "memgraph":
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, log)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to memgraph: %w", err)
		}
		if err := d.BuildIndices(ctx); err != nil {
			d.Close(ctx)
			return nil, noop, err
		}
		return NewGraphStore(d, cfg.Memgraph.Compress), func() error { return d.Close(context.Background()) }, nil
	case "postgres":
		s, err := OpenSQLStore(ctx, cfg.Postgres.DSN, cfg.Postgres.Compress)
		if err != nil {
			return nil, noop, err
		}
		log.Info("using postgres network store")
		return s, s.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
