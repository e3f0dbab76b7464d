package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/agenthands/gcsynth/internal/core/model"
)

const (
	createNetworksTable = `CREATE TABLE IF NOT EXISTS networks (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	encoding TEXT NOT NULL,
	payload BYTEA NOT NULL,
	saved_at TIMESTAMPTZ NOT NULL
)`

	existsNetworkSQL = `SELECT EXISTS(SELECT 1 FROM networks WHERE id = $1)`

	loadNetworkSQL = `SELECT encoding, payload FROM networks WHERE id = $1`

	deleteNetworkSQL = `DELETE FROM networks WHERE id = $1`

	saveNetworkSQL = `INSERT INTO networks (id, name, encoding, payload, saved_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, encoding = EXCLUDED.encoding,
	payload = EXCLUDED.payload, saved_at = EXCLUDED.saved_at`
)

type networkRow struct {
	Encoding string `db:"encoding"`
	Payload  []byte `db:"payload"`
}

// SQLStore keeps networks in a Postgres table.
type SQLStore struct {
	DB       *sqlx.DB
	Compress bool
	Now      func() time.Time
}

// OpenSQLStore connects with the postgres driver and ensures the table exists.
func OpenSQLStore(ctx context.Context, dsn string, compress bool) (*SQLStore, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	s := NewSQLStore(db, compress)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func NewSQLStore(db *sqlx.DB, compress bool) *SQLStore {
	return &SQLStore{DB: db, Compress: compress, Now: time.Now}
}

func (s *SQLStore) Migrate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, createNetworksTable); err != nil {
		return fmt.Errorf("failed to create networks table: %w", err)
	}
	return nil
}

func (s *SQLStore) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := s.DB.GetContext(ctx, &exists, existsNetworkSQL, id); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQLStore) Load(ctx context.Context, id string) (*model.ReactionNetworkModel, error) {
	var row networkRow
	if err := s.DB.GetContext(ctx, &row, loadNetworkSQL, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return decode(row.Encoding, row.Payload)
}

func (s *SQLStore) Save(ctx context.Context, m *model.ReactionNetworkModel) error {
	encoding, payload, err := encode(m, s.Compress)
	if err != nil {
		return err
	}
	if _, err := s.DB.ExecContext(ctx, saveNetworkSQL, m.ID, m.Name, encoding, payload, s.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save network %s: %w", m.ID, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	if _, err := s.DB.ExecContext(ctx, deleteNetworkSQL, id); err != nil {
		return fmt.Errorf("failed to delete network %s: %w", id, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.DB.Close()
}
