package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// PGStore keeps slots in a single key/value table in PostgreSQL, for shops
// that already run a database and want their inventory in the same backup
// routine. The data model stays a handful of JSON documents; nothing is
// relational.
type PGStore struct {
	conn *pgx.Conn
}

// NewPGStore connects with the given DSN and creates the slots table if it
// does not exist yet.
func NewPGStore(ctx context.Context, dsn string) (*PGStore, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres: %w", err)
	}

	sql := `
		CREATE TABLE IF NOT EXISTS slots (
			key   TEXT PRIMARY KEY,
			value JSONB NOT NULL
		)
	`
	if _, err := conn.Exec(ctx, sql); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("cannot create slots table: %w", err)
	}
	return &PGStore{conn: conn}, nil
}

func (s *PGStore) Load(key string, v any) error {
	ctx := context.Background()
	var data []byte
	err := s.conn.QueryRow(ctx, `SELECT value FROM slots WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("cannot read slot %q: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cannot parse slot %q: %w", key, err)
	}
	return nil
}

func (s *PGStore) Save(key string, v any) error {
	ctx := context.Background()
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot marshal slot %q: %w", key, err)
	}
	sql := `
		INSERT INTO slots (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := s.conn.Exec(ctx, sql, key, data); err != nil {
		return fmt.Errorf("cannot write slot %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *PGStore) Close(ctx context.Context) error { return s.conn.Close(ctx) }
