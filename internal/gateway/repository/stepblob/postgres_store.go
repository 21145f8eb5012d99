package stepblob

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStore struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("store is nil")
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS visualization_steps (
  visualization_id TEXT PRIMARY KEY,
  payload BYTEA NOT NULL,
  updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);`)
	})
	return s.schemaErr
}

func (s *PostgresStore) Put(ctx context.Context, visualizationID string, content []byte) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	id := strings.TrimSpace(visualizationID)
	if id == "" {
		return errors.New("visualization id is required")
	}
	if content == nil {
		content = []byte{}
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO visualization_steps (visualization_id, payload, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (visualization_id) DO UPDATE SET
  payload=EXCLUDED.payload,
  updated_at=NOW()`, id, content)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, visualizationID string) ([]byte, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM visualization_steps WHERE visualization_id = $1`,
		strings.TrimSpace(visualizationID)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *PostgresStore) Delete(ctx context.Context, visualizationID string) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM visualization_steps WHERE visualization_id = $1`,
		strings.TrimSpace(visualizationID))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
