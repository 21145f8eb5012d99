package algorithm

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"

	"algolens/internal/gateway/entity"
	"algolens/internal/trace"

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
CREATE TABLE IF NOT EXISTS algorithms (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT 'unknown',
  language TEXT NOT NULL DEFAULT '',
  code TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  seeded BOOLEAN NOT NULL DEFAULT FALSE,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_algorithms_category ON algorithms (category);`)
	})
	return s.schemaErr
}

const algorithmColumns = `id, name, category, language, code, description, seeded, created_at`

func scanAlgorithm(row interface{ Scan(dest ...any) error }) (entity.Algorithm, error) {
	var a entity.Algorithm
	var category string
	err := row.Scan(&a.ID, &a.Name, &category, &a.Language, &a.Code, &a.Description, &a.Seeded, &a.CreatedAt)
	if err != nil {
		return entity.Algorithm{}, err
	}
	a.Category = trace.Category(category)
	return a, nil
}

func (s *PostgresStore) Create(ctx context.Context, a entity.Algorithm) (entity.Algorithm, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.Algorithm{}, err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO algorithms (id, name, category, language, code, description, seeded, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
  name=EXCLUDED.name,
  category=EXCLUDED.category,
  language=EXCLUDED.language,
  code=EXCLUDED.code,
  description=EXCLUDED.description`,
		strings.TrimSpace(a.ID), a.Name, string(a.Category), a.Language, a.Code, a.Description, a.Seeded, a.CreatedAt)
	if err != nil {
		return entity.Algorithm{}, err
	}
	return a, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (entity.Algorithm, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.Algorithm{}, err
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT `+algorithmColumns+` FROM algorithms WHERE id = $1`, strings.TrimSpace(id))
	a, err := scanAlgorithm(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Algorithm{}, ErrNotFound
	}
	return a, err
}

func (s *PostgresStore) List(ctx context.Context, category, language string) ([]entity.Algorithm, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	query := `SELECT ` + algorithmColumns + ` FROM algorithms WHERE 1=1`
	var args []any
	if c := strings.TrimSpace(category); c != "" {
		args = append(args, c)
		query += ` AND category = $1`
	}
	if l := strings.TrimSpace(language); l != "" {
		args = append(args, l)
		if len(args) == 1 {
			query += ` AND LOWER(language) = LOWER($1)`
		} else {
			query += ` AND LOWER(language) = LOWER($2)`
		}
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entity.Algorithm, 0, 32)
	for rows.Next() {
		a, err := scanAlgorithm(rows)
		if err != nil {
			continue
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, a entity.Algorithm) (entity.Algorithm, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.Algorithm{}, err
	}
	res, err := s.db.ExecContext(ctx, `
UPDATE algorithms
SET name=$2, category=$3, language=$4, code=$5, description=$6
WHERE id=$1`,
		strings.TrimSpace(a.ID), a.Name, string(a.Category), a.Language, a.Code, a.Description)
	if err != nil {
		return entity.Algorithm{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.Algorithm{}, ErrNotFound
	}
	return a, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM algorithms WHERE id=$1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
