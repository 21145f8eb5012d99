package project

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
CREATE TABLE IF NOT EXISTS projects (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL DEFAULT '',
  name TEXT NOT NULL DEFAULT 'Project',
  code TEXT NOT NULL DEFAULT '',
  language TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT 'unknown',
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_projects_user_id ON projects (user_id);`)
	})
	return s.schemaErr
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (entity.Project, error) {
	var p entity.Project
	var category string
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Code, &p.Language, &category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return entity.Project{}, err
	}
	p.Category = trace.Category(category)
	return p, nil
}

const projectColumns = `id, user_id, name, code, language, category, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, p entity.Project) (entity.Project, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.Project{}, err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO projects (id, user_id, name, code, language, category, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
  user_id=EXCLUDED.user_id,
  name=EXCLUDED.name,
  code=EXCLUDED.code,
  language=EXCLUDED.language,
  category=EXCLUDED.category,
  updated_at=EXCLUDED.updated_at`,
		strings.TrimSpace(p.ID), p.UserID, p.Name, p.Code, p.Language, string(p.Category), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return entity.Project{}, err
	}
	return p, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (entity.Project, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.Project{}, err
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, strings.TrimSpace(id))
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Project{}, ErrNotFound
	}
	return p, err
}

func (s *PostgresStore) List(ctx context.Context) ([]entity.Project, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]entity.Project, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE user_id = $1 ORDER BY id`,
		strings.TrimSpace(userID))
}

func (s *PostgresStore) queryProjects(ctx context.Context, query string, args ...any) ([]entity.Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entity.Project, 0, 32)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, p entity.Project) (entity.Project, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.Project{}, err
	}
	res, err := s.db.ExecContext(ctx, `
UPDATE projects
SET user_id=$2, name=$3, code=$4, language=$5, category=$6, updated_at=$7
WHERE id=$1`,
		strings.TrimSpace(p.ID), p.UserID, p.Name, p.Code, p.Language, string(p.Category), p.UpdatedAt)
	if err != nil {
		return entity.Project{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.Project{}, ErrNotFound
	}
	return p, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id=$1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
