package visualization

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
CREATE TABLE IF NOT EXISTS visualizations (
  id TEXT PRIMARY KEY,
  project_id TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT 'unknown',
  step_count INTEGER NOT NULL DEFAULT 0,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_visualizations_project_id ON visualizations (project_id);`)
	})
	return s.schemaErr
}

const vizColumns = `id, project_id, category, step_count, created_at, updated_at`

func scanVisualization(row interface{ Scan(dest ...any) error }) (entity.Visualization, error) {
	var v entity.Visualization
	var category string
	err := row.Scan(&v.ID, &v.ProjectID, &category, &v.StepCount, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return entity.Visualization{}, err
	}
	v.Category = trace.Category(category)
	return v, nil
}

func (s *PostgresStore) Create(ctx context.Context, v entity.Visualization) (entity.Visualization, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.Visualization{}, err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO visualizations (id, project_id, category, step_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
  category=EXCLUDED.category,
  step_count=EXCLUDED.step_count,
  updated_at=EXCLUDED.updated_at`,
		strings.TrimSpace(v.ID), v.ProjectID, string(v.Category), v.StepCount, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return entity.Visualization{}, err
	}
	return v, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (entity.Visualization, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.Visualization{}, err
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT `+vizColumns+` FROM visualizations WHERE id = $1`, strings.TrimSpace(id))
	v, err := scanVisualization(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Visualization{}, ErrNotFound
	}
	return v, err
}

func (s *PostgresStore) ListByProject(ctx context.Context, projectID string) ([]entity.Visualization, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+vizColumns+` FROM visualizations WHERE project_id = $1 ORDER BY id`,
		strings.TrimSpace(projectID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entity.Visualization, 0, 8)
	for rows.Next() {
		v, err := scanVisualization(rows)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, v entity.Visualization) (entity.Visualization, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.Visualization{}, err
	}
	res, err := s.db.ExecContext(ctx, `
UPDATE visualizations
SET project_id=$2, category=$3, step_count=$4, updated_at=$5
WHERE id=$1`,
		strings.TrimSpace(v.ID), v.ProjectID, string(v.Category), v.StepCount, v.UpdatedAt)
	if err != nil {
		return entity.Visualization{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.Visualization{}, ErrNotFound
	}
	return v, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM visualizations WHERE id=$1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
