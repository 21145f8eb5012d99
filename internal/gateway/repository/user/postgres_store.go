package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"

	"algolens/internal/gateway/entity"

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
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);`)
	})
	return s.schemaErr
}

func (s *PostgresStore) Create(ctx context.Context, u entity.User) (entity.User, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.User{}, err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO users (id, name, email, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, email=EXCLUDED.email`,
		strings.TrimSpace(u.ID), u.Name, u.Email, u.CreatedAt)
	if err != nil {
		return entity.User{}, err
	}
	return u, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (entity.User, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.User{}, err
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, created_at FROM users WHERE id = $1`,
		strings.TrimSpace(id))
	var u entity.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, ErrNotFound
		}
		return entity.User{}, err
	}
	return u, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]entity.User, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entity.User, 0, 32)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
			continue
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, u entity.User) (entity.User, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.User{}, err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET name=$2, email=$3 WHERE id=$1`,
		strings.TrimSpace(u.ID), u.Name, u.Email)
	if err != nil {
		return entity.User{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.User{}, ErrNotFound
	}
	return u, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
