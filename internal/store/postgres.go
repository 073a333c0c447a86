package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/calcconstru/calcconstru/internal/project"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS lands (
	id         UUID PRIMARY KEY,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Postgres stores projects and lands as JSONB payloads. The full record
// round-trips through the gateway, so schema evolution on the project shape
// needs no migrations.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgres connects a pool, verifies it, and bootstraps the schema.
func NewPostgres(ctx context.Context, dsn string, logger *zap.Logger) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MaxConnLifetime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	logger.Info("database connection pool established",
		zap.String("op", "store.NewPostgres"),
	)
	return &Postgres{pool: pool, logger: logger}, nil
}

// SaveProject upserts a project, assigning an id and creation stamp on
// first save.
func (s *Postgres) SaveProject(ctx context.Context, p *project.Project) error {
	assignIdentity(&p.ID, &p.CreatedAt)

	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	query := `
		INSERT INTO projects (id, name, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = $2, payload = $3, updated_at = now()
	`
	if _, err := s.pool.Exec(ctx, query, p.ID, p.Name, payload); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	s.logger.Debug("project saved",
		zap.String("op", "store.Postgres.SaveProject"),
		zap.String("id", p.ID),
	)
	return nil
}

// ListProjects returns all saved projects, most recently created first.
func (s *Postgres) ListProjects(ctx context.Context) ([]project.Project, error) {
	rows, err := s.pool.Query(ctx, `SELECT payload FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		var p project.Project
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("failed to decode project payload: %w", err)
		}
		p.Normalize()
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// DeleteProject removes a project by id.
func (s *Postgres) DeleteProject(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveLand upserts a landbank entry.
func (s *Postgres) SaveLand(ctx context.Context, l *project.Land) error {
	assignIdentity(&l.ID, &l.CreatedAt)

	payload, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to encode land: %w", err)
	}

	query := `
		INSERT INTO lands (id, payload)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET payload = $2, updated_at = now()
	`
	if _, err := s.pool.Exec(ctx, query, l.ID, payload); err != nil {
		return fmt.Errorf("failed to save land: %w", err)
	}
	return nil
}

// ListLands returns all landbank entries, most recently created first.
func (s *Postgres) ListLands(ctx context.Context) ([]project.Land, error) {
	rows, err := s.pool.Query(ctx, `SELECT payload FROM lands ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list lands: %w", err)
	}
	defer rows.Close()

	lands := []project.Land{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan land row: %w", err)
		}
		var l project.Land
		if err := json.Unmarshal(payload, &l); err != nil {
			return nil, fmt.Errorf("failed to decode land payload: %w", err)
		}
		lands = append(lands, l)
	}
	return lands, rows.Err()
}

// DeleteLand removes a landbank entry by id.
func (s *Postgres) DeleteLand(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM lands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete land: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping verifies database connectivity.
func (s *Postgres) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the connection pool.
func (s *Postgres) Close() {
	s.pool.Close()
}

// assignIdentity fills the id and creation stamp on first save so records
// created by the API and records imported from files behave the same.
func assignIdentity(id, createdAt *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if *createdAt == "" {
		*createdAt = time.Now().UTC().Format(time.RFC3339)
	}
}
