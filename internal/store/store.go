// Package store provides persistence for projects and the land bank. The
// Postgres implementation is the primary backend; the in-memory
// implementation is used when no database is configured or reachable.
package store

import (
	"context"
	"errors"

	"github.com/calcconstru/calcconstru/internal/project"
)

// ErrNotFound is returned when a delete or lookup targets an id that does
// not exist in the store.
var ErrNotFound = errors.New("store: record not found")

// Store is the persistence gateway for saved feasibility studies and the
// land bank.
type Store interface {
	SaveProject(ctx context.Context, p *project.Project) error
	ListProjects(ctx context.Context) ([]project.Project, error)
	DeleteProject(ctx context.Context, id string) error

	SaveLand(ctx context.Context, l *project.Land) error
	ListLands(ctx context.Context) ([]project.Land, error)
	DeleteLand(ctx context.Context, id string) error

	Ping(ctx context.Context) error
	Close()
}
