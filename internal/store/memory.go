package store

import (
	"context"
	"sort"
	"sync"

	"github.com/calcconstru/calcconstru/internal/project"
)

// Memory is a thread-safe in-memory Store. It backs the service when no
// database is configured and disappears with the process.
type Memory struct {
	mu       sync.RWMutex
	projects map[string]project.Project
	lands    map[string]project.Land
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		projects: map[string]project.Project{},
		lands:    map[string]project.Land{},
	}
}

func (m *Memory) SaveProject(_ context.Context, p *project.Project) error {
	assignIdentity(&p.ID, &p.CreatedAt)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[p.ID] = *p
	return nil
}

func (m *Memory) ListProjects(_ context.Context) ([]project.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	projects := make([]project.Project, 0, len(m.projects))
	for _, p := range m.projects {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].CreatedAt != projects[j].CreatedAt {
			return projects[i].CreatedAt > projects[j].CreatedAt
		}
		return projects[i].ID < projects[j].ID
	})
	return projects, nil
}

func (m *Memory) DeleteProject(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return ErrNotFound
	}
	delete(m.projects, id)
	return nil
}

func (m *Memory) SaveLand(_ context.Context, l *project.Land) error {
	assignIdentity(&l.ID, &l.CreatedAt)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lands[l.ID] = *l
	return nil
}

func (m *Memory) ListLands(_ context.Context) ([]project.Land, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lands := make([]project.Land, 0, len(m.lands))
	for _, l := range m.lands {
		lands = append(lands, l)
	}
	sort.Slice(lands, func(i, j int) bool {
		if lands[i].CreatedAt != lands[j].CreatedAt {
			return lands[i].CreatedAt > lands[j].CreatedAt
		}
		return lands[i].ID < lands[j].ID
	})
	return lands, nil
}

func (m *Memory) DeleteLand(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lands[id]; !ok {
		return ErrNotFound
	}
	delete(m.lands, id)
	return nil
}

// Ping always succeeds for the in-memory store.
func (m *Memory) Ping(_ context.Context) error { return nil }

// Close is a no-op for the in-memory store.
func (m *Memory) Close() {}
