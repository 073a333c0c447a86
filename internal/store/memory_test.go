package store

import (
	"context"
	"testing"

	"github.com/calcconstru/calcconstru/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	p := project.NewProject()
	require.NoError(t, m.SaveProject(ctx, &p))
	assert.NotEmpty(t, p.ID, "SaveProject should assign an id")
	assert.NotEmpty(t, p.CreatedAt, "SaveProject should stamp creation time")

	projects, err := m.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, p.Name, projects[0].Name)

	// Re-saving with the same id updates in place.
	p.Name = "Residencial Atualizado"
	require.NoError(t, m.SaveProject(ctx, &p))
	projects, err = m.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Residencial Atualizado", projects[0].Name)

	require.NoError(t, m.DeleteProject(ctx, p.ID))
	projects, err = m.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestMemoryDeleteMissing(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	assert.ErrorIs(t, m.DeleteProject(ctx, "nope"), ErrNotFound)
	assert.ErrorIs(t, m.DeleteLand(ctx, "nope"), ErrNotFound)
}

func TestMemoryLandLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first := project.Land{Description: "Lote A", Area: 500, Price: 900000, Status: project.LandStatusAnalysis, CreatedAt: "2026-01-01T00:00:00Z"}
	second := project.Land{Description: "Lote B", Area: 700, Price: 1500000, Status: project.LandStatusNegotiation, CreatedAt: "2026-02-01T00:00:00Z"}
	require.NoError(t, m.SaveLand(ctx, &first))
	require.NoError(t, m.SaveLand(ctx, &second))

	lands, err := m.ListLands(ctx)
	require.NoError(t, err)
	require.Len(t, lands, 2)
	assert.Equal(t, "Lote B", lands[0].Description, "newest entry should come first")

	require.NoError(t, m.DeleteLand(ctx, first.ID))
	lands, err = m.ListLands(ctx)
	require.NoError(t, err)
	require.Len(t, lands, 1)
}

func TestMemorySaveKeepsExistingIdentity(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	p := project.NewProject()
	p.ID = "fixed-id"
	p.CreatedAt = "2026-03-01T00:00:00Z"
	require.NoError(t, m.SaveProject(ctx, &p))

	assert.Equal(t, "fixed-id", p.ID)
	assert.Equal(t, "2026-03-01T00:00:00Z", p.CreatedAt)
}
