package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycal/internal/app/view"
)

func TestPropertyRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPropertyRepository()

	require.NoError(t, repo.Register(ctx, view.Property{ID: "p2", Name: "Maple Street Loft"}))
	require.NoError(t, repo.Register(ctx, view.Property{ID: "p1", Name: "Harbor View Apartment"}))

	assert.ErrorIs(t, repo.Register(ctx, view.Property{ID: "p1", Name: "Duplicate"}), ErrPropertyExists)

	got, err := repo.ByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Harbor View Apartment", got.Name)

	_, err = repo.ByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Harbor View Apartment", list[0].Name, "sorted by name")
	assert.Equal(t, "Maple Street Loft", list[1].Name)
}

func TestPropertyRepositorySaveUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewPropertyRepository()

	require.NoError(t, repo.Save(ctx, view.Property{ID: "p1", Name: "Old Name"}))
	require.NoError(t, repo.Save(ctx, view.Property{ID: "p1", Name: "New Name"}))

	got, err := repo.ByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)

	assert.Error(t, repo.Save(ctx, view.Property{ID: "  "}))
}
