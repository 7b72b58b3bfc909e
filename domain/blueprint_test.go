package domain

import (
	"strings"
	"testing"

	"github.com/beka-birhanu/maze-editor/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlueprint(t *testing.T) {
	owner := uuid.New()
	m := maze.New(maze.Dimensions{Width: 4, Height: 4})

	t.Run("Valid config", func(t *testing.T) {
		bp, err := NewBlueprint(BlueprintConfig{ID: uuid.New(), OwnerID: owner, Name: "  spiral ", Maze: m})
		require.NoError(t, err)
		assert.Equal(t, "spiral", bp.Name)
		assert.Equal(t, int64(1), bp.Version)
		assert.True(t, bp.OwnedBy(owner))
		assert.False(t, bp.OwnedBy(uuid.New()))
	})

	t.Run("Blank name", func(t *testing.T) {
		_, err := NewBlueprint(BlueprintConfig{Name: "   ", Maze: m})
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("Long name", func(t *testing.T) {
		_, err := NewBlueprint(BlueprintConfig{Name: strings.Repeat("a", maxNameLength+1), Maze: m})
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("Missing maze", func(t *testing.T) {
		_, err := NewBlueprint(BlueprintConfig{Name: "empty"})
		assert.ErrorIs(t, err, ErrInvalidMaze)
	})

	t.Run("Oversized maze", func(t *testing.T) {
		big := maze.New(maze.Dimensions{Width: MaxDimension + 1, Height: 2})
		_, err := NewBlueprint(BlueprintConfig{Name: "big", Maze: big})
		assert.ErrorIs(t, err, ErrDimensionOutOfRange)
	})
}

func TestWithMaze(t *testing.T) {
	m := maze.New(maze.Dimensions{Width: 2, Height: 2})
	bp, err := NewBlueprint(BlueprintConfig{ID: uuid.New(), OwnerID: uuid.New(), Name: "corridor", Maze: m})
	require.NoError(t, err)

	grown := m.AppendRows(1)
	next := bp.WithMaze(grown)

	assert.Equal(t, int64(2), next.Version)
	assert.Same(t, grown, next.Maze)
	assert.Equal(t, int64(1), bp.Version)
	assert.Same(t, m, bp.Maze)
	assert.Equal(t, bp.ID, next.ID)
}
