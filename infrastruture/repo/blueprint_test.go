package repo

import (
	"testing"

	"github.com/beka-birhanu/maze-editor/domain"
	"github.com/beka-birhanu/maze-editor/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBlueprintDocument(t *testing.T) {
	m, err := maze.New(maze.Dimensions{Width: 3, Height: 2}).Set(1, 1, maze.Bottom, false)
	require.NoError(t, err)

	bp, err := domain.NewBlueprint(domain.BlueprintConfig{ID: uuid.New(), OwnerID: uuid.New(), Name: "stored", Maze: m})
	require.NoError(t, err)

	t.Run("Survives a BSON round trip", func(t *testing.T) {
		doc, err := newBlueprintDocument(bp)
		require.NoError(t, err)
		assert.Equal(t, 3, doc.Width)
		assert.Equal(t, 2, doc.Height)

		raw, err := bson.Marshal(doc)
		require.NoError(t, err)

		var decoded blueprintDocument
		require.NoError(t, bson.Unmarshal(raw, &decoded))

		restored, err := decoded.blueprint()
		require.NoError(t, err)
		assert.Equal(t, bp.ID, restored.ID)
		assert.Equal(t, bp.OwnerID, restored.OwnerID)
		assert.Equal(t, bp.Version, restored.Version)
		assert.True(t, bp.Maze.Equal(restored.Maze))
	})

	t.Run("Corrupt walls", func(t *testing.T) {
		doc := blueprintDocument{ID: bp.ID, Walls: []byte{1, 2, 3}}
		_, err := doc.blueprint()
		assert.ErrorIs(t, err, maze.ErrMalformed)
	})
}

func TestPreviousVersion(t *testing.T) {
	bp, err := domain.NewBlueprint(domain.BlueprintConfig{ID: uuid.New(), OwnerID: uuid.New(), Name: "guarded", Maze: maze.New(maze.Dimensions{Width: 2, Height: 2})})
	require.NoError(t, err)

	next := bp.WithMaze(bp.Maze).WithMaze(bp.Maze)
	assert.Equal(t, bson.M{"_id": bp.ID, "version": int64(2)}, previousVersion(next))
}
