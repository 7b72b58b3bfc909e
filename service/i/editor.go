package i

import (
	"context"

	"github.com/beka-birhanu/maze-editor/domain"
	"github.com/beka-birhanu/maze-editor/maze"
	"github.com/google/uuid"
)

// Editor creates blueprints and applies wall and resize edits to them.
// Every call is scoped to the author making it.
type Editor interface {
	Create(ctx context.Context, authorID uuid.UUID, name string, dimensions maze.Dimensions, generate bool) (*domain.Blueprint, error)
	Get(ctx context.Context, authorID, id uuid.UUID) (*domain.Blueprint, error)
	List(ctx context.Context, authorID uuid.UUID) ([]*domain.Blueprint, error)
	SetWall(ctx context.Context, authorID, id uuid.UUID, x, y int, side maze.Side, value bool) (*domain.Blueprint, error)
	ToggleWall(ctx context.Context, authorID, id uuid.UUID, x, y int, side maze.Side) (*domain.Blueprint, error)
	Resize(ctx context.Context, authorID, id uuid.UUID, edge maze.Edge, axis maze.Axis, n int) (*domain.Blueprint, error)
	Delete(ctx context.Context, authorID, id uuid.UUID) error
}
