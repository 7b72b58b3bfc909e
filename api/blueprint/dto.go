// Package blueprintapi exposes maze blueprints over REST.
package blueprintapi

import (
	"time"

	"github.com/beka-birhanu/maze-editor/domain"
	"github.com/beka-birhanu/maze-editor/maze"
)

// CreateRequest asks for a new blueprint.
type CreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Width    int    `json:"width" binding:"required,min=1"`
	Height   int    `json:"height" binding:"required,min=1"`
	Generate bool   `json:"generate"`
}

// WallRequest addresses one wall. Value is ignored by the toggle route.
// Side names are matched without regard to case.
type WallRequest struct {
	X     *int   `json:"x" binding:"required,min=0"`
	Y     *int   `json:"y" binding:"required,min=0"`
	Side  string `json:"side" binding:"required"`
	Value *bool  `json:"value"`
}

// ResizeRequest adds (count > 0) or removes (count < 0) rows or columns.
// Edge and axis names are matched without regard to case.
type ResizeRequest struct {
	Edge  string `json:"edge" binding:"required"`
	Axis  string `json:"axis" binding:"required"`
	Count int    `json:"count" binding:"required"`
}

// SummaryResponse describes a blueprint without its walls.
type SummaryResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Version    int64           `json:"version"`
	Dimensions maze.Dimensions `json:"dimensions"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BlueprintResponse is a blueprint with the walls of every cell, row by row.
type BlueprintResponse struct {
	SummaryResponse
	Cells [][]maze.CellWalls `json:"cells"`
}

func newSummaryResponse(b *domain.Blueprint) SummaryResponse {
	return SummaryResponse{
		ID:         b.ID.String(),
		Name:       b.Name,
		Version:    b.Version,
		Dimensions: b.Maze.Dimensions(),
		UpdatedAt:  b.UpdatedAt,
	}
}

func newBlueprintResponse(b *domain.Blueprint) (*BlueprintResponse, error) {
	d := b.Maze.Dimensions()
	cells := make([][]maze.CellWalls, d.Height)
	for y := range cells {
		cells[y] = make([]maze.CellWalls, d.Width)
		for x := range cells[y] {
			c, err := b.Maze.Cell(x, y)
			if err != nil {
				return nil, err
			}
			cells[y][x] = c
		}
	}

	return &BlueprintResponse{
		SummaryResponse: newSummaryResponse(b),
		Cells:           cells,
	}, nil
}
