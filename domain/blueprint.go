// Package domain holds the records the editor stores and serves.
package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/beka-birhanu/maze-editor/maze"
	"github.com/google/uuid"
)

const (
	maxNameLength = 64

	// MaxDimension caps the width and height of a stored maze.
	MaxDimension = 100
)

// Blueprint is a named maze owned by an author.
type Blueprint struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Version   int64 // Incremented on every edit
	Maze      *maze.Maze
	UpdatedAt time.Time
}

// BlueprintConfig holds parameters for creating a Blueprint.
type BlueprintConfig struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Maze    *maze.Maze
}

// NewBlueprint validates the config and returns a first version Blueprint.
func NewBlueprint(config BlueprintConfig) (*Blueprint, error) {
	name := strings.TrimSpace(config.Name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return nil, ErrInvalidName
	}

	if config.Maze == nil {
		return nil, ErrInvalidMaze
	}

	if err := ValidateDimensions(config.Maze.Dimensions()); err != nil {
		return nil, err
	}

	return &Blueprint{
		ID:        config.ID,
		OwnerID:   config.OwnerID,
		Name:      name,
		Version:   1,
		Maze:      config.Maze,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// WithMaze returns the next version of the blueprint holding m.
func (b *Blueprint) WithMaze(m *maze.Maze) *Blueprint {
	next := *b
	next.Maze = m
	next.Version++
	next.UpdatedAt = time.Now().UTC()
	return &next
}

// OwnedBy reports whether the author may read and edit the blueprint.
func (b *Blueprint) OwnedBy(authorID uuid.UUID) bool {
	return b.OwnerID == authorID
}

// ValidateDimensions checks that both sides are within 1..MaxDimension.
func ValidateDimensions(d maze.Dimensions) error {
	if min(d.Width, d.Height) < 1 || max(d.Width, d.Height) > MaxDimension {
		return ErrDimensionOutOfRange
	}
	return nil
}
