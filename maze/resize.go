package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Edge selects the end of an axis a resize works on.
type Edge int

const (
	First Edge = iota // The top rows or the leftmost columns
	Last              // The bottom rows or the rightmost columns
)

// Axis selects whether a resize adds or removes rows or columns.
type Axis int

const (
	Rows Axis = iota
	Columns
)

var ErrInvalidResize = errors.New("invalid resize")

// ParseEdge converts "first" or "last" into an Edge.
func ParseEdge(name string) (Edge, error) {
	switch strings.ToLower(name) {
	case "first":
		return First, nil
	case "last":
		return Last, nil
	}
	return 0, fmt.Errorf("%w: unknown edge %q", ErrInvalidResize, name)
}

// ParseAxis converts "rows" or "columns" into an Axis.
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(name) {
	case "rows":
		return Rows, nil
	case "columns":
		return Columns, nil
	}
	return 0, fmt.Errorf("%w: unknown axis %q", ErrInvalidResize, name)
}

// PrependColumns returns a maze with n new columns on the left.
func (m *Maze) PrependColumns(n int) *Maze {
	return m.resize(Dimensions{Width: m.dimensions.Width + n, Height: m.dimensions.Height}, n, 0)
}

// PrependRows returns a maze with n new rows on top.
func (m *Maze) PrependRows(n int) *Maze {
	return m.resize(Dimensions{Width: m.dimensions.Width, Height: m.dimensions.Height + n}, 0, n)
}

// AppendColumns returns a maze with n new columns on the right.
func (m *Maze) AppendColumns(n int) *Maze {
	return m.resize(Dimensions{Width: m.dimensions.Width + n, Height: m.dimensions.Height}, 0, 0)
}

// AppendRows returns a maze with n new rows at the bottom.
func (m *Maze) AppendRows(n int) *Maze {
	return m.resize(Dimensions{Width: m.dimensions.Width, Height: m.dimensions.Height + n}, 0, 0)
}

// DeleteFirstColumns returns a maze without its n leftmost columns.
func (m *Maze) DeleteFirstColumns(n int) *Maze {
	return m.PrependColumns(-n)
}

// DeleteFirstRows returns a maze without its n top rows.
func (m *Maze) DeleteFirstRows(n int) *Maze {
	return m.PrependRows(-n)
}

// DeleteLastColumns returns a maze without its n rightmost columns.
func (m *Maze) DeleteLastColumns(n int) *Maze {
	return m.AppendColumns(-n)
}

// DeleteLastRows returns a maze without its n bottom rows.
func (m *Maze) DeleteLastRows(n int) *Maze {
	return m.AppendRows(-n)
}

// Resize grows (n > 0) or shrinks (n < 0) the maze at the given edge of axis.
func (m *Maze) Resize(edge Edge, axis Axis, n int) (*Maze, error) {
	switch {
	case edge == First && axis == Rows:
		return m.PrependRows(n), nil
	case edge == First && axis == Columns:
		return m.PrependColumns(n), nil
	case edge == Last && axis == Rows:
		return m.AppendRows(n), nil
	case edge == Last && axis == Columns:
		return m.AppendColumns(n), nil
	}
	return nil, fmt.Errorf("%w: edge %d axis %d", ErrInvalidResize, int(edge), int(axis))
}

// resize builds a maze of the given size and copies every wall of m into it
// shifted by (offsetX, offsetY).
func (m *Maze) resize(dimensions Dimensions, offsetX, offsetY int) *Maze {
	maze := New(dimensions)
	m.copyInto(maze, offsetX, offsetY)
	return maze
}

// copyInto writes the walls of every cell of m into dst at the shifted
// position. Walls that fall outside dst are skipped, which is routine when
// shrinking.
func (m *Maze) copyInto(dst *Maze, offsetX, offsetY int) {
	for y := 0; y < m.dimensions.Height; y++ {
		for x := 0; x < m.dimensions.Width; x++ {
			for _, side := range Sides {
				present, ok := m.lookup(NewWall(x, y, side))
				if !ok {
					continue
				}
				dst.put(NewWall(x+offsetX, y+offsetY, side), present)
			}
		}
	}
}
