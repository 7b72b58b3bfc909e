/*
Package maze provides an immutable wall store for rectangular mazes.

Walls live in a single flat boolean slice. All vertical walls (running along
the y axis) come first, followed by all horizontal walls (running along the x
axis). Within each block walls are ordered by increasing x, then increasing y.
A 10x10 maze has an 11x10 grid of vertical walls and a 10x11 grid of
horizontal walls:

	index 0   stores the (0, 0) vertical wall
	index 10  stores the (10, 0) vertical wall
	index 11  stores the (0, 1) vertical wall
	index 110 stores the (0, 0) horizontal wall
	index 120 stores the (0, 1) horizontal wall

Every operation that looks like a mutation (Set, Toggle, the resize family)
returns a new Maze and leaves the receiver untouched, so a Maze can be shared
freely between goroutines.
*/
package maze

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// DefaultFill is the value every wall takes in a freshly built maze and in
// rows or columns added by a resize.
const DefaultFill = true

var (
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Dimensions is the size of the cell grid.
type Dimensions struct {
	Width  int `json:"width"`  // Number of columns
	Height int `json:"height"` // Number of rows
}

// normalized clamps both sides to at least one cell.
func (d Dimensions) normalized() Dimensions {
	return Dimensions{Width: max(d.Width, 1), Height: max(d.Height, 1)}
}

func (d Dimensions) vertical() Dimensions {
	return Dimensions{Width: d.Width + 1, Height: d.Height}
}

func (d Dimensions) horizontal() Dimensions {
	return Dimensions{Width: d.Width, Height: d.Height + 1}
}

// wallCount is the length of the flat store for a grid of this size.
func (d Dimensions) wallCount() int {
	v, h := d.vertical(), d.horizontal()
	return v.Width*v.Height + h.Width*h.Height
}

// Maze holds the presence of every wall of a Width x Height cell grid.
type Maze struct {
	dimensions Dimensions
	walls      []bool
}

// CellWalls is the state of the four walls around a single cell.
type CellWalls struct {
	Left   bool `json:"left"`
	Top    bool `json:"top"`
	Right  bool `json:"right"`
	Bottom bool `json:"bottom"`
}

// New builds a maze of the given size with every wall set to DefaultFill.
// Sizes below one cell are raised to one.
func New(dimensions Dimensions) *Maze {
	dimensions = dimensions.normalized()
	walls := make([]bool, dimensions.wallCount())
	for i := range walls {
		walls[i] = DefaultFill
	}

	return &Maze{
		dimensions: dimensions,
		walls:      walls,
	}
}

// Dimensions returns a copy of the cell grid size.
func (m *Maze) Dimensions() Dimensions {
	return m.dimensions
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.dimensions.Width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.dimensions.Height
}

// VerticalDimensions returns the size of the grid of vertical walls.
func (m *Maze) VerticalDimensions() Dimensions {
	return m.dimensions.vertical()
}

// HorizontalDimensions returns the size of the grid of horizontal walls.
func (m *Maze) HorizontalDimensions() Dimensions {
	return m.dimensions.horizontal()
}

// Len returns the total number of stored walls.
func (m *Maze) Len() int {
	return len(m.walls)
}

// InBound reports whether (x, y) is a cell of the maze.
func (m *Maze) InBound(x, y int) bool {
	return x >= 0 && x < m.dimensions.Width && y >= 0 && y < m.dimensions.Height
}

// index maps a wall to its slot in the flat store.
// The boolean is false when the wall lies outside the grid.
func (m *Maze) index(w Wall) (int, bool) {
	w = NewWall(w.X, w.Y, w.Side)
	if w.X < 0 || w.Y < 0 || !w.Side.valid() {
		return 0, false
	}

	vertical := m.dimensions.vertical()
	if w.vertical() {
		if w.X >= vertical.Width || w.Y >= vertical.Height {
			return 0, false
		}
		return w.X + w.Y*vertical.Width, true
	}

	horizontal := m.dimensions.horizontal()
	if w.X >= horizontal.Width || w.Y >= horizontal.Height {
		return 0, false
	}
	// All vertical walls are stored before the horizontal walls.
	return vertical.Width*vertical.Height + w.X + w.Y*horizontal.Width, true
}

// wallAt is the inverse of index. i must be in [0, Len()).
func (m *Maze) wallAt(i int) Wall {
	vertical := m.dimensions.vertical()
	if verticalCount := vertical.Width * vertical.Height; i >= verticalCount {
		i -= verticalCount
		return Wall{X: i % m.dimensions.Width, Y: i / m.dimensions.Width, Side: Top}
	}
	return Wall{X: i % vertical.Width, Y: i / vertical.Width, Side: Left}
}

// indexOf is index with the caller-facing errors.
func (m *Maze) indexOf(x, y int, side Side) (int, error) {
	if !side.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSide, int(side))
	}

	i, ok := m.index(NewWall(x, y, side))
	if !ok {
		return 0, fmt.Errorf("%w: (%d, %d) %s", ErrOutOfBounds, x, y, side)
	}
	return i, nil
}

// Get reports whether the wall on the given side of cell (x, y) is present.
func (m *Maze) Get(x, y int, side Side) (bool, error) {
	i, err := m.indexOf(x, y, side)
	if err != nil {
		return false, err
	}
	return m.walls[i], nil
}

// Set returns a copy of the maze with the wall on the given side of cell
// (x, y) set to value.
func (m *Maze) Set(x, y int, side Side, value bool) (*Maze, error) {
	i, err := m.indexOf(x, y, side)
	if err != nil {
		return nil, err
	}

	maze := m.clone()
	maze.walls[i] = value
	return maze, nil
}

// Toggle returns a copy of the maze with the addressed wall flipped.
func (m *Maze) Toggle(x, y int, side Side) (*Maze, error) {
	present, err := m.Get(x, y, side)
	if err != nil {
		return nil, err
	}
	return m.Set(x, y, side, !present)
}

// Cell returns the four walls surrounding cell (x, y).
func (m *Maze) Cell(x, y int) (CellWalls, error) {
	if !m.InBound(x, y) {
		return CellWalls{}, fmt.Errorf("%w: cell (%d, %d)", ErrOutOfBounds, x, y)
	}

	// Every side of an in-bound cell has an index.
	at := func(side Side) bool {
		present, _ := m.lookup(NewWall(x, y, side))
		return present
	}
	return CellWalls{
		Left:   at(Left),
		Top:    at(Top),
		Right:  at(Right),
		Bottom: at(Bottom),
	}, nil
}

// Walls yields every stored wall with its state, vertical walls first.
func (m *Maze) Walls() iter.Seq2[Wall, bool] {
	return func(yield func(Wall, bool) bool) {
		for i, present := range m.walls {
			if !yield(m.wallAt(i), present) {
				return
			}
		}
	}
}

// Equal reports whether both mazes have the same size and walls.
func (m *Maze) Equal(other *Maze) bool {
	if other == nil {
		return false
	}
	return m.dimensions == other.dimensions && slices.Equal(m.walls, other.walls)
}

// lookup reads a wall without building an error for misses.
func (m *Maze) lookup(w Wall) (bool, bool) {
	i, ok := m.index(w)
	if !ok {
		return false, false
	}
	return m.walls[i], true
}

// put writes a wall in place and reports whether it landed in the grid.
// Only call it on a maze that has not been handed out yet.
func (m *Maze) put(w Wall, value bool) bool {
	i, ok := m.index(w)
	if !ok {
		return false
	}
	m.walls[i] = value
	return true
}

func (m *Maze) clone() *Maze {
	return &Maze{
		dimensions: m.dimensions,
		walls:      slices.Clone(m.walls),
	}
}

// String renders the maze as ASCII art.
func (m *Maze) String() string {
	var output strings.Builder

	horizontalRow := func(y int) {
		for x := 0; x < m.dimensions.Width; x++ {
			if present, _ := m.lookup(Wall{X: x, Y: y, Side: Top}); present {
				output.WriteString("+---")
			} else {
				output.WriteString("+   ")
			}
		}
		output.WriteString("+\n")
	}

	for y := 0; y < m.dimensions.Height; y++ {
		horizontalRow(y)

		// Cell row, including the right wall of the last column
		for x := 0; x <= m.dimensions.Width; x++ {
			if present, _ := m.lookup(Wall{X: x, Y: y, Side: Left}); present {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
			if x < m.dimensions.Width {
				output.WriteString("   ")
			}
		}
		output.WriteString("\n")
	}
	horizontalRow(m.dimensions.Height)

	return output.String()
}
