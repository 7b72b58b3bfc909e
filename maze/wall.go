package maze

// Wall identifies one wall segment of the grid.
// A Wall built with NewWall is always canonical: its side is Left or Top.
type Wall struct {
	X    int  // Column of the cell the wall belongs to
	Y    int  // Row of the cell the wall belongs to
	Side Side // Left or Top once normalized
}

// NewWall returns the canonical wall for the given side of cell (x, y).
// The right wall of a cell is the left wall of its right neighbour and the
// bottom wall is the top wall of the cell below. No range checks happen here.
func NewWall(x, y int, side Side) Wall {
	switch side {
	case Right:
		return Wall{X: x + 1, Y: y, Side: Left}
	case Bottom:
		return Wall{X: x, Y: y + 1, Side: Top}
	default:
		return Wall{X: x, Y: y, Side: side}
	}
}

// Equals reports whether w and other address the same stored wall.
func (w Wall) Equals(other Wall) bool {
	a, b := NewWall(w.X, w.Y, w.Side), NewWall(other.X, other.Y, other.Side)
	return a.X == b.X && a.Y == b.Y && a.Side == b.Side
}

// vertical reports whether the wall runs along the y axis.
func (w Wall) vertical() bool {
	return NewWall(w.X, w.Y, w.Side).Side == Left
}
