package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carved returns a 3x3 maze with a few walls removed.
func carved(t *testing.T) *Maze {
	t.Helper()
	m := New(Dimensions{Width: 3, Height: 3})
	for _, w := range []Wall{
		{X: 0, Y: 0, Side: Left},
		{X: 1, Y: 1, Side: Top},
		{X: 2, Y: 2, Side: Right},
		{X: 2, Y: 2, Side: Bottom},
		{X: 1, Y: 0, Side: Right},
	} {
		var err error
		m, err = m.Set(w.X, w.Y, w.Side, false)
		require.NoError(t, err)
	}
	return m
}

// assertShifted checks every wall of src against dst at the given offset.
func assertShifted(t *testing.T, src, dst *Maze, offsetX, offsetY int) {
	t.Helper()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			for _, side := range Sides {
				want, err := src.Get(x, y, side)
				require.NoError(t, err)
				got, err := dst.Get(x+offsetX, y+offsetY, side)
				require.NoError(t, err)
				assert.Equal(t, want, got, "(%d, %d) %s", x, y, side)
			}
		}
	}
}

func TestAppendColumns(t *testing.T) {
	m := New(Dimensions{Width: 3, Height: 3})
	grown := m.AppendColumns(1)

	assert.Equal(t, Dimensions{Width: 4, Height: 3}, grown.Dimensions())
	assertShifted(t, m, grown, 0, 0)
	for y := 0; y < 3; y++ {
		c, err := grown.Cell(3, y)
		require.NoError(t, err)
		assert.Equal(t, CellWalls{Left: DefaultFill, Top: DefaultFill, Right: DefaultFill, Bottom: DefaultFill}, c)
	}

	src := carved(t)
	assertShifted(t, src, src.AppendColumns(2), 0, 0)
}

func TestAppendRows(t *testing.T) {
	src := carved(t)
	grown := src.AppendRows(3)

	assert.Equal(t, Dimensions{Width: 3, Height: 6}, grown.Dimensions())
	assertShifted(t, src, grown, 0, 0)

	present, err := grown.Get(1, 5, Bottom)
	require.NoError(t, err)
	assert.Equal(t, DefaultFill, present)
}

func TestPrependColumns(t *testing.T) {
	src := carved(t)
	grown := src.PrependColumns(2)

	assert.Equal(t, Dimensions{Width: 5, Height: 3}, grown.Dimensions())
	assertShifted(t, src, grown, 2, 0)

	present, err := grown.Get(2, 0, Left)
	require.NoError(t, err)
	assert.False(t, present)

	present, err = grown.Get(0, 0, Left)
	require.NoError(t, err)
	assert.Equal(t, DefaultFill, present)
}

func TestPrependRows(t *testing.T) {
	src := carved(t)
	grown := src.PrependRows(1)

	assert.Equal(t, Dimensions{Width: 3, Height: 4}, grown.Dimensions())
	assertShifted(t, src, grown, 0, 1)

	present, err := grown.Get(1, 2, Top)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestDeleteFirstColumns(t *testing.T) {
	src := carved(t)
	shrunk := src.DeleteFirstColumns(1)
	assert.Equal(t, Dimensions{Width: 2, Height: 3}, shrunk.Dimensions())

	for y := 0; y < 3; y++ {
		for x := 1; x < 3; x++ {
			for _, side := range Sides {
				want, err := src.Get(x, y, side)
				require.NoError(t, err)
				got, err := shrunk.Get(x-1, y, side)
				require.NoError(t, err)
				assert.Equal(t, want, got, "(%d, %d) %s", x, y, side)
			}
		}
	}
}

func TestDeleteFirstRows(t *testing.T) {
	src := carved(t)
	shrunk := src.DeleteFirstRows(2)
	assert.Equal(t, Dimensions{Width: 3, Height: 1}, shrunk.Dimensions())

	present, err := shrunk.Get(2, 0, Right)
	require.NoError(t, err)
	assert.False(t, present)
	present, err = shrunk.Get(2, 0, Bottom)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestDeleteLast(t *testing.T) {
	src := carved(t)

	columns := src.DeleteLastColumns(1)
	assert.Equal(t, Dimensions{Width: 2, Height: 3}, columns.Dimensions())
	present, err := columns.Get(1, 0, Right)
	require.NoError(t, err)
	assert.False(t, present)

	rows := src.DeleteLastRows(1)
	assert.Equal(t, Dimensions{Width: 3, Height: 2}, rows.Dimensions())
	present, err = rows.Get(1, 0, Top)
	require.NoError(t, err)
	assert.True(t, present)
	present, err = rows.Get(1, 0, Bottom)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestDeleteClampsToOneCell(t *testing.T) {
	src := carved(t)
	assert.Equal(t, Dimensions{Width: 1, Height: 3}, src.DeleteLastColumns(10).Dimensions())
	assert.Equal(t, Dimensions{Width: 3, Height: 1}, src.DeleteFirstRows(3).Dimensions())
}

func TestResizeInverse(t *testing.T) {
	src := carved(t)

	assert.True(t, src.AppendRows(2).DeleteLastRows(2).Equal(src))
	assert.True(t, src.AppendColumns(4).DeleteLastColumns(4).Equal(src))
	assert.True(t, src.PrependRows(1).DeleteFirstRows(1).Equal(src))
	assert.True(t, src.PrependColumns(3).DeleteFirstColumns(3).Equal(src))
}

func TestResizeDoesNotMutateReceiver(t *testing.T) {
	src := carved(t)
	before := src.clone()

	_ = src.PrependColumns(1)
	_ = src.DeleteFirstRows(2)
	_ = src.AppendRows(5)

	assert.True(t, src.Equal(before))
}

func TestResize(t *testing.T) {
	src := carved(t)

	for _, tc := range []struct {
		edge Edge
		axis Axis
		n    int
		want *Maze
	}{
		{First, Rows, 2, src.PrependRows(2)},
		{First, Columns, -1, src.DeleteFirstColumns(1)},
		{Last, Rows, -2, src.DeleteLastRows(2)},
		{Last, Columns, 1, src.AppendColumns(1)},
	} {
		got, err := src.Resize(tc.edge, tc.axis, tc.n)
		require.NoError(t, err)
		assert.True(t, tc.want.Equal(got))
	}

	_, err := src.Resize(Edge(5), Rows, 1)
	assert.ErrorIs(t, err, ErrInvalidResize)
}

func TestParseEdgeAndAxis(t *testing.T) {
	edge, err := ParseEdge("Last")
	require.NoError(t, err)
	assert.Equal(t, Last, edge)

	axis, err := ParseAxis("columns")
	require.NoError(t, err)
	assert.Equal(t, Columns, axis)

	_, err = ParseEdge("middle")
	assert.ErrorIs(t, err, ErrInvalidResize)
	_, err = ParseAxis("diagonals")
	assert.ErrorIs(t, err, ErrInvalidResize)
}
