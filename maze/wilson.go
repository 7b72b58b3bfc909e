package maze

import (
	"math/rand"
	"time"
)

// cell is a position in the cell grid.
type cell struct {
	x, y int
}

// step is a move from one cell to a neighbour through the wall on side.
type step struct {
	from cell
	to   cell
	side Side
}

var directions = [...]struct {
	dx, dy int
	side   Side
}{
	{dx: -1, dy: 0, side: Left},
	{dx: 0, dy: -1, side: Top},
	{dx: 1, dy: 0, side: Right},
	{dx: 0, dy: 1, side: Bottom},
}

// Generate carves a perfect maze (exactly one path between any two cells)
// with Wilson's algorithm, starting from a fully walled grid.
// A nil rng is replaced by a time seeded one.
func Generate(dimensions Dimensions, rng *rand.Rand) *Maze {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Carving needs every wall present, whatever DefaultFill is.
	maze := New(dimensions)
	for i := range maze.walls {
		maze.walls[i] = true
	}

	total := maze.dimensions.Width * maze.dimensions.Height
	visited := make(map[cell]struct{}, total)
	visited[maze.randomCell(rng)] = struct{}{}

	for len(visited) < total {
		start := maze.randomUnvisitedCell(rng, visited)
		exits := maze.randomWalk(rng, start, visited)

		// Follow the loop-erased path; only the last exit of each cell counts.
		for current := start; ; {
			move := exits[current]
			maze.put(NewWall(move.from.x, move.from.y, move.side), false)
			visited[current] = struct{}{}
			if _, done := visited[move.to]; done {
				break
			}
			current = move.to
		}
	}

	return maze
}

// randomCell picks any cell of the grid.
func (m *Maze) randomCell(rng *rand.Rand) cell {
	return cell{x: rng.Intn(m.dimensions.Width), y: rng.Intn(m.dimensions.Height)}
}

// randomUnvisitedCell picks a cell that is not part of the tree yet.
func (m *Maze) randomUnvisitedCell(rng *rand.Rand, visited map[cell]struct{}) cell {
	for {
		c := m.randomCell(rng)
		if _, included := visited[c]; !included {
			return c
		}
	}
}

// neighbors lists the moves from c that stay inside the grid.
func (m *Maze) neighbors(c cell) []step {
	result := make([]step, 0, len(directions))
	for _, d := range directions {
		next := cell{x: c.x + d.dx, y: c.y + d.dy}
		if m.InBound(next.x, next.y) {
			result = append(result, step{from: c, to: next, side: d.side})
		}
	}
	return result
}

// randomWalk wanders from start until it reaches a visited cell and returns
// the last exit taken from every cell on the way.
func (m *Maze) randomWalk(rng *rand.Rand, start cell, visited map[cell]struct{}) map[cell]step {
	exits := make(map[cell]step)
	for current := start; ; {
		neighbors := m.neighbors(current)
		move := neighbors[rng.Intn(len(neighbors))]
		exits[current] = move
		if _, included := visited[move.to]; included {
			return exits
		}
		current = move.to
	}
}
