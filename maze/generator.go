package maze

import (
	"math/rand"
	"time"
)

// RandomSource yields uniformly distributed integers. *math/rand.Rand
// satisfies it, which keeps generation seedable for reproducible mazes.
type RandomSource interface {
	Intn(n int) int
}

// Result reports the endpoints chosen during generation. Start is the
// random cell the walk began from and End is the cell that terminated the
// longest forward path observed during the walk.
type Result struct {
	Start *Cell
	End   *Cell
	// LongestPath is the depth, in cells, of the walk when End was set.
	LongestPath int
}

// Generator carves a random spanning tree into a grid using iterative
// depth-first backtracking. Every cell is visited exactly once and passages
// only ever open toward unvisited cells, so the result is a perfect maze:
// fully connected, acyclic, a single path between any two cells.
type Generator struct {
	grid *Grid
	rng  RandomSource
}

// NewGenerator creates a generator over the given grid. A nil rng falls
// back to a time-seeded source.
func NewGenerator(grid *Grid, rng RandomSource) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{grid: grid, rng: rng}
}

// Generate runs the walk to completion, mutating the grid in place.
func (g *Generator) Generate() Result {
	cols, rows := g.grid.Cols(), g.grid.Rows()
	total := cols * rows

	startIdx := g.rng.Intn(total)
	current := g.grid.Cell(startIdx%cols, startIdx/cols)
	current.Visited = true

	start := current
	end := current

	stack := make([]*Cell, 0, total)
	stack = append(stack, current)

	visited := 1
	pathLen := 1
	longest := 1

	var frontier [DirectionCount]Direction
	for visited < total {
		// Collect the in-bounds directions whose neighbor is unvisited.
		n := 0
		for d := Direction(0); d < DirectionCount; d++ {
			if d.InBounds(current.Col, current.Row, cols, rows) && !g.grid.Neighbor(current, d).Visited {
				frontier[n] = d
				n++
			}
		}

		if n > 0 {
			d := frontier[g.rng.Intn(n)]
			g.grid.OpenPassage(current, d)

			current = g.grid.Neighbor(current, d)
			current.Visited = true
			stack = append(stack, current)
			visited++

			pathLen++
			// Strict comparison: the first cell to reach a depth keeps it.
			if pathLen > longest {
				longest = pathLen
				end = current
			}
		} else {
			// Dead end: pop the stack into the current cell and retry from
			// there.
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pathLen--
		}
	}

	return Result{Start: start, End: end, LongestPath: longest}
}
