package maze

import "errors"

// ErrInvalidDimensions is returned when a grid is created with a
// non-positive column or row count.
var ErrInvalidDimensions = errors.New("maze: grid dimensions must be positive")

// Grid owns the cell matrix of a maze. It is created once at its configured
// size and never resized; after generation it is read-only.
type Grid struct {
	cols  int
	rows  int
	cells [][]Cell
}

// NewGrid creates a cols×rows grid with all cells unvisited and no open
// passages.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]Cell, rows)
	for row := range cells {
		cells[row] = make([]Cell, cols)
		for col := range cells[row] {
			cells[row][col] = Cell{Col: col, Row: row}
		}
	}

	return &Grid{cols: cols, rows: rows, cells: cells}, nil
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cell returns the cell at (col, row).
func (g *Grid) Cell(col, row int) *Cell {
	return &g.cells[row][col]
}

// Neighbor returns the cell adjacent to c in direction d. The caller must
// have verified d.InBounds first; there is no bounds guard here.
func (g *Grid) Neighbor(c *Cell, d Direction) *Cell {
	dx, dy := d.Offset()
	return &g.cells[c.Row+dy][c.Col+dx]
}

// OpenPassage opens a passage from c toward direction d, setting the
// matching connection on both sides.
func (g *Grid) OpenPassage(c *Cell, d Direction) {
	n := g.Neighbor(c, d)
	c.Connections[d] = true
	n.Connections[d.Opposite()] = true
}

// PassageCount returns the number of open passages, counting each passage
// once.
func (g *Grid) PassageCount() int {
	total := 0
	for row := range g.cells {
		for col := range g.cells[row] {
			for _, open := range g.cells[row][col].Connections {
				if open {
					total++
				}
			}
		}
	}
	return total / 2
}
