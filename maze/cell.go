package maze

// Cell represents a single cell in a maze grid.
type Cell struct {
	// Col and Row are the cell's coordinates in the grid.
	Col int
	Row int
	// Visited marks whether the generator has reached the cell.
	Visited bool
	// Connections marks open passages to adjacent cells, indexed by
	// Direction. A true entry always has a matching opposite entry in the
	// neighboring cell; Grid.OpenPassage is the only writer.
	Connections [DirectionCount]bool
}

// Connected reports whether the cell has an open passage in direction d.
func (c *Cell) Connected(d Direction) bool {
	return c.Connections[d]
}
