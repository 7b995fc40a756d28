package maze

// Direction indexes a cell's connection slots.
type Direction int

// Cardinal directions, in connection-slot order.
const (
	North Direction = iota
	East
	South
	West
)

// DirectionCount is the number of connection slots per cell.
const DirectionCount = 4

// directionMeta is plain data; the bounds check lives in InBounds so the
// table never holds executable code.
type directionMeta struct {
	opposite Direction
	dx, dy   int
}

var directionTable = [DirectionCount]directionMeta{
	North: {opposite: South, dx: 0, dy: -1},
	East:  {opposite: West, dx: 1, dy: 0},
	South: {opposite: North, dx: 0, dy: 1},
	West:  {opposite: East, dx: -1, dy: 0},
}

var directionNames = [DirectionCount]string{"North", "East", "South", "West"}

// Opposite returns the direction pointing back at d.
func (d Direction) Opposite() Direction {
	return directionTable[d].opposite
}

// Offset returns the column and row delta to the neighbor in direction d.
func (d Direction) Offset() (dx, dy int) {
	return directionTable[d].dx, directionTable[d].dy
}

// InBounds reports whether the cell at (col, row) has a neighbor in
// direction d on a cols×rows grid.
func (d Direction) InBounds(col, row, cols, rows int) bool {
	switch d {
	case North:
		return row > 0
	case East:
		return col < cols-1
	case South:
		return row < rows-1
	case West:
		return col > 0
	}
	return false
}

func (d Direction) String() string {
	if d < 0 || d >= DirectionCount {
		return "Unknown"
	}
	return directionNames[d]
}
