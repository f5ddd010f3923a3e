package grid

import "fmt"

// Coord represents a position on the game grid in grid units.
// Row 0 is the top row; Col 0 is the leftmost column.
type Coord struct {
	Row, Col int
}

// NewCoord creates a new coordinate with the given row and column values.
func NewCoord(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns a new coordinate that is the sum of this coordinate and another.
func (c Coord) Add(other Coord) Coord {
	return Coord{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// Equal checks if two coordinates are equal.
func (c Coord) Equal(other Coord) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// ChebyshevDistance returns the Chebyshev (ring) distance to another coordinate.
func (c Coord) ChebyshevDistance(other Coord) int {
	dr := c.Row - other.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - other.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction represents a discrete movement input.
type Direction int

const (
	Stay Direction = iota
	Up
	Right
	Down
	Left
)

// DirectionVectors provides coordinate offsets for each direction.
var DirectionVectors = map[Direction]Coord{
	Stay:  {Row: 0, Col: 0},
	Up:    {Row: -1, Col: 0},
	Right: {Row: 0, Col: 1},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
}

// Move returns a new coordinate moved one step in the given direction.
func (c Coord) Move(direction Direction) Coord {
	if offset, ok := DirectionVectors[direction]; ok {
		return c.Add(offset)
	}
	return c
}

func (d Direction) String() string {
	switch d {
	case Stay:
		return "stay"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
