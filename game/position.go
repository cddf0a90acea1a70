package game

import "fmt"

const BoardSize = 8

// Position is a (row, col) coordinate on the board.
type Position struct {
	Row int
	Col int
}

// Direction is a unit step between neighbouring cells.
type Direction struct {
	DRow int
	DCol int
}

// Directions are the eight rays scanned from a candidate move, clockwise from east.
var Directions = [8]Direction{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// Step returns the neighbouring position in direction d. The result may be
// off the board.
func (p Position) Step(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// InBounds reports whether row and col both lie in [0, BoardSize).
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Placement associates a board position with the color occupying it.
type Placement struct {
	Pos   Position
	Color Color
}
