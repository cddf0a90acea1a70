package game

import "fmt"

// Board is the 8x8 grid. A nil cell is empty. Board is not safe for
// concurrent use; a game host serialises access to it.
type Board struct {
	grid [BoardSize][BoardSize]*Piece
}

// NewBoard returns the standard starting position: white on (3,3) and (4,4),
// black on (3,4) and (4,3).
func NewBoard() *Board {
	b := &Board{}
	mid := BoardSize / 2
	b.grid[mid-1][mid-1], b.grid[mid][mid] = NewPiece(White), NewPiece(White)
	b.grid[mid-1][mid], b.grid[mid][mid-1] = NewPiece(Black), NewPiece(Black)
	return b
}

// Copy returns an independent board. Pieces are immutable so they can be shared.
func (b *Board) Copy() *Board {
	newBoard := *b
	return &newBoard
}

func (b *Board) IsInBound(row, col int) bool {
	return InBounds(row, col)
}

func (b *Board) IsValidPos(pos Position) bool {
	return InBounds(pos.Row, pos.Col)
}

// GetPiece returns the occupant of pos, or nil if the cell is empty.
func (b *Board) GetPiece(pos Position) (*Piece, error) {
	if !b.IsValidPos(pos) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	return b.grid[pos.Row][pos.Col], nil
}

func (b *Board) IsOccupied(pos Position) (bool, error) {
	piece, err := b.GetPiece(pos)
	if err != nil {
		return false, err
	}
	return piece != nil, nil
}

// IsMine reports whether pos holds a piece of exactly the given color.
func (b *Board) IsMine(pos Position, color Color) (bool, error) {
	piece, err := b.GetPiece(pos)
	if err != nil {
		return false, err
	}
	return piece != nil && piece.Color() == color, nil
}

// FindAll lists every cell held by color in row-major order.
func (b *Board) FindAll(color Color) []Placement {
	var placements []Placement
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if piece := b.grid[row][col]; piece != nil && piece.Color() == color {
				placements = append(placements, Placement{Pos: Position{row, col}, Color: color})
			}
		}
	}
	return placements
}

// PositionsToFlip walks from pos along dir and returns the run of opponent
// pieces that a piece of color placed on pos would capture. An empty result
// means nothing is captured in that direction: the first neighbour is off the
// board, empty or friendly, or the opponent run ends at an empty cell or the
// edge instead of a friendly piece.
func (b *Board) PositionsToFlip(pos Position, color Color, dir Direction) ([]Position, error) {
	if !b.IsValidPos(pos) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	return b.ray(pos, color, dir), nil
}

func (b *Board) ray(pos Position, color Color, dir Direction) []Position {
	if !color.Valid() {
		return nil
	}
	var run []Position
	for cur := pos.Step(dir); b.IsValidPos(cur); cur = cur.Step(dir) {
		piece := b.grid[cur.Row][cur.Col]
		if piece == nil {
			return nil
		}
		if piece.Color() == color {
			return run
		}
		run = append(run, cur)
	}
	return nil
}

// Flips returns the full capture set of a move: the concatenation of the
// per-direction runs over all eight directions.
func (b *Board) Flips(pos Position, color Color) ([]Position, error) {
	if !b.IsValidPos(pos) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	return b.flips(pos, color), nil
}

func (b *Board) flips(pos Position, color Color) []Position {
	var captured []Position
	for _, dir := range Directions {
		captured = append(captured, b.ray(pos, color, dir)...)
	}
	return captured
}

func (b *Board) captures(pos Position, color Color) bool {
	for _, dir := range Directions {
		if len(b.ray(pos, color, dir)) > 0 {
			return true
		}
	}
	return false
}

// ValidMove reports whether color may place a piece on pos: the cell is on
// the board, empty, and at least one direction captures.
func (b *Board) ValidMove(pos Position, color Color) bool {
	if !b.IsValidPos(pos) || b.grid[pos.Row][pos.Col] != nil {
		return false
	}
	return b.captures(pos, color)
}

// ValidMoves lists the legal moves for color in row-major order.
func (b *Board) ValidMoves(color Color) []Position {
	var moves []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			pos := Position{row, col}
			if b.ValidMove(pos, color) {
				moves = append(moves, pos)
			}
		}
	}
	return moves
}

// PlacePiece puts a piece of color on pos and recolors every captured piece.
// The board is left untouched when the move is illegal.
func (b *Board) PlacePiece(pos Position, color Color) error {
	if !b.IsValidPos(pos) {
		return fmt.Errorf("%w: %w: %s", ErrIllegalMove, ErrOutOfBounds, pos)
	}
	if !color.Valid() {
		return fmt.Errorf("%w: invalid color %d", ErrIllegalMove, int(color))
	}
	if b.grid[pos.Row][pos.Col] != nil {
		return fmt.Errorf("%w: %s is occupied", ErrIllegalMove, pos)
	}
	captured := b.flips(pos, color)
	if len(captured) == 0 {
		return fmt.Errorf("%w: %s at %s captures nothing", ErrIllegalMove, color, pos)
	}

	b.grid[pos.Row][pos.Col] = NewPiece(color)
	for _, p := range captured {
		b.grid[p.Row][p.Col] = NewPiece(color)
	}
	return nil
}

// HasMove reports whether color has at least one legal move.
func (b *Board) HasMove(color Color) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.ValidMove(Position{row, col}, color) {
				return true
			}
		}
	}
	return false
}

// IsOver reports whether the game has ended: the board is full or neither
// side can move.
func (b *Board) IsOver() bool {
	if b.Empties() == 0 {
		return true
	}
	return !b.HasMove(Black) && !b.HasMove(White)
}

// Count returns the number of pieces of color on the board.
func (b *Board) Count(color Color) int {
	count := 0
	for row := range b.grid {
		for _, piece := range b.grid[row] {
			if piece != nil && piece.Color() == color {
				count++
			}
		}
	}
	return count
}

func (b *Board) Empties() int {
	count := 0
	for row := range b.grid {
		for _, piece := range b.grid[row] {
			if piece == nil {
				count++
			}
		}
	}
	return count
}
