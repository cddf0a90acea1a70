package game

// Color identifies a side. The zero value is not a valid color.
type Color int

const (
	Black Color = iota + 1
	White
)

// Colors lists both sides in playing order.
var Colors = []Color{Black, White}

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) Valid() bool {
	return c == Black || c == White
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Unknown"
	}
}

// Glyph is the single character used when rendering a board.
func (c Color) Glyph() byte {
	switch c {
	case Black:
		return 'B'
	case White:
		return 'W'
	default:
		return '?'
	}
}

// Piece is an immutable disc. A flip replaces the cell's piece instead of
// mutating it.
type Piece struct {
	color Color
}

func NewPiece(color Color) *Piece {
	return &Piece{color: color}
}

func (p *Piece) Color() Color {
	return p.color
}

// SameSide reports whether both pieces belong to the same player.
func (p *Piece) SameSide(other *Piece) bool {
	return p != nil && other != nil && p.color == other.color
}
