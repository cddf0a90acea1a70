package game

import (
	"fmt"
	"strings"
)

const emptyGlyph = '.'

// String renders the board as eight lines of eight glyphs: '.' for an empty
// cell, 'B' for black and 'W' for white.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < BoardSize; col++ {
			if piece := b.grid[row][col]; piece != nil {
				sb.WriteByte(piece.Color().Glyph())
			} else {
				sb.WriteByte(emptyGlyph)
			}
		}
	}
	return sb.String()
}

// ParseBoard builds a board from the rows produced by String. It accepts any
// position, legal or not, so tests and restored sessions can set up arbitrary
// grids.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("parse board: expected %d rows, got %d", BoardSize, len(rows))
	}
	b := &Board{}
	for row, line := range rows {
		if len(line) != BoardSize {
			return nil, fmt.Errorf("parse board: row %d has %d cells, expected %d", row, len(line), BoardSize)
		}
		for col := 0; col < BoardSize; col++ {
			switch line[col] {
			case emptyGlyph:
			case Black.Glyph():
				b.grid[row][col] = NewPiece(Black)
			case White.Glyph():
				b.grid[row][col] = NewPiece(White)
			default:
				return nil, fmt.Errorf("parse board: unexpected glyph %q at %s", line[col], Position{row, col})
			}
		}
	}
	return b, nil
}
