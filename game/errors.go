package game

import "errors"

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrIllegalMove = errors.New("illegal move")
)
