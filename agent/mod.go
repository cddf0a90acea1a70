package agent

import (
	"fmt"
	"reversi/game"
)

// Agent picks a move for the side to move. The state always has at least one
// legal move when FindMove is called.
type Agent interface {
	FindMove(state *game.GameState) game.GameMove
}

const (
	RandomKind = "random"
	FirstKind  = "first"
)

// New returns the agent registered under kind. seed only affects random agents.
func New(kind string, seed uint64) (Agent, error) {
	switch kind {
	case RandomKind:
		return NewRandomAgent(seed), nil
	case FirstKind:
		return NewFirstMoveAgent(), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}
