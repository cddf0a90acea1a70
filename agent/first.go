package agent

import "reversi/game"

type firstMoveAgent struct{}

// NewFirstMoveAgent returns an agent that always plays the first legal move
// in row-major order.
func NewFirstMoveAgent() Agent {
	return firstMoveAgent{}
}

func (firstMoveAgent) FindMove(state *game.GameState) game.GameMove {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves")
	}
	return moves[0]
}
