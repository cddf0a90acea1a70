package agent

import (
	"reversi/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly among the legal moves.
// Agents built with the same seed play the same games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) game.GameMove {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves")
	}
	return moves[a.rng.Intn(len(moves))]
}
