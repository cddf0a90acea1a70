package game

type StateHash uint64

// State is a position in a game together with the side to move. Operations
// never mutate the receiver: Play returns a new State.
type State interface {
	Player() string
	LegalMoves() []GameMove
	Play(GameMove) State
	Hash() StateHash
	Winner() string
}

// Draw is reported by Winner when the final disc counts are equal.
const Draw = "Draw"
