package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState pairs a board with the side to move. Turn order and passing live
// here rather than on Board so that Board stays a pure rules oracle.
type GameState struct {
	Board         *Board
	CurrentPlayer Color
	LastMove      *GameMove
}

// NewGameState returns the opening position with Black to move.
func NewGameState() *GameState {
	return &GameState{
		Board:         NewBoard(),
		CurrentPlayer: Black,
	}
}

func (gs GameState) Copy() *GameState {
	var last *GameMove
	if gs.LastMove != nil {
		move := *gs.LastMove
		last = &move
	}
	return &GameState{
		Board:         gs.Board.Copy(),
		CurrentPlayer: gs.CurrentPlayer,
		LastMove:      last,
	}
}

// Player returns the name of the side to move.
func (gs GameState) Player() string {
	return gs.CurrentPlayer.String()
}

// LegalMoves returns the placements available to the side to move, a single
// pass if it has none but the opponent can still move, or nothing once the
// game is over.
func (gs GameState) LegalMoves() []GameMove {
	positions := gs.Board.ValidMoves(gs.CurrentPlayer)
	if len(positions) > 0 {
		moves := make([]GameMove, len(positions))
		for i, pos := range positions {
			moves[i] = GameMove{Pos: pos}
		}
		return moves
	}
	if gs.Board.HasMove(gs.CurrentPlayer.Opponent()) {
		return []GameMove{PassMove()}
	}
	return nil
}

// IsLegal reports whether move may be played from this state.
func (gs GameState) IsLegal(move GameMove) bool {
	if move.Pass {
		return !gs.Board.HasMove(gs.CurrentPlayer) && gs.Board.HasMove(gs.CurrentPlayer.Opponent())
	}
	return gs.Board.ValidMove(move.Pos, gs.CurrentPlayer)
}

// Play returns the state after move. It panics on an illegal move; callers
// check IsLegal or pick from LegalMoves.
func (gs GameState) Play(move GameMove) State {
	if !gs.IsLegal(move) {
		panic(fmt.Sprintf("%s cannot play %s", gs.CurrentPlayer, move))
	}
	newGs := gs.Copy()
	if !move.Pass {
		if err := newGs.Board.PlacePiece(move.Pos, gs.CurrentPlayer); err != nil {
			panic(err)
		}
	}
	newGs.LastMove = &move
	newGs.CurrentPlayer = gs.CurrentPlayer.Opponent()
	return newGs
}

// IsOver reports whether neither side can move.
func (gs GameState) IsOver() bool {
	return gs.Board.IsOver()
}

// Score returns the disc counts of both sides.
func (gs GameState) Score() (black, white int) {
	return gs.Board.Count(Black), gs.Board.Count(White)
}

// Winner returns "" while the game is in progress, otherwise the name of the
// side with more discs, or Draw.
func (gs GameState) Winner() string {
	if !gs.IsOver() {
		return ""
	}
	black, white := gs.Score()
	switch {
	case black > white:
		return Black.String()
	case white > black:
		return White.String()
	default:
		return Draw
	}
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))

	for row := range gs.Board.grid {
		for _, piece := range gs.Board.grid[row] {
			var cell int8
			if piece != nil {
				cell = int8(piece.Color())
			}
			binary.Write(hasher, binary.LittleEndian, cell)
		}
	}

	return StateHash(hasher.Sum64())
}
