package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestGameStateLegalMoves(t *testing.T) {
	t.Run("opening position", func(t *testing.T) {
		gs := NewGameState()

		require.Equal(t, "Black", gs.Player(), "Black moves first")
		require.Equal(t, []GameMove{
			{Pos: Position{2, 3}},
			{Pos: Position{3, 2}},
			{Pos: Position{4, 5}},
			{Pos: Position{5, 4}},
		}, gs.LegalMoves())
		require.Equal(t, "", gs.Winner(), "Game should be in progress")
	})

	t.Run("forced pass", func(t *testing.T) {
		b := mustParse(t,
			"WB......",
			"........", "........", "........",
			"........", "........", "........", "........",
		)
		gs := &GameState{Board: b, CurrentPlayer: Black}

		require.Equal(t, []GameMove{PassMove()}, gs.LegalMoves(), "Black must pass")
		require.True(t, gs.IsLegal(PassMove()))
		require.False(t, NewGameState().IsLegal(PassMove()), "Passing is illegal when a placement exists")

		next := gs.Play(PassMove()).(*GameState)
		require.Equal(t, White, next.CurrentPlayer)
		require.Equal(t, b, next.Board, "Passing does not change the board")

		final := next.Play(GameMove{Pos: Position{0, 2}}).(*GameState)
		require.Empty(t, final.LegalMoves(), "Nobody can move once black is wiped out")
		require.True(t, final.IsOver())
		require.Equal(t, "White", final.Winner())
	})

	t.Run("draw", func(t *testing.T) {
		rows := make([]string, BoardSize)
		for i := range rows {
			rows[i] = "BWBWBWBW"
		}
		gs := &GameState{Board: mustParse(t, rows...), CurrentPlayer: Black}
		require.Equal(t, Draw, gs.Winner())
	})
}

func TestGameStatePlay(t *testing.T) {
	t.Run("does not mutate the receiver", func(t *testing.T) {
		gs := NewGameState()
		snapshot := gs.Copy()

		next := gs.Play(GameMove{Pos: Position{2, 3}}).(*GameState)

		require.Equal(t, snapshot, gs, "Original state should be unchanged")
		require.Equal(t, White, next.CurrentPlayer)
		require.Equal(t, &GameMove{Pos: Position{2, 3}}, next.LastMove)
		black, white := next.Score()
		require.Equal(t, 4, black)
		require.Equal(t, 1, white)
	})

	t.Run("panics on an illegal move", func(t *testing.T) {
		gs := NewGameState()
		require.Panics(t, func() {
			gs.Play(GameMove{Pos: Position{0, 0}})
		})
		require.Panics(t, func() {
			gs.Play(PassMove())
		})
	})
}

func TestGameStateHash(t *testing.T) {
	a := NewGameState()
	b := NewGameState()
	require.Equal(t, a.Hash(), b.Hash(), "Equal states should hash equally")

	b.CurrentPlayer = White
	require.NotEqual(t, a.Hash(), b.Hash(), "Side to move is part of the hash")

	c := a.Play(GameMove{Pos: Position{2, 3}})
	require.NotEqual(t, a.Hash(), c.Hash())
}

// TestRandomPlayInvariants plays seeded random games and checks the board
// invariants after every move.
func TestRandomPlayInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		gs := NewGameState()

		for {
			for _, color := range Colors {
				require.Equal(t, len(gs.Board.ValidMoves(color)) > 0, gs.Board.HasMove(color))
			}

			moves := gs.LegalMoves()
			if len(moves) == 0 {
				break
			}
			move := moves[rng.Intn(len(moves))]
			if move.Pass {
				gs = gs.Play(move).(*GameState)
				continue
			}

			flips, err := gs.Board.Flips(move.Pos, gs.CurrentPlayer)
			require.NoError(t, err)
			require.NotEmpty(t, flips)
			occupied := 64 - gs.Board.Empties()
			mover := gs.CurrentPlayer

			gs = gs.Play(move).(*GameState)

			require.Equal(t, occupied+1, 64-gs.Board.Empties(), "seed %d: one piece added", seed)
			for _, pos := range append(flips, move.Pos) {
				mine, err := gs.Board.IsMine(pos, mover)
				require.NoError(t, err)
				require.True(t, mine, "seed %d: %s should belong to %s", seed, pos, mover)
			}
		}

		require.True(t, gs.IsOver(), "seed %d", seed)
		require.NotEqual(t, "", gs.Winner(), "seed %d", seed)
		black, white := gs.Score()
		require.LessOrEqual(t, black+white, 64)
	}
}
