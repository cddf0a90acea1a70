package gamemaster

import (
	"errors"
	"fmt"
	"reversi/game"
	"reversi/meta"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver   = errors.New("game is over - no moves allowed")
	ErrNotStarted = errors.New("game has not been initialised")
)

// UpdateGetter returns the next accepted move and the state it produced, or
// nils if no update is pending or the game has ended.
type UpdateGetter func() (*game.GameMove, game.State)

type Engine interface {
	Init() (game.State, UpdateGetter)
	Play(game.GameMove) error
}

type update struct {
	move  game.GameMove
	state game.State
}

// localEngine hosts a single game. Play may be called from several
// goroutines; moves are applied one at a time.
type localEngine struct {
	mu       sync.Mutex
	id       uuid.UUID
	start    *game.GameState
	state    *game.GameState
	updateCh chan update
	gameOver bool
}

func NewLocalEngine() *localEngine {
	return NewLocalEngineFrom(game.NewGameState())
}

// NewLocalEngineFrom hosts a game that starts from state, e.g. a restored
// position.
func NewLocalEngineFrom(state *game.GameState) *localEngine {
	return &localEngine{
		id:    uuid.New(),
		start: state.Copy(),
	}
}

func (e *localEngine) ID() uuid.UUID {
	return e.id
}

func (e *localEngine) Init() (game.State, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = e.start.Copy()
	e.gameOver = e.state.IsOver()
	// Room for every move of a game, so Play never blocks on a slow reader
	updateCh := make(chan update, meta.MAX_TURNS)
	e.updateCh = updateCh
	if e.gameOver {
		close(updateCh)
	}

	log.Info().Str("session", e.id.String()).Msgf("game initialised, %s to move", e.state.Player())

	return e.state.Copy(), func() (*game.GameMove, game.State) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return nil, nil
			}
			move := u.move
			return &move, u.state
		default:
			// No updates yet, return nil immediately
			return nil, nil
		}
	}
}

// State returns a copy of the current state.
func (e *localEngine) State() (*game.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return nil, ErrNotStarted
	}
	return e.state.Copy(), nil
}

func (e *localEngine) Play(move game.GameMove) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return ErrNotStarted
	}
	if e.gameOver {
		return ErrGameOver
	}
	if !e.state.IsLegal(move) {
		log.Debug().Str("session", e.id.String()).Msgf("rejected %s from %s", move, e.state.Player())
		return fmt.Errorf("%w: %s cannot play %s", game.ErrIllegalMove, e.state.Player(), move)
	}

	e.state = e.state.Play(move).(*game.GameState)
	e.updateCh <- update{move: move, state: e.state.Copy()}

	if e.state.IsOver() {
		e.gameOver = true
		close(e.updateCh)
		black, white := e.state.Score()
		log.Info().Str("session", e.id.String()).Msgf("game over, winner %s (%d-%d)", e.state.Winner(), black, white)
	}
	return nil
}
