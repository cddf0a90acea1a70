package player

import (
	"fmt"
	"reversi/agent"
	"reversi/game"
	"reversi/gamemaster"

	"github.com/rs/zerolog/log"
)

// Observer is told about every move the session accepts.
type Observer func(move game.GameMove, state *game.GameState)

type Controller interface {
	Run() (*game.GameState, error)
}

// matchController drives a gamemaster session, asking each side's agent for a
// move on its turn and following the session's updates.
type matchController struct {
	engine   gamemaster.Engine
	agents   map[string]agent.Agent
	observer Observer
}

func NewMatchController(engine gamemaster.Engine, black, white agent.Agent, observer Observer) Controller {
	if observer == nil {
		observer = func(game.GameMove, *game.GameState) {}
	}
	return &matchController{
		engine: engine,
		agents: map[string]agent.Agent{
			game.Black.String(): black,
			game.White.String(): white,
		},
		observer: observer,
	}
}

// Run plays until the session reports no legal moves and returns the final state.
func (c *matchController) Run() (*game.GameState, error) {
	state, getUpdate := c.engine.Init()
	for {
		gs := state.(*game.GameState)
		if len(gs.LegalMoves()) == 0 {
			return gs, nil
		}

		player := gs.Player()
		move := c.agents[player].FindMove(gs)
		if err := c.engine.Play(move); err != nil {
			return gs, fmt.Errorf("%s played %s: %w", player, move, err)
		}

		played, next := getUpdate()
		if played == nil || next == nil {
			return gs, fmt.Errorf("no update after %s played %s", player, move)
		}
		log.Debug().Msgf("%s played %s", player, *played)
		c.observer(*played, next.(*game.GameState))
		state = next
	}
}
