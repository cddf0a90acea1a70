package engine

import (
	"reversi/agent"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Local struct {
	State     *game.GameState
	Agents    map[game.Color]agent.Agent
	collector metrics.Collector
}

type Option func(e *Local)

func WithCollector(collector metrics.Collector) Option {
	return func(e *Local) {
		if collector != nil {
			e.collector = collector
		}
	}
}

// WithState starts the game from state instead of the opening position.
func WithState(state *game.GameState) Option {
	return func(e *Local) {
		if state != nil {
			e.State = state.Copy()
		}
	}
}

// LocalEngine pits agents[0] (black) against agents[1] (white).
func LocalEngine(agents []agent.Agent, options ...Option) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	eng := &Local{
		State: game.NewGameState(),
		Agents: map[game.Color]agent.Agent{
			game.Black: agents[0],
			game.White: agents[1],
		},
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(eng)
	}
	return eng
}

// Run executes the game loop until neither side can move.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	log.Debug().Msgf("%s is starting", e.State.Player())
	e.collector.Start(e.State.Player())

	var moveMetrics []metrics.MoveMetric
	step := 1
	moves := e.State.LegalMoves()
	for len(moves) > 0 && step <= meta.MAX_TURNS {
		player := e.State.CurrentPlayer
		move := e.Agents[player].FindMove(e.State)
		if !slices.Contains(moves, move) {
			log.Warn().Msgf("%s agent returned illegal move %s, playing %s instead", player, move, moves[0])
			move = moves[0]
		}

		flips := 0
		if move.Pass {
			e.collector.AddPass()
		} else {
			captured, _ := e.State.Board.Flips(move.Pos, player)
			flips = len(captured)
			e.collector.AddMove(flips)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:   step,
			Player: player.String(),
			Move:   move,
			Flips:  flips,
		})
		log.Trace().Msgf("step %d: %s plays %s flipping %d", step, player, move, flips)

		e.State = e.State.Play(move).(*game.GameState)
		moves = e.State.LegalMoves()
		step++
	}

	black, white := e.State.Score()
	winner := e.State.Winner()
	if winner != "" {
		log.Debug().Msgf("game ended with winner %s (%d-%d)", winner, black, white)
	} else {
		log.Warn().Msgf("stopped after %d turns without a winner", meta.MAX_TURNS)
	}

	return winner, e.collector.Complete(winner, black, white), moveMetrics
}
