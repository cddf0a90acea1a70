package experiments

import (
	"reversi/agent"
	"reversi/engine"
	"time"

	"github.com/rs/zerolog/log"
)

type Throughput struct {
	Games       int
	Moves       int
	Duration    time.Duration
	GamesPerSec float64
	MovesPerSec float64
}

// RunThroughput measures how fast the rules engine plays random games.
func RunThroughput(numGames int, seed uint64) Throughput {
	start := time.Now()
	moves := 0
	for i := 0; i < numGames; i++ {
		e := engine.LocalEngine([]agent.Agent{
			agent.NewRandomAgent(seed + uint64(2*i)),
			agent.NewRandomAgent(seed + uint64(2*i+1)),
		})
		_, _, moveMetrics := e.Run()
		moves += len(moveMetrics)
	}
	elapsed := time.Since(start)

	t := Throughput{Games: numGames, Moves: moves, Duration: elapsed}
	if secs := elapsed.Seconds(); secs > 0 {
		t.GamesPerSec = float64(numGames) / secs
		t.MovesPerSec = float64(moves) / secs
	}
	log.Info().Msgf("played %d games (%d moves) in %s: %.1f games/s, %.1f moves/s",
		t.Games, t.Moves, t.Duration, t.GamesPerSec, t.MovesPerSec)
	return t
}
