package experiments

import (
	"fmt"
	"reversi/agent"
	"reversi/engine"
	"reversi/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// Setup describes a self-play batch. Each matchup lists the black agent first.
type Setup struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][]metrics.AgentConfig
	NumGames int    // Per matchup
	OutDir   string // Records are skipped when empty
}

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[string]int
}

// Run plays every matchup NumGames times and stores the records when an
// output directory is configured.
func Run(setup Setup) (Result, error) {
	count := 0
	result := Result{Wins: map[string]int{}}

	log.Info().Msgf("starting %s experiment...", setup.Name)

	for mi, matchup := range setup.MatchUps {
		if len(matchup) != 2 {
			return result, fmt.Errorf("matchup %d has %d agents, expected 2", mi+1, len(matchup))
		}
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(setup.MatchUps), config1, config2)

		for i := 0; i < setup.NumGames; i++ {
			// Offset seeds per game so repeated games differ but stay reproducible
			winner, gameMetric, moveMetrics, err := runGame(config1, config2, uint64(i))
			if err != nil {
				return result, err
			}
			count++
			result.Wins[winner]++
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s (%d-%d)",
				mi+1, len(setup.MatchUps), i+1, winner, gameMetric.Black, gameMetric.White)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(setup.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	if setup.OutDir == "" {
		return result, nil
	}
	return result, store(setup, result)
}

func store(setup Setup, result Result) error {
	writer, err := metrics.NewWriter(setup.OutDir, setup.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(setup.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(config1, config2 metrics.AgentConfig, offset uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	black, err := agent.New(config1.Kind, config1.Seed+offset)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	white, err := agent.New(config2.Kind, config2.Seed+offset)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine([]agent.Agent{black, white}, engine.WithCollector(metrics.NewCollector()))
	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}
