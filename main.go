package main

import (
	"flag"
	"fmt"
	"os"
	"reversi/agent"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/meta"
	"reversi/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	games      int
	seed       uint64
	agent1     string
	agent2     string
	out        string
	level      string
	print      bool
	throughput bool
}

func main() {
	cfg := parseFlags()

	level, err := zerolog.ParseLevel(cfg.level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", cfg.level, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if cfg.print {
		if err := printGame(cfg); err != nil {
			log.Fatal().Err(err).Msg("demonstration game failed")
		}
		return
	}
	if cfg.throughput {
		experiments.RunThroughput(cfg.games, cfg.seed)
		return
	}
	runSelfPlay(cfg)
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.games, "games", meta.NUM_GAMES, "Number of games per matchup")
	flag.Uint64Var(&cfg.seed, "seed", meta.SEED, "Seed for random agents")
	flag.StringVar(&cfg.agent1, "agent1", agent.RandomKind, "Black agent: random or first")
	flag.StringVar(&cfg.agent2, "agent2", agent.RandomKind, "White agent: random or first")
	flag.StringVar(&cfg.out, "out", "", "Directory for CSV records (none when empty), e.g. "+meta.OUTPUT_DIR)
	flag.StringVar(&cfg.level, "level", "info", "Log level")
	flag.BoolVar(&cfg.print, "print", false, "Play one game and print the board after every move")
	flag.BoolVar(&cfg.throughput, "throughput", false, "Measure games per second with random agents")
	flag.Parse()
	return cfg
}

func runSelfPlay(cfg config) {
	config1 := metrics.AgentConfig{ID: 1, Kind: cfg.agent1, Seed: cfg.seed}
	config2 := metrics.AgentConfig{ID: 2, Kind: cfg.agent2, Seed: cfg.seed + 1}
	// Each agent plays both colors
	setup := experiments.Setup{
		Name:     "selfplay",
		Configs:  []metrics.AgentConfig{config1, config2},
		MatchUps: [][]metrics.AgentConfig{{config1, config2}, {config2, config1}},
		NumGames: cfg.games,
		OutDir:   cfg.out,
	}

	result, err := experiments.Run(setup)
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
	log.Info().Msgf("black wins: %d, white wins: %d, draws: %d",
		result.Wins[game.Black.String()], result.Wins[game.White.String()], result.Wins[game.Draw])
}

func printGame(cfg config) error {
	black, err := agent.New(cfg.agent1, cfg.seed)
	if err != nil {
		return err
	}
	white, err := agent.New(cfg.agent2, cfg.seed+1)
	if err != nil {
		return err
	}

	session := gamemaster.NewLocalEngine()
	fmt.Printf("%s\n\n", game.NewBoard())
	controller := player.NewMatchController(session, black, white, func(move game.GameMove, state *game.GameState) {
		fmt.Printf("%s plays %s\n%s\n\n", state.CurrentPlayer.Opponent(), move, state.Board)
	})

	final, err := controller.Run()
	if err != nil {
		return err
	}
	b, w := final.Score()
	fmt.Printf("Game over! Winner: %s (%d-%d)\n", final.Winner(), b, w)
	return nil
}
