package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/treechess/treechess/internal/arena"
	"github.com/treechess/treechess/internal/evalbuilder"
	"github.com/treechess/treechess/internal/logging"
	"github.com/treechess/treechess/pkg/engine"
)

type Config struct {
	Concurrency int
	EvalA       string
	EvalB       string
	Iterations  int
	MoveTime    time.Duration
	MaxPlies    int
	PgnPath     string
	LogLevel    string
}

var config Config

func main() {
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of games played at once")
	flag.StringVar(&config.EvalA, "evala", "heuristic", "evaluation of engine A")
	flag.StringVar(&config.EvalB, "evalb", "material", "evaluation of engine B")
	flag.IntVar(&config.Iterations, "iterations", 1000, "iterations per move")
	flag.DurationVar(&config.MoveTime, "movetime", 0, "time per move, used when iterations is 0")
	flag.IntVar(&config.MaxPlies, "plies", 300, "adjudicate unfinished after this many plies")
	flag.StringVar(&config.PgnPath, "pgn", "", "write games to this PGN file")
	flag.StringVar(&config.LogLevel, "log", "info", "log level")
	flag.Parse()

	var logger = logging.New(config.LogLevel)
	var err = run(logger)
	if err != nil {
		logger.Error().Err(err).Msg("arena failed")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger) error {
	logger.Info().Interface("config", config).Msg("config")

	var a = &arena.Arena{
		Concurrency: config.Concurrency,
		TimeControl: arena.TimeControl{
			FixedIterations: config.Iterations,
			FixedTime:       config.MoveTime,
			MaxPlies:        config.MaxPlies,
		},
		Openings:   arena.DefaultOpenings(),
		NameA:      config.EvalA,
		NameB:      config.EvalB,
		NewEngineA: newEngineBuilder(config.EvalA, logger),
		NewEngineB: newEngineBuilder(config.EvalB, logger),
		Logger:     logger,
	}
	if config.PgnPath != "" {
		var f, err = os.Create(config.PgnPath)
		if err != nil {
			return err
		}
		defer f.Close()
		a.Pgn = f
	}
	var _, err = a.Run(context.Background())
	return err
}

func newEngineBuilder(eval string, logger zerolog.Logger) func() arena.IEngine {
	return func() arena.IEngine {
		var eng = engine.NewEngine(evalbuilder.Get(eval, logger)).
			WithLogger(logger.With().Str("eval", eval).Logger())
		eng.Prepare()
		return eng
	}
}
