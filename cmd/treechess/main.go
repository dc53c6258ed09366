package main

import (
	"flag"
	"runtime"

	"github.com/treechess/treechess/internal/evalbuilder"
	"github.com/treechess/treechess/internal/logging"
	"github.com/treechess/treechess/pkg/engine"
	"github.com/treechess/treechess/pkg/uci"
)

const (
	name   = "TreeChess"
	author = "TreeChess authors"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgEval     string
	flgLog      string
)

func main() {
	flag.StringVar(&flgEval, "eval", "", "specifies evaluation function")
	flag.StringVar(&flgLog, "log", "info", "log level")
	flag.Parse()

	var logger = logging.New(flgLog)

	logger.Info().
		Str("versionName", versionName).
		Str("buildDate", buildDate).
		Str("gitRevision", gitRevision).
		Str("runtimeVersion", runtime.Version()).
		Str("GOARCH", runtime.GOARCH).
		Str("GOOS", runtime.GOOS).
		Int("NumCPU", runtime.NumCPU()).
		Msg(name)

	var eng = engine.NewEngine(evalbuilder.Get(flgEval, logger)).
		WithLogger(logger.With().Str("component", "engine").Logger())

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Iterations", Min: 1, Max: 10_000_000, Value: &eng.Options.Iterations},
			&uci.IntOption{Name: "ProgressInterval", Min: 0, Max: 10_000_000, Value: &eng.Options.ProgressInterval},
		},
	)
	protocol.Run(logger)
}
