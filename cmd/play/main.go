package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/treechess/treechess/internal/evalbuilder"
	"github.com/treechess/treechess/internal/logging"
	"github.com/treechess/treechess/internal/play"
	"github.com/treechess/treechess/pkg/common"
	"github.com/treechess/treechess/pkg/engine"
	"github.com/treechess/treechess/pkg/uci"
)

func main() {
	var flgEval = flag.String("eval", "", "specifies evaluation function")
	var flgFen = flag.String("fen", common.InitialPositionFen, "starting position")
	var flgIterations = flag.Int("iterations", 1000, "engine iterations per move")
	var flgLog = flag.String("log", "warn", "log level")
	flag.Parse()

	var logger = logging.New(*flgLog)

	var p, err = common.ParseFEN(*flgFen)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad fen")
	}

	var eng = engine.NewEngine(evalbuilder.Get(*flgEval, logger)).WithLogger(logger)
	eng.Iterations = *flgIterations

	var game = play.NewGameFrom(eng, p)
	fmt.Println("enter moves as from,to[,promotion] e.g. e2e4 or a7a8q; quit to exit")
	play.Print(os.Stdout, game.Codes())
	uci.RunCli(context.Background(), os.Stdin, logger, &play.Handler{Game: game, Out: os.Stdout})
}
