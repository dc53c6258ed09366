package main

import (
	"github.com/treechess/treechess/internal/evalbuilder"
	"github.com/treechess/treechess/internal/logging"
	"github.com/treechess/treechess/pkg/engine"
	"github.com/treechess/treechess/pkg/uci"
)

func main() {
	var logger = logging.New("info")
	var eng = engine.NewEngine(evalbuilder.Get("", logger)).WithLogger(logger)
	var protocol = uci.New("TreeChess", "TreeChess authors", "dev", eng,
		[]uci.Option{
			&uci.IntOption{Name: "Iterations", Min: 1, Max: 10_000_000, Value: &eng.Options.Iterations},
		},
	)
	protocol.Run(logger)
}
