package evalbuilder

import (
	"fmt"

	"github.com/rs/zerolog"

	heuristic "github.com/treechess/treechess/pkg/eval/heuristic"
	material "github.com/treechess/treechess/pkg/eval/material"
)

func Get(key string, logger zerolog.Logger) func() interface{} {
	return func() interface{} {
		switch key {
		case "", "heuristic":
			return heuristic.NewEvaluationService(logger.With().Str("eval", "heuristic").Logger())
		case "material":
			return material.NewEvaluationService(logger.With().Str("eval", "material").Logger())
		}
		panic(fmt.Errorf("bad eval %v", key))
	}
}
