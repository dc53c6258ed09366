package eval

import (
	"github.com/rs/zerolog"

	"github.com/treechess/treechess/pkg/common"
)

const maxScore = 0.99

// EvaluationService scores a position by the running material totals only.
type EvaluationService struct {
	logger zerolog.Logger
	clamps int
}

func NewEvaluationService(logger zerolog.Logger) *EvaluationService {
	return &EvaluationService{logger: logger}
}

func (e *EvaluationService) Clamps() int {
	return e.clamps
}

func (e *EvaluationService) Evaluate(p *common.Position, side common.Color) float64 {
	var w = float64(p.Material[common.White])
	var b = float64(p.Material[common.Black])
	if w+b == 0 {
		return 0
	}
	var eval = (w - b) / (w + b)
	if side == common.Black {
		eval = -eval
	}
	if eval >= maxScore {
		e.clamp(p, eval)
		return maxScore
	}
	if eval <= -maxScore {
		e.clamp(p, eval)
		return -maxScore
	}
	return eval
}

func (e *EvaluationService) clamp(p *common.Position, score float64) {
	e.clamps++
	e.logger.Debug().
		Float64("score", score).
		Ints("material", p.Material[:]).
		Msg("evaluation clamped")
}
