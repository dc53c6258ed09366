package eval

import (
	"github.com/rs/zerolog"

	"github.com/treechess/treechess/pkg/common"
)

const maxScore = 0.99

// knightCentre rewards knights near the middle of the board.
var knightCentre = [64]float64{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 2, 2, 2, 2, 1, 0,
	0, 1, 2, 3, 3, 2, 1, 0,
	0, 1, 2, 3, 3, 2, 1, 0,
	0, 1, 2, 2, 2, 2, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// kingCorner rewards a king tucked into a corner during the opening.
var kingCorner = [64]float64{
	1, 1, 0, 0, 0, 0, 1, 1,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 0, 0, 0, 0, 1, 1,
}

const openingPlies = 10

type EvaluationService struct {
	logger zerolog.Logger
	clamps int
}

func NewEvaluationService(logger zerolog.Logger) *EvaluationService {
	return &EvaluationService{logger: logger}
}

// Clamps returns how many scores were cut to the ±0.99 range.
func (e *EvaluationService) Clamps() int {
	return e.clamps
}

// Evaluate scores p for side in (-1, 1): positive is good for side.
func (e *EvaluationService) Evaluate(p *common.Position, side common.Color) float64 {
	var vals [2]float64
	for i, t := range p.Board {
		if t.IsEmpty() {
			continue
		}
		var sq = common.Square(i)
		vals[t.Color()] += e.pieceValue(p, sq, t)
	}

	var sum = vals[common.White] + vals[common.Black]
	if sum == 0 {
		return 0
	}
	var result = (vals[common.White] - vals[common.Black]) / sum
	if side == common.Black {
		result = -result
	}

	if result >= maxScore {
		e.clamp(p, result)
		return maxScore
	}
	if result <= -maxScore {
		e.clamp(p, result)
		return -maxScore
	}
	return result
}

func (e *EvaluationService) clamp(p *common.Position, score float64) {
	e.clamps++
	e.logger.Debug().
		Float64("score", score).
		Int("ply", p.Ply).
		Msg("evaluation clamped")
}

func (e *EvaluationService) pieceValue(p *common.Position, sq common.Square, t common.Tile) float64 {
	switch t.Piece() {
	case common.Rook:
		return 5 + 0.2*float64(p.Mobility(sq))
	case common.Bishop:
		return 3 + 0.4*float64(p.Mobility(sq))
	case common.Queen:
		return 9 + 0.1*float64(p.Mobility(sq))
	case common.Knight:
		return 3 + 0.3*knightCentre[sq]
	case common.Pawn:
		var progress = common.Rank(sq)
		if t.Color() == common.Black {
			progress = common.Rank8 - progress
		}
		return 1 + 0.1*float64(progress)
	case common.King:
		if p.Ply < openingPlies {
			return 0.5 * kingCorner[sq]
		}
		return 0
	default:
		panic("bad piece")
	}
}
