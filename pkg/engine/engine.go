package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	. "github.com/treechess/treechess/pkg/common"
)

type Engine struct {
	Options
	evalBuilder func() interface{}
	evaluator   Evaluator
	logger      zerolog.Logger
	tree        tree
	timeManager TimeManager
	progress    func(SearchInfo)
	start       time.Time
	iterations  int
}

type TimeManager interface {
	IsDone() bool
	OnIterationsChanged(iterations int)
	Close()
}

// Evaluator scores a position for side in [-1, 1].
type Evaluator interface {
	Evaluate(p *Position, side Color) float64
}

func NewEngine(evalBuilder func() interface{}) *Engine {
	return &Engine{
		Options:     NewOptions(),
		evalBuilder: evalBuilder,
		logger:      zerolog.Nop(),
	}
}

func (e *Engine) WithLogger(logger zerolog.Logger) *Engine {
	e.logger = logger
	return e
}

func (e *Engine) Prepare() {
	if e.evaluator == nil {
		e.evaluator = e.buildEvaluator()
	}
	e.tree.evaluator = e.evaluator
	e.tree.beta = e.Beta
}

func (e *Engine) Clear() {
	e.tree = tree{}
}

// Search grows a fresh tree from the last position and reports the best line.
func (e *Engine) Search(ctx context.Context, searchParams SearchParams) (SearchInfo, error) {
	if len(searchParams.Positions) == 0 {
		return SearchInfo{}, fmt.Errorf("search: %w", ErrInvalidPosition)
	}
	e.start = time.Now()
	e.Prepare()
	var p = searchParams.Positions[len(searchParams.Positions)-1]
	e.timeManager = newSimpleTimeManager(ctx, e.start, searchParams.Limits, p.SideToMove(), e.Iterations)
	defer e.timeManager.Close()
	e.progress = searchParams.Progress
	e.iterations = 0
	e.tree.reset(p)

	for !e.timeManager.IsDone() {
		var err = e.tree.expand()
		if err != nil {
			if errors.Is(err, ErrInvariantViolation) {
				e.logger.Error().
					Err(err).
					Str("fen", p.FEN()).
					Int("iterations", e.iterations).
					Msg("search aborted")
				return SearchInfo{}, fmt.Errorf("search: %w", err)
			}
			e.logger.Debug().Err(err).Int("iteration", e.iterations).Msg("expand")
		}
		e.iterations++
		e.timeManager.OnIterationsChanged(e.iterations)
		if e.progress != nil && e.ProgressInterval > 0 && e.iterations%e.ProgressInterval == 0 {
			e.progress(e.currentSearchResult())
		}
	}

	var si = e.currentSearchResult()
	if len(si.MainLine) == 0 {
		e.tree.init(0)
		var ml = e.tree.nodeMoves(e.tree.root())
		if len(ml) == 0 || e.tree.root().position.Status != Ongoing {
			return si, ErrNoMoves
		}
		si.MainLine = []Move{ml[0]}
	}
	e.logger.Debug().
		Str("bestmove", si.MainLine[0].String()).
		Int("iterations", si.Iterations).
		Int("visits", si.Visits).
		Float64("confidence", si.Confidence).
		Dur("time", si.Time).
		Msg("search done")
	return si, nil
}

// ChooseMove searches p with the engine options and returns the best move.
func (e *Engine) ChooseMove(ctx context.Context, p Position) (Move, error) {
	var si, err = e.Search(ctx, SearchParams{Positions: []Position{p}})
	if err != nil {
		return MoveEmpty, err
	}
	return si.MainLine[0], nil
}

func (e *Engine) currentSearchResult() SearchInfo {
	var root = e.tree.root()
	return SearchInfo{
		MainLine:   e.tree.mainLine(),
		Iterations: e.iterations,
		Visits:     root.visits,
		Confidence: root.mean(),
		Time:       time.Since(e.start),
	}
}

func (e *Engine) buildEvaluator() Evaluator {
	var evaluationService = e.evalBuilder()
	if ev, ok := evaluationService.(Evaluator); ok {
		return ev
	}
	panic(errors.New("bad eval builder"))
}
