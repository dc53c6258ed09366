package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	. "github.com/treechess/treechess/pkg/common"
	heuristic "github.com/treechess/treechess/pkg/eval/heuristic"
)

func newTestEngine(iterations int) *Engine {
	var e = NewEngine(func() interface{} {
		return heuristic.NewEvaluationService(zerolog.Nop())
	})
	e.Iterations = iterations
	return e
}

func TestChooseMoveIsLegal(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
	}
	var e = newTestEngine(200)
	for _, fen := range fens {
		var p = mustFEN(t, fen)
		var m, err = e.ChooseMove(context.Background(), p)
		if err != nil {
			t.Fatal(fen, err)
		}
		var found = false
		for _, legal := range p.LegalMoves() {
			if legal == m {
				found = true
			}
		}
		if !found {
			t.Errorf("%v: %v is not legal", fen, m)
		}
	}
}

func TestSearchInfo(t *testing.T) {
	var e = newTestEngine(500)
	var p = NewInitialPosition()
	var si, err = e.Search(context.Background(), SearchParams{Positions: []Position{p}})
	if err != nil {
		t.Fatal(err)
	}
	if si.Iterations != 500 || si.Visits != 501 {
		t.Error(si.Iterations, si.Visits)
	}
	if len(si.MainLine) == 0 {
		t.Fatal("empty main line")
	}
	var q = p
	for _, m := range si.MainLine {
		if !q.IsLegal(m) {
			t.Fatalf("main line move %v illegal", m)
		}
		q.MakeMove(m)
	}
	if si.Confidence <= -1 || si.Confidence >= 1 {
		t.Error(si.Confidence)
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	var p = mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	var params = SearchParams{Positions: []Position{p}}
	var first, err1 = newTestEngine(400).Search(context.Background(), params)
	var second, err2 = newTestEngine(400).Search(context.Background(), params)
	if err1 != nil || err2 != nil {
		t.Fatal(err1, err2)
	}
	if len(first.MainLine) != len(second.MainLine) || first.Confidence != second.Confidence {
		t.Fatal(first, second)
	}
	for i := range first.MainLine {
		if first.MainLine[i] != second.MainLine[i] {
			t.Error(i, first.MainLine[i], second.MainLine[i])
		}
	}
}

func TestTakesHangingQueen(t *testing.T) {
	var p = mustFEN(t, "q3k3/8/8/8/8/8/8/R3K3 w - - 0 20")
	var m, err = newTestEngine(1000).ChooseMove(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "a1a8" {
		t.Error(m)
	}
}

func TestOnlyMove(t *testing.T) {
	// the king has a single safe square
	var p = mustFEN(t, "k7/8/8/8/8/8/1r6/7K w - - 0 30")
	var ml = p.LegalMoves()
	if len(ml) != 1 {
		t.Fatal(ml)
	}
	var m, err = newTestEngine(100).ChooseMove(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if m != ml[0] {
		t.Error(m)
	}
}

func TestNoMoves(t *testing.T) {
	var p = mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	var _, err = newTestEngine(50).ChooseMove(context.Background(), p)
	if !errors.Is(err, ErrNoMoves) {
		t.Error(err)
	}
}

func TestSearchInvariantViolation(t *testing.T) {
	var p = NewInitialPosition()
	p.Status = 9
	var _, err = newTestEngine(10).Search(context.Background(), SearchParams{Positions: []Position{p}})
	if !errors.Is(err, ErrInvariantViolation) {
		t.Error(err)
	}
}

func TestSearchCancelled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var e = newTestEngine(1000)
	var p = NewInitialPosition()
	var si, err = e.Search(ctx, SearchParams{Positions: []Position{p}})
	if err != nil {
		t.Fatal(err)
	}
	if si.Iterations != 0 {
		t.Error(si.Iterations)
	}
	if len(si.MainLine) != 1 || !p.IsLegal(si.MainLine[0]) {
		t.Error(si.MainLine)
	}
}

func TestSearchLimits(t *testing.T) {
	var e = newTestEngine(1000)
	var progress = 0
	e.ProgressInterval = 10
	var si, err = e.Search(context.Background(), SearchParams{
		Positions: []Position{NewInitialPosition()},
		Limits:    LimitsType{Iterations: 50},
		Progress:  func(SearchInfo) { progress++ },
	})
	if err != nil {
		t.Fatal(err)
	}
	if si.Iterations != 50 {
		t.Error(si.Iterations)
	}
	if progress != 5 {
		t.Error(progress)
	}
}

func TestSearchMoveTime(t *testing.T) {
	var e = newTestEngine(1000)
	var si, err = e.Search(context.Background(), SearchParams{
		Positions: []Position{NewInitialPosition()},
		Limits:    LimitsType{MoveTime: 30},
	})
	if err != nil {
		t.Fatal(err)
	}
	if si.Time > 5*time.Second {
		t.Error(si.Time)
	}
	if len(si.MainLine) == 0 {
		t.Error("empty main line")
	}
}
