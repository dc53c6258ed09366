package eval

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/treechess/treechess/pkg/common"
)

func mustFEN(t *testing.T, fen string) common.Position {
	t.Helper()
	var p, err = common.ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestInitialPositionIsBalanced(t *testing.T) {
	var e = NewEvaluationService(zerolog.Nop())
	var p = common.NewInitialPosition()
	for _, side := range []common.Color{common.White, common.Black} {
		if score := e.Evaluate(&p, side); math.Abs(score) > 1e-9 {
			t.Error(side, score)
		}
	}
}

func TestEvaluateIsAntisymmetric(t *testing.T) {
	var e = NewEvaluationService(zerolog.Nop())
	var fens = []string{
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/8/8/4P3/4K3 w - - 0 20",
	}
	for _, fen := range fens {
		var p = mustFEN(t, fen)
		var w = e.Evaluate(&p, common.White)
		var b = e.Evaluate(&p, common.Black)
		if math.Abs(w+b) > 1e-9 {
			t.Errorf("%v: %v %v", fen, w, b)
		}
		if w <= -1 || w >= 1 {
			t.Errorf("%v: out of range %v", fen, w)
		}
	}
}

func TestExtraQueenFavoursOwner(t *testing.T) {
	var e = NewEvaluationService(zerolog.Nop())
	var p = mustFEN(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if score := e.Evaluate(&p, common.White); score <= 0 {
		t.Error(score)
	}
}

func TestClampIsLoggedAndCounted(t *testing.T) {
	var buf bytes.Buffer
	var e = NewEvaluationService(zerolog.New(&buf).Level(zerolog.DebugLevel))
	// bare king after the opening is worth nothing, so White's share is 100%
	var p = mustFEN(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 10")
	if score := e.Evaluate(&p, common.White); score != 0.99 {
		t.Error(score)
	}
	if score := e.Evaluate(&p, common.Black); score != -0.99 {
		t.Error(score)
	}
	if e.Clamps() != 2 {
		t.Error(e.Clamps())
	}
	if !strings.Contains(buf.String(), "evaluation clamped") {
		t.Error(buf.String())
	}
}

func TestZeroDenominator(t *testing.T) {
	var e = NewEvaluationService(zerolog.Nop())
	var p = mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 10")
	if score := e.Evaluate(&p, common.White); score != 0 {
		t.Error(score)
	}
	if e.Clamps() != 0 {
		t.Error(e.Clamps())
	}
}
