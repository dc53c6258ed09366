package play

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/treechess/treechess/pkg/common"
	"github.com/treechess/treechess/pkg/engine"
	heuristic "github.com/treechess/treechess/pkg/eval/heuristic"
	"github.com/treechess/treechess/pkg/uci"
)

func newTestEngine() *engine.Engine {
	var eng = engine.NewEngine(func() interface{} {
		return heuristic.NewEvaluationService(zerolog.Nop())
	})
	eng.Iterations = 100
	return eng
}

func TestHumanMoveThenReply(t *testing.T) {
	var g = NewGame(newTestEngine())
	var codes = g.MakeMove(common.SquareE2, common.SquareE4, common.NoPiece)
	if codes[common.SquareE4] != 6 || codes[common.SquareE2] != 0 {
		t.Fatal("pawn did not move")
	}
	codes, err := g.Respond(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if g.Position().Ply != 2 {
		t.Error(g.Position().Ply)
	}
	// a second reply without a new human move does nothing
	if _, err := g.Respond(context.Background()); err != nil || g.Position().Ply != 2 {
		t.Error(err, g.Position().Ply)
	}
	if codes != g.Codes() {
		t.Error("codes differ from position")
	}
}

func TestIllegalMoveGetsNoReply(t *testing.T) {
	var g = NewGame(newTestEngine())
	g.MakeMove(common.SquareE2, common.SquareE5, common.NoPiece)
	if _, err := g.Respond(context.Background()); err != nil {
		t.Fatal(err)
	}
	if g.Position().Ply != 0 {
		t.Error(g.Position().Ply)
	}
}

func TestMovesRefusedAfterWin(t *testing.T) {
	var p, err = common.ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatal(err)
	}
	var g = NewGameFrom(newTestEngine(), p)
	var before = g.Codes()
	if codes := g.MakeMove(common.SquareA2, common.SquareA3, common.NoPiece); codes != before {
		t.Error("move accepted after the game was won")
	}
	if g.Result() != "0-1" {
		t.Error(g.Result())
	}
}

func TestParseCommand(t *testing.T) {
	var start, end, promotion, err = parseCommand("a7a8q")
	if err != nil || start != common.SquareA7 || end != common.SquareA8 || promotion != common.Queen {
		t.Error(start, end, promotion, err)
	}
	if _, _, _, err := parseCommand("a7a8k"); !errors.Is(err, common.ErrInvalidPromotion) {
		t.Error(err)
	}
	if _, _, _, err := parseCommand("a7"); !errors.Is(err, common.ErrInvalidMove) {
		t.Error(err)
	}
}

func TestConsoleSession(t *testing.T) {
	var out bytes.Buffer
	var handler = &Handler{Game: NewGame(newTestEngine()), Out: &out}
	uci.RunCli(context.Background(), strings.NewReader("e2e5\ne2e4\nquit\ne7e5\n"), zerolog.Nop(), handler)
	var s = out.String()
	if !strings.Contains(s, "illegal move") {
		t.Error(s)
	}
	if handler.Game.Position().Ply != 2 {
		t.Error(handler.Game.Position().Ply)
	}
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	var p = common.NewInitialPosition()
	Print(&out, p.Encode())
	var lines = strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatal(len(lines))
	}
	if !strings.Contains(lines[0], blackKing) || !strings.Contains(lines[7], whiteQueen) {
		t.Error(out.String())
	}
	if strings.Index(lines[7], whiteQueen) > strings.Index(lines[7], whiteKing) {
		t.Error("queen should be left of the king")
	}
}
