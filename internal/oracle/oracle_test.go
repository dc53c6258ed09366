package oracle

import (
	"testing"

	"github.com/treechess/treechess/pkg/common"
)

var fens = []string{
	common.InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
	"r3k2r/8/8/8/8/8/5r2/R3K2R w KQ - 0 1",
}

func TestLegalMovesAgree(t *testing.T) {
	for _, fen := range fens {
		var extra, missing, err = Diff(fen)
		if err != nil {
			t.Fatal(err)
		}
		if len(extra) != 0 || len(missing) != 0 {
			t.Errorf("%v: extra %v missing %v", fen, extra, missing)
		}
	}
}

func TestPerftAgrees(t *testing.T) {
	for _, fen := range fens {
		var p, err = common.ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		want, err := Perft(fen, 2)
		if err != nil {
			t.Fatal(err)
		}
		if got := common.Perft(&p, 2); got != want {
			t.Errorf("%v: got %d want %d", fen, got, want)
		}
	}
}

func TestPerftAgreesAlongGames(t *testing.T) {
	// walk a few plies so positions with en passant and moved pieces are covered
	var p = common.NewInitialPosition()
	for ply := 0; ply < 12; ply++ {
		var fen = p.FEN()
		want, err := Perft(fen, 2)
		if err != nil {
			t.Fatal(err)
		}
		if got := common.Perft(&p, 2); got != want {
			t.Fatalf("%v: got %d want %d", fen, got, want)
		}
		var ml = p.LegalMoves()
		p.MakeMove(ml[(ply*7)%len(ml)])
	}
}

func TestBadFen(t *testing.T) {
	if _, err := LegalMoves("not a fen"); err == nil {
		t.Error("no error")
	}
}
