package arena

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/treechess/treechess/internal/evalbuilder"
	"github.com/treechess/treechess/pkg/engine"
)

func newTestEngine(key string) func() IEngine {
	return func() IEngine {
		return engine.NewEngine(evalbuilder.Get(key, zerolog.Nop()))
	}
}

func TestArenaRun(t *testing.T) {
	var pgnOut = &bytes.Buffer{}
	var a = &Arena{
		Concurrency: 2,
		TimeControl: TimeControl{FixedIterations: 50, MaxPlies: 12},
		Openings:    DefaultOpenings()[:2],
		NameA:       "heuristic",
		NameB:       "material",
		NewEngineA:  newTestEngine("heuristic"),
		NewEngineB:  newTestEngine("material"),
		Logger:      zerolog.Nop(),
		Pgn:         pgnOut,
	}
	var stats, err = a.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Games != 4 {
		t.Errorf("played %d games", stats.Games)
	}
	if stats.Wins+stats.Losses+stats.Unfinished != stats.Games {
		t.Error(stats)
	}
	var text = pgnOut.String()
	if n := strings.Count(text, "[Event \"arena\"]"); n != 4 {
		t.Errorf("pgn has %d games", n)
	}
}

func TestArenaRejectsBadOpening(t *testing.T) {
	var a = &Arena{
		Concurrency: 1,
		TimeControl: TimeControl{FixedIterations: 10, MaxPlies: 2},
		Openings:    []string{"not a fen"},
		NewEngineA:  newTestEngine("material"),
		NewEngineB:  newTestEngine("material"),
		Logger:      zerolog.Nop(),
	}
	if _, err := a.Run(context.Background()); err == nil {
		t.Error("expected error")
	}
}

func TestDefaultOpenings(t *testing.T) {
	var openings = DefaultOpenings()
	if len(openings) < 2 {
		t.Fatal(openings)
	}
	for _, fen := range openings {
		if strings.HasPrefix(fen, "//") {
			t.Error(fen)
		}
	}
}

func TestPlayGameMate(t *testing.T) {
	// white mates with Rh8
	var info = gameInfo{opening: "k7/8/1K6/8/8/8/8/7R w - - 0 1", engineAIsWhite: true, gameNumber: 1}
	var eng = newTestEngine("material")()
	var res, err = playGame(context.Background(), zerolog.Nop(), eng, eng,
		TimeControl{FixedIterations: 400, MaxPlies: 40}, info)
	if err != nil {
		t.Fatal(err)
	}
	if res.result == gameResultUnfinished {
		t.Skip("no mate within the ply limit")
	}
	if res.result != gameResultWhiteWins {
		t.Errorf("result %v after %v", res.result, res.moves)
	}
}

func TestComputeStat(t *testing.T) {
	var s = computeStat(3, 1, 0)
	if s.WinningFraction != 0.75 {
		t.Error(s.WinningFraction)
	}
	if s.EloDifference <= 0 || s.Los <= 0.5 {
		t.Error(s)
	}
}

func TestBadTimeControl(t *testing.T) {
	var a = &Arena{
		Concurrency: 1,
		TimeControl: TimeControl{MaxPlies: 10},
		Openings:    DefaultOpenings()[:1],
		NewEngineA:  newTestEngine("material"),
		NewEngineB:  newTestEngine("material"),
		Logger:      zerolog.Nop(),
	}
	if _, err := a.Run(context.Background()); !errors.Is(err, ErrBadTimeControl) {
		t.Error(err)
	}

	var info = gameInfo{opening: DefaultOpenings()[0], engineAIsWhite: true, gameNumber: 1}
	var eng = newTestEngine("material")()
	if _, err := playGame(context.Background(), zerolog.Nop(), eng, eng, TimeControl{}, info); !errors.Is(err, ErrBadTimeControl) {
		t.Error(err)
	}
}

func TestTimeControlLimits(t *testing.T) {
	var limits, err = TimeControl{FixedIterations: 30, FixedTime: time.Second}.limits()
	if err != nil || limits.Iterations != 30 || limits.MoveTime != 0 {
		t.Error(limits, err)
	}
	limits, err = TimeControl{FixedTime: 250 * time.Millisecond}.limits()
	if err != nil || limits.MoveTime != 250 || limits.Iterations != 0 {
		t.Error(limits, err)
	}
}
