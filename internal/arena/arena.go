package arena

import (
	"context"
	"io"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Arena plays engine A against engine B over a list of opening FENs.
type Arena struct {
	Concurrency int
	TimeControl TimeControl
	Openings    []string
	NameA       string
	NameB       string
	NewEngineA  func() IEngine
	NewEngineB  func() IEngine
	Logger      zerolog.Logger
	// Pgn receives every finished game when set.
	Pgn io.Writer
}

func (a *Arena) Run(ctx context.Context) (Stats, error) {
	if _, err := a.TimeControl.limits(); err != nil {
		return Stats{}, err
	}

	a.Logger.Info().Msg("arena started")
	defer a.Logger.Info().Msg("arena finished")

	a.Logger.Info().
		Int("NumCPU", runtime.NumCPU()).
		Int("GOMAXPROCS", runtime.GOMAXPROCS(0)).
		Int("gameConcurrency", a.Concurrency).
		Interface("timeControl", a.TimeControl).
		Msg("settings")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stats Stats

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, a.Openings, gameInfos)
	})

	g.Go(func() error {
		var err error
		stats, err = a.showResults(ctx, gameResults)
		return err
	})

	var wg = &sync.WaitGroup{}

	var concurrency = a.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return stats, err
}

func (a *Arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = a.NewEngineA()
	var engineB = a.NewEngineB()
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, a.Logger, engineA, engineB, a.TimeControl, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
