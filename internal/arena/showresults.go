package arena

import (
	"context"
	"math"
	"strconv"

	"github.com/treechess/treechess/internal/pgn"
)

type Stats struct {
	Games      int
	Wins       int
	Losses     int
	Unfinished int
	GameStatistics
}

func (a *Arena) showResults(
	ctx context.Context,
	gameResults <-chan gameResult,
) (Stats, error) {
	var stats Stats
	for gameResult := range gameResults {
		stats.Games++
		a.Logger.Info().
			Int("game", gameResult.gameInfo.gameNumber).
			Str("result", gameResultString(gameResult.result)).
			Str("comment", gameResult.comment).
			Int("plies", len(gameResult.moves)).
			Msg("finished game")
		if gameResult.result == gameResultUnfinished {
			stats.Unfinished++
		} else if gameResult.result == gameResultWhiteWins && gameResult.gameInfo.engineAIsWhite ||
			gameResult.result == gameResultBlackWins && !gameResult.gameInfo.engineAIsWhite {
			stats.Wins++
		} else {
			stats.Losses++
		}
		// unfinished games score as half a point
		stats.GameStatistics = computeStat(stats.Wins, stats.Losses, stats.Unfinished)
		a.Logger.Info().
			Int("wins", stats.Wins).
			Int("losses", stats.Losses).
			Int("unfinished", stats.Unfinished).
			Float64("score", stats.WinningFraction).
			Float64("elo", stats.EloDifference).
			Float64("los", stats.Los*100).
			Msg("score")
		if a.Pgn != nil {
			if err := a.writePgn(gameResult); err != nil {
				return stats, err
			}
		}
	}
	return stats, nil
}

func (a *Arena) writePgn(res gameResult) error {
	var white, black = a.NameA, a.NameB
	if !res.gameInfo.engineAIsWhite {
		white, black = black, white
	}
	var moves = make([]string, len(res.moves))
	for i, m := range res.moves {
		moves[i] = m.String()
	}
	return pgn.Write(a.Pgn, pgn.Game{
		Tags: []pgn.Tag{
			{Key: "Event", Value: "arena"},
			{Key: "Round", Value: strconv.Itoa(res.gameInfo.gameNumber)},
			{Key: "White", Value: white},
			{Key: "Black", Value: black},
			{Key: "Termination", Value: res.comment},
		},
		Fen:    res.gameInfo.opening,
		Moves:  moves,
		Result: gameResultString(res.result),
	})
}

type GameStatistics struct {
	WinningFraction float64
	EloDifference   float64
	Los             float64
}

//https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	var winning_fraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var elo_difference = -math.Log(1/winning_fraction-1) * 400 / math.Ln10
	var los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	return GameStatistics{
		WinningFraction: winning_fraction,
		EloDifference:   elo_difference,
		Los:             los,
	}
}

func gameResultString(v int) string {
	switch v {
	case gameResultWhiteWins:
		return pgn.GameResultWhiteWin
	case gameResultBlackWins:
		return pgn.GameResultBlackWin
	}
	return pgn.GameResultNone
}
