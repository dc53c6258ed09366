package arena

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/treechess/treechess/pkg/common"
)

func playGame(
	ctx context.Context,
	logger zerolog.Logger,
	engineA, engineB IEngine,
	tc TimeControl,
	info gameInfo,
) (gameResult, error) {

	logger.Debug().Int("game", info.gameNumber).Msg("started game")

	var limits, err = tc.limits()
	if err != nil {
		return gameResult{}, err
	}

	engineA.Clear()
	engineB.Clear()

	startingPos, err := common.ParseFEN(info.opening)
	if err != nil {
		return gameResult{}, err
	}

	var positions = []common.Position{startingPos}
	var moves []common.Move

	for {
		var curPosition = positions[len(positions)-1]
		var ml = curPosition.LegalMoves()

		if winner, ok := curPosition.Status.Winner(); ok {
			var points = gameResultWhiteWins
			if winner == common.Black {
				points = gameResultBlackWins
			}
			var comment = "no legal moves"
			if curPosition.InCheck() {
				comment = "checkmate"
			}
			return gameResult{gameInfo: info, moves: moves, comment: comment, result: points}, nil
		}
		if tc.MaxPlies > 0 && len(moves) >= tc.MaxPlies {
			return gameResult{gameInfo: info, moves: moves, comment: "ply limit", result: gameResultUnfinished}, nil
		}

		var eng IEngine
		if (curPosition.SideToMove() == common.White) == info.engineAIsWhite {
			eng = engineA
		} else {
			eng = engineB
		}
		searchResult, err := eng.Search(ctx, common.SearchParams{
			Positions: positions,
			Limits:    limits,
		})
		if err != nil {
			return gameResult{}, err
		}
		if len(searchResult.MainLine) == 0 {
			return gameResult{}, fmt.Errorf("game %v: empty main line", info.gameNumber)
		}
		var bestMove = searchResult.MainLine[0]
		if !containsMove(ml, bestMove) {
			return gameResult{}, fmt.Errorf("game %v: bad move %v", info.gameNumber, bestMove)
		}
		var child = curPosition
		child.MakeMove(bestMove)
		positions = append(positions, child)
		moves = append(moves, bestMove)
	}
}

func containsMove(ml []common.Move, move common.Move) bool {
	for i := range ml {
		if ml[i] == move {
			return true
		}
	}
	return false
}
