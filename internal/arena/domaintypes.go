package arena

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/treechess/treechess/pkg/common"
)

const (
	gameResultUnfinished = iota
	gameResultWhiteWins
	gameResultBlackWins
)

type IEngine interface {
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) (common.SearchInfo, error)
}

type TimeControl struct {
	FixedIterations int
	FixedTime       time.Duration
	// MaxPlies adjudicates a game as unfinished once reached.
	MaxPlies int
}

var ErrBadTimeControl = errors.New("time control needs iterations or a move time")

func (tc TimeControl) limits() (common.LimitsType, error) {
	var limits common.LimitsType
	if tc.FixedIterations > 0 {
		limits.Iterations = tc.FixedIterations
	} else if tc.FixedTime >= time.Millisecond {
		limits.MoveTime = int(tc.FixedTime / time.Millisecond)
	} else {
		return limits, fmt.Errorf("%w: %+v", ErrBadTimeControl, tc)
	}
	return limits, nil
}

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []common.Move
	comment  string
	result   int
}
