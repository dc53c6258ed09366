package engine

import (
	"context"
	"time"

	. "github.com/treechess/treechess/pkg/common"
)

type simpleTimeManager struct {
	ctx        context.Context
	start      time.Time
	iterations int
	hardLimit  time.Duration
	cancel     context.CancelFunc
}

// newSimpleTimeManager stops the search on ctx cancellation, on the move time
// deadline or once the iteration budget is spent. A move time or clock without
// an explicit iteration count replaces the default budget.
func newSimpleTimeManager(ctx context.Context, start time.Time,
	limits LimitsType, side Color, defaultIterations int) *simpleTimeManager {

	var tm = &simpleTimeManager{
		start:      start,
		iterations: defaultIterations,
	}
	if limits.Iterations > 0 {
		tm.iterations = limits.Iterations
	}

	if limits.MoveTime > 0 {
		tm.hardLimit = time.Duration(limits.MoveTime) * time.Millisecond
	} else if limits.WhiteTime > 0 || limits.BlackTime > 0 {
		var main, inc time.Duration
		if side == White {
			main = time.Duration(limits.WhiteTime) * time.Millisecond
			inc = time.Duration(limits.WhiteIncrement) * time.Millisecond
		} else {
			main = time.Duration(limits.BlackTime) * time.Millisecond
			inc = time.Duration(limits.BlackIncrement) * time.Millisecond
		}
		tm.hardLimit = calcLimit(main, inc, limits.MovesToGo)
	}

	if limits.Infinite || tm.hardLimit != 0 && limits.Iterations == 0 {
		tm.iterations = 0
	}

	var cancel context.CancelFunc
	if tm.hardLimit != 0 {
		ctx, cancel = context.WithDeadline(ctx, start.Add(tm.hardLimit))
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	tm.ctx = ctx
	tm.cancel = cancel
	return tm
}

func (tm *simpleTimeManager) IsDone() bool {
	select {
	case <-tm.ctx.Done():
		return true
	default:
		return false
	}
}

func (tm *simpleTimeManager) OnIterationsChanged(iterations int) {
	if tm.iterations > 0 && iterations >= tm.iterations {
		tm.cancel()
	}
}

func (tm *simpleTimeManager) Close() {
	tm.cancel()
}

// calcLimit returns the deadline for one move from the remaining clock.
func calcLimit(main, inc time.Duration, moves int) time.Duration {
	const (
		DefaultMovesToGo = 40
		MoveOverhead     = 300 * time.Millisecond
		MinTimeLimit     = 1 * time.Millisecond
	)

	main -= MoveOverhead
	if main < MinTimeLimit {
		main = MinTimeLimit
	}

	var limit time.Duration
	if moves == 0 {
		limit = main/35 + inc/2
	} else {
		moves = Min(moves, DefaultMovesToGo)
		limit = main/time.Duration(moves+1) + inc
	}
	return limitDuration(limit, MinTimeLimit, main)
}

func limitDuration(v, min, max time.Duration) time.Duration {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
