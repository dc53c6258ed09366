package common

type delta struct {
	dx, dy int
}

var (
	knightDeltas   = [...]delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas     = [...]delta{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	bishopDeltas   = [...]delta{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	rookDeltas     = [...]delta{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	queenDeltas    = kingDeltas
	pawnCaptureDxs = [...]int{-1, 1}
)

// IsSafe reports whether no enemy of side attacks sq.
// A captured king (SquareNone) is never safe.
func (p *Position) IsSafe(sq Square, side Color) bool {
	if !sq.IsValid() {
		return false
	}
	var enemy = side.Opposite()

	for _, d := range knightDeltas {
		if to, ok := sq.Step(d.dx, d.dy); ok && p.Board[to].Is(enemy, Knight) {
			return false
		}
	}

	for _, d := range kingDeltas {
		if to, ok := sq.Step(d.dx, d.dy); ok && p.Board[to].Is(enemy, King) {
			return false
		}
	}

	for _, dx := range pawnCaptureDxs {
		if from, ok := sq.Step(dx, side.Dir()); ok && p.Board[from].Is(enemy, Pawn) {
			return false
		}
	}

	for _, d := range bishopDeltas {
		var t = p.firstOnRay(sq, d)
		if t.Is(enemy, Bishop) || t.Is(enemy, Queen) {
			return false
		}
	}

	for _, d := range rookDeltas {
		var t = p.firstOnRay(sq, d)
		if t.Is(enemy, Rook) || t.Is(enemy, Queen) {
			return false
		}
	}

	return true
}

// firstOnRay returns the first occupied tile from sq in direction d, or EmptyTile.
func (p *Position) firstOnRay(sq Square, d delta) Tile {
	for {
		var ok bool
		sq, ok = sq.Step(d.dx, d.dy)
		if !ok {
			return EmptyTile
		}
		if t := p.Board[sq]; !t.IsEmpty() {
			return t
		}
	}
}
