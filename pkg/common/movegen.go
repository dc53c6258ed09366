package common

var promotionOrder = [...]Piece{Queen, Rook, Bishop, Knight}

// GeneratePseudoMoves appends the moves of the side to move ignoring king safety.
func (p *Position) GeneratePseudoMoves(ml []Move) []Move {
	var side = p.SideToMove()
	for i, t := range p.Board {
		if !t.IsEmpty() && t.Color() == side {
			ml = p.generateFrom(ml, Square(i))
		}
	}
	return ml
}

// PseudoMovesFrom returns the moves of the tile on sq ignoring king safety.
// The tile's own color is used, whoever is to move.
func (p *Position) PseudoMovesFrom(sq Square) []Move {
	if p.Board[sq].IsEmpty() {
		return nil
	}
	return p.generateFrom(nil, sq)
}

// Mobility counts pseudo-legal destinations of the tile on sq.
func (p *Position) Mobility(sq Square) int {
	var t = p.Board[sq]
	switch t.Piece() {
	case Rook:
		return p.rayCount(sq, t.Color(), rookDeltas[:])
	case Bishop:
		return p.rayCount(sq, t.Color(), bishopDeltas[:])
	case Queen:
		return p.rayCount(sq, t.Color(), queenDeltas[:])
	case NoPiece:
		return 0
	}
	return len(p.generateFrom(nil, sq))
}

func (p *Position) rayCount(from Square, side Color, deltas []delta) int {
	var n = 0
	for _, d := range deltas {
		var sq = from
		for {
			var ok bool
			sq, ok = sq.Step(d.dx, d.dy)
			if !ok {
				break
			}
			var t = p.Board[sq]
			if t.IsEmpty() {
				n++
				continue
			}
			if t.Color() != side {
				n++
			}
			break
		}
	}
	return n
}

// GenerateLegalMoves appends the legal moves of the side to move.
func (p *Position) GenerateLegalMoves(ml []Move) []Move {
	var start = len(ml)
	ml = p.GeneratePseudoMoves(ml)
	return p.filterLegal(ml, start)
}

// LegalMoves returns the legal moves of the side to move. A side without
// legal moves has lost: Status becomes Won for the opponent.
func (p *Position) LegalMoves() []Move {
	var ml = p.GenerateLegalMoves(make([]Move, 0, 64))
	if len(ml) == 0 && p.Status == Ongoing {
		p.Status = Won(p.SideToMove().Opposite())
	}
	return ml
}

// MovesFrom returns the legal moves of the side to move starting on sq.
func (p *Position) MovesFrom(sq Square) []Move {
	if !sq.IsValid() {
		return nil
	}
	var t = p.Board[sq]
	if t.IsEmpty() || t.Color() != p.SideToMove() {
		return nil
	}
	var ml = p.generateFrom(nil, sq)
	return p.filterLegal(ml, 0)
}

func (p *Position) IsLegal(m Move) bool {
	var side = p.SideToMove()
	var child = *p
	child.MakeMove(m)
	return child.IsSafe(child.Kings[side], side)
}

func (p *Position) filterLegal(ml []Move, start int) []Move {
	var n = start
	for _, m := range ml[start:] {
		if p.IsLegal(m) {
			ml[n] = m
			n++
		}
	}
	return ml[:n]
}

func (p *Position) generateFrom(ml []Move, from Square) []Move {
	var t = p.Board[from]
	switch t.Piece() {
	case Pawn:
		return p.pawnMoves(ml, from, t)
	case Knight:
		return p.stepMoves(ml, from, t.Color(), knightDeltas[:])
	case Bishop:
		return p.rayMoves(ml, from, t.Color(), bishopDeltas[:])
	case Rook:
		return p.rayMoves(ml, from, t.Color(), rookDeltas[:])
	case Queen:
		return p.rayMoves(ml, from, t.Color(), queenDeltas[:])
	case King:
		ml = p.stepMoves(ml, from, t.Color(), kingDeltas[:])
		return p.castlingMoves(ml, from, t)
	case NoPiece:
		return ml
	default:
		panic("bad piece")
	}
}

func (p *Position) stepMoves(ml []Move, from Square, side Color, deltas []delta) []Move {
	for _, d := range deltas {
		var to, ok = from.Step(d.dx, d.dy)
		if !ok {
			continue
		}
		var t = p.Board[to]
		if t.IsEmpty() || t.Color() != side {
			ml = append(ml, NewMove(from, to))
		}
	}
	return ml
}

func (p *Position) rayMoves(ml []Move, from Square, side Color, deltas []delta) []Move {
	for _, d := range deltas {
		var to = from
		for {
			var ok bool
			to, ok = to.Step(d.dx, d.dy)
			if !ok {
				break
			}
			var t = p.Board[to]
			if t.IsEmpty() {
				ml = append(ml, NewMove(from, to))
				continue
			}
			if t.Color() != side {
				ml = append(ml, NewMove(from, to))
			}
			break
		}
	}
	return ml
}

func (p *Position) pawnMoves(ml []Move, from Square, pawn Tile) []Move {
	var side = pawn.Color()
	var dir = side.Dir()

	if to, ok := from.Step(0, dir); ok && p.Board[to].IsEmpty() {
		ml = appendPawnMove(ml, NewMove(from, to), side)
		if pawn.State() == StateNone {
			if to2, ok := to.Step(0, dir); ok && p.Board[to2].IsEmpty() {
				ml = append(ml, NewMove(from, to2))
			}
		}
	}

	for _, dx := range pawnCaptureDxs {
		var to, ok = from.Step(dx, dir)
		if !ok {
			continue
		}
		if t := p.Board[to]; !t.IsEmpty() && t.Color() != side {
			ml = appendPawnMove(ml, NewMove(from, to), side)
			continue
		}
		var victimSq, _ = from.Step(dx, 0)
		var victim = p.Board[victimSq]
		if victim.Is(side.Opposite(), Pawn) && victim.State() == StateJustDoubleMoved &&
			p.Board[to].IsEmpty() {
			ml = append(ml, NewMove(from, to).WithExtra(victimSq, EmptyTile))
		}
	}
	return ml
}

func appendPawnMove(ml []Move, m Move, side Color) []Move {
	if Rank(m.To) != lastRank(side) {
		return append(ml, m)
	}
	for _, piece := range promotionOrder {
		ml = append(ml, m.WithPromotion(piece))
	}
	return ml
}

// castlingMoves adds castling with either home-rank corner rook.
// Rook on FileH: king to FileG, rook to FileF. Rook on FileA: king to FileC, rook to FileD.
func (p *Position) castlingMoves(ml []Move, from Square, king Tile) []Move {
	var side = king.Color()
	var rank = homeRank(side)
	if king.State() != StateNone || from != MakeSquare(FileE, rank) {
		return ml
	}
	if !p.IsSafe(from, side) {
		return ml
	}
	ml = p.tryCastle(ml, from, side, FileH, FileG, FileF)
	ml = p.tryCastle(ml, from, side, FileA, FileC, FileD)
	return ml
}

func (p *Position) tryCastle(ml []Move, from Square, side Color, rookFile, kingTo, rookTo int) []Move {
	var rank = homeRank(side)
	var rookSq = MakeSquare(rookFile, rank)
	var rook = p.Board[rookSq]
	if !rook.Is(side, Rook) || rook.State() != StateNone {
		return ml
	}
	var step = 1
	if rookFile < File(from) {
		step = -1
	}
	for file := File(from) + step; file != rookFile; file += step {
		if !p.Board[MakeSquare(file, rank)].IsEmpty() {
			return ml
		}
	}
	for file := File(from) + step; file != kingTo+step; file += step {
		if !p.IsSafe(MakeSquare(file, rank), side) {
			return ml
		}
	}
	var m = NewMove(from, MakeSquare(kingTo, rank)).
		WithExtra(rookSq, EmptyTile).
		WithExtra(MakeSquare(rookTo, rank), NewTile(side, Rook, StateMoved))
	return append(ml, m)
}
