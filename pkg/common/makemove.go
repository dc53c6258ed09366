package common

// MakeMove applies a pseudo-legal move of the side to move.
// It panics if a pawn reaches the last rank with an invalid promotion selector.
func (p *Position) MakeMove(m Move) {
	var side = p.SideToMove()
	var other = side.Opposite()

	p.Ply++
	p.expireDoubleMoves(side)

	var moving = p.Board[m.From]
	var captured = p.Board[m.To]
	var kingCaptured = false
	if !captured.IsEmpty() {
		p.Material[captured.Color()] -= captured.Value()
		if captured.Piece() == King {
			kingCaptured = true
			p.Kings[captured.Color()] = SquareNone
		}
	}

	switch moving.Piece() {
	case Pawn:
		if Rank(m.To) == lastRank(side) {
			if !isPromotionSelector(m.Promotion) {
				panic(errInvalidPromotion(m.Promotion))
			}
			moving = NewTile(side, m.Promotion, StateMoved)
			p.Material[side] += m.Promotion.Value() - 1
		} else if AbsDelta(Rank(m.From), Rank(m.To)) == 2 {
			moving = moving.WithState(StateJustDoubleMoved)
		} else {
			moving = moving.WithState(StateMoved)
		}
	case King:
		p.Kings[side] = m.To
		moving = moving.WithState(StateMoved)
	default:
		moving = moving.WithState(StateMoved)
	}

	p.Board[m.From] = EmptyTile
	p.Board[m.To] = moving

	for _, aux := range m.Extra() {
		var old = p.Board[aux.Square]
		if !old.IsEmpty() {
			p.Material[old.Color()] -= old.Value()
		}
		p.Board[aux.Square] = aux.Tile
		if !aux.Tile.IsEmpty() {
			p.Material[side] += aux.Tile.Value()
		}
	}

	if kingCaptured {
		p.Status = Won(side)
		p.Material[side] = 1
		p.Material[other] = 0
	}
}

// expireDoubleMoves clears the en passant marker of side's pawns. It runs when
// side moves again, so the marker lives for exactly one opponent ply.
func (p *Position) expireDoubleMoves(side Color) {
	var rank = doublePushRank(side)
	for file := FileH; file <= FileA; file++ {
		var sq = MakeSquare(file, rank)
		var t = p.Board[sq]
		if t.Is(side, Pawn) && t.State() == StateJustDoubleMoved {
			p.Board[sq] = t.WithState(StateMoved)
		}
	}
}

// Update applies the legal move start-end of the side to move and returns the
// new position. For promoting moves the selector picks the piece. An unmatched
// or unsafe request returns the position unchanged.
func (p *Position) Update(start, end Square, promotion Piece) Position {
	if promotion != NoPiece && !isPromotionSelector(promotion) {
		panic(errInvalidPromotion(promotion))
	}
	if !start.IsValid() || !end.IsValid() {
		return *p
	}
	var side = p.SideToMove()
	for _, m := range p.MovesFrom(start) {
		if m.To != end {
			continue
		}
		if m.Promotion != NoPiece && m.Promotion != promotion {
			continue
		}
		var child = *p
		child.MakeMove(m)
		if !child.IsSafe(child.Kings[side], side) {
			return *p
		}
		return child
	}
	return *p
}
