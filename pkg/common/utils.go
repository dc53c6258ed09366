package common

func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

func AbsDelta(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

func homeRank(side Color) int {
	if side == White {
		return Rank1
	}
	return Rank8
}

func pawnRank(side Color) int {
	if side == White {
		return Rank2
	}
	return Rank7
}

func lastRank(side Color) int {
	if side == White {
		return Rank8
	}
	return Rank1
}

// doublePushRank is where a pawn of this side lands after a two-rank advance.
func doublePushRank(side Color) int {
	if side == White {
		return Rank4
	}
	return Rank5
}

func isPromotionSelector(p Piece) bool {
	switch p {
	case Rook, Knight, Bishop, Queen:
		return true
	}
	return false
}

// ParsePromotion validates an external promotion selector (0 for none).
func ParsePromotion(v int) (Piece, error) {
	if v == 0 {
		return NoPiece, nil
	}
	if v > 0 && v <= int(Pawn) && isPromotionSelector(Piece(v)) {
		return Piece(v), nil
	}
	return NoPiece, errInvalidPromotion(Piece(v))
}
