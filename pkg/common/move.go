package common

import (
	"fmt"
	"strings"
)

// AuxTile is an extra board overwrite carried by a move
// (en passant victim, castling rook).
type AuxTile struct {
	Square Square
	Tile   Tile
}

type Move struct {
	From      Square
	To        Square
	Promotion Piece
	extra     [2]AuxTile
	nExtra    uint8
}

var MoveEmpty = Move{From: SquareNone, To: SquareNone}

func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

func (m Move) WithPromotion(p Piece) Move {
	m.Promotion = p
	return m
}

func (m Move) WithExtra(sq Square, t Tile) Move {
	m.extra[m.nExtra] = AuxTile{Square: sq, Tile: t}
	m.nExtra++
	return m
}

func (m *Move) Extra() []AuxTile {
	return m.extra[:m.nExtra]
}

func (m Move) IsEmpty() bool {
	return m.From == SquareNone
}

const promotionChars = " rnb q"

func (m Move) String() string {
	if m.IsEmpty() {
		return "0000"
	}
	var s = m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += string(promotionChars[m.Promotion])
	}
	return s
}

func errInvalidPromotion(p Piece) error {
	return fmt.Errorf("%w: %d", ErrInvalidPromotion, p)
}

func parsePromotionChar(ch byte) (Piece, bool) {
	var i = strings.IndexByte(promotionChars, ch)
	if i <= 0 || ch == ' ' {
		return NoPiece, false
	}
	return Piece(i), true
}

// ParseMoveLAN resolves long algebraic text (e2e4, e7e8q) against the legal moves of p.
func ParseMoveLAN(p *Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	var promotion = NoPiece
	if len(s) == 5 {
		var ok bool
		promotion, ok = parsePromotionChar(s[4])
		if !ok {
			return MoveEmpty, fmt.Errorf("%w: %q", ErrInvalidMove, s)
		}
	}
	for _, m := range p.MovesFrom(from) {
		if m.To == to && m.Promotion == promotion {
			return m, nil
		}
	}
	return MoveEmpty, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}
