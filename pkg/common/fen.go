package common

import (
	"fmt"
	"strconv"
	s "strings"
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN reads standard Forsyth-Edwards notation. Piece states are derived
// from the castling field, the en passant field and pawn ranks.
func ParseFEN(fen string) (Position, error) {
	var tokens = s.Fields(fen)
	if len(tokens) < 4 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}

	var rows = s.Split(tokens[0], "/")
	if len(rows) != 8 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}
	var board [64]Tile
	for i, row := range rows {
		var rank = Rank8 - i
		var col = 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			var t, ok = parsePieceChar(byte(ch))
			if !ok || col > 7 {
				return Position{}, fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
			}
			board[MakeSquare(FileA-col, rank)] = t
			col++
		}
		if col != 8 {
			return Position{}, fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
		}
	}

	var side Color
	switch tokens[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}

	var castling = tokens[2]
	var hasRights = [2]bool{
		s.ContainsAny(castling, "KQ"),
		s.ContainsAny(castling, "kq"),
	}
	var rookRights = map[Square]bool{
		SquareH1: s.Contains(castling, "K"),
		SquareA1: s.Contains(castling, "Q"),
		SquareH8: s.Contains(castling, "k"),
		SquareA8: s.Contains(castling, "q"),
	}

	var p Position
	var kings [2]int
	for i, t := range board {
		if t.IsEmpty() {
			continue
		}
		var sq = Square(i)
		var c = t.Color()
		switch t.Piece() {
		case Pawn:
			if Rank(sq) != pawnRank(c) {
				t = t.WithState(StateMoved)
			}
		case King:
			kings[c]++
			if !hasRights[c] || sq != MakeSquare(FileE, homeRank(c)) {
				t = t.WithState(StateMoved)
			}
		case Rook:
			if !rookRights[sq] || Rank(sq) != homeRank(c) {
				t = t.WithState(StateMoved)
			}
		}
		p.put(sq, t)
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return Position{}, fmt.Errorf("%w: want one king per side: %q", ErrInvalidFEN, fen)
	}

	if tokens[3] != "-" {
		ep, err := ParseSquare(tokens[3])
		if err != nil {
			return Position{}, fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
		}
		pawnSq, ok := ep.Step(0, -side.Dir())
		if !ok || !p.Board[pawnSq].Is(side.Opposite(), Pawn) {
			return Position{}, fmt.Errorf("%w: no pawn behind en passant square: %q", ErrInvalidFEN, fen)
		}
		p.Board[pawnSq] = p.Board[pawnSq].WithState(StateJustDoubleMoved)
	}

	var fullMove = 1
	if len(tokens) > 5 {
		if n, err := strconv.Atoi(tokens[5]); err == nil && n > 0 {
			fullMove = n
		}
	}
	p.Ply = 2*(fullMove-1) + int(side)
	return p, nil
}

func parsePieceChar(ch byte) (Tile, bool) {
	var color = White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch -= 'a' - 'A'
	}
	var i = s.IndexByte(pieceChars, ch)
	if i <= 0 {
		return EmptyTile, false
	}
	return NewTile(color, Piece(i), StateNone), true
}

// FEN writes the position in standard notation. Castling rights are read from
// unmoved kings and corner rooks; the halfmove clock is always 0.
func (p *Position) FEN() string {
	var sb s.Builder

	for rank := Rank8; rank >= Rank1; rank-- {
		var emptyCount = 0
		for file := FileA; file >= FileH; file-- {
			var t = p.Board[MakeSquare(file, rank)]
			if t.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(t.Char())
		}
		if emptyCount != 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank != Rank1 {
			sb.WriteString("/")
		}
	}

	var side = p.SideToMove()
	if side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	var castling = ""
	for _, c := range [...]Color{White, Black} {
		var king = MakeSquare(FileE, homeRank(c))
		if !p.Board[king].Is(c, King) || p.Board[king].State() != StateNone {
			continue
		}
		var k, q = "K", "Q"
		if c == Black {
			k, q = "k", "q"
		}
		var rook = p.Board[MakeSquare(FileH, homeRank(c))]
		if rook.Is(c, Rook) && rook.State() == StateNone {
			castling += k
		}
		rook = p.Board[MakeSquare(FileA, homeRank(c))]
		if rook.Is(c, Rook) && rook.State() == StateNone {
			castling += q
		}
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)
	sb.WriteString(" ")

	var ep = "-"
	var mover = side.Opposite()
	for file := FileH; file <= FileA; file++ {
		var sq = MakeSquare(file, doublePushRank(mover))
		var t = p.Board[sq]
		if t.Is(mover, Pawn) && t.State() == StateJustDoubleMoved {
			var target, _ = sq.Step(0, -mover.Dir())
			ep = target.String()
			break
		}
	}
	sb.WriteString(ep)

	sb.WriteString(" 0 ")
	sb.WriteString(strconv.Itoa(p.Ply/2 + 1))
	return sb.String()
}
