package common

import (
	"fmt"
	"strings"
)

type Position struct {
	Board    [64]Tile
	Ply      int
	Kings    [2]Square
	Material [2]int
	Status   Status
}

var backRank = [8]Piece{Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook}

func NewInitialPosition() Position {
	var p Position
	for file, piece := range backRank {
		p.put(MakeSquare(file, Rank1), NewTile(White, piece, StateNone))
		p.put(MakeSquare(file, Rank2), NewTile(White, Pawn, StateNone))
		p.put(MakeSquare(file, Rank7), NewTile(Black, Pawn, StateNone))
		p.put(MakeSquare(file, Rank8), NewTile(Black, piece, StateNone))
	}
	return p
}

// put places t on an empty square and keeps kings and material in step.
func (p *Position) put(sq Square, t Tile) {
	p.Board[sq] = t
	if t.IsEmpty() {
		return
	}
	p.Material[t.Color()] += t.Value()
	if t.Piece() == King {
		p.Kings[t.Color()] = sq
	}
}

func (p *Position) SideToMove() Color {
	return Color(p.Ply & 1)
}

func (p *Position) InCheck() bool {
	var side = p.SideToMove()
	return !p.IsSafe(p.Kings[side], side)
}

// Encode returns the board as display tile codes.
func (p *Position) Encode() [64]uint32 {
	var codes [64]uint32
	for sq, t := range p.Board {
		codes[sq] = t.Code()
	}
	return codes
}

// FromCodes builds a White-to-move position from display tile codes.
// Piece states are inferred: pawns off their home rank count as moved,
// kings and rooks keep castling rights only on their home squares.
func FromCodes(codes [64]uint32) (Position, error) {
	var p Position
	var kings [2]int
	for i, code := range codes {
		var sq = Square(i)
		t, err := TileFromCode(code)
		if err != nil {
			return Position{}, err
		}
		if t.IsEmpty() {
			continue
		}
		var side = t.Color()
		switch t.Piece() {
		case Pawn:
			if Rank(sq) != pawnRank(side) {
				t = t.WithState(StateMoved)
			}
		case King:
			kings[side]++
			if sq != MakeSquare(FileE, homeRank(side)) {
				t = t.WithState(StateMoved)
			}
		case Rook:
			if Rank(sq) != homeRank(side) || (File(sq) != FileH && File(sq) != FileA) {
				t = t.WithState(StateMoved)
			}
		}
		p.put(sq, t)
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return Position{}, fmt.Errorf("%w: want one king per side, got %d white and %d black",
			ErrInvalidPosition, kings[White], kings[Black])
	}
	return p, nil
}

// Validate recomputes kings and material from the board and compares them
// with the incrementally maintained values.
func (p *Position) Validate() error {
	var material [2]int
	var kings [2]int
	for i, t := range p.Board {
		if t.IsEmpty() {
			continue
		}
		material[t.Color()] += t.Value()
		if t.Piece() == King {
			kings[t.Color()]++
			if p.Kings[t.Color()] != Square(i) {
				return fmt.Errorf("%w: %v king on %v, recorded %v",
					ErrInvalidPosition, t.Color(), Square(i), p.Kings[t.Color()])
			}
		}
	}
	if p.Status != Ongoing {
		return nil
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("%w: want one king per side", ErrInvalidPosition)
	}
	if material != p.Material {
		return fmt.Errorf("%w: material %v, recorded %v", ErrInvalidPosition, material, p.Material)
	}
	return nil
}

func (p *Position) String() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		for file := FileA; file >= FileH; file-- {
			var t = p.Board[MakeSquare(file, rank)]
			if t.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(t.Char())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
