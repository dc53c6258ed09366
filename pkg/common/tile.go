package common

import "fmt"

// Tile packs piece (bits 0-2), color (bit 3) and piece state (bits 4-5).
// The zero value is an empty tile.
type Tile uint8

const EmptyTile Tile = 0

func NewTile(color Color, piece Piece, state PieceState) Tile {
	if piece == NoPiece {
		return EmptyTile
	}
	return Tile(uint8(piece) | uint8(color)<<3 | uint8(state)<<4)
}

func (t Tile) IsEmpty() bool {
	return t&7 == 0
}

func (t Tile) Piece() Piece {
	return Piece(t & 7)
}

func (t Tile) Color() Color {
	return Color(t >> 3 & 1)
}

func (t Tile) State() PieceState {
	return PieceState(t >> 4 & 3)
}

func (t Tile) WithState(state PieceState) Tile {
	return t&^0x30 | Tile(state)<<4
}

func (t Tile) Value() int {
	return t.Piece().Value()
}

func (t Tile) Is(color Color, piece Piece) bool {
	return !t.IsEmpty() && t.Color() == color && t.Piece() == piece
}

// Code is the display wire code: 0 empty, 1-6 White Rook/Knight/Bishop/King/Queen/Pawn,
// 7-12 Black in the same order. The piece state is not part of the code.
func (t Tile) Code() uint32 {
	if t.IsEmpty() {
		return 0
	}
	return uint32(t.Piece()) + 6*uint32(t.Color())
}

func TileFromCode(code uint32) (Tile, error) {
	switch {
	case code == 0:
		return EmptyTile, nil
	case code <= 6:
		return NewTile(White, Piece(code), StateNone), nil
	case code <= 12:
		return NewTile(Black, Piece(code-6), StateNone), nil
	}
	return EmptyTile, fmt.Errorf("%w: %d", ErrInvalidTileCode, code)
}

func (t Tile) String() string {
	if t.IsEmpty() {
		return "Empty"
	}
	return t.Color().String() + t.Piece().String()
}

const pieceChars = " RNBKQP"

func (t Tile) Char() byte {
	var ch = pieceChars[t.Piece()]
	if !t.IsEmpty() && t.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}
