package common

import (
	"errors"
	"time"
)

var (
	ErrInvalidPromotion = errors.New("invalid promotion selector")
	ErrInvalidTileCode  = errors.New("invalid tile code")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrInvalidFEN       = errors.New("invalid fen")
	ErrInvalidMove      = errors.New("invalid move")
)

type Color int8

const (
	White Color = iota
	Black
)

// Dir is the rank direction pawns of this color advance in.
func (c Color) Dir() int {
	return 1 - 2*int(c)
}

func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	panic("bad color")
}

// Piece values double as promotion selectors: 1 Rook, 2 Knight, 3 Bishop, 5 Queen.
type Piece int8

const (
	NoPiece Piece = iota
	Rook
	Knight
	Bishop
	King
	Queen
	Pawn
)

var pieceValues = [...]int{NoPiece: 0, Rook: 5, Knight: 3, Bishop: 3, King: 3, Queen: 9, Pawn: 1}

func (p Piece) Value() int {
	return pieceValues[p]
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return "None"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Pawn:
		return "Pawn"
	}
	panic("bad piece")
}

type PieceState int8

const (
	StateNone PieceState = iota
	StateMoved
	StateJustDoubleMoved
)

type Status uint8

const (
	Ongoing Status = iota
	WhiteWon
	BlackWon
)

func Won(winner Color) Status {
	return WhiteWon + Status(winner)
}

func (s Status) Winner() (Color, bool) {
	switch s {
	case WhiteWon:
		return White, true
	case BlackWon:
		return Black, true
	}
	return White, false
}

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case WhiteWon:
		return "Won(White)"
	case BlackWon:
		return "Won(Black)"
	}
	return "Unknown"
}

const MaxMoves = 256

type LimitsType struct {
	Infinite       bool
	Iterations     int
	MoveTime       int
	WhiteTime      int
	BlackTime      int
	WhiteIncrement int
	BlackIncrement int
	MovesToGo      int
}

type SearchParams struct {
	Positions []Position
	Limits    LimitsType
	Progress  func(si SearchInfo)
}

type SearchInfo struct {
	MainLine   []Move
	Iterations int
	Visits     int
	Confidence float64
	Time       time.Duration
}
