package play

import (
	"fmt"
	"io"
	"strconv"

	"github.com/treechess/treechess/pkg/common"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

const (
	fgBlack   = 30
	bgWhite   = 47
	bgHiWhite = 107
)

// chessSymbols is indexed by tile code.
var chessSymbols = [13]string{
	" ",
	whiteRook, whiteKnight, whiteBishop, whiteKing, whiteQueen, whitePawn,
	blackRook, blackKnight, blackBishop, blackKing, blackQueen, blackPawn,
}

// Print draws the board from tile codes, rank 8 on top.
func Print(w io.Writer, codes [64]uint32) {
	for rank := common.Rank8; rank >= common.Rank1; rank-- {
		for file := common.FileA; file >= common.FileH; file-- {
			var sq = common.MakeSquare(file, rank)
			fmt.Fprint(w, pieceString(codes[sq], common.IsDarkSquare(sq)))
		}
		fmt.Fprintln(w)
	}
}

func pieceString(code uint32, darkSquare bool) string {
	var s = "?"
	if code < uint32(len(chessSymbols)) {
		s = chessSymbols[code]
	}
	s += " "
	const fgColor = fgBlack
	var bgColor int
	if darkSquare {
		bgColor = bgWhite
	} else {
		bgColor = bgHiWhite
	}
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%s;%sm%s%s[%dm",
		escape, strconv.Itoa(fgColor), strconv.Itoa(bgColor), s, escape, reset)
}
