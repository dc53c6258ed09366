package common

import "fmt"

// Square indexes the board: file = sq%8, rank = sq/8. White starts on ranks 0-1.
// File 0 is the h-file of a conventional diagram, so the king starts on e1 = square 3.
type Square int8

const SquareNone Square = -1

const (
	FileH = iota
	FileG
	FileF
	FileE
	FileD
	FileC
	FileB
	FileA
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	SquareH1 Square = iota
	SquareG1
	SquareF1
	SquareE1
	SquareD1
	SquareC1
	SquareB1
	SquareA1
	SquareH2
	SquareG2
	SquareF2
	SquareE2
	SquareD2
	SquareC2
	SquareB2
	SquareA2
	SquareH3
	SquareG3
	SquareF3
	SquareE3
	SquareD3
	SquareC3
	SquareB3
	SquareA3
	SquareH4
	SquareG4
	SquareF4
	SquareE4
	SquareD4
	SquareC4
	SquareB4
	SquareA4
	SquareH5
	SquareG5
	SquareF5
	SquareE5
	SquareD5
	SquareC5
	SquareB5
	SquareA5
	SquareH6
	SquareG6
	SquareF6
	SquareE6
	SquareD6
	SquareC6
	SquareB6
	SquareA6
	SquareH7
	SquareG7
	SquareF7
	SquareE7
	SquareD7
	SquareC7
	SquareB7
	SquareA7
	SquareH8
	SquareG8
	SquareF8
	SquareE8
	SquareD8
	SquareC8
	SquareB8
	SquareA8
)

func File(sq Square) int {
	return int(sq) & 7
}

func Rank(sq Square) int {
	return int(sq) >> 3
}

func MakeSquare(file, rank int) Square {
	return Square(rank<<3 | file)
}

func IsDarkSquare(sq Square) bool {
	return (File(sq) & 1) != (Rank(sq) & 1)
}

func (sq Square) IsValid() bool {
	return sq >= 0 && sq < 64
}

// Step moves by (dx, dy). It reports false instead of wrapping when the step leaves the board.
func (sq Square) Step(dx, dy int) (Square, bool) {
	var x = File(sq) + dx
	var y = Rank(sq) + dy
	if x < 0 || x > 7 || y < 0 || y > 7 {
		return SquareNone, false
	}
	return MakeSquare(x, y), true
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return SquareName(sq)
}

const (
	fileNames = "hgfedcba"
	rankNames = "12345678"
)

func SquareName(sq Square) string {
	var file = fileNames[File(sq)]
	var rank = rankNames[Rank(sq)]
	return string(file) + string(rank)
}

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 ||
		s[0] < 'a' || s[0] > 'h' ||
		s[1] < '1' || s[1] > '8' {
		return SquareNone, fmt.Errorf("bad square %q", s)
	}
	var file = int('h' - s[0])
	var rank = int(s[1] - '1')
	return MakeSquare(file, rank), nil
}
