// Package oracle answers move generation questions with an independent
// bitboard generator, for cross-checking pkg/common.
package oracle

import (
	"sort"

	"github.com/dylhunn/dragontoothmg"

	"github.com/treechess/treechess/pkg/common"
)

// parse validates fen with our own parser first, then hands a normalized
// six-field FEN to the reference generator.
func parse(fen string) (dragontoothmg.Board, error) {
	var p, err = common.ParseFEN(fen)
	if err != nil {
		return dragontoothmg.Board{}, err
	}
	return dragontoothmg.ParseFen(p.FEN()), nil
}

// LegalMoves returns the sorted long algebraic moves of the side to move.
func LegalMoves(fen string) ([]string, error) {
	var board, err = parse(fen)
	if err != nil {
		return nil, err
	}
	var moves = board.GenerateLegalMoves()
	var result = make([]string, 0, len(moves))
	for i := range moves {
		result = append(result, moves[i].String())
	}
	sort.Strings(result)
	return result, nil
}

func Perft(fen string, depth int) (int, error) {
	var board, err = parse(fen)
	if err != nil {
		return 0, err
	}
	return perft(&board, depth), nil
}

func perft(b *dragontoothmg.Board, depth int) int {
	if depth <= 0 {
		return 1
	}
	var moves = b.GenerateLegalMoves()
	if depth == 1 {
		return len(moves)
	}
	var result = 0
	for _, m := range moves {
		var unapply = b.Apply(m)
		result += perft(b, depth-1)
		unapply()
	}
	return result
}

// Diff compares our legal moves with the reference ones and returns the moves
// only we generate and the moves only the reference generates.
func Diff(fen string) (extra, missing []string, err error) {
	want, err := LegalMoves(fen)
	if err != nil {
		return nil, nil, err
	}
	p, err := common.ParseFEN(fen)
	if err != nil {
		return nil, nil, err
	}
	var got = make(map[string]bool)
	for _, m := range p.GenerateLegalMoves(nil) {
		got[m.String()] = true
	}
	var ref = make(map[string]bool)
	for _, m := range want {
		ref[m] = true
		if !got[m] {
			missing = append(missing, m)
		}
	}
	for m := range got {
		if !ref[m] {
			extra = append(extra, m)
		}
	}
	sort.Strings(extra)
	return extra, missing, nil
}
