package pgn

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notnil/chess"

	"github.com/treechess/treechess/pkg/common"
)

// ToSAN replays moves from fen and returns them in standard algebraic notation.
func ToSAN(fen string, moves []string) ([]string, error) {
	var opts = []func(*chess.Game){chess.UseNotation(chess.UCINotation{})}
	if fen != "" && fen != common.InitialPositionFen {
		var fenOpt, err = chess.FEN(fen)
		if err != nil {
			return nil, fmt.Errorf("pgn: %w", err)
		}
		opts = append(opts, fenOpt)
	}
	var game = chess.NewGame(opts...)
	for i, m := range moves {
		if err := game.MoveStr(m); err != nil {
			return nil, fmt.Errorf("pgn: move %d %v: %w", i+1, m, err)
		}
	}
	var positions = game.Positions()
	var result = make([]string, 0, len(moves))
	for i, m := range game.Moves() {
		result = append(result, chess.AlgebraicNotation{}.Encode(positions[i], m))
	}
	return result, nil
}

// Write renders g as PGN. The result comes from g, so games lost by a side
// without legal moves keep their result even where other rules call it a draw.
func Write(w io.Writer, g Game) error {
	var fen = g.Fen
	if fen == "" {
		fen = common.InitialPositionFen
	}
	var start, err = common.ParseFEN(fen)
	if err != nil {
		return err
	}
	san, err := ToSAN(fen, g.Moves)
	if err != nil {
		return err
	}
	var result = g.Result
	if result == "" {
		result = GameResultNone
	}

	var sb = &strings.Builder{}
	for _, tag := range g.Tags {
		fmt.Fprintf(sb, "[%s %s]\n", tag.Key, strconv.Quote(tag.Value))
	}
	if fen != common.InitialPositionFen {
		fmt.Fprintf(sb, "[SetUp \"1\"]\n[FEN %s]\n", strconv.Quote(fen))
	}
	fmt.Fprintf(sb, "[Result %s]\n\n", strconv.Quote(result))

	var ply = start.Ply
	for i, move := range san {
		if ply%2 == 0 {
			fmt.Fprintf(sb, "%d. ", ply/2+1)
		} else if i == 0 {
			fmt.Fprintf(sb, "%d... ", ply/2+1)
		}
		sb.WriteString(move)
		sb.WriteString(" ")
		ply++
	}
	sb.WriteString(result)
	sb.WriteString("\n\n")

	_, err = io.WriteString(w, sb.String())
	return err
}
