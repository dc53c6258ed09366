package arena

import (
	"context"
	_ "embed"
	"strings"

	"github.com/treechess/treechess/pkg/common"
)

//go:embed openings.txt
var openingsTxt string

// DefaultOpenings returns the embedded opening FENs.
func DefaultOpenings() []string {
	var result []string
	var lines = strings.Split(openingsTxt, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !(line == "" || strings.HasPrefix(line, "//")) {
			result = append(result, line)
		}
	}
	return result
}

// loadOpenings sends every opening twice, once with each engine as White.
func loadOpenings(
	ctx context.Context,
	openings []string,
	gameInfos chan<- gameInfo,
) error {
	for i, fen := range openings {
		if _, err := common.ParseFEN(fen); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: fen, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: fen, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}
