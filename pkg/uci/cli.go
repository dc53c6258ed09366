package uci

import (
	"bufio"
	"context"
	"io"

	"github.com/rs/zerolog"
)

type CommandHandler interface {
	Handle(ctx context.Context, command string) error
}

// RunCli feeds input lines to handler until quit or end of input.
func RunCli(ctx context.Context, in io.Reader, logger zerolog.Logger, handler CommandHandler) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return
		}
		var err = handler.Handle(ctx, commandLine)
		if err != nil {
			logger.Warn().Err(err).Str("command", commandLine).Msg("command failed")
		}
	}
}
