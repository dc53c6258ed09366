package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWriterLevel(t *testing.T) {
	var buf = &bytes.Buffer{}
	var logger = NewWriter(buf, "warn")
	logger.Info().Msg("hidden")
	logger.Warn().Str("fen", "x").Msg("shown")
	var out = buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Error(out)
	}
}

func TestNewWriterDefaultsToInfo(t *testing.T) {
	var buf = &bytes.Buffer{}
	var logger = NewWriter(buf, "nonsense")
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")
	var out = buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Error(out)
	}
}
