package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"essentialfeed/backend/internal/logger"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for input, want := range cases {
		require.Equal(t, want, logger.ParseLevel(input), input)
	}
}

func TestInitWithWriter_LowercasesLevelAndFilters(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	logger.InitWithWriter(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Warn("cache write failed", "module", "service")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "level=warn")
	require.Contains(t, out, "module=service")
}
