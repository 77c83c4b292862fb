package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		level slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		level, ok := parseLevel(tt.in)
		assert.Equal(t, tt.level, level, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestInitLoggerReplacesGlobal(t *testing.T) {
	previous := L
	t.Cleanup(func() {
		L = previous
		slog.SetDefault(previous)
	})

	InitLogger("error")
	assert.NotSame(t, previous, L)
	assert.False(t, L.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, L.Enabled(t.Context(), slog.LevelError))
}
