package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedSlogHandler_CapturesRecords(t *testing.T) {
	logger, handler := NewTestLogger(t)

	logger.Info("rows loaded", slog.Int("rows", 42))
	logger.Error("write failed", slog.String("path", "out.csv"))

	require.Equal(t, 2, handler.Count())
	assert.True(t, handler.ContainsMessage("rows loaded"))
	assert.True(t, handler.ContainsAttr("rows", int64(42)))
	assert.True(t, handler.ContainsAttr("path", "out.csv"))
	assert.False(t, handler.ContainsMessage("never logged"))
}

func TestBufferedSlogHandler_RecordsByLevel(t *testing.T) {
	logger, handler := NewTestLogger(t)

	logger.Debug("detail")
	logger.Info("progress")
	logger.Error("boom")

	assert.Len(t, handler.RecordsByLevel(slog.LevelError), 1)
	assert.Len(t, handler.RecordsByLevel(slog.LevelDebug), 1)
	assert.Empty(t, handler.RecordsByLevel(slog.LevelWarn))
}

func TestBufferedSlogHandler_WithCapturesBoundAttrs(t *testing.T) {
	logger, handler := NewTestLogger(t)

	logger.With(slog.String("component", "loader")).Info("started")

	rec, ok := handler.FindMessage("started")
	require.True(t, ok)
	assert.Equal(t, "loader", rec.Attrs["component"])
}

func TestBufferedSlogHandler_Clear(t *testing.T) {
	logger, handler := NewTestLogger(t)

	logger.Info("one")
	logger.Info("two")
	require.Equal(t, 2, handler.Count())

	handler.Clear()
	assert.Zero(t, handler.Count())
}

func TestBufferedSlogHandler_FindMessageAttrs(t *testing.T) {
	logger, handler := NewTestLogger(t)

	logger.Info("stage_complete",
		slog.String("stage", "filter"),
		slog.Int("rows_in", 10),
		slog.Int("rows_out", 7),
	)

	rec, ok := handler.FindMessage("stage_complete")
	require.True(t, ok)
	assert.Equal(t, "filter", rec.Attrs["stage"])
	assert.Equal(t, int64(10), rec.Attrs["rows_in"])
	assert.Equal(t, int64(7), rec.Attrs["rows_out"])
}
