package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesclean/internal/config"
	"salesclean/internal/shared/testutil"
)

// resetLogger clears global logger state before and after a test and
// restores the process-wide slog default.
func resetLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	ResetLoggerForTesting()
	t.Cleanup(func() {
		ResetLoggerForTesting()
		slog.SetDefault(prev)
	})
}

func TestInitializeLogger_FileOutput(t *testing.T) {
	resetLogger(t)

	logFile := filepath.Join(t.TempDir(), "test.log")
	cfg := config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	}

	logger, err := InitializeLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("test message", slog.String("key", "value"))

	// Close before reading so the write is flushed on all platforms.
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(content, &entry), "log output is not valid JSON")
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestInitializeLogger_BothOutput(t *testing.T) {
	resetLogger(t)

	logFile := filepath.Join(t.TempDir(), "test.log")
	cfg := config.LoggingConfig{
		Level:    "debug",
		Format:   "text",
		Output:   "both",
		FilePath: logFile,
	}

	logger, err := InitializeLogger(cfg)
	require.NoError(t, err)

	logger.Debug("visible at debug level")
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "visible at debug level")
}

func TestInitializeLogger_CreatesLogDirectory(t *testing.T) {
	resetLogger(t)

	logFile := filepath.Join(t.TempDir(), "logs", "nested", "test.log")
	cfg := config.LoggingConfig{
		Level:    "info",
		Format:   "text",
		Output:   "file",
		FilePath: logFile,
	}

	_, err := InitializeLogger(cfg)
	require.NoError(t, err)

	_, err = os.Stat(logFile)
	assert.NoError(t, err, "log file should be created along with parent directories")
}

func TestInitializeLogger_FileError(t *testing.T) {
	resetLogger(t)

	// A regular file where the log directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	cfg := config.LoggingConfig{
		Level:    "info",
		Format:   "text",
		Output:   "file",
		FilePath: filepath.Join(blocker, "test.log"),
	}

	_, err := InitializeLogger(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestInitializeLogger_OnlyOnce(t *testing.T) {
	resetLogger(t)

	first, err := InitializeLogger(config.LoggingConfig{Level: "info", Format: "text", Output: "console"})
	require.NoError(t, err)

	// A second call with different settings returns the existing logger.
	second, err := InitializeLogger(config.LoggingConfig{Level: "debug", Format: "json", Output: "console"})
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Same(t, first, GetLogger())
}

func TestInitializeLogger_RespectsLevel(t *testing.T) {
	resetLogger(t)

	logFile := filepath.Join(t.TempDir(), "test.log")
	cfg := config.LoggingConfig{
		Level:    "warn",
		Format:   "text",
		Output:   "file",
		FilePath: logFile,
	}

	logger, err := InitializeLogger(cfg)
	require.NoError(t, err)

	logger.Info("filtered out")
	logger.Warn("kept")
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "filtered out")
	assert.Contains(t, string(content), "kept")
}

func TestGetLogger_Uninitialized(t *testing.T) {
	resetLogger(t)

	assert.NotNil(t, GetLogger(), "uninitialized GetLogger falls back to the slog default")
}

func TestRunIDHandler_InjectsRunID(t *testing.T) {
	captured := testutil.NewBufferedSlogHandler(t)
	wrapped := slog.New(&runIDHandler{Handler: captured})

	ctx := WithRunID(context.Background(), "run-abc-123")
	wrapped.InfoContext(ctx, "stage_start", slog.String("stage", "normalize"))

	rec, ok := captured.FindMessage("stage_start")
	require.True(t, ok)
	assert.Equal(t, "run-abc-123", rec.Attrs["run_id"])
	assert.Equal(t, "normalize", rec.Attrs["stage"])
}

func TestRunIDHandler_NoRunIDInContext(t *testing.T) {
	captured := testutil.NewBufferedSlogHandler(t)
	wrapped := slog.New(&runIDHandler{Handler: captured})

	wrapped.InfoContext(context.Background(), "stage_start")

	rec, ok := captured.FindMessage("stage_start")
	require.True(t, ok)
	_, present := rec.Attrs["run_id"]
	assert.False(t, present, "run_id should be omitted when the context has none")
}

func TestRunIDHandler_SurvivesWith(t *testing.T) {
	captured := testutil.NewBufferedSlogHandler(t)
	wrapped := slog.New(&runIDHandler{Handler: captured})

	ctx := WithRunID(context.Background(), "run-xyz")
	wrapped.With(slog.String("component", "pipeline")).InfoContext(ctx, "stage_complete")

	rec, ok := captured.FindMessage("stage_complete")
	require.True(t, ok)
	assert.Equal(t, "run-xyz", rec.Attrs["run_id"], "WithAttrs must preserve the run ID wrapper")
	assert.Equal(t, "pipeline", rec.Attrs["component"])
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestWithRunID_RoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRunID(ctx))

	ctx = WithRunID(ctx, "run-42")
	assert.Equal(t, "run-42", GetRunID(ctx))
}

func TestCloseLogFile_NoFileOpen(t *testing.T) {
	resetLogger(t)

	assert.NoError(t, CloseLogFile(), "closing with no open file is a no-op")
}

func TestJSONFormatIncludesSource(t *testing.T) {
	resetLogger(t)

	logFile := filepath.Join(t.TempDir(), "test.log")
	cfg := config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	}

	logger, err := InitializeLogger(cfg)
	require.NoError(t, err)

	logger.Info("with source")
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), `"source"`),
		"json format should record the call site")
}
