package infrastructure

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesclean/internal/shared/testutil"
)

func TestGenerateRunID(t *testing.T) {
	first := GenerateRunID()
	second := GenerateRunID()

	assert.NotEqual(t, first, second, "run IDs must be unique")

	_, err := uuid.Parse(first)
	assert.NoError(t, err, "run ID should be a valid UUID")
}

func TestEnsureRunID_GeneratesWhenMissing(t *testing.T) {
	ctx := EnsureRunID(context.Background())
	assert.NotEmpty(t, GetRunID(ctx))
}

func TestEnsureRunID_PreservesExisting(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-existing")
	ctx = EnsureRunID(ctx)
	assert.Equal(t, "run-existing", GetRunID(ctx))
}

func TestLoggerWithContext(t *testing.T) {
	resetLogger(t)
	logger, captured := testutil.NewTestLogger(t)
	slog.SetDefault(logger)

	ctx := WithRunID(context.Background(), "run-ctx")
	LoggerWithContext(ctx).Info("loaded")

	rec, ok := captured.FindMessage("loaded")
	require.True(t, ok)
	assert.Equal(t, "run-ctx", rec.Attrs["run_id"])
}

func TestLoggerWithContext_NoRunID(t *testing.T) {
	resetLogger(t)
	logger, captured := testutil.NewTestLogger(t)
	slog.SetDefault(logger)

	LoggerWithContext(context.Background()).Info("loaded")

	rec, ok := captured.FindMessage("loaded")
	require.True(t, ok)
	_, present := rec.Attrs["run_id"]
	assert.False(t, present)
}

func TestWithComponent(t *testing.T) {
	logger, captured := testutil.NewTestLogger(t)

	WithComponent(logger, "exporter").Info("output written")

	rec, ok := captured.FindMessage("output written")
	require.True(t, ok)
	assert.Equal(t, "exporter", rec.Attrs["component"])
}

func TestWithError(t *testing.T) {
	logger, captured := testutil.NewTestLogger(t)

	WithError(logger, errors.New("disk full")).Error("save failed")

	rec, ok := captured.FindMessage("save failed")
	require.True(t, ok)
	assert.Equal(t, "disk full", rec.Attrs["error"])
}

func TestWithError_NilError(t *testing.T) {
	logger, captured := testutil.NewTestLogger(t)

	WithError(logger, nil).Info("all good")

	rec, ok := captured.FindMessage("all good")
	require.True(t, ok)
	_, present := rec.Attrs["error"]
	assert.False(t, present)
}
