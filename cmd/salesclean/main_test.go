package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesclean/internal/config"
	"salesclean/internal/loader"
	"salesclean/internal/pipeline"
)

func testConfig(t *testing.T, rawContent string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw.csv")
	require.NoError(t, os.WriteFile(raw, []byte(rawContent), 0644))

	cfg := config.Defaults()
	cfg.Input.Path = raw
	cfg.Output.Path = filepath.Join(dir, "clean.csv")
	return &cfg
}

func TestRunPipeline(t *testing.T) {
	cfg := testConfig(t,
		"Product Name,Price,Quantity\n"+
			"Widget,9.99,5\n"+
			"Broken,,1\n")

	summary, err := runPipeline(context.Background(), cfg, false)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.RowsIn)
	assert.Equal(t, 1, summary.RowsOut)
	assert.Equal(t, cfg.Output.Path, summary.OutputPath)

	content, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.Equal(t, "product_name,price,quantity\nWidget,9.99,5\n", string(content))
}

func TestRunPipeline_DryRun(t *testing.T) {
	cfg := testConfig(t, "Product,Price,Quantity\nWidget,9.99,5\n")

	summary, err := runPipeline(context.Background(), cfg, true)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.RowsOut)

	_, statErr := os.Stat(cfg.Output.Path)
	assert.True(t, os.IsNotExist(statErr), "dry run must not write the output file")
}

func TestRunPipeline_LoadFailureNamesStage(t *testing.T) {
	cfg := config.Defaults()
	cfg.Input.Path = filepath.Join(t.TempDir(), "absent.csv")
	cfg.Output.Path = filepath.Join(t.TempDir(), "clean.csv")

	_, err := runPipeline(context.Background(), &cfg, false)
	require.Error(t, err)

	var stageErr *pipeline.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "load", stageErr.Stage)
	assert.ErrorIs(t, err, loader.ErrFileNotFound)
}

func TestRunPipeline_CustomRequiredColumns(t *testing.T) {
	cfg := testConfig(t,
		"Product,Amount\n"+
			"Widget,12.5\n"+
			"Gadget,oops\n")
	cfg.Cleaning.RequiredColumns = []string{"amount"}

	summary, err := runPipeline(context.Background(), cfg, false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.RowsOut)
	assert.Equal(t, 1, summary.Drops.DroppedNotNumeric)
}

func TestSplitColumns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "price", []string{"price"}},
		{"pair", "price,quantity", []string{"price", "quantity"}},
		{"spaces", " price , quantity ", []string{"price", "quantity"}},
		{"empty entries", "price,,quantity,", []string{"price", "quantity"}},
		{"empty string", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitColumns(tt.input))
		})
	}
}
