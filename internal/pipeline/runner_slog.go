package pipeline

import (
	"context"
	"log/slog"

	"salesclean/internal/table"
)

// logPipelineStart logs the start of a pipeline run
func (r *Runner) logPipelineStart(ctx context.Context, t *table.Table, stages int) {
	slog.InfoContext(ctx, "pipeline_start",
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumColumns()),
		slog.Int("stages", stages))
}

// logPipelineComplete logs the completion of a pipeline run
func (r *Runner) logPipelineComplete(ctx context.Context, summary *Summary) {
	attrs := []any{
		slog.Int("rows_in", summary.RowsIn),
		slog.Int("rows_out", summary.RowsOut),
		slog.Duration("duration", summary.Duration),
	}
	if summary.Drops != nil {
		attrs = append(attrs, slog.Int("rows_dropped", summary.Drops.Dropped()))
	}
	slog.InfoContext(ctx, "pipeline_complete", attrs...)
}

// logStageStart logs the start of a stage execution
func (r *Runner) logStageStart(ctx context.Context, stage string, rows int) {
	slog.InfoContext(ctx, "stage_start",
		slog.String("stage", stage),
		slog.Int("rows_in", rows))
}

// logStageComplete logs the completion of a stage execution
func (r *Runner) logStageComplete(ctx context.Context, result StageResult) {
	slog.InfoContext(ctx, "stage_complete",
		slog.String("stage", result.Name),
		slog.Int("rows_in", result.RowsIn),
		slog.Int("rows_out", result.RowsOut),
		slog.Duration("duration", result.Duration))
}

// logStageError logs a stage failure
func (r *Runner) logStageError(ctx context.Context, stage string, err error) {
	errorMsg := "unknown error"
	if err != nil {
		errorMsg = err.Error()
	}
	slog.ErrorContext(ctx, "stage_error",
		slog.String("stage", stage),
		slog.String("error", errorMsg))
}
