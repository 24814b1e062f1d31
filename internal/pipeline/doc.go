// Package pipeline provides a sequential execution framework for the cleaning
// workflow. A run takes a loaded table through an ordered list of stages, each
// transforming the table and handing the result to the next.
//
// Core components:
//
// Stage: An interface that defines a single unit of work. Stages are pure
// table-to-table transformations except for the write stage, which persists
// the table and passes it through unchanged.
//
// Runner: Executes stages strictly in order, logging start and completion of
// each stage with row counts and durations. The first stage failure aborts the
// run; later stages never see a partially cleaned table.
//
// Summary: Describes a finished run with the run ID, per-stage row counts,
// drop statistics, and total duration.
//
// Example usage:
//
//	runner := pipeline.NewRunner(
//		pipeline.NewNormalizeStage(),
//		pipeline.NewFilterStage("price", "quantity"),
//		pipeline.NewWriteStage(writer, outPath),
//	)
//	cleaned, summary, err := runner.Run(ctx, tbl)
//	if err != nil {
//		var stageErr *pipeline.StageError
//		if errors.As(err, &stageErr) {
//			log.Printf("stage %s failed: %v", stageErr.Stage, stageErr.Err)
//		}
//	}
package pipeline
