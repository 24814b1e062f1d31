package pipeline

import (
	"context"
	"time"

	"salesclean/internal/cleaner"
	"salesclean/internal/infrastructure"
	"salesclean/internal/table"
)

// StageResult records the outcome of a single stage run
type StageResult struct {
	Name     string
	RowsIn   int
	RowsOut  int
	Duration time.Duration
}

// Summary describes a completed pipeline run
type Summary struct {
	RunID      string
	InputPath  string
	OutputPath string
	RowsIn     int
	RowsOut    int
	Drops      *cleaner.FilterStats
	Stages     []StageResult
	Duration   time.Duration
}

// statsReporter is implemented by stages that track row drop statistics
type statsReporter interface {
	FilterStats() *cleaner.FilterStats
}

// Runner executes pipeline stages strictly in order
type Runner struct {
	stages []Stage
}

// NewRunner creates a runner over the given stages. Stages execute in the
// order provided.
func NewRunner(stages ...Stage) *Runner {
	return &Runner{stages: stages}
}

// Run passes the table through every stage in sequence. The first stage
// failure aborts the run and is returned as a *StageError naming the stage.
// The summary is returned even on failure so callers can report how far the
// run got.
func (r *Runner) Run(ctx context.Context, t *table.Table) (*table.Table, *Summary, error) {
	ctx = infrastructure.EnsureRunID(ctx)

	summary := &Summary{
		RunID:  infrastructure.GetRunID(ctx),
		RowsIn: t.NumRows(),
	}
	start := time.Now()
	r.logPipelineStart(ctx, t, len(r.stages))

	current := t
	for _, stage := range r.stages {
		stageStart := time.Now()
		r.logStageStart(ctx, stage.Name(), current.NumRows())

		out, err := stage.Run(ctx, current)
		if err != nil {
			r.logStageError(ctx, stage.Name(), err)
			summary.Duration = time.Since(start)
			return nil, summary, &StageError{Stage: stage.Name(), Err: err}
		}

		result := StageResult{
			Name:     stage.Name(),
			RowsIn:   current.NumRows(),
			RowsOut:  out.NumRows(),
			Duration: time.Since(stageStart),
		}
		summary.Stages = append(summary.Stages, result)
		r.logStageComplete(ctx, result)

		if reporter, ok := stage.(statsReporter); ok {
			summary.Drops = reporter.FilterStats()
		}
		current = out
	}

	summary.RowsOut = current.NumRows()
	summary.Duration = time.Since(start)
	r.logPipelineComplete(ctx, summary)

	return current, summary, nil
}
