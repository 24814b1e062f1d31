package pipeline

import (
	"context"

	"salesclean/internal/table"
)

// Stage represents a single step in the cleaning pipeline.
type Stage interface {
	// Name returns the identifier used in logs and error messages
	Name() string

	// Run transforms the input table and returns the result. Implementations
	// must not mutate the input.
	Run(ctx context.Context, t *table.Table) (*table.Table, error)
}
