package pipeline

import (
	"context"

	"salesclean/internal/cleaner"
	"salesclean/internal/exporter"
	"salesclean/internal/table"
)

// NormalizeStage canonicalizes column names and trims cell whitespace
type NormalizeStage struct{}

// NewNormalizeStage creates the column normalization stage
func NewNormalizeStage() *NormalizeStage {
	return &NormalizeStage{}
}

// Name returns the stage identifier
func (s *NormalizeStage) Name() string {
	return "normalize"
}

// Run normalizes column names and cell values
func (s *NormalizeStage) Run(ctx context.Context, t *table.Table) (*table.Table, error) {
	return cleaner.NormalizeColumns(t)
}

// FilterStage drops rows whose required fields are missing, not numeric,
// or negative
type FilterStage struct {
	required []string
	stats    *cleaner.FilterStats
}

// NewFilterStage creates the row filtering stage. With no arguments the
// default required columns are enforced.
func NewFilterStage(required ...string) *FilterStage {
	return &FilterStage{required: required}
}

// Name returns the stage identifier
func (s *FilterStage) Name() string {
	return "filter"
}

// Run removes rows that violate the required column rules
func (s *FilterStage) Run(ctx context.Context, t *table.Table) (*table.Table, error) {
	out, stats, err := cleaner.CleanRequiredFields(t, s.required)
	if err != nil {
		return nil, err
	}
	s.stats = stats
	return out, nil
}

// FilterStats returns drop statistics from the most recent run, or nil if
// the stage has not run yet.
func (s *FilterStage) FilterStats() *cleaner.FilterStats {
	return s.stats
}

// WriteStage persists the table and passes it through unchanged
type WriteStage struct {
	writer *exporter.Writer
	path   string
}

// NewWriteStage creates the output writing stage
func NewWriteStage(w *exporter.Writer, path string) *WriteStage {
	return &WriteStage{writer: w, path: path}
}

// Name returns the stage identifier
func (s *WriteStage) Name() string {
	return "write"
}

// Run saves the table to the configured destination
func (s *WriteStage) Run(ctx context.Context, t *table.Table) (*table.Table, error) {
	if err := s.writer.Save(ctx, t, s.path); err != nil {
		return nil, err
	}
	return t, nil
}
