package cleaner

import (
	"log/slog"

	"salesclean/internal/table"
)

// DefaultRequiredColumns are the columns every surviving row must carry a
// valid value for when the caller does not override the set.
var DefaultRequiredColumns = []string{"price", "quantity"}

// FilterStats summarizes one CleanRequiredFields pass. The three drop
// counters always sum to RowsIn - RowsKept.
type FilterStats struct {
	RowsIn            int
	RowsKept          int
	DroppedMissing    int
	DroppedNotNumeric int
	DroppedNegative   int
}

// Dropped returns the total number of rows removed.
func (s FilterStats) Dropped() int {
	return s.RowsIn - s.RowsKept
}

// CleanRequiredFields returns a copy of t holding only the rows whose
// required columns all hold a present, numeric, non-negative value. A NaN
// value fails the non-negative check and is dropped. Column set and row
// order are preserved; running the filter again on its own output removes
// nothing.
//
// When required is empty, DefaultRequiredColumns is used. A required
// column absent from the table is a *MissingColumnError, reported before
// any row is inspected.
func CleanRequiredFields(t *table.Table, required []string) (*table.Table, *FilterStats, error) {
	if len(required) == 0 {
		required = DefaultRequiredColumns
	}

	idx := make([]int, len(required))
	for i, col := range required {
		j := t.ColumnIndex(col)
		if j < 0 {
			return nil, nil, &MissingColumnError{Column: col, Available: t.Columns()}
		}
		idx[i] = j
	}

	stats := &FilterStats{RowsIn: t.NumRows()}
	rowNum := 0
	out := t.FilterRows(func(row []table.Value) bool {
		rowNum++
		for i, j := range idx {
			v := row[j]
			if table.IsMissing(v) {
				stats.DroppedMissing++
				dropRow(rowNum, required[i], "missing")
				return false
			}
			n, ok := table.Number(v)
			if !ok {
				stats.DroppedNotNumeric++
				dropRow(rowNum, required[i], "not numeric")
				return false
			}
			if !(n >= 0) {
				stats.DroppedNegative++
				dropRow(rowNum, required[i], "negative")
				return false
			}
		}
		return true
	})
	stats.RowsKept = out.NumRows()

	slog.Info("rows filtered",
		slog.Int("rows_in", stats.RowsIn),
		slog.Int("rows_kept", stats.RowsKept),
		slog.Int("dropped_missing", stats.DroppedMissing),
		slog.Int("dropped_not_numeric", stats.DroppedNotNumeric),
		slog.Int("dropped_negative", stats.DroppedNegative))

	return out, stats, nil
}

func dropRow(row int, column, reason string) {
	slog.Debug("dropping row",
		slog.Int("row", row),
		slog.String("column", column),
		slog.String("reason", reason))
}
