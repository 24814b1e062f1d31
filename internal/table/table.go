package table

import (
	"fmt"
)

// Table is an ordered collection of named columns with rows aligned by
// position. It is the unit of data handed from one pipeline stage to the
// next.
//
// Transformations never mutate a Table in place: every operation that
// changes names, values, or row membership returns a new, independent
// Table so each stage's output stays inspectable after later stages run.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// New creates an empty Table with the given column names in order.
// Duplicate names are permitted here because raw file headers may contain
// them; the column normalizer is responsible for rejecting collisions.
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{
		columns: cols,
		index:   buildIndex(cols),
	}
}

// buildIndex maps each column name to its first position.
func buildIndex(columns []string) map[string]int {
	idx := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, exists := idx[name]; !exists {
			idx[name] = i
		}
	}
	return idx
}

// Columns returns the column names in order. The returned slice is a copy.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column, or -1 when absent.
// When duplicate names exist the first occurrence wins.
func (t *Table) ColumnIndex(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// AppendRow adds a row to the table. The row must carry exactly one value
// per column; a width mismatch is an alignment bug and is rejected.
func (t *Table) AppendRow(values []Value) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.columns))
	}
	row := make([]Value, len(values))
	copy(row, values)
	t.rows = append(t.rows, row)
	return nil
}

// Row returns a copy of the row at position i.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.rows[i]))
	copy(row, t.rows[i])
	return row
}

// Rows returns a copy of all rows in order.
func (t *Table) Rows() [][]Value {
	rows := make([][]Value, len(t.rows))
	for i, row := range t.rows {
		rows[i] = make([]Value, len(row))
		copy(rows[i], row)
	}
	return rows
}

// Value returns the value at the given row for the named column. The
// second return is false when the column does not exist.
func (t *Table) Value(row int, column string) (Value, bool) {
	i, ok := t.index[column]
	if !ok {
		return nil, false
	}
	return t.rows[row][i], true
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := New(t.columns)
	out.rows = copyRows(t.rows)
	return out
}

// WithColumns returns a copy of the table with columns renamed in order.
// The replacement set must match the current column count.
func (t *Table) WithColumns(columns []string) (*Table, error) {
	if len(columns) != len(t.columns) {
		return nil, fmt.Errorf("got %d column names, table has %d columns", len(columns), len(t.columns))
	}
	out := New(columns)
	out.rows = copyRows(t.rows)
	return out, nil
}

// MapValues returns a copy of the table with fn applied to every cell.
// fn receives the column name and the current value.
func (t *Table) MapValues(fn func(column string, v Value) Value) *Table {
	out := New(t.columns)
	out.rows = make([][]Value, len(t.rows))
	for i, row := range t.rows {
		mapped := make([]Value, len(row))
		for j, v := range row {
			mapped[j] = fn(t.columns[j], v)
		}
		out.rows[i] = mapped
	}
	return out
}

// FilterRows returns a copy of the table containing only the rows for
// which keep returns true, preserving their relative order.
func (t *Table) FilterRows(keep func(row []Value) bool) *Table {
	out := New(t.columns)
	for _, row := range t.rows {
		if keep(row) {
			kept := make([]Value, len(row))
			copy(kept, row)
			out.rows = append(out.rows, kept)
		}
	}
	return out
}

func copyRows(rows [][]Value) [][]Value {
	out := make([][]Value, len(rows))
	for i, row := range rows {
		out[i] = make([]Value, len(row))
		copy(out[i], row)
	}
	return out
}
