// Package table defines the in-memory tabular data model shared by all
// cleaning pipeline stages.
//
// A Table is an ordered set of named columns with rows aligned by
// position. Cells hold one of three value shapes: nil (missing), float64
// (numeric), or string (text). The loader decides the shape of each cell
// when the file is read; later stages only inspect and rearrange values.
//
// Tables follow copy-on-write semantics: MapValues, FilterRows,
// WithColumns, and Clone all return new, independent Tables and never
// modify the receiver. This keeps every stage's output inspectable and
// makes the pipeline trivially composable in tests.
//
// Example usage:
//
//	t := table.New([]string{"product", "price"})
//	_ = t.AppendRow([]table.Value{"Widget", 9.99})
//
//	trimmed := t.MapValues(func(col string, v table.Value) table.Value {
//	    if s, ok := v.(string); ok {
//	        return strings.TrimSpace(s)
//	    }
//	    return v
//	})
package table
