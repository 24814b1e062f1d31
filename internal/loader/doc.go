// Package loader reads raw sales data files into the in-memory table
// representation used by the cleaning pipeline.
//
// Two formats are supported, selected by file extension: CSV (any other
// extension) and Excel workbooks (.xlsx, .xlsm). The first row of the
// input is always treated as the header row. Blank header cells receive
// positional col_N names so every column stays addressable.
//
// CSV input is read strictly: a row whose field count differs from the
// header is a *ParseError, never silently dropped. A UTF-8 BOM on the
// first header cell is removed. Sources exported from Windows tools can
// be decoded from windows-1252 or iso-8859-1 via Options.Encoding.
//
// Example usage:
//
//	l := loader.New(loader.Options{})
//	t, err := l.Load(ctx, "data/raw/sales_data_raw.csv")
//	if errors.Is(err, loader.ErrFileNotFound) {
//	    // bad path from the caller
//	}
package loader
