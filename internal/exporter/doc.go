// Package exporter writes the cleaned table out to a flat file.
//
// The destination format follows the file extension: .xlsx produces an
// Excel workbook, anything else a delimited text file. CSV output can
// carry a UTF-8 BOM prefix for Excel compatibility and uses the same
// delimiter option as the loader, so a written file loads straight back.
//
// Example usage:
//
//	w := exporter.New(exporter.Options{})
//	if err := w.Save(ctx, cleaned, "data/processed/sales_data_clean.csv"); err != nil {
//	    var we *exporter.WriteError
//	    if errors.As(err, &we) {
//	        // we.Path names the destination that failed
//	    }
//	}
package exporter
