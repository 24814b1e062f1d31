package exporter

import (
	"encoding/csv"
	"os"

	"salesclean/internal/table"
)

func (w *Writer) saveCSV(t *table.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	// BOM helps Excel recognize UTF-8 content.
	if w.opt.BOMPrefix {
		if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			f.Close()
			return &WriteError{Path: path, Err: err}
		}
	}

	cw := csv.NewWriter(f)
	if w.opt.Delimiter != 0 {
		cw.Comma = w.opt.Delimiter
	}

	if err := cw.Write(t.Columns()); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}

	record := make([]string, t.NumColumns())
	for i := 0; i < t.NumRows(); i++ {
		for j, v := range t.Row(i) {
			record[j] = table.Text(v)
		}
		if err := cw.Write(record); err != nil {
			f.Close()
			return &WriteError{Path: path, Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
