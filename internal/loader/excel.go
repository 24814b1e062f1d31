package loader

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"salesclean/internal/table"
)

func (l *Loader) loadExcel(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	sheet := l.opt.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &ParseError{Path: path, Err: errors.New("workbook has no sheets")}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("read sheet %q: %w", sheet, err)}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("sheet %q is empty: no header row", sheet)}
	}

	t := table.New(headerNames(rows[0]))
	width := t.NumColumns()
	for n, row := range rows[1:] {
		if len(row) > width {
			return nil, &ParseError{
				Path: path,
				Line: n + 2,
				Err:  fmt.Errorf("row has %d cells, header has %d", len(row), width),
			}
		}

		// GetRows drops trailing empty cells, so rows may come back
		// shorter than the header. The absent cells are nulls.
		values := make([]table.Value, width)
		for i := 0; i < len(row); i++ {
			values[i] = table.Parse(row[i])
		}
		if err := t.AppendRow(values); err != nil {
			return nil, &ParseError{Path: path, Line: n + 2, Err: err}
		}
	}

	return t, nil
}
