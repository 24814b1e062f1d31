package exporter

import (
	"github.com/xuri/excelize/v2"

	"salesclean/internal/table"
)

func (w *Writer) saveExcel(t *table.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := w.opt.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	if err := setRow(f, sheet, 1, headerCells(t.Columns())); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	for i := 0; i < t.NumRows(); i++ {
		if err := setRow(f, sheet, i+2, t.Row(i)); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []table.Value) error {
	for j, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(j+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func headerCells(names []string) []table.Value {
	cells := make([]table.Value, len(names))
	for i, name := range names {
		cells[i] = name
	}
	return cells
}
