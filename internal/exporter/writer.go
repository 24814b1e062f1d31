package exporter

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"salesclean/internal/table"
)

// Options configures output writing. All fields are optional.
type Options struct {
	// Delimiter is the CSV field separator. ',' is used when zero.
	Delimiter rune

	// BOMPrefix prepends a UTF-8 BOM to CSV output so Excel detects the
	// encoding. Off by default, which keeps CSV round-trips byte-clean.
	BOMPrefix bool

	// Sheet names the worksheet for .xlsx output. "Sheet1" when empty.
	Sheet string
}

// Writer serializes a Table to a flat file.
type Writer struct {
	opt Options
}

// New creates a Writer with the provided options.
func New(opt Options) *Writer {
	return &Writer{opt: opt}
}

// Save writes t to path, creating parent directories as needed. The
// format follows the file extension: .xlsx produces a workbook, anything
// else a delimited text file. The header row carries the column names;
// data rows follow in table order. Null cells serialize as empty fields,
// numeric cells in minimal decimal notation.
//
// Any failure is reported as a *WriteError carrying the destination path.
func (w *Writer) Save(ctx context.Context, t *table.Table, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		err = w.saveExcel(t, path)
	default:
		err = w.saveCSV(t, path)
	}
	if err != nil {
		return err
	}

	size := "unknown"
	if info, statErr := os.Stat(path); statErr == nil {
		size = humanize.Bytes(uint64(info.Size()))
	}
	slog.Info("output written",
		slog.String("path", path),
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumColumns()),
		slog.String("size", size))

	return nil
}
