package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"salesclean/internal/table"
)

// Options configures how input files are read. All fields are optional;
// zero values select the defaults.
type Options struct {
	// Delimiter is the CSV field separator. ',' is used when zero.
	Delimiter rune

	// Encoding names the source charset for CSV input: "utf-8" (default),
	// "windows-1252" or "iso-8859-1".
	Encoding string

	// Sheet selects the worksheet for .xlsx input. The first sheet is
	// used when empty.
	Sheet string
}

// Loader reads a raw sales file into a Table.
type Loader struct {
	opt Options
}

// New creates a Loader with the provided options.
func New(opt Options) *Loader {
	return &Loader{opt: opt}
}

// Load reads the file at path and returns its contents as a Table. The
// first row is the header; every later row becomes a table row. Cells
// decode as null when empty, float64 when the whole cell parses as a
// number, and string otherwise.
//
// A missing file returns an error matching ErrFileNotFound. Malformed
// content, including rows whose field count differs from the header,
// returns a *ParseError.
func (l *Loader) Load(ctx context.Context, path string) (*table.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, ErrFileNotFound)
	}

	slog.Debug("loading input file",
		slog.String("path", path),
		slog.String("size", humanize.Bytes(uint64(info.Size()))))

	var t *table.Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		t, err = l.loadExcel(path)
	default:
		t, err = l.loadCSV(path)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("input loaded",
		slog.String("path", path),
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumColumns()))

	return t, nil
}
