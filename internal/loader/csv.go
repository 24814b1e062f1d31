package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"salesclean/internal/table"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

func (l *Loader) loadCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r, err := decodingReader(f, l.opt.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	if l.opt.Delimiter != 0 {
		cr.Comma = l.opt.Delimiter
	}

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: path, Err: errors.New("empty file: no header row")}
	}
	if err != nil {
		return nil, csvParseError(path, err)
	}

	t := table.New(headerNames(header))
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvParseError(path, err)
		}

		values := make([]table.Value, len(row))
		for i, cell := range row {
			values[i] = table.Parse(cell)
		}
		if err := t.AppendRow(values); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	return t, nil
}

// headerNames cleans a raw header row: the UTF-8 BOM is stripped from the
// first cell and blank cells get positional col_N names.
func headerNames(raw []string) []string {
	names := make([]string, len(raw))
	for i, cell := range raw {
		if i == 0 {
			cell = strings.TrimPrefix(cell, utf8BOM)
		}
		if strings.TrimSpace(cell) == "" {
			names[i] = fmt.Sprintf("col_%d", i)
			continue
		}
		names[i] = cell
	}
	return names
}

// csvParseError converts an encoding/csv error into a *ParseError, keeping
// the line number when the csv package reports one.
func csvParseError(path string, err error) error {
	var ce *csv.ParseError
	if errors.As(err, &ce) {
		return &ParseError{Path: path, Line: ce.Line, Err: ce.Err}
	}
	return &ParseError{Path: path, Err: err}
}

// decodingReader wraps r with a charset decoder when the source encoding
// is not UTF-8.
func decodingReader(r io.Reader, name string) (io.Reader, error) {
	var enc encoding.Encoding
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8", "utf-8-sig":
		return r, nil
	case "windows-1252", "cp1252":
		enc = charmap.Windows1252
	case "iso-8859-1", "latin-1", "latin1":
		enc = charmap.ISO8859_1
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
