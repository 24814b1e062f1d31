package loader

import (
	"errors"
	"fmt"
)

// ErrFileNotFound reports that the input file does not exist. Callers match
// it with errors.Is.
var ErrFileNotFound = errors.New("file not found")

// ParseError reports malformed input that prevents loading the table.
type ParseError struct {
	Path string
	Line int // 1-based line where parsing failed, 0 when unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
