package exporter

import "fmt"

// WriteError reports a failure to produce the output file. A partial file
// may remain on disk; the returned error is the caller's only signal that
// the run did not succeed.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
