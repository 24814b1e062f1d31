package pipeline

import "fmt"

// StageError reports which stage failed and why
type StageError struct {
	Stage string
	Err   error
}

// Error implements the error interface
func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error so callers can match the
// stage-specific error types with errors.Is and errors.As.
func (e *StageError) Unwrap() error {
	return e.Err
}
