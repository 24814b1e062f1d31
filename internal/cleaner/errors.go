package cleaner

import (
	"fmt"
	"strings"
)

// SchemaError reports distinct source column names that collapse to the
// same canonical name, which would leave the table with ambiguous columns.
type SchemaError struct {
	Name    string   // canonical name the columns collide on
	Columns []string // original header cells involved
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column names %q collapse to %q after normalization", e.Columns, e.Name)
}

// MissingColumnError reports that a column required for filtering is not
// present in the table.
type MissingColumnError struct {
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found; available columns: %s",
		e.Column, strings.Join(e.Available, ", "))
}
