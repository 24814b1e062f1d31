package cleaner

import (
	"log/slog"
	"strings"

	"salesclean/internal/table"
)

// CanonicalName converts a raw header cell to its canonical form: trimmed,
// lower-cased, with each run of internal whitespace replaced by a single
// underscore.
func CanonicalName(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), "_")
}

// NormalizeColumns returns a copy of t with canonical column names and
// trimmed text values. String cells that trim down to nothing become null,
// matching how empty cells load. Numeric and null cells pass through
// untouched.
//
// Two distinct source names collapsing to the same canonical name is a
// *SchemaError.
func NormalizeColumns(t *table.Table) (*table.Table, error) {
	raw := t.Columns()
	names := make([]string, len(raw))
	seen := make(map[string]string, len(raw))

	renamed := 0
	for i, col := range raw {
		name := CanonicalName(col)
		if first, dup := seen[name]; dup {
			return nil, &SchemaError{Name: name, Columns: []string{first, col}}
		}
		seen[name] = col
		names[i] = name
		if name != col {
			renamed++
		}
	}

	out, err := t.WithColumns(names)
	if err != nil {
		return nil, err
	}

	out = out.MapValues(func(_ string, v table.Value) table.Value {
		s, ok := v.(string)
		if !ok {
			return v
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		return s
	})

	slog.Debug("columns normalized",
		slog.Int("columns", len(names)),
		slog.Int("renamed", renamed))

	return out, nil
}
