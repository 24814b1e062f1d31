package table

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Value is a single table cell. Exactly three shapes occur in practice:
// nil for a missing value, float64 for a numeric value, and string for
// text. The loader produces these shapes and the stages preserve them.
type Value = any

// Parse decodes a raw cell into a Value: empty becomes nil,
// numeric-looking text becomes float64, anything else stays text.
func Parse(raw string) Value {
	if raw == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}

// IsMissing reports whether a value is absent: nil, or text that is empty
// once surrounding whitespace is removed.
func IsMissing(v Value) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// Number coerces a value to float64. Text is trimmed before parsing, so
// whitespace-padded numerals still count as numeric. The second return is
// false when the value is missing or not numerically parseable.
func Number(v Value) (float64, bool) {
	if IsMissing(v) {
		return 0, false
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Text renders a value for serialization: nil becomes the empty string,
// numbers use their minimal decimal form, text is returned verbatim.
func Text(v Value) string {
	if v == nil {
		return ""
	}
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return cast.ToString(v)
}
