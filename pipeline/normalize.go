package pipeline

import (
	"strings"
	"unicode"
)

// Normalize collapses internal whitespace runs to single spaces and
// trims surrounding whitespace. Absent input yields the empty string.
func Normalize(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}

// normLower is the comparison form: normalized and lower-cased. Display
// strings stay case-preserved; everything else goes through this.
func normLower(s string) string {
	return strings.ToLower(Normalize(s))
}
