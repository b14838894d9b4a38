package utils

import (
	"strings"
	"unicode"
)

// NormalizeStudentID trims the value and strips every whitespace rune,
// so "64  010 123" and "64010123" compare equal. Used only for
// comparison; stored records keep the raw value.
func NormalizeStudentID(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range strings.TrimSpace(id) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeName trims, collapses internal whitespace runs to a single
// space and lowercases, so "Somchai  JAIDEE " equals "somchai jaidee".
func NormalizeName(name string) string {
	fields := strings.Fields(name)
	return strings.ToLower(strings.Join(fields, " "))
}
