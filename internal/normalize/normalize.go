// Package normalize canonicalizes free-text dish descriptions from POS
// exports so the same dish merges across cashiers and terminals.
package normalize

import (
	"strings"
	"unicode"
)

// stripChars are removed outright before the replacements run.
var stripChars = []string{"(", ")", ".", "@"}

// replacements are literal substring rewrites applied in order over the
// whole string. Order matters: W/ must expand before the space-bounded WIT
// typo fix, and PCS removal runs before digits are stripped.
var replacements = []struct {
	old string
	new string
}{
	{"W/", "WITH"},
	{"&", "AND"},
	// Known cashier typo, matched with exactly one space on each side.
	{" WIT ", " WITH "},
	// The terminal writes a literal backslash-n, not a newline.
	{`\n`, " "},
	{"PCS", ""},
}

// Clean canonicalizes a dish description: strips punctuation and digits,
// expands the terminal's shorthand, uppercases, and collapses whitespace.
// Clean always returns a string, possibly empty.
func Clean(s string) string {
	for _, ch := range stripChars {
		s = strings.ReplaceAll(s, ch, "")
	}
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(strings.ToUpper(b.String())), " ")
}

// CleanValue applies Clean to string cells and maps any other value to the
// empty string.
func CleanValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Clean(s)
}
