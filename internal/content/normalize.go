package content

import "strings"

// Palette is the reference set of colors offered alongside the colors
// present in the catalog.
var Palette = []string{"red", "blue", "green", "yellow", "orange", "purple", "pink", "black", "white", "brown"}

// Normalize lowercases s and drops everything outside a-z. An '@' is read
// as the letter it stands in for, so "C@T!" becomes "cat".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r == '@':
			b.WriteByte('a')
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeColor trims and lowercases a color label. Inner spaces are
// kept so labels like "light blue" survive.
func NormalizeColor(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
