package clean

import (
	"strings"

	"github.com/tsawler/typo/internal/chars"
)

// Whitespaces collapses every run of two or more space-like characters
// (space, no-break space, narrow no-break space, demi em space) into the
// first character of the run. Tabs and newlines are left alone, and leading
// or trailing spaces are kept: this is not a trim.
//
// Example:
//
//	clean.Whitespaces("  A  string   with spaces  ") // " A string with spaces "
func Whitespaces(s string) string {
	first := firstSpaceRun(s)
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:first])

	previousSpace := false
	for _, r := range s[first:] {
		if chars.IsSpace(r) {
			if previousSpace {
				continue
			}
			previousSpace = true
		} else {
			previousSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// firstSpaceRun returns the byte offset of the first run of at least two
// space-like characters, or -1.
func firstSpaceRun(s string) int {
	start := -1
	for i, r := range s {
		if !chars.IsSpace(r) {
			start = -1
			continue
		}
		if start >= 0 {
			return start
		}
		start = i
	}
	return -1
}
