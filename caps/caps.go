// Package caps sets uppercase words in small capitals.
//
// Small capitals depend on the output format; only LaTeX is supported.
package caps

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// token matches a word, or a run of words joined by single dots such as an
// acronym written "A.W.D".
var token = regexp.MustCompile(`[\p{L}\p{N}]+(?:\.[\p{L}\p{N}]+)*`)

// TeX wraps uppercase words in \textsc{}, lowercased. A word qualifies when
// it has at least two letters, all uppercase; an acronym qualifies when it
// is made of single uppercase letters separated by dots. A dot ending the
// sentence after an acronym stays outside the command.
//
// Words in small capitals lose their case entirely, including any letter
// that was meant to stay capitalized.
//
// It returns s itself when no word qualifies.
//
// Example:
//
//	caps.TeX("Some ACRONYM or SCREAMING or whatever.") // `Some \textsc{acronym} or \textsc{screaming} or whatever.`
//	caps.TeX("Some A.W.D (Acronym With Dots)")        // `Some \textsc{a.w.d} (Acronym With Dots)`
func TeX(s string) string {
	changed := false
	out := token.ReplaceAllStringFunc(s, func(tok string) string {
		r := smallCaps(tok)
		if r != tok {
			changed = true
		}
		return r
	})
	if !changed {
		return s
	}
	return out
}

func smallCaps(tok string) string {
	parts := strings.Split(tok, ".")
	if len(parts) > 1 && allInitials(parts) {
		return textsc(tok)
	}

	changed := false
	for i, p := range parts {
		if utf8.RuneCountInString(p) >= 2 && isUpperWord(p) {
			parts[i] = textsc(p)
			changed = true
		}
	}
	if !changed {
		return tok
	}
	return strings.Join(parts, ".")
}

func allInitials(parts []string) bool {
	for _, p := range parts {
		if utf8.RuneCountInString(p) != 1 || !isUpperWord(p) {
			return false
		}
	}
	return true
}

func isUpperWord(w string) bool {
	for _, r := range w {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return w != ""
}

func textsc(w string) string {
	return `\textsc{` + strings.ToLower(w) + "}"
}
