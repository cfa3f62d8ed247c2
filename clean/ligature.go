package clean

import (
	"strings"

	"github.com/tsawler/typo/internal/chars"
)

// Dashes replaces `---` with an em dash and `--` with an en dash. Runs are
// matched greedily from the left, so `----` becomes an em dash followed by a
// hyphen.
//
// Double and triple dashes can mean other things (command-line options, for
// instance), so this pass is opt-in in the French formatter.
//
// Example:
//
//	clean.Dashes("--- Hi, he said -- unexpectedly") // "— Hi, he said – unexpectedly"
func Dashes(s string) string {
	first := strings.Index(s, "--")
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:first])

	// '-' is ASCII and never part of a multi-byte sequence, so a byte scan
	// cannot split a character.
	for i := first; i < len(s); {
		if strings.HasPrefix(s[i:], "---") {
			b.WriteRune(chars.EmDash)
			i += 3
		} else if strings.HasPrefix(s[i:], "--") {
			b.WriteRune(chars.EnDash)
			i += 2
		} else {
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// Guillemets replaces `<<` with « and `>>` with ». Surrounding spaces are
// not touched.
//
// Example:
//
//	clean.Guillemets("<< Foo >>") // "« Foo »"
func Guillemets(s string) string {
	first := indexGuillemetLigature(s)
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:first])

	for i := first; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "<<"):
			b.WriteRune(chars.OpenGuillemet)
			i += 2
		case strings.HasPrefix(s[i:], ">>"):
			b.WriteRune(chars.CloseGuillemet)
			i += 2
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

func indexGuillemetLigature(s string) int {
	opening := strings.Index(s, "<<")
	closing := strings.Index(s, ">>")
	switch {
	case opening < 0:
		return closing
	case closing < 0:
		return opening
	case opening < closing:
		return opening
	default:
		return closing
	}
}

// spacedEllipsis is the six-character ". . . " pattern.
const spacedEllipsis = ". . . "

// Ellipsis replaces `...` with the ellipsis character …. The spaced form
// ". . . " keeps its dots but gets no-break spaces between them so the run
// cannot be broken across lines; its last space stays breakable unless
// another dot follows. A fourth dot after `...` stays a literal period.
//
// Example:
//
//	clean.Ellipsis("foo...")   // "foo…"
//	clean.Ellipsis("foo....")  // "foo…."
//	clean.Ellipsis("foo. . . ") // "foo.\u00a0.\u00a0. " (no-break spaces)
func Ellipsis(s string) string {
	first := indexEllipsis(s)
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	b.WriteString(s[:first])

	for i := first; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "..."):
			b.WriteRune(chars.Ellipsis)
			i += 3
		case strings.HasPrefix(s[i:], spacedEllipsis):
			b.WriteByte('.')
			b.WriteRune(chars.NBSP)
			b.WriteByte('.')
			b.WriteRune(chars.NBSP)
			b.WriteByte('.')
			i += len(spacedEllipsis)
			if i < len(s) && s[i] == '.' {
				b.WriteRune(chars.NBSP)
			} else {
				b.WriteByte(' ')
			}
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

func indexEllipsis(s string) int {
	dots := strings.Index(s, "...")
	spaced := strings.Index(s, spacedEllipsis)
	switch {
	case dots < 0:
		return spaced
	case spaced < 0:
		return dots
	case dots < spaced:
		return dots
	default:
		return spaced
	}
}
