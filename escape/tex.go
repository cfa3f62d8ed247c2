package escape

import (
	"strings"

	"github.com/tsawler/typo/internal/chars"
)

// texSpecial holds every byte that needs escaping in LaTeX.
const texSpecial = `!<>&%$#_~-{}[]^\`

// TeX escapes the characters that LaTeX reserves. A hyphen followed by
// another hyphen is written "-{}" so that TeX does not join them into a
// dash. It returns s itself when nothing needs escaping.
//
// Example:
//
//	escape.TeX("#2: 20%")      // `\#2: 20\%`
//	escape.TeX("--foo, ---bar") // "-{}-foo, -{}-{}-bar"
func TeX(s string) string {
	first := strings.IndexAny(s, texSpecial)
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	b.WriteString(s[:first])

	// Every special byte is ASCII, so a byte scan never splits a character.
	for i := first; i < len(s); i++ {
		c := s[i]
		switch c {
		case '-':
			if i+1 < len(s) && s[i+1] == '-' {
				b.WriteString("-{}")
			} else {
				b.WriteByte(c)
			}
		case '&', '%', '$', '#', '_', '{', '}':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '[':
			b.WriteString("{[}")
		case ']':
			b.WriteString("{]}")
		case '~':
			b.WriteString(`\textasciitilde{}`)
		case '^':
			b.WriteString(`\textasciicircum{}`)
		case '<':
			b.WriteString(`\textless{}`)
		case '>':
			b.WriteString(`\textgreater{}`)
		case '!':
			b.WriteString("!{}")
		case '\\':
			b.WriteString(`\textbackslash{}`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// NBSpacesTeX replaces no-break spaces with their LaTeX spelling: a narrow
// one becomes "\,", a demi em space "\enspace " and a standard one "~".
//
// Call it after [TeX], which would otherwise escape the backslashes and
// tildes it writes.
//
// Example:
//
//	escape.NBSpacesTeX("Des espaces insécables\u202f? Ça alors\u202f!") // `Des espaces insécables\,? Ça alors\,!`
func NBSpacesTeX(s string) string {
	first := strings.IndexFunc(s, chars.IsNoBreak)
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:first])
	for _, r := range s[first:] {
		switch r {
		case chars.NNBSP:
			b.WriteString(`\,`)
		case chars.DemiEm:
			b.WriteString(`\enspace `)
		case chars.NBSP:
			b.WriteByte('~')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
