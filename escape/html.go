package escape

import (
	"regexp"
	"strings"

	"github.com/tsawler/typo/internal/chars"
)

// HTML replaces <, > and & with the matching entities. It returns s itself
// when none of them is present.
//
// Example:
//
//	escape.HTML("<foo> & <bar>") // "&lt;foo&gt; &amp; &lt;bar&gt;"
func HTML(s string) string {
	first := strings.IndexAny(s, "<>&")
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	b.WriteString(s[:first])
	for i := first; i < len(s); i++ {
		switch c := s[i]; c {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Quotes replaces double quotes with single ones, for text that goes inside
// a double-quoted attribute value.
func Quotes(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}
	return strings.ReplaceAll(s, `"`, "'")
}

// nnbspWord matches a run of non-space characters holding at least one
// narrow no-break space.
var nnbspWord = regexp.MustCompile(`[^\s\p{Z}]*\x{202F}(?:[^\s\p{Z}]|\x{202F})*`)

// NBSpacesHTML works around fonts and renderers that lack the narrow
// no-break space. Each word containing one is wrapped in a span of class
// "nnbsp", and the narrow spaces inside become &#160;. The span needs some
// styling to look right:
//
//	.nnbsp {
//	    word-spacing: -0.13em;
//	}
//
// Call it after [HTML], which would otherwise escape the markup.
//
// Example:
//
//	escape.NBSpacesHTML("Test\u202f?") // `<span class = "nnbsp">Test&#160;?</span>`
func NBSpacesHTML(s string) string {
	if !strings.ContainsRune(s, chars.NNBSP) {
		return s
	}
	return nnbspWord.ReplaceAllStringFunc(s, func(word string) string {
		return `<span class = "nnbsp">` + strings.ReplaceAll(word, string(chars.NNBSP), "&#160;") + "</span>"
	})
}
