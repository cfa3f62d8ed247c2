package clean

import (
	"strings"
	"unicode"

	"github.com/tsawler/typo/internal/chars"
)

// Quotes replaces straight quotes with typographic ones.
//
// Double quotes are reliable: a quote whose left side is weaker than its
// right side (see [Class]) opens a quotation; otherwise it closes one if a
// quotation is open; otherwise it is left as is.
//
// Single quotes are ambiguous, since the same character is used for
// apostrophes. A quote between two alphanumeric characters, or at the end of
// a word, becomes an apostrophe (’). A quote at the start of a word only
// becomes an opening quote (‘) when a matching closing quote can be found
// further on; otherwise it is taken as an elision, as in ’60s. A quote
// surrounded by whitespace is left alone.
//
// Example:
//
//	clean.Quotes(`"foo"`)                       // "“foo”"
//	clean.Quotes("It's a good day to say 'hi'") // "It’s a good day to say ‘hi’"
func Quotes(s string) string {
	if !strings.ContainsAny(s, `"'`) {
		return s
	}

	runes := []rune(s)
	decisions := classifyQuotes(runes)

	changed := false
	for _, d := range decisions {
		if d != 0 {
			changed = true
			break
		}
	}
	if !changed {
		return s
	}

	for i, d := range decisions {
		if d != 0 {
			runes[i] = d
		}
	}
	return string(runes)
}

// classifyQuotes decides the glyph of every quote in runes without modifying
// them. The returned slice holds the replacement for each position, or 0 to
// keep the original character.
//
// The nesting state lives only for the duration of the call: a counter of
// open double quotes, and the position of the closing single quote matched by
// the last opening one (-1 when none is pending). Quotes still open at the
// end of the text are simply left as emitted.
func classifyQuotes(runes []rune) []rune {
	decisions := make([]rune, len(runes))
	openDoubles := 0
	pending := -1

	for i, r := range runes {
		if decisions[i] != 0 {
			// Already matched as the closer of an earlier opening quote.
			continue
		}

		prev, next := classAt(runes, i-1), classAt(runes, i+1)
		switch r {
		case '"':
			switch {
			case prev < next:
				openDoubles++
				decisions[i] = chars.LeftDoubleQuote
			case openDoubles > 0:
				openDoubles--
				decisions[i] = chars.RightDoubleQuote
			}

		case '\'':
			hasPending := pending >= 0 && i <= pending
			switch {
			case prev == Alphanumeric && next == Alphanumeric:
				// Elision or possessive.
				decisions[i] = chars.RightSingleQuote
			case prev < next:
				j := findClosingSingleQuote(runes, decisions, i+1)
				if j < 0 {
					decisions[i] = chars.RightSingleQuote
					break
				}
				decisions[j] = chars.RightSingleQuote
				pending = j
				if hasPending {
					decisions[i] = chars.RightSingleQuote
				} else {
					decisions[i] = chars.LeftSingleQuote
				}
			case prev > next:
				decisions[i] = chars.RightSingleQuote
			}
		}
	}
	return decisions
}

// findClosingSingleQuote returns the position of the first undecided single
// quote at or after from that can close a quotation: it must follow a
// non-space character and must not be followed by an alphanumeric one.
// It returns -1 if there is none.
func findClosingSingleQuote(runes, decisions []rune, from int) int {
	for j := from; j < len(runes); j++ {
		if runes[j] != '\'' || decisions[j] != 0 {
			continue
		}
		if unicode.IsSpace(runes[j-1]) {
			continue
		}
		if classAt(runes, j+1) != Alphanumeric {
			return j
		}
	}
	return -1
}
