package french

import (
	"unicode"

	"github.com/tsawler/typo/internal/chars"
)

// spacePunctuation fixes the spaces around ? ! ; : « » and dashes. first is
// the index of the first character that needs attention. Positions before
// the current one are never revisited; the closing side of a guillemet or
// dash pair is written ahead of the scan when the opening side is reached,
// and remembered so the closing dash is not taken for a new opener.
// It reports whether runes changed.
func (f Formatter) spacePunctuation(runes []rune, first int) bool {
	changed := false
	// closers marks the spaces written before closing dashes.
	closers := make([]bool, len(runes))
	update := func(i int, r rune) {
		if set(runes, i, r) {
			changed = true
		}
	}

	start := first - 1
	if start < 0 {
		start = 0
	}
	for i := start; i < len(runes)-1; i++ {
		current, next := runes[i], runes[i+1]

		if chars.IsSpace(current) {
			switch next {
			case '?', '!', ';':
				update(i, chars.NNBSP)
			case ':':
				update(i, chars.NBSP)
			case chars.CloseGuillemet:
				// Any other space was put there on purpose.
				if current == ' ' {
					update(i, chars.NBSP)
				}
			}
			continue
		}

		if !chars.IsSpace(next) {
			continue
		}
		switch {
		case current == chars.OpenGuillemet:
			space, closer := f.guillemetSpace(runes, i)
			if closer >= 0 {
				update(closer, space)
			}
			update(i+1, space)
		case isDash(current):
			space, closer := f.dashSpace(runes, i, closers)
			if closer >= 0 {
				update(closer, space)
				closers[closer] = true
			}
			update(i+1, space)
		}
	}
	return changed
}

// guillemetSpace chooses the space to put after the « at runes[i]. If the
// matching » is preceded by a space, closer is the index of that space,
// which must get the same width; otherwise closer is -1.
func (f Formatter) guillemetSpace(runes []rune, i int) (space rune, closer int) {
	j := indexRuneFrom(runes, chars.CloseGuillemet, i+1)
	if j < 0 || !chars.IsSpace(runes[j-1]) {
		// Unclosed: most likely a dialogue.
		return chars.NBSP, -1
	}
	return f.delimiterSpace(i, j), j - 1
}

// dashSpace chooses the space to put after the dash at runes[i].
//
// A dash at the very start of the text opens a dialogue and is followed by a
// demi em space. A dash preceded by a space marked in closers closes an
// incise whose opening side was already handled, so the space after it
// stays breakable.
// Otherwise the dash opens an incise: if its closing dash can be found
// before the end of the sentence, closer is the index of the space before
// it.
func (f Formatter) dashSpace(runes []rune, i int, closers []bool) (space rune, closer int) {
	if i <= 1 {
		return chars.DemiEm, -1
	}
	if closers[i-1] {
		return ' ', -1
	}
	closer = f.findClosingDash(runes, i+1)
	if closer < 0 {
		return chars.NBSP, -1
	}
	return f.delimiterSpace(i, closer+1), closer
}

// delimiterSpace returns the space for a pair of delimiters at indexes
// opening and closing. Long spans, and spans opening the text, are dialogue or real
// quotations and get standard no-break spaces; short ones quote a few words
// and get narrow ones.
func (f Formatter) delimiterSpace(opening, closing int) rune {
	if opening <= 1 || closing-opening > f.cfg.QuoteLen {
		return chars.NBSP
	}
	return chars.NNBSP
}

// findClosingDash looks for a dash preceded by a space, starting at n, and
// returns the index of that space. It gives up and returns -1 as soon as the
// sentence seems to end: a ? or ! followed by an uppercase letter, or a
// period followed by an uppercase letter when the word before the period is
// not a short capitalized abbreviation such as "M" or "Mme".
func (f Formatter) findClosingDash(runes []rune, n int) int {
	var word []rune
	for j := n; j < len(runes); j++ {
		switch r := runes[j]; {
		case r == '!' || r == '?':
			if nextLetterIsUpper(runes, j+1) {
				return -1
			}
		case isDash(r):
			if chars.IsSpace(runes[j-1]) {
				return j - 1
			}
		case r == '.':
			if !nextLetterIsUpper(runes, j+1) {
				continue
			}
			if len(word) > 0 && (!unicode.IsUpper(word[0]) || len(word) > f.cfg.RealWordLen) {
				return -1
			}
		case unicode.IsSpace(r):
			word = word[:0]
		default:
			word = append(word, r)
		}
	}
	return -1
}

// nextLetterIsUpper reports whether the first cased letter at or after n,
// skipping whitespace and other uncased characters, is uppercase.
func nextLetterIsUpper(runes []rune, n int) bool {
	for _, r := range runes[min(n, len(runes)):] {
		switch {
		case unicode.IsUpper(r):
			return true
		case unicode.IsLower(r):
			return false
		}
	}
	return false
}

func indexRuneFrom(runes []rune, target rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}
