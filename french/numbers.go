package french

import (
	"unicode"

	"github.com/tsawler/typo/internal/chars"
)

// spaceNumbers makes the spaces inside a number, and between a number and
// the unit or currency that follows it, narrow no-break spaces. first is the
// index of the first digit. It reports whether runes changed.
func (f Formatter) spaceNumbers(runes []rune, first int) bool {
	changed := false
	inNumber := false

	start := first - 1
	if start < 0 {
		start = 0
	}
	for i := start; i < len(runes)-1; i++ {
		r := runes[i]
		switch {
		case isDigit(r):
			// A digit glued to a letter (A4, B52) does not start a number.
			if i == 0 || !unicode.IsLetter(runes[i-1]) {
				inNumber = true
			}
		case chars.IsSpace(r):
			if inNumber && (isDigit(runes[i+1]) || f.isUnit(runes, i+1)) {
				if set(runes, i, chars.NNBSP) {
					changed = true
				}
			}
		default:
			inNumber = false
		}
	}
	return changed
}

// isUnit reports whether the word starting at runes[i] looks like something
// that sticks to the number before it: a degree sign, a single capital
// letter, a short all-uppercase currency code, a short lowercase unit, or a
// symbol such as % or €.
//
// Single lowercase letters are not units, to keep "de 5 à 10" breakable.
func (f Formatter) isUnit(runes []rune, i int) bool {
	r := runes[i]
	switch {
	case r == '°':
		return true
	case unicode.IsUpper(r):
		word := nextWord(runes, i)
		if len(word) == 1 {
			return true
		}
		return len(word) <= f.cfg.CurrencyLen && allUpper(word)
	case unicode.IsLetter(r):
		n := len(nextWord(runes, i))
		return n > 1 && n <= f.cfg.UnitLen
	case unicode.IsSpace(r):
		return false
	default:
		// A symbol stands alone: "%" yes, "$US" no.
		return i+1 >= len(runes) || !unicode.IsLetter(runes[i+1])
	}
}

// nextWord returns the run of letters starting at runes[i].
func nextWord(runes []rune, i int) []rune {
	end := i
	for end < len(runes) && unicode.IsLetter(runes[end]) {
		end++
	}
	return runes[i:end]
}

func allUpper(word []rune) bool {
	for _, r := range word {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
