package french

import (
	"strings"

	"github.com/tsawler/typo/clean"
	"github.com/tsawler/typo/internal/chars"
)

// output selects how no-break spaces are written.
type output int

const (
	outputUnicode output = iota
	outputTeX
)

// Format formats s according to French typographic rules, inserting Unicode
// no-break spaces. It returns s itself when there is nothing to change.
//
// Example:
//
//	french.New().Format("Quoi ? Déjà !") // "Quoi\u202f? Déjà\u202f!"
func (f Formatter) Format(s string) string {
	return f.format(s, outputUnicode)
}

// FormatTeX is like Format but writes '~' for every no-break space,
// whatever its width.
//
// Example:
//
//	french.New().FormatTeX("« Est-ce bien formaté ? »") // "«~Est-ce bien formaté~?~»"
func (f Formatter) FormatTeX(s string) string {
	return f.format(s, outputTeX)
}

func (f Formatter) format(s string, out output) string {
	s = f.clean(s)

	runes := []rune(s)
	firstTrouble := indexRuneFunc(runes, isTrouble)
	firstDigit := indexRuneFunc(runes, isDigit)
	if firstTrouble < 0 && firstDigit < 0 {
		return finish(s, nil, out)
	}

	changed := false
	if firstDigit >= 0 && f.spaceNumbers(runes, firstDigit) {
		changed = true
	}
	if firstTrouble >= 0 && f.spacePunctuation(runes, firstTrouble) {
		changed = true
	}
	if !changed {
		return finish(s, nil, out)
	}
	return finish(s, runes, out)
}

// clean runs the lexical passes, in order.
func (f Formatter) clean(s string) string {
	if f.cfg.ComposeUnicode {
		s = clean.Compose(s)
	}
	s = clean.Whitespaces(s)
	if f.cfg.LigatureDashes {
		s = clean.Dashes(s)
	}
	if f.cfg.LigatureGuillemets {
		s = clean.Guillemets(s)
	}
	if f.cfg.TypographicQuotes {
		s = clean.Quotes(s)
	}
	if f.cfg.TypographicEllipsis {
		s = clean.Ellipsis(s)
	}
	return s
}

// finish returns the formatted text: runes if the spacing passes rewrote
// anything, s otherwise. For TeX output, no-break spaces become '~'.
func finish(s string, runes []rune, out output) string {
	if out == outputTeX {
		if runes == nil {
			if strings.IndexFunc(s, chars.IsNoBreak) < 0 {
				return s
			}
			runes = []rune(s)
		}
		for i, r := range runes {
			if chars.IsNoBreak(r) {
				runes[i] = chars.Marker
			}
		}
	}
	if runes == nil {
		return s
	}
	return string(runes)
}

// isTrouble reports whether the spacing around r may need fixing.
func isTrouble(r rune) bool {
	switch r {
	case '?', '!', ';', ':', chars.CloseGuillemet, chars.OpenGuillemet, chars.EmDash, chars.EnDash:
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDash(r rune) bool {
	return r == '-' || r == chars.EnDash || r == chars.EmDash
}

func indexRuneFunc(runes []rune, fn func(rune) bool) int {
	for i, r := range runes {
		if fn(r) {
			return i
		}
	}
	return -1
}

// set writes r at runes[i] and reports whether that changed anything.
func set(runes []rune, i int, r rune) bool {
	if runes[i] == r {
		return false
	}
	runes[i] = r
	return true
}
