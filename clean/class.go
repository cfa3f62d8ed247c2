package clean

import "unicode"

// Class is the coarse category of a character used to find word boundaries.
// The zero value is Whitespace, which is also what the edges of a text count as.
type Class int

const (
	// Whitespace for any Unicode white space, and for the text boundaries.
	Whitespace Class = iota
	// Punctuation for everything that is neither whitespace nor alphanumeric.
	Punctuation
	// Alphanumeric for letters and numbers.
	Alphanumeric
)

// String returns a string representation of the class.
func (c Class) String() string {
	switch c {
	case Whitespace:
		return "Whitespace"
	case Punctuation:
		return "Punctuation"
	case Alphanumeric:
		return "Alphanumeric"
	default:
		return "Unknown"
	}
}

// ClassOf returns the class of a single character.
func ClassOf(r rune) Class {
	switch {
	case unicode.IsLetter(r) || unicode.IsNumber(r):
		return Alphanumeric
	case unicode.IsSpace(r):
		return Whitespace
	default:
		return Punctuation
	}
}

// classAt returns the class of runes[i], treating out-of-range indexes as
// text boundaries.
func classAt(runes []rune, i int) Class {
	if i < 0 || i >= len(runes) {
		return Whitespace
	}
	return ClassOf(runes[i])
}
