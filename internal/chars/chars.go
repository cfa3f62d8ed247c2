// Package chars names the spacing and punctuation runes shared by the
// cleaning, formatting and escaping packages.
package chars

// Spacing characters inserted or recognised by the formatters.
const (
	// NBSP is the standard no-break space (U+00A0).
	NBSP = '\u00a0'
	// NNBSP is the narrow no-break space (U+202F), used before ? ! ; in French.
	NNBSP = '\u202f'
	// DemiEm is the en space (U+2002), used after a dialogue dash.
	DemiEm = '\u2002'
	// Marker replaces every no-break variant in typesetting output.
	Marker = '~'
)

// Typographic glyphs produced by the cleaning passes.
const (
	LeftDoubleQuote  = '“'
	RightDoubleQuote = '”'
	LeftSingleQuote  = '‘'
	RightSingleQuote = '’'
	OpenGuillemet    = '«'
	CloseGuillemet   = '»'
	EnDash           = '–'
	EmDash           = '—'
	Ellipsis         = '…'
)

// IsSpace reports whether r is one of the space-like characters that the
// formatters are allowed to collapse or rewrite: a plain space or one of the
// no-break variants. Tabs and newlines are deliberately excluded.
func IsSpace(r rune) bool {
	switch r {
	case ' ', NBSP, NNBSP, DemiEm:
		return true
	}
	return false
}

// IsNoBreak reports whether r is a no-break spacing variant.
func IsNoBreak(r rune) bool {
	switch r {
	case NBSP, NNBSP, DemiEm:
		return true
	}
	return false
}
