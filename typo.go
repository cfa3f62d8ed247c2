// Package typo fixes the typography of text written with a keyboard:
// straight quotes become curly, ASCII approximations become dashes,
// guillemets and ellipses, and French text gets the no-break spaces its
// rules require.
//
// Basic usage:
//
//	s := typo.Format("« Comment allez-vous ? » demanda-t-elle.")
//
// Transformations can also be chained by name, the way the typo command
// does:
//
//	s, err := typo.New().
//	    Then("clean_quotes", "clean_ellipsis").
//	    Then("escape_html").
//	    Apply(input)
//
// The passes themselves live in packages clean, french, escape and caps;
// htmldoc applies any of them to the text of an HTML document.
package typo

import (
	"github.com/tsawler/typo/french"
)

// Format formats s according to French typographic rules with the default
// settings, inserting Unicode no-break spaces.
//
// Example:
//
//	typo.Format("Vraiment ?") // "Vraiment\u202f?"
func Format(s string) string {
	return french.New().Format(s)
}

// FormatTeX is like [Format] but writes '~' for every no-break space.
//
// Example:
//
//	typo.FormatTeX("« Un test »") // "«~Un test~»"
func FormatTeX(s string) string {
	return french.New().FormatTeX(s)
}

// Apply collapses the whitespace of s, then applies the named
// transformations in order. It fails with [ErrUnknownTransform] if a name
// is not registered.
//
// Example:
//
//	s, err := typo.Apply(`"Hi"...`, "clean_quotes", "clean_ellipsis")
func Apply(s string, names ...string) (string, error) {
	return New().Then(names...).Apply(s)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	s := typo.Must(typo.Apply(input, "format_french"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
