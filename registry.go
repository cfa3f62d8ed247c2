package typo

import (
	"errors"
	"fmt"

	"github.com/tsawler/typo/caps"
	"github.com/tsawler/typo/clean"
	"github.com/tsawler/typo/escape"
	"github.com/tsawler/typo/french"
)

// ErrUnknownTransform is returned when a transformation name is not
// registered.
var ErrUnknownTransform = errors.New("unknown transformation")

// Transform is a named text transformation.
type Transform struct {
	Name        string
	Description string

	apply func(f french.Formatter, s string) string
}

// Apply runs the transformation on s. French formatting uses the default
// settings; use a [Pipeline] to configure them. Only transformations
// obtained from [Lookup] or [Transforms] do anything: the zero Transform
// returns s unchanged.
func (t Transform) Apply(s string) string {
	if t.apply == nil {
		return s
	}
	return t.apply(french.New(), s)
}

// plain adapts a pass that needs no French settings.
func plain(fn func(string) string) func(french.Formatter, string) string {
	return func(_ french.Formatter, s string) string {
		return fn(s)
	}
}

var registry = []Transform{
	{"escape_html", "escape text for HTML display", plain(escape.HTML)},
	{"escape_tex", "escape text for LaTeX display", plain(escape.TeX)},
	{"escape_nb_spaces", "wrap narrow non-breaking spaces in HTML spans", plain(escape.NBSpacesHTML)},
	{"escape_nb_spaces_tex", "write non-breaking spaces as LaTeX commands", plain(escape.NBSpacesTeX)},
	{"clean_whitespaces", "collapse runs of spaces", plain(clean.Whitespaces)},
	{"clean_ellipsis", "use unicode character ‘…’ for ellipsis", plain(clean.Ellipsis)},
	{"clean_quotes", "try to replace straight quotes with curly ones", plain(clean.Quotes)},
	{"clean_dashes", "replace ‘--’ and ‘---’ with en and em dashes", plain(clean.Dashes)},
	{"clean_guillemets", "replace ‘<<’ and ‘>>’ with guillemets", plain(clean.Guillemets)},
	{"compose", "compose Unicode characters (normalization form C)", plain(clean.Compose)},
	{"caps_tex", "set uppercase words in LaTeX small caps", plain(caps.TeX)},
	{"format_french", "try to apply french typographic rules", french.Formatter.Format},
	{"format_french_tex", "apply french typographic rules, writing ‘~’ for non-breaking spaces", french.Formatter.FormatTeX},
}

// Transforms returns every registered transformation, in a stable order.
func Transforms() []Transform {
	return append([]Transform(nil), registry...)
}

// Lookup returns the transformation called name.
func Lookup(name string) (Transform, error) {
	for _, t := range registry {
		if t.Name == name {
			return t, nil
		}
	}
	return Transform{}, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
}
