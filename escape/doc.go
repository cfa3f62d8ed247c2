// Package escape escapes formatted text for HTML or LaTeX output.
//
// The typographic passes of packages clean and french insert Unicode
// no-break spaces and curly quotes; they do not know about markup. The
// functions here run afterwards, on their output:
//
//	s = french.New().Format(s)
//	s = escape.NBSpacesHTML(escape.HTML(s))
//
// For LaTeX, escape the reserved characters first and convert the no-break
// spaces last, since the conversion itself writes backslashes:
//
//	s = escape.NBSpacesTeX(escape.TeX(s))
//
// The HTML functions only handle text that ends up between tags. They are
// meant for trusted content and are not a sanitizer.
package escape
