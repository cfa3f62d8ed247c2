// Package htmldoc applies text transformations to HTML documents.
//
// Typographic passes work on plain strings and know nothing about markup:
// run over raw HTML they would curl the quotes around attribute values and
// treat tags as words. This package hands them the text content only.
//
// # Streaming
//
// [Format] tokenizes its input and copies every tag, comment and doctype
// byte for byte. Each text token is unescaped, passed to the
// transformation, and escaped again with [escape.HTML]:
//
//	err := htmldoc.Format(r, w, french.New().Format)
//
// # Parsed Documents
//
// [FormatNode] does the same on a tree built by [html.Parse], rewriting the
// data of text nodes in place.
//
// # Raw Elements
//
// Text inside script, style, pre, code, kbd, samp, textarea, math, svg and
// template elements is left untouched: it is code or preformatted content
// where a curly quote or a no-break space would change its meaning.
//
// # Limitations
//
// Each text token is transformed on its own. Context does not cross tags,
// so in "l'<em>été</em>" the quote only sees the text before the tag.
package htmldoc
