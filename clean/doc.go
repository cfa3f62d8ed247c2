// Package clean provides language-independent typographic cleanup passes.
//
// Every function in this package takes a string and returns either the very
// same string, when it found nothing to rewrite, or a freshly built
// replacement. None of them keeps state between calls, so they are safe for
// concurrent use.
//
// # Passes
//
//   - [Whitespaces] collapses runs of space-like characters without trimming
//   - [Dashes] turns `--` into an en dash and `---` into an em dash
//   - [Guillemets] turns `<<` and `>>` into « and »
//   - [Ellipsis] turns `...` into … and spaced dots into no-break runs
//   - [Quotes] turns straight quotes into curly ones
//   - [Compose] puts text into Unicode normalization form C
//
// Passes are usually chained, whitespace first:
//
//	s = clean.Quotes(clean.Ellipsis(clean.Whitespaces(s)))
//
// # Character Classes
//
// Quote direction is decided by comparing the [Class] of the characters on
// each side of a quote. Classes are ordered Whitespace < Punctuation <
// Alphanumeric, so "the left side is weaker than the right side" means the
// quote starts a word.
//
// # Complexity
//
// All passes are linear except [Quotes]: each single quote that may open a
// quotation scans forward for its closing match, which makes the worst case
// quadratic in the length of the input. Inputs are expected to be paragraphs.
package clean
