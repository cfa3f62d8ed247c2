// Package french applies French typographic spacing rules to plain text.
//
// A [Formatter] is built once with a chain of setters and can then be shared
// by any number of goroutines:
//
//	f := french.New().
//	    LigatureDashes(true).
//	    QuoteLen(28)
//	out := f.Format("« Est-ce bien formaté ? » se demandait-elle.")
//
// # Rules
//
//   - the space before ? ! ; becomes a narrow no-break space
//   - the space before : becomes a no-break space
//   - the space after « and before » becomes a narrow or standard no-break
//     space, depending on the length of the quotation
//   - the space after a dash opening an incise, and before the dash closing
//     it, becomes a no-break space; a dash starting the text is taken as a
//     dialogue dash and followed by a demi em space
//   - spaces inside numbers (10 000) and between a number and its unit or
//     currency (50 km, 10 €, 20 °C) become narrow no-break spaces
//
// Before that, the formatter collapses redundant spaces and, depending on
// its configuration, applies the passes of package clean: dash and
// guillemet ligatures, curly quotes and the ellipsis character.
//
// # Heuristics
//
// Several decisions are guesses made from local context, tuned by four
// thresholds: CurrencyLen and UnitLen bound the length of the word that may
// follow a number, QuoteLen separates short quotations from dialogue, and
// RealWordLen separates abbreviations ("M. Dupuis") from sentence ends when
// looking for the dash closing an incise. When in doubt a character is left
// as it is.
//
// # Output
//
// [Formatter.Format] inserts the Unicode spacing characters. [Formatter.FormatTeX]
// writes a single '~' for every no-break variant instead, which is convenient
// for LaTeX and makes results readable in tests.
//
// Format expects one paragraph at a time: the start of the string is taken
// as the start of a line.
package french
