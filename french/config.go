package french

// Config holds the thresholds and toggles of a [Formatter].
type Config struct {
	// CurrencyLen is the longest all-uppercase word after a number that is
	// still taken as a currency code (EUR, USD).
	CurrencyLen int
	// UnitLen is the longest lowercase word after a number that is still
	// taken as a unit (km, kg).
	UnitLen int
	// QuoteLen is the span, in characters, above which a quotation or an
	// incise is treated as dialogue and gets standard no-break spaces.
	QuoteLen int
	// RealWordLen is the length above which a capitalized word before a
	// period is a real word ending a sentence, not an abbreviation.
	RealWordLen int

	// TypographicQuotes replaces straight quotes with curly ones.
	TypographicQuotes bool
	// TypographicEllipsis replaces "..." with "…".
	TypographicEllipsis bool
	// LigatureDashes replaces "--" with "–" and "---" with "—".
	LigatureDashes bool
	// LigatureGuillemets replaces "<<" with "«" and ">>" with "»".
	LigatureGuillemets bool
	// ComposeUnicode converts the input to normalization form C first.
	ComposeUnicode bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CurrencyLen:         3,
		UnitLen:             2,
		QuoteLen:            20,
		RealWordLen:         3,
		TypographicQuotes:   true,
		TypographicEllipsis: true,
		LigatureDashes:      false,
		LigatureGuillemets:  false,
		ComposeUnicode:      false,
	}
}

// normalized returns a copy of c with negative thresholds set to zero.
func (c Config) normalized() Config {
	c.CurrencyLen = nonNegative(c.CurrencyLen)
	c.UnitLen = nonNegative(c.UnitLen)
	c.QuoteLen = nonNegative(c.QuoteLen)
	c.RealWordLen = nonNegative(c.RealWordLen)
	return c
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Formatter formats text according to French typographic rules.
//
// A Formatter is a value: every setter returns a modified copy and leaves
// the receiver untouched, so a configured Formatter can be shared freely,
// including across goroutines.
type Formatter struct {
	cfg Config
}

// New returns a Formatter with the default configuration.
func New() Formatter {
	return Formatter{cfg: DefaultConfig()}
}

// NewWithConfig returns a Formatter using cfg. Negative thresholds are
// treated as zero.
func NewWithConfig(cfg Config) Formatter {
	return Formatter{cfg: cfg.normalized()}
}

// Config returns the configuration of f.
func (f Formatter) Config() Config {
	return f.cfg
}

// CurrencyLen sets the longest word taken as a currency code after a number.
//
// Default is 3.
func (f Formatter) CurrencyLen(n int) Formatter {
	f.cfg.CurrencyLen = nonNegative(n)
	return f
}

// UnitLen sets the longest word taken as a unit after a number.
//
// Default is 2.
func (f Formatter) UnitLen(n int) Formatter {
	f.cfg.UnitLen = nonNegative(n)
	return f
}

// QuoteLen sets the span above which a quotation is treated as dialogue
// rather than a few quoted words.
//
// Default is 20.
func (f Formatter) QuoteLen(n int) Formatter {
	f.cfg.QuoteLen = nonNegative(n)
	return f
}

// RealWordLen sets the length above which a word before a period is a real
// word, not an abbreviation such as the "M" of "M. Dupuis".
//
// Default is 3.
func (f Formatter) RealWordLen(n int) Formatter {
	f.cfg.RealWordLen = nonNegative(n)
	return f
}

// TypographicQuotes enables curly quotes: "L'" becomes "L’".
//
// Default is true.
func (f Formatter) TypographicQuotes(b bool) Formatter {
	f.cfg.TypographicQuotes = b
	return f
}

// TypographicEllipsis enables the ellipsis character: "..." becomes "…".
//
// Default is true.
func (f Formatter) TypographicEllipsis(b bool) Formatter {
	f.cfg.TypographicEllipsis = b
	return f
}

// LigatureDashes replaces "--" with "–" and "---" with "—".
//
// Default is false.
func (f Formatter) LigatureDashes(b bool) Formatter {
	f.cfg.LigatureDashes = b
	return f
}

// LigatureGuillemets replaces "<<" with "«" and ">>" with "»".
//
// Default is false.
func (f Formatter) LigatureGuillemets(b bool) Formatter {
	f.cfg.LigatureGuillemets = b
	return f
}

// ComposeUnicode puts the input in normalization form C before anything
// else, so that decomposed accented letters are seen as letters.
//
// Default is false.
func (f Formatter) ComposeUnicode(b bool) Formatter {
	f.cfg.ComposeUnicode = b
	return f
}
