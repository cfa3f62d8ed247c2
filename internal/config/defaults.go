package config

// Default values for configuration
const (
	// Log defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// French formatter defaults
	DefaultCurrencyLen = 3
	DefaultUnitLen     = 2
	DefaultQuoteLen    = 20
	DefaultRealWordLen = 3

	// Processing defaults
	DefaultWorkers = 4
)

// DefaultTransforms is the transformation list used when none is given.
var DefaultTransforms = []string{"format_french"}
