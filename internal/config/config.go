// Package config loads the configuration of the typo command from default
// values, an optional YAML file and TYPO_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tsawler/typo"
	"github.com/tsawler/typo/french"
)

// ErrConfiguration wraps every error returned by [Load].
var ErrConfiguration = errors.New("configuration error")

// Config is the configuration of the typo command.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	French FrenchConfig `mapstructure:"french"`

	// Transforms names the transformations to apply, in order.
	Transforms []string `mapstructure:"transforms" validate:"required,min=1,dive,transform"`
	// Workers is the number of files formatted concurrently.
	Workers int `mapstructure:"workers" validate:"min=1,max=256"`
	// HTML formats every input as HTML, whatever its extension.
	HTML bool `mapstructure:"html"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// FrenchConfig mirrors french.Config.
type FrenchConfig struct {
	CurrencyLen int `mapstructure:"currency_len"  validate:"min=0"`
	UnitLen     int `mapstructure:"unit_len"      validate:"min=0"`
	QuoteLen    int `mapstructure:"quote_len"     validate:"min=0"`
	RealWordLen int `mapstructure:"real_word_len" validate:"min=0"`

	TypographicQuotes   bool `mapstructure:"typographic_quotes"`
	TypographicEllipsis bool `mapstructure:"typographic_ellipsis"`
	LigatureDashes      bool `mapstructure:"ligature_dashes"`
	LigatureGuillemets  bool `mapstructure:"ligature_guillemets"`
	ComposeUnicode      bool `mapstructure:"compose_unicode"`
}

// Formatter returns a French formatter using these settings.
func (c FrenchConfig) Formatter() french.Formatter {
	return french.NewWithConfig(french.Config{
		CurrencyLen:         c.CurrencyLen,
		UnitLen:             c.UnitLen,
		QuoteLen:            c.QuoteLen,
		RealWordLen:         c.RealWordLen,
		TypographicQuotes:   c.TypographicQuotes,
		TypographicEllipsis: c.TypographicEllipsis,
		LigatureDashes:      c.LigatureDashes,
		LigatureGuillemets:  c.LigatureGuillemets,
		ComposeUnicode:      c.ComposeUnicode,
	})
}

// Pipeline returns the transformation pipeline described by c.
func (c *Config) Pipeline() *typo.Pipeline {
	return typo.New().French(c.French.Formatter()).Then(c.Transforms...)
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("transform", validateTransform); err != nil {
		return fmt.Errorf("registering validation: %w", err)
	}
	return v.Struct(c)
}

// validateTransform accepts registered transformation names.
func validateTransform(fl validator.FieldLevel) bool {
	_, err := typo.Lookup(fl.Field().String())
	return err == nil
}
