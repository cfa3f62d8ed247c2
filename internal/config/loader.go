package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/tsawler/typo/french"
)

// Load loads and validates configuration from:
// 1. Default values
// 2. the YAML file at path, or typo.yaml in the working directory when
// path is empty
// 3. TYPO_* environment variables, such as TYPO_FRENCH_QUOTE_LEN
//
// An explicit path must exist; the default file is optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := loadConfig(v, path); err != nil {
		return nil, fmt.Errorf("%w: loading config file: %w", ErrConfiguration, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing config: %w", ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return cfg, nil
}

// loadConfig reads the config file and sets up environment variables.
func loadConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("typo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TYPO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// setDefaults registers every key, which also lets AutomaticEnv find them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	fr := french.DefaultConfig()
	v.SetDefault("french.currency_len", DefaultCurrencyLen)
	v.SetDefault("french.unit_len", DefaultUnitLen)
	v.SetDefault("french.quote_len", DefaultQuoteLen)
	v.SetDefault("french.real_word_len", DefaultRealWordLen)
	v.SetDefault("french.typographic_quotes", fr.TypographicQuotes)
	v.SetDefault("french.typographic_ellipsis", fr.TypographicEllipsis)
	v.SetDefault("french.ligature_dashes", fr.LigatureDashes)
	v.SetDefault("french.ligature_guillemets", fr.LigatureGuillemets)
	v.SetDefault("french.compose_unicode", fr.ComposeUnicode)

	v.SetDefault("transforms", DefaultTransforms)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("html", false)
}
