// Package config loads the settings of the lexnum command from defaults,
// an optional config file, LEXNUM_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/TsubasaBE/go-lexnum/numfmt"
	"github.com/TsubasaBE/go-lexnum/parse"
)

const envPrefix = "lexnum"

// Config is the configuration of the lexnum command.
type Config struct {
	// Kind is the parse kind: "float" or "int".
	Kind string `mapstructure:"kind" validate:"oneof=float int"`
	// MinDigits is the minimum number of fractional digits when formatting.
	MinDigits int `mapstructure:"min_digits" validate:"gte=0,lte=1100"`
	// Pattern is an Excel-style number format.  When set it overrides
	// MinDigits.
	Pattern string `mapstructure:"pattern"`
}

// GetDefaultConfig returns the configuration used when nothing is set.
func GetDefaultConfig() *Config {
	return &Config{
		Kind:      parse.Float.String(),
		MinDigits: 0,
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"kind":       "kind",
	"min-digits": "min_digits",
	"pattern":    "pattern",
}

// Load reads the configuration.  path may be empty, in which case only
// defaults, environment and flags apply.  flags may be nil; flags that are
// not defined on it are skipped.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	def := GetDefaultConfig()
	v.SetDefault("kind", def.Kind)
	v.SetDefault("min_digits", def.MinDigits)
	v.SetDefault("pattern", def.Pattern)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "read config file %s", path)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Trace(err)
				}
			}
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

// Validate checks field ranges.
func (config *Config) Validate() error {
	if err := validator.New().Struct(config); err != nil {
		return errors.NewNotValid(err, "config")
	}
	return nil
}

// ParseKind returns the parse kind selected by Kind.
func (config *Config) ParseKind() parse.Kind {
	if config.Kind == parse.Integer.String() {
		return parse.Integer
	}
	return parse.Float
}

// FractionalDigits returns the minimum fractional-digit count to format
// with, taking Pattern into account.
func (config *Config) FractionalDigits() int {
	if config.Pattern != "" {
		return numfmt.MinFractionalDigits(config.Pattern)
	}
	return config.MinDigits
}
