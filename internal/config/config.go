package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bjaus/figconv"
)

// EnvPrefix prefixes environment overrides, e.g. FIGCONV_VIEW=table.
const EnvPrefix = "FIGCONV"

// FileName is the config file looked up in the search paths, without extension.
const FileName = ".figconv"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the front end settings. The codec itself takes no settings.
type Config struct {
	View      string `mapstructure:"view" validate:"required"`
	Border    string `mapstructure:"border" validate:"oneof=rounded none ascii heavy double"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=text json"`
}

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config file. It must exist when set.
	File string
	// SearchPaths are scanned for FileName when File is empty. A missing file
	// is not an error.
	SearchPaths []string
	// Flags, when set, override file and environment values for flags the
	// user changed. Flag names use dashes: --log-level binds log_level.
	Flags *pflag.FlagSet
}

// flagKeys maps config keys to flag names.
var flagKeys = map[string]string{
	"view":       "view",
	"border":     "border",
	"log_level":  "log-level",
	"log_format": "log-format",
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Config {
	return Config{
		View:      figconv.Plain.String(),
		Border:    "rounded",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load merges defaults, the config file, FIGCONV_* environment variables and
// flags, in increasing order of precedence, then validates the result.
func Load(opts Options) (Config, string, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("view", d.View)
	v.SetDefault("border", d.Border)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.Flags != nil {
		for key, name := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, "", fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, "", fmt.Errorf("read config %s: %w", opts.File, err)
		}
	} else if len(opts.SearchPaths) > 0 {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		for _, p := range opts.SearchPaths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, "", fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}
	return cfg, v.ConfigFileUsed(), nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field, including that View names a known view.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := figconv.ParseView(c.View); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Viewer builds the renderer described by c.
func (c Config) Viewer() (figconv.Viewer, error) {
	view, err := figconv.ParseView(c.View)
	if err != nil {
		return figconv.Viewer{}, err
	}
	border, err := figconv.ParseBorder(c.Border)
	if err != nil {
		return figconv.Viewer{}, err
	}
	return figconv.Viewer{View: view, Border: border}, nil
}
