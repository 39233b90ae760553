// Package config loads mdstrip settings from flags, environment, an optional
// config file and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/mdstrip/core/normalize"
	"github.com/gaurav-prasanna/mdstrip/core/output"
)

const (
	EnvPrefix         = "MDSTRIP"
	DefaultConfigName = "mdstrip"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// Config is the merged configuration for one run.
type Config struct {
	PreserveBold    bool   `mapstructure:"preserve_bold"`
	Bullet          string `mapstructure:"bullet"`
	DashReplacement string `mapstructure:"dash_replacement"`
	Format          string `mapstructure:"format"`
	OutputDir       string `mapstructure:"output_dir"`
	OutputName      string `mapstructure:"output_name"`
	Copy            bool   `mapstructure:"copy"`
	LogLevel        string `mapstructure:"log_level"`
}

// flagKeys maps command line flag names onto config keys.
var flagKeys = map[string]string{
	"bold":        "preserve_bold",
	"bullet":      "bullet",
	"dash":        "dash_replacement",
	"format":      "format",
	"output_dir":  "output_dir",
	"output_name": "output_name",
	"copy":        "copy",
	"log_level":   "log_level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("preserve_bold", false)
	v.SetDefault("bullet", normalize.DefaultBullet)
	v.SetDefault("dash_replacement", normalize.DefaultDash)
	v.SetDefault("format", FormatText)
	v.SetDefault("output_dir", "")
	v.SetDefault("output_name", "")
	v.SetDefault("copy", false)
	v.SetDefault("log_level", "info")
}

// Load merges defaults, the config file, MDSTRIP_* environment variables and
// any flags present in flags (may be nil). An explicit cfgFile must exist; the
// default locations are optional.
func Load(v *viper.Viper, cfgFile string, flags *pflag.FlagSet) (Config, error) {
	var cfg Config
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values that cannot be fixed up silently.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatPDF:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", c.Format, FormatText, FormatJSON, FormatPDF)
	}
	if c.Bullet == "" {
		return errors.New("bullet must not be empty")
	}
	if err := c.NormalizeOptions().Validate(); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// NormalizeOptions returns the normalizer options carried by c.
func (c Config) NormalizeOptions() normalize.Options {
	return normalize.Options{Bullet: c.Bullet, Dash: c.DashReplacement}
}

// ExportName returns the configured export name, or fallback when unset.
func (c Config) ExportName(fallback string) string {
	if c.OutputName != "" {
		return c.OutputName
	}
	if fallback != "" {
		return fallback
	}
	return output.DefaultName
}

// ParseLevel maps a level name onto a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", name, err)
	}
	return level, nil
}
