package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Output formats understood by render.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

const (
	envPrefix         = "SOCIALGRAPH"
	defaultConfigName = ".socialgraph.yaml"
)

// Config is the resolved CLI configuration: defaults, then the config
// file, then SOCIALGRAPH_* environment variables, then flags.
type Config struct {
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log-level"`
	Color    bool   `mapstructure:"color"`
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("config: unknown format %q (want text, yaml or json)", c.Format)
	}
	if _, err := c.level(); err != nil {
		return err
	}

	return nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log-level: %w", err)
	}

	return lvl, nil
}

// loadConfig reads cfgFile (or $HOME/.socialgraph.yaml when present) into
// v and decodes the merged settings.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, defaultConfigName)
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, cfg.Validate()
}
