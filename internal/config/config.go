package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. GUESS_LOG_LEVEL.
const EnvPrefix = "GUESS"

// Config is the complete guess configuration.
type Config struct {
	// LogLevel is a zerolog level name: trace, debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// ReportInvalid prints a corrective message for lines that are not a
	// number. When false those lines are skipped silently.
	ReportInvalid bool `mapstructure:"report_invalid"`
	// Color enables styled output on terminals.
	Color bool `mapstructure:"color"`
	// MessagesFile optionally overrides the built-in feedback text.
	MessagesFile string `mapstructure:"messages_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:      "info",
		ReportInvalid: true,
		Color:         true,
	}
}

// SetDefaults registers the defaults on v so they apply without a file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("report_invalid", d.ReportInvalid)
	v.SetDefault("color", d.Color)
	v.SetDefault("messages_file", d.MessagesFile)
}

// Dir returns the per-user config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "guess")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "guess")
}

// Load layers defaults, an optional YAML file, and GUESS_* environment
// variables onto v and decodes the result. An explicit file must exist;
// the search-path file is optional.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("guess")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := Dir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Plain LOG_LEVEL (as in .env files) only replaces the default.
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		v.SetDefault("log_level", lvl)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if c.LogLevel == "" {
		return errors.New("log_level must not be empty")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}
