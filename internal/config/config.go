// Package config loads ticketdesk settings from ticketdesk.yaml and the
// command line. Flags override the file; the file overrides defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/example/ticketdesk/internal/db"
)

// FileName is the config file looked up in the working directory.
const FileName = "ticketdesk.yaml"

// DefaultLogPath is the log file used when none is configured.
const DefaultLogPath = "app_errors.log"

// Levels are the accepted log levels.
var Levels = []string{"debug", "info", "warn", "error"}

// Config represents the ticketdesk configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	Path  string `mapstructure:"path" yaml:"path"`   // file path, "stderr" or "stdout"
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn or error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: db.DefaultPath},
		Log:      LogConfig{Path: DefaultLogPath, Level: "error"},
	}
}

// BindFlags connects the persistent CLI flags to their config keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"database.path": "db",
		"log.path":      "log-file",
		"log.level":     "log-level",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads configuration into v. An explicit configFile must exist;
// otherwise ticketdesk.yaml in the working directory is optional.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	defaults := Default()
	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("log.path", defaults.Log.Path)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if !slices.Contains(Levels, cfg.Log.Level) {
		return nil, fmt.Errorf("invalid log level %q: use one of %s", cfg.Log.Level, strings.Join(Levels, ", "))
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = defaults.Database.Path
	}

	return &cfg, nil
}

// Save writes cfg as YAML to path. An existing file is only replaced
// when overwrite is set.
func Save(path string, cfg *Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
