// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/user/filemanager/pkg/ports"
)

// EnvPrefix is the prefix of environment variables read by ApplyEnv.
const EnvPrefix = "filemanager"

// Config represents the startup configuration of the file manager. None of
// it changes the console protocol; it only affects diagnostics, the
// filesystem root and the session summary.
type Config struct {
	LogLevel string `yaml:"log_level" toml:"log_level" split_words:"true"`
	Quiet    bool   `yaml:"quiet" toml:"quiet"`
	LogFile  string `yaml:"log_file" toml:"log_file" split_words:"true"`

	// Root jails every typed path inside this directory when set.
	Root string `yaml:"root" toml:"root"`

	// Summary is the Markdown report written when the session ends.
	Summary string `yaml:"summary" toml:"summary"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel: "warn",
	}
}

// LoadFromFile loads configuration from a YAML or TOML file on top of the
// defaults. The format is chosen by extension.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overlays FILEMANAGER_* environment variables onto c. Unset
// variables leave the current values alone.
func (c *Config) ApplyEnv() error {
	return envconfig.Process(EnvPrefix, c)
}

// Validate checks values that cannot be fixed up silently.
func (c Config) Validate() error {
	if !ports.IsLogLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.Root != "" {
		info, err := os.Stat(c.Root)
		if err != nil {
			return fmt.Errorf("root: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("root %s is not a directory", c.Root)
		}
	}
	return nil
}

// Level returns the console log level, honouring Quiet.
func (c Config) Level() ports.LogLevel {
	if c.Quiet {
		return ports.LevelQuiet
	}
	return ports.ParseLogLevel(c.LogLevel)
}
