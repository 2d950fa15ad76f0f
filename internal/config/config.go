// Package config loads the user-level configuration file and resolves
// the data directory the ledger snapshot lives in.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carbontrack/internal/logging"
)

// EnvDataDir overrides the data directory when set.
const EnvDataDir = "CARBONTRACK_DATA_DIR"

// defaultDirName is the dot-directory under the user's home.
const defaultDirName = ".carbontrack"

// Config is the user-level configuration, read from
// ~/.carbontrack/config.yaml when present.
type Config struct {
	// DataDir overrides where snapshots are stored. Empty means the
	// default directory.
	DataDir string `yaml:"data_dir"`

	// Logging configures the CLI logger.
	Logging logging.Config `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: logging.Config{Level: "info"},
	}
}

// Load reads the config file under the default directory, falling
// back to defaults when the file is absent. A malformed file is an
// error; a missing one is not.
func Load() (*Config, error) {
	cfg := Default()

	path := filepath.Join(defaultDir(), "config.yaml")
	blob, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(blob, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveDataDir returns the directory snapshots are stored in,
// considering (in order) the CARBONTRACK_DATA_DIR environment
// variable, the config file's data_dir, and the default
// ~/.carbontrack directory.
func (c *Config) ResolveDataDir() string {
	if envDir := os.Getenv(EnvDataDir); envDir != "" {
		return envDir
	}
	if c.DataDir != "" {
		return c.DataDir
	}
	return defaultDir()
}

// defaultDir resolves ~/.carbontrack, degrading to a relative
// directory when the home directory cannot be determined.
func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDirName
	}
	return filepath.Join(home, defaultDirName)
}
