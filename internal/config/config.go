// Package config resolves the backing-file path and run settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name under the config root.
	AppName = "tdo"

	// EnvDB is the environment variable overriding the backing file path.
	EnvDB = "TODO_DB"

	// ConfigFile is the optional TOML config filename.
	ConfigFile = "config.toml"

	// DefaultDBFile is the backing file used when nothing overrides it,
	// relative to the current working directory.
	DefaultDBFile = "todos.json"
)

// Config holds resolved paths and settings. The backing-file path is
// resolved once here and passed to the store constructor; nothing else
// consults the environment.
type Config struct {
	// DBPath is the resolved backing file path.
	DBPath string

	// Debug prints resolution diagnostics to stderr.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig mirrors the optional TOML config file.
type fileConfig struct {
	DBPath string `toml:"db_path"`
}

// New resolves the backing file path. Precedence: the --db flag, the
// TODO_DB environment variable, db_path from the config file, then
// ./todos.json. A missing config file is not an error; a malformed one
// is.
func New(dbFlag string) (*Config, error) {
	if dbFlag != "" {
		return &Config{DBPath: dbFlag}, nil
	}
	if env := os.Getenv(EnvDB); env != "" {
		return &Config{DBPath: env}, nil
	}

	cfgPath := filepath.Join(DefaultConfigDir(), ConfigFile)
	if _, err := os.Stat(cfgPath); err == nil {
		var fc fileConfig
		if _, err := toml.DecodeFile(cfgPath, &fc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", cfgPath, err)
		}
		if fc.DBPath != "" {
			return &Config{DBPath: fc.DBPath}, nil
		}
	}

	return &Config{DBPath: DefaultDBFile}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}
