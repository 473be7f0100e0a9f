// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package config loads settings for the stego command from defaults, an
// optional TOML file, STEGO_* environment variables and flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	AppName        = "stego"
	ConfigFileName = "config.toml"
	EnvPrefix      = "STEGO"
)

// Keys, and the flags bound to them.
const (
	KeyOverwrite = "overwrite"
	KeyLogLevel  = "log_level"
	KeyOutputDir = "output_dir"

	FlagOverwrite = "overwrite"
	FlagLogLevel  = "log-level"
	FlagOutputDir = "output-dir"
)

// Config holds the command's settings.  Container format constants are
// deliberately absent: changing them would break compatibility.
type Config struct {
	// Overwrite replaces existing output files.
	Overwrite bool `mapstructure:"overwrite" toml:"overwrite"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" toml:"log_level"`
	// OutputDir is where extract writes when no output path is given.
	OutputDir string `mapstructure:"output_dir" toml:"output_dir"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Overwrite: true,
		LogLevel:  "info",
		OutputDir: ".",
	}
}

// Dir returns the platform's configuration directory for stego.
func Dir() (string, error) {
	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, "Library", "Application Support")
	default:
		dir = os.Getenv("XDG_CONFIG_HOME")
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName), nil
}

// Validate checks values viper can't type-check for us.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: want debug, info, warn or error", c.LogLevel)
	}
	if c.OutputDir == "" {
		return errors.New("output_dir cannot be empty")
	}
	return nil
}

// TOML renders c in config file syntax.
func (c *Config) TOML() ([]byte, error) {
	b, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("toml.Marshal: %w", err)
	}
	return b, nil
}

// BindFlags binds whichever of the known flags exist in fs.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range map[string]string{
		KeyOverwrite: FlagOverwrite,
		KeyLogLevel:  FlagLogLevel,
		KeyOutputDir: FlagOutputDir,
	} {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("v.BindPFlag(%s): %w", key, err)
		}
	}
	return nil
}

// Load resolves the effective settings.  An explicit path must exist;
// otherwise the file in Dir is used when present.  It returns the config
// file actually read, or "" if none was.
func Load(path string, fs *pflag.FlagSet) (*Config, string, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault(KeyOverwrite, defaults.Overwrite)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyOutputDir, defaults.OutputDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := BindFlags(v, fs); err != nil {
			return nil, "", err
		}
	}

	resolved := path
	if resolved == "" {
		if dir, err := Dir(); err == nil {
			candidate := filepath.Join(dir, ConfigFileName)
			if _, err := os.Stat(candidate); err == nil {
				resolved = candidate
			}
		}
	}
	if resolved != "" {
		v.SetConfigFile(resolved)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("reading config %s: %w", resolved, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("config %s: %w", resolved, err)
	}

	return &cfg, resolved, nil
}
