// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps a developer's real config and environment out of the test.
func isolate(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("APPDATA", dir)
	for _, key := range []string{"STEGO_OVERWRITE", "STEGO_LOG_LEVEL", "STEGO_OUTPUT_DIR"} {
		// Setenv registers the restore; the variable itself must be absent
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool(FlagOverwrite, true, "")
	fs.String(FlagLogLevel, "info", "")
	fs.String(FlagOutputDir, ".", "")
	return fs
}

func writeConfig(t *testing.T, path, contents string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, path, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "", path)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, AppName, ConfigFileName)
	writeConfig(t, cfgPath, "overwrite = false\nlog_level = \"warn\"\noutput_dir = \"/from/file\"\n")

	// the file in the config dir is picked up automatically
	cfg, path, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
	assert.False(t, cfg.Overwrite)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/from/file", cfg.OutputDir)

	// environment beats the file
	t.Setenv("STEGO_LOG_LEVEL", "error")
	cfg, _, err = Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "/from/file", cfg.OutputDir)

	// flags that were set beat everything; unset ones don't
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--log-level=debug"}))
	cfg, _, err = Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Overwrite)
	assert.Equal(t, "/from/file", cfg.OutputDir)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := isolate(t)

	_, _, err := Load(filepath.Join(dir, "missing.toml"), nil)
	require.Error(t, err)

	custom := filepath.Join(dir, "custom.toml")
	writeConfig(t, custom, "output_dir = \"out\"\n")
	cfg, path, err := Load(custom, nil)
	require.NoError(t, err)
	assert.Equal(t, custom, path)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.True(t, cfg.Overwrite)
}

func TestLoad_Invalid(t *testing.T) {
	dir := isolate(t)

	bad := filepath.Join(dir, "bad.toml")
	writeConfig(t, bad, "log_level = \"loud\"\n")
	_, _, err := Load(bad, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")

	garbage := filepath.Join(dir, "garbage.toml")
	writeConfig(t, garbage, "this is = = not toml")
	_, _, err = Load(garbage, nil)
	require.Error(t, err)
}

func TestConfig_TOML(t *testing.T) {
	cfg := Default()
	b, err := cfg.TOML()
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, toml.Unmarshal(b, &decoded))
	assert.Equal(t, cfg, decoded)
	assert.Contains(t, string(b), "log_level")
	assert.Contains(t, string(b), "info")
}
