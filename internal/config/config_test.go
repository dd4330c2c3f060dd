// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-format", "", "")
	flags.String("log-level", "", "")
	flags.String("world-file", "", "")
	flags.String("metrics-addr", "", "")
	flags.String("builder-hash", "", "")
	flags.String("player", "", "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "traveler", cfg.Player)
	assert.Empty(t, cfg.WorldFile)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loreline.yaml")
	content := `
log-format: json
log-level: debug
player: iris
metrics-addr: "127.0.0.1:9090"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "iris", cfg.Player)
	assert.Equal(t, "127.0.0.1:9090", cfg.MetricsAddr)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loreline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player: iris\nlog-level: debug\n"), 0o600))

	flags := playFlags()
	require.NoError(t, flags.Parse([]string{"--player", "odo"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "odo", cfg.Player)
	// Unset flags leave file values alone.
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loreline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: [unclosed"), 0o600))

	_, err := Load(path, nil)
	assert.Error(t, err)
}
