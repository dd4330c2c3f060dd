// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

// Package config loads engine configuration from defaults, an optional
// YAML file, and command-line flags, in that precedence order.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config holds engine settings.
type Config struct {
	LogFormat   string `koanf:"log-format"`   // "json" or "text"
	LogLevel    string `koanf:"log-level"`    // debug, info, warn, error
	WorldFile   string `koanf:"world-file"`   // YAML seed path; empty uses the built-in world
	MetricsAddr string `koanf:"metrics-addr"` // empty disables the observability server
	BuilderHash string `koanf:"builder-hash"` // argon2id PHC hash for "elevate"
	Player      string `koanf:"player"`       // display name for the session
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		LogFormat: "text",
		LogLevel:  "info",
		Player:    "traveler",
	}
}

// Load builds a Config from an optional YAML file and the given flag set.
// Flags that were explicitly set override file values, which override
// defaults. A missing path is only an error when it was explicitly given.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := Defaults()
	k := koanf.New(".")

	// Seed defaults so unset flags never clobber them through posflag.
	defaults := map[string]any{
		"log-format": cfg.LogFormat,
		"log-level":  cfg.LogLevel,
		"player":     cfg.Player,
	}
	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return cfg, oops.Code("CONFIG_INVALID").Wrap(err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return cfg, oops.Code("CONFIG_INVALID").With("path", path).Wrap(err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, oops.Code("CONFIG_INVALID").With("path", path).Wrap(err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return cfg, oops.Code("CONFIG_INVALID").Wrap(err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, oops.Code("CONFIG_INVALID").Wrap(err)
	}
	return cfg, nil
}
