// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/loreline/loreline/internal/command"
	"github.com/loreline/loreline/internal/command/handlers"
	"github.com/loreline/loreline/internal/config"
	"github.com/loreline/loreline/internal/console"
	"github.com/loreline/loreline/internal/logging"
	"github.com/loreline/loreline/internal/observability"
	"github.com/loreline/loreline/internal/session"
	"github.com/loreline/loreline/internal/world"
	"github.com/loreline/loreline/internal/xdg"
)

// defaultWorld is the built-in three-room world used when no seed file is
// configured.
const defaultWorld = `
start: gatehouse
locations:
  - ref: gatehouse
    title: The Gatehouse
    description: A squat stone gatehouse. The portcullis is rusted open.
    exits:
      north: courtyard
  - ref: courtyard
    title: The Courtyard
    description: Weeds push through the flagstones of a wide courtyard.
    exits:
      south: gatehouse
      east: keep
  - ref: keep
    title: The Keep
    description: The keep's great hall, cold and echoing.
    exits:
      west: courtyard
`

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configFile
			if path == "" {
				path = xdg.DefaultConfigFile()
			}
			cfg, err := config.Load(path, cmd.Flags())
			if err != nil {
				return err
			}
			return runPlay(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("log-format", "", "log format: json or text")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().String("world-file", "", "world seed YAML (empty uses the built-in world)")
	cmd.Flags().String("metrics-addr", "", "metrics listen address (empty disables)")
	cmd.Flags().String("builder-hash", "", "argon2id hash of the builder password")
	cmd.Flags().String("player", "", "player display name")

	return cmd
}

func runPlay(parent context.Context, cfg config.Config) error {
	logging.SetDefault("loreline", version, cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, start, err := loadWorld(cfg.WorldFile)
	if err != nil {
		return err
	}

	registry := command.NewRegistry()
	if err := handlers.RegisterAll(registry); err != nil {
		return oops.Wrap(err)
	}

	history := command.NewHistory()
	services := &command.Services{
		World:       store,
		History:     history,
		Registry:    registry,
		BuilderHash: cfg.BuilderHash,
	}

	dispatcher, err := command.NewDispatcher(registry, services)
	if err != nil {
		return err
	}
	completer := command.NewCompleter(registry, store, nil)

	startLoc, err := store.Get(start)
	if err != nil {
		return err
	}
	sess := session.New(cfg.Player, startLoc)

	var obs *observability.Server
	if cfg.MetricsAddr != "" {
		obs = observability.NewServer(cfg.MetricsAddr)
		if _, err := obs.Start(); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if stopErr := obs.Stop(shutdownCtx); stopErr != nil {
				slog.Error("failed to stop observability server", "error", stopErr)
			}
		}()
	}

	slog.Info("session started",
		"session_id", sess.ID.String(),
		"player", sess.Player,
		"locations", store.Len(),
	)

	c, err := console.New(dispatcher, completer, history, sess)
	if err != nil {
		return err
	}
	return c.Run(ctx)
}

// loadWorld loads the configured seed file, or the built-in world when no
// path is set.
func loadWorld(path string) (*world.Store, string, error) {
	if path != "" {
		return world.LoadSeed(path)
	}
	return world.ParseSeed([]byte(defaultWorld))
}
